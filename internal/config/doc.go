// Package config provides centralized configuration management for the NBA
// player data extractor. It handles loading configuration from multiple
// sources, validation, and holds the fixed extraction parameters.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//	1. Environment variables (highest priority)
//	2. config.yaml (working directory or configs/)
//	3. Default values (lowest priority)
//
// # Environment Variables
//
// All environment variables follow the pattern NBA_* for namespacing:
//
//	NBA_HTTP_TIMEOUT=45s
//	NBA_LOGGING_LEVEL=debug
//	NBA_LOGGING_DIR=Logs
//	NBA_EXPORT_DIR=.
//	NBA_PACING_MIN_DELAY=5s
//	NBA_PACING_MAX_DELAY=40s
//
// Only ambient concerns are configurable. The extraction parameters -
// the season list, the season types, and the league leaders query
// constants - are fixed at build time (constants.go and the nba package)
// so every run covers the same dataset.
//
// # Path Management
//
// The Paths type resolves the log and output directories against the
// working directory and derives the timestamped per-run file names:
//
//	paths, err := config.GetPaths(cfg)
//	logPath := paths.LogFilePath(time.Now())
//	outPath := paths.ExportFilePath(time.Now())
//
// # Usage
//
// Load configuration at application startup:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
package config
