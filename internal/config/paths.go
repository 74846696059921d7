package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Paths contains all the application paths.
// This is the single source of truth for file placement: the workbook lands
// in the output directory (the working directory unless overridden) and log
// files land in the logs directory, both resolved against the directory the
// extractor is run from.
type Paths struct {
	WorkDir   string
	LogsDir   string
	OutputDir string
}

// GetPaths resolves the application paths against the current working
// directory using the configured directory names.
func GetPaths(cfg *Config) (*Paths, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return NewPaths(wd, cfg), nil
}

// NewPaths resolves the application paths against an explicit base
// directory. Absolute configured directories are kept as-is.
func NewPaths(baseDir string, cfg *Config) *Paths {
	return &Paths{
		WorkDir:   baseDir,
		LogsDir:   resolveDir(baseDir, cfg.Logging.Dir),
		OutputDir: resolveDir(baseDir, cfg.Export.Dir),
	}
}

func resolveDir(baseDir, dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(baseDir, dir)
}

// EnsureDirectories creates all required directories if they don't exist
func (p *Paths) EnsureDirectories() error {
	directories := []string{
		p.LogsDir,
		p.OutputDir,
	}

	for _, dir := range directories {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// LogFileName returns the timestamped log file name for a run started at t,
// e.g. nba_data_extraction_20250118_094530.log
func LogFileName(t time.Time) string {
	return fmt.Sprintf("%s_%s.log", LogFilePrefix, t.Format(FileTimestampLayout))
}

// ExportFileName returns the timestamped workbook name for an export at t,
// e.g. nba_player_data_20250118_094530.xlsx
func ExportFileName(t time.Time) string {
	return fmt.Sprintf("%s_%s.xlsx", ExportFilePrefix, t.Format(FileTimestampLayout))
}

// LogFilePath returns the full path for a run's log file
func (p *Paths) LogFilePath(t time.Time) string {
	return filepath.Join(p.LogsDir, LogFileName(t))
}

// ExportFilePath returns the full path for a run's workbook
func (p *Paths) ExportFilePath(t time.Time) string {
	return filepath.Join(p.OutputDir, ExportFileName(t))
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
