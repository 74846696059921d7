// Command extractor pulls per-game league leaders from the NBA statistics
// API for a fixed range of seasons and writes the combined dataset to a
// timestamped Excel workbook.
//
// Usage:
//
//	extractor
//	extractor version
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"nbaextract/internal/config"
	"nbaextract/internal/exporter"
	"nbaextract/internal/extract"
	"nbaextract/internal/infrastructure"
	"nbaextract/internal/nba"
)

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	if err := newRootCmd().Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "extractor",
		Short: "Extract NBA player statistics into an Excel workbook",
		Long: "Fetches per-game league leaders for every configured season and season type, " +
			"accumulates them into one table, and exports the result as a timestamped .xlsx file.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtraction()
		},
	}
	root.AddCommand(versionCmd())
	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s v%s\n", config.AppName, config.AppVersion)
		},
	}
}

// runExtraction wires configuration, logging, and the extraction pipeline,
// then drives one full run.
func runExtraction() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cyan := color.New(color.FgCyan)
	green := color.New(color.FgGreen)

	cyan.Printf("\n%s v%s\n", config.AppName, config.AppVersion)
	cyan.Println("==============================")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	paths, err := config.GetPaths(cfg)
	if err != nil {
		return fmt.Errorf("resolve paths: %w", err)
	}
	if err := paths.EnsureDirectories(); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}

	// Log files go to the resolved directory, not the raw configured name.
	logCfg := cfg.Logging
	logCfg.Dir = paths.LogsDir
	logger, err := infrastructure.InitializeLogger(logCfg)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	runID := infrastructure.GenerateRunID()
	ctx = infrastructure.WithRunID(ctx, runID)
	logger = logger.With("run_id", runID)

	types, err := seasonTypes()
	if err != nil {
		return err
	}

	runner := &extract.Runner{
		Client: nba.NewClient(nba.Config{
			BaseURL:    cfg.HTTP.BaseURL,
			HTTPClient: &http.Client{Timeout: cfg.HTTP.Timeout},
		}),
		Pacer:    extract.NewRandomPacer(cfg.Pacing.MinDelay, cfg.Pacing.MaxDelay),
		Exporter: exporter.NewExcelWriter(paths),
		Logger:   logger,
		Seasons:  config.Seasons(),
		Types:    types,
	}

	summary, err := runner.Run(ctx)
	if err != nil {
		logger.Error("data extraction failed", "error", err)
		return err
	}

	green.Println("\nExtraction complete")
	fmt.Printf("  Rows extracted: %d\n", summary.RowsExtracted)
	fmt.Printf("  Keys fetched:   %d\n", summary.KeysFetched)
	fmt.Printf("  Keys failed:    %d\n", summary.KeysFailed)
	fmt.Printf("  Output file:    %s\n", summary.OutputPath)
	fmt.Printf("  Elapsed:        %.2f minutes\n", summary.Elapsed.Minutes())

	return nil
}

// seasonTypes parses the configured season type names into their typed form.
func seasonTypes() ([]nba.SeasonType, error) {
	names := config.SeasonTypeNames()
	types := make([]nba.SeasonType, 0, len(names))
	for _, name := range names {
		st, err := nba.ParseSeasonType(name)
		if err != nil {
			return nil, fmt.Errorf("season type configuration: %w", err)
		}
		types = append(types, st)
	}
	return types, nil
}
