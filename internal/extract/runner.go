package extract

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"nbaextract/internal/nba"
)

// LeaderClient fetches the league leaders for one season key.
type LeaderClient interface {
	LeagueLeaders(ctx context.Context, key nba.SeasonKey) (nba.LeaderBoard, error)
}

// Exporter persists the accumulated table and returns the written path.
type Exporter interface {
	Export(table *Table) (string, error)
}

// Runner drives the sequential extraction: one priming fetch to learn the
// column headers, then one fetch per remaining season key with per-key
// error isolation, then a single export of everything accumulated.
type Runner struct {
	Client   LeaderClient
	Pacer    Pacer
	Exporter Exporter
	Logger   *slog.Logger

	// Seasons and Types define the visiting order: seasons outer,
	// season types inner, both in configured list order.
	Seasons []string
	Types   []nba.SeasonType
}

// Summary reports what a finished run accomplished.
type Summary struct {
	RowsExtracted int
	KeysFetched   int
	KeysFailed    int
	Elapsed       time.Duration
	OutputPath    string
}

// Run executes the full extraction. The priming fetch and the final export
// are fatal on failure; any other fetch failure is logged and skipped, so a
// bad key contributes zero rows without disturbing the rest of the run.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	start := time.Now()
	logger := r.logger()

	keys := r.keys()
	if len(keys) == 0 {
		return nil, fmt.Errorf("no season keys configured")
	}

	logger.Info("starting NBA player data extraction", "keys", len(keys))

	// Priming failure is fatal: without headers there is no schema to
	// accumulate into.
	board, err := r.Client.LeagueLeaders(ctx, keys[0])
	if err != nil {
		return nil, fmt.Errorf("prime column headers with %s: %w", keys[0], err)
	}

	summary := &Summary{}
	table := NewTable(board.Headers)
	r.accumulate(logger, table, keys[0], board, summary)
	if err := r.pause(ctx); err != nil {
		return nil, err
	}

	for _, key := range keys[1:] {
		board, err := r.Client.LeagueLeaders(ctx, key)
		if err != nil {
			logger.Error("error retrieving data",
				"season", key.Season,
				"season_type", key.Type.String(),
				"error", err)
			summary.KeysFailed++
		} else {
			r.accumulate(logger, table, key, board, summary)
		}
		if err := r.pause(ctx); err != nil {
			return nil, err
		}
	}

	path, err := r.Exporter.Export(table)
	if err != nil {
		return nil, fmt.Errorf("export extracted data: %w", err)
	}
	summary.OutputPath = path
	summary.Elapsed = time.Since(start)

	logger.Info("data extraction completed",
		"rows", table.Len(),
		"file", path,
		"elapsed_minutes", fmt.Sprintf("%.2f", summary.Elapsed.Minutes()))

	return summary, nil
}

func (r *Runner) accumulate(logger *slog.Logger, table *Table, key nba.SeasonKey, board nba.LeaderBoard, summary *Summary) {
	table.Append(key, board.Rows)
	summary.KeysFetched++
	summary.RowsExtracted += board.RowCount()
	logger.Info("retrieved data",
		"season", key.Season,
		"season_type", key.Type.String(),
		"rows", board.RowCount())
}

func (r *Runner) pause(ctx context.Context) error {
	if err := r.Pacer.Pause(ctx); err != nil {
		return fmt.Errorf("pacing wait: %w", err)
	}
	return nil
}

// keys expands the configured seasons and season types into the ordered
// list of extraction units.
func (r *Runner) keys() []nba.SeasonKey {
	keys := make([]nba.SeasonKey, 0, len(r.Seasons)*len(r.Types))
	for _, season := range r.Seasons {
		for _, st := range r.Types {
			keys = append(keys, nba.SeasonKey{Season: season, Type: st})
		}
	}
	return keys
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.Default()
}
