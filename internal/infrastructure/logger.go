package infrastructure

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"nbaextract/internal/config"
)

var (
	// globalLogger holds the application-wide logger instance
	globalLogger     *slog.Logger
	globalLoggerOnce sync.Once
	// globalLogFile holds the open log file for cleanup
	globalLogFile *os.File
	// logFileMu protects globalLogFile
	logFileMu sync.Mutex
)

// logTimestampLayout is the record timestamp format in every log line.
const logTimestampLayout = "2006-01-02 15:04:05"

// InitializeLogger creates and configures the global slog logger instance.
// This should be called once during application startup. Every run gets its
// own timestamped log file under the configured directory, and records are
// mirrored to the console so progress is visible while the run is live.
func InitializeLogger(cfg config.LoggingConfig) (*slog.Logger, error) {
	var err error
	globalLoggerOnce.Do(func() {
		globalLogger, err = createLogger(cfg)
		if globalLogger != nil {
			slog.SetDefault(globalLogger)
		}
	})
	return globalLogger, err
}

// GetLogger returns the global logger instance.
// If not initialized, returns the default slog logger.
func GetLogger() *slog.Logger {
	if globalLogger == nil {
		return slog.Default()
	}
	return globalLogger
}

// LogFilePath returns the path of the current run's log file, or an empty
// string when file output is disabled or the logger is not initialized.
func LogFilePath() string {
	logFileMu.Lock()
	defer logFileMu.Unlock()

	if globalLogFile == nil {
		return ""
	}
	return globalLogFile.Name()
}

// createLogger creates a new slog logger based on configuration
func createLogger(cfg config.LoggingConfig) (*slog.Logger, error) {
	level := parseLogLevel(cfg.Level)

	var output io.Writer

	switch strings.ToLower(cfg.Output) {
	case "file":
		file, err := openLogFile(cfg.Dir)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		globalLogFile = file
		output = file
	case "both":
		file, err := openLogFile(cfg.Dir)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		globalLogFile = file
		output = io.MultiWriter(os.Stdout, file)
	default:
		output = os.Stdout
	}

	return slog.New(newLineHandler(output, level)), nil
}

// lineHandler renders records as "<timestamp> - <LEVEL> - <message>" lines,
// with any structured attributes appended as key=value pairs. The layout is
// fixed so the log files stay greppable across runs.
type lineHandler struct {
	mu    *sync.Mutex
	out   io.Writer
	level slog.Level
	// prefixAttrs holds attributes added via WithAttrs, already rendered
	// with the groups that were open when they were added.
	prefixAttrs []byte
	groups      []string
}

func newLineHandler(out io.Writer, level slog.Level) *lineHandler {
	return &lineHandler{
		mu:    &sync.Mutex{},
		out:   out,
		level: level,
	}
}

// Enabled reports whether records at the given level are emitted
func (h *lineHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle writes one formatted line per record
func (h *lineHandler) Handle(_ context.Context, r slog.Record) error {
	ts := r.Time
	if ts.IsZero() {
		ts = time.Now()
	}

	buf := make([]byte, 0, 256)
	buf = ts.AppendFormat(buf, logTimestampLayout)
	buf = append(buf, " - "...)
	buf = append(buf, r.Level.String()...)
	buf = append(buf, " - "...)
	buf = append(buf, r.Message...)

	buf = append(buf, h.prefixAttrs...)
	r.Attrs(func(attr slog.Attr) bool {
		buf = appendAttr(buf, attr, h.groups)
		return true
	})

	buf = append(buf, '\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.Write(buf)
	return err
}

// WithAttrs returns a new handler that includes the given attributes
func (h *lineHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	clone := *h
	rendered := make([]byte, len(h.prefixAttrs), len(h.prefixAttrs)+64)
	copy(rendered, h.prefixAttrs)
	for _, attr := range attrs {
		rendered = appendAttr(rendered, attr, h.groups)
	}
	clone.prefixAttrs = rendered
	return &clone
}

// WithGroup returns a new handler that qualifies attribute keys with name
func (h *lineHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.groups = append(append([]string{}, h.groups...), name)
	return &clone
}

// appendAttr renders one attribute as " key=value", qualifying the key with
// any enclosing group names
func appendAttr(buf []byte, attr slog.Attr, groups []string) []byte {
	attr.Value = attr.Value.Resolve()

	if attr.Value.Kind() == slog.KindGroup {
		members := attr.Value.Group()
		if attr.Key != "" {
			groups = append(groups, attr.Key)
		}
		for _, member := range members {
			buf = appendAttr(buf, member, groups)
		}
		return buf
	}

	if attr.Equal(slog.Attr{}) {
		return buf
	}

	buf = append(buf, ' ')
	for _, g := range groups {
		buf = append(buf, g...)
		buf = append(buf, '.')
	}
	buf = append(buf, attr.Key...)
	buf = append(buf, '=')
	buf = append(buf, attr.Value.String()...)
	return buf
}

// parseLogLevel converts string log level to slog.Level
func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// CloseLogFile closes the global log file if open.
// This should be called at the end of a run or in tests.
func CloseLogFile() error {
	logFileMu.Lock()
	defer logFileMu.Unlock()

	if globalLogFile != nil {
		err := globalLogFile.Close()
		globalLogFile = nil
		return err
	}
	return nil
}

// ResetLoggerForTesting resets the global logger state.
// This should only be called in tests.
func ResetLoggerForTesting() {
	CloseLogFile()
	globalLogger = nil
	globalLoggerOnce = sync.Once{}
}

// openLogFile creates this run's log file inside dir
func openLogFile(dir string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
	}

	filePath := filepath.Join(dir, config.LogFileName(time.Now()))

	// Append mode keeps the file intact in the unlikely case two runs start
	// within the same second.
	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", filePath, err)
	}

	return file, nil
}
