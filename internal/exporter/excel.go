package exporter

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"nbaextract/internal/config"
	"nbaextract/internal/extract"
)

// sheetName is excelize's default sheet. Writing into it keeps the workbook
// to a single sheet without an empty leftover.
const sheetName = "Sheet1"

// ExcelWriter persists an accumulated table as a timestamped Excel workbook.
type ExcelWriter struct {
	paths *config.Paths
	now   func() time.Time
}

// NewExcelWriter creates a writer placing workbooks in the configured
// output directory.
func NewExcelWriter(paths *config.Paths) *ExcelWriter {
	return &ExcelWriter{
		paths: paths,
		now:   time.Now,
	}
}

// Export writes the table to a new workbook named after the current time
// and returns the written path. The first row mirrors the table schema
// exactly; data rows follow in insertion order with no index column.
func (w *ExcelWriter) Export(table *extract.Table) (string, error) {
	path := w.paths.ExportFilePath(w.now())

	slog.Info("Writing Excel workbook",
		slog.String("path", path),
		slog.Int("rows", table.Len()))

	f := excelize.NewFile()
	defer f.Close()

	for col, name := range table.Columns() {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return "", fmt.Errorf("failed to name header cell %d: %w", col+1, err)
		}
		if err := f.SetCellValue(sheetName, cell, name); err != nil {
			return "", fmt.Errorf("failed to write header %q: %w", name, err)
		}
	}

	for i, row := range table.Rows() {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return "", fmt.Errorf("failed to name cell at row %d col %d: %w", i+2, col+1, err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return "", fmt.Errorf("failed to write data row %d: %w", i+1, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save workbook %s: %w", path, err)
	}

	slog.Info("Exported player data",
		slog.String("path", path),
		slog.Int("rows", table.Len()))

	return path, nil
}
