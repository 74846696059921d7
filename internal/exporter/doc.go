// Package exporter persists the accumulated player statistics table as an
// Excel workbook.
//
// ExcelWriter writes one timestamped .xlsx file per run into the configured
// output directory. The workbook carries a single sheet whose first row is
// the table schema and whose remaining rows are the accumulated data in
// insertion order.
//
// Example usage:
//
//	writer := exporter.NewExcelWriter(paths)
//	path, err := writer.Export(table)
package exporter
