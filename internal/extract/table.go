package extract

import "nbaextract/internal/nba"

// Column labels prepended ahead of the API's own headers.
const (
	yearColumn       = "Year"
	seasonTypeColumn = "Season_type"
)

// Table accumulates rows across season keys. The schema is fixed at
// construction: Year and Season_type followed by the API header set.
// Rows are stored in insertion order and never deduplicated.
type Table struct {
	columns []string
	rows    [][]any
}

// NewTable builds an empty table whose schema prepends the extraction
// metadata columns to the header set obtained from the priming fetch.
func NewTable(headers []string) *Table {
	columns := make([]string, 0, len(headers)+2)
	columns = append(columns, yearColumn, seasonTypeColumn)
	columns = append(columns, headers...)
	return &Table{columns: columns}
}

// Append extends each row with the key's season and season type and adds
// the extended rows after all existing ones.
func (t *Table) Append(key nba.SeasonKey, rows [][]any) {
	for _, row := range rows {
		extended := make([]any, 0, len(row)+2)
		extended = append(extended, key.Season, key.Type.String())
		extended = append(extended, row...)
		t.rows = append(t.rows, extended)
	}
}

// Columns returns the table schema. Callers must not modify it.
func (t *Table) Columns() []string {
	return t.columns
}

// Rows returns the accumulated rows in insertion order. Callers must not
// modify them.
func (t *Table) Rows() [][]any {
	return t.rows
}

// Len reports the number of accumulated rows.
func (t *Table) Len() int {
	return len(t.rows)
}
