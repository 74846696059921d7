package nba

// leagueLeadersResponse mirrors the stats.nba.com league leaders envelope.
// Row cells are heterogeneous (names are strings, averages are numbers), so
// they decode as untyped values and are carried through to the export
// unchanged.
type leagueLeadersResponse struct {
	ResultSet resultSet `json:"resultSet"`
}

type resultSet struct {
	Name    string   `json:"name"`
	Headers []string `json:"headers"`
	RowSet  [][]any  `json:"rowSet"`
}

// LeaderBoard holds one season's league leaders table as returned upstream:
// the column headers and the per-player rows in ranking order.
type LeaderBoard struct {
	Headers []string
	Rows    [][]any
}

// RowCount returns the number of player rows on the board.
func (b LeaderBoard) RowCount() int {
	return len(b.Rows)
}
