package nba

import "fmt"

// SeasonType selects the portion of a season the league leaders endpoint
// reports on.
type SeasonType string

const (
	SeasonTypeRegular  SeasonType = "RegularSeason"
	SeasonTypePlayoffs SeasonType = "Playoffs"
)

// String returns the canonical label used in the accumulated dataset.
func (t SeasonType) String() string {
	return string(t)
}

// QueryValue returns the form the stats API expects in the SeasonType query
// parameter. The API uses a space where the dataset label does not.
func (t SeasonType) QueryValue() string {
	if t == SeasonTypeRegular {
		return "Regular Season"
	}
	return string(t)
}

// ParseSeasonType maps a season type name to its SeasonType value.
func ParseSeasonType(name string) (SeasonType, error) {
	switch name {
	case string(SeasonTypeRegular):
		return SeasonTypeRegular, nil
	case string(SeasonTypePlayoffs):
		return SeasonTypePlayoffs, nil
	default:
		return "", fmt.Errorf("unknown season type %q", name)
	}
}

// SeasonKey identifies one fetch unit: a season in "YYYY-YY" form plus the
// season type.
type SeasonKey struct {
	Season string
	Type   SeasonType
}

// String renders the key the way it appears in log messages.
func (k SeasonKey) String() string {
	return k.Season + " " + k.Type.String()
}
