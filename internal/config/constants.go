package config

import "time"

// Application constants - all fixed values for the NBA player data extractor
const (
	// Application Info
	AppName    = "NBA Player Data Extractor"
	AppVersion = "1.2.0"

	// Network Timeouts
	DefaultHTTPTimeout = 30 * time.Second

	// Request Pacing
	// Each season request is followed by a randomized pause in this range so
	// the traffic resembles a person browsing the stats site.
	DefaultMinRequestDelay = 5 * time.Second
	DefaultMaxRequestDelay = 40 * time.Second

	// File Naming
	ExportFilePrefix    = "nba_player_data"
	LogFilePrefix       = "nba_data_extraction"
	FileTimestampLayout = "20060102_150405"

	// File Paths (relative to the working directory)
	DefaultLogsDir   = "Logs"
	DefaultOutputDir = "."

	// Log Settings
	DefaultLogLevel  = "info"
	DefaultLogOutput = "both"
)

// extractionSeasons lists every season the extractor covers, oldest first.
// The 2012-13 season is the earliest with the stat coverage the dataset
// needs; the list grows by one entry each autumn.
var extractionSeasons = []string{
	"2012-13",
	"2013-14",
	"2014-15",
	"2015-16",
	"2016-17",
	"2017-18",
	"2018-19",
	"2019-20",
	"2020-21",
	"2021-22",
	"2022-23",
	"2023-24",
	"2024-25",
}

// seasonTypeNames lists the season types fetched for each season, in
// request order.
var seasonTypeNames = []string{"RegularSeason", "Playoffs"}

// Seasons returns the seasons to extract, oldest first.
func Seasons() []string {
	out := make([]string, len(extractionSeasons))
	copy(out, extractionSeasons)
	return out
}

// SeasonTypeNames returns the season type names fetched per season, in
// request order.
func SeasonTypeNames() []string {
	out := make([]string, len(seasonTypeNames))
	copy(out, seasonTypeNames)
	return out
}
