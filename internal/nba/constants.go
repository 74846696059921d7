package nba

import "time"

const (
	defaultBaseURL     = "https://stats.nba.com/stats"
	defaultHTTPTimeout = 30 * time.Second

	leagueLeadersPath = "/leagueleaders"

	// Fixed query parameters for the league leaders endpoint. The extractor
	// always requests league-wide per-game averages ranked by points.
	paramLeagueID     = "00" // NBA
	paramPerMode      = "PerGame"
	paramScope        = "S"
	paramStatCategory = "PTS"

	// stats.nba.com rejects requests that do not look like they come from
	// a browser on nba.com.
	acceptValue  = "application/json"
	refererValue = "https://www.nba.com/"
	userAgent    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	// Hard floor between consecutive requests. The orchestrator adds much
	// longer randomized pauses on top; this only guards direct callers.
	defaultRequestsPerSecond = 0.5
)
