package nba

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/time/rate"
)

// Config controls how the client reaches the stats API.
type Config struct {
	BaseURL           string
	HTTPClient        *http.Client
	RequestsPerSecond float64
}

// Client fetches league leaders data from the NBA stats API.
type Client struct {
	baseURL    string
	httpClient httpDoer
	limiter    *rate.Limiter
}

// NewClient constructs a stats API client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		limiter:    rate.NewLimiter(resolveRate(cfg.RequestsPerSecond), 1),
	}
}

// LeagueLeaders retrieves the league leaders board for one season key. It
// performs a single request with no retries; any transport failure, non-OK
// status, or unusable body comes back as an error and the caller decides
// what to do with the key.
func (c *Client) LeagueLeaders(ctx context.Context, key SeasonKey) (LeaderBoard, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return LeaderBoard{}, fmt.Errorf("league leaders %s: rate limit wait: %w", key, err)
	}

	req, err := c.buildRequest(ctx, key)
	if err != nil {
		return LeaderBoard{}, fmt.Errorf("league leaders %s: %w", key, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return LeaderBoard{}, fmt.Errorf("league leaders %s: %w", key, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return LeaderBoard{}, fmt.Errorf("league leaders %s: unexpected status %d: %s", key, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload leagueLeadersResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return LeaderBoard{}, fmt.Errorf("league leaders %s: decode response: %w", key, err)
	}

	if payload.ResultSet.Headers == nil || payload.ResultSet.RowSet == nil {
		return LeaderBoard{}, fmt.Errorf("league leaders %s: response missing resultSet data", key)
	}

	return LeaderBoard{
		Headers: payload.ResultSet.Headers,
		Rows:    payload.ResultSet.RowSet,
	}, nil
}

func (c *Client) buildRequest(ctx context.Context, key SeasonKey) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+leagueLeadersPath, nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Set("LeagueID", paramLeagueID)
	q.Set("PerMode", paramPerMode)
	q.Set("Scope", paramScope)
	q.Set("Season", key.Season)
	q.Set("SeasonType", key.Type.QueryValue())
	q.Set("StatCategory", paramStatCategory)
	// The stats API wants the season type space as %20, not the +
	// url.Values produces.
	req.URL.RawQuery = strings.ReplaceAll(q.Encode(), "+", "%20")

	req.Header.Set("Accept", acceptValue)
	req.Header.Set("Referer", refererValue)
	req.Header.Set("User-Agent", userAgent)

	return req, nil
}
