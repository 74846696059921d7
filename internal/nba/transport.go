package nba

import (
	"net/http"
	"strings"

	"golang.org/x/time/rate"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

func resolveHTTPClient(client *http.Client) httpDoer {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: defaultHTTPTimeout}
}

func normalizeBaseURL(raw string) string {
	if raw == "" {
		raw = defaultBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}

func resolveRate(rps float64) rate.Limit {
	if rps <= 0 {
		return rate.Limit(defaultRequestsPerSecond)
	}
	return rate.Limit(rps)
}
