package footballdata

import "time"

const (
	providerName = "football-data"

	defaultBaseURL     = "https://api.football-data.org/v4"
	defaultHTTPTimeout = 10 * time.Second

	// football-data.org authenticates via this header rather than a bearer
	// token.
	authHeader = "X-Auth-Token"

	// Single hardcoded competition: the Premier League.
	competitionCode = "PL"
)
