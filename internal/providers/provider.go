package providers

import (
	"context"

	"premier-league-notifier/internal/standings"
)

// StandingsProvider defines how upstream standings data is fetched and
// normalized. Implementations issue exactly one upstream request per call.
type StandingsProvider interface {
	FetchStandings(ctx context.Context) (standings.Document, error)
}
