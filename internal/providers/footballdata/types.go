package footballdata

type standingsResponse struct {
	Standings []tableResponse `json:"standings"`
}

type tableResponse struct {
	Table []rowResponse `json:"table"`
}

// rowResponse uses pointer fields so a row that omits a value can be told
// apart from one that reports zero.
type rowResponse struct {
	Position    *int          `json:"position"`
	Team        *teamResponse `json:"team"`
	Points      *int          `json:"points"`
	PlayedGames *int          `json:"playedGames"`
}

type teamResponse struct {
	Name string `json:"name"`
}
