package standings

// Document is the normalized standings response for one competition. The
// upstream API returns one table per ranking context (overall, home, away) in
// a fixed order; only the first table is ever rendered.
type Document struct {
	Tables []Table
}

// Table is an ordered sequence of rows, rank ascending as delivered by the
// source. Rows are never re-sorted.
type Table struct {
	Rows []Row
}

// Row is a single team's entry. Position, points and played games are
// pointers because the source document may omit any of them; the defaulting
// policy lives at the formatting boundary, not here.
type Row struct {
	Position    *int
	TeamName    string
	Points      *int
	PlayedGames *int
}
