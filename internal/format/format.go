// Package format renders a standings document as the plain-text body of a
// notification. Rendering is a total function: missing fields degrade to
// placeholders and never produce an error.
package format

import (
	"fmt"
	"strconv"
	"strings"

	"premier-league-notifier/internal/standings"
)

const (
	// Header is the first line of every non-empty standings message.
	Header = "Premier League Standings:"

	// EmptyMessage is returned when the document carries no tables.
	EmptyMessage = "No standings data available."

	unknownTeam = "Unknown Team"
	notAvail    = "N/A"
)

// Render produces the notification text for a standings document. Only the
// first table (the overall ranking) is rendered; rows appear in document
// order.
func Render(doc standings.Document) string {
	if len(doc.Tables) == 0 {
		return EmptyMessage
	}

	rows := doc.Tables[0].Rows
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, Header)
	for _, row := range rows {
		lines = append(lines, rowLine(row))
	}
	return strings.Join(lines, "\n")
}

// rowLine is the whole defaulting policy: every optional field falls back to
// its placeholder here and nowhere else.
func rowLine(row standings.Row) string {
	team := row.TeamName
	if team == "" {
		team = unknownTeam
	}
	return fmt.Sprintf("%s. %s - %s points (%s played)",
		intOrNA(row.Position), team, intOrNA(row.Points), intOrNA(row.PlayedGames))
}

func intOrNA(v *int) string {
	if v == nil {
		return notAvail
	}
	return strconv.Itoa(*v)
}
