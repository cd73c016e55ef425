package footballdata

import "premier-league-notifier/internal/standings"

func mapDocument(payload standingsResponse) standings.Document {
	doc := standings.Document{Tables: make([]standings.Table, 0, len(payload.Standings))}
	for _, t := range payload.Standings {
		doc.Tables = append(doc.Tables, mapTable(t))
	}
	return doc
}

func mapTable(t tableResponse) standings.Table {
	table := standings.Table{Rows: make([]standings.Row, 0, len(t.Table))}
	for _, r := range t.Table {
		table.Rows = append(table.Rows, mapRow(r))
	}
	return table
}

func mapRow(r rowResponse) standings.Row {
	row := standings.Row{
		Position:    r.Position,
		Points:      r.Points,
		PlayedGames: r.PlayedGames,
	}
	if r.Team != nil {
		row.TeamName = r.Team.Name
	}
	return row
}
