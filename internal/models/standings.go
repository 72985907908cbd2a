package models

import "time"

// Response sources for the standings payload
const (
	SourceCache = "cache"
	SourceLive  = "live"
)

// StandingsResponse is the subset of the football-data.org v4
// /competitions/{id}/standings payload that the service reads.
type StandingsResponse struct {
	Competition *CompetitionRef `json:"competition,omitempty"`
	Season      *SeasonRef      `json:"season,omitempty"`
	Standings   []StandingGroup `json:"standings"`
}

// CompetitionRef identifies the competition a table belongs to
type CompetitionRef struct {
	ID   *int    `json:"id,omitempty"`
	Name *string `json:"name,omitempty"`
	Code *string `json:"code,omitempty"`
}

// SeasonRef identifies the season a table belongs to
type SeasonRef struct {
	ID              *int    `json:"id,omitempty"`
	StartDate       *string `json:"startDate,omitempty"`
	EndDate         *string `json:"endDate,omitempty"`
	CurrentMatchday *int    `json:"currentMatchday,omitempty"`
}

// StandingGroup is one table (TOTAL, HOME, AWAY) of a competition
type StandingGroup struct {
	Stage *string    `json:"stage,omitempty"`
	Type  *string    `json:"type,omitempty"`
	Group *string    `json:"group,omitempty"`
	Table []TableRow `json:"table"`
}

// TableRow is one upstream table row. Every field is optional: the
// provider omits fields freely and SimplifyRow decides the fallback.
type TableRow struct {
	Position       *int     `json:"position"`
	Team           *TeamRef `json:"team"`
	PlayedGames    *int     `json:"playedGames"`
	Form           *string  `json:"form"`
	Won            *int     `json:"won"`
	Draw           *int     `json:"draw"`
	Lost           *int     `json:"lost"`
	Points         *int     `json:"points"`
	GoalsFor       *int     `json:"goalsFor"`
	GoalsAgainst   *int     `json:"goalsAgainst"`
	GoalDifference *int     `json:"goalDifference"`
}

// TeamRef is the team object nested in a table row
type TeamRef struct {
	ID        *int    `json:"id"`
	Name      *string `json:"name"`
	ShortName *string `json:"shortName"`
	TLA       *string `json:"tla"`
	Crest     *string `json:"crest"`
}

// SimplifiedRow is the table row returned to callers.
// Crest and Form are always present (null when unknown); the other
// fields are left out when the provider did not send them.
type SimplifiedRow struct {
	Position       *int    `json:"position,omitempty"`
	Team           *string `json:"team,omitempty"`
	Crest          *string `json:"crest"`
	Played         *int    `json:"played,omitempty"`
	Won            *int    `json:"won,omitempty"`
	Draw           *int    `json:"draw,omitempty"`
	Lost           *int    `json:"lost,omitempty"`
	GoalsFor       *int    `json:"goalsFor,omitempty"`
	GoalsAgainst   *int    `json:"goalsAgainst,omitempty"`
	GoalDifference *int    `json:"goalDifference,omitempty"`
	Points         *int    `json:"points,omitempty"`
	Form           *string `json:"form"`
}

// StandingsPayload is the success body of the standings endpoint
type StandingsPayload struct {
	Source    string          `json:"source"`
	Standings []SimplifiedRow `json:"standings"`
}

// StandingsCacheEntry is a snapshot of the full simplified table
type StandingsCacheEntry struct {
	Timestamp time.Time
	Data      []SimplifiedRow
}

// FirstTable returns the table of the first standings group, or an empty
// table when any level of the path is missing.
func (r *StandingsResponse) FirstTable() []TableRow {
	if r == nil || len(r.Standings) == 0 || r.Standings[0].Table == nil {
		return []TableRow{}
	}
	return r.Standings[0].Table
}

// SimplifyRow maps an upstream row onto the caller-facing shape
func SimplifyRow(row TableRow) SimplifiedRow {
	simplified := SimplifiedRow{
		Position:       row.Position,
		Crest:          nil,
		Played:         row.PlayedGames,
		Won:            row.Won,
		Draw:           row.Draw,
		Lost:           row.Lost,
		GoalsFor:       row.GoalsFor,
		GoalsAgainst:   row.GoalsAgainst,
		GoalDifference: row.GoalDifference,
		Points:         row.Points,
		Form:           nonEmpty(row.Form),
	}

	if row.Team != nil {
		simplified.Team = row.Team.Name
		simplified.Crest = nonEmpty(row.Team.Crest)
	}

	return simplified
}

// SimplifyTable maps every row, keeping upstream order
func SimplifyTable(rows []TableRow) []SimplifiedRow {
	simplified := make([]SimplifiedRow, 0, len(rows))
	for _, row := range rows {
		simplified = append(simplified, SimplifyRow(row))
	}
	return simplified
}

// TopRows returns a copy of the first limit rows
func TopRows(rows []SimplifiedRow, limit int) []SimplifiedRow {
	if limit < 0 {
		limit = 0
	}
	if limit > len(rows) {
		limit = len(rows)
	}
	out := make([]SimplifiedRow, limit)
	copy(out, rows[:limit])
	return out
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
