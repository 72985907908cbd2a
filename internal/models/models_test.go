package models

import (
	"encoding/json"
	"testing"
)

func intPtr(v int) *int { return &v }
func strPtr(v string) *string { return &v }

// TestSimplifyRow tests the upstream row to caller row mapping
func TestSimplifyRow(t *testing.T) {
	t.Run("FullRowWithoutCrest", func(t *testing.T) {
		row := TableRow{
			Position:       intPtr(1),
			Team:           &TeamRef{Name: strPtr("Real Madrid")},
			PlayedGames:    intPtr(10),
			Won:            intPtr(8),
			Draw:           intPtr(1),
			Lost:           intPtr(1),
			GoalsFor:       intPtr(20),
			GoalsAgainst:   intPtr(5),
			GoalDifference: intPtr(15),
			Points:         intPtr(25),
			Form:           strPtr("WWWDW"),
		}

		data, err := json.Marshal(SimplifyRow(row))
		if err != nil {
			t.Fatalf("Marshal failed: %v", err)
		}

		expected := `{"position":1,"team":"Real Madrid","crest":null,"played":10,"won":8,"draw":1,"lost":1,"goalsFor":20,"goalsAgainst":5,"goalDifference":15,"points":25,"form":"WWWDW"}`
		if string(data) != expected {
			t.Errorf("Expected %s, got %s", expected, string(data))
		}
	})

	t.Run("MissingTeamAndEmptyForm", func(t *testing.T) {
		row := TableRow{Position: intPtr(3), Form: strPtr("")}

		data, err := json.Marshal(SimplifyRow(row))
		if err != nil {
			t.Fatalf("Marshal failed: %v", err)
		}

		expected := `{"position":3,"crest":null,"form":null}`
		if string(data) != expected {
			t.Errorf("Expected %s, got %s", expected, string(data))
		}
	})

	t.Run("EmptyCrestBecomesNull", func(t *testing.T) {
		row := TableRow{Team: &TeamRef{Name: strPtr("Girona FC"), Crest: strPtr("")}}
		simplified := SimplifyRow(row)
		if simplified.Crest != nil {
			t.Errorf("Expected nil crest, got %q", *simplified.Crest)
		}
		if simplified.Team == nil || *simplified.Team != "Girona FC" {
			t.Errorf("Expected team Girona FC, got %v", simplified.Team)
		}
	})

	t.Run("CrestKept", func(t *testing.T) {
		crest := "https://crests.football-data.org/86.png"
		row := TableRow{Team: &TeamRef{Name: strPtr("Real Madrid"), Crest: strPtr(crest)}}
		simplified := SimplifyRow(row)
		if simplified.Crest == nil || *simplified.Crest != crest {
			t.Errorf("Expected crest %s, got %v", crest, simplified.Crest)
		}
	})
}

// TestFirstTable tests tolerant extraction of the first standings table
func TestFirstTable(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected int
	}{
		{name: "no standings key", payload: `{}`, expected: 0},
		{name: "empty standings", payload: `{"standings":[]}`, expected: 0},
		{name: "group without table", payload: `{"standings":[{"type":"TOTAL"}]}`, expected: 0},
		{name: "first group only", payload: `{"standings":[{"table":[{"position":1},{"position":2}]},{"table":[{"position":1}]}]}`, expected: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp StandingsResponse
			if err := json.Unmarshal([]byte(tt.payload), &resp); err != nil {
				t.Fatalf("Unmarshal failed: %v", err)
			}
			table := resp.FirstTable()
			if table == nil {
				t.Fatal("FirstTable should never return nil")
			}
			if len(table) != tt.expected {
				t.Errorf("Expected %d rows, got %d", tt.expected, len(table))
			}
		})
	}

	var nilResp *StandingsResponse
	if len(nilResp.FirstTable()) != 0 {
		t.Error("Expected empty table for nil response")
	}
}

// TestTopRows tests read-time slicing of the cached table
func TestTopRows(t *testing.T) {
	rows := SimplifyTable([]TableRow{{Position: intPtr(1)}, {Position: intPtr(2)}, {Position: intPtr(3)}})

	if got := TopRows(rows, 2); len(got) != 2 {
		t.Errorf("Expected 2 rows, got %d", len(got))
	}
	if got := TopRows(rows, 10); len(got) != 3 {
		t.Errorf("Expected 3 rows, got %d", len(got))
	}

	sliced := TopRows(rows, 1)
	sliced[0].Position = intPtr(99)
	if *rows[0].Position != 1 {
		t.Error("TopRows must not alias the source slice")
	}

	if got := TopRows(nil, 5); got == nil || len(got) != 0 {
		t.Errorf("Expected empty non-nil slice, got %v", got)
	}
}

// TestParseTop tests the permissive parsing of the top parameter
func TestParseTop(t *testing.T) {
	tests := []struct {
		raw      string
		expected int
	}{
		{raw: "", expected: 5},
		{raw: "1", expected: 1},
		{raw: "20", expected: 20},
		{raw: " 7 ", expected: 7},
		{raw: "3.7", expected: 3},
		{raw: "1e1", expected: 10},
		{raw: "0", expected: 5},
		{raw: "0.5", expected: 5},
		{raw: "-3", expected: 5},
		{raw: "21", expected: 5},
		{raw: "20.5", expected: 5},
		{raw: "abc", expected: 5},
		{raw: "NaN", expected: 5},
		{raw: "Infinity", expected: 5},
		{raw: "-1e400", expected: 5},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := ParseTop(tt.raw); got != tt.expected {
				t.Errorf("ParseTop(%q): expected %d, got %d", tt.raw, tt.expected, got)
			}
		})
	}
}

// TestCredentialValidation tests the required-field checks
func TestCredentialValidation(t *testing.T) {
	if err := (FootballCredentials{}).Validate(); err == nil {
		t.Error("Expected error for empty football token")
	}
	if err := (FootballCredentials{Token: "t"}).Validate(); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}

	complete := SpotifyCredentials{ClientID: "id", ClientSecret: "secret", RefreshToken: "refresh"}
	if err := complete.Validate(); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}

	missing := []SpotifyCredentials{
		{ClientSecret: "secret", RefreshToken: "refresh"},
		{ClientID: "id", RefreshToken: "refresh"},
		{ClientID: "id", ClientSecret: "secret"},
	}
	for i, creds := range missing {
		if err := creds.Validate(); err == nil {
			t.Errorf("Case %d: expected validation error", i)
		}
	}
}

// TestTrackArtistNames tests artist name extraction
func TestTrackArtistNames(t *testing.T) {
	var cp CurrentlyPlaying
	payload := `{"is_playing":true,"item":{"name":"Song","artists":[{"name":"A"},{"name":"B"}]}}`
	if err := json.Unmarshal([]byte(payload), &cp); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	names := cp.Item.ArtistNames()
	if len(names) != 2 || names[0] != "A" || names[1] != "B" {
		t.Errorf("Unexpected artist names: %v", names)
	}

	var nilTrack *TrackItem
	if nilTrack.ArtistNames() != nil {
		t.Error("Expected nil names for nil track")
	}
}
