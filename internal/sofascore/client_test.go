package sofascore

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

const eventJSON = `{"event": {
	"tournament": {"name": "Süper Lig"},
	"homeTeam": {"name": "Galatasaray"},
	"awayTeam": {"name": "Fenerbahçe"},
	"homeScore": {"current": 2},
	"awayScore": {"current": 1},
	"startTimestamp": 1762110000
}}`

const lineupsJSON = `{
	"home": {"players": [
		{"player": {"name": "Keeper", "position": "G"}, "substitute": false,
		 "statistics": {"minutesPlayed": 90, "duelWon": 1, "duelLost": 0}},
		{"player": {"name": "Starter", "position": "M"}, "substitute": false,
		 "statistics": {"minutesPlayed": 90, "duelWon": 3, "duelLost": 1}},
		{"player": {"name": "Unused", "position": "F"}, "substitute": true}
	]},
	"away": {"players": [
		{"player": {"name": "AwayMid", "position": "M"}, "substitute": false,
		 "statistics": {"minutesPlayed": 85, "duelLost": 2}}
	]}
}`

const statisticsJSON = `{"statistics": [
	{"period": "ALL", "groups": [
		{"groupName": "Duels", "statisticsItems": [
			{"name": "Duels", "home": "51%", "away": "49%", "homeValue": 51, "awayValue": 49},
			{"name": "Ground duels", "home": "28", "away": "25", "homeValue": 28, "awayValue": 25}
		]}
	]},
	{"period": "1ST", "groups": [
		{"groupName": "Duels", "statisticsItems": [
			{"name": "Duels", "home": "60%", "away": "40%", "homeValue": 60, "awayValue": 40}
		]}
	]}
]}`

func testServer(t *testing.T) *Client {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/event/100", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(eventJSON))
	})
	mux.HandleFunc("/event/100/lineups", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(lineupsJSON))
	})
	mux.HandleFunc("/event/100/statistics", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(statisticsJSON))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return New(WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
}

func TestMatchInfo(t *testing.T) {
	c := testServer(t)
	info, err := c.MatchInfo(context.Background(), 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.HomeTeam != "Galatasaray" || info.AwayTeam != "Fenerbahçe" {
		t.Errorf("unexpected teams: %+v", info)
	}
	if info.HomeScore != 2 || info.AwayScore != 1 {
		t.Errorf("unexpected score: %+v", info)
	}
	if info.Tournament != "Süper Lig" || info.StartTimestamp != 1762110000 {
		t.Errorf("unexpected metadata: %+v", info)
	}
}

func TestPlayerStats_FlattensLineups(t *testing.T) {
	c := testServer(t)
	rows, err := c.PlayerStats(context.Background(), 100, "Galatasaray", "Fenerbahçe")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}

	starter := rows[1]
	if starter.Name != "Starter" || starter.TeamName != "Galatasaray" {
		t.Errorf("unexpected row: %+v", starter)
	}
	if starter.DuelsWon == nil || *starter.DuelsWon != 3 {
		t.Errorf("expected duelsWon 3, got %v", starter.DuelsWon)
	}

	// A player without a statistics block keeps nil stats.
	unused := rows[2]
	if !unused.Substitute || unused.DuelsWon != nil || unused.MinutesPlayed != nil {
		t.Errorf("expected nil stats for unused sub, got %+v", unused)
	}

	// A partially filled statistics block keeps only the present fields.
	awayMid := rows[3]
	if awayMid.TeamName != "Fenerbahçe" {
		t.Errorf("away row not tagged with away team: %+v", awayMid)
	}
	if awayMid.DuelsWon != nil || awayMid.DuelsLost == nil || *awayMid.DuelsLost != 2 {
		t.Errorf("expected duelsWon nil and duelsLost 2, got %+v", awayMid)
	}
}

func TestTeamStats_FlattensAllPeriods(t *testing.T) {
	c := testServer(t)
	rows, err := c.TeamStats(context.Background(), 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0].Period != "ALL" || rows[0].Name != "Duels" || rows[0].Home != "51%" {
		t.Errorf("unexpected first row: %+v", rows[0])
	}
	if rows[2].Period != "1ST" {
		t.Errorf("expected 1ST period row last, got %+v", rows[2])
	}
}

func TestFetchMatch_BundlesCategories(t *testing.T) {
	c := testServer(t)
	raw, err := c.FetchMatch(context.Background(), 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if raw.MatchID != 100 || len(raw.Players) != 4 || len(raw.TeamStats) != 3 {
		t.Errorf("unexpected bundle: id=%d players=%d stats=%d", raw.MatchID, len(raw.Players), len(raw.TeamStats))
	}
	if raw.FetchedAt.IsZero() {
		t.Error("expected FetchedAt to be set")
	}
}

func TestGetJSON_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(srv.Close)
	c := New(WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))

	_, err := c.MatchInfo(context.Background(), 42)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetJSON_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	t.Cleanup(srv.Close)
	c := New(WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))

	_, err := c.MatchInfo(context.Background(), 42)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Status != http.StatusTooManyRequests {
		t.Errorf("expected status 429, got %d", apiErr.Status)
	}
}
