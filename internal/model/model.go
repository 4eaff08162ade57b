package model

import (
	"fmt"
	"time"
)

// Side represents a team's home/away designation within a match.
type Side int

const (
	SideHome Side = iota
	SideAway
)

func (s Side) String() string {
	if s == SideHome {
		return "home"
	}
	return "away"
}

// ---- Raw rows supplied by the stats provider ----

// RawMatchInfo holds match metadata as delivered by the provider.
type RawMatchInfo struct {
	HomeTeam       string `json:"homeTeam"`
	AwayTeam       string `json:"awayTeam"`
	HomeScore      int    `json:"homeScore"`
	AwayScore      int    `json:"awayScore"`
	Tournament     string `json:"tournament"`
	StartTimestamp int64  `json:"startTimestamp"` // kickoff, Unix seconds
}

// RawPlayerRow is one player's line from the provider's lineup statistics.
// Numeric stat fields are pointers: the provider omits statistics entirely
// for players who never entered the pitch, and a missing value must stay
// distinguishable from an explicit zero until the builder normalizes it.
type RawPlayerRow struct {
	Name          string `json:"name"`
	Position      string `json:"position"` // "G", "D", "M", "F"
	Substitute    bool   `json:"substitute"`
	TeamName      string `json:"teamName"`
	MinutesPlayed *int   `json:"minutesPlayed,omitempty"`
	DuelsWon      *int   `json:"duelsWon,omitempty"`
	DuelsLost     *int   `json:"duelsLost,omitempty"`
}

// RawTeamStatRow is one labeled team-statistics line ("Duels", "Ground
// duels", ...). Home/Away carry the display strings (possibly "51%"),
// HomeValue/AwayValue the numeric counts.
type RawTeamStatRow struct {
	Period    string  `json:"period"` // "ALL", "1ST", "2ND"
	Name      string  `json:"name"`
	Home      string  `json:"home"`
	Away      string  `json:"away"`
	HomeValue float64 `json:"homeValue"`
	AwayValue float64 `json:"awayValue"`
}

// RawMatch bundles everything fetched for one match. It is what gets cached
// between invocations.
type RawMatch struct {
	MatchID   int64            `json:"matchId"`
	FetchedAt time.Time        `json:"fetchedAt"`
	Info      RawMatchInfo     `json:"info"`
	Players   []RawPlayerRow   `json:"players"`
	TeamStats []RawTeamStatRow `json:"teamStats"`
}

// ---- Presentation entities produced by the dataset builder ----

// MatchSummary is the localized match header used for the chart title band.
type MatchSummary struct {
	HomeTeam   string
	AwayTeam   string
	HomeScore  int
	AwayScore  int
	Tournament string // localized
	Season     string // e.g. "2025/2026"
	Date       string // e.g. "2 Kasım 2025"
}

// Subtitle assembles the single-line match description drawn under the title.
func (m MatchSummary) Subtitle() string {
	return fmt.Sprintf("%s - %s | %s %d - %d %s (%s)",
		m.Tournament, m.Season, m.HomeTeam, m.HomeScore, m.AwayScore, m.AwayTeam, m.Date)
}

// PlayerDuelRecord is one eligible player's duel line, ready for drawing.
type PlayerDuelRecord struct {
	Name    string
	Minutes int
	Won     int
	Lost    int
}

// Total returns the player's combined duel count.
func (r PlayerDuelRecord) Total() int { return r.Won + r.Lost }

// TeamDuelSummary is the team-vs-opponent duel split for the legend bar.
// TeamPct and OpponentPct come from the provider's percentage row while the
// win counts come from summed ground+aerial rows; the two splits are sourced
// independently and need not agree.
type TeamDuelSummary struct {
	TeamName     string
	OpponentName string
	TeamPct      int
	OpponentPct  int
	TeamWon      int
	OpponentWon  int
}

// Total returns the combined duel wins of both teams.
func (s TeamDuelSummary) Total() int { return s.TeamWon + s.OpponentWon }
