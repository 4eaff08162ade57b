// Package dataset turns raw provider rows into the ordered, presentation
// ready structures the chart engine consumes: one duel record per eligible
// player, a team-vs-opponent duel summary, and the localized match header.
package dataset

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/tkaraca/duelviz/internal/locale"
	"github.com/tkaraca/duelviz/internal/model"
)

// ErrTeamNotFound is returned when the requested team is neither the home
// nor the away side of the match.
var ErrTeamNotFound = errors.New("team not in match")

// goalkeeperPosition is the provider's position code for goalkeepers.
const goalkeeperPosition = "G"

// Team-statistics row labels consumed by BuildTeamSummary.
const (
	statDuels       = "Duels"
	statGroundDuels = "Ground duels"
	statAerialDuels = "Aerial duels"
	periodAll       = "ALL"
)

// BuildPlayers filters the raw rows down to the requested team's starting
// outfield players, defaults missing stats to zero, and orders the result
// for drawing: sorted by (total duels desc, duels won desc), then reversed
// so the top-ranked player comes last: the chart draws row 0 at the bottom
// and the best player must end up at the top.
//
// Zero eligible players is a valid outcome, not an error.
func BuildPlayers(rows []model.RawPlayerRow, teamName string) []model.PlayerDuelRecord {
	records := make([]model.PlayerDuelRecord, 0, len(rows))
	for _, row := range rows {
		if row.Position == goalkeeperPosition || row.Substitute || row.TeamName != teamName {
			continue
		}
		records = append(records, model.PlayerDuelRecord{
			Name:    row.Name,
			Minutes: orZero(row.MinutesPlayed),
			Won:     orZero(row.DuelsWon),
			Lost:    orZero(row.DuelsLost),
		})
	}

	// Stable: players tied on both keys keep their lineup order.
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Total() != records[j].Total() {
			return records[i].Total() > records[j].Total()
		}
		return records[i].Won > records[j].Won
	})

	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records
}

// orZero applies the missing-value policy: an absent stat counts as zero, so
// duel totals are always defined and non-negative.
func orZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

// ResolveSide determines whether teamName is the home or away side. The
// result is resolved once and reused for both the percentage and the count
// rows, so the two splits can never disagree on side assignment.
func ResolveSide(teamName, homeTeam, awayTeam string) (model.Side, error) {
	switch teamName {
	case homeTeam:
		return model.SideHome, nil
	case awayTeam:
		return model.SideAway, nil
	}
	return 0, fmt.Errorf("%w: %q is neither %q nor %q", ErrTeamNotFound, teamName, homeTeam, awayTeam)
}

// BuildTeamSummary derives the legend data from the full-match team rows.
// The win percentage comes from the "Duels" row's display strings and the
// win counts from the summed "Ground duels" + "Aerial duels" values; the two
// are independently sourced and deliberately not cross-validated.
func BuildTeamSummary(rows []model.RawTeamStatRow, homeTeam, awayTeam, teamName string) (model.TeamDuelSummary, error) {
	side, err := ResolveSide(teamName, homeTeam, awayTeam)
	if err != nil {
		return model.TeamDuelSummary{}, err
	}
	opponentName := homeTeam
	if side == model.SideHome {
		opponentName = awayTeam
	}

	duels, err := findRow(rows, statDuels)
	if err != nil {
		return model.TeamDuelSummary{}, err
	}
	ground, err := findRow(rows, statGroundDuels)
	if err != nil {
		return model.TeamDuelSummary{}, err
	}
	aerial, err := findRow(rows, statAerialDuels)
	if err != nil {
		return model.TeamDuelSummary{}, err
	}

	teamPctStr, opponentPctStr := duels.Home, duels.Away
	if side == model.SideAway {
		teamPctStr, opponentPctStr = duels.Away, duels.Home
	}
	teamPct, err := parsePercent(teamPctStr)
	if err != nil {
		return model.TeamDuelSummary{}, err
	}
	opponentPct, err := parsePercent(opponentPctStr)
	if err != nil {
		return model.TeamDuelSummary{}, err
	}

	teamWon := int(ground.HomeValue) + int(aerial.HomeValue)
	opponentWon := int(ground.AwayValue) + int(aerial.AwayValue)
	if side == model.SideAway {
		teamWon, opponentWon = opponentWon, teamWon
	}

	return model.TeamDuelSummary{
		TeamName:     teamName,
		OpponentName: opponentName,
		TeamPct:      teamPct,
		OpponentPct:  opponentPct,
		TeamWon:      teamWon,
		OpponentWon:  opponentWon,
	}, nil
}

// findRow returns the first full-match row with the given label.
func findRow(rows []model.RawTeamStatRow, name string) (model.RawTeamStatRow, error) {
	for _, row := range rows {
		if row.Period == periodAll && row.Name == name {
			return row, nil
		}
	}
	return model.RawTeamStatRow{}, fmt.Errorf("team stats: no %q row for period %s", name, periodAll)
}

// parsePercent parses values like "51%" (or a bare "51") to an integer.
func parsePercent(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(strings.ReplaceAll(s, "%", "")))
	if err != nil {
		return 0, fmt.Errorf("parse percentage %q: %w", s, err)
	}
	return n, nil
}

// BuildMatchSummary localizes the raw match metadata for the title band.
func BuildMatchSummary(info model.RawMatchInfo, loc *locale.Table) (model.MatchSummary, error) {
	date, err := loc.FormatDate(info.StartTimestamp)
	if err != nil {
		return model.MatchSummary{}, fmt.Errorf("match metadata: %w", err)
	}
	return model.MatchSummary{
		HomeTeam:   info.HomeTeam,
		AwayTeam:   info.AwayTeam,
		HomeScore:  info.HomeScore,
		AwayScore:  info.AwayScore,
		Tournament: loc.TournamentName(info.Tournament),
		Season:     locale.Season(info.StartTimestamp),
		Date:       date,
	}, nil
}
