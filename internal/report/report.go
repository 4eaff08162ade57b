package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/tkaraca/duelviz/internal/model"
)

// PrintMatchSummary prints a one-line match header.
func PrintMatchSummary(w io.Writer, m model.MatchSummary) {
	fmt.Fprintf(w, "\n%s - %s  |  %s %d - %d %s  |  %s\n\n",
		m.Tournament, m.Season, m.HomeTeam, m.HomeScore, m.AwayScore, m.AwayTeam, m.Date)
}

// PrintDuelTable prints one row per eligible player, best ranked first.
// Records arrive in draw order (lowest rank first), so iteration runs
// backwards.
func PrintDuelTable(w io.Writer, players []model.PlayerDuelRecord) {
	table := tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))

	table.Header("PLAYER", "MIN", "WON", "LOST", "TOTAL", "WIN%")

	for i := len(players) - 1; i >= 0; i-- {
		p := players[i]
		winPct := "—"
		if p.Total() > 0 {
			winPct = fmt.Sprintf("%.0f%%", float64(p.Won)/float64(p.Total())*100)
		}
		table.Append(
			p.Name,
			strconv.Itoa(p.Minutes),
			strconv.Itoa(p.Won),
			strconv.Itoa(p.Lost),
			strconv.Itoa(p.Total()),
			winPct,
		)
	}
	table.Render()
}

// PrintTeamSummary prints the team-vs-opponent duel split.
func PrintTeamSummary(w io.Writer, s model.TeamDuelSummary) {
	fmt.Fprintf(w, "\nDuels: %s %d%% (%d)  vs  %s %d%% (%d)  |  total won: %d\n",
		s.TeamName, s.TeamPct, s.TeamWon,
		s.OpponentName, s.OpponentPct, s.OpponentWon,
		s.Total())
}
