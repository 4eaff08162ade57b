package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tkaraca/duelviz/internal/dataset"
	"github.com/tkaraca/duelviz/internal/locale"
	"github.com/tkaraca/duelviz/internal/report"
	"github.com/tkaraca/duelviz/internal/storage"
)

var showTeam string

var showCmd = &cobra.Command{
	Use:   "show <match-id>",
	Short: "Print a cached match's duel dataset as tables",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().StringVar(&showTeam, "team", "Galatasaray", "team to analyze")
}

func runShow(cmd *cobra.Command, args []string) error {
	matchID, err := parseMatchID(args[0])
	if err != nil {
		return err
	}

	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	raw, err := db.GetMatch(matchID)
	if err != nil {
		return err
	}
	if raw == nil {
		fmt.Fprintf(os.Stderr, "Match %d not cached. Run 'duelviz fetch %d' first.\n", matchID, matchID)
		return nil
	}

	loc := locale.Turkish()
	summary, err := dataset.BuildMatchSummary(raw.Info, loc)
	if err != nil {
		return err
	}
	players := dataset.BuildPlayers(raw.Players, showTeam)
	team, err := dataset.BuildTeamSummary(raw.TeamStats, raw.Info.HomeTeam, raw.Info.AwayTeam, showTeam)
	if err != nil {
		return err
	}

	report.PrintMatchSummary(os.Stdout, summary)
	report.PrintDuelTable(os.Stdout, players)
	report.PrintTeamSummary(os.Stdout, team)
	return nil
}
