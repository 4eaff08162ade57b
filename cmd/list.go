package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tkaraca/duelviz/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all cached matches",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	matches, err := db.ListMatches()
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		fmt.Fprintln(os.Stdout, "No matches cached yet. Run 'duelviz fetch <match-id>' to add one.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-10s  %-24s  %-24s  %-24s  %s\n",
		"MATCH", "HOME", "AWAY", "TOURNAMENT", "FETCHED")
	fmt.Fprintf(os.Stdout, "%-10s  %-24s  %-24s  %-24s  %s\n",
		"──────────", "────────────────────────", "────────────────────────", "────────────────────────", "───────")
	for _, m := range matches {
		fmt.Fprintf(os.Stdout, "%-10d  %-24s  %-24s  %-24s  %s\n",
			m.MatchID, m.HomeTeam, m.AwayTeam, m.Tournament, m.FetchedAt)
	}
	return nil
}
