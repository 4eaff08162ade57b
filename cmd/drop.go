package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tkaraca/duelviz/internal/storage"
)

var dropCmd = &cobra.Command{
	Use:   "drop <match-id>",
	Short: "Remove a match from the cache",
	Args:  cobra.ExactArgs(1),
	RunE:  runDrop,
}

func runDrop(cmd *cobra.Command, args []string) error {
	matchID, err := parseMatchID(args[0])
	if err != nil {
		return err
	}

	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	deleted, err := db.DeleteMatch(matchID)
	if err != nil {
		return err
	}
	if !deleted {
		fmt.Fprintf(os.Stderr, "Match %d was not cached.\n", matchID)
		return nil
	}
	fmt.Fprintf(os.Stdout, "Dropped match %d.\n", matchID)
	return nil
}
