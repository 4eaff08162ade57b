package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tkaraca/duelviz/internal/config"
	"github.com/tkaraca/duelviz/internal/logger"
	"github.com/tkaraca/duelviz/internal/model"
	"github.com/tkaraca/duelviz/internal/sofascore"
	"github.com/tkaraca/duelviz/internal/storage"
)

var fetchForce bool

var fetchCmd = &cobra.Command{
	Use:   "fetch <match-id>",
	Short: "Fetch a match's raw statistics into the local cache",
	Args:  cobra.ExactArgs(1),
	RunE:  runFetch,
}

func init() {
	fetchCmd.Flags().BoolVar(&fetchForce, "force", false, "refetch even if cached")
}

func runFetch(cmd *cobra.Command, args []string) error {
	matchID, err := parseMatchID(args[0])
	if err != nil {
		return err
	}

	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	raw, err := loadOrFetch(cmd.Context(), log, cfg, matchID, fetchForce)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Cached match %d: %s vs %s (%d player rows, %d team stat rows)\n",
		raw.MatchID, raw.Info.HomeTeam, raw.Info.AwayTeam, len(raw.Players), len(raw.TeamStats))
	return nil
}

// loadOrFetch returns the cached raw match, fetching and caching it from the
// provider when missing (or when force is set).
func loadOrFetch(ctx context.Context, log zerolog.Logger, cfg *config.Config, matchID int64, force bool) (*model.RawMatch, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	if !force {
		cached, err := db.GetMatch(matchID)
		if err != nil {
			return nil, err
		}
		if cached != nil {
			log.Debug().Int64("match_id", matchID).Msg("cache hit")
			return cached, nil
		}
	}

	opts := []sofascore.Option{
		sofascore.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, sofascore.WithBaseURL(cfg.BaseURL))
	}
	if cfg.UserAgent != "" {
		opts = append(opts, sofascore.WithUserAgent(cfg.UserAgent))
	}
	client := sofascore.New(opts...)

	log.Info().Int64("match_id", matchID).Msg("fetching match data")
	raw, err := client.FetchMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if err := db.PutMatch(raw); err != nil {
		return nil, err
	}
	log.Info().
		Int("players", len(raw.Players)).
		Int("team_stats", len(raw.TeamStats)).
		Msg("match cached")
	return raw, nil
}
