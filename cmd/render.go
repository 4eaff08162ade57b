package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tkaraca/duelviz/internal/chart"
	"github.com/tkaraca/duelviz/internal/config"
	"github.com/tkaraca/duelviz/internal/dataset"
	"github.com/tkaraca/duelviz/internal/locale"
	"github.com/tkaraca/duelviz/internal/logger"
)

var (
	renderTeam   string
	renderOutput string
	renderForce  bool
)

var renderCmd = &cobra.Command{
	Use:   "render <match-id>",
	Short: "Render the duel infographic for a match",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderTeam, "team", "Galatasaray", "team to analyze")
	renderCmd.Flags().StringVar(&renderOutput, "output", "duels_chart.png", "output image path")
	renderCmd.Flags().BoolVar(&renderForce, "force", false, "refetch even if cached")
}

func runRender(cmd *cobra.Command, args []string) error {
	matchID, err := parseMatchID(args[0])
	if err != nil {
		return err
	}

	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	raw, err := loadOrFetch(cmd.Context(), log, cfg, matchID, renderForce)
	if err != nil {
		return err
	}

	loc := locale.Turkish()
	summary, err := dataset.BuildMatchSummary(raw.Info, loc)
	if err != nil {
		return err
	}
	players := dataset.BuildPlayers(raw.Players, renderTeam)
	if len(players) == 0 {
		log.Warn().Str("team", renderTeam).Msg("no eligible players; rendering empty chart panel")
	}
	team, err := dataset.BuildTeamSummary(raw.TeamStats, raw.Info.HomeTeam, raw.Info.AwayTeam, renderTeam)
	if err != nil {
		return err
	}

	renderer, err := chart.NewRenderer(chart.Default(), loc)
	if err != nil {
		return err
	}
	if err := renderer.Render(players, summary, team, renderOutput); err != nil {
		return err
	}

	log.Info().
		Str("output", renderOutput).
		Int("players", len(players)).
		Int("team_pct", team.TeamPct).
		Msg("chart saved")
	return nil
}
