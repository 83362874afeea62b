package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pokearena/tactics-arena/internal/pkg/metrics"
)

// options holds the flags shared by every command
type options struct {
	dexPath   string
	redisAddr string
	playerID  string
	metrics   bool
	verbose   bool

	app *app
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "arena",
		Short: "Tactics Arena battle simulator",
		Long: `Tactics Arena simulates turn-based Pokémon battles, tracks player
progression and unlocks survival and tournament modes as you level up.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := slog.LevelWarn
			if opts.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

			a, err := newApp(cmd.Context(), &appConfig{
				DexPath:   opts.dexPath,
				RedisAddr: opts.redisAddr,
				Out:       cmd.OutOrStdout(),
			})
			if err != nil {
				return err
			}
			opts.app = a
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if opts.app == nil {
				return nil
			}
			defer opts.app.Close()

			if !opts.metrics {
				return nil
			}
			printf(cmd, "\n📈 Metrics\n")
			return metrics.WriteSummary(cmd.OutOrStdout(), opts.app.registry)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.dexPath, "dex", "data/dex.yaml", "Path to the YAML Pokémon catalog")
	flags.StringVar(&opts.redisAddr, "redis", "", "Redis address for progress storage (empty keeps progress in memory)")
	flags.StringVar(&opts.playerID, "player", "trainer", "Player whose progress is used")
	flags.BoolVar(&opts.metrics, "metrics", false, "Print a metric summary after the command")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newBattleCmd(opts))
	rootCmd.AddCommand(newSurvivalCmd(opts))
	rootCmd.AddCommand(newTournamentCmd(opts))
	rootCmd.AddCommand(newProgressCmd(opts))
	rootCmd.AddCommand(newRepairCmd(opts))

	return rootCmd
}
