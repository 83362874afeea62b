package main

import (
	"github.com/spf13/cobra"

	"github.com/pokearena/tactics-arena/internal/orchestrators/arena"
)

func newSurvivalCmd(opts *options) *cobra.Command {
	var (
		team      []string
		useRoster bool
		evolve    bool
	)

	cmd := &cobra.Command{
		Use:   "survival",
		Short: "Fight waves of random opponents",
		Long: `Fight consecutive waves until your team loses. The regular run has
3 waves; --roster switches to the endless run that unlocks roster entries.
Unlocked at level 12.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			party, err := opts.app.resolveTeam(ctx, opts.playerID, team)
			if err != nil {
				return err
			}

			out, err := opts.app.arena.Survival(ctx, &arena.SurvivalInput{
				PlayerID:  opts.playerID,
				Team:      party,
				UseRoster: useRoster,
			})
			if err != nil {
				return err
			}

			for _, stage := range out.Stages {
				printStage(cmd, stage, false)
			}
			printf(cmd, "\n🏁 Waves cleared: %d", out.WavesCleared)
			if out.Completed {
				printf(cmd, " (run completed)")
			}
			printf(cmd, "\n")
			for _, p := range out.Unlocked {
				printf(cmd, "  🔓 %s joined your roster\n", p.Name)
			}

			if evolve {
				return opts.app.acceptAll(ctx, opts.playerID, out.Team, out.Stages)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&team, "team", nil, "Comma separated ids or names of your team (random when empty)")
	cmd.Flags().BoolVar(&useRoster, "roster", false, "Play the endless run that unlocks roster entries")
	cmd.Flags().BoolVar(&evolve, "evolve", false, "Accept every evolution offered during the run")

	return cmd
}
