package main

import (
	"github.com/spf13/cobra"

	"github.com/pokearena/tactics-arena/internal/orchestrators/arena"
)

func newTournamentCmd(opts *options) *cobra.Command {
	var (
		team   []string
		evolve bool
	)

	cmd := &cobra.Command{
		Use:   "tournament",
		Short: "Play a three stage tournament",
		Long: `Play the quarterfinal, semifinal and final in order. A loss ends the
tournament. Unlocked at level 20.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			party, err := opts.app.resolveTeam(ctx, opts.playerID, team)
			if err != nil {
				return err
			}

			out, err := opts.app.arena.Tournament(ctx, &arena.TournamentInput{
				PlayerID: opts.playerID,
				Team:     party,
			})
			if err != nil {
				return err
			}

			for _, stage := range out.Stages {
				printStage(cmd, stage, false)
			}
			if out.Champion {
				printf(cmd, "\n🏆 Champion!\n")
			} else {
				printf(cmd, "\n❌ Eliminated in the %s\n", out.Stages[len(out.Stages)-1].Stage)
			}

			if evolve {
				return opts.app.acceptAll(ctx, opts.playerID, out.Team, out.Stages)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&team, "team", nil, "Comma separated ids or names of your team (random when empty)")
	cmd.Flags().BoolVar(&evolve, "evolve", false, "Accept every evolution offered during the tournament")

	return cmd
}
