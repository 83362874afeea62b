package main

import (
	"github.com/spf13/cobra"

	"github.com/pokearena/tactics-arena/internal/entities"
	"github.com/pokearena/tactics-arena/internal/errors"
	"github.com/pokearena/tactics-arena/internal/orchestrators/arena"
)

func newBattleCmd(opts *options) *cobra.Command {
	var (
		team     []string
		opponent []string
		evolve   bool
		quiet    bool
	)

	cmd := &cobra.Command{
		Use:   "battle",
		Short: "Fight a single battle",
		Long: `Fight one battle against a random opponent team of the same size,
or against the team given with --opponent. Examples:

  arena battle --team Salamèche,Carapuce
  arena battle --team 25 --opponent 74 --evolve`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			party, err := opts.app.resolveTeam(ctx, opts.playerID, team)
			if err != nil {
				return err
			}

			var rivals []*entities.Pokemon
			for _, ref := range opponent {
				p, err := opts.app.dex.GetPokemon(ctx, ref)
				if err != nil {
					return errors.Wrapf(err, "unknown opponent %q", ref)
				}
				rivals = append(rivals, p)
			}

			out, err := opts.app.arena.FreeBattle(ctx, &arena.FreeBattleInput{
				PlayerID: opts.playerID,
				Team:     party,
				Opponent: rivals,
			})
			if err != nil {
				return err
			}
			printStage(cmd, out.Stage, !quiet)

			if evolve {
				return opts.app.acceptAll(ctx, opts.playerID, out.Team, []*arena.StageResult{out.Stage})
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&team, "team", nil, "Comma separated ids or names of your team (random when empty)")
	cmd.Flags().StringSliceVar(&opponent, "opponent", nil, "Comma separated ids or names of the opponent team")
	cmd.Flags().BoolVar(&evolve, "evolve", false, "Accept every evolution offered after the battle")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Hide the turn by turn log")

	return cmd
}
