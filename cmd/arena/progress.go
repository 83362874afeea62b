package main

import (
	"github.com/spf13/cobra"

	"github.com/pokearena/tactics-arena/internal/errors"
	"github.com/pokearena/tactics-arena/internal/repositories/roster"
	"github.com/pokearena/tactics-arena/internal/services/progression"
)

func newProgressCmd(opts *options) *cobra.Command {
	var reset bool

	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Show or reset your progression",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if reset {
				if _, err := opts.app.progression.Reset(ctx, &progression.ResetInput{PlayerID: opts.playerID}); err != nil {
					return err
				}
			}

			loaded, err := opts.app.progression.Load(ctx, &progression.LoadInput{PlayerID: opts.playerID})
			if err != nil {
				return err
			}
			if loaded.Recovered {
				printf(cmd, "⚠️  Saved progress was unreadable and has been reset\n")
			}
			printState(cmd, loaded.State)

			got, err := opts.app.rosterRepo.Get(ctx, roster.GetInput{PlayerID: opts.playerID})
			switch {
			case errors.IsNotFound(err):
				return nil
			case err != nil:
				return err
			}
			printf(cmd, "Roster: %v\n", got.Roster.PokemonIDs)
			return nil
		},
	}

	cmd.Flags().BoolVar(&reset, "reset", false, "Reset progression to a new player")

	return cmd
}
