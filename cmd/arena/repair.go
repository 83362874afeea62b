package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/pokearena/tactics-arena/internal/errors"
	progressionrepo "github.com/pokearena/tactics-arena/internal/repositories/progression"
	"github.com/pokearena/tactics-arena/internal/services/progression"
)

func newRepairCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "repair",
		Short: "Scan stored progress and repair broken snapshots",
		Long: `Load every progress snapshot stored in Redis. Unreadable snapshots are
reset and snapshots whose unlocks disagree with their level are repaired.
Requires --redis.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			client := opts.app.redis
			if client == nil {
				return errors.FailedPrecondition("repair needs --redis")
			}

			var checked, recovered, repaired int
			iter := client.Scan(ctx, 0, progressionrepo.KeyPrefix+"*", 0).Iterator()
			for iter.Next(ctx) {
				playerID := strings.TrimPrefix(iter.Val(), progressionrepo.KeyPrefix)
				checked++

				loaded, err := opts.app.progression.Load(ctx, &progression.LoadInput{PlayerID: playerID})
				if err != nil {
					printf(cmd, "✗ %s: %v\n", playerID, err)
					continue
				}
				switch {
				case loaded.Recovered:
					recovered++
					printf(cmd, "✗ %s: unreadable, reset to a new player\n", playerID)
				case loaded.Repaired:
					repaired++
					printf(cmd, "✓ %s: unlocks repaired for level %d\n", playerID, loaded.State.Level)
				}
			}
			if err := iter.Err(); err != nil {
				return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to scan progress keys")
			}

			printf(cmd, "\nChecked %d players: %d reset, %d repaired\n", checked, recovered, repaired)
			return nil
		},
	}
}
