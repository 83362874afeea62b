package arena

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pokearena/tactics-arena/internal/clients/dex"
	"github.com/pokearena/tactics-arena/internal/entities"
	"github.com/pokearena/tactics-arena/internal/errors"
	"github.com/pokearena/tactics-arena/internal/pkg/metrics"
	"github.com/pokearena/tactics-arena/internal/repositories/roster"
	"github.com/pokearena/tactics-arena/internal/services/progression"
)

const (
	// FixedSurvivalWaves is the length of a regular survival run
	FixedSurvivalWaves = 3
	// RosterSurvivalWaves caps the endless roster run
	RosterSurvivalWaves = 50

	// Completion bonuses
	FixedSurvivalBonus     = 150
	SurvivalBonusPerWave   = 50
	MaxRosterSurvivalBonus = 400
)

// rosterUnlockWaves are the waves that unlock new roster entries
var rosterUnlockWaves = map[int]bool{5: true, 10: true, 15: true, 20: true}

// SurvivalBonus is the completion bonus of a run. Fixed runs earn it only
// once every wave is cleared; roster runs earn a wave-scaled bonus once they
// outlast a fixed run.
func SurvivalBonus(wavesCleared int, useRoster bool) int {
	if !useRoster {
		if wavesCleared >= FixedSurvivalWaves {
			return FixedSurvivalBonus
		}
		return 0
	}
	if wavesCleared < FixedSurvivalWaves {
		return 0
	}
	return min(max(SurvivalBonusPerWave*wavesCleared, FixedSurvivalBonus), MaxRosterSurvivalBonus)
}

// RosterUnlocksForWave is the number of roster entries clearing wave grants
func RosterUnlocksForWave(wave int) int {
	switch {
	case !rosterUnlockWaves[wave]:
		return 0
	case wave >= 20:
		return 2
	default:
		return 1
	}
}

// Survival runs waves of random opponents until the player stops winning
func (o *orchestrator) Survival(ctx context.Context, input *SurvivalInput) (*SurvivalOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateParty(input.PlayerID, input.Team); err != nil {
		return nil, err
	}

	state, err := o.loadUnlocked(ctx, input.PlayerID, entities.ModeSurvival)
	if err != nil {
		return nil, err
	}

	maxWaves := FixedSurvivalWaves
	if input.UseRoster {
		maxWaves = RosterSurvivalWaves
	}

	out := &SurvivalOutput{Team: input.Team}
	for wave := 1; wave <= maxWaves; wave++ {
		label := fmt.Sprintf("wave %d", wave)
		if err := checkpoint(ctx, label); err != nil {
			return nil, err
		}

		opponent, err := o.dexClient.RandomTeam(ctx, &dex.TeamInput{
			Size:        len(input.Team),
			Generations: state.UnlockedGenerations,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to draw opponent for %s", label)
		}

		stage, err := o.fight(ctx, stageInput{
			playerID: input.PlayerID,
			mode:     entities.ModeSurvival,
			stage:    label,
			party:    input.Team,
			opponent: opponent,
		})
		if err != nil {
			return nil, err
		}
		out.Stages = append(out.Stages, stage)
		state = stage.Progress.State

		if !stage.Won() {
			break
		}
		out.WavesCleared = wave

		if input.UseRoster {
			if n := RosterUnlocksForWave(wave); n > 0 {
				unlocked, err := o.unlockRoster(ctx, input.PlayerID, state.UnlockedGenerations, n)
				if err != nil {
					return nil, err
				}
				out.Unlocked = append(out.Unlocked, unlocked...)
			}
		}
	}
	out.Completed = out.WavesCleared == maxWaves

	slog.Info("Survival run finished",
		"player_id", input.PlayerID,
		"roster", input.UseRoster,
		"waves_cleared", out.WavesCleared,
		"completed", out.Completed)

	if bonus := SurvivalBonus(out.WavesCleared, input.UseRoster); bonus > 0 {
		granted, err := o.progression.GrantBonusXP(ctx, &progression.GrantBonusXPInput{
			PlayerID: input.PlayerID,
			Amount:   bonus,
			Message:  fmt.Sprintf("Survival bonus: %d waves cleared, +%d XP", out.WavesCleared, bonus),
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to grant survival bonus")
		}
		out.Bonus = granted
		o.publishProgress(ctx, input.PlayerID, granted)
	}

	return out, nil
}

// unlockRoster adds n rarity-weighted entries the player does not own yet
func (o *orchestrator) unlockRoster(ctx context.Context, playerID string, generations []int, n int) ([]*entities.Pokemon, error) {
	current := &entities.Roster{PlayerID: playerID}
	got, err := o.rosterRepo.Get(ctx, roster.GetInput{PlayerID: playerID})
	switch {
	case err == nil:
		current = got.Roster
	case !errors.IsNotFound(err):
		return nil, errors.Wrap(err, "failed to load roster")
	}

	listed, err := o.dexClient.ListPokemon(ctx, &dex.ListInput{Generations: generations})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list roster candidates")
	}

	var pool []*entities.Pokemon
	for _, p := range listed {
		if !current.Contains(p.ID) {
			pool = append(pool, p)
		}
	}
	if len(pool) == 0 {
		slog.Info("Roster already complete", "player_id", playerID)
		return nil, nil
	}

	picked, err := WeightedSample(o.roller, pool, n)
	if err != nil {
		return nil, errors.Wrap(err, "failed to draw roster entries")
	}

	for _, p := range picked {
		current.PokemonIDs = append(current.PokemonIDs, p.ID)
	}
	current.UpdatedAt = o.clock.Now()
	if err := o.rosterRepo.Save(ctx, roster.SaveInput{Roster: current}); err != nil {
		return nil, errors.Wrap(err, "failed to save roster")
	}

	o.metrics.RecordUnlocks(metrics.UnlockRoster, len(picked))
	names := make([]string, len(picked))
	for i, p := range picked {
		names[i] = p.Name
	}
	o.publish(ctx, EventProgressionUpdated, playerID, map[string]any{
		"messages": []string{fmt.Sprintf("New roster entries: %v", names)},
		"unlocked": picked,
	})

	return picked, nil
}
