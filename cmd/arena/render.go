package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pokearena/tactics-arena/internal/engine/battle"
	"github.com/pokearena/tactics-arena/internal/entities"
	"github.com/pokearena/tactics-arena/internal/orchestrators/arena"
	"github.com/pokearena/tactics-arena/internal/services/evolution"
)

func printf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}

func teamNames(team []*battle.Combatant) string {
	names := make([]string, 0, len(team))
	for _, c := range team {
		names = append(names, c.Pokemon.Name)
	}
	return strings.Join(names, ", ")
}

func outcomeLabel(outcome battle.Outcome) string {
	switch outcome {
	case battle.OutcomePlayer:
		return "Victory"
	case battle.OutcomeOpponent:
		return "Defeat"
	default:
		return "Draw"
	}
}

// printStage renders one battle, its log and the offered evolutions
func printStage(cmd *cobra.Command, stage *arena.StageResult, showLog bool) {
	printf(cmd, "\n⚔️  %s [%s] %s vs %s\n", stage.Stage, stage.BattleID,
		teamNames(stage.PlayerBefore), teamNames(stage.OpponentBefore))

	if showLog {
		for _, line := range stage.Result.Lines() {
			printf(cmd, "  %s\n", line)
		}
	}

	printf(cmd, "  %s after %d turns (+%d XP)\n",
		outcomeLabel(stage.Result.Outcome), stage.Result.Turns, stage.Progress.XPGained)

	for _, c := range stage.Candidates {
		printCandidate(cmd, c)
	}
}

func printCandidate(cmd *cobra.Command, c *evolution.Candidate) {
	printf(cmd, "  🌱 %s can evolve into %s", c.Previous.Name, c.Next.Name)
	if len(c.StatDelta) > 0 {
		parts := make([]string, 0, len(c.StatDelta))
		for _, stat := range []string{"hp", "attack", "defense", "special_attack", "special_defense", "speed"} {
			if d, ok := c.StatDelta[stat]; ok {
				parts = append(parts, fmt.Sprintf("%s %+d", stat, d))
			}
		}
		printf(cmd, " (%s)", strings.Join(parts, ", "))
	}
	printf(cmd, "\n")
}

func printState(cmd *cobra.Command, state *entities.ProgressState) {
	printf(cmd, "Level %d (%d XP)\n", state.Level, state.XP)
	printf(cmd, "Battles: %d  Wins: %d  Losses: %d  Draws: %d\n",
		state.Battles, state.Victories, state.Defeats, state.Draws)
	printf(cmd, "Streak: %d (best %d)  Evolutions: %d\n", state.Streak, state.BestStreak, state.Evolutions)
	printf(cmd, "Generations: %v\n", state.UnlockedGenerations)
	printf(cmd, "Survival: %s  Tournament: %s\n",
		lockLabel(state.ModeUnlocked(entities.ModeSurvival)),
		lockLabel(state.ModeUnlocked(entities.ModeTournament)))
}

func lockLabel(unlocked bool) string {
	if unlocked {
		return "unlocked"
	}
	return "locked"
}
