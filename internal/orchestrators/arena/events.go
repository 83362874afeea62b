package arena

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/pokearena/tactics-arena/internal/services/progression"
)

// Outbound event types
const (
	EventBattleCompleted    = "arena.battle.completed"
	EventProgressionUpdated = "arena.progression.updated"
	EventEvolutionOffered   = "arena.evolution.offered"
)

const entityTypePlayer = "player"

// player is the event source for everything a player triggers
type player string

var _ core.Entity = player("")

func (p player) GetID() string   { return string(p) }
func (p player) GetType() string { return entityTypePlayer }

func (o *orchestrator) publish(ctx context.Context, eventType, playerID string, data map[string]any) {
	event := events.NewGameEvent(eventType, player(playerID), nil)
	for k, v := range data {
		event.Context().Set(k, v)
	}

	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.Warn("Failed to publish event",
			"event", eventType,
			"player_id", playerID,
			"error", err)
	}
}

func (o *orchestrator) publishProgress(ctx context.Context, playerID string, progress *progression.RecordOutput) {
	if progress == nil {
		return
	}
	o.publish(ctx, EventProgressionUpdated, playerID, map[string]any{
		"messages":  progress.Events,
		"xp_gained": progress.XPGained,
		"xp":        progress.State.XP,
		"level":     progress.State.Level,
	})
}
