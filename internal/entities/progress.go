package entities

import (
	"slices"
	"time"
)

// Game modes gated behind milestones
const (
	ModeFree       = "free"
	ModeSurvival   = "survival"
	ModeTournament = "tournament"
)

// ProgressState is the persisted meta-progression of a player.
// Level is derived from XP and refreshed on every mutation.
type ProgressState struct {
	Battles               int             `json:"battles"`
	Victories             int             `json:"victories"`
	Defeats               int             `json:"defeats"`
	Draws                 int             `json:"draws"`
	Streak                int             `json:"streak"`
	BestStreak            int             `json:"best_streak"`
	XP                    int             `json:"xp"`
	Level                 int             `json:"level"`
	Evolutions            int             `json:"evolutions"`
	EvolvedIDs            []int           `json:"evolved_ids"`
	UnlockedGenerations   []int           `json:"unlocked_generations"`
	UnlockedModes         map[string]bool `json:"unlocked_modes"`
	LastOpponentSignature string          `json:"last_opponent_signature,omitempty"`
	RepeatCount           int             `json:"repeat_count"`
	Merit                 int             `json:"merit"`
	UpdatedAt             time.Time       `json:"updated_at"`
}

// HasEvolved reports whether id is in the evolved set
func (s *ProgressState) HasEvolved(id int) bool {
	return slices.Contains(s.EvolvedIDs, id)
}

// MarkEvolved adds ids to the evolved set, keeping it sorted and unique
func (s *ProgressState) MarkEvolved(ids ...int) {
	for _, id := range ids {
		if id <= 0 || s.HasEvolved(id) {
			continue
		}
		s.EvolvedIDs = append(s.EvolvedIDs, id)
	}
	slices.Sort(s.EvolvedIDs)
}

// ModeUnlocked reports whether a game mode is available. Free battles
// are always available.
func (s *ProgressState) ModeUnlocked(mode string) bool {
	if mode == ModeFree {
		return true
	}
	return s.UnlockedModes[mode]
}

// Clone returns a deep copy of the state
func (s *ProgressState) Clone() *ProgressState {
	if s == nil {
		return nil
	}

	c := *s
	c.EvolvedIDs = slices.Clone(s.EvolvedIDs)
	c.UnlockedGenerations = slices.Clone(s.UnlockedGenerations)
	c.UnlockedModes = make(map[string]bool, len(s.UnlockedModes))
	for k, v := range s.UnlockedModes {
		c.UnlockedModes[k] = v
	}
	return &c
}

// Roster is the persisted list of Pokémon a player has unlocked
type Roster struct {
	PlayerID   string    `json:"player_id"`
	PokemonIDs []int     `json:"pokemon_ids"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Contains reports whether the roster already holds id
func (r *Roster) Contains(id int) bool {
	return slices.Contains(r.PokemonIDs, id)
}
