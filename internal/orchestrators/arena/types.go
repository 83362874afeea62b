package arena

import (
	"github.com/pokearena/tactics-arena/internal/engine/battle"
	"github.com/pokearena/tactics-arena/internal/entities"
	"github.com/pokearena/tactics-arena/internal/services/evolution"
	"github.com/pokearena/tactics-arena/internal/services/progression"
)

// StageResult is one simulated battle inside a mode
type StageResult struct {
	BattleID string `json:"battle_id"`
	Mode     string `json:"mode"`
	Stage    string `json:"stage"`

	// PlayerBefore and OpponentBefore are the teams as they entered the
	// battle, for replays
	PlayerBefore   []*battle.Combatant `json:"player_before"`
	OpponentBefore []*battle.Combatant `json:"opponent_before"`

	Result     *battle.Result            `json:"result"`
	Progress   *progression.RecordOutput `json:"progress"`
	Candidates []*evolution.Candidate    `json:"candidates,omitempty"`
}

// Won reports whether the player won the stage
func (s *StageResult) Won() bool {
	return s.Result != nil && s.Result.Outcome == battle.OutcomePlayer
}

// FreeBattleInput contains parameters for a single battle
type FreeBattleInput struct {
	PlayerID string
	Team     []*battle.Combatant
	// Opponent is optional; a random team of the same size is drawn when empty
	Opponent []*entities.Pokemon
}

// FreeBattleOutput contains the result of a single battle
type FreeBattleOutput struct {
	Stage *StageResult
	// Team is the healed party, ready for the next battle
	Team []*battle.Combatant
}

// SurvivalInput contains parameters for a survival run
type SurvivalInput struct {
	PlayerID string
	Team     []*battle.Combatant
	// UseRoster switches to the endless variant that unlocks roster entries
	UseRoster bool
}

// SurvivalOutput contains the result of a survival run
type SurvivalOutput struct {
	Stages       []*StageResult
	WavesCleared int
	// Completed is set when the last wave was cleared
	Completed bool
	Bonus     *progression.RecordOutput
	Unlocked  []*entities.Pokemon
	Team      []*battle.Combatant
}

// TournamentInput contains parameters for a tournament
type TournamentInput struct {
	PlayerID string
	Team     []*battle.Combatant
}

// TournamentOutput contains the result of a tournament
type TournamentOutput struct {
	Stages []*StageResult
	// FinalState is champion or eliminated
	FinalState string
	Champion   bool
	Bonus      *progression.RecordOutput
	Team       []*battle.Combatant
}

// AcceptEvolutionInput contains the party and the accepted candidate
type AcceptEvolutionInput struct {
	PlayerID  string
	Team      []*battle.Combatant
	Candidate *evolution.Candidate
}

// AcceptEvolutionOutput contains the applied evolution and the progress
// it earned
type AcceptEvolutionOutput struct {
	Evolution *evolution.ApplyOutput
	Progress  *progression.RecordOutput
	Team      []*battle.Combatant
}
