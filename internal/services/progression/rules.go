package progression

import (
	"fmt"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/pokearena/tactics-arena/internal/engine/battle"
	"github.com/pokearena/tactics-arena/internal/entities"
)

const (
	// XPPerLevel is the experience needed for each level
	XPPerLevel = 300

	// Battle rewards
	XPWin  = 120
	XPLoss = 40
	XPDraw = 60

	// SpeedBonusCap is the largest speed bonus, granted to one-turn wins
	SpeedBonusCap = 40

	// Mode bonuses added to every battle of the mode
	XPSurvivalBonus   = 30
	XPTournamentBonus = 50

	// XPEvolution is awarded for every accepted evolution
	XPEvolution = 75

	// MinBattleXP is the floor applied after repeat decay
	MinBattleXP = 10
)

// Milestone unlocks generations and modes once a level is reached
type Milestone struct {
	Level       int
	Generations []int
	Modes       []string
	Message     string
}

// Milestones is ordered by level and never mutated
var Milestones = []Milestone{
	{Level: 5, Generations: []int{2}, Message: "Generation 2 unlocked"},
	{Level: 10, Generations: []int{3}, Message: "Generation 3 unlocked"},
	{Level: 12, Modes: []string{entities.ModeSurvival}, Message: "Survival mode unlocked"},
	{Level: 15, Generations: []int{4}, Message: "Generation 4 unlocked"},
	{Level: 20, Modes: []string{entities.ModeTournament}, Message: "Tournament mode unlocked"},
}

// DefaultState is the state of a brand new player: level 1, generation 1
// only, every mode locked
func DefaultState() *entities.ProgressState {
	return &entities.ProgressState{
		Level:               1,
		EvolvedIDs:          []int{},
		UnlockedGenerations: []int{1},
		UnlockedModes: map[string]bool{
			entities.ModeSurvival:   false,
			entities.ModeTournament: false,
		},
	}
}

// LevelForXP derives the level from cumulative experience
func LevelForXP(xp int) int {
	return max(xp, 0)/XPPerLevel + 1
}

// DeriveUnlocks returns the generations and modes a level grants
func DeriveUnlocks(level int) ([]int, map[string]bool) {
	generations := []int{1}
	modes := map[string]bool{
		entities.ModeSurvival:   false,
		entities.ModeTournament: false,
	}
	for _, m := range Milestones {
		if m.Level > level {
			break
		}
		generations = append(generations, m.Generations...)
		for _, mode := range m.Modes {
			modes[mode] = true
		}
	}
	slices.Sort(generations)
	return slices.Compact(generations), modes
}

// unlocks tracks what one mutation newly granted
type unlocks struct {
	events      []string
	generations int
	modes       int
}

// ApplyXP adds amount to state, refreshes the level and applies every
// milestone crossed. It returns the human readable events produced.
func ApplyXP(state *entities.ProgressState, amount int) []string {
	return applyXP(state, amount).events
}

func applyXP(state *entities.ProgressState, amount int) unlocks {
	if state.UnlockedModes == nil {
		state.UnlockedModes = map[string]bool{}
	}

	before := state.Level
	state.XP += max(amount, 0)
	state.Level = LevelForXP(state.XP)

	var u unlocks
	if state.Level > before {
		u.events = append(u.events, fmt.Sprintf("Level up! You reached level %d", state.Level))
	}

	for _, m := range Milestones {
		if m.Level > state.Level {
			break
		}
		granted := false
		for _, g := range m.Generations {
			if !slices.Contains(state.UnlockedGenerations, g) {
				state.UnlockedGenerations = append(state.UnlockedGenerations, g)
				u.generations++
				granted = true
			}
		}
		for _, mode := range m.Modes {
			if !state.UnlockedModes[mode] {
				state.UnlockedModes[mode] = true
				u.modes++
				granted = true
			}
		}
		if granted {
			u.events = append(u.events, m.Message)
		}
	}
	slices.Sort(state.UnlockedGenerations)
	return u
}

// heal restores the level invariant and merges the unlocks the level
// grants. Unlocks already held are kept. It reports whether state changed.
func heal(state *entities.ProgressState) bool {
	changed := false

	if level := LevelForXP(state.XP); state.Level != level {
		state.Level = level
		changed = true
	}
	if state.UnlockedModes == nil {
		state.UnlockedModes = map[string]bool{}
		changed = true
	}
	if state.EvolvedIDs == nil {
		state.EvolvedIDs = []int{}
	}

	generations, modes := DeriveUnlocks(state.Level)
	for _, g := range generations {
		if !slices.Contains(state.UnlockedGenerations, g) {
			state.UnlockedGenerations = append(state.UnlockedGenerations, g)
			changed = true
		}
	}
	slices.Sort(state.UnlockedGenerations)

	for mode, on := range modes {
		current, known := state.UnlockedModes[mode]
		if !known || (on && !current) {
			state.UnlockedModes[mode] = on || current
			changed = true
		}
	}
	return changed
}

// BattleXP computes the experience of one battle. repeat is the number of
// consecutive fights against the same opponent roster, this one included.
func BattleXP(outcome battle.Outcome, turns int, mode string, repeat int) int {
	var xp int
	switch outcome {
	case battle.OutcomePlayer:
		xp = XPWin + max(0, SpeedBonusCap-min(max(turns, 0), SpeedBonusCap))
	case battle.OutcomeOpponent:
		xp = XPLoss
	default:
		xp = XPDraw
	}

	switch mode {
	case entities.ModeSurvival:
		xp += XPSurvivalBonus
	case entities.ModeTournament:
		xp += XPTournamentBonus
	}

	if repeat > 1 {
		xp /= repeat
	}
	return max(MinBattleXP, xp)
}

// OpponentSignature identifies an opponent roster regardless of order.
// Members are keyed by id, or by name when the id is unknown.
func OpponentSignature(team []*entities.Pokemon) string {
	keys := make([]string, 0, len(team))
	for _, p := range team {
		if p == nil {
			continue
		}
		if p.ID != 0 {
			keys = append(keys, strconv.Itoa(p.ID))
		} else {
			keys = append(keys, p.Name)
		}
	}
	sort.Strings(keys)
	return strings.Join(keys, "|")
}
