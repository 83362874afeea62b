package battle

import (
	"github.com/pokearena/tactics-arena/internal/entities"
)

// Side identifies which team a combatant fights for
type Side string

// Battle sides
const (
	SidePlayer   Side = "player"
	SideOpponent Side = "opponent"
)

// Outcome is the final verdict of a battle
type Outcome string

// Battle outcomes
const (
	OutcomePlayer   Outcome = "player"
	OutcomeOpponent Outcome = "opponent"
	OutcomeDraw     Outcome = "draw"
)

// Category selects which stat pair an attack uses
type Category string

// Attack categories
const (
	CategoryPhysical Category = "physical"
	CategorySpecial  Category = "special"
)

// EntryKind tags a log entry
type EntryKind string

// Log entry kinds
const (
	EntryLine   EntryKind = "line"
	EntryAttack EntryKind = "attack"
	EntryFrame  EntryKind = "frame"
)

// Combatant is a battle-local copy of a Pokémon with live HP
type Combatant struct {
	Pokemon   *entities.Pokemon `json:"pokemon"`
	Side      Side              `json:"side"`
	Slot      int               `json:"slot"`
	CurrentHP int               `json:"current_hp"`
	MaxHP     int               `json:"max_hp"`
}

// NewCombatant builds a full-health combatant from a copy of record
func NewCombatant(record *entities.Pokemon, side Side, slot int) *Combatant {
	p := record.Clone()
	if p == nil {
		p = &entities.Pokemon{}
	}
	hp := max(0, p.Stats.HP)
	return &Combatant{
		Pokemon:   p,
		Side:      side,
		Slot:      slot,
		CurrentHP: hp,
		MaxHP:     hp,
	}
}

// NewTeam converts roster records into combatants for side
func NewTeam(records []*entities.Pokemon, side Side) []*Combatant {
	team := make([]*Combatant, len(records))
	for i, r := range records {
		team[i] = NewCombatant(r, side, i)
	}
	return team
}

// Alive reports whether the combatant can still act
func (c *Combatant) Alive() bool {
	return c.CurrentHP > 0
}

// Heal restores the combatant to full HP
func (c *Combatant) Heal() {
	c.CurrentHP = c.MaxHP
}

// Clone returns a deep copy of the combatant
func (c *Combatant) Clone() *Combatant {
	cc := *c
	cc.Pokemon = c.Pokemon.Clone()
	return &cc
}

// HealTeam restores every member of team to full HP
func HealTeam(team []*Combatant) {
	for _, c := range team {
		c.Heal()
	}
}

// CloneTeam deep-copies a team of combatants
func CloneTeam(team []*Combatant) []*Combatant {
	out := make([]*Combatant, len(team))
	for i, c := range team {
		out[i] = c.Clone()
	}
	return out
}

// Records returns copies of the records behind a team
func Records(team []*Combatant) []*entities.Pokemon {
	out := make([]*entities.Pokemon, len(team))
	for i, c := range team {
		out[i] = c.Pokemon.Clone()
	}
	return out
}

// AnyAlive reports whether at least one member of team can fight
func AnyAlive(team []*Combatant) bool {
	for _, c := range team {
		if c.Alive() {
			return true
		}
	}
	return false
}

// AttackRecord is the structured form of one resolved attack
type AttackRecord struct {
	Turn         int      `json:"turn"`
	AttackerSide Side     `json:"attacker_side"`
	AttackerSlot int      `json:"attacker_slot"`
	Attacker     string   `json:"attacker"`
	DefenderSide Side     `json:"defender_side"`
	DefenderSlot int      `json:"defender_slot"`
	Defender     string   `json:"defender"`
	Type         string   `json:"type"`
	Category     Category `json:"category"`
	TypeMult     float64  `json:"type_multiplier"`
	Multiplier   float64  `json:"multiplier"`
	Damage       int      `json:"damage"`
	HPLost       int      `json:"hp_lost"`
	RemainingHP  int      `json:"remaining_hp"`
}

// FrameEntry is one combatant's HP inside a frame
type FrameEntry struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	CurrentHP int    `json:"current_hp"`
	MaxHP     int    `json:"max_hp"`
}

// Frame snapshots both teams' HP after an attack, for replays
type Frame struct {
	Turn     int          `json:"turn"`
	Player   []FrameEntry `json:"player"`
	Opponent []FrameEntry `json:"opponent"`
}

// LogEntry is either a text line, an attack (with its line) or a frame
type LogEntry struct {
	Kind   EntryKind     `json:"kind"`
	Text   string        `json:"text,omitempty"`
	Attack *AttackRecord `json:"attack,omitempty"`
	Frame  *Frame        `json:"frame,omitempty"`
}

// Result is the immutable outcome of one simulated battle
type Result struct {
	Outcome  Outcome      `json:"outcome"`
	Turns    int          `json:"turns"`
	Log      []LogEntry   `json:"log"`
	Player   []*Combatant `json:"player"`
	Opponent []*Combatant `json:"opponent"`
}

// Lines returns the human readable lines of the log
func (r *Result) Lines() []string {
	var lines []string
	for _, e := range r.Log {
		if e.Kind != EntryFrame {
			lines = append(lines, e.Text)
		}
	}
	return lines
}

// Attacks returns every attack record in log order
func (r *Result) Attacks() []*AttackRecord {
	var attacks []*AttackRecord
	for _, e := range r.Log {
		if e.Attack != nil {
			attacks = append(attacks, e.Attack)
		}
	}
	return attacks
}

// Frames returns every frame in log order
func (r *Result) Frames() []*Frame {
	var frames []*Frame
	for _, e := range r.Log {
		if e.Frame != nil {
			frames = append(frames, e.Frame)
		}
	}
	return frames
}

// Survivors counts the living members of side
func (r *Result) Survivors(side Side) int {
	team := r.Player
	if side == SideOpponent {
		team = r.Opponent
	}

	n := 0
	for _, c := range team {
		if c.Alive() {
			n++
		}
	}
	return n
}
