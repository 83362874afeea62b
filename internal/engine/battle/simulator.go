// Package battle resolves a full battle between two teams into a
// turn-by-turn log and the final state of both teams.
package battle

//go:generate mockgen -destination=mock/mock_simulator.go -package=battlemock github.com/pokearena/tactics-arena/internal/engine/battle Simulator

import (
	"fmt"
	"math"
	"sort"

	"github.com/pokearena/tactics-arena/internal/engine/effectiveness"
	"github.com/pokearena/tactics-arena/internal/entities"
)

const (
	// MaxTurns bounds the turn loop; reaching it forces a draw
	MaxTurns = 100

	// BattleLevel is the fixed level used by the damage formula
	BattleLevel = 50

	// BaseMovePower is the fixed power of every attack
	BaseMovePower = 60

	// STABBonus applies when the attack type is one of the attacker's types
	STABBonus = 1.2

	// fallbackType is used by attackers without any type
	fallbackType = "Normal"
)

// Simulator resolves battles
type Simulator interface {
	// Simulate runs a battle between two rosters. The rosters are copied;
	// callers keep ownership of their records.
	Simulate(player, opponent []*entities.Pokemon) *Result
}

type simulator struct{}

// NewSimulator returns the default battle simulator
func NewSimulator() Simulator {
	return &simulator{}
}

// Simulate implements Simulator
func (s *simulator) Simulate(player, opponent []*entities.Pokemon) *Result {
	b := &run{
		player:   NewTeam(player, SidePlayer),
		opponent: NewTeam(opponent, SideOpponent),
	}
	return b.execute()
}

// run holds the mutable state of a single battle
type run struct {
	player   []*Combatant
	opponent []*Combatant
	turn     int
	log      []LogEntry
}

func (b *run) execute() *Result {
	if len(b.player) == 0 || len(b.opponent) == 0 {
		b.line("No contest: a team has no members")
		return b.result(OutcomeDraw)
	}

	for AnyAlive(b.player) && AnyAlive(b.opponent) && b.turn < MaxTurns {
		b.turn++
		b.line(fmt.Sprintf("Turn %d", b.turn))

		for _, attacker := range b.turnOrder() {
			// may have fainted earlier this turn
			if !attacker.Alive() {
				continue
			}

			defenders := b.opposing(attacker.Side)
			target := firstAlive(defenders)
			if target == nil {
				break
			}

			b.attack(attacker, target)

			if !AnyAlive(defenders) {
				break
			}
		}
	}

	if b.turn >= MaxTurns {
		b.line("Turn limit reached: the battle ends in a draw")
		return b.result(OutcomeDraw)
	}

	playerAlive, opponentAlive := AnyAlive(b.player), AnyAlive(b.opponent)
	switch {
	case playerAlive && !opponentAlive:
		return b.result(OutcomePlayer)
	case opponentAlive && !playerAlive:
		return b.result(OutcomeOpponent)
	default:
		return b.result(OutcomeDraw)
	}
}

// turnOrder sorts living combatants by speed, player side first on ties,
// then by team order.
func (b *run) turnOrder() []*Combatant {
	order := make([]*Combatant, 0, len(b.player)+len(b.opponent))
	for _, c := range b.player {
		if c.Alive() {
			order = append(order, c)
		}
	}
	for _, c := range b.opponent {
		if c.Alive() {
			order = append(order, c)
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		si, sj := order[i].Pokemon.Stats.Speed, order[j].Pokemon.Stats.Speed
		if si != sj {
			return si > sj
		}
		return order[i].Side == SidePlayer && order[j].Side != SidePlayer
	})
	return order
}

func (b *run) opposing(side Side) []*Combatant {
	if side == SidePlayer {
		return b.opponent
	}
	return b.player
}

func firstAlive(team []*Combatant) *Combatant {
	for _, c := range team {
		if c.Alive() {
			return c
		}
	}
	return nil
}

// choice is the attack picked for one action
type choice struct {
	attackType string
	category   Category
	attack     int
	defense    int
	typeMult   float64
	multiplier float64
}

// chooseAttack picks the (type, category) pair with the highest potential.
// Types are iterated in order, physical before special; ties keep the
// first pair found.
func chooseAttack(attacker, defender *entities.Pokemon) choice {
	types := attacker.TypeNames()
	if len(types) == 0 {
		types = []string{fallbackType}
	}

	var best choice
	bestPotential := math.Inf(-1)
	for _, t := range types {
		typeMult := effectiveness.Multiplier(t, defender)
		stab := stabFor(attacker, t)

		for _, category := range []Category{CategoryPhysical, CategorySpecial} {
			atk, def := statsFor(category, attacker, defender)
			potential := float64(atk) * typeMult * stab
			if potential > bestPotential {
				bestPotential = potential
				best = choice{
					attackType: t,
					category:   category,
					attack:     atk,
					defense:    def,
					typeMult:   typeMult,
					multiplier: typeMult * stab,
				}
			}
		}
	}
	return best
}

func stabFor(attacker *entities.Pokemon, attackType string) float64 {
	for _, t := range attacker.Types {
		if effectiveness.SameType(t.Name, attackType) {
			return STABBonus
		}
	}
	return 1
}

func statsFor(category Category, attacker, defender *entities.Pokemon) (int, int) {
	if category == CategorySpecial {
		return attacker.Stats.SpecialAttack, defender.Stats.SpecialDefense
	}
	return attacker.Stats.Attack, defender.Stats.Defense
}

// Damage applies the fixed-level damage formula. It never returns less
// than 1.
func Damage(attack, defense int, multiplier float64) int {
	levelFactor := (2.0*BattleLevel + 10) / 250
	ratio := float64(attack) / float64(max(1, defense))
	raw := (levelFactor*ratio*BaseMovePower + 2) * multiplier
	return max(1, int(math.Floor(raw)))
}

func (b *run) attack(attacker, defender *Combatant) {
	c := chooseAttack(attacker.Pokemon, defender.Pokemon)
	damage := Damage(c.attack, c.defense, c.multiplier)

	before := defender.CurrentHP
	defender.CurrentHP = max(0, defender.CurrentHP-damage)

	record := &AttackRecord{
		Turn:         b.turn,
		AttackerSide: attacker.Side,
		AttackerSlot: attacker.Slot,
		Attacker:     attacker.Pokemon.Name,
		DefenderSide: defender.Side,
		DefenderSlot: defender.Slot,
		Defender:     defender.Pokemon.Name,
		Type:         c.attackType,
		Category:     c.category,
		TypeMult:     c.typeMult,
		Multiplier:   c.multiplier,
		Damage:       damage,
		HPLost:       before - defender.CurrentHP,
		RemainingHP:  defender.CurrentHP,
	}

	text := fmt.Sprintf("%s hits %s with a %s %s attack for %d damage",
		attacker.Pokemon.Name, defender.Pokemon.Name, c.attackType, c.category, damage)
	if q := effectiveness.Qualifier(c.typeMult); q != "" {
		text += " (" + q + ")"
	}
	text += fmt.Sprintf(". %s has %d/%d HP left", defender.Pokemon.Name, defender.CurrentHP, defender.MaxHP)

	b.log = append(b.log, LogEntry{Kind: EntryAttack, Text: text, Attack: record})
	if !defender.Alive() {
		b.line(fmt.Sprintf("%s fainted", defender.Pokemon.Name))
	}
	b.log = append(b.log, LogEntry{Kind: EntryFrame, Frame: b.frame()})
}

func (b *run) frame() *Frame {
	return &Frame{
		Turn:     b.turn,
		Player:   snapshot(b.player),
		Opponent: snapshot(b.opponent),
	}
}

func snapshot(team []*Combatant) []FrameEntry {
	entries := make([]FrameEntry, len(team))
	for i, c := range team {
		entries[i] = FrameEntry{
			ID:        c.Pokemon.ID,
			Name:      c.Pokemon.Name,
			CurrentHP: c.CurrentHP,
			MaxHP:     c.MaxHP,
		}
	}
	return entries
}

func (b *run) line(text string) {
	b.log = append(b.log, LogEntry{Kind: EntryLine, Text: text})
}

func (b *run) result(outcome Outcome) *Result {
	return &Result{
		Outcome:  outcome,
		Turns:    min(b.turn, MaxTurns),
		Log:      b.log,
		Player:   b.player,
		Opponent: b.opponent,
	}
}
