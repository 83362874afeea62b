package battle_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/pokearena/tactics-arena/internal/engine/battle"
	"github.com/pokearena/tactics-arena/internal/engine/effectiveness"
	"github.com/pokearena/tactics-arena/internal/entities"
	"github.com/pokearena/tactics-arena/internal/testutils"
	"github.com/pokearena/tactics-arena/internal/testutils/builders"
)

type SimulatorTestSuite struct {
	suite.Suite
	sim battle.Simulator
}

func TestSimulatorSuite(t *testing.T) {
	suite.Run(t, new(SimulatorTestSuite))
}

func (s *SimulatorTestSuite) SetupTest() {
	s.sim = battle.NewSimulator()
}

func (s *SimulatorTestSuite) TestFastHitterWinsInOneTurn() {
	player := builders.NewPokemonBuilder().WithSpeed(100).WithAttack(100).Build()
	opponent := builders.NewPokemonBuilder().WithID(2).WithName("Herbizarre").
		WithSpeed(50).WithDefense(1).WithHP(1).Build()

	result := s.sim.Simulate([]*entities.Pokemon{player}, []*entities.Pokemon{opponent})

	s.Equal(battle.OutcomePlayer, result.Outcome)
	s.Equal(1, result.Turns)
	s.Require().Len(result.Attacks(), 1)
	s.Equal(battle.SidePlayer, result.Attacks()[0].AttackerSide)
	s.Equal(0, result.Opponent[0].CurrentHP)
	s.Contains(result.Lines(), "Herbizarre fainted")
}

func (s *SimulatorTestSuite) TestTurnLimitForcesDraw() {
	wall := entities.Stats{HP: 1000, Attack: 1, Defense: 1000, SpecialAttack: 1, SpecialDefense: 1000, Speed: 10}
	player := builders.NewPokemonBuilder().WithStats(wall).Build()
	opponent := builders.NewPokemonBuilder().WithID(2).WithStats(wall).Build()

	result := s.sim.Simulate([]*entities.Pokemon{player}, []*entities.Pokemon{opponent})

	s.Equal(battle.OutcomeDraw, result.Outcome)
	s.Equal(battle.MaxTurns, result.Turns)
	lines := result.Lines()
	s.Equal("Turn limit reached: the battle ends in a draw", lines[len(lines)-1])
	s.Len(result.Attacks(), 2*battle.MaxTurns)
	s.Equal(1, result.Survivors(battle.SidePlayer))
	s.Equal(1, result.Survivors(battle.SideOpponent))
}

func (s *SimulatorTestSuite) TestKnockoutOnLastTurnIsStillADraw() {
	// both sides are immune to each other, so every hit deals exactly 1
	player := builders.NewPokemonBuilder().WithTypes("Spectre").WithSpeed(100).WithHP(1000).
		WithResistance("Normal", effectiveness.RelationImmune).Build()
	opponent := builders.NewPokemonBuilder().WithID(2).WithName("Rattata").WithTypes("Normal").
		WithSpeed(1).WithHP(battle.MaxTurns).
		WithResistance("Spectre", effectiveness.RelationImmune).Build()

	result := s.sim.Simulate([]*entities.Pokemon{player}, []*entities.Pokemon{opponent})

	s.Equal(battle.OutcomeDraw, result.Outcome)
	s.Equal(battle.MaxTurns, result.Turns)
	s.Equal(0, result.Opponent[0].CurrentHP)
	s.Equal(0, result.Survivors(battle.SideOpponent))
	s.Equal(1000-(battle.MaxTurns-1), result.Player[0].CurrentHP)
	s.Len(result.Attacks(), 2*battle.MaxTurns-1)

	lines := result.Lines()
	s.Require().GreaterOrEqual(len(lines), 2)
	s.Equal("Rattata fainted", lines[len(lines)-2])
	s.Equal("Turn limit reached: the battle ends in a draw", lines[len(lines)-1])
}

func (s *SimulatorTestSuite) TestEmptyTeamIsADrawAtTurnZero() {
	team := testutils.CreateTestTeam(2)

	testCases := []struct {
		name             string
		player, opponent []*entities.Pokemon
	}{
		{"empty player", nil, team},
		{"empty opponent", team, nil},
		{"both empty", nil, nil},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			result := s.sim.Simulate(tc.player, tc.opponent)
			s.Equal(battle.OutcomeDraw, result.Outcome)
			s.Equal(0, result.Turns)
			s.Empty(result.Attacks())
		})
	}
}

func (s *SimulatorTestSuite) TestFasterSideActsFirst() {
	slow := builders.NewPokemonBuilder().WithSpeed(10).Build()
	fast := builders.NewPokemonBuilder().WithID(2).WithSpeed(90).Build()

	result := s.sim.Simulate([]*entities.Pokemon{slow}, []*entities.Pokemon{fast})

	s.Require().NotEmpty(result.Attacks())
	s.Equal(battle.SideOpponent, result.Attacks()[0].AttackerSide)
}

func (s *SimulatorTestSuite) TestSpeedTieFavorsPlayer() {
	a := builders.NewPokemonBuilder().WithSpeed(50).Build()
	b := builders.NewPokemonBuilder().WithID(2).WithSpeed(50).Build()

	result := s.sim.Simulate([]*entities.Pokemon{a}, []*entities.Pokemon{b})

	s.Require().NotEmpty(result.Attacks())
	s.Equal(battle.SidePlayer, result.Attacks()[0].AttackerSide)
}

func (s *SimulatorTestSuite) TestPicksSuperEffectiveType() {
	attacker := builders.NewPokemonBuilder().WithName("Tortank").WithTypes("Feu", "Eau").WithSpeed(100).Build()
	_, _, defender := testutils.CreateStarterLine()
	defender.Resistances = []entities.Resistance{{Name: "eau", Relation: effectiveness.RelationVulnerable}}

	result := s.sim.Simulate([]*entities.Pokemon{attacker}, []*entities.Pokemon{defender})

	first := result.Attacks()[0]
	s.Equal("Eau", first.Type)
	s.Equal(2.0, first.TypeMult)
	s.InDelta(2.4, first.Multiplier, 1e-9)
	s.Contains(result.Log[1].Text, "(very effective)")
}

func (s *SimulatorTestSuite) TestPicksSpecialCategoryWhenStronger() {
	attacker := builders.NewPokemonBuilder().
		WithStats(entities.Stats{HP: 50, Attack: 10, Defense: 50, SpecialAttack: 120, SpecialDefense: 50, Speed: 100}).
		Build()
	defender := builders.NewPokemonBuilder().WithID(2).WithSpeed(1).Build()

	result := s.sim.Simulate([]*entities.Pokemon{attacker}, []*entities.Pokemon{defender})

	s.Equal(battle.CategorySpecial, result.Attacks()[0].Category)
}

func (s *SimulatorTestSuite) TestImmuneDefenderTakesMinimumDamage() {
	attacker := builders.NewPokemonBuilder().WithTypes("Spectre").WithSpeed(100).Build()
	defender := builders.NewPokemonBuilder().WithID(2).WithSpeed(1).
		WithResistance("Spectre", effectiveness.RelationImmune).Build()

	result := s.sim.Simulate([]*entities.Pokemon{attacker}, []*entities.Pokemon{defender})

	first := result.Attacks()[0]
	s.Equal(1, first.Damage)
	s.Contains(result.Log[1].Text, "(no effect)")
}

func (s *SimulatorTestSuite) TestRemainingAttackersSkipOnceSideIsWiped() {
	a := builders.NewPokemonBuilder().WithSpeed(100).WithAttack(100).Build()
	b := builders.NewPokemonBuilder().WithID(2).WithSpeed(90).WithAttack(100).Build()
	target := builders.NewPokemonBuilder().WithID(3).WithSpeed(10).WithHP(1).Build()

	result := s.sim.Simulate([]*entities.Pokemon{a, b}, []*entities.Pokemon{target})

	s.Equal(battle.OutcomePlayer, result.Outcome)
	s.Len(result.Attacks(), 1)
	s.Equal(0, result.Attacks()[0].AttackerSlot)
}

func (s *SimulatorTestSuite) TestLogMatchesFinalState() {
	salameche, reptincel, dracaufeu := testutils.CreateStarterLine()
	player := []*entities.Pokemon{salameche, reptincel, dracaufeu}
	opponent := testutils.CreateTestTeam(3)

	result := s.sim.Simulate(player, opponent)

	s.LessOrEqual(result.Turns, battle.MaxTurns)
	s.Len(result.Frames(), len(result.Attacks()))

	lost := map[battle.Side]map[int]int{battle.SidePlayer: {}, battle.SideOpponent: {}}
	for _, attack := range result.Attacks() {
		lost[attack.DefenderSide][attack.DefenderSlot] += attack.HPLost
		s.GreaterOrEqual(attack.Damage, 1)
	}
	for _, c := range append(append([]*battle.Combatant{}, result.Player...), result.Opponent...) {
		s.Equal(c.MaxHP-c.CurrentHP, lost[c.Side][c.Slot], "slot %d of %s", c.Slot, c.Side)
	}
}

func (s *SimulatorTestSuite) TestInputsAreNotMutated() {
	player := testutils.CreateTestTeam(2)
	opponent := testutils.CreateTestTeam(2)
	opponent[0].Stats.HP = 1

	result := s.sim.Simulate(player, opponent)
	result.Player[0].Pokemon.Name = "changed"

	s.Equal("Test-A", player[0].Name)
	s.Equal(1, opponent[0].Stats.HP)
	s.NotSame(player[0], result.Player[0].Pokemon)
}

func (s *SimulatorTestSuite) TestDamageFormula() {
	testCases := []struct {
		name            string
		attack, defense int
		multiplier      float64
		expected        int
	}{
		{"stab even stats", 100, 100, 1.2, 34},
		{"neutral even stats", 100, 100, 1, 28},
		{"zero defense treated as one", 10, 0, 1, 266},
		{"zero attack", 0, 100, 1, 2},
		{"immune floors to one", 100, 100, 0, 1},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, battle.Damage(tc.attack, tc.defense, tc.multiplier))
		})
	}
}

func (s *SimulatorTestSuite) TestHealAndCloneTeam() {
	team := battle.NewTeam(testutils.CreateTestTeam(2), battle.SidePlayer)
	team[0].CurrentHP = 3

	snapshot := battle.CloneTeam(team)
	battle.HealTeam(team)

	s.Equal(team[0].MaxHP, team[0].CurrentHP)
	s.Equal(3, snapshot[0].CurrentHP)
	s.NotSame(team[0].Pokemon, snapshot[0].Pokemon)
}
