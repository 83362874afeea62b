package testutils

import (
	"github.com/pokearena/tactics-arena/internal/entities"
	"github.com/pokearena/tactics-arena/internal/testutils/builders"
)

// CreateStarterLine returns the three members of a starter evolution line:
// Salamèche (4) → Reptincel (5) → Dracaufeu (6).
func CreateStarterLine() (*entities.Pokemon, *entities.Pokemon, *entities.Pokemon) {
	salameche := builders.NewPokemonBuilder().
		WithID(4).WithName("Salamèche").WithTypes("Feu").
		WithStats(entities.Stats{HP: 39, Attack: 52, Defense: 43, SpecialAttack: 60, SpecialDefense: 50, Speed: 65}).
		WithResistance("Eau", "vulnerable").
		WithEvolution(5, "Reptincel").
		Build()

	reptincel := builders.NewPokemonBuilder().
		WithID(5).WithName("Reptincel").WithTypes("Feu").WithRarity(entities.RarityUncommon).
		WithStats(entities.Stats{HP: 58, Attack: 64, Defense: 58, SpecialAttack: 80, SpecialDefense: 65, Speed: 80}).
		WithResistance("Eau", "vulnerable").
		WithEvolution(6, "Dracaufeu").
		Build()
	reptincel.PreEvolution = &entities.EvolutionRef{ID: 4, Name: "Salamèche"}

	dracaufeu := builders.NewPokemonBuilder().
		WithID(6).WithName("Dracaufeu").WithTypes("Feu", "Vol").WithRarity(entities.RarityRare).
		WithStats(entities.Stats{HP: 78, Attack: 84, Defense: 78, SpecialAttack: 109, SpecialDefense: 85, Speed: 100}).
		WithResistance("Roche", "twice_vulnerable").
		Build()
	dracaufeu.PreEvolution = &entities.EvolutionRef{ID: 5, Name: "Reptincel"}

	return salameche, reptincel, dracaufeu
}

// CreateTestTeam returns size distinct neutral records starting at id 100
func CreateTestTeam(size int) []*entities.Pokemon {
	team := make([]*entities.Pokemon, size)
	for i := range team {
		team[i] = builders.NewPokemonBuilder().
			WithID(100 + i).
			WithName("Test-" + string(rune('A'+i))).
			WithTypes("Normal").
			Build()
	}
	return team
}
