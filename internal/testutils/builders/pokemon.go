// Package builders provides test data builders for creating test fixtures
package builders

import (
	"strconv"

	"github.com/pokearena/tactics-arena/internal/entities"
)

// PokemonBuilder provides a fluent interface for building test Pokemon records
type PokemonBuilder struct {
	pokemon *entities.Pokemon
}

// NewPokemonBuilder creates a builder with a valid, neutral record
func NewPokemonBuilder() *PokemonBuilder {
	return &PokemonBuilder{
		pokemon: &entities.Pokemon{
			ID:         1,
			Name:       "Bulbizarre",
			Image:      "sprites/1.png",
			Generation: 1,
			Rarity:     entities.RarityCommon,
			Stats: entities.Stats{
				HP:             45,
				Attack:         49,
				Defense:        49,
				SpecialAttack:  65,
				SpecialDefense: 65,
				Speed:          45,
			},
			Types: []entities.Type{{Name: "Plante"}},
		},
	}
}

// WithID sets the id and a matching sprite path
func (b *PokemonBuilder) WithID(id int) *PokemonBuilder {
	b.pokemon.ID = id
	b.pokemon.Image = "sprites/" + strconv.Itoa(id) + ".png"
	return b
}

// WithName sets the name
func (b *PokemonBuilder) WithName(name string) *PokemonBuilder {
	b.pokemon.Name = name
	return b
}

// WithGeneration sets the generation
func (b *PokemonBuilder) WithGeneration(gen int) *PokemonBuilder {
	b.pokemon.Generation = gen
	return b
}

// WithRarity sets the rarity tier
func (b *PokemonBuilder) WithRarity(rarity string) *PokemonBuilder {
	b.pokemon.Rarity = rarity
	return b
}

// WithStats replaces the whole stat block
func (b *PokemonBuilder) WithStats(stats entities.Stats) *PokemonBuilder {
	b.pokemon.Stats = stats
	return b
}

// WithHP sets the HP stat
func (b *PokemonBuilder) WithHP(hp int) *PokemonBuilder {
	b.pokemon.Stats.HP = hp
	return b
}

// WithSpeed sets the speed stat
func (b *PokemonBuilder) WithSpeed(speed int) *PokemonBuilder {
	b.pokemon.Stats.Speed = speed
	return b
}

// WithAttack sets the physical attack stat
func (b *PokemonBuilder) WithAttack(attack int) *PokemonBuilder {
	b.pokemon.Stats.Attack = attack
	return b
}

// WithDefense sets both defense stats
func (b *PokemonBuilder) WithDefense(defense int) *PokemonBuilder {
	b.pokemon.Stats.Defense = defense
	b.pokemon.Stats.SpecialDefense = defense
	return b
}

// WithTypes replaces the type list
func (b *PokemonBuilder) WithTypes(names ...string) *PokemonBuilder {
	b.pokemon.Types = nil
	for _, n := range names {
		b.pokemon.Types = append(b.pokemon.Types, entities.Type{Name: n})
	}
	return b
}

// WithResistance appends a named damage relation
func (b *PokemonBuilder) WithResistance(typeName, relation string) *PokemonBuilder {
	b.pokemon.Resistances = append(b.pokemon.Resistances, entities.Resistance{
		Name:     typeName,
		Relation: relation,
	})
	return b
}

// WithEvolution appends an evolution target by id
func (b *PokemonBuilder) WithEvolution(id int, name string) *PokemonBuilder {
	b.pokemon.Evolutions = append(b.pokemon.Evolutions, entities.EvolutionRef{ID: id, Name: name})
	return b
}

// Build returns a copy of the built record
func (b *PokemonBuilder) Build() *entities.Pokemon {
	return b.pokemon.Clone()
}
