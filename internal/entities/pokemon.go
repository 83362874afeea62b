package entities

import (
	"strconv"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Rarity tiers used when unlocking roster entries
const (
	RarityCommon   = "common"
	RarityUncommon = "uncommon"
	RarityRare     = "rare"
)

// EntityTypePokemon is the core.Entity type reported by Pokemon
const EntityTypePokemon = "pokemon"

// Stats holds the base stat block of a Pokémon
type Stats struct {
	HP             int `json:"hp" yaml:"hp" validate:"gte=0"`
	Attack         int `json:"attack" yaml:"attack" validate:"gte=0"`
	Defense        int `json:"defense" yaml:"defense" validate:"gte=0"`
	SpecialAttack  int `json:"special_attack" yaml:"special_attack" validate:"gte=0"`
	SpecialDefense int `json:"special_defense" yaml:"special_defense" validate:"gte=0"`
	Speed          int `json:"speed" yaml:"speed" validate:"gte=0"`
}

// Total returns the sum of all base stats
func (s Stats) Total() int {
	return s.HP + s.Attack + s.Defense + s.SpecialAttack + s.SpecialDefense + s.Speed
}

// Delta returns target minus s for every stat that differs
func (s Stats) Delta(target Stats) map[string]int {
	delta := make(map[string]int)
	pairs := []struct {
		name     string
		from, to int
	}{
		{"hp", s.HP, target.HP},
		{"attack", s.Attack, target.Attack},
		{"defense", s.Defense, target.Defense},
		{"special_attack", s.SpecialAttack, target.SpecialAttack},
		{"special_defense", s.SpecialDefense, target.SpecialDefense},
		{"speed", s.Speed, target.Speed},
	}
	for _, p := range pairs {
		if d := p.to - p.from; d != 0 {
			delta[p.name] = d
		}
	}
	return delta
}

// Type is an elemental type attached to a Pokémon
type Type struct {
	Name string `json:"name" yaml:"name" validate:"required"`
}

// Resistance describes how much damage a type deals to the owner.
// Multiplier, when set, wins over Relation.
type Resistance struct {
	Name       string   `json:"name" yaml:"name" validate:"required"`
	Relation   string   `json:"damage_relation,omitempty" yaml:"damage_relation,omitempty"`
	Multiplier *float64 `json:"damage_multiplier,omitempty" yaml:"damage_multiplier,omitempty" validate:"omitempty,gte=0"`
}

// EvolutionRef points at another Pokémon by id or by name
type EvolutionRef struct {
	ID   int    `json:"id,omitempty" yaml:"id,omitempty"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

// Ref returns the lookup key for the data source, id first
func (r EvolutionRef) Ref() string {
	if r.ID > 0 {
		return strconv.Itoa(r.ID)
	}
	return r.Name
}

// Pokemon is the normalized record returned by the data source
type Pokemon struct {
	ID           int            `json:"id" yaml:"id" validate:"gt=0"`
	Name         string         `json:"name" yaml:"name" validate:"required"`
	Image        string         `json:"image,omitempty" yaml:"image,omitempty"`
	Generation   int            `json:"generation" yaml:"generation" validate:"gte=1"`
	Rarity       string         `json:"rarity,omitempty" yaml:"rarity,omitempty" validate:"omitempty,oneof=common uncommon rare"`
	Stats        Stats          `json:"stats" yaml:"stats"`
	Types        []Type         `json:"types" yaml:"types" validate:"min=1,dive"`
	Resistances  []Resistance   `json:"resistances,omitempty" yaml:"resistances,omitempty" validate:"dive"`
	Evolutions   []EvolutionRef `json:"evolutions,omitempty" yaml:"evolutions,omitempty"`
	PreEvolution *EvolutionRef  `json:"pre_evolution,omitempty" yaml:"pre_evolution,omitempty"`
}

// GetID implements core.Entity
func (p *Pokemon) GetID() string {
	return strconv.Itoa(p.ID)
}

// GetType implements core.Entity
func (p *Pokemon) GetType() string {
	return EntityTypePokemon
}

// TypeNames returns the names of the Pokémon's types in order
func (p *Pokemon) TypeNames() []string {
	names := make([]string, len(p.Types))
	for i, t := range p.Types {
		names[i] = t.Name
	}
	return names
}

// CanEvolve reports whether the record lists at least one evolution
func (p *Pokemon) CanEvolve() bool {
	return len(p.Evolutions) > 0
}

// Clone returns a deep copy of the record
func (p *Pokemon) Clone() *Pokemon {
	if p == nil {
		return nil
	}

	c := *p
	c.Types = append([]Type(nil), p.Types...)
	c.Evolutions = append([]EvolutionRef(nil), p.Evolutions...)
	if p.Resistances != nil {
		c.Resistances = make([]Resistance, len(p.Resistances))
		for i, r := range p.Resistances {
			c.Resistances[i] = r
			if r.Multiplier != nil {
				m := *r.Multiplier
				c.Resistances[i].Multiplier = &m
			}
		}
	}
	if p.PreEvolution != nil {
		pre := *p.PreEvolution
		c.PreEvolution = &pre
	}
	return &c
}

// CloneTeam deep-copies every record of a team
func CloneTeam(team []*Pokemon) []*Pokemon {
	out := make([]*Pokemon, len(team))
	for i, p := range team {
		out[i] = p.Clone()
	}
	return out
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func recordValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks the record at the data source boundary
func (p *Pokemon) Validate() error {
	return recordValidator().Struct(p)
}
