// Package effectiveness resolves how much damage an attack type deals to a
// defender, based on the defender's resistance table.
package effectiveness

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/pokearena/tactics-arena/internal/entities"
)

// Named damage relations found in resistance tables
const (
	RelationTwiceVulnerable = "twice_vulnerable"
	RelationVulnerable      = "vulnerable"
	RelationNeutral         = "neutral"
	RelationResistant       = "resistant"
	RelationTwiceResistant  = "twice_resistant"
	RelationImmune          = "immune"
)

var relationMultipliers = map[string]float64{
	RelationTwiceVulnerable: 4,
	RelationVulnerable:      2,
	RelationNeutral:         1,
	RelationResistant:       0.5,
	RelationTwiceResistant:  0.25,
	RelationImmune:          0,
}

// Normalize folds a type name for comparison: accents are stripped, the
// result is trimmed and lowercased. "Électrik" and "ELECTRIK" both become
// "electrik".
func Normalize(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, name)
	if err != nil {
		folded = name
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

// SameType compares two type names after normalization
func SameType(a, b string) bool {
	return Normalize(a) == Normalize(b)
}

// RelationMultiplier maps a named relation to its multiplier. Unknown
// names are neutral.
func RelationMultiplier(relation string) float64 {
	if m, ok := relationMultipliers[strings.ToLower(strings.TrimSpace(relation))]; ok {
		return m
	}
	return 1
}

// Multiplier returns the damage multiplier of attackType against defender.
// A defender without a matching resistance entry takes neutral damage.
func Multiplier(attackType string, defender *entities.Pokemon) float64 {
	if defender == nil {
		return 1
	}

	want := Normalize(attackType)
	for _, r := range defender.Resistances {
		if Normalize(r.Name) != want {
			continue
		}
		if r.Multiplier != nil {
			return *r.Multiplier
		}
		return RelationMultiplier(r.Relation)
	}
	return 1
}

// Qualifier describes a multiplier for battle logs. Neutral hits have no
// qualifier.
func Qualifier(multiplier float64) string {
	switch {
	case multiplier > 2.5:
		return "ultra effective"
	case multiplier > 1.1:
		return "very effective"
	case multiplier == 0:
		return "no effect"
	case multiplier < 0.9:
		return "not very effective"
	default:
		return ""
	}
}
