package arena

import (
	"slices"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/pokearena/tactics-arena/internal/entities"
	"github.com/pokearena/tactics-arena/internal/errors"
)

// Rarity weights for roster draws
const (
	WeightCommon   = 65
	WeightUncommon = 25
	WeightRare     = 10
	WeightDefault  = 15
)

// RarityWeight returns the draw weight of a rarity tier
func RarityWeight(rarity string) int {
	switch rarity {
	case entities.RarityCommon:
		return WeightCommon
	case entities.RarityUncommon:
		return WeightUncommon
	case entities.RarityRare:
		return WeightRare
	default:
		return WeightDefault
	}
}

// WeightedSample draws up to n distinct records, each draw weighted by
// rarity among the records still in the pool
func WeightedSample(roller dice.Roller, pool []*entities.Pokemon, n int) ([]*entities.Pokemon, error) {
	remaining := slices.Clone(pool)
	picked := make([]*entities.Pokemon, 0, min(n, len(remaining)))

	for len(picked) < n && len(remaining) > 0 {
		total := 0
		for _, p := range remaining {
			total += RarityWeight(p.Rarity)
		}

		roll, err := roller.Roll(total)
		if err != nil {
			return nil, errors.Wrap(err, "failed to roll weighted draw")
		}

		idx := len(remaining) - 1
		for i, p := range remaining {
			roll -= RarityWeight(p.Rarity)
			if roll <= 0 {
				idx = i
				break
			}
		}

		picked = append(picked, remaining[idx].Clone())
		remaining = slices.Delete(remaining, idx, idx+1)
	}
	return picked, nil
}
