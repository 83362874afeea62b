package dex_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokearena/tactics-arena/internal/clients/dex"
	"github.com/pokearena/tactics-arena/internal/errors"
)

const sampleCatalog = `
pokemon:
  - id: 25
    name: Pikachu
    generation: 1
    rarity: uncommon
    stats: {hp: 35, attack: 55, defense: 40, special_attack: 50, special_defense: 50, speed: 90}
    types:
      - name: Électrik
    resistances:
      - name: Sol
        damage_relation: vulnerable
      - name: Vol
        damage_multiplier: 0.5
    evolutions:
      - id: 26
        name: Raichu
`

func TestParseCatalog(t *testing.T) {
	entries, err := dex.ParseCatalog([]byte(sampleCatalog))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	pikachu := entries[0]
	assert.Equal(t, "Pikachu", pikachu.Name)
	assert.Equal(t, 90, pikachu.Stats.Speed)
	assert.Equal(t, []string{"Électrik"}, pikachu.TypeNames())
	require.Len(t, pikachu.Resistances, 2)
	assert.Equal(t, "vulnerable", pikachu.Resistances[0].Relation)
	require.NotNil(t, pikachu.Resistances[1].Multiplier)
	assert.Equal(t, 0.5, *pikachu.Resistances[1].Multiplier)
	assert.Equal(t, "26", pikachu.Evolutions[0].Ref())
}

func TestParseCatalogRejectsInvalidEntries(t *testing.T) {
	testCases := map[string]string{
		"malformed":     "pokemon: [",
		"empty":         "pokemon: []",
		"missing types": "pokemon:\n  - id: 1\n    name: Bulbizarre\n    generation: 1\n",
		"bad rarity":    "pokemon:\n  - id: 1\n    name: Bulbizarre\n    generation: 1\n    rarity: mythic\n    types: [{name: Plante}]\n",
		"negative stat": "pokemon:\n  - id: 1\n    name: Bulbizarre\n    generation: 1\n    stats: {hp: -5}\n    types: [{name: Plante}]\n",
	}

	for name, data := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := dex.ParseCatalog([]byte(data))
			assert.True(t, errors.IsInvalidArgument(err), "got %v", err)
		})
	}
}

func TestLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dex.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleCatalog), 0o600))

	entries, err := dex.LoadCatalog(path)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	_, err = dex.LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.IsNotFound(err))
}
