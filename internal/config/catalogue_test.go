package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/riskibarqy/fantasy-rankings/internal/domain/season"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCatalogue = `
leagues:
  - game_id: 406
    league_id: "406.l.12345"
    season: 2021
  - game_id: 314
    league_id: "314.l.777"
    season: 2013
    rules_era: alternate
`

func TestLoadCatalogue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leagues.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleCatalogue), 0o600))

	catalogue, err := LoadCatalogue(path)
	require.NoError(t, err)
	require.Len(t, catalogue.Leagues, 2)

	assert.Equal(t, []int64{314, 406}, catalogue.GameIDs())
	assert.Equal(t, "406.l.12345", catalogue.Leagues[0].LeagueID)

	overrides := catalogue.EraOverrides(map[int64]season.RulesEra{406: season.EraTwoPoint})
	assert.Equal(t, season.EraAlternate, overrides[314])
	assert.Equal(t, season.EraTwoPoint, overrides[406])
}

func TestParseCatalogue_Invalid(t *testing.T) {
	cases := map[string]string{
		"zero game id":  "leagues:\n  - game_id: 0\n",
		"duplicate":     "leagues:\n  - game_id: 406\n  - game_id: 406\n",
		"unknown era":   "leagues:\n  - game_id: 406\n    rules_era: future\n",
		"unknown field": "leagues:\n  - game_id: 406\n    owner: someone\n",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseCatalogue([]byte(raw))
			require.Error(t, err)
		})
	}
}

func TestLoadCatalogue_MissingFile(t *testing.T) {
	_, err := LoadCatalogue(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
