package config

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"github.com/riskibarqy/fantasy-rankings/internal/domain/season"
	"gopkg.in/yaml.v3"
)

// Catalogue lists the league seasons the job knows about.
type Catalogue struct {
	Leagues []CatalogueEntry `yaml:"leagues"`
}

type CatalogueEntry struct {
	GameID   int64  `yaml:"game_id"`
	LeagueID string `yaml:"league_id"`
	Season   int    `yaml:"season"`
	RulesEra string `yaml:"rules_era,omitempty"`
}

// LoadCatalogue reads a YAML catalogue file. Unknown keys are rejected.
func LoadCatalogue(path string) (Catalogue, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Catalogue{}, fmt.Errorf("read league catalogue: %w", err)
	}
	return ParseCatalogue(raw)
}

func ParseCatalogue(raw []byte) (Catalogue, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(raw))
	decoder.KnownFields(true)

	var out Catalogue
	if err := decoder.Decode(&out); err != nil {
		return Catalogue{}, fmt.Errorf("decode league catalogue: %w", err)
	}

	seen := make(map[int64]struct{}, len(out.Leagues))
	for i, entry := range out.Leagues {
		if entry.GameID <= 0 {
			return Catalogue{}, fmt.Errorf("catalogue entry %d: game_id must be > 0", i)
		}
		if _, dup := seen[entry.GameID]; dup {
			return Catalogue{}, fmt.Errorf("catalogue entry %d: duplicate game_id %d", i, entry.GameID)
		}
		seen[entry.GameID] = struct{}{}
		if entry.RulesEra != "" {
			if _, err := season.ParseRulesEra(entry.RulesEra); err != nil {
				return Catalogue{}, fmt.Errorf("catalogue entry %d: %w", i, err)
			}
		}
	}
	return out, nil
}

// GameIDs returns the catalogue seasons in increasing order.
func (c Catalogue) GameIDs() []int64 {
	out := make([]int64, 0, len(c.Leagues))
	for _, entry := range c.Leagues {
		out = append(out, entry.GameID)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// EraOverrides merges the catalogue eras with env overrides; env wins.
func (c Catalogue) EraOverrides(env map[int64]season.RulesEra) map[int64]season.RulesEra {
	out := make(map[int64]season.RulesEra, len(c.Leagues)+len(env))
	for _, entry := range c.Leagues {
		if entry.RulesEra == "" {
			continue
		}
		era, err := season.ParseRulesEra(entry.RulesEra)
		if err != nil {
			continue
		}
		out[entry.GameID] = era
	}
	for gameID, era := range env {
		out[gameID] = era
	}
	return out
}
