package season

import (
	"fmt"
	"strings"
)

// RulesEra is a named historical ruleset. It decides the weekly ranking formula
// and how non-playoff teams are split into consolation and toilet pools.
type RulesEra string

const (
	// EraLegacy ranks by wins and sends the bottom seeds to a toilet bracket.
	EraLegacy RulesEra = "legacy"
	// EraAlternate ranks by wins and runs a consolation bracket with no toilet bracket.
	EraAlternate RulesEra = "alternate"
	// EraTwoPoint ranks by wins plus top-half bonus points, toilet bracket only.
	EraTwoPoint RulesEra = "two_point"
	// EraModern ranks like EraTwoPoint and runs both consolation and toilet brackets.
	EraModern RulesEra = "modern"
)

// Game ids at which the league rules changed.
const (
	AlternateSplitGameID int64 = 314 // 2013 season only
	TwoPointFirstGameID  int64 = 390 // 2019
	ModernFirstGameID    int64 = 406 // 2021
)

// SplitRegime selects the pool partition formula.
type SplitRegime int

const (
	SplitLegacy SplitRegime = iota
	SplitModern
	SplitAlternate
)

var AllEras = map[RulesEra]struct{}{
	EraLegacy:    {},
	EraAlternate: {},
	EraTwoPoint:  {},
	EraModern:    {},
}

func ParseRulesEra(raw string) (RulesEra, error) {
	era := RulesEra(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := AllEras[era]; !ok {
		return "", fmt.Errorf("%w: unknown rules era %q", ErrConfiguration, raw)
	}
	return era, nil
}

// TwoPointRanking reports whether the weekly rank tuple starts with the
// wins-plus-bonus rank instead of the wins rank.
func (e RulesEra) TwoPointRanking() bool {
	return e == EraTwoPoint || e == EraModern
}

func (e RulesEra) Split() SplitRegime {
	switch e {
	case EraModern:
		return SplitModern
	case EraAlternate:
		return SplitAlternate
	default:
		return SplitLegacy
	}
}

// EraCatalog maps a game id to its rules era. Explicit overrides win over the
// built-in boundaries.
type EraCatalog struct {
	overrides map[int64]RulesEra
}

func NewEraCatalog(overrides map[int64]RulesEra) EraCatalog {
	out := make(map[int64]RulesEra, len(overrides))
	for gameID, era := range overrides {
		out[gameID] = era
	}
	return EraCatalog{overrides: out}
}

func (c EraCatalog) EraFor(gameID int64) RulesEra {
	if era, ok := c.overrides[gameID]; ok {
		return era
	}

	switch {
	case gameID == AlternateSplitGameID:
		return EraAlternate
	case gameID >= ModernFirstGameID:
		return EraModern
	case gameID >= TwoPointFirstGameID:
		return EraTwoPoint
	default:
		return EraLegacy
	}
}
