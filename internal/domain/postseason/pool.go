package postseason

import "github.com/riskibarqy/fantasy-rankings/internal/domain/season"

// Pool names one postseason bracket.
type Pool string

const (
	PoolPlayoff     Pool = "Playoff"
	PoolConsolation Pool = "Consolation"
	PoolToilet      Pool = "Toilet"
)

// Pools is a disjoint split of the roster, each list ordered best seed first.
type Pools struct {
	Playoff     []string
	Consolation []string
	Toilet      []string
}

// Teams returns the members of pool.
func (p Pools) Teams(pool Pool) []string {
	switch pool {
	case PoolPlayoff:
		return p.Playoff
	case PoolConsolation:
		return p.Consolation
	case PoolToilet:
		return p.Toilet
	default:
		return nil
	}
}

// Order is the fixed placement order of the pools.
var Order = []Pool{PoolPlayoff, PoolConsolation, PoolToilet}

// ToiletCount is the number of teams sent to the bottom bracket.
func ToiletCount(s season.Settings) int {
	if s.NumConsolationTeams == 0 {
		return 0
	}
	if 2*s.NumPlayoffTeams >= s.MaxTeams {
		return s.MaxTeams - s.NumPlayoffTeams
	}
	return s.NumPlayoffTeams
}

// SplitPools partitions teams ordered by final seed (index 0 is seed 1).
func SplitPools(seeded []string, s season.Settings, regime season.SplitRegime) Pools {
	var out Pools
	playoffCut := s.NumPlayoffTeams
	toilet := ToiletCount(s)

	for i, team := range seeded {
		seed := i + 1
		if seed <= playoffCut {
			out.Playoff = append(out.Playoff, team)
			continue
		}
		if toilet == 0 {
			continue
		}

		inBottom := seed > s.MaxTeams-toilet
		switch regime {
		case season.SplitModern:
			if inBottom {
				out.Toilet = append(out.Toilet, team)
			} else {
				out.Consolation = append(out.Consolation, team)
			}
		case season.SplitAlternate:
			// bottom max-playoff seeds, i.e. every non-playoff seed
			out.Consolation = append(out.Consolation, team)
		default:
			if inBottom {
				out.Toilet = append(out.Toilet, team)
			}
		}
	}
	return out
}

// StartWeek is the first week a pool plays. A pool smaller than the playoff
// pool needs fewer rounds and starts one week later.
func StartWeek(s season.Settings, poolSize, playoffSize int) int {
	if poolSize < playoffSize {
		return s.PlayoffStartWeek + 1
	}
	return s.PlayoffStartWeek
}
