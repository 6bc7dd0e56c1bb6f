package postseason

import (
	"fmt"

	"github.com/riskibarqy/fantasy-rankings/internal/domain/season"
)

// Finish is a team's overall placement across all pools.
type Finish struct {
	Pool  Pool
	Team  string
	Place int
}

// Placements combines the pool brackets into one overall order. Pools are
// stacked Playoff, Consolation, Toilet; a pool of one places its team right
// after the pools before it.
func Placements(runs []PoolRun) ([]Finish, error) {
	var out []Finish
	offset := 0
	for _, run := range runs {
		switch {
		case len(run.Teams) == 0:
			continue
		case run.Bracket == nil:
			out = append(out, Finish{Pool: run.Pool, Team: run.Teams[0], Place: offset + 1})
		default:
			placements, err := run.Bracket.Placements()
			if err != nil {
				return nil, fmt.Errorf("%s placements: %w", run.Pool, err)
			}
			for _, item := range placements {
				out = append(out, Finish{Pool: run.Pool, Team: item.Team, Place: offset + item.Place})
			}
		}
		offset += len(run.Teams)
	}
	return out, nil
}

// ApplyFinish writes the final placements onto the end-week rows. It does
// nothing before the end week; from then on every bracket must be complete.
// Nothing is written unless all placements can be computed.
func ApplyFinish(board *Board, s season.Settings, runs []PoolRun) ([]Finish, error) {
	if board.CurrentWeek() < s.EndWeek {
		return nil, nil
	}

	finishes, err := Placements(runs)
	if err != nil {
		return nil, err
	}

	for _, item := range finishes {
		row, ok := board.Row(item.Team, s.EndWeek)
		if !ok {
			continue
		}
		row.Finish = item.Place
		row.Bracket = FinalLabel(item.Pool)
	}
	return finishes, nil
}

func FinalLabel(pool Pool) string {
	return string(pool) + " Final"
}
