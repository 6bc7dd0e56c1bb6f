package postseason

import (
	"math"
	"sort"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/fantasy-rankings/internal/domain/season"
)

const (
	LabelRegularSeason = "Reg Season Finish"
	byeName            = "Bye"
)

// BoardRow is the postseason record of one team for one week.
type BoardRow struct {
	GameID  int64
	Week    int
	Bracket string
	Finish  int
	Seed    int
	TeamKey string
	Team    string
	Manager string
	Result  season.Result

	Points         float64
	Projected      float64
	TotalPoints    float64
	TotalProjected float64

	OppTeamKey        string
	OppTeam           string
	OppManager        string
	OppPoints         float64
	OppProjected      float64
	OppTotalPoints    float64
	OppTotalProjected float64

	Gap   bool
	Issue error
}

func (r *BoardRow) addIssue(err error) {
	r.Issue = crerr.CombineErrors(r.Issue, err)
}

// Score is one team's points for one week.
type Score struct {
	Week      int
	TeamKey   string
	Points    *float64
	Projected *float64
}

// ScoresFromMatchups flattens both sides of every matchup into weekly scores.
func ScoresFromMatchups(matchups []season.Matchup) []Score {
	out := make([]Score, 0, len(matchups)*2)
	seen := make(map[weekTeam]struct{}, len(matchups)*2)
	add := func(week int, team string, points, projected *float64) {
		key := weekTeam{week: week, team: team}
		if _, dup := seen[key]; dup || team == "" {
			return
		}
		seen[key] = struct{}{}
		out = append(out, Score{Week: week, TeamKey: team, Points: points, Projected: projected})
	}
	for _, m := range matchups {
		add(m.Week, m.TeamAKey, m.TeamAPoints, m.TeamAProjected)
		add(m.Week, m.TeamBKey, m.TeamBPoints, m.TeamBProjected)
	}
	return out
}

type weekTeam struct {
	week int
	team string
}

// Board holds the postseason rows of one season. It is written by the runner
// and the finish step, then finalized once.
type Board struct {
	gameID      int64
	currentWeek int
	weeks       []int
	rows        []*BoardRow
	index       map[weekTeam]*BoardRow
}

// NewBoard creates rows for every postseason week plus the latest reported week.
// seeds maps team key to final regular-season seed.
func NewBoard(s season.Settings, teams []season.Team, seeds map[string]int, scores []Score) *Board {
	b := &Board{
		gameID: s.GameID,
		index:  make(map[weekTeam]*BoardRow),
	}

	byKey := make(map[string]season.Team, len(teams))
	roster := make(map[string]struct{}, len(teams))
	for _, item := range teams {
		byKey[item.Key] = item
		roster[item.Key] = struct{}{}
	}

	scoreByKey := make(map[weekTeam]Score, len(scores))
	for _, item := range scores {
		scoreByKey[weekTeam{week: item.Week, team: item.TeamKey}] = item
		roster[item.TeamKey] = struct{}{}
		// scheduled weeks arrive before their scores; only reported points move the season on
		if item.Points != nil && item.Week > b.currentWeek {
			b.currentWeek = item.Week
		}
	}

	weekSet := make(map[int]struct{})
	for _, item := range scores {
		if item.Week >= s.PlayoffStartWeek || item.Week == b.currentWeek {
			weekSet[item.Week] = struct{}{}
		}
	}
	for week := range weekSet {
		b.weeks = append(b.weeks, week)
	}
	sort.Ints(b.weeks)

	keys := make([]string, 0, len(roster))
	for key := range roster {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, week := range b.weeks {
		for _, key := range keys {
			team := byKey[key]
			row := &BoardRow{
				GameID:  s.GameID,
				Week:    week,
				TeamKey: key,
				Team:    fallback(team.Name, key),
				Manager: fallback(team.Nickname, key),
				Seed:    team.PlayoffSeed,
			}
			if seed, ok := seeds[key]; ok {
				row.Seed = seed
			}

			score, ok := scoreByKey[weekTeam{week: week, team: key}]
			switch {
			case !ok || score.Points == nil:
				row.Gap = true
				row.Issue = crerr.Wrapf(season.ErrDataGap, "no score for team=%s week=%d", key, week)
			default:
				row.Points = *score.Points
				if score.Projected != nil {
					row.Projected = *score.Projected
				}
			}

			b.rows = append(b.rows, row)
			b.index[weekTeam{week: week, team: key}] = row
		}
	}

	return b
}

// CurrentWeek is the latest week with at least one reported score.
func (b *Board) CurrentWeek() int {
	return b.currentWeek
}

// Weeks lists the board weeks in increasing order.
func (b *Board) Weeks() []int {
	return append([]int(nil), b.weeks...)
}

func (b *Board) Row(team string, week int) (*BoardRow, bool) {
	row, ok := b.index[weekTeam{week: week, team: team}]
	return row, ok
}

// Finalize fills defaults for rows the brackets never touched and computes the
// running totals. Safe to call more than once.
func (b *Board) Finalize() {
	type totals struct {
		points, projected, oppPoints, oppProjected float64
	}
	running := make(map[string]*totals)

	// rows are stored week by week, so one pass keeps the totals in week order
	for _, row := range b.rows {
		if row.Finish == 0 {
			row.Finish = row.Seed
		}
		if row.Bracket == "" {
			row.Bracket = LabelRegularSeason
		}
		if row.OppTeamKey == "" {
			row.OppTeamKey = byeName
			row.OppTeam = byeName
			row.OppManager = byeName
			row.OppPoints = 0
			row.OppProjected = 0
		}
		if row.Result == "" {
			row.Result = season.ResultBye
		}

		acc, ok := running[row.TeamKey]
		if !ok {
			acc = &totals{}
			running[row.TeamKey] = acc
		}
		acc.points += row.Points
		acc.projected += row.Projected
		acc.oppPoints += row.OppPoints
		acc.oppProjected += row.OppProjected
		row.TotalPoints = round2(acc.points)
		row.TotalProjected = round2(acc.projected)
		row.OppTotalPoints = round2(acc.oppPoints)
		row.OppTotalProjected = round2(acc.oppProjected)
	}
}

// Rows returns a copy of the board ordered by week then finish.
func (b *Board) Rows() []BoardRow {
	out := make([]BoardRow, 0, len(b.rows))
	for _, row := range b.rows {
		out = append(out, *row)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Week != out[j].Week {
			return out[i].Week < out[j].Week
		}
		if out[i].Finish != out[j].Finish {
			return out[i].Finish < out[j].Finish
		}
		return out[i].TeamKey < out[j].TeamKey
	})
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func fallback(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
