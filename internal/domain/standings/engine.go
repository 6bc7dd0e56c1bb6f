package standings

import (
	"math"
	"sort"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/fantasy-rankings/internal/domain/season"
	"github.com/riskibarqy/fantasy-rankings/internal/platform/logging"
)

// Input is everything the engine needs for one league season.
type Input struct {
	Settings season.Settings
	Matchups []season.Matchup
	Teams    []season.Team
}

// Engine turns head-to-head matchup rows into ranked weekly standings.
type Engine struct {
	era    season.RulesEra
	logger *logging.Logger
}

func NewEngine(era season.RulesEra, logger *logging.Logger) *Engine {
	if logger == nil {
		logger = logging.Default()
	}
	return &Engine{era: era, logger: logger}
}

type side struct {
	week         int
	team         string
	opp          string
	points       *float64
	projected    *float64
	oppPoints    *float64
	oppProjected *float64
	row          season.Matchup
}

type accumulator struct {
	points       float64
	projected    float64
	oppPoints    float64
	oppProjected float64
	wins         int
	losses       int
	bonus        int
	games        int
}

// Compute returns one row per rostered team and regular-season week, ordered by
// week and then by rank. Rows that cannot be scored are kept with Gap set.
func (e *Engine) Compute(in Input) []Row {
	teams := make(map[string]season.Team, len(in.Teams))
	for _, item := range in.Teams {
		teams[item.Key] = item
	}

	sides := e.regularSeasonSides(in)
	byWeek := make(map[int][]*Row)
	seen := make(map[weekTeam]struct{})
	roster := make(map[string]struct{}, len(teams))
	for key := range teams {
		roster[key] = struct{}{}
	}

	for _, s := range sides {
		dedupKey := weekTeam{week: s.week, team: s.team}
		if _, dup := seen[dedupKey]; dup {
			e.logger.Debug("duplicate matchup side ignored", "game_id", in.Settings.GameID, "week", s.week, "team_key", s.team)
			continue
		}
		seen[dedupKey] = struct{}{}
		roster[s.team] = struct{}{}
		byWeek[s.week] = append(byWeek[s.week], e.newRow(in.Settings.GameID, s, teams))
	}

	weeks := make([]int, 0, len(byWeek))
	for week := range byWeek {
		weeks = append(weeks, week)
	}
	sort.Ints(weeks)

	rosterKeys := make([]string, 0, len(roster))
	for key := range roster {
		rosterKeys = append(rosterKeys, key)
	}
	sort.Strings(rosterKeys)

	for _, week := range weeks {
		for _, key := range rosterKeys {
			if _, ok := seen[weekTeam{week: week, team: key}]; ok {
				continue
			}
			row := &Row{
				GameID:  in.Settings.GameID,
				Week:    week,
				TeamKey: key,
				Team:    teamName(teams, key),
				Manager: managerName(teams, key),
				Gap:     true,
				Issue:   crerr.Wrapf(season.ErrDataGap, "no matchup row for team=%s week=%d", key, week),
			}
			byWeek[week] = append(byWeek[week], row)
		}
	}

	leagueSize := in.Settings.MaxTeams
	totals := make(map[string]*accumulator, len(rosterKeys))
	prevRank := make(map[string]int)
	out := make([]Row, 0, len(weeks)*len(rosterKeys))

	for _, week := range weeks {
		rows := byWeek[week]
		scored := make([]*Row, 0, len(rows))
		for _, row := range rows {
			if row.Gap {
				e.logger.Debug("standings row left unset", "game_id", row.GameID, "week", row.Week, "team_key", row.TeamKey, "reason", row.Issue)
				continue
			}
			scored = append(scored, row)
		}

		size := leagueSize
		if size <= 0 {
			size = len(scored)
		}
		e.rankWeek(scored, size)

		for _, row := range scored {
			acc, ok := totals[row.TeamKey]
			if !ok {
				acc = &accumulator{}
				totals[row.TeamKey] = acc
			}
			acc.add(row)
			acc.apply(row)
		}
		e.rankCumulative(scored)

		nextPrev := make(map[string]int, len(scored))
		for _, row := range rows {
			row.PrevRank = prevRank[row.TeamKey]
			if !row.Gap {
				nextPrev[row.TeamKey] = row.Rank
			}
		}
		prevRank = nextPrev

		sort.SliceStable(rows, func(i, j int) bool {
			if rows[i].Gap != rows[j].Gap {
				return !rows[i].Gap
			}
			if rows[i].Rank != rows[j].Rank {
				return rows[i].Rank < rows[j].Rank
			}
			return rows[i].TeamKey < rows[j].TeamKey
		})
		for _, row := range rows {
			out = append(out, *row)
		}
	}

	return out
}

// regularSeasonSides mirrors every matchup into both perspectives and keeps
// only weeks before the playoffs, ordered by week then team key.
func (e *Engine) regularSeasonSides(in Input) []side {
	out := make([]side, 0, len(in.Matchups)*2)
	for _, m := range in.Matchups {
		if !m.InSeason(in.Settings.GameID) {
			continue
		}
		if in.Settings.PlayoffStartWeek > 0 && m.Week >= in.Settings.PlayoffStartWeek {
			continue
		}
		out = append(out,
			side{week: m.Week, team: m.TeamAKey, opp: m.TeamBKey, points: m.TeamAPoints, projected: m.TeamAProjected, oppPoints: m.TeamBPoints, oppProjected: m.TeamBProjected, row: m},
			side{week: m.Week, team: m.TeamBKey, opp: m.TeamAKey, points: m.TeamBPoints, projected: m.TeamBProjected, oppPoints: m.TeamAPoints, oppProjected: m.TeamAProjected, row: m},
		)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].week != out[j].week {
			return out[i].week < out[j].week
		}
		if !out[i].row.WeekStart.Equal(out[j].row.WeekStart) {
			return out[i].row.WeekStart.Before(out[j].row.WeekStart)
		}
		return out[i].team < out[j].team
	})
	return out
}

func (e *Engine) newRow(gameID int64, s side, teams map[string]season.Team) *Row {
	row := &Row{
		GameID:     gameID,
		Week:       s.week,
		WeekStart:  s.row.WeekStart,
		TeamKey:    s.team,
		Team:       teamName(teams, s.team),
		Manager:    managerName(teams, s.team),
		OppTeamKey: s.opp,
		OppTeam:    teamName(teams, s.opp),
		OppManager: managerName(teams, s.opp),
	}

	switch {
	case s.points == nil:
		row.Gap = true
		row.Issue = crerr.Wrapf(season.ErrDataGap, "missing points team=%s week=%d", s.team, s.week)
		return row
	case s.oppPoints == nil:
		row.Gap = true
		row.Issue = crerr.Wrapf(season.ErrDataGap, "missing opponent points team=%s opp=%s week=%d", s.team, s.opp, s.week)
		return row
	}

	row.Points = *s.points
	row.OppPoints = *s.oppPoints
	if s.projected != nil {
		row.Projected = *s.projected
	}
	if s.oppProjected != nil {
		row.OppProjected = *s.oppProjected
	}
	return row
}

// rankWeek fills the per-week columns: result, score ranks and top-half bonus.
func (e *Engine) rankWeek(rows []*Row, leagueSize int) {
	if len(rows) == 0 {
		return
	}
	cutoff := (leagueSize + 1) / 2

	points := make([]float64, len(rows))
	projected := make([]float64, len(rows))
	oppPoints := make([]float64, len(rows))
	oppProjected := make([]float64, len(rows))
	for i, row := range rows {
		points[i] = row.Points
		projected[i] = row.Projected
		oppPoints[i] = row.OppPoints
		oppProjected[i] = row.OppProjected
	}

	pointsRank := rankFirst(points, true)
	projectedRank := rankFirst(projected, true)
	oppPointsRank := rankFirst(oppPoints, true)
	oppProjectedRank := rankFirst(oppProjected, true)

	for i, row := range rows {
		row.PointsRank = pointsRank[i]
		row.ProjectedRank = projectedRank[i]
		row.OppPointsRank = oppPointsRank[i]
		row.OppProjectedRank = oppProjectedRank[i]
		if row.PointsRank <= cutoff {
			row.TopHalf = 1
		}
		if season.Decide(row.TeamKey, row.Points, row.OppTeamKey, row.OppPoints) == row.TeamKey {
			row.Result = season.ResultWin
		} else {
			row.Result = season.ResultLoss
		}
	}
}

// rankCumulative ranks the running totals inside one week and derives the overall rank.
func (e *Engine) rankCumulative(rows []*Row) {
	if len(rows) == 0 {
		return
	}

	n := len(rows)
	total := make([]float64, n)
	avg := make([]float64, n)
	totalProjected := make([]float64, n)
	totalOpp := make([]float64, n)
	avgOpp := make([]float64, n)
	totalOppProjected := make([]float64, n)
	wins := make([]float64, n)
	bonus := make([]float64, n)
	twoPoint := make([]float64, n)
	for i, row := range rows {
		total[i] = row.TotalPoints
		avg[i] = row.AvgPoints
		totalProjected[i] = row.TotalProjected
		totalOpp[i] = row.TotalOppPoints
		avgOpp[i] = row.AvgOppPoints
		totalOppProjected[i] = row.TotalOppProjected
		wins[i] = float64(row.Wins)
		bonus[i] = float64(row.BonusTotal)
		twoPoint[i] = float64(row.TwoPointTotal)
	}

	totalRank := rankMin(total, true)
	avgRank := rankMin(avg, true)
	totalProjectedRank := rankMin(totalProjected, true)
	totalOppRank := rankMax(totalOpp, false)
	avgOppRank := rankMin(avgOpp, true)
	totalOppProjectedRank := rankMax(totalOppProjected, false)
	winsRank := rankMin(wins, true)
	bonusRank := rankMin(bonus, true)
	twoPointRank := rankMin(twoPoint, true)

	tuples := make([][2]int, n)
	for i, row := range rows {
		row.TotalPointsRank = totalRank[i]
		row.AvgPointsRank = avgRank[i]
		row.TotalProjectedRank = totalProjectedRank[i]
		row.TotalOppPointsRank = totalOppRank[i]
		row.AvgOppPointsRank = avgOppRank[i]
		row.TotalOppProjectedRank = totalOppProjectedRank[i]
		row.WinsRank = winsRank[i]
		row.BonusRank = bonusRank[i]
		row.TwoPointRank = twoPointRank[i]

		if e.era.TwoPointRanking() {
			row.Tuple = [2]int{row.TwoPointRank, row.TotalPointsRank}
		} else {
			row.Tuple = [2]int{row.WinsRank, row.TotalPointsRank}
		}
		tuples[i] = row.Tuple
	}

	overall := rankTuples(tuples)
	for i, row := range rows {
		row.Rank = overall[i]
	}
}

func (a *accumulator) add(row *Row) {
	a.points += row.Points
	a.projected += row.Projected
	a.oppPoints += row.OppPoints
	a.oppProjected += row.OppProjected
	a.bonus += row.TopHalf
	a.games++
	if row.Result == season.ResultWin {
		a.wins++
	} else {
		a.losses++
	}
}

func (a *accumulator) apply(row *Row) {
	row.TotalPoints = round2(a.points)
	row.TotalProjected = round2(a.projected)
	row.TotalOppPoints = round2(a.oppPoints)
	row.TotalOppProjected = round2(a.oppProjected)
	row.Wins = a.wins
	row.Losses = a.losses
	row.BonusTotal = a.bonus
	row.TwoPointTotal = a.bonus + a.wins
	if a.games > 0 {
		row.AvgPoints = round2(a.points / float64(a.games))
		row.AvgOppPoints = round2(a.oppPoints / float64(a.games))
	}
}

// FinalSeeds returns the overall rank of every scored team in the last
// regular-season week.
func FinalSeeds(rows []Row) map[string]int {
	lastWeek := 0
	for _, row := range rows {
		if !row.Gap && row.Week > lastWeek {
			lastWeek = row.Week
		}
	}

	out := make(map[string]int)
	for _, row := range rows {
		if row.Week == lastWeek && !row.Gap {
			out[row.TeamKey] = row.Rank
		}
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

type weekTeam struct {
	week int
	team string
}

func teamName(teams map[string]season.Team, key string) string {
	if item, ok := teams[key]; ok && item.Name != "" {
		return item.Name
	}
	return key
}

func managerName(teams map[string]season.Team, key string) string {
	if item, ok := teams[key]; ok && item.Nickname != "" {
		return item.Nickname
	}
	return key
}
