package standings

import (
	"errors"
	"testing"

	"github.com/riskibarqy/fantasy-rankings/internal/domain/season"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pts(v float64) *float64 {
	return &v
}

func matchup(week int, a string, ap float64, b string, bp float64) season.Matchup {
	return season.Matchup{
		GameID:         406,
		Week:           week,
		TeamAKey:       a,
		TeamAPoints:    pts(ap),
		TeamAProjected: pts(ap - 5),
		TeamBKey:       b,
		TeamBPoints:    pts(bp),
		TeamBProjected: pts(bp - 5),
	}
}

func fourTeamInput() Input {
	return Input{
		Settings: season.Settings{GameID: 406, MaxTeams: 4, NumPlayoffTeams: 2, PlayoffStartWeek: 3, EndWeek: 4},
		Teams: []season.Team{
			{Key: "a", Name: "Alpha", Nickname: "Ann"},
			{Key: "b", Name: "Bravo", Nickname: "Ben"},
			{Key: "c", Name: "Charlie", Nickname: "Cat"},
			{Key: "d", Name: "Delta", Nickname: "Dan"},
		},
		Matchups: []season.Matchup{
			matchup(1, "a", 120, "b", 110),
			matchup(1, "c", 100, "d", 90),
			matchup(2, "a", 80, "c", 130),
			matchup(2, "b", 105, "d", 95),
			// playoff weeks are not part of the regular season
			matchup(3, "a", 1, "b", 2),
		},
	}
}

func rowsByWeekTeam(rows []Row) map[int]map[string]Row {
	out := make(map[int]map[string]Row)
	for _, row := range rows {
		if out[row.Week] == nil {
			out[row.Week] = make(map[string]Row)
		}
		out[row.Week][row.TeamKey] = row
	}
	return out
}

func TestCompute_LegacyRanking(t *testing.T) {
	t.Parallel()

	rows := NewEngine(season.EraLegacy, nil).Compute(fourTeamInput())
	require.Len(t, rows, 8)

	got := rowsByWeekTeam(rows)
	require.NotContains(t, got, 3)

	w1 := got[1]
	assert.Equal(t, 1, w1["a"].PointsRank)
	assert.Equal(t, 2, w1["b"].PointsRank)
	assert.Equal(t, 3, w1["c"].PointsRank)
	assert.Equal(t, season.ResultWin, w1["a"].Result)
	assert.Equal(t, season.ResultLoss, w1["b"].Result)
	assert.Equal(t, 1, w1["a"].TopHalf)
	assert.Equal(t, 1, w1["b"].TopHalf)
	assert.Equal(t, 0, w1["c"].TopHalf)
	assert.Equal(t, [2]int{1, 3}, w1["c"].Tuple)
	assert.Equal(t, 2, w1["c"].Rank, "wins outrank points")
	assert.Equal(t, 3, w1["b"].Rank)
	assert.Equal(t, 0, w1["a"].PrevRank)

	w2 := got[2]
	assert.Equal(t, 1, w2["c"].Rank)
	assert.Equal(t, 2, w2["b"].Rank)
	assert.Equal(t, 3, w2["a"].Rank)
	assert.Equal(t, 4, w2["d"].Rank)
	assert.Equal(t, 1, w2["a"].PrevRank)
	assert.Equal(t, 2, w2["c"].PrevRank)
	assert.Equal(t, 200.0, w2["a"].TotalPoints)
	assert.Equal(t, 100.0, w2["a"].AvgPoints)
	assert.Equal(t, 240.0, w2["a"].TotalOppPoints)
	assert.Equal(t, 1, w2["a"].Wins)
	assert.Equal(t, 1, w2["a"].Losses)
	assert.Equal(t, "Charlie", w2["a"].OppTeam)
	assert.Equal(t, "Cat", w2["a"].OppManager)

	// rows come out ordered by week then rank
	assert.Equal(t, []string{"a", "c", "b", "d"}, []string{rows[0].TeamKey, rows[1].TeamKey, rows[2].TeamKey, rows[3].TeamKey})

	assert.Equal(t, map[string]int{"c": 1, "b": 2, "a": 3, "d": 4}, FinalSeeds(rows))
}

func TestCompute_TwoPointRanking(t *testing.T) {
	t.Parallel()

	rows := NewEngine(season.EraModern, nil).Compute(fourTeamInput())
	w1 := rowsByWeekTeam(rows)[1]

	assert.Equal(t, 2, w1["a"].TwoPointTotal)
	assert.Equal(t, 1, w1["b"].TwoPointTotal)
	assert.Equal(t, 1, w1["c"].TwoPointTotal)
	assert.Equal(t, 2, w1["b"].TwoPointRank)
	assert.Equal(t, 2, w1["c"].TwoPointRank)
	assert.Equal(t, 2, w1["b"].Rank, "bonus point lifts b over c")
	assert.Equal(t, 3, w1["c"].Rank)
}

func TestCompute_GapRows(t *testing.T) {
	t.Parallel()

	in := fourTeamInput()
	in.Matchups[2].TeamBPoints = nil
	in.Teams = append(in.Teams, season.Team{Key: "e", Name: "Echo"})

	rows := NewEngine(season.EraLegacy, nil).Compute(in)
	got := rowsByWeekTeam(rows)

	for _, key := range []string{"a", "c", "e"} {
		row := got[2][key]
		if !row.Gap {
			t.Fatalf("expected gap row for %s in week 2", key)
		}
		if !errors.Is(row.Issue, season.ErrDataGap) {
			t.Fatalf("expected data gap issue for %s, got %v", key, row.Issue)
		}
		if row.Rank != 0 {
			t.Fatalf("gap row %s must not be ranked, got %d", key, row.Rank)
		}
	}
	if !got[1]["e"].Gap {
		t.Fatalf("team without matchup must produce a gap row")
	}

	assert.Equal(t, 1, got[2]["b"].Rank)
	assert.Equal(t, 2, got[2]["d"].Rank)
	assert.True(t, rows[len(rows)-1].Gap, "gap rows sort after ranked rows")
}

func TestCompute_RunningTotalsAcrossWeeks(t *testing.T) {
	t.Parallel()

	in := fourTeamInput()
	in.Settings.PlayoffStartWeek = 4
	in.Matchups = append(in.Matchups[:4],
		matchup(3, "a", 91.25, "d", 88.5),
		matchup(3, "b", 70, "c", 102.75),
	)
	in.Matchups[2].TeamBPoints = nil

	rows := NewEngine(season.EraLegacy, nil).Compute(in)
	got := rowsByWeekTeam(rows)
	require.Len(t, got, 3)

	for _, key := range []string{"a", "b", "c", "d"} {
		var points, opp, projected float64
		scored := 0
		for week := 1; week <= 3; week++ {
			row, ok := got[week][key]
			require.True(t, ok, "team %s week %d", key, week)
			if row.Gap {
				assert.Zero(t, row.TotalPoints, "gap row %s week %d keeps no totals", key, week)
				continue
			}
			scored++
			points += row.Points
			opp += row.OppPoints
			projected += row.Projected
			assert.InDelta(t, points, row.TotalPoints, 1e-9, "team %s week %d", key, week)
			assert.InDelta(t, opp, row.TotalOppPoints, 1e-9, "team %s week %d", key, week)
			assert.InDelta(t, projected, row.TotalProjected, 1e-9, "team %s week %d", key, week)
			assert.InDelta(t, points/float64(scored), row.AvgPoints, 0.005, "team %s week %d", key, week)
			assert.Equal(t, scored, row.Wins+row.Losses, "team %s week %d", key, week)
		}
	}

	assert.True(t, got[2]["a"].Gap)
	assert.InDelta(t, 211.25, got[3]["a"].TotalPoints, 1e-9)
}

func TestCompute_EqualScoresDecidedByKey(t *testing.T) {
	t.Parallel()

	in := Input{
		Settings: season.Settings{GameID: 406, MaxTeams: 2, PlayoffStartWeek: 2},
		Matchups: []season.Matchup{matchup(1, "z", 100, "y", 100)},
	}
	got := rowsByWeekTeam(NewEngine(season.EraLegacy, nil).Compute(in))[1]

	assert.Equal(t, season.ResultWin, got["y"].Result)
	assert.Equal(t, season.ResultLoss, got["z"].Result)
}

func TestRankHelpers(t *testing.T) {
	t.Parallel()

	values := []float64{10, 30, 30, 20}
	if got := rankFirst(values, true); !equalInts(got, []int{4, 1, 2, 3}) {
		t.Fatalf("rankFirst: got %v", got)
	}
	if got := rankMin(values, true); !equalInts(got, []int{4, 1, 1, 3}) {
		t.Fatalf("rankMin: got %v", got)
	}
	if got := rankMax(values, false); !equalInts(got, []int{1, 4, 4, 2}) {
		t.Fatalf("rankMax: got %v", got)
	}
	if got := rankTuples([][2]int{{2, 1}, {1, 3}, {1, 3}, {1, 1}}); !equalInts(got, []int{4, 2, 2, 1}) {
		t.Fatalf("rankTuples: got %v", got)
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
