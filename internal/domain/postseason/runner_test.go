package postseason

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/fantasy-rankings/internal/domain/bracket"
	"github.com/riskibarqy/fantasy-rankings/internal/domain/season"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pts(v float64) *float64 {
	return &v
}

func game(week int, a string, ap float64, b string, bp float64) season.Matchup {
	return season.Matchup{
		GameID:         406,
		Week:           week,
		TeamAKey:       a,
		TeamAPoints:    pts(ap),
		TeamAProjected: pts(ap + 1),
		TeamBKey:       b,
		TeamBPoints:    pts(bp),
		TeamBProjected: pts(bp + 1),
	}
}

func sixTeamSettings() season.Settings {
	return season.Settings{
		GameID:              406,
		MaxTeams:            6,
		NumPlayoffTeams:     4,
		NumConsolationTeams: 2,
		PlayoffStartWeek:    14,
		EndWeek:             15,
	}
}

func sixTeamMatchups() []season.Matchup {
	return []season.Matchup{
		game(13, "a", 1, "b", 2),
		game(13, "c", 1, "d", 2),
		game(13, "e", 1, "f", 2),
		game(14, "a", 100, "d", 90),
		game(14, "b", 80, "c", 85),
		game(14, "e", 70, "f", 60),
		game(15, "a", 110, "c", 120),
		game(15, "b", 90, "d", 95),
		game(15, "e", 50, "f", 75),
	}
}

func newSixTeamBoard(s season.Settings, matchups []season.Matchup) (*Board, Pools) {
	order := seededTeams(6)
	teams := make([]season.Team, 0, len(order))
	seeds := make(map[string]int, len(order))
	for i, key := range order {
		teams = append(teams, season.Team{Key: key, Name: "Team " + key, Nickname: "mgr " + key})
		seeds[key] = i + 1
	}
	board := NewBoard(s, teams, seeds, ScoresFromMatchups(matchups))
	return board, SplitPools(order, s, season.SplitModern)
}

func TestRunner_SixTeamSeason(t *testing.T) {
	t.Parallel()

	s := sixTeamSettings()
	board, pools := newSixTeamBoard(s, sixTeamMatchups())
	require.Equal(t, 15, board.CurrentWeek())
	require.Equal(t, []int{14, 15}, board.Weeks())

	runs, err := NewRunner(board, s, nil).Run(context.Background(), pools)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, PoolPlayoff, runs[0].Pool)
	assert.Equal(t, 14, runs[0].StartWeek)
	assert.Equal(t, PoolToilet, runs[1].Pool)
	assert.Equal(t, 15, runs[1].StartWeek)

	champion, ok := runs[0].Bracket.Champion()
	require.True(t, ok)
	assert.Equal(t, "c", champion)

	finishes, err := ApplyFinish(board, s, runs)
	require.NoError(t, err)
	board.Finalize()

	want := map[string]int{"c": 1, "a": 2, "b": 3, "d": 4, "f": 5, "e": 6}
	got := make(map[string]int, len(finishes))
	for _, item := range finishes {
		got[item.Team] = item.Place
	}
	assert.Equal(t, want, got)

	a14, _ := board.Row("a", 14)
	assert.Equal(t, "Playoff Round 1", a14.Bracket)
	assert.Equal(t, "d", a14.OppTeamKey)
	assert.Equal(t, "Team d", a14.OppTeam)
	assert.Equal(t, season.ResultWin, a14.Result)
	assert.Equal(t, 1, a14.Finish, "earlier weeks keep the seed")

	e14, _ := board.Row("e", 14)
	assert.Equal(t, "Toilet", e14.Bracket, "toilet previews before it starts")
	assert.Equal(t, "f", e14.OppTeamKey)
	assert.Equal(t, season.ResultBye, e14.Result)

	a15, _ := board.Row("a", 15)
	assert.Equal(t, "Playoff Final", a15.Bracket)
	assert.Equal(t, 2, a15.Finish)
	assert.Equal(t, season.ResultLoss, a15.Result)
	assert.Equal(t, 210.0, a15.TotalPoints)
	assert.Equal(t, 210.0, a15.OppTotalPoints)

	b15, _ := board.Row("b", 15)
	assert.Equal(t, 3, b15.Finish)
	assert.Equal(t, byeName, b15.OppTeamKey, "eliminated teams have no opponent")
	assert.Equal(t, season.ResultBye, b15.Result)

	f15, _ := board.Row("f", 15)
	assert.Equal(t, "Toilet Final", f15.Bracket)
	assert.Equal(t, 5, f15.Finish)

	rows := board.Rows()
	require.Len(t, rows, 12)
	last := rows[6:]
	for i, key := range []string{"c", "a", "b", "d", "f", "e"} {
		assert.Equal(t, key, last[i].TeamKey)
	}
}

func TestBoard_FinalizeIsIdempotent(t *testing.T) {
	t.Parallel()

	s := sixTeamSettings()
	board, _ := newSixTeamBoard(s, sixTeamMatchups())
	board.Finalize()
	first := board.Rows()
	board.Finalize()
	assert.Equal(t, first, board.Rows())

	c14, _ := board.Row("c", 14)
	assert.Equal(t, LabelRegularSeason, c14.Bracket)
	assert.Equal(t, 3, c14.Finish)
	assert.Equal(t, 85.0, c14.TotalPoints)
}

func TestRunner_GapLeavesMatchOpen(t *testing.T) {
	t.Parallel()

	s := sixTeamSettings()
	matchups := sixTeamMatchups()
	matchups[6].TeamBPoints = nil
	board, pools := newSixTeamBoard(s, matchups)

	runs, err := NewRunner(board, s, nil).Run(context.Background(), pools)
	require.NoError(t, err)
	assert.False(t, runs[0].Bracket.Complete())

	a15, _ := board.Row("a", 15)
	require.Error(t, a15.Issue)
	assert.True(t, errors.Is(a15.Issue, season.ErrDataGap))
	c15, _ := board.Row("c", 15)
	assert.True(t, c15.Gap)

	_, err = ApplyFinish(board, s, runs)
	require.ErrorIs(t, err, bracket.ErrIncomplete)
	f15, _ := board.Row("f", 15)
	assert.Zero(t, f15.Finish, "nothing is written when one pool is incomplete")
}

func TestBoard_ScheduledWeeksDoNotAdvanceSeason(t *testing.T) {
	t.Parallel()

	s := sixTeamSettings()
	matchups := sixTeamMatchups()
	for i := range matchups {
		if matchups[i].Week == 15 {
			matchups[i].TeamAPoints, matchups[i].TeamBPoints = nil, nil
		}
	}
	board, pools := newSixTeamBoard(s, matchups)
	assert.Equal(t, 14, board.CurrentWeek())
	assert.Equal(t, []int{14, 15}, board.Weeks())

	runs, err := NewRunner(board, s, nil).Run(context.Background(), pools)
	require.NoError(t, err)

	finishes, err := ApplyFinish(board, s, runs)
	require.NoError(t, err)
	assert.Nil(t, finishes)

	c15, ok := board.Row("c", 15)
	require.True(t, ok)
	assert.True(t, c15.Gap)
	assert.ErrorIs(t, c15.Issue, season.ErrDataGap)
	assert.Zero(t, c15.Finish)
}

func TestApplyFinish_BeforeEndWeek(t *testing.T) {
	t.Parallel()

	s := sixTeamSettings()
	s.EndWeek = 16
	board, pools := newSixTeamBoard(s, sixTeamMatchups())

	runs, err := NewRunner(board, s, nil).Run(context.Background(), pools)
	require.NoError(t, err)

	finishes, err := ApplyFinish(board, s, runs)
	require.NoError(t, err)
	assert.Nil(t, finishes)

	c15, _ := board.Row("c", 15)
	assert.Equal(t, "Playoff Round 2", c15.Bracket)
	assert.Zero(t, c15.Finish)
}

func TestPlacements_SingletonPool(t *testing.T) {
	t.Parallel()

	b, err := bracket.Build([]string{"a", "b"})
	require.NoError(t, err)
	p := b.ActiveMatches()[0]
	require.NoError(t, b.SetWinner(p.ID, "b"))

	finishes, err := Placements([]PoolRun{
		{Pool: PoolPlayoff, Teams: []string{"a", "b"}, Bracket: b},
		{Pool: PoolConsolation},
		{Pool: PoolToilet, Teams: []string{"c"}},
	})
	require.NoError(t, err)
	assert.Equal(t, []Finish{
		{Pool: PoolPlayoff, Team: "b", Place: 1},
		{Pool: PoolPlayoff, Team: "a", Place: 2},
		{Pool: PoolToilet, Team: "c", Place: 3},
	}, finishes)
}
