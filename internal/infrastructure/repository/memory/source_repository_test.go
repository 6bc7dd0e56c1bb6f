package memory

import (
	"context"
	"testing"

	"github.com/riskibarqy/fantasy-rankings/internal/domain/season"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceRepository_ListGameIDsSkipsSeasonsWithoutMatchups(t *testing.T) {
	t.Parallel()

	repo := NewSourceRepository()
	repo.PutSeason(season.Settings{GameID: 406}, nil, []season.Matchup{{GameID: 406, Week: 1, TeamAKey: "a", TeamBKey: "b"}})
	repo.PutSeason(season.Settings{GameID: 390}, nil, []season.Matchup{{GameID: 390, Week: 2, TeamAKey: "a", TeamBKey: "b"}})
	repo.PutSeason(season.Settings{GameID: 414}, nil, nil)

	ids, err := repo.ListGameIDs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int64{390, 406}, ids)
}

func TestSourceRepository_ListMatchupsDropsUnweekedRows(t *testing.T) {
	t.Parallel()

	repo := NewSourceRepository()
	repo.PutSeason(season.Settings{GameID: 406}, nil, []season.Matchup{
		{GameID: 406, Week: 0, TeamAKey: "a", TeamBKey: "b"},
		{GameID: 406, Week: 1, TeamAKey: "a", TeamBKey: "b"},
	})

	got, err := repo.ListMatchups(context.Background(), 406)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].Week)
}
