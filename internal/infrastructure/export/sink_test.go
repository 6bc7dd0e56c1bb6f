package export

import (
	"context"
	"os"
	"testing"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/fantasy-rankings/internal/domain/postseason"
	"github.com/riskibarqy/fantasy-rankings/internal/domain/season"
	"github.com/riskibarqy/fantasy-rankings/internal/domain/standings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSink_WritesStandings(t *testing.T) {
	t.Parallel()

	sink, err := NewSink(t.TempDir(), nil)
	require.NoError(t, err)

	rows := []standings.Row{
		{GameID: 406, Week: 1, TeamKey: "a", Team: "Alpha", Rank: 1, Points: 120.5, Result: season.ResultWin},
		{GameID: 406, Week: 1, TeamKey: "b", Team: "Bravo", Gap: true, Issue: crerr.Wrap(season.ErrDataGap, "missing points")},
	}
	require.NoError(t, sink.Standings().ReplaceByGame(context.Background(), 406, rows))

	raw, err := os.ReadFile(sink.Path(406, StandingsFile))
	require.NoError(t, err)

	var got []map[string]any
	require.NoError(t, sonic.Unmarshal(raw, &got))
	require.Len(t, got, 2)
	assert.Equal(t, float64(1), got[0]["rank"])
	assert.Equal(t, 120.5, got[0]["points"])
	assert.Equal(t, "W", got[0]["result"])
	assert.Nil(t, got[1]["rank"], "gap rows leave derived columns null")
	assert.Equal(t, true, got[1]["gap"])
	assert.Contains(t, got[1]["issue"], "missing points")
}

func TestSink_ReplacesBoard(t *testing.T) {
	t.Parallel()

	sink, err := NewSink(t.TempDir(), nil)
	require.NoError(t, err)
	ctx := context.Background()

	first := []postseason.BoardRow{{GameID: 406, Week: 15, TeamKey: "a", Bracket: "Playoff Final", Finish: 1}}
	second := []postseason.BoardRow{{GameID: 406, Week: 16, TeamKey: "b", Bracket: "Toilet Final", Finish: 6}}
	require.NoError(t, sink.Board().ReplaceByGame(ctx, 406, first))
	require.NoError(t, sink.Board().ReplaceByGame(ctx, 406, second))

	raw, err := os.ReadFile(sink.Path(406, BoardFile))
	require.NoError(t, err)

	var got []boardRecord
	require.NoError(t, sonic.Unmarshal(raw, &got))
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].TeamKey)
	assert.Equal(t, "Toilet Final", got[0].Bracket)
	require.NotNil(t, got[0].Points)
}

func TestSink_Errors(t *testing.T) {
	t.Parallel()

	if _, err := NewSink("", nil); err == nil {
		t.Fatalf("expected error for empty dir")
	}

	sink, err := NewSink(t.TempDir(), nil)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := sink.Board().ReplaceByGame(ctx, 406, nil); err == nil {
		t.Fatalf("expected error for cancelled context")
	}
}
