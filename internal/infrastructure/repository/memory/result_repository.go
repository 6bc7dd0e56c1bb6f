package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/fantasy-rankings/internal/domain/postseason"
	"github.com/riskibarqy/fantasy-rankings/internal/domain/standings"
)

type StandingsRepository struct {
	mu     sync.RWMutex
	byGame map[int64][]standings.Row
}

func NewStandingsRepository() *StandingsRepository {
	return &StandingsRepository{byGame: make(map[int64][]standings.Row)}
}

func (r *StandingsRepository) ReplaceByGame(_ context.Context, gameID int64, rows []standings.Row) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byGame[gameID] = append([]standings.Row(nil), rows...)
	return nil
}

func (r *StandingsRepository) ListByGame(gameID int64) []standings.Row {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]standings.Row(nil), r.byGame[gameID]...)
}

type BoardRepository struct {
	mu     sync.RWMutex
	byGame map[int64][]postseason.BoardRow
}

func NewBoardRepository() *BoardRepository {
	return &BoardRepository{byGame: make(map[int64][]postseason.BoardRow)}
}

func (r *BoardRepository) ReplaceByGame(_ context.Context, gameID int64, rows []postseason.BoardRow) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byGame[gameID] = append([]postseason.BoardRow(nil), rows...)
	return nil
}

// ListByGame returns the stored board and whether the season was ever written.
func (r *BoardRepository) ListByGame(gameID int64) ([]postseason.BoardRow, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows, ok := r.byGame[gameID]
	return append([]postseason.BoardRow(nil), rows...), ok
}
