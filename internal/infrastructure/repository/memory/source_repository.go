package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/fantasy-rankings/internal/domain/season"
)

// SourceRepository serves league seasons held in memory.
type SourceRepository struct {
	mu       sync.RWMutex
	settings map[int64]season.Settings
	matchups map[int64][]season.Matchup
	teams    map[int64][]season.Team
}

func NewSourceRepository() *SourceRepository {
	return &SourceRepository{
		settings: make(map[int64]season.Settings),
		matchups: make(map[int64][]season.Matchup),
		teams:    make(map[int64][]season.Team),
	}
}

// PutSeason replaces everything stored for settings.GameID.
func (r *SourceRepository) PutSeason(settings season.Settings, teams []season.Team, matchups []season.Matchup) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.settings[settings.GameID] = settings
	r.teams[settings.GameID] = append([]season.Team(nil), teams...)
	r.matchups[settings.GameID] = append([]season.Matchup(nil), matchups...)
}

func (r *SourceRepository) GetSettings(_ context.Context, gameID int64) (season.Settings, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.settings[gameID]
	return item, ok, nil
}

func (r *SourceRepository) ListMatchups(_ context.Context, gameID int64) ([]season.Matchup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]season.Matchup, 0, len(r.matchups[gameID]))
	for _, item := range r.matchups[gameID] {
		if item.Week >= 1 {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *SourceRepository) ListTeams(_ context.Context, gameID int64) ([]season.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]season.Team(nil), r.teams[gameID]...), nil
}

func (r *SourceRepository) ListGameIDs(_ context.Context) ([]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]int64, 0, len(r.settings))
	for gameID := range r.settings {
		if len(r.matchups[gameID]) == 0 {
			continue
		}
		out = append(out, gameID)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}
