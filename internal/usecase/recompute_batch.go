package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/fantasy-rankings/internal/observability"
	"go.opentelemetry.io/otel/attribute"
)

const maxRecomputeWorkers = 8

// BatchResult summarises a RecomputeMany call.
type BatchResult struct {
	RunID        string            `json:"run_id"`
	SeasonCount  int               `json:"season_count"`
	WorkerCount  int               `json:"worker_count"`
	SuccessCount int               `json:"success_count"`
	FailedCount  int               `json:"failed_count"`
	DurationMs   int64             `json:"duration_ms"`
	Seasons      []RecomputeResult `json:"seasons"`
}

// RecomputeMany recomputes several seasons on a bounded worker pool, one season
// per worker. A failed season is reported in its result and does not stop the
// others.
func (s *RankingsService) RecomputeMany(ctx context.Context, gameIDs []int64, maxWorkers int) (BatchResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingsService.RecomputeMany", attribute.Int("season_count", len(gameIDs)))
	defer span.End()

	ids, err := normalizeGameIDs(gameIDs)
	if err != nil {
		return BatchResult{}, err
	}

	start := time.Now()
	workerCount := normalizeRecomputeWorkerCount(maxWorkers, len(ids))
	result := BatchResult{
		RunID:       uuid.NewString(),
		SeasonCount: len(ids),
		WorkerCount: workerCount,
		Seasons:     make([]RecomputeResult, 0, len(ids)),
	}
	if len(ids) == 0 {
		return result, nil
	}

	results := make(chan RecomputeResult, len(ids))
	var successCount atomic.Int32
	var failedCount atomic.Int32

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return BatchResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for _, gameID := range ids {
		gameID := gameID
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			var row RecomputeResult
			var err error
			observability.ProfileSeason(ctx, gameID, func(ctx context.Context) {
				row, err = s.recomputeSeason(ctx, gameID, result.RunID)
			})
			if err != nil {
				row.Status = recomputeStatusFailed
				row.Message = err.Error()
				failedCount.Add(1)
				s.logger.WarnContext(ctx, "season recompute failed", "game_id", gameID, "run_id", result.RunID, "error", err)
			} else {
				successCount.Add(1)
			}
			results <- row
		}); err != nil {
			workers.Done()
			return BatchResult{}, fmt.Errorf("submit season to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	for row := range results {
		result.Seasons = append(result.Seasons, row)
	}
	sort.SliceStable(result.Seasons, func(i, j int) bool {
		return result.Seasons[i].GameID < result.Seasons[j].GameID
	})

	result.SuccessCount = int(successCount.Load())
	result.FailedCount = int(failedCount.Load())
	result.DurationMs = time.Since(start).Milliseconds()
	s.logger.InfoContext(ctx, "recompute batch done",
		"run_id", result.RunID,
		"seasons", result.SeasonCount,
		"workers", result.WorkerCount,
		"success", result.SuccessCount,
		"failed", result.FailedCount,
		"duration_ms", result.DurationMs,
	)
	return result, nil
}

func normalizeGameIDs(input []int64) ([]int64, error) {
	seen := make(map[int64]struct{}, len(input))
	out := make([]int64, 0, len(input))
	for _, id := range input {
		if id <= 0 {
			return nil, fmt.Errorf("%w: game id must be > 0, got %d", ErrInvalidInput, id)
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

func normalizeRecomputeWorkerCount(value int, seasonCount int) int {
	if seasonCount <= 0 {
		return 1
	}
	if value <= 0 {
		value = 1
	}
	if value > maxRecomputeWorkers {
		value = maxRecomputeWorkers
	}
	if value > seasonCount {
		value = seasonCount
	}
	return value
}
