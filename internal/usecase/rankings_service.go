package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/riskibarqy/fantasy-rankings/internal/domain/postseason"
	"github.com/riskibarqy/fantasy-rankings/internal/domain/season"
	"github.com/riskibarqy/fantasy-rankings/internal/domain/standings"
	"github.com/riskibarqy/fantasy-rankings/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// RecomputeResult summarises one season recompute.
type RecomputeResult struct {
	GameID       int64               `json:"game_id"`
	RunID        string              `json:"run_id"`
	Era          season.RulesEra     `json:"rules_era"`
	CurrentWeek  int                 `json:"current_week"`
	StandingRows int                 `json:"standing_rows"`
	StandingGaps int                 `json:"standing_gaps"`
	BoardRows    int                 `json:"board_rows"`
	BoardIssues  int                 `json:"board_issues"`
	Finishes     []postseason.Finish `json:"finishes,omitempty"`
	Status       string              `json:"status"`
	Message      string              `json:"message,omitempty"`
}

const (
	recomputeStatusSuccess = "success"
	recomputeStatusFailed  = "failed"
)

// RankingsService recomputes regular-season standings and the postseason
// board of league seasons.
type RankingsService struct {
	source    season.SourceRepository
	standings standings.Repository
	board     postseason.Repository
	eras      season.EraCatalog
	logger    *logging.Logger
}

func NewRankingsService(
	source season.SourceRepository,
	standingsRepo standings.Repository,
	boardRepo postseason.Repository,
	eras season.EraCatalog,
	logger *logging.Logger,
) *RankingsService {
	if logger == nil {
		logger = logging.Default()
	}
	return &RankingsService{
		source:    source,
		standings: standingsRepo,
		board:     boardRepo,
		eras:      eras,
		logger:    logger,
	}
}

// RecomputeSeason rebuilds both tables of one season. Standings are written
// first; the board is only written when the whole postseason pass succeeds.
func (s *RankingsService) RecomputeSeason(ctx context.Context, gameID int64) (RecomputeResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingsService.RecomputeSeason", attribute.Int64("game_id", gameID))
	defer span.End()

	result, err := s.recomputeSeason(ctx, gameID, uuid.NewString())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return result, err
}

func (s *RankingsService) recomputeSeason(ctx context.Context, gameID int64, runID string) (RecomputeResult, error) {
	result := RecomputeResult{GameID: gameID, RunID: runID, Status: recomputeStatusFailed}
	if gameID <= 0 {
		return result, fmt.Errorf("%w: game id must be > 0", ErrInvalidInput)
	}
	if s.source == nil || s.standings == nil || s.board == nil {
		return result, fmt.Errorf("%w: rankings service is not fully configured", ErrDependencyUnavailable)
	}
	logger := s.logger.With("game_id", gameID, "run_id", runID)

	settings, exists, err := s.source.GetSettings(ctx, gameID)
	if err != nil {
		return result, fmt.Errorf("get league settings: %w", err)
	}
	if !exists {
		return result, fmt.Errorf("%w: game_id=%d", ErrNotFound, gameID)
	}
	if err := season.ValidateSettings(settings); err != nil {
		return result, err
	}

	matchups, err := s.source.ListMatchups(ctx, gameID)
	if err != nil {
		return result, fmt.Errorf("list matchups: %w", err)
	}
	teams, err := s.source.ListTeams(ctx, gameID)
	if err != nil {
		return result, fmt.Errorf("list teams: %w", err)
	}

	era := s.eras.EraFor(gameID)
	result.Era = era

	rows := standings.NewEngine(era, logger).Compute(standings.Input{
		Settings: settings,
		Matchups: matchups,
		Teams:    teams,
	})
	result.StandingRows = len(rows)
	for _, row := range rows {
		if row.Gap {
			result.StandingGaps++
		}
	}
	if err := s.standings.ReplaceByGame(ctx, gameID, rows); err != nil {
		return result, fmt.Errorf("replace standings: %w", err)
	}

	order := seedOrder(era, rows, teams)
	seeds := make(map[string]int, len(order))
	for i, team := range order {
		seeds[team] = i + 1
	}

	board := postseason.NewBoard(settings, teams, seeds, postseason.ScoresFromMatchups(seasonMatchups(gameID, matchups)))
	result.CurrentWeek = board.CurrentWeek()

	pools := postseason.SplitPools(order, settings, era.Split())
	logger.DebugContext(ctx, "postseason pools",
		"playoff", pools.Playoff,
		"consolation", pools.Consolation,
		"toilet", pools.Toilet,
	)

	runs, err := postseason.NewRunner(board, settings, logger).Run(ctx, pools)
	if err != nil {
		return result, fmt.Errorf("%w: run brackets: %w", ErrPostseason, err)
	}
	finishes, err := postseason.ApplyFinish(board, settings, runs)
	if err != nil {
		return result, fmt.Errorf("%w: apply finish: %w", ErrPostseason, err)
	}
	board.Finalize()

	boardRows := board.Rows()
	for _, row := range boardRows {
		if row.Issue != nil {
			result.BoardIssues++
		}
	}
	if err := s.board.ReplaceByGame(ctx, gameID, boardRows); err != nil {
		return result, fmt.Errorf("replace postseason board: %w", err)
	}

	result.BoardRows = len(boardRows)
	result.Finishes = finishes
	result.Status = recomputeStatusSuccess
	logger.InfoContext(ctx, "season recomputed",
		"rules_era", string(era),
		"current_week", result.CurrentWeek,
		"standing_rows", result.StandingRows,
		"standing_gaps", result.StandingGaps,
		"board_rows", result.BoardRows,
		"board_issues", result.BoardIssues,
		"finished", len(finishes) > 0,
	)
	return result, nil
}

// seedOrder lists every known team best seed first. Two-point eras reseed from
// the final regular-season rank; older eras trust the provider's playoff seed.
// Teams without a seed go last in key order.
func seedOrder(era season.RulesEra, rows []standings.Row, teams []season.Team) []string {
	seedOf := make(map[string]int, len(teams))
	for _, item := range teams {
		seedOf[item.Key] = item.PlayoffSeed
	}
	if era.TwoPointRanking() {
		for team, rank := range standings.FinalSeeds(rows) {
			seedOf[team] = rank
		}
	}
	for _, row := range rows {
		if _, ok := seedOf[row.TeamKey]; !ok {
			seedOf[row.TeamKey] = 0
		}
	}

	out := make([]string, 0, len(seedOf))
	for team := range seedOf {
		out = append(out, team)
	}
	sort.Slice(out, func(i, j int) bool {
		si, sj := seedOf[out[i]], seedOf[out[j]]
		switch {
		case si == sj:
			return out[i] < out[j]
		case si <= 0:
			return false
		case sj <= 0:
			return true
		default:
			return si < sj
		}
	})
	return out
}

func seasonMatchups(gameID int64, matchups []season.Matchup) []season.Matchup {
	out := make([]season.Matchup, 0, len(matchups))
	for _, item := range matchups {
		if item.InSeason(gameID) {
			out = append(out, item)
		}
	}
	return out
}

// IsPostseasonFailure reports whether err aborted the board write after the
// standings were already stored.
func IsPostseasonFailure(err error) bool {
	return errors.Is(err, ErrPostseason)
}
