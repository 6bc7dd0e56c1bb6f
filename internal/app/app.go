package app

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantasy-rankings/internal/config"
	"github.com/riskibarqy/fantasy-rankings/internal/domain/postseason"
	"github.com/riskibarqy/fantasy-rankings/internal/domain/season"
	"github.com/riskibarqy/fantasy-rankings/internal/domain/standings"
	"github.com/riskibarqy/fantasy-rankings/internal/infrastructure/export"
	"github.com/riskibarqy/fantasy-rankings/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/fantasy-rankings/internal/platform/logging"
	"github.com/riskibarqy/fantasy-rankings/internal/platform/resilience"
	"github.com/riskibarqy/fantasy-rankings/internal/usecase"
)

// App is the wired rankings job.
type App struct {
	Service *usecase.RankingsService
	Source  season.SourceRepository
	db      *sqlx.DB
}

// New opens the database and wires the service with the configured result sink.
func New(ctx context.Context, cfg config.Config, catalogue config.Catalogue, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	db, err := OpenDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	breaker := resilience.NewBreaker(resilience.BreakerConfig{
		FailureThreshold: cfg.SourceBreakerThreshold,
		OpenTimeout:      cfg.SourceBreakerOpenTimeout,
	})
	source := postgres.NewSourceRepository(db, breaker)
	standingsRepo, boardRepo, err := resultSink(cfg, db, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	eras := season.NewEraCatalog(catalogue.EraOverrides(cfg.EraOverrides))
	svc := usecase.NewRankingsService(source, standingsRepo, boardRepo, eras, logger.Named("rankings"))

	logger.Info("rankings app wired",
		"result_sink", cfg.ResultSink,
		"catalogue_seasons", len(catalogue.Leagues),
		"era_overrides", len(cfg.EraOverrides),
	)
	return &App{Service: svc, Source: source, db: db}, nil
}

func resultSink(cfg config.Config, db *sqlx.DB, logger *logging.Logger) (standings.Repository, postseason.Repository, error) {
	switch cfg.ResultSink {
	case config.SinkJSON:
		sink, err := export.NewSink(cfg.ExportDir, logger.Named("export"))
		if err != nil {
			return nil, nil, fmt.Errorf("create json sink: %w", err)
		}
		return sink.Standings(), sink.Board(), nil
	case config.SinkPostgres, "":
		return postgres.NewStandingsRepository(db), postgres.NewBoardRepository(db), nil
	default:
		return nil, nil, fmt.Errorf("unknown result sink %q", cfg.ResultSink)
	}
}

// GameIDs picks the seasons to recompute: explicit ids first, then the
// catalogue, then every season with settings and matchups in the database.
func (a *App) GameIDs(ctx context.Context, explicit []int64, catalogue config.Catalogue) ([]int64, error) {
	if len(explicit) > 0 {
		return explicit, nil
	}
	if ids := catalogue.GameIDs(); len(ids) > 0 {
		return ids, nil
	}
	ids, err := a.Source.ListGameIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}
	return ids, nil
}

func (a *App) Close() error {
	if a == nil || a.db == nil {
		return nil
	}
	return a.db.Close()
}
