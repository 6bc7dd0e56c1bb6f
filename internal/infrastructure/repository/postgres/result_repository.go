package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/fantasy-rankings/internal/domain/postseason"
	"github.com/riskibarqy/fantasy-rankings/internal/domain/standings"
	qb "github.com/riskibarqy/fantasy-rankings/internal/platform/querybuilder"
)

const (
	standingsTable = "reg_season_results"
	boardTable     = "playoff_board"
)

// StandingsRepository stores regular-season standings, one full season per write.
type StandingsRepository struct {
	db *sqlx.DB
}

func NewStandingsRepository(db *sqlx.DB) *StandingsRepository {
	return &StandingsRepository{db: db}
}

func (r *StandingsRepository) ReplaceByGame(ctx context.Context, gameID int64, rows []standings.Row) error {
	models := make([]any, 0, len(rows))
	for _, row := range rows {
		models = append(models, newStandingInsertModel(row))
	}
	return replaceByGame(ctx, r.db, standingsTable, gameID, standingInsertModel{}, models)
}

// BoardRepository stores the postseason board, one full season per write.
type BoardRepository struct {
	db *sqlx.DB
}

func NewBoardRepository(db *sqlx.DB) *BoardRepository {
	return &BoardRepository{db: db}
}

func (r *BoardRepository) ReplaceByGame(ctx context.Context, gameID int64, rows []postseason.BoardRow) error {
	models := make([]any, 0, len(rows))
	for _, row := range rows {
		models = append(models, newBoardInsertModel(row))
	}
	return replaceByGame(ctx, r.db, boardTable, gameID, boardInsertModel{}, models)
}

// replaceByGame deletes the season's rows and bulk loads the new ones with
// COPY inside one transaction, so readers never see a half-written season.
func replaceByGame(ctx context.Context, db *sqlx.DB, table string, gameID int64, schema any, models []any) error {
	columns, err := qb.Columns(schema)
	if err != nil {
		return fmt.Errorf("resolve %s columns: %w", table, err)
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx replace %s: %w", table, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	clearQuery, clearArgs, err := qb.DeleteFrom(table).Where(qb.Eq("game_id", gameID)).ToSQL()
	if err != nil {
		return fmt.Errorf("build clear %s query: %w", table, err)
	}
	if _, err := tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
		return fmt.Errorf("clear %s game_id=%d: %w", table, gameID, err)
	}

	if len(models) > 0 {
		stmt, err := tx.PrepareContext(ctx, pq.CopyIn(table, columns...))
		if err != nil {
			return fmt.Errorf("prepare copy into %s: %w", table, err)
		}
		for i, model := range models {
			values, err := qb.Values(model)
			if err != nil {
				_ = stmt.Close()
				return fmt.Errorf("resolve %s row %d values: %w", table, i, err)
			}
			if _, err := stmt.ExecContext(ctx, values...); err != nil {
				_ = stmt.Close()
				return fmt.Errorf("copy %s row %d: %w", table, i, err)
			}
		}
		if _, err := stmt.ExecContext(ctx); err != nil {
			_ = stmt.Close()
			return fmt.Errorf("flush copy into %s: %w", table, err)
		}
		if err := stmt.Close(); err != nil {
			return fmt.Errorf("close copy into %s: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace %s tx: %w", table, err)
	}
	return nil
}
