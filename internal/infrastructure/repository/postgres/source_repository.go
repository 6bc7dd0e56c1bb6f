package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantasy-rankings/internal/domain/season"
	"github.com/riskibarqy/fantasy-rankings/internal/platform/resilience"
	qb "github.com/riskibarqy/fantasy-rankings/internal/platform/querybuilder"
)

// SourceRepository reads the landed provider tables. Reads go through the
// breaker so a batch stops hammering an unreachable database.
type SourceRepository struct {
	db      *sqlx.DB
	breaker *resilience.Breaker
}

func NewSourceRepository(db *sqlx.DB, breaker *resilience.Breaker) *SourceRepository {
	return &SourceRepository{db: db, breaker: breaker}
}

type settingsLookup struct {
	row   leagueSettingsTableModel
	found bool
}

func (r *SourceRepository) GetSettings(ctx context.Context, gameID int64) (season.Settings, bool, error) {
	query, args, err := qb.Select(
		"game_id", "league_id", "season", "max_teams", "num_playoff_teams",
		"num_playoff_consolation_teams", "playoff_start_week", "end_week",
	).
		From("league_settings").
		Where(qb.Eq("game_id", gameID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return season.Settings{}, false, fmt.Errorf("build get league settings query: %w", err)
	}

	lookup, err := resilience.Do(ctx, r.breaker, func(ctx context.Context) (settingsLookup, error) {
		var out settingsLookup
		if err := r.db.GetContext(ctx, &out.row, query, args...); err != nil {
			if isNotFound(err) {
				return out, nil
			}
			return out, err
		}
		out.found = true
		return out, nil
	})
	if err != nil {
		return season.Settings{}, false, fmt.Errorf("get league settings game_id=%d: %w", gameID, err)
	}
	if !lookup.found {
		return season.Settings{}, false, nil
	}
	row := lookup.row

	return season.Settings{
		GameID:              row.GameID,
		LeagueID:            row.LeagueID,
		Season:              row.Season,
		MaxTeams:            row.MaxTeams,
		NumPlayoffTeams:     row.NumPlayoffTeams,
		NumConsolationTeams: row.NumConsolationTeams,
		PlayoffStartWeek:    row.PlayoffStartWeek,
		EndWeek:             row.EndWeek,
	}, true, nil
}

func (r *SourceRepository) ListMatchups(ctx context.Context, gameID int64) ([]season.Matchup, error) {
	query, args, err := listMatchupsQuery(gameID)
	if err != nil {
		return nil, fmt.Errorf("build list matchups query: %w", err)
	}

	rows, err := selectAll[matchupTableModel](ctx, r, query, args)
	if err != nil {
		return nil, fmt.Errorf("list matchups game_id=%d: %w", gameID, err)
	}

	out := make([]season.Matchup, 0, len(rows))
	for _, row := range rows {
		out = append(out, season.Matchup{
			GameID:         row.GameID,
			Week:           row.Week,
			WeekStart:      nullTimeValue(row.WeekStart),
			WeekEnd:        nullTimeValue(row.WeekEnd),
			TeamAKey:       row.TeamAKey,
			TeamAPoints:    nullFloatPtr(row.TeamAPoints),
			TeamAProjected: nullFloatPtr(row.TeamAProjected),
			TeamBKey:       row.TeamBKey,
			TeamBPoints:    nullFloatPtr(row.TeamBPoints),
			TeamBProjected: nullFloatPtr(row.TeamBProjected),
			WinnerKey:      row.WinnerKey.String,
			IsPlayoffs:     row.IsPlayoffs,
			IsConsolation:  row.IsConsolation,
		})
	}
	return out, nil
}

func (r *SourceRepository) ListTeams(ctx context.Context, gameID int64) ([]season.Team, error) {
	query, args, err := qb.Select("game_id", "team_key", "name", "nickname", "playoff_seed").
		From("teams").
		Where(qb.Eq("game_id", gameID)).
		OrderBy("team_key").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list teams query: %w", err)
	}

	rows, err := selectAll[teamTableModel](ctx, r, query, args)
	if err != nil {
		return nil, fmt.Errorf("list teams game_id=%d: %w", gameID, err)
	}

	out := make([]season.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, season.Team{
			GameID:      row.GameID,
			Key:         row.TeamKey,
			Name:        row.Name.String,
			Nickname:    row.Nickname.String,
			PlayoffSeed: int(row.PlayoffSeed.Int64),
		})
	}
	return out, nil
}

func (r *SourceRepository) ListGameIDs(ctx context.Context) ([]int64, error) {
	query, args, err := listGameIDsQuery()
	if err != nil {
		return nil, fmt.Errorf("build list game ids query: %w", err)
	}

	out, err := selectAll[int64](ctx, r, query, args)
	if err != nil {
		return nil, fmt.Errorf("list game ids: %w", err)
	}
	return out, nil
}

// listMatchupsQuery skips rows the provider lands without a week.
func listMatchupsQuery(gameID int64) (string, []any, error) {
	return qb.Select(
		"game_id", "week", "week_start", "week_end",
		"team_a_key", "team_a_points", "team_a_projected",
		"team_b_key", "team_b_points", "team_b_projected",
		"winner_team_key", "is_playoffs", "is_consolation",
	).
		From("raw_matchups").
		Where(qb.Eq("game_id", gameID), qb.Gte("week", 1)).
		OrderBy("week", "week_start", "team_a_key").
		ToSQL()
}

// listGameIDsQuery lists seasons that have settings and at least one landed matchup.
func listGameIDsQuery() (string, []any, error) {
	return qb.Select("game_id").
		From("league_settings").
		Where(qb.Expr("EXISTS (SELECT 1 FROM raw_matchups m WHERE m.game_id = league_settings.game_id AND m.week >= ?)", 1)).
		OrderBy("game_id").
		ToSQL()
}

func selectAll[T any](ctx context.Context, r *SourceRepository, query string, args []any) ([]T, error) {
	return resilience.Do(ctx, r.breaker, func(ctx context.Context) ([]T, error) {
		var rows []T
		err := r.db.SelectContext(ctx, &rows, query, args...)
		return rows, err
	})
}
