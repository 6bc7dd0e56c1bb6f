package postgres

import (
	"database/sql"
	"time"
)

type leagueSettingsTableModel struct {
	GameID              int64  `db:"game_id"`
	LeagueID            string `db:"league_id"`
	Season              int    `db:"season"`
	MaxTeams            int    `db:"max_teams"`
	NumPlayoffTeams     int    `db:"num_playoff_teams"`
	NumConsolationTeams int    `db:"num_playoff_consolation_teams"`
	PlayoffStartWeek    int    `db:"playoff_start_week"`
	EndWeek             int    `db:"end_week"`
}

type matchupTableModel struct {
	GameID         int64           `db:"game_id"`
	Week           int             `db:"week"`
	WeekStart      sql.NullTime    `db:"week_start"`
	WeekEnd        sql.NullTime    `db:"week_end"`
	TeamAKey       string          `db:"team_a_key"`
	TeamAPoints    sql.NullFloat64 `db:"team_a_points"`
	TeamAProjected sql.NullFloat64 `db:"team_a_projected"`
	TeamBKey       string          `db:"team_b_key"`
	TeamBPoints    sql.NullFloat64 `db:"team_b_points"`
	TeamBProjected sql.NullFloat64 `db:"team_b_projected"`
	WinnerKey      sql.NullString  `db:"winner_team_key"`
	IsPlayoffs     bool            `db:"is_playoffs"`
	IsConsolation  bool            `db:"is_consolation"`
}

type teamTableModel struct {
	GameID      int64          `db:"game_id"`
	TeamKey     string         `db:"team_key"`
	Name        sql.NullString `db:"name"`
	Nickname    sql.NullString `db:"nickname"`
	PlayoffSeed sql.NullInt64  `db:"playoff_seed"`
}

func nullFloatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	out := v.Float64
	return &out
}

func nullTimeValue(v sql.NullTime) time.Time {
	if !v.Valid {
		return time.Time{}
	}
	return v.Time
}
