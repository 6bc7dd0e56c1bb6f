package postgres

import (
	"time"

	"github.com/riskibarqy/fantasy-rankings/internal/domain/postseason"
	"github.com/riskibarqy/fantasy-rankings/internal/domain/standings"
)

// standingInsertModel is one reg_season_results row. Derived columns are NULL
// on gap rows.
type standingInsertModel struct {
	GameID                int64      `db:"game_id"`
	Week                  int        `db:"week"`
	WeekStart             *time.Time `db:"week_start"`
	TeamKey               string     `db:"team_key"`
	Team                  string     `db:"team"`
	Manager               string     `db:"manager"`
	Rank                  *int       `db:"rank"`
	PrevRank              *int       `db:"prev_rank"`
	TwoPointTotal         *int       `db:"two_pt_total"`
	TwoPointRank          *int       `db:"two_pt_rank"`
	BonusTotal            *int       `db:"top_half_total"`
	BonusRank             *int       `db:"top_half_rank"`
	Wins                  *int       `db:"wins"`
	Losses                *int       `db:"losses"`
	WinsRank              *int       `db:"wins_rank"`
	Result                *string    `db:"result"`
	TopHalf               *int       `db:"top_half"`
	Points                *float64   `db:"points"`
	PointsRank            *int       `db:"points_rank"`
	Projected             *float64   `db:"projected"`
	ProjectedRank         *int       `db:"projected_rank"`
	AvgPoints             *float64   `db:"avg_points"`
	AvgPointsRank         *int       `db:"avg_points_rank"`
	AvgOppPoints          *float64   `db:"avg_opp_points"`
	AvgOppPointsRank      *int       `db:"avg_opp_points_rank"`
	TotalPoints           *float64   `db:"total_points"`
	TotalPointsRank       *int       `db:"total_points_rank"`
	TotalOppPoints        *float64   `db:"total_opp_points"`
	TotalOppPointsRank    *int       `db:"total_opp_points_rank"`
	TotalProjected        *float64   `db:"total_projected"`
	TotalProjectedRank    *int       `db:"total_projected_rank"`
	TotalOppProjected     *float64   `db:"total_opp_projected"`
	TotalOppProjectedRank *int       `db:"total_opp_projected_rank"`
	OppTeamKey            *string    `db:"opp_team_key"`
	OppTeam               *string    `db:"opp_team"`
	OppManager            *string    `db:"opp_manager"`
	OppPoints             *float64   `db:"opp_points"`
	OppPointsRank         *int       `db:"opp_points_rank"`
	OppProjected          *float64   `db:"opp_projected"`
	OppProjectedRank      *int       `db:"opp_projected_rank"`
	IsGap                 bool       `db:"is_gap"`
	Issue                 *string    `db:"issue"`
}

func newStandingInsertModel(row standings.Row) standingInsertModel {
	ok := !row.Gap
	out := standingInsertModel{
		GameID:                row.GameID,
		Week:                  row.Week,
		TeamKey:               row.TeamKey,
		Team:                  row.Team,
		Manager:               row.Manager,
		Rank:                  nullableInt(row.Rank, ok),
		PrevRank:              nullableInt(row.PrevRank, ok),
		TwoPointTotal:         nullableInt(row.TwoPointTotal, ok),
		TwoPointRank:          nullableInt(row.TwoPointRank, ok),
		BonusTotal:            nullableInt(row.BonusTotal, ok),
		BonusRank:             nullableInt(row.BonusRank, ok),
		Wins:                  nullableInt(row.Wins, ok),
		Losses:                nullableInt(row.Losses, ok),
		WinsRank:              nullableInt(row.WinsRank, ok),
		Result:                nullableString(string(row.Result), ok),
		TopHalf:               nullableInt(row.TopHalf, ok),
		Points:                nullableFloat(row.Points, ok),
		PointsRank:            nullableInt(row.PointsRank, ok),
		Projected:             nullableFloat(row.Projected, ok),
		ProjectedRank:         nullableInt(row.ProjectedRank, ok),
		AvgPoints:             nullableFloat(row.AvgPoints, ok),
		AvgPointsRank:         nullableInt(row.AvgPointsRank, ok),
		AvgOppPoints:          nullableFloat(row.AvgOppPoints, ok),
		AvgOppPointsRank:      nullableInt(row.AvgOppPointsRank, ok),
		TotalPoints:           nullableFloat(row.TotalPoints, ok),
		TotalPointsRank:       nullableInt(row.TotalPointsRank, ok),
		TotalOppPoints:        nullableFloat(row.TotalOppPoints, ok),
		TotalOppPointsRank:    nullableInt(row.TotalOppPointsRank, ok),
		TotalProjected:        nullableFloat(row.TotalProjected, ok),
		TotalProjectedRank:    nullableInt(row.TotalProjectedRank, ok),
		TotalOppProjected:     nullableFloat(row.TotalOppProjected, ok),
		TotalOppProjectedRank: nullableInt(row.TotalOppProjectedRank, ok),
		OppTeamKey:            nullableString(row.OppTeamKey, ok),
		OppTeam:               nullableString(row.OppTeam, ok),
		OppManager:            nullableString(row.OppManager, ok),
		OppPoints:             nullableFloat(row.OppPoints, ok),
		OppPointsRank:         nullableInt(row.OppPointsRank, ok),
		OppProjected:          nullableFloat(row.OppProjected, ok),
		OppProjectedRank:      nullableInt(row.OppProjectedRank, ok),
		IsGap:                 row.Gap,
		Issue:                 issueText(row.Issue),
	}
	if !row.WeekStart.IsZero() {
		weekStart := row.WeekStart
		out.WeekStart = &weekStart
	}
	return out
}

// boardInsertModel is one playoff_board row.
type boardInsertModel struct {
	GameID            int64    `db:"game_id"`
	Week              int      `db:"week"`
	Bracket           string   `db:"bracket"`
	Finish            int      `db:"finish"`
	Seed              int      `db:"playoff_seed"`
	TeamKey           string   `db:"team_key"`
	Team              string   `db:"team"`
	Manager           string   `db:"manager"`
	Result            string   `db:"result"`
	Points            *float64 `db:"points"`
	Projected         *float64 `db:"projected"`
	TotalPoints       float64  `db:"total_points"`
	TotalProjected    float64  `db:"total_projected"`
	OppTeamKey        string   `db:"opp_team_key"`
	OppTeam           string   `db:"opp_team"`
	OppManager        string   `db:"opp_manager"`
	OppPoints         float64  `db:"opp_points"`
	OppProjected      float64  `db:"opp_projected"`
	OppTotalPoints    float64  `db:"opp_total_points"`
	OppTotalProjected float64  `db:"opp_total_projected"`
	IsGap             bool     `db:"is_gap"`
	Issue             *string  `db:"issue"`
}

func newBoardInsertModel(row postseason.BoardRow) boardInsertModel {
	return boardInsertModel{
		GameID:            row.GameID,
		Week:              row.Week,
		Bracket:           row.Bracket,
		Finish:            row.Finish,
		Seed:              row.Seed,
		TeamKey:           row.TeamKey,
		Team:              row.Team,
		Manager:           row.Manager,
		Result:            string(row.Result),
		Points:            nullableFloat(row.Points, !row.Gap),
		Projected:         nullableFloat(row.Projected, !row.Gap),
		TotalPoints:       row.TotalPoints,
		TotalProjected:    row.TotalProjected,
		OppTeamKey:        row.OppTeamKey,
		OppTeam:           row.OppTeam,
		OppManager:        row.OppManager,
		OppPoints:         row.OppPoints,
		OppProjected:      row.OppProjected,
		OppTotalPoints:    row.OppTotalPoints,
		OppTotalProjected: row.OppTotalProjected,
		IsGap:             row.Gap,
		Issue:             issueText(row.Issue),
	}
}
