package export

import (
	"github.com/riskibarqy/fantasy-rankings/internal/domain/postseason"
	"github.com/riskibarqy/fantasy-rankings/internal/domain/standings"
)

type standingRecord struct {
	GameID                int64    `json:"game_id"`
	Week                  int      `json:"week"`
	WeekStart             string   `json:"week_start,omitempty"`
	TeamKey               string   `json:"team_key"`
	Team                  string   `json:"team"`
	Manager               string   `json:"manager"`
	Rank                  *int     `json:"rank"`
	PrevRank              *int     `json:"prev_rank"`
	TwoPointTotal         *int     `json:"two_pt_total"`
	TwoPointRank          *int     `json:"two_pt_rank"`
	BonusTotal            *int     `json:"top_half_total"`
	BonusRank             *int     `json:"top_half_rank"`
	Wins                  *int     `json:"wins"`
	Losses                *int     `json:"losses"`
	WinsRank              *int     `json:"wins_rank"`
	Result                string   `json:"result,omitempty"`
	TopHalf               *int     `json:"top_half"`
	Points                *float64 `json:"points"`
	PointsRank            *int     `json:"points_rank"`
	Projected             *float64 `json:"projected"`
	ProjectedRank         *int     `json:"projected_rank"`
	AvgPoints             *float64 `json:"avg_points"`
	AvgPointsRank         *int     `json:"avg_points_rank"`
	AvgOppPoints          *float64 `json:"avg_opp_points"`
	AvgOppPointsRank      *int     `json:"avg_opp_points_rank"`
	TotalPoints           *float64 `json:"total_points"`
	TotalPointsRank       *int     `json:"total_points_rank"`
	TotalOppPoints        *float64 `json:"total_opp_points"`
	TotalOppPointsRank    *int     `json:"total_opp_points_rank"`
	TotalProjected        *float64 `json:"total_projected"`
	TotalProjectedRank    *int     `json:"total_projected_rank"`
	TotalOppProjected     *float64 `json:"total_opp_projected"`
	TotalOppProjectedRank *int     `json:"total_opp_projected_rank"`
	OppTeamKey            string   `json:"opp_team_key,omitempty"`
	OppTeam               string   `json:"opp_team,omitempty"`
	OppManager            string   `json:"opp_manager,omitempty"`
	OppPoints             *float64 `json:"opp_points"`
	OppPointsRank         *int     `json:"opp_points_rank"`
	OppProjected          *float64 `json:"opp_projected"`
	OppProjectedRank      *int     `json:"opp_projected_rank"`
	Gap                   bool     `json:"gap,omitempty"`
	Issue                 string   `json:"issue,omitempty"`
}

func newStandingRecord(row standings.Row) standingRecord {
	out := standingRecord{
		GameID:  row.GameID,
		Week:    row.Week,
		TeamKey: row.TeamKey,
		Team:    row.Team,
		Manager: row.Manager,
		Gap:     row.Gap,
	}
	if !row.WeekStart.IsZero() {
		out.WeekStart = row.WeekStart.Format("2006-01-02")
	}
	if row.Issue != nil {
		out.Issue = row.Issue.Error()
	}
	if row.Gap {
		return out
	}

	out.Rank = &row.Rank
	out.PrevRank = &row.PrevRank
	out.TwoPointTotal = &row.TwoPointTotal
	out.TwoPointRank = &row.TwoPointRank
	out.BonusTotal = &row.BonusTotal
	out.BonusRank = &row.BonusRank
	out.Wins = &row.Wins
	out.Losses = &row.Losses
	out.WinsRank = &row.WinsRank
	out.Result = string(row.Result)
	out.TopHalf = &row.TopHalf
	out.Points = &row.Points
	out.PointsRank = &row.PointsRank
	out.Projected = &row.Projected
	out.ProjectedRank = &row.ProjectedRank
	out.AvgPoints = &row.AvgPoints
	out.AvgPointsRank = &row.AvgPointsRank
	out.AvgOppPoints = &row.AvgOppPoints
	out.AvgOppPointsRank = &row.AvgOppPointsRank
	out.TotalPoints = &row.TotalPoints
	out.TotalPointsRank = &row.TotalPointsRank
	out.TotalOppPoints = &row.TotalOppPoints
	out.TotalOppPointsRank = &row.TotalOppPointsRank
	out.TotalProjected = &row.TotalProjected
	out.TotalProjectedRank = &row.TotalProjectedRank
	out.TotalOppProjected = &row.TotalOppProjected
	out.TotalOppProjectedRank = &row.TotalOppProjectedRank
	out.OppTeamKey = row.OppTeamKey
	out.OppTeam = row.OppTeam
	out.OppManager = row.OppManager
	out.OppPoints = &row.OppPoints
	out.OppPointsRank = &row.OppPointsRank
	out.OppProjected = &row.OppProjected
	out.OppProjectedRank = &row.OppProjectedRank
	return out
}

type boardRecord struct {
	GameID            int64    `json:"game_id"`
	Week              int      `json:"week"`
	Bracket           string   `json:"bracket"`
	Finish            int      `json:"finish"`
	Seed              int      `json:"playoff_seed"`
	TeamKey           string   `json:"team_key"`
	Team              string   `json:"team"`
	Manager           string   `json:"manager"`
	Result            string   `json:"result"`
	Points            *float64 `json:"points"`
	Projected         *float64 `json:"projected"`
	TotalPoints       float64  `json:"total_points"`
	TotalProjected    float64  `json:"total_projected"`
	OppTeamKey        string   `json:"opp_team_key"`
	OppTeam           string   `json:"opp_team"`
	OppManager        string   `json:"opp_manager"`
	OppPoints         float64  `json:"opp_points"`
	OppProjected      float64  `json:"opp_projected"`
	OppTotalPoints    float64  `json:"opp_total_points"`
	OppTotalProjected float64  `json:"opp_total_projected"`
	Gap               bool     `json:"gap,omitempty"`
	Issue             string   `json:"issue,omitempty"`
}

func newBoardRecord(row postseason.BoardRow) boardRecord {
	out := boardRecord{
		GameID:            row.GameID,
		Week:              row.Week,
		Bracket:           row.Bracket,
		Finish:            row.Finish,
		Seed:              row.Seed,
		TeamKey:           row.TeamKey,
		Team:              row.Team,
		Manager:           row.Manager,
		Result:            string(row.Result),
		TotalPoints:       row.TotalPoints,
		TotalProjected:    row.TotalProjected,
		OppTeamKey:        row.OppTeamKey,
		OppTeam:           row.OppTeam,
		OppManager:        row.OppManager,
		OppPoints:         row.OppPoints,
		OppProjected:      row.OppProjected,
		OppTotalPoints:    row.OppTotalPoints,
		OppTotalProjected: row.OppTotalProjected,
		Gap:               row.Gap,
	}
	if !row.Gap {
		out.Points = &row.Points
		out.Projected = &row.Projected
	}
	if row.Issue != nil {
		out.Issue = row.Issue.Error()
	}
	return out
}
