package standings

import (
	"time"

	"github.com/riskibarqy/fantasy-rankings/internal/domain/season"
)

// Row is the regular-season standings record of one team for one week.
// When Gap is set the derived columns are unset and Issue explains why.
type Row struct {
	GameID    int64
	Week      int
	WeekStart time.Time
	TeamKey   string
	Team      string
	Manager   string

	Rank     int
	PrevRank int
	Tuple    [2]int

	TwoPointTotal int
	TwoPointRank  int
	BonusTotal    int
	BonusRank     int
	Wins          int
	Losses        int
	WinsRank      int
	Result        season.Result
	TopHalf       int

	Points        float64
	PointsRank    int
	Projected     float64
	ProjectedRank int

	AvgPoints        float64
	AvgPointsRank    int
	AvgOppPoints     float64
	AvgOppPointsRank int

	TotalPoints           float64
	TotalPointsRank       int
	TotalOppPoints        float64
	TotalOppPointsRank    int
	TotalProjected        float64
	TotalProjectedRank    int
	TotalOppProjected     float64
	TotalOppProjectedRank int

	OppTeamKey       string
	OppTeam          string
	OppManager       string
	OppPoints        float64
	OppPointsRank    int
	OppProjected     float64
	OppProjectedRank int

	Gap   bool
	Issue error
}
