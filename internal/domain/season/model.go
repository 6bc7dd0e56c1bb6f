package season

import "time"

// Settings stores the league rules for one season (one Yahoo game id).
type Settings struct {
	GameID              int64 `validate:"gt=0"`
	LeagueID            string
	Season              int
	MaxTeams            int `validate:"gte=2"`
	NumPlayoffTeams     int `validate:"gte=2,ltefield=MaxTeams"`
	NumConsolationTeams int `validate:"gte=0"`
	PlayoffStartWeek    int `validate:"gte=1"`
	EndWeek             int `validate:"gtefield=PlayoffStartWeek"`
}

// Matchup is one head-to-head row as delivered by the data provider.
// Points are nil until the provider reports them.
type Matchup struct {
	GameID         int64
	Week           int
	WeekStart      time.Time
	WeekEnd        time.Time
	TeamAKey       string
	TeamAPoints    *float64
	TeamAProjected *float64
	TeamBKey       string
	TeamBPoints    *float64
	TeamBProjected *float64
	WinnerKey      string
	IsPlayoffs     bool
	IsConsolation  bool
}

// InSeason reports whether m belongs to gameID. Rows without a game id are
// taken as part of whatever season they were read for.
func (m Matchup) InSeason(gameID int64) bool {
	return m.GameID == 0 || gameID == 0 || m.GameID == gameID
}

// Team is a roster entry of the league for one season.
type Team struct {
	GameID      int64
	Key         string
	Name        string
	Nickname    string
	PlayoffSeed int
}

// Result is a week outcome as written on standings and board rows.
type Result string

const (
	ResultWin  Result = "W"
	ResultLoss Result = "L"
	ResultBye  Result = "Bye"
)
