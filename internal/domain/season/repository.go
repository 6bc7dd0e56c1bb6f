package season

import "context"

// SourceRepository reads the provider feed already landed in storage.
type SourceRepository interface {
	GetSettings(ctx context.Context, gameID int64) (Settings, bool, error)
	ListMatchups(ctx context.Context, gameID int64) ([]Matchup, error)
	ListTeams(ctx context.Context, gameID int64) ([]Team, error)
	// ListGameIDs returns every season that has settings and landed matchups,
	// oldest first.
	ListGameIDs(ctx context.Context) ([]int64, error)
}
