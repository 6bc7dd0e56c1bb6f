package postseason

import "context"

type Repository interface {
	// ReplaceByGame swaps every stored board row of gameID for rows; other seasons are untouched.
	ReplaceByGame(ctx context.Context, gameID int64, rows []BoardRow) error
}
