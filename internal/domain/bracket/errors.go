package bracket

import crerr "github.com/cockroachdb/errors"

var (
	// ErrInvalidTransition is returned when a winner is not one of the match
	// participants, or the match cannot take a winner. Always fatal for the pass.
	ErrInvalidTransition = crerr.New("invalid bracket transition")
	// ErrIncomplete is returned when placements are requested before every match is decided.
	ErrIncomplete = crerr.New("bracket not complete")
)
