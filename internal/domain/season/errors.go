package season

import crerr "github.com/cockroachdb/errors"

var (
	// ErrConfiguration marks invalid or missing league settings. Fatal for the season.
	ErrConfiguration = crerr.New("configuration error")
	// ErrDataGap marks a score that is expected but absent. Tolerated per row.
	ErrDataGap = crerr.New("data gap")
)
