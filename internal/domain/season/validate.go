package season

import (
	"sync"

	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func settingsValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// ValidateSettings rejects settings that cannot drive a season computation.
func ValidateSettings(s Settings) error {
	if err := settingsValidator().Struct(s); err != nil {
		var fieldErrs validator.ValidationErrors
		if crerr.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			first := fieldErrs[0]
			return crerr.Wrapf(ErrConfiguration, "game_id=%d field=%s rule=%s value=%v",
				s.GameID, first.Field(), first.Tag(), first.Value())
		}
		return crerr.Wrapf(ErrConfiguration, "game_id=%d: %v", s.GameID, err)
	}
	return nil
}
