package postgres

import (
	"database/sql"
	"errors"
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func issueText(err error) *string {
	if err == nil {
		return nil
	}
	out := err.Error()
	return &out
}

func nullableInt(value int, valid bool) *int {
	if !valid {
		return nil
	}
	return &value
}

func nullableFloat(value float64, valid bool) *float64 {
	if !valid {
		return nil
	}
	return &value
}

func nullableString(value string, valid bool) *string {
	if !valid || value == "" {
		return nil
	}
	return &value
}
