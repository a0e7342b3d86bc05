package postgres

import (
	"time"

	"github.com/lifebot/backend/domain"
)

// storageErr classifies an infrastructure failure so callers can tell
// "store unreachable" apart from domain outcomes.
func storageErr(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(*domain.Error); ok {
		return err
	}
	return domain.WrapError(domain.ErrCodeUnavailable, "postgres unavailable", err)
}

func nullDate(d domain.Date) interface{} {
	if d.IsZero() {
		return nil
	}
	return d.Time()
}

func dateOf(t *time.Time) domain.Date {
	if t == nil {
		return domain.Date{}
	}
	return domain.DateOf(t.UTC())
}
