package sqlite

import (
	"errors"

	"gorm.io/gorm"

	"github.com/lifebot/backend/domain"
)

func storageErr(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(*domain.Error); ok {
		return err
	}
	return domain.WrapError(domain.ErrCodeUnavailable, "sqlite unavailable", err)
}

func notFound(err error, fallback *domain.Error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fallback
	}
	return storageErr(err)
}
