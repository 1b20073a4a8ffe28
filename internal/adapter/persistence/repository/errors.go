package repository

import (
	"errors"

	"field_estimator/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// translateError maps gorm errors onto the repository contract: missing
// rows are not errors (callers get zero values) and unique violations
// become interfaces.ErrDuplicateKey. The connection is opened with
// TranslateError so the driver error is already normalized here.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return interfaces.ErrDuplicateKey
	default:
		return err
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
