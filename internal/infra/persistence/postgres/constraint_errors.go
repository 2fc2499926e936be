package postgres

import (
	"strings"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	"gorm.io/gorm"
)

// translateError maps driver errors to domain errors. A unique violation is an
// integrity violation caused by duplicate, or ErrConflict when duplicate is nil;
// a foreign key violation is one caused by ErrInvalidReference.
func translateError(err error, entity, action string, duplicate error) error {
	switch {
	case err == nil:
		return nil
	case isUniqueConstraintViolation(err):
		if duplicate == nil {
			duplicate = domainerrors.ErrConflict
		}

		return domainerrors.NewIntegrityViolation(entity, action, duplicate)
	case isForeignKeyConstraintViolation(err):
		return domainerrors.NewIntegrityViolation(entity, action, domainerrors.ErrInvalidReference)
	case isNotNullConstraintViolation(err), isCheckConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WrapMessage(entity + " " + action)
	default:
		return domainerrors.NewDatabaseExecuteError(err, entity+" "+action)
	}
}

// Helper functions for constraint error checking. They rely on the dialector's
// error translation, with message matching as the fallback for drivers that
// report a bare constraint failure.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "unique constraint") ||
		strings.Contains(errMsg, "23505") // PostgreSQL unique_violation error code
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "foreign key constraint") ||
		strings.Contains(errMsg, "23503") // PostgreSQL foreign_key_violation error code
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null constraint") ||
		strings.Contains(errMsg, "23502") // PostgreSQL not_null_violation error code
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated)
}
