// Package apperrors defines the error kinds the catalog store surfaces to
// callers. Services wrap these with context via fmt.Errorf("...: %w", err);
// the HTTP layer maps them to status codes with errors.Is.
package apperrors

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrDuplicateKey reports a uniqueness violation: a ConfigType key that
	// already exists, or a field name reused within one ConfigType.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrNotFound reports a lookup of a ConfigType or ConfigField that does
	// not exist.
	ErrNotFound = errors.New("not found")

	// ErrConstraintViolation reports a rejected record: missing required
	// column, length overflow or malformed attribute payload.
	ErrConstraintViolation = errors.New("constraint violation")
)

// FromDB classifies a database error into one of the catalog error kinds.
// The unique indexes are the backstop for races the service-level checks
// cannot see, so duplicate-entry engine errors must map to ErrDuplicateKey.
func FromDB(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateKey
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "duplicate entry") || strings.Contains(msg, "duplicate unique key") ||
		strings.Contains(msg, "duplicate primary key") {
		return ErrDuplicateKey
	}
	if strings.Contains(msg, "foreign key") || strings.Contains(msg, "cannot be null") ||
		strings.Contains(msg, "data too long") {
		return ErrConstraintViolation
	}
	return err
}
