// Package dberr defines the error kinds the data layer reports and translates
// driver-specific failures onto them.
//
// Three kinds exist:
//
//   - *SchemaError — table creation/drop failed or the stored schema version
//     cannot be reconciled; fatal for the session.
//   - ErrConstraint — a uniqueness, foreign-key, or check constraint rejected
//     a write. Always propagated, never retried or coerced into an update.
//   - ErrNotFound — a read or an update/delete addressed a row that does not
//     exist.
package dberr

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when the addressed row does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrConstraint is returned when the store rejects a write due to a
	// uniqueness, foreign-key, or check constraint.
	ErrConstraint = errors.New("constraint violation")
)

// SchemaError reports a failure while creating, dropping, or versioning the
// schema. The store is unusable for the session until resolved.
type SchemaError struct {
	Op  string
	Err error
}

func (e *SchemaError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("schema: %s", e.Op)
	}
	return fmt.Sprintf("schema: %s: %v", e.Op, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// NewSchemaError wraps err with the failing operation name.
func NewSchemaError(op string, err error) *SchemaError {
	return &SchemaError{Op: op, Err: err}
}

// constraintMarkers covers the message shapes of the four supported drivers
// for databases where gorm's error translation does not fire.
var constraintMarkers = []string{
	"UNIQUE constraint failed",      // sqlite
	"FOREIGN KEY constraint failed", // sqlite
	"CHECK constraint failed",       // sqlite
	"duplicate key value",           // postgres
	"violates foreign key",          // postgres
	"violates check constraint",     // postgres
	"Duplicate entry",               // mysql
	"a foreign key constraint fails",
	"CONSTRAINT",                    // sqlserver
}

// Translate maps a gorm/driver error onto one of the package error kinds.
// Unknown errors pass through unchanged; nil stays nil.
func Translate(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return fmt.Errorf("%w: %v", ErrConstraint, err)
	}

	msg := err.Error()
	for _, marker := range constraintMarkers {
		if strings.Contains(msg, marker) {
			return fmt.Errorf("%w: %v", ErrConstraint, err)
		}
	}

	return err
}

// IsNotFound reports whether err is an ErrNotFound.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsConstraint reports whether err is an ErrConstraint.
func IsConstraint(err error) bool { return errors.Is(err, ErrConstraint) }
