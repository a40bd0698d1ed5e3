package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when no row has the requested primary key
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateKey is returned when an insert reuses an existing primary key
	ErrDuplicateKey = errors.New("duplicate key value")

	// ErrForeignKeyViolation is returned when the database enforces a reference that does not resolve
	ErrForeignKeyViolation = errors.New("foreign key violation")
)

// translate maps gorm and driver errors onto the store's sentinel errors
func translate(op, table string, err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s %s: %w", op, table, ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s %s: %w", op, table, ErrDuplicateKey)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%s %s: %w", op, table, ErrForeignKeyViolation)
	}
	return fmt.Errorf("failed to %s %s: %w", op, table, err)
}
