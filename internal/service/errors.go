package service

import (
	"errors"
	"fmt"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrConstraintViolation = errors.New("constraint violation")
	ErrInternal            = errors.New("internal failure")
)

// translate maps storage and action errors onto the service taxonomy.
// Anything unrecognised is an internal failure.
func translate(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, actions.ErrUnknownAccount):
		return fmt.Errorf("%s: %w: %w", op, ErrConstraintViolation, err)
	case errors.Is(err, sqlconfig.ErrNotFound):
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case errors.Is(err, sqlconfig.ErrDuplicate):
		return fmt.Errorf("%s: %w", op, ErrConflict)
	default:
		return fmt.Errorf("%s: %w: %w", op, ErrInternal, err)
	}
}

func constraintViolation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConstraintViolation, fmt.Sprintf(format, args...))
}
