package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/pinmoji/internal/domain"
)

// sqlStates maps constraint and data errors raised by the items and
// room_messages schemas to domain errors.
var sqlStates = map[string]error{
	pgerrcode.UniqueViolation:           domain.ErrAlreadyExists,
	pgerrcode.ForeignKeyViolation:       domain.ErrNotFound,
	pgerrcode.CheckViolation:            domain.ErrValidation,
	pgerrcode.NotNullViolation:          domain.ErrValidation,
	pgerrcode.NumericValueOutOfRange:    domain.ErrValidation,
	pgerrcode.InvalidTextRepresentation: domain.ErrValidation,
}

// MapError annotates err with the entity and id and converts pgx errors to
// domain errors. Context errors keep their identity.
func MapError(err error, entity, id string) error {
	if err == nil {
		return nil
	}

	target := err
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
	case errors.Is(err, pgx.ErrNoRows):
		target = domain.ErrNotFound
	default:
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if mapped, ok := sqlStates[pgErr.Code]; ok {
				target = mapped
			}
		}
	}

	return fmt.Errorf("%s %s: %w", entity, id, target)
}
