package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/gearshop/shop-backend/pkg/logging"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("already exists")
	ErrInternal           = errors.New("unexpected error, check server logs")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// uniqueViolation reports whether err is a uniqueness-constraint failure and
// returns the constraint detail when the driver provides one.
func uniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return pgErr.Detail, true
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return err.Error(), true
	}
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return err.Error(), true
	}
	return "", false
}

// classifyDBError translates a persistence failure once, at the workflow
// boundary. Uniqueness violations become ErrConflict carrying the constraint
// detail; everything else is logged in full and surfaced as a generic
// ErrInternal that leaks nothing to the caller.
func classifyDBError(ctx context.Context, op string, err error) error {
	if detail, ok := uniqueViolation(err); ok {
		return fmt.Errorf("%w: %s", ErrConflict, detail)
	}
	logging.FromContext(ctx).Error(op+"_db_error", "error", err)
	return ErrInternal
}
