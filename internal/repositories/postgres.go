package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/AnkitGupta-dev/travel-wishlist-app/internal/logger"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound is returned when no row matches the query.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateKey is returned when an insert or update violates a unique constraint.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrForeignKey is returned when a write references a row that does not exist.
	ErrForeignKey = errors.New("referenced record does not exist")
)

// classify maps driver errors to repository sentinels.
// Constraint violations keep the constraint name for the caller's message.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return fmt.Errorf("%w: %s", ErrDuplicateKey, pgErr.ConstraintName)
		case pgerrcode.ForeignKeyViolation:
			return fmt.Errorf("%w: %s", ErrForeignKey, pgErr.ConstraintName)
		}
	}

	return err
}

// logQuery logs the query in a single line together with its outcome.
func logQuery(ctx context.Context, query string, args []any, result any, err error) {
	logger.FromContext(ctx).Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}
