package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	sqlite3 "github.com/mattn/go-sqlite3"
)

var (
	// ErrConstraintViolation marks writes rejected by a schema constraint.
	// The driver message is preserved in the wrapped error.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrUnknownColumn marks insert payloads naming a column outside the
	// table's allow-list.
	ErrUnknownColumn = errors.New("unknown column")
)

// SQLSTATE class 23 covers integrity constraint violations.
const pgConstraintClass = "23"

// classify maps driver-level constraint errors onto ErrConstraintViolation
// and passes everything else through untouched.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, pgConstraintClass) {
		return fmt.Errorf("%w: %s", ErrConstraintViolation, pgErr.Message)
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		return fmt.Errorf("%w: %v", ErrConstraintViolation, sqliteErr)
	}

	return err
}
