package dbx

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/opio/bpmonitor/internal/common"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// Classify wraps a driver error for the operation op. Unique-constraint
// violations become common.ErrorAlreadyExists, foreign-key violations become
// common.ErrorUnknownAccount, anything else is a common.ErrStorage.
// A nil err stays nil.
func Classify(op string, err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%s: %w", op, common.ErrorAlreadyExists)
		case pgForeignKeyViolation:
			return fmt.Errorf("%s: %w", op, common.ErrorUnknownAccount)
		}
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE:
			return fmt.Errorf("%s: %w", op, common.ErrorAlreadyExists)
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return fmt.Errorf("%s: %w", op, common.ErrorUnknownAccount)
		}
	}

	return fmt.Errorf("%s: %w: %w", op, common.ErrStorage, err)
}
