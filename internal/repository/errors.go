package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	appErrors "github.com/Chodoro/psusphere/pkg/errors"
)

const pqForeignKeyViolation = "23503"

// translate wraps a driver error with the operation name. Foreign key
// violations become INTEGRITY_VIOLATION so callers can tell a blocked
// delete or a dangling reference apart from an outage.
func translate(err error, op string) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == pqForeignKeyViolation {
		return appErrors.Wrap(fmt.Errorf("%s: %w", op, err), appErrors.ErrIntegrity.Code, appErrors.ErrIntegrity.Status, appErrors.ErrIntegrity.Message)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// requireAffected turns a statement that touched no rows into sql.ErrNoRows.
func requireAffected(res sql.Result, err error, op string) error {
	if err != nil {
		return translate(err, op)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// exists runs a SELECT 1 query and reports whether it found a row.
func exists(ctx context.Context, db *sqlx.DB, query string, args ...interface{}) (bool, error) {
	var one int
	if err := db.GetContext(ctx, &one, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
