package repo

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUndefinedTable  = "42P01"
	pgUndefinedColumn = "42703"
)

// schemaMissing reports whether the error means an expected optional table
// or column is not provisioned. Discovery treats that as "no results" so the
// feature degrades in partially-migrated environments instead of failing.
func schemaMissing(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgUndefinedTable || pgErr.Code == pgUndefinedColumn
}
