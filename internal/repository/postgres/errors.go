package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	repo "github.com/sayalimunde/mini-lms/internal/repository"
)

// remediationURL points operators at the migration instructions; the
// composite index on lessons(course_id, "order") ships in 0001_init.up.sql.
const remediationURL = "https://github.com/sayalimunde/mini-lms#database-migrations"

// mapErr translates row-level driver errors: no rows becomes ErrNotFound,
// everything else passes through as generic.
func mapErr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return repo.ErrNotFound
	}
	return err
}

// mapIndexErr is for the compound equality+ordering list queries: an
// undefined table or object means the composite index (or the schema) was
// never declared, a deployment error surfaced distinctly with remediation.
func mapIndexErr(err error, query string) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "42P01", "42704": // undefined_table, undefined_object
			return &repo.MissingIndexError{Query: query, Remediation: remediationURL, Err: err}
		}
	}
	return err
}
