package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound is returned when the target row of a get, update or delete
// does not exist.
var ErrNotFound = errors.New("not found")

// ErrReferenceNotFound is returned when a write points at a row that does
// not exist, such as a show whose venue was never created.
var ErrReferenceNotFound = errors.New("referenced record not found")

// ErrConstraintViolation is returned when storage rejects a row's shape:
// uniqueness, NOT NULL, CHECK or length limits.
var ErrConstraintViolation = errors.New("constraint violation")

const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
	pgNotNullViolation    = "23502"
	pgStringTooLong       = "22001"
)

// classify maps driver errors onto the package sentinels. The driver
// error stays in the chain for logging.
func classify(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %w", ErrReferenceNotFound, err)
		case pgUniqueViolation, pgCheckViolation, pgNotNullViolation, pgStringTooLong:
			return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
		}
	}

	return err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns a search term into an unanchored ILIKE pattern with
// wildcards in the term matched literally.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
