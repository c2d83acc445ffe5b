// Package repository persists links, users and access logs. The
// relational store is the source of truth for uniqueness; callers tell a
// unique-constraint violation apart from every other failure through
// ErrUniqueViolation.
package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrUniqueViolation is returned when an insert hits a unique constraint.
	ErrUniqueViolation = errors.New("unique constraint violation")
	// ErrNotFound is returned when no row matches.
	ErrNotFound = errors.New("record not found")
)

const uniqueViolationCode = "23505"

// translate maps driver errors onto the package sentinels.
func translate(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return fmt.Errorf("%s: %w", pgErr.ConstraintName, ErrUniqueViolation)
	}
	return err
}
