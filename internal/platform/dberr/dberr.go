// Copyright (c) 2026 Melodee. All rights reserved.

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
//
// Constraint violations are classified by Postgres SQLSTATE so callers see
// the catalog taxonomy (DuplicateKey, DanglingReference, NotFound) instead
// of driver internals. They are surfaced immediately and never retried:
// retrying a unique-violation would risk duplicate catalog entries.
package dberr

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/sphildreth/melodee-sub003/internal/platform/apperr"
)

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
//
// # Classification
//
//   - pgx.ErrNoRows                      -> NOT_FOUND
//   - SQLSTATE 23505 (unique_violation)  -> DUPLICATE_KEY naming the constraint
//   - SQLSTATE 23503 (fk_violation)      -> DANGLING_REFERENCE naming the constraint
//   - anything else                      -> INTERNAL_ERROR carrying the cause
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return apperr.DuplicateKey(scopeOf(pgErr))
		case pgerrcode.ForeignKeyViolation:
			return apperr.DanglingReference(scopeOf(pgErr))
		}
	}

	return apperr.Internal(err)
}

// IsDuplicateKey reports whether err is a unique-constraint violation,
// before or after wrapping.
func IsDuplicateKey(err error) bool {
	if apperr.IsCode(err, apperr.CodeDuplicateKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

// scopeOf extracts the best available name for the violated scope.
func scopeOf(pgErr *pgconn.PgError) string {
	if pgErr.ConstraintName != "" {
		return pgErr.ConstraintName
	}
	if pgErr.TableName != "" {
		return pgErr.TableName
	}
	return pgErr.Code
}
