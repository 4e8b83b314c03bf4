// Copyright (c) 2026 Melodee. All rights reserved.

package dberr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sphildreth/melodee-sub003/internal/platform/apperr"
)

func TestWrapNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "noop"))
}

func TestWrapNoRows(t *testing.T) {
	err := Wrap(pgx.ErrNoRows, "get_artist")
	assert.True(t, apperr.IsCode(err, apperr.CodeNotFound))

	// Wrapped driver errors classify the same way.
	err = Wrap(fmt.Errorf("scan: %w", pgx.ErrNoRows), "get_artist")
	assert.True(t, apperr.IsCode(err, apperr.CodeNotFound))
}

func TestWrapUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           pgerrcode.UniqueViolation,
		ConstraintName: "ux_albums_artistid_name",
	}

	err := Wrap(pgErr, "create_album")
	require.True(t, apperr.IsCode(err, apperr.CodeDuplicateKey))
	assert.Equal(t, "ux_albums_artistid_name", apperr.As(err).Scope)
}

func TestWrapForeignKeyViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           pgerrcode.ForeignKeyViolation,
		ConstraintName: "fk_songs_albumdiscid",
	}

	err := Wrap(pgErr, "create_song")
	require.True(t, apperr.IsCode(err, apperr.CodeDanglingReference))
	assert.Equal(t, "fk_songs_albumdiscid", apperr.As(err).Scope)
}

func TestWrapScopeFallsBackToTable(t *testing.T) {
	pgErr := &pgconn.PgError{Code: pgerrcode.UniqueViolation, TableName: "artist"}
	assert.Equal(t, "artist", apperr.As(Wrap(pgErr, "create_artist")).Scope)

	pgErr = &pgconn.PgError{Code: pgerrcode.UniqueViolation}
	assert.Equal(t, pgerrcode.UniqueViolation, apperr.As(Wrap(pgErr, "create_artist")).Scope)
}

func TestWrapUnknownErrorIsInternal(t *testing.T) {
	cause := errors.New("connection reset")
	err := Wrap(cause, "list_songs")

	require.True(t, apperr.IsCode(err, apperr.CodeInternal))
	// The cause stays reachable for logging but out of the client message.
	assert.ErrorIs(t, err, cause)
	assert.NotContains(t, err.Error(), "connection reset")
}

func TestIsDuplicateKey(t *testing.T) {
	pgErr := &pgconn.PgError{Code: pgerrcode.UniqueViolation}

	assert.True(t, IsDuplicateKey(pgErr))
	assert.True(t, IsDuplicateKey(Wrap(pgErr, "create_artist")))
	assert.False(t, IsDuplicateKey(pgx.ErrNoRows))
	assert.False(t, IsDuplicateKey(nil))
}
