// Copyright (c) 2026 Melodee. All rights reserved.

package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantCode   string
		wantStatus int
	}{
		{"not found", NotFound("Song"), CodeNotFound, http.StatusNotFound},
		{"duplicate key", DuplicateKey("ux_artists_name"), CodeDuplicateKey, http.StatusConflict},
		{"dangling reference", DanglingReference("fk_songs_albumdiscid"), CodeDanglingReference, http.StatusConflict},
		{"invalid range", InvalidRange("year", "out of bounds"), CodeInvalidRange, http.StatusUnprocessableEntity},
		{"validation", ValidationError("bad input"), CodeValidation, http.StatusBadRequest},
		{"internal", Internal(errors.New("boom")), CodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.Equal(t, tt.wantStatus, tt.err.HTTPStatus)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestDuplicateKeyNamesScope(t *testing.T) {
	err := DuplicateKey("ux_albums_artistid_name")
	assert.Equal(t, "ux_albums_artistid_name", err.Scope)
	assert.Contains(t, err.Error(), "ux_albums_artistid_name")
}

func TestInternalHidesCause(t *testing.T) {
	cause := errors.New("pq: syntax error near SELECT")
	err := Internal(cause)

	assert.NotContains(t, err.Error(), "SELECT")
	assert.ErrorIs(t, err, cause)
}

func TestIsCodeTraversesWrapping(t *testing.T) {
	inner := NotFound("Artist")
	wrapped := fmt.Errorf("loading artist: %w", inner)

	assert.True(t, IsCode(wrapped, CodeNotFound))
	assert.False(t, IsCode(wrapped, CodeDuplicateKey))
	assert.False(t, IsCode(nil, CodeNotFound))
	assert.False(t, IsCode(errors.New("plain"), CodeNotFound))
}

func TestAs(t *testing.T) {
	inner := InvalidRange("discnumber", "too high")
	wrapped := fmt.Errorf("saving disc: %w", inner)

	got := As(wrapped)
	require.NotNil(t, got)
	assert.Equal(t, CodeInvalidRange, got.Code)
	assert.Equal(t, "discnumber", got.Scope)

	assert.Nil(t, As(errors.New("plain")))
	assert.False(t, IsAppError(errors.New("plain")))
	assert.True(t, IsAppError(wrapped))
}

func TestValidationErrorCarriesDetails(t *testing.T) {
	err := ValidationError("Validation failed",
		FieldError{Field: "name", Message: "This field is required"},
		FieldError{Field: "email", Message: "Must be a valid email address"},
	)

	require.Len(t, err.Details, 2)
	assert.Equal(t, "name", err.Details[0].Field)
}
