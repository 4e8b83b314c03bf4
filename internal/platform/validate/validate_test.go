// Copyright (c) 2026 Melodee. All rights reserved.

package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sphildreth/melodee-sub003/internal/platform/apperr"
)

func TestValidatorPassThrough(t *testing.T) {
	v := &Validator{}
	v.Required("name", "Abbey Road").
		MaxLen("name", "Abbey Road", 255).
		Email("email", "alice@example.com").
		UUID("apikey", "018F3B1C-5E6A-7D2B-9C4E-1A2B3C4D5E6F").
		OneOf("type", "storage", "inbound", "staging", "storage")

	assert.NoError(t, v.Err())
	assert.False(t, v.HasErrors())
}

func TestValidatorCollectsEveryFailure(t *testing.T) {
	v := &Validator{}
	v.Required("name", "   ").
		MaxLen("comment", strings.Repeat("x", 300), 255).
		MinLen("password", "ab", 8).
		Email("email", "nope").
		UUID("apikey", "nope").
		OneOf("type", "weird", "inbound", "staging").
		Custom("streamurl", true, "Must be an http(s) URL")

	err := v.Err()
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.CodeValidation, ae.Code)
	assert.Len(t, ae.Details, 7)
}

func TestRequiredTrimsWhitespace(t *testing.T) {
	v := &Validator{}
	v.Required("name", " \t ")
	assert.True(t, v.HasErrors())
}

func TestMaxLenCountsRunes(t *testing.T) {
	v := &Validator{}
	v.MaxLen("name", "héllo", 5)
	assert.NoError(t, v.Err())

	v = &Validator{}
	v.MaxLen("name", "héllo!", 5)
	assert.Error(t, v.Err())
}

func TestRequiredError(t *testing.T) {
	err := RequiredError("password", "This field is required")

	require.Equal(t, apperr.CodeValidation, err.Code)
	require.Len(t, err.Details, 1)
	assert.Equal(t, "password", err.Details[0].Field)
}
