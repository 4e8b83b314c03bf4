// Copyright (c) 2026 Melodee. All rights reserved.

package apikey

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIsValidAndUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		k := New()
		assert.True(t, IsValid(k))
		assert.False(t, seen[k], "generated keys must not repeat")
		seen[k] = true
	}
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("018f3b1c-5e6a-7d2b-9c4e-1a2b3c4d5e6f"))
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("not-a-uuid"))
	assert.False(t, IsValid("12345"))
}
