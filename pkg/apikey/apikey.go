// Copyright (c) 2026 Melodee. All rights reserved.

// Package apikey generates the stable public identifiers carried by every
// catalog row.
//
// # Why a second key?
//
// Integer primary keys are internal plumbing: they leak ordering and make
// rows guessable when exposed. Every externally addressable row therefore
// also carries a random UUID api key, and that is the only identifier
// handed to clients.
package apikey

import "github.com/google/uuid"

// New generates a new random api key string.
//
// It panics only if the OS random source is unavailable (extremely rare).
func New() string {
	id, err := uuid.NewRandom()
	if err != nil {
		panic("apikey: failed to generate UUID: " + err.Error())
	}

	return id.String()
}

// IsValid reports whether s parses as an api key.
func IsValid(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
