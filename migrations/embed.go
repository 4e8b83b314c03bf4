// Copyright (c) 2026 Melodee. All rights reserved.

// Package migrations carries the ordered schema migration sequence for the
// catalog as an embedded filesystem.
//
// The sequence is accretive: every file pair is immutable once released, and
// later steps (genre array packing, disc surrogate keys) migrate data written
// by earlier steps. See the numbered .sql files for the contract itself.
package migrations

import "embed"

// FS holds every up/down migration pair, applied in lexical order by the
// migration runner.
//
//go:embed *.sql
var FS embed.FS
