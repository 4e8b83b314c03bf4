// Copyright (c) 2026 Melodee. All rights reserved.

/*
Package constants provides centralized, immutable values for the entire platform.

It defines column width contracts, library type discriminators, and
cross-cutting keys that are shared between different layers of the system.

Categories:

  - Column Widths: varchar widths that are part of the on-disk data contract.
  - Library Types: the Type discriminator values for filesystem roots.
  - Cache Keys: Redis channel/key taxonomy.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "melodee-catalog"
	AppVersion = "0.1.0-dev"
)

// # Column Width Contract
//
// These widths are part of the external interface: any process writing the
// same database must honor them.

const (
	// MaxGeneralInputLength bounds names, titles, emails.
	MaxGeneralInputLength = 255

	// MaxGeneralLongLength bounds file names, client identifiers.
	MaxGeneralLongLength = 1000

	// MaxIndexableLength bounds paths, tags and other indexed free text.
	MaxIndexableLength = 2000

	// MaxInputLength bounds notes, descriptions, user agents.
	MaxInputLength = 4000

	// MaxTextLength bounds lyrics.
	MaxTextLength = 62000

	// HashOrGuidLength is the exact width of a hex content hash (SHA-256).
	HashOrGuidLength = 64
)

// # Library Types
//
// At most one library of each non-storage type may exist; storage libraries
// are unbounded. Enforced by a partial unique index on libraries.type.

const (
	LibraryTypeInbound = 1
	LibraryTypeStaging = 2
	LibraryTypeStorage = 3
	LibraryTypeImages  = 4
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight work to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
)

// # Redis Taxonomy

const (
	// RedisChannelSettingsChanged carries invalidation signals published on
	// every administrative settings write.
	RedisChannelSettingsChanged = "settings:changed"

	// RedisKeySettingsVersion is a monotonically increasing write counter
	// used by late-joining readers to detect missed invalidations.
	RedisKeySettingsVersion = "settings:version"
)
