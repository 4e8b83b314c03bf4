package settings

import "time"

// Setting is one row of the dot-namespaced configuration registry. Values
// are stored as strings; readers parse them into whatever type they expect.
type Setting struct {
	ID            int        `json:"id"`
	Key           string     `json:"key"`
	Value         string     `json:"value"`
	Comment       *string    `json:"comment"`
	Category      *int       `json:"category"`
	IsLocked      bool       `json:"is_locked"`
	SortOrder     int        `json:"sort_order"`
	APIKey        string     `json:"api_key"`
	CreatedAt     time.Time  `json:"created_at"`
	LastUpdatedAt *time.Time `json:"last_updated_at"`
	Tags          *string    `json:"tags"`
	Notes         *string    `json:"notes"`
	Description   *string    `json:"description"`
}

// Well-known keys. Renaming any of these is a breaking change for existing
// deployments; a migration must copy the old value forward.
const (
	KeyDoDeleteOriginal    = "processing.dodeleteoriginal"
	KeyIgnoredArticles     = "processing.ignoredarticles"
	KeyDefaultPageSize     = "defaults.pagesize"
	KeyEncryptionKey       = "encryption.privatekey"
	KeyScrobblingEnabled   = "scrobbling.enabled"
	KeySearchMaxResults    = "search.maximumresults"
	KeySystemIsReadOnly    = "system.isreadonly"
	KeyMinimumAlbumYear    = "validation.minimumalbumyear"
	KeyMaximumAlbumYear    = "validation.maximumalbumyear"
	KeyMaximumDiscNumber   = "validation.maximummedianumber"
	KeyMaximumSongNumber   = "validation.maximumsongnumber"
	KeyMinimumSongDuration = "validation.minimumsongduration"
)

// Hardcoded fallbacks used when a key is absent from the store entirely.
const (
	DefaultIgnoredArticles     = "THE|EL|LA|LOS|LAS|LE|LES|OS|AS|O|A"
	DefaultPageSize            = 100
	DefaultMinimumAlbumYear    = 1860
	DefaultMaximumAlbumYear    = 2150
	DefaultMaximumDiscNumber   = 999
	DefaultMaximumSongNumber   = 9999
	DefaultMinimumSongDuration = 3
)

const (
	FieldKey   = "key"
	FieldValue = "value"
)
