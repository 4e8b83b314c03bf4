package library

import "time"

// Type discriminates what a library root is for. Exactly one library of each
// non-storage type may exist at a time; storage libraries are unbounded.
type Type int

const (
	TypeInbound Type = 1
	TypeStaging Type = 2
	TypeStorage Type = 3
	TypeImages  Type = 4
)

// Library represents a filesystem root the scanner and server operate on.
type Library struct {
	ID            int        `json:"id"`
	Name          string     `json:"name"`
	Path          string     `json:"path"`
	Type          Type       `json:"type"`
	ArtistCount   *int       `json:"artist_count"`
	AlbumCount    *int       `json:"album_count"`
	SongCount     *int       `json:"song_count"`
	LastScanAt    *time.Time `json:"last_scan_at"`
	IsLocked      bool       `json:"is_locked"`
	SortOrder     int        `json:"sort_order"`
	APIKey        string     `json:"api_key"`
	CreatedAt     time.Time  `json:"created_at"`
	LastUpdatedAt *time.Time `json:"last_updated_at"`
	Tags          *string    `json:"tags"`
	Notes         *string    `json:"notes"`
	Description   *string    `json:"description"`
}

// ScanStats carries the counts a completed scan writes back onto its library.
type ScanStats struct {
	ArtistCount int
	AlbumCount  int
	SongCount   int
	ScannedAt   time.Time
}

const (
	FieldName = "name"
	FieldPath = "path"
	FieldType = "type"
)
