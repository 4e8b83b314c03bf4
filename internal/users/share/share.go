// Package share manages time-limited share links a user hands out for a set
// of songs. The share's apikey doubles as the public token; visits are
// tallied on the row.
package share

import "time"

type Share struct {
	ID             int        `json:"id"`
	UserID         int        `json:"user_id"`
	SongIDs        string     `json:"song_ids"`
	ExpiresAt      *time.Time `json:"expires_at"`
	IsDownloadable bool       `json:"is_downloadable"`
	LastVisitedAt  *time.Time `json:"last_visited_at"`
	VisitCount     int        `json:"visit_count"`
	IsLocked       bool       `json:"is_locked"`
	SortOrder      int        `json:"sort_order"`
	APIKey         string     `json:"api_key"`
	CreatedAt      time.Time  `json:"created_at"`
	LastUpdatedAt  *time.Time `json:"last_updated_at"`
	Tags           *string    `json:"tags"`
	Notes          *string    `json:"notes"`
	Description    *string    `json:"description"`
}

// IsExpired reports whether the share has lapsed at the given instant.
// Shares without an expiry never lapse.
func (s *Share) IsExpired(now time.Time) bool {
	return s.ExpiresAt != nil && now.After(*s.ExpiresAt)
}

const (
	FieldSongIDs   = "songids"
	FieldExpiresAt = "expiresat"
)
