// Package bookmark stores per-user resume positions within songs. At most
// one bookmark exists per (user, song) pair; saving again moves it.
package bookmark

import "time"

type Bookmark struct {
	ID            int        `json:"id"`
	UserID        int        `json:"user_id"`
	SongID        int        `json:"song_id"`
	Position      int        `json:"position"`
	Comment       *string    `json:"comment"`
	IsLocked      bool       `json:"is_locked"`
	SortOrder     int        `json:"sort_order"`
	APIKey        string     `json:"api_key"`
	CreatedAt     time.Time  `json:"created_at"`
	LastUpdatedAt *time.Time `json:"last_updated_at"`
	Tags          *string    `json:"tags"`
	Notes         *string    `json:"notes"`
	Description   *string    `json:"description"`
}

const (
	FieldPosition = "position"
	FieldComment  = "comment"
)
