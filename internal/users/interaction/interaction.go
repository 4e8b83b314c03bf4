// Package interaction holds the per-user overlay rows for catalog entities:
// stars, hates, ratings and play tallies. Each overlay is keyed by the
// (user, entity) pair, one row per pair.
package interaction

import "time"

// UserArtist is a user's relationship to an artist.
type UserArtist struct {
	ID            int        `json:"id"`
	UserID        int        `json:"user_id"`
	ArtistID      int        `json:"artist_id"`
	IsStarred     bool       `json:"is_starred"`
	StarredAt     *time.Time `json:"starred_at"`
	IsHated       bool       `json:"is_hated"`
	Rating        int        `json:"rating"`
	IsLocked      bool       `json:"is_locked"`
	SortOrder     int        `json:"sort_order"`
	APIKey        string     `json:"api_key"`
	CreatedAt     time.Time  `json:"created_at"`
	LastUpdatedAt *time.Time `json:"last_updated_at"`
	Tags          *string    `json:"tags"`
	Notes         *string    `json:"notes"`
	Description   *string    `json:"description"`
}

// UserAlbum is a user's relationship to an album.
type UserAlbum struct {
	ID            int        `json:"id"`
	UserID        int        `json:"user_id"`
	AlbumID       int        `json:"album_id"`
	IsStarred     bool       `json:"is_starred"`
	StarredAt     *time.Time `json:"starred_at"`
	IsHated       bool       `json:"is_hated"`
	Rating        int        `json:"rating"`
	PlayedCount   int        `json:"played_count"`
	LastPlayedAt  *time.Time `json:"last_played_at"`
	IsLocked      bool       `json:"is_locked"`
	SortOrder     int        `json:"sort_order"`
	APIKey        string     `json:"api_key"`
	CreatedAt     time.Time  `json:"created_at"`
	LastUpdatedAt *time.Time `json:"last_updated_at"`
	Tags          *string    `json:"tags"`
	Notes         *string    `json:"notes"`
	Description   *string    `json:"description"`
}

// UserSong is a user's relationship to a song.
type UserSong struct {
	ID            int        `json:"id"`
	UserID        int        `json:"user_id"`
	SongID        int        `json:"song_id"`
	IsStarred     bool       `json:"is_starred"`
	StarredAt     *time.Time `json:"starred_at"`
	IsHated       bool       `json:"is_hated"`
	Rating        int        `json:"rating"`
	PlayedCount   int        `json:"played_count"`
	LastPlayedAt  *time.Time `json:"last_played_at"`
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
	// MinRating and MaxRating bound the 0-5 star rating scale. Zero means
	// unrated.
	MinRating = 0
	MaxRating = 5
)

const (
	FieldRating = "rating"
)
