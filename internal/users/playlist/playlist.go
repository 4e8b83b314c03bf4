// Package playlist manages user playlists and their ordered song membership.
//
// Playlist names are unique per owner, never globally: two users can both
// have a "Favorites". Membership rows carry an explicit playlistorder; order
// is never inferred from insertion time.
package playlist

import "time"

type Playlist struct {
	ID            int        `json:"id"`
	UserID        int        `json:"user_id"`
	Name          string     `json:"name"`
	Comment       *string    `json:"comment"`
	IsPublic      bool       `json:"is_public"`
	SongCount     int        `json:"song_count"`
	Duration      float64    `json:"duration"`
	IsLocked      bool       `json:"is_locked"`
	SortOrder     int        `json:"sort_order"`
	APIKey        string     `json:"api_key"`
	CreatedAt     time.Time  `json:"created_at"`
	LastUpdatedAt *time.Time `json:"last_updated_at"`
	Tags          *string    `json:"tags"`
	Notes         *string    `json:"notes"`
	Description   *string    `json:"description"`
}

// PlaylistSong is a membership row. The (song, playlist) pair is the primary
// key, so a song appears in a playlist at most once.
type PlaylistSong struct {
	SongID        int        `json:"song_id"`
	PlaylistID    int        `json:"playlist_id"`
	SongAPIKey    string     `json:"song_api_key"`
	PlaylistOrder int        `json:"playlist_order"`
	CreatedAt     time.Time  `json:"created_at"`
	LastUpdatedAt *time.Time `json:"last_updated_at"`
}

const (
	FieldName    = "name"
	FieldComment = "comment"
)
