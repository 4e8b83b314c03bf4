// Package scrobble records completed song plays, locally and on behalf of
// external scrobbling services.
//
// A scrobble is identified by its natural key (user, service url, song, play
// time in ms). Replayed submissions (retries from flaky clients, duplicate
// deliveries from upstream services) are absorbed silently instead of
// producing duplicate rows. The empty service url stands for the local
// service.
package scrobble

import "time"

type Scrobble struct {
	ID            int        `json:"id"`
	UserID        int        `json:"user_id"`
	SongID        int        `json:"song_id"`
	ServiceURL    string     `json:"service_url"`
	PlayTimeInMs  int64      `json:"play_time_in_ms"`
	PlayerName    *string    `json:"player_name"`
	ScrobbledAt   time.Time  `json:"scrobbled_at"`
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
	FieldPlayTimeInMs = "playtimeinms"
	FieldServiceURL   = "serviceurl"
)
