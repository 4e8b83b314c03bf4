package user

import "time"

// User is an account on the server. The password is stored only as a bcrypt
// hash; capability flags gate what the (out-of-process) server lets the
// account do.
type User struct {
	ID                  int        `json:"id"`
	UserName            string     `json:"user_name"`
	UserNameNormalized  string     `json:"-"`
	Email               string     `json:"email"`
	EmailNormalized     string     `json:"-"`
	PasswordHash        string     `json:"-"`
	PublicKey           *string    `json:"public_key"`
	IsAdmin             bool       `json:"is_admin"`
	IsScrobblingEnabled bool       `json:"is_scrobbling_enabled"`
	HasSettingsRole     bool       `json:"has_settings_role"`
	HasDownloadRole     bool       `json:"has_download_role"`
	HasUploadRole       bool       `json:"has_upload_role"`
	HasPlaylistRole     bool       `json:"has_playlist_role"`
	HasStreamRole       bool       `json:"has_stream_role"`
	HasJukeboxRole      bool       `json:"has_jukebox_role"`
	HasShareRole        bool       `json:"has_share_role"`
	LastLoginAt         *time.Time `json:"last_login_at"`
	LastActivityAt      *time.Time `json:"last_activity_at"`
	SongsPlayed         int        `json:"songs_played"`
	ArtistsLiked        int        `json:"artists_liked"`
	ArtistsDisliked     int        `json:"artists_disliked"`
	AlbumsLiked         int        `json:"albums_liked"`
	AlbumsDisliked      int        `json:"albums_disliked"`
	SongsLiked          int        `json:"songs_liked"`
	SongsDisliked       int        `json:"songs_disliked"`
	IsLocked            bool       `json:"is_locked"`
	SortOrder           int        `json:"sort_order"`
	APIKey              string     `json:"api_key"`
	CreatedAt           time.Time  `json:"created_at"`
	LastUpdatedAt       *time.Time `json:"last_updated_at"`
	Tags                *string    `json:"tags"`
	Notes               *string    `json:"notes"`
	Description         *string    `json:"description"`
}

// Player is a client device fingerprint tied to one user. The same
// (client, useragent) pair is one recognized device, re-used across sessions.
type Player struct {
	ID              int        `json:"id"`
	UserID          int        `json:"user_id"`
	Name            string     `json:"name"`
	UserAgent       *string    `json:"user_agent"`
	Client          string     `json:"client"`
	IPAddress       *string    `json:"ip_address"`
	HostName        *string    `json:"host_name"`
	MaxBitRate      *int       `json:"max_bit_rate"`
	ScrobbleEnabled bool       `json:"scrobble_enabled"`
	TranscodingID   *string    `json:"transcoding_id"`
	LastSeenAt      *time.Time `json:"last_seen_at"`
	IsLocked        bool       `json:"is_locked"`
	SortOrder       int        `json:"sort_order"`
	APIKey          string     `json:"api_key"`
	CreatedAt       time.Time  `json:"created_at"`
	LastUpdatedAt   *time.Time `json:"last_updated_at"`
	Tags            *string    `json:"tags"`
	Notes           *string    `json:"notes"`
	Description     *string    `json:"description"`
}

// Counter names accepted by the atomic counter bump operation.
const (
	CounterSongsPlayed     = "songsplayed"
	CounterArtistsLiked    = "artistsliked"
	CounterArtistsDisliked = "artistsdisliked"
	CounterAlbumsLiked     = "albumsliked"
	CounterAlbumsDisliked  = "albumsdisliked"
	CounterSongsLiked      = "songsliked"
	CounterSongsDisliked   = "songsdisliked"
)

const (
	FieldUserName = "username"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldClient   = "client"
	FieldName     = "name"
)
