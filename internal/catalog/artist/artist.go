package artist

import "time"

// Artist represents a cataloged performer owning albums within a library.
type Artist struct {
	ID                    int        `json:"id"`
	LibraryID             int        `json:"library_id"`
	Name                  string     `json:"name"`
	NameNormalized        string     `json:"name_normalized"`
	SortName              *string    `json:"sort_name"`
	RealName              *string    `json:"real_name"`
	AlternateNames        *string    `json:"alternate_names"`
	Roles                 *string    `json:"roles"`
	Directory             string     `json:"directory"`
	Biography             *string    `json:"biography"`
	AlbumCount            int        `json:"album_count"`
	SongCount             int        `json:"song_count"`
	ImageCount            *int       `json:"image_count"`
	MetaDataStatus        int        `json:"meta_data_status"`
	MediaUniqueID         int64      `json:"media_unique_id"`
	PlayedCount           int        `json:"played_count"`
	LastPlayedAt          *time.Time `json:"last_played_at"`
	LastMetaDataUpdatedAt *time.Time `json:"last_meta_data_updated_at"`
	CalculatedRating      float64    `json:"calculated_rating"`
	MusicBrainzID         *string    `json:"music_brainz_id"`
	DiscogsID             *string    `json:"discogs_id"`
	SpotifyID             *string    `json:"spotify_id"`
	ItunesID              *string    `json:"itunes_id"`
	AmgID                 *string    `json:"amg_id"`
	WikiDataID            *string    `json:"wiki_data_id"`
	LastFmID              *string    `json:"last_fm_id"`
	IsLocked              bool       `json:"is_locked"`
	SortOrder             int        `json:"sort_order"`
	APIKey                string     `json:"api_key"`
	CreatedAt             time.Time  `json:"created_at"`
	LastUpdatedAt         *time.Time `json:"last_updated_at"`
	Tags                  *string    `json:"tags"`
	Notes                 *string    `json:"notes"`
	Description           *string    `json:"description"`
}

// UpsertResult reports what an upsert did and any normalized-name collisions
// found along the way. Candidates are surfaced, never auto-merged.
type UpsertResult struct {
	Artist     *Artist
	Created    bool
	Candidates []*Artist
}

// Filter holds the parameters for a paginated artist search.
type Filter struct {
	LibraryID int    // 0 means all libraries
	Query     string // matched against name and alternatenames
}

const (
	FieldName      = "name"
	FieldDirectory = "directory"
)
