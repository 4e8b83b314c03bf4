package album

import "time"

// Status tracks an album's review state as it moves from inbound scan to the
// storage library.
type Status int

const (
	StatusInvalid  Status = 0
	StatusNew      Status = 1
	StatusOk       Status = 2
	StatusReviewed Status = 3
)

// AlbumType is the release category (album, EP, single...).
type AlbumType int

const (
	TypeNotSet AlbumType = 0
	TypeAlbum  AlbumType = 1
	TypeEP     AlbumType = 2
	TypeSingle AlbumType = 3
)

// Album represents one release by an artist inside a library.
type Album struct {
	ID                    int        `json:"id"`
	ArtistID              int        `json:"artist_id"`
	LibraryID             int        `json:"library_id"`
	Name                  string     `json:"name"`
	NameNormalized        string     `json:"name_normalized"`
	SortName              *string    `json:"sort_name"`
	AlternateNames        *string    `json:"alternate_names"`
	AlbumStatus           Status     `json:"album_status"`
	AlbumType             AlbumType  `json:"album_type"`
	MetaDataStatus        int        `json:"meta_data_status"`
	OriginalReleaseDate   *time.Time `json:"original_release_date"`
	ReleaseDate           time.Time  `json:"release_date"`
	IsCompilation         bool       `json:"is_compilation"`
	SongCount             *int16     `json:"song_count"`
	DiscCount             *int16     `json:"disc_count"`
	Duration              float64    `json:"duration"`
	Genres                []string   `json:"genres"`
	Moods                 []string   `json:"moods"`
	Comment               *string    `json:"comment"`
	ReplayGain            *float64   `json:"replay_gain"`
	ReplayPeak            *float64   `json:"replay_peak"`
	Directory             string     `json:"directory"`
	ImageCount            *int       `json:"image_count"`
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

// Disc is one physical disc of an album. DiscNumber is unique within the
// album; the surrogate ID is what songs point at.
type Disc struct {
	ID         int     `json:"id"`
	AlbumID    int     `json:"album_id"`
	DiscNumber int16   `json:"disc_number"`
	SongCount  *int16  `json:"song_count"`
	Title      *string `json:"title"`
}

// UpsertResult reports what an upsert did.
type UpsertResult struct {
	Album   *Album
	Created bool
}

// Filter holds the parameters for a paginated album search.
type Filter struct {
	ArtistID  int // 0 means all artists
	LibraryID int // 0 means all libraries
	Query     string
}

const (
	FieldName        = "name"
	FieldDirectory   = "directory"
	FieldReleaseDate = "releasedate"
	FieldDiscNumber  = "discnumber"
)
