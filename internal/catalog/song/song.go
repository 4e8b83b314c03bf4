package song

import "time"

// Song represents one playable media file on an album disc.
type Song struct {
	ID                    int        `json:"id"`
	AlbumDiscID           int        `json:"album_disc_id"`
	Title                 string     `json:"title"`
	TitleNormalized       string     `json:"title_normalized"`
	TitleSort             *string    `json:"title_sort"`
	AlternateNames        *string    `json:"alternate_names"`
	SongNumber            int        `json:"song_number"`
	FileName              string     `json:"file_name"`
	FileSize              int64      `json:"file_size"`
	FileHash              string     `json:"file_hash"`
	Lyrics                *string    `json:"lyrics"`
	PartTitles            *string    `json:"part_titles"`
	Genres                []string   `json:"genres"`
	Moods                 []string   `json:"moods"`
	Comment               *string    `json:"comment"`
	Duration              float64    `json:"duration"`
	SamplingRate          int        `json:"sampling_rate"`
	BitRate               int        `json:"bit_rate"`
	BitDepth              int        `json:"bit_depth"`
	BPM                   int        `json:"bpm"`
	ContentType           string     `json:"content_type"`
	ChannelCount          *int       `json:"channel_count"`
	IsVbr                 bool       `json:"is_vbr"`
	ReplayGain            *float64   `json:"replay_gain"`
	ReplayPeak            *float64   `json:"replay_peak"`
	ImageCount            *int       `json:"image_count"`
	PlayedCount           int        `json:"played_count"`
	LastPlayedAt          *time.Time `json:"last_played_at"`
	LastMetaDataUpdatedAt *time.Time `json:"last_meta_data_updated_at"`
	MetaDataStatus        int        `json:"meta_data_status"`
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

// Filter holds the parameters for a paginated song search.
type Filter struct {
	AlbumDiscID int // 0 means all discs
	Query       string
}

// Lineage is a song's position in the catalog hierarchy, resolved in one
// query for callers that need to touch the album and artist too.
type Lineage struct {
	SongID   int
	DiscID   int
	AlbumID  int
	ArtistID int
}

const (
	FieldTitle      = "title"
	FieldSongNumber = "songnumber"
	FieldFileName   = "filename"
	FieldFileHash   = "filehash"
	FieldDuration   = "duration"
)
