// Package scanhistory keeps the append-only record of library scan runs.
// Rows are written once when a scan finishes and never updated.
package scanhistory

import "time"

type ScanHistory struct {
	ID                int       `json:"id"`
	LibraryID         int       `json:"library_id"`
	ForArtistID       *int      `json:"for_artist_id"`
	ForAlbumID        *int      `json:"for_album_id"`
	FoundArtistsCount int       `json:"found_artists_count"`
	FoundAlbumsCount  int       `json:"found_albums_count"`
	FoundSongsCount   int       `json:"found_songs_count"`
	DurationInMs      int64     `json:"duration_in_ms"`
	CreatedAt         time.Time `json:"created_at"`
}

const (
	FieldDurationInMs = "durationinms"
)
