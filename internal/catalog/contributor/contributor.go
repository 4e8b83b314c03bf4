package contributor

import "time"

// Contributor is a credit line on an album, optionally scoped to one song.
// The credited party is either a cataloged artist (ArtistID set) or a
// free-text name (ContributorName set). Exactly one of the two is set. Storage
// keeps both as nullable columns for data compatibility; the service layer
// enforces the variant rule on every write.
type Contributor struct {
	ID                int        `json:"id"`
	Role              string     `json:"role"`
	SubRole           *string    `json:"sub_role"`
	ArtistID          *int       `json:"artist_id"`
	ContributorName   *string    `json:"contributor_name"`
	ContributorType   int        `json:"contributor_type"`
	MetaTagIdentifier int        `json:"meta_tag_identifier"`
	AlbumID           int        `json:"album_id"`
	SongID            *int       `json:"song_id"`
	IsLocked          bool       `json:"is_locked"`
	SortOrder         int        `json:"sort_order"`
	APIKey            string     `json:"api_key"`
	CreatedAt         time.Time  `json:"created_at"`
	LastUpdatedAt     *time.Time `json:"last_updated_at"`
	Tags              *string    `json:"tags"`
	Notes             *string    `json:"notes"`
	Description       *string    `json:"description"`
}

// Cataloged builds an album-level credit for a known artist.
func Cataloged(albumID, artistID int, role string, metaTag int) *Contributor {
	return &Contributor{
		Role:              role,
		ArtistID:          &artistID,
		MetaTagIdentifier: metaTag,
		AlbumID:           albumID,
	}
}

// FreeText builds an album-level credit for an un-cataloged name.
func FreeText(albumID int, name, role string, metaTag int) *Contributor {
	return &Contributor{
		Role:              role,
		ContributorName:   &name,
		MetaTagIdentifier: metaTag,
		AlbumID:           albumID,
	}
}

// ForSong scopes a credit to one track and returns it for chaining.
func (c *Contributor) ForSong(songID int) *Contributor {
	c.SongID = &songID
	return c
}

// IsCataloged reports whether the credit points at a cataloged artist.
func (c *Contributor) IsCataloged() bool {
	return c.ArtistID != nil
}

const (
	FieldRole            = "role"
	FieldArtistID        = "artistid"
	FieldContributorName = "contributorname"
)
