package schema

// SystemLibraryScanHistoryTable represents the 'system.libraryscanhistory' table
type SystemLibraryScanHistoryTable struct {
	Table             string
	ID                string
	LibraryID         string
	ForArtistID       string
	ForAlbumID        string
	FoundArtistsCount string
	FoundAlbumsCount  string
	FoundSongsCount   string
	DurationInMs      string
	CreatedAt         string
}

// SystemLibraryScanHistory is the schema definition for system.libraryscanhistory
var SystemLibraryScanHistory = SystemLibraryScanHistoryTable{
	Table:             "system.libraryscanhistory",
	ID:                "id",
	LibraryID:         "libraryid",
	ForArtistID:       "forartistid",
	ForAlbumID:        "foralbumid",
	FoundArtistsCount: "foundartistscount",
	FoundAlbumsCount:  "foundalbumscount",
	FoundSongsCount:   "foundsongscount",
	DurationInMs:      "durationinms",
	CreatedAt:         "createdat",
}

func (t SystemLibraryScanHistoryTable) Columns() []string {
	return []string{
		t.ID, t.LibraryID, t.ForArtistID, t.ForAlbumID, t.FoundArtistsCount,
		t.FoundAlbumsCount, t.FoundSongsCount, t.DurationInMs, t.CreatedAt,
	}
}
