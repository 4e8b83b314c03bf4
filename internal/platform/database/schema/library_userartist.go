package schema

// LibraryUserArtistTable represents the 'library.userartist' table
type LibraryUserArtistTable struct {
	Table         string
	ID            string
	UserID        string
	ArtistID      string
	IsStarred     string
	StarredAt     string
	IsHated       string
	Rating        string
	IsLocked      string
	SortOrder     string
	APIKey        string
	CreatedAt     string
	LastUpdatedAt string
	Tags          string
	Notes         string
	Description   string
}

// LibraryUserArtist is the schema definition for library.userartist
var LibraryUserArtist = LibraryUserArtistTable{
	Table:         "library.userartist",
	ID:            "id",
	UserID:        "userid",
	ArtistID:      "artistid",
	IsStarred:     "isstarred",
	StarredAt:     "starredat",
	IsHated:       "ishated",
	Rating:        "rating",
	IsLocked:      "islocked",
	SortOrder:     "sortorder",
	APIKey:        "apikey",
	CreatedAt:     "createdat",
	LastUpdatedAt: "lastupdatedat",
	Tags:          "tags",
	Notes:         "notes",
	Description:   "description",
}

func (t LibraryUserArtistTable) Columns() []string {
	return []string{
		t.ID, t.UserID, t.ArtistID, t.IsStarred, t.StarredAt, t.IsHated, t.Rating,
		t.IsLocked, t.SortOrder, t.APIKey, t.CreatedAt, t.LastUpdatedAt, t.Tags, t.Notes, t.Description,
	}
}
