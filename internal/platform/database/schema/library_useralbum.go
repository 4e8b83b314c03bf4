package schema

// LibraryUserAlbumTable represents the 'library.useralbum' table
type LibraryUserAlbumTable struct {
	Table         string
	ID            string
	UserID        string
	AlbumID       string
	IsStarred     string
	StarredAt     string
	IsHated       string
	Rating        string
	PlayedCount   string
	LastPlayedAt  string
	IsLocked      string
	SortOrder     string
	APIKey        string
	CreatedAt     string
	LastUpdatedAt string
	Tags          string
	Notes         string
	Description   string
}

// LibraryUserAlbum is the schema definition for library.useralbum
var LibraryUserAlbum = LibraryUserAlbumTable{
	Table:         "library.useralbum",
	ID:            "id",
	UserID:        "userid",
	AlbumID:       "albumid",
	IsStarred:     "isstarred",
	StarredAt:     "starredat",
	IsHated:       "ishated",
	Rating:        "rating",
	PlayedCount:   "playedcount",
	LastPlayedAt:  "lastplayedat",
	IsLocked:      "islocked",
	SortOrder:     "sortorder",
	APIKey:        "apikey",
	CreatedAt:     "createdat",
	LastUpdatedAt: "lastupdatedat",
	Tags:          "tags",
	Notes:         "notes",
	Description:   "description",
}

func (t LibraryUserAlbumTable) Columns() []string {
	return []string{
		t.ID, t.UserID, t.AlbumID, t.IsStarred, t.StarredAt, t.IsHated, t.Rating,
		t.PlayedCount, t.LastPlayedAt, t.IsLocked, t.SortOrder, t.APIKey, t.CreatedAt,
		t.LastUpdatedAt, t.Tags, t.Notes, t.Description,
	}
}
