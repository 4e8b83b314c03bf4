package schema

// LibraryBookmarkTable represents the 'library.bookmark' table
type LibraryBookmarkTable struct {
	Table         string
	ID            string
	UserID        string
	SongID        string
	Position      string
	Comment       string
	IsLocked      string
	SortOrder     string
	APIKey        string
	CreatedAt     string
	LastUpdatedAt string
	Tags          string
	Notes         string
	Description   string
}

// LibraryBookmark is the schema definition for library.bookmark
var LibraryBookmark = LibraryBookmarkTable{
	Table:         "library.bookmark",
	ID:            "id",
	UserID:        "userid",
	SongID:        "songid",
	Position:      "position",
	Comment:       "comment",
	IsLocked:      "islocked",
	SortOrder:     "sortorder",
	APIKey:        "apikey",
	CreatedAt:     "createdat",
	LastUpdatedAt: "lastupdatedat",
	Tags:          "tags",
	Notes:         "notes",
	Description:   "description",
}

func (t LibraryBookmarkTable) Columns() []string {
	return []string{
		t.ID, t.UserID, t.SongID, t.Position, t.Comment, t.IsLocked, t.SortOrder,
		t.APIKey, t.CreatedAt, t.LastUpdatedAt, t.Tags, t.Notes, t.Description,
	}
}
