package schema

// LibraryUserSongTable represents the 'library.usersong' table
type LibraryUserSongTable struct {
	Table         string
	ID            string
	UserID        string
	SongID        string
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

// LibraryUserSong is the schema definition for library.usersong
var LibraryUserSong = LibraryUserSongTable{
	Table:         "library.usersong",
	ID:            "id",
	UserID:        "userid",
	SongID:        "songid",
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

func (t LibraryUserSongTable) Columns() []string {
	return []string{
		t.ID, t.UserID, t.SongID, t.IsStarred, t.StarredAt, t.IsHated, t.Rating,
		t.PlayedCount, t.LastPlayedAt, t.IsLocked, t.SortOrder, t.APIKey, t.CreatedAt,
		t.LastUpdatedAt, t.Tags, t.Notes, t.Description,
	}
}
