package schema

// LibraryPlaylistTable represents the 'library.playlist' table
type LibraryPlaylistTable struct {
	Table         string
	ID            string
	UserID        string
	Name          string
	Comment       string
	IsPublic      string
	SongCount     string
	Duration      string
	IsLocked      string
	SortOrder     string
	APIKey        string
	CreatedAt     string
	LastUpdatedAt string
	Tags          string
	Notes         string
	Description   string
}

// LibraryPlaylist is the schema definition for library.playlist
var LibraryPlaylist = LibraryPlaylistTable{
	Table:         "library.playlist",
	ID:            "id",
	UserID:        "userid",
	Name:          "name",
	Comment:       "comment",
	IsPublic:      "ispublic",
	SongCount:     "songcount",
	Duration:      "duration",
	IsLocked:      "islocked",
	SortOrder:     "sortorder",
	APIKey:        "apikey",
	CreatedAt:     "createdat",
	LastUpdatedAt: "lastupdatedat",
	Tags:          "tags",
	Notes:         "notes",
	Description:   "description",
}

func (t LibraryPlaylistTable) Columns() []string {
	return []string{
		t.ID, t.UserID, t.Name, t.Comment, t.IsPublic, t.SongCount, t.Duration,
		t.IsLocked, t.SortOrder, t.APIKey, t.CreatedAt, t.LastUpdatedAt, t.Tags, t.Notes, t.Description,
	}
}
