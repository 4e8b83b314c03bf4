package schema

// LibraryPlayQueueTable represents the 'library.playqueue' table
type LibraryPlayQueueTable struct {
	Table         string
	ID            string
	UserID        string
	SongID        string
	SongAPIKey    string
	Position      string
	IsCurrentSong string
	ChangedBy     string
	IsLocked      string
	SortOrder     string
	APIKey        string
	CreatedAt     string
	LastUpdatedAt string
	Tags          string
	Notes         string
	Description   string
}

// LibraryPlayQueue is the schema definition for library.playqueue
var LibraryPlayQueue = LibraryPlayQueueTable{
	Table:         "library.playqueue",
	ID:            "id",
	UserID:        "userid",
	SongID:        "songid",
	SongAPIKey:    "songapikey",
	Position:      "position",
	IsCurrentSong: "iscurrentsong",
	ChangedBy:     "changedby",
	IsLocked:      "islocked",
	SortOrder:     "sortorder",
	APIKey:        "apikey",
	CreatedAt:     "createdat",
	LastUpdatedAt: "lastupdatedat",
	Tags:          "tags",
	Notes:         "notes",
	Description:   "description",
}

func (t LibraryPlayQueueTable) Columns() []string {
	return []string{
		t.ID, t.UserID, t.SongID, t.SongAPIKey, t.Position, t.IsCurrentSong, t.ChangedBy,
		t.IsLocked, t.SortOrder, t.APIKey, t.CreatedAt, t.LastUpdatedAt, t.Tags, t.Notes, t.Description,
	}
}
