package schema

// LibraryScrobbleTable represents the 'library.scrobble' table
type LibraryScrobbleTable struct {
	Table         string
	ID            string
	UserID        string
	SongID        string
	ServiceURL    string
	PlayTimeInMs  string
	PlayerName    string
	ScrobbledAt   string
	IsLocked      string
	SortOrder     string
	APIKey        string
	CreatedAt     string
	LastUpdatedAt string
	Tags          string
	Notes         string
	Description   string
}

// LibraryScrobble is the schema definition for library.scrobble
var LibraryScrobble = LibraryScrobbleTable{
	Table:         "library.scrobble",
	ID:            "id",
	UserID:        "userid",
	SongID:        "songid",
	ServiceURL:    "serviceurl",
	PlayTimeInMs:  "playtimeinms",
	PlayerName:    "playername",
	ScrobbledAt:   "scrobbledat",
	IsLocked:      "islocked",
	SortOrder:     "sortorder",
	APIKey:        "apikey",
	CreatedAt:     "createdat",
	LastUpdatedAt: "lastupdatedat",
	Tags:          "tags",
	Notes:         "notes",
	Description:   "description",
}

func (t LibraryScrobbleTable) Columns() []string {
	return []string{
		t.ID, t.UserID, t.SongID, t.ServiceURL, t.PlayTimeInMs, t.PlayerName, t.ScrobbledAt,
		t.IsLocked, t.SortOrder, t.APIKey, t.CreatedAt, t.LastUpdatedAt, t.Tags, t.Notes, t.Description,
	}
}
