package schema

// LibraryShareTable represents the 'library.share' table
type LibraryShareTable struct {
	Table          string
	ID             string
	UserID         string
	SongIDs        string
	ExpiresAt      string
	IsDownloadable string
	LastVisitedAt  string
	VisitCount     string
	IsLocked       string
	SortOrder      string
	APIKey         string
	CreatedAt      string
	LastUpdatedAt  string
	Tags           string
	Notes          string
	Description    string
}

// LibraryShare is the schema definition for library.share
var LibraryShare = LibraryShareTable{
	Table:          "library.share",
	ID:             "id",
	UserID:         "userid",
	SongIDs:        "songids",
	ExpiresAt:      "expiresat",
	IsDownloadable: "isdownloadable",
	LastVisitedAt:  "lastvisitedat",
	VisitCount:     "visitcount",
	IsLocked:       "islocked",
	SortOrder:      "sortorder",
	APIKey:         "apikey",
	CreatedAt:      "createdat",
	LastUpdatedAt:  "lastupdatedat",
	Tags:           "tags",
	Notes:          "notes",
	Description:    "description",
}

func (t LibraryShareTable) Columns() []string {
	return []string{
		t.ID, t.UserID, t.SongIDs, t.ExpiresAt, t.IsDownloadable, t.LastVisitedAt, t.VisitCount,
		t.IsLocked, t.SortOrder, t.APIKey, t.CreatedAt, t.LastUpdatedAt, t.Tags, t.Notes, t.Description,
	}
}
