package schema

// CoreLibraryTable represents the 'core.library' table
type CoreLibraryTable struct {
	Table         string
	ID            string
	Name          string
	Path          string
	Type          string
	ArtistCount   string
	AlbumCount    string
	SongCount     string
	LastScanAt    string
	IsLocked      string
	SortOrder     string
	APIKey        string
	CreatedAt     string
	LastUpdatedAt string
	Tags          string
	Notes         string
	Description   string
}

// CoreLibrary is the schema definition for core.library
var CoreLibrary = CoreLibraryTable{
	Table:         "core.library",
	ID:            "id",
	Name:          "name",
	Path:          "path",
	Type:          "type",
	ArtistCount:   "artistcount",
	AlbumCount:    "albumcount",
	SongCount:     "songcount",
	LastScanAt:    "lastscanat",
	IsLocked:      "islocked",
	SortOrder:     "sortorder",
	APIKey:        "apikey",
	CreatedAt:     "createdat",
	LastUpdatedAt: "lastupdatedat",
	Tags:          "tags",
	Notes:         "notes",
	Description:   "description",
}

func (t CoreLibraryTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.Path, t.Type, t.ArtistCount, t.AlbumCount, t.SongCount, t.LastScanAt,
		t.IsLocked, t.SortOrder, t.APIKey, t.CreatedAt, t.LastUpdatedAt, t.Tags, t.Notes, t.Description,
	}
}
