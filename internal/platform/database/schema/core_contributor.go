package schema

// CoreContributorTable represents the 'core.contributor' table
type CoreContributorTable struct {
	Table             string
	ID                string
	Role              string
	SubRole           string
	ArtistID          string
	ContributorName   string
	ContributorType   string
	MetaTagIdentifier string
	AlbumID           string
	SongID            string
	IsLocked          string
	SortOrder         string
	APIKey            string
	CreatedAt         string
	LastUpdatedAt     string
	Tags              string
	Notes             string
	Description       string
}

// CoreContributor is the schema definition for core.contributor
var CoreContributor = CoreContributorTable{
	Table:             "core.contributor",
	ID:                "id",
	Role:              "role",
	SubRole:           "subrole",
	ArtistID:          "artistid",
	ContributorName:   "contributorname",
	ContributorType:   "contributortype",
	MetaTagIdentifier: "metatagidentifier",
	AlbumID:           "albumid",
	SongID:            "songid",
	IsLocked:          "islocked",
	SortOrder:         "sortorder",
	APIKey:            "apikey",
	CreatedAt:         "createdat",
	LastUpdatedAt:     "lastupdatedat",
	Tags:              "tags",
	Notes:             "notes",
	Description:       "description",
}

func (t CoreContributorTable) Columns() []string {
	return []string{
		t.ID, t.Role, t.SubRole, t.ArtistID, t.ContributorName, t.ContributorType,
		t.MetaTagIdentifier, t.AlbumID, t.SongID, t.IsLocked, t.SortOrder, t.APIKey,
		t.CreatedAt, t.LastUpdatedAt, t.Tags, t.Notes, t.Description,
	}
}
