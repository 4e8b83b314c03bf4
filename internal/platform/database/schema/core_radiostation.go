package schema

// CoreRadioStationTable represents the 'core.radiostation' table
type CoreRadioStationTable struct {
	Table         string
	ID            string
	Name          string
	StreamURL     string
	HomePageURL   string
	IsLocked      string
	SortOrder     string
	APIKey        string
	CreatedAt     string
	LastUpdatedAt string
	Tags          string
	Notes         string
	Description   string
}

// CoreRadioStation is the schema definition for core.radiostation
var CoreRadioStation = CoreRadioStationTable{
	Table:         "core.radiostation",
	ID:            "id",
	Name:          "name",
	StreamURL:     "streamurl",
	HomePageURL:   "homepageurl",
	IsLocked:      "islocked",
	SortOrder:     "sortorder",
	APIKey:        "apikey",
	CreatedAt:     "createdat",
	LastUpdatedAt: "lastupdatedat",
	Tags:          "tags",
	Notes:         "notes",
	Description:   "description",
}

func (t CoreRadioStationTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.StreamURL, t.HomePageURL, t.IsLocked, t.SortOrder, t.APIKey,
		t.CreatedAt, t.LastUpdatedAt, t.Tags, t.Notes, t.Description,
	}
}
