package schema

// SystemSettingTable represents the 'system.setting' table
type SystemSettingTable struct {
	Table         string
	ID            string
	Key           string
	Value         string
	Comment       string
	Category      string
	IsLocked      string
	SortOrder     string
	APIKey        string
	CreatedAt     string
	LastUpdatedAt string
	Tags          string
	Notes         string
	Description   string
}

// SystemSetting is the schema definition for system.setting
var SystemSetting = SystemSettingTable{
	Table:         "system.setting",
	ID:            "id",
	Key:           "key",
	Value:         "value",
	Comment:       "comment",
	Category:      "category",
	IsLocked:      "islocked",
	SortOrder:     "sortorder",
	APIKey:        "apikey",
	CreatedAt:     "createdat",
	LastUpdatedAt: "lastupdatedat",
	Tags:          "tags",
	Notes:         "notes",
	Description:   "description",
}

func (t SystemSettingTable) Columns() []string {
	return []string{
		t.ID, t.Key, t.Value, t.Comment, t.Category, t.IsLocked, t.SortOrder, t.APIKey,
		t.CreatedAt, t.LastUpdatedAt, t.Tags, t.Notes, t.Description,
	}
}
