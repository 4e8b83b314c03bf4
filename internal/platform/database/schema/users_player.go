package schema

// UsersPlayerTable represents the 'users.player' table
type UsersPlayerTable struct {
	Table           string
	ID              string
	UserID          string
	Name            string
	UserAgent       string
	Client          string
	IPAddress       string
	HostName        string
	MaxBitRate      string
	ScrobbleEnabled string
	TranscodingID   string
	LastSeenAt      string
	IsLocked        string
	SortOrder       string
	APIKey          string
	CreatedAt       string
	LastUpdatedAt   string
	Tags            string
	Notes           string
	Description     string
}

// UsersPlayer is the schema definition for users.player
var UsersPlayer = UsersPlayerTable{
	Table:           "users.player",
	ID:              "id",
	UserID:          "userid",
	Name:            "name",
	UserAgent:       "useragent",
	Client:          "client",
	IPAddress:       "ipaddress",
	HostName:        "hostname",
	MaxBitRate:      "maxbitrate",
	ScrobbleEnabled: "scrobbleenabled",
	TranscodingID:   "transcodingid",
	LastSeenAt:      "lastseenat",
	IsLocked:        "islocked",
	SortOrder:       "sortorder",
	APIKey:          "apikey",
	CreatedAt:       "createdat",
	LastUpdatedAt:   "lastupdatedat",
	Tags:            "tags",
	Notes:           "notes",
	Description:     "description",
}

func (t UsersPlayerTable) Columns() []string {
	return []string{
		t.ID, t.UserID, t.Name, t.UserAgent, t.Client, t.IPAddress, t.HostName, t.MaxBitRate,
		t.ScrobbleEnabled, t.TranscodingID, t.LastSeenAt, t.IsLocked, t.SortOrder, t.APIKey,
		t.CreatedAt, t.LastUpdatedAt, t.Tags, t.Notes, t.Description,
	}
}
