package schema

// UsersAccountTable represents the 'users.account' table
type UsersAccountTable struct {
	Table               string
	ID                  string
	UserName            string
	UserNameNormalized  string
	Email               string
	EmailNormalized     string
	PasswordHash        string
	PublicKey           string
	IsAdmin             string
	IsScrobblingEnabled string
	HasSettingsRole     string
	HasDownloadRole     string
	HasUploadRole       string
	HasPlaylistRole     string
	HasStreamRole       string
	HasJukeboxRole      string
	HasShareRole        string
	LastLoginAt         string
	LastActivityAt      string
	SongsPlayed         string
	ArtistsLiked        string
	ArtistsDisliked     string
	AlbumsLiked         string
	AlbumsDisliked      string
	SongsLiked          string
	SongsDisliked       string
	IsLocked            string
	SortOrder           string
	APIKey              string
	CreatedAt           string
	LastUpdatedAt       string
	Tags                string
	Notes               string
	Description         string
}

// UsersAccount is the schema definition for users.account
var UsersAccount = UsersAccountTable{
	Table:               "users.account",
	ID:                  "id",
	UserName:            "username",
	UserNameNormalized:  "usernamenormalized",
	Email:               "email",
	EmailNormalized:     "emailnormalized",
	PasswordHash:        "passwordhash",
	PublicKey:           "publickey",
	IsAdmin:             "isadmin",
	IsScrobblingEnabled: "isscrobblingenabled",
	HasSettingsRole:     "hassettingsrole",
	HasDownloadRole:     "hasdownloadrole",
	HasUploadRole:       "hasuploadrole",
	HasPlaylistRole:     "hasplaylistrole",
	HasStreamRole:       "hasstreamrole",
	HasJukeboxRole:      "hasjukeboxrole",
	HasShareRole:        "hassharerole",
	LastLoginAt:         "lastloginat",
	LastActivityAt:      "lastactivityat",
	SongsPlayed:         "songsplayed",
	ArtistsLiked:        "artistsliked",
	ArtistsDisliked:     "artistsdisliked",
	AlbumsLiked:         "albumsliked",
	AlbumsDisliked:      "albumsdisliked",
	SongsLiked:          "songsliked",
	SongsDisliked:       "songsdisliked",
	IsLocked:            "islocked",
	SortOrder:           "sortorder",
	APIKey:              "apikey",
	CreatedAt:           "createdat",
	LastUpdatedAt:       "lastupdatedat",
	Tags:                "tags",
	Notes:               "notes",
	Description:         "description",
}

func (t UsersAccountTable) Columns() []string {
	return []string{
		t.ID, t.UserName, t.UserNameNormalized, t.Email, t.EmailNormalized, t.PasswordHash,
		t.PublicKey, t.IsAdmin, t.IsScrobblingEnabled, t.HasSettingsRole, t.HasDownloadRole,
		t.HasUploadRole, t.HasPlaylistRole, t.HasStreamRole, t.HasJukeboxRole, t.HasShareRole,
		t.LastLoginAt, t.LastActivityAt, t.SongsPlayed, t.ArtistsLiked, t.ArtistsDisliked,
		t.AlbumsLiked, t.AlbumsDisliked, t.SongsLiked, t.SongsDisliked, t.IsLocked, t.SortOrder,
		t.APIKey, t.CreatedAt, t.LastUpdatedAt, t.Tags, t.Notes, t.Description,
	}
}
