package schema

// CoreArtistTable represents the 'core.artist' table
type CoreArtistTable struct {
	Table                 string
	ID                    string
	LibraryID             string
	Name                  string
	NameNormalized        string
	SortName              string
	RealName              string
	AlternateNames        string
	Roles                 string
	Directory             string
	Biography             string
	AlbumCount            string
	SongCount             string
	ImageCount            string
	MetaDataStatus        string
	MediaUniqueID         string
	PlayedCount           string
	LastPlayedAt          string
	LastMetaDataUpdatedAt string
	CalculatedRating      string
	MusicBrainzID         string
	DiscogsID             string
	SpotifyID             string
	ItunesID              string
	AmgID                 string
	WikiDataID            string
	LastFmID              string
	IsLocked              string
	SortOrder             string
	APIKey                string
	CreatedAt             string
	LastUpdatedAt         string
	Tags                  string
	Notes                 string
	Description           string
}

// CoreArtist is the schema definition for core.artist
var CoreArtist = CoreArtistTable{
	Table:                 "core.artist",
	ID:                    "id",
	LibraryID:             "libraryid",
	Name:                  "name",
	NameNormalized:        "namenormalized",
	SortName:              "sortname",
	RealName:              "realname",
	AlternateNames:        "alternatenames",
	Roles:                 "roles",
	Directory:             "directory",
	Biography:             "biography",
	AlbumCount:            "albumcount",
	SongCount:             "songcount",
	ImageCount:            "imagecount",
	MetaDataStatus:        "metadatastatus",
	MediaUniqueID:         "mediauniqueid",
	PlayedCount:           "playedcount",
	LastPlayedAt:          "lastplayedat",
	LastMetaDataUpdatedAt: "lastmetadataupdatedat",
	CalculatedRating:      "calculatedrating",
	MusicBrainzID:         "musicbrainzid",
	DiscogsID:             "discogsid",
	SpotifyID:             "spotifyid",
	ItunesID:              "itunesid",
	AmgID:                 "amgid",
	WikiDataID:            "wikidataid",
	LastFmID:              "lastfmid",
	IsLocked:              "islocked",
	SortOrder:             "sortorder",
	APIKey:                "apikey",
	CreatedAt:             "createdat",
	LastUpdatedAt:         "lastupdatedat",
	Tags:                  "tags",
	Notes:                 "notes",
	Description:           "description",
}

func (t CoreArtistTable) Columns() []string {
	return []string{
		t.ID, t.LibraryID, t.Name, t.NameNormalized, t.SortName, t.RealName, t.AlternateNames,
		t.Roles, t.Directory, t.Biography, t.AlbumCount, t.SongCount, t.ImageCount,
		t.MetaDataStatus, t.MediaUniqueID, t.PlayedCount, t.LastPlayedAt, t.LastMetaDataUpdatedAt,
		t.CalculatedRating, t.MusicBrainzID, t.DiscogsID, t.SpotifyID, t.ItunesID, t.AmgID,
		t.WikiDataID, t.LastFmID, t.IsLocked, t.SortOrder, t.APIKey, t.CreatedAt, t.LastUpdatedAt,
		t.Tags, t.Notes, t.Description,
	}
}
