package schema

// CoreAlbumTable represents the 'core.album' table
type CoreAlbumTable struct {
	Table                 string
	ID                    string
	ArtistID              string
	LibraryID             string
	Name                  string
	NameNormalized        string
	SortName              string
	AlternateNames        string
	AlbumStatus           string
	AlbumType             string
	MetaDataStatus        string
	OriginalReleaseDate   string
	ReleaseDate           string
	IsCompilation         string
	SongCount             string
	DiscCount             string
	Duration              string
	Genres                string
	Moods                 string
	Comment               string
	ReplayGain            string
	ReplayPeak            string
	Directory             string
	ImageCount            string
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

// CoreAlbum is the schema definition for core.album
var CoreAlbum = CoreAlbumTable{
	Table:                 "core.album",
	ID:                    "id",
	ArtistID:              "artistid",
	LibraryID:             "libraryid",
	Name:                  "name",
	NameNormalized:        "namenormalized",
	SortName:              "sortname",
	AlternateNames:        "alternatenames",
	AlbumStatus:           "albumstatus",
	AlbumType:             "albumtype",
	MetaDataStatus:        "metadatastatus",
	OriginalReleaseDate:   "originalreleasedate",
	ReleaseDate:           "releasedate",
	IsCompilation:         "iscompilation",
	SongCount:             "songcount",
	DiscCount:             "disccount",
	Duration:              "duration",
	Genres:                "genres",
	Moods:                 "moods",
	Comment:               "comment",
	ReplayGain:            "replaygain",
	ReplayPeak:            "replaypeak",
	Directory:             "directory",
	ImageCount:            "imagecount",
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

func (t CoreAlbumTable) Columns() []string {
	return []string{
		t.ID, t.ArtistID, t.LibraryID, t.Name, t.NameNormalized, t.SortName, t.AlternateNames,
		t.AlbumStatus, t.AlbumType, t.MetaDataStatus, t.OriginalReleaseDate, t.ReleaseDate,
		t.IsCompilation, t.SongCount, t.DiscCount, t.Duration, t.Genres, t.Moods, t.Comment,
		t.ReplayGain, t.ReplayPeak, t.Directory, t.ImageCount, t.MediaUniqueID, t.PlayedCount,
		t.LastPlayedAt, t.LastMetaDataUpdatedAt, t.CalculatedRating, t.MusicBrainzID, t.DiscogsID,
		t.SpotifyID, t.ItunesID, t.AmgID, t.WikiDataID, t.LastFmID, t.IsLocked, t.SortOrder,
		t.APIKey, t.CreatedAt, t.LastUpdatedAt, t.Tags, t.Notes, t.Description,
	}
}
