package schema

// CoreSongTable represents the 'core.song' table
type CoreSongTable struct {
	Table                 string
	ID                    string
	AlbumDiscID           string
	Title                 string
	TitleNormalized       string
	TitleSort             string
	AlternateNames        string
	SongNumber            string
	FileName              string
	FileSize              string
	FileHash              string
	Lyrics                string
	PartTitles            string
	Genres                string
	Moods                 string
	Comment               string
	Duration              string
	SamplingRate          string
	BitRate               string
	BitDepth              string
	BPM                   string
	ContentType           string
	ChannelCount          string
	IsVbr                 string
	ReplayGain            string
	ReplayPeak            string
	ImageCount            string
	PlayedCount           string
	LastPlayedAt          string
	LastMetaDataUpdatedAt string
	MetaDataStatus        string
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

// CoreSong is the schema definition for core.song
var CoreSong = CoreSongTable{
	Table:                 "core.song",
	ID:                    "id",
	AlbumDiscID:           "albumdiscid",
	Title:                 "title",
	TitleNormalized:       "titlenormalized",
	TitleSort:             "titlesort",
	AlternateNames:        "alternatenames",
	SongNumber:            "songnumber",
	FileName:              "filename",
	FileSize:              "filesize",
	FileHash:              "filehash",
	Lyrics:                "lyrics",
	PartTitles:            "parttitles",
	Genres:                "genres",
	Moods:                 "moods",
	Comment:               "comment",
	Duration:              "duration",
	SamplingRate:          "samplingrate",
	BitRate:               "bitrate",
	BitDepth:              "bitdepth",
	BPM:                   "bpm",
	ContentType:           "contenttype",
	ChannelCount:          "channelcount",
	IsVbr:                 "isvbr",
	ReplayGain:            "replaygain",
	ReplayPeak:            "replaypeak",
	ImageCount:            "imagecount",
	PlayedCount:           "playedcount",
	LastPlayedAt:          "lastplayedat",
	LastMetaDataUpdatedAt: "lastmetadataupdatedat",
	MetaDataStatus:        "metadatastatus",
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

func (t CoreSongTable) Columns() []string {
	return []string{
		t.ID, t.AlbumDiscID, t.Title, t.TitleNormalized, t.TitleSort, t.AlternateNames,
		t.SongNumber, t.FileName, t.FileSize, t.FileHash, t.Lyrics, t.PartTitles, t.Genres,
		t.Moods, t.Comment, t.Duration, t.SamplingRate, t.BitRate, t.BitDepth, t.BPM,
		t.ContentType, t.ChannelCount, t.IsVbr, t.ReplayGain, t.ReplayPeak, t.ImageCount,
		t.PlayedCount, t.LastPlayedAt, t.LastMetaDataUpdatedAt, t.MetaDataStatus,
		t.CalculatedRating, t.MusicBrainzID, t.DiscogsID, t.SpotifyID, t.ItunesID, t.AmgID,
		t.WikiDataID, t.LastFmID, t.IsLocked, t.SortOrder, t.APIKey, t.CreatedAt,
		t.LastUpdatedAt, t.Tags, t.Notes, t.Description,
	}
}
