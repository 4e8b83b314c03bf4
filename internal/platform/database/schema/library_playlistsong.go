package schema

// LibraryPlaylistSongTable represents the 'library.playlistsong' table
type LibraryPlaylistSongTable struct {
	Table         string
	SongID        string
	PlaylistID    string
	SongAPIKey    string
	PlaylistOrder string
	CreatedAt     string
	LastUpdatedAt string
}

// LibraryPlaylistSong is the schema definition for library.playlistsong
var LibraryPlaylistSong = LibraryPlaylistSongTable{
	Table:         "library.playlistsong",
	SongID:        "songid",
	PlaylistID:    "playlistid",
	SongAPIKey:    "songapikey",
	PlaylistOrder: "playlistorder",
	CreatedAt:     "createdat",
	LastUpdatedAt: "lastupdatedat",
}

func (t LibraryPlaylistSongTable) Columns() []string {
	return []string{t.SongID, t.PlaylistID, t.SongAPIKey, t.PlaylistOrder, t.CreatedAt, t.LastUpdatedAt}
}
