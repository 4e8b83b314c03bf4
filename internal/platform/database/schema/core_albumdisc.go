package schema

// CoreAlbumDiscTable represents the 'core.albumdisc' table
type CoreAlbumDiscTable struct {
	Table      string
	ID         string
	AlbumID    string
	DiscNumber string
	SongCount  string
	Title      string
}

// CoreAlbumDisc is the schema definition for core.albumdisc
var CoreAlbumDisc = CoreAlbumDiscTable{
	Table:      "core.albumdisc",
	ID:         "id",
	AlbumID:    "albumid",
	DiscNumber: "discnumber",
	SongCount:  "songcount",
	Title:      "title",
}

func (t CoreAlbumDiscTable) Columns() []string {
	return []string{t.ID, t.AlbumID, t.DiscNumber, t.SongCount, t.Title}
}
