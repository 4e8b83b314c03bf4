package song

import "context"

type Repository interface {
	ListSongs(context context.Context, f Filter, limit, offset int) ([]*Song, int, error)
	ListSongsByDisc(context context.Context, albumDiscID int) ([]*Song, error)
	GetSong(context context.Context, id int) (*Song, error)
	GetSongByAPIKey(context context.Context, apiKey string) (*Song, error)
	GetSongByFileHash(context context.Context, fileHash string) (*Song, error)
	CreateSong(context context.Context, s *Song) error
	UpdateSong(context context.Context, s *Song) error
	DeleteSong(context context.Context, id int) error
	IncrementPlayedCount(context context.Context, id int) error
	GetLineage(context context.Context, id int) (*Lineage, error)
}
