package album

import "context"

type Repository interface {
	ListAlbums(context context.Context, f Filter, limit, offset int) ([]*Album, int, error)
	GetAlbum(context context.Context, id int) (*Album, error)
	GetAlbumByAPIKey(context context.Context, apiKey string) (*Album, error)
	GetAlbumByName(context context.Context, artistID int, name string) (*Album, error)
	GetAlbumByExternalID(context context.Context, column, value string) (*Album, error)
	CreateAlbum(context context.Context, a *Album) error
	UpdateAlbum(context context.Context, a *Album) error
	DeleteAlbum(context context.Context, id int) error
	IncrementPlayedCount(context context.Context, id int) error
	RecomputeCounters(context context.Context, id int) error

	ListDiscs(context context.Context, albumID int) ([]*Disc, error)
	GetDisc(context context.Context, id int) (*Disc, error)
	CreateDisc(context context.Context, d *Disc) error
	UpdateDisc(context context.Context, d *Disc) error
	DeleteDisc(context context.Context, id int) error
}
