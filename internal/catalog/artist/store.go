package artist

import "context"

type Repository interface {
	ListArtists(context context.Context, f Filter, limit, offset int) ([]*Artist, int, error)
	GetArtist(context context.Context, id int) (*Artist, error)
	GetArtistByAPIKey(context context.Context, apiKey string) (*Artist, error)
	GetArtistByName(context context.Context, name string) (*Artist, error)
	GetArtistByExternalID(context context.Context, column, value string) (*Artist, error)
	FindByNameNormalized(context context.Context, nameNormalized string) ([]*Artist, error)
	CreateArtist(context context.Context, a *Artist) error
	UpdateArtist(context context.Context, a *Artist) error
	DeleteArtist(context context.Context, id int) error
	IncrementPlayedCount(context context.Context, id int) error
	RecomputeCounters(context context.Context, id int) error
}
