package contributor

import "context"

type Repository interface {
	ListByAlbum(context context.Context, albumID int) ([]*Contributor, error)
	ListBySong(context context.Context, songID int) ([]*Contributor, error)
	GetContributor(context context.Context, id int) (*Contributor, error)
	CreateContributor(context context.Context, c *Contributor) error
	UpdateContributor(context context.Context, c *Contributor) error
	DeleteContributor(context context.Context, id int) error
	DeleteByAlbum(context context.Context, albumID int) error
}
