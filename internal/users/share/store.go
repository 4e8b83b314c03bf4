package share

import "context"

type Repository interface {
	ListShares(context context.Context, userID int) ([]*Share, error)
	GetShare(context context.Context, id int) (*Share, error)
	GetShareByAPIKey(context context.Context, apiKey string) (*Share, error)
	CreateShare(context context.Context, s *Share) error
	UpdateShare(context context.Context, s *Share) error
	RecordVisit(context context.Context, id int) error
	DeleteShare(context context.Context, id int) error
	DeleteExpired(context context.Context) (int, error)
}
