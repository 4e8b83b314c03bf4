package radiostation

import "context"

type Repository interface {
	ListStations(context context.Context) ([]*RadioStation, error)
	GetStation(context context.Context, id int) (*RadioStation, error)
	GetStationByAPIKey(context context.Context, apiKey string) (*RadioStation, error)
	CreateStation(context context.Context, r *RadioStation) error
	UpdateStation(context context.Context, r *RadioStation) error
	DeleteStation(context context.Context, id int) error
}
