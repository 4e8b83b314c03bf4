package library

import "context"

type Repository interface {
	ListLibraries(context context.Context) ([]*Library, error)
	GetLibrary(context context.Context, id int) (*Library, error)
	GetLibraryByAPIKey(context context.Context, apiKey string) (*Library, error)
	GetLibraryByType(context context.Context, t Type) (*Library, error)
	CreateLibrary(context context.Context, l *Library) error
	UpdateLibrary(context context.Context, l *Library) error
	UpdateScanStats(context context.Context, id int, stats ScanStats) error
	DeleteLibrary(context context.Context, id int) error
}
