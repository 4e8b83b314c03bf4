package scanhistory

import "context"

type Repository interface {
	ListByLibrary(context context.Context, libraryID int, limit, offset int) ([]*ScanHistory, int, error)
	LatestForLibrary(context context.Context, libraryID int) (*ScanHistory, error)
	Append(context context.Context, h *ScanHistory) error
	PruneOlderThan(context context.Context, days int) (int, error)
}
