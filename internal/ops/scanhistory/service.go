package scanhistory

import (
	"context"
	"log/slog"

	"github.com/sphildreth/melodee-sub003/internal/catalog/library"
	"github.com/sphildreth/melodee-sub003/internal/platform/apperr"
)

// StatsSink receives a finished scan's counts for the library row itself.
// The catalog library service satisfies this.
type StatsSink interface {
	RecordScanStats(context context.Context, id int, stats library.ScanStats) error
}

type Service struct {
	repo   Repository
	stats  StatsSink
	logger *slog.Logger
}

func NewService(repo Repository, stats StatsSink, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		stats:  stats,
		logger: logger,
	}
}

func (service *Service) ListByLibrary(context context.Context, libraryID int, limit, offset int) ([]*ScanHistory, int, error) {
	return service.repo.ListByLibrary(context, libraryID, limit, offset)
}

func (service *Service) LatestForLibrary(context context.Context, libraryID int) (*ScanHistory, error) {
	return service.repo.LatestForLibrary(context, libraryID)
}

// RecordScan appends the scan record and writes the counts back onto the
// library row.
func (service *Service) RecordScan(context context.Context, h *ScanHistory) error {
	if h.DurationInMs < 0 {
		return apperr.InvalidRange(FieldDurationInMs, "must not be negative")
	}

	if err := service.repo.Append(context, h); err != nil {
		return err
	}

	stats := library.ScanStats{
		ArtistCount: h.FoundArtistsCount,
		AlbumCount:  h.FoundAlbumsCount,
		SongCount:   h.FoundSongsCount,
		ScannedAt:   h.CreatedAt,
	}
	if err := service.stats.RecordScanStats(context, h.LibraryID, stats); err != nil {
		service.logger.Error("library_scan_stats_failed", slog.Int("library_id", h.LibraryID), slog.Any("error", err))
	}

	service.logger.Info("scan_recorded",
		slog.Int("library_id", h.LibraryID),
		slog.Int("artists", h.FoundArtistsCount),
		slog.Int("albums", h.FoundAlbumsCount),
		slog.Int("songs", h.FoundSongsCount),
		slog.Int64("duration_ms", h.DurationInMs))
	return nil
}

// Prune trims scan records beyond the retention window.
func (service *Service) Prune(context context.Context, retentionDays int) (int, error) {
	if retentionDays <= 0 {
		return 0, apperr.InvalidRange("retention_days", "must be positive")
	}

	removed, err := service.repo.PruneOlderThan(context, retentionDays)
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		service.logger.Info("scan_history_pruned", slog.Int("removed", removed))
	}
	return removed, nil
}
