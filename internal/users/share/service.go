package share

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/sphildreth/melodee-sub003/internal/platform/apperr"
	"github.com/sphildreth/melodee-sub003/internal/platform/constants"
	"github.com/sphildreth/melodee-sub003/internal/platform/validate"
	"github.com/sphildreth/melodee-sub003/pkg/apikey"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListShares(context context.Context, userID int) ([]*Share, error) {
	return service.repo.ListShares(context, userID)
}

func (service *Service) GetShare(context context.Context, id int) (*Share, error) {
	return service.repo.GetShare(context, id)
}

// CreateShare mints a share link for songIDs. The generated apikey is the
// public token.
func (service *Service) CreateShare(context context.Context, userID int, songIDs []int, expiresAt *time.Time, downloadable bool) (*Share, error) {
	if len(songIDs) == 0 {
		return nil, validate.RequiredError(FieldSongIDs, "At least one song is required")
	}
	if expiresAt != nil && expiresAt.Before(time.Now()) {
		return nil, apperr.InvalidRange(FieldExpiresAt, "must be in the future")
	}

	list := joinIDs(songIDs)
	validator := &validate.Validator{}
	validator.MaxLen(FieldSongIDs, list, constants.MaxIndexableLength)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	s := &Share{
		UserID:         userID,
		SongIDs:        list,
		ExpiresAt:      expiresAt,
		IsDownloadable: downloadable,
		APIKey:         apikey.New(),
	}
	if err := service.repo.CreateShare(context, s); err != nil {
		return nil, err
	}

	service.logger.Info("share_created", slog.Int("user_id", userID), slog.Int("songs", len(songIDs)))
	return s, nil
}

// Resolve looks a share up by its public token and counts the visit.
// Lapsed shares resolve to not-found.
func (service *Service) Resolve(context context.Context, token string) (*Share, error) {
	s, err := service.repo.GetShareByAPIKey(context, token)
	if err != nil {
		return nil, err
	}
	if s.IsExpired(time.Now()) {
		return nil, apperr.NotFound("Share")
	}

	if err := service.repo.RecordVisit(context, s.ID); err != nil {
		service.logger.Error("share_visit_count_failed", slog.Int("share_id", s.ID), slog.Any("error", err))
	}
	return s, nil
}

func (service *Service) UpdateShare(context context.Context, s *Share) error {
	return service.repo.UpdateShare(context, s)
}

func (service *Service) DeleteShare(context context.Context, id int) error {
	return service.repo.DeleteShare(context, id)
}

// SweepExpired clears lapsed shares, typically from a maintenance job.
func (service *Service) SweepExpired(context context.Context) (int, error) {
	removed, err := service.repo.DeleteExpired(context)
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		service.logger.Info("expired_shares_swept", slog.Int("removed", removed))
	}
	return removed, nil
}

// SongIDList parses the stored pipe-delimited id list.
func (s *Share) SongIDList() []int {
	if s.SongIDs == "" {
		return nil
	}

	parts := strings.Split(s.SongIDs, "|")
	ids := make([]int, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

func joinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, "|")
}
