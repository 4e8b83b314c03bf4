package bookmark

import (
	"context"
	"log/slog"

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

func (service *Service) ListBookmarks(context context.Context, userID int) ([]*Bookmark, error) {
	return service.repo.ListBookmarks(context, userID)
}

func (service *Service) GetBookmark(context context.Context, userID, songID int) (*Bookmark, error) {
	return service.repo.GetBookmark(context, userID, songID)
}

// SaveBookmark records a resume position within a song. Saving again for the
// same song moves the existing bookmark.
func (service *Service) SaveBookmark(context context.Context, b *Bookmark) error {
	if b.Position < 0 {
		return apperr.InvalidRange(FieldPosition, "must not be negative")
	}
	if b.Comment != nil {
		validator := &validate.Validator{}
		validator.MaxLen(FieldComment, *b.Comment, constants.MaxGeneralInputLength)
		if err := validator.Err(); err != nil {
			return err
		}
	}

	if b.APIKey == "" {
		b.APIKey = apikey.New()
	}

	if err := service.repo.UpsertBookmark(context, b); err != nil {
		return err
	}

	service.logger.Debug("bookmark_saved", slog.Int("user_id", b.UserID),
		slog.Int("song_id", b.SongID), slog.Int("position", b.Position))
	return nil
}

func (service *Service) DeleteBookmark(context context.Context, userID, songID int) error {
	return service.repo.DeleteBookmark(context, userID, songID)
}
