package playqueue

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"
	"github.com/sphildreth/melodee-sub003/internal/platform/apperr"
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

func (service *Service) ListQueue(context context.Context, userID int) ([]*Entry, error) {
	return service.repo.ListQueue(context, userID)
}

// Append adds a song at the end of the user's queue.
func (service *Service) Append(context context.Context, userID, songID int, songAPIKey string, changedBy *string) (*Entry, error) {
	tail, err := service.repo.TailPosition(context, userID)
	if err != nil {
		return nil, err
	}

	e := &Entry{
		UserID:     userID,
		SongID:     songID,
		SongAPIKey: songAPIKey,
		Position:   NextPosition(tail),
		ChangedBy:  changedBy,
		APIKey:     apikey.New(),
	}
	if err := service.repo.CreateEntry(context, e); err != nil {
		return nil, err
	}
	return e, nil
}

// InsertAfter places a song directly after an existing entry without
// touching any other row: the new position is the midpoint between the entry
// and its successor. When the gap there has become too narrow the queue is
// renumbered first.
func (service *Service) InsertAfter(context context.Context, userID, afterEntryID, songID int, songAPIKey string, changedBy *string) (*Entry, error) {
	queue, err := service.repo.ListQueue(context, userID)
	if err != nil {
		return nil, err
	}

	index := -1
	for i, entry := range queue {
		if entry.ID == afterEntryID {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, apperr.NotFound("play queue entry")
	}

	var position decimal.Decimal
	if index == len(queue)-1 {
		position = NextPosition(&queue[index].Position)
	} else {
		next := queue[index+1]
		if NeedsRenumber(queue[index].Position, next.Position) {
			if err := service.Renumber(context, userID); err != nil {
				return nil, err
			}
			return service.InsertAfter(context, userID, afterEntryID, songID, songAPIKey, changedBy)
		}
		position = Midpoint(queue[index].Position, next.Position)
	}

	e := &Entry{
		UserID:     userID,
		SongID:     songID,
		SongAPIKey: songAPIKey,
		Position:   position,
		ChangedBy:  changedBy,
		APIKey:     apikey.New(),
	}
	if err := service.repo.CreateEntry(context, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Renumber rewrites the queue onto integer-spaced positions, keeping the
// relative order. Midpoint inserts stay cheap afterwards.
func (service *Service) Renumber(context context.Context, userID int) error {
	queue, err := service.repo.ListQueue(context, userID)
	if err != nil {
		return err
	}
	if len(queue) == 0 {
		return nil
	}

	ids := make([]int, len(queue))
	for i, entry := range queue {
		ids[i] = entry.ID
	}

	if err := service.repo.SetPositions(context, userID, ids, RenumberPositions(len(queue))); err != nil {
		return err
	}

	service.logger.Debug("play_queue_renumbered", slog.Int("user_id", userID), slog.Int("entries", len(queue)))
	return nil
}

func (service *Service) SetCurrentSong(context context.Context, userID, entryID int) error {
	return service.repo.SetCurrentSong(context, userID, entryID)
}

func (service *Service) RemoveEntry(context context.Context, id int) error {
	return service.repo.DeleteEntry(context, id)
}

func (service *Service) ClearQueue(context context.Context, userID int) error {
	return service.repo.ClearQueue(context, userID)
}
