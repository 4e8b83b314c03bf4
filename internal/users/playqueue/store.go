package playqueue

import (
	"context"

	"github.com/shopspring/decimal"
)

// Repository abstracts play-queue persistence. Positions travel as decimal
// strings on the wire so no precision is lost between Go and Postgres.
type Repository interface {
	ListQueue(context context.Context, userID int) ([]*Entry, error)
	GetEntry(context context.Context, id int) (*Entry, error)
	TailPosition(context context.Context, userID int) (*decimal.Decimal, error)
	CreateEntry(context context.Context, e *Entry) error
	SetCurrentSong(context context.Context, userID, entryID int) error
	SetPositions(context context.Context, userID int, ids []int, positions []decimal.Decimal) error
	DeleteEntry(context context.Context, id int) error
	ClearQueue(context context.Context, userID int) error
}
