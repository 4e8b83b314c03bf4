// Package playqueue maintains each user's ordered queue of songs to play.
//
// Queue positions are arbitrary-precision decimals, not integers. Inserting
// between two entries takes the midpoint of their positions, so an insert
// never rewrites neighboring rows. Repeated midpoint splits shrink the gaps;
// Renumber restores integer spacing when they get too tight.
package playqueue

import (
	"time"

	"github.com/shopspring/decimal"
)

type Entry struct {
	ID            int             `json:"id"`
	UserID        int             `json:"user_id"`
	SongID        int             `json:"song_id"`
	SongAPIKey    string          `json:"song_api_key"`
	Position      decimal.Decimal `json:"position"`
	IsCurrentSong bool            `json:"is_current_song"`
	ChangedBy     *string         `json:"changed_by"`
	IsLocked      bool            `json:"is_locked"`
	SortOrder     int             `json:"sort_order"`
	APIKey        string          `json:"api_key"`
	CreatedAt     time.Time       `json:"created_at"`
	LastUpdatedAt *time.Time      `json:"last_updated_at"`
	Tags          *string         `json:"tags"`
	Notes         *string         `json:"notes"`
	Description   *string         `json:"description"`
}

// positionStep is the spacing between entries after an append or renumber.
var positionStep = decimal.NewFromInt(1)

// Midpoint returns a position strictly between a and b. a must be less
// than b; the result is never equal to either bound.
func Midpoint(a, b decimal.Decimal) decimal.Decimal {
	return a.Add(b).Div(decimal.NewFromInt(2))
}

// NextPosition returns the append position after the current tail, or the
// first position for an empty queue.
func NextPosition(tail *decimal.Decimal) decimal.Decimal {
	if tail == nil {
		return positionStep
	}
	return tail.Floor().Add(positionStep)
}

// RenumberPositions returns the integer-spaced replacement positions for a
// queue of n entries: 1, 2, 3, ...
func RenumberPositions(n int) []decimal.Decimal {
	positions := make([]decimal.Decimal, n)
	for i := range positions {
		positions[i] = decimal.NewFromInt(int64(i + 1))
	}
	return positions
}

// NeedsRenumber reports whether the gap between two adjacent positions has
// shrunk enough that further midpoint inserts risk exhausting precision.
func NeedsRenumber(a, b decimal.Decimal) bool {
	return b.Sub(a).LessThan(minGap)
}

// minGap is the narrowest adjacent gap tolerated before a renumber.
var minGap = decimal.New(1, -6)
