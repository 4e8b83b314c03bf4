package scrobble

import "context"

// Repository abstracts scrobble persistence. InsertScrobble reports whether
// a row was actually written: a replay of the natural key is a silent no-op
// and returns false.
type Repository interface {
	ListScrobbles(context context.Context, userID int, limit, offset int) ([]*Scrobble, int, error)
	InsertScrobble(context context.Context, s *Scrobble) (bool, error)
	DeleteScrobble(context context.Context, id int) error
}
