package bookmark

import "context"

type Repository interface {
	ListBookmarks(context context.Context, userID int) ([]*Bookmark, error)
	GetBookmark(context context.Context, userID, songID int) (*Bookmark, error)
	UpsertBookmark(context context.Context, b *Bookmark) error
	DeleteBookmark(context context.Context, userID, songID int) error
}
