package interaction

import "context"

// Repository abstracts persistence of the per-user overlay rows.
//
// The upsert methods write the whole overlay row keyed by the (user, entity)
// pair: an existing row is updated in place, a missing one inserted. MarkSongPlayed
// and MarkAlbumPlayed bump play tallies atomically in the store so concurrent
// players never lose a count.
type Repository interface {
	GetUserArtist(context context.Context, userID, artistID int) (*UserArtist, error)
	ListStarredArtists(context context.Context, userID int) ([]*UserArtist, error)
	UpsertUserArtist(context context.Context, ua *UserArtist) error
	DeleteUserArtist(context context.Context, userID, artistID int) error

	GetUserAlbum(context context.Context, userID, albumID int) (*UserAlbum, error)
	ListStarredAlbums(context context.Context, userID int) ([]*UserAlbum, error)
	UpsertUserAlbum(context context.Context, ua *UserAlbum) error
	MarkAlbumPlayed(context context.Context, userID, albumID int, apiKey string) error
	DeleteUserAlbum(context context.Context, userID, albumID int) error

	GetUserSong(context context.Context, userID, songID int) (*UserSong, error)
	ListStarredSongs(context context.Context, userID int) ([]*UserSong, error)
	UpsertUserSong(context context.Context, us *UserSong) error
	MarkSongPlayed(context context.Context, userID, songID int, apiKey string) error
	DeleteUserSong(context context.Context, userID, songID int) error
}
