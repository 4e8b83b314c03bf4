package playlist

import "context"

// Repository abstracts playlist and membership persistence.
//
// AppendSong assigns the next free playlistorder inside the insert statement.
// ReplaceOrder rewrites every membership row's playlistorder in one
// transaction so a crash can never leave a half-reordered playlist.
type Repository interface {
	ListPlaylists(context context.Context, userID int) ([]*Playlist, error)
	ListPublicPlaylists(context context.Context, limit, offset int) ([]*Playlist, int, error)
	GetPlaylist(context context.Context, id int) (*Playlist, error)
	GetPlaylistByAPIKey(context context.Context, apiKey string) (*Playlist, error)
	CreatePlaylist(context context.Context, p *Playlist) error
	UpdatePlaylist(context context.Context, p *Playlist) error
	DeletePlaylist(context context.Context, id int) error

	ListSongs(context context.Context, playlistID int) ([]*PlaylistSong, error)
	AppendSong(context context.Context, playlistID, songID int) error
	RemoveSong(context context.Context, playlistID, songID int) error
	ReplaceOrder(context context.Context, playlistID int, songIDs []int) error
	RecomputeCounters(context context.Context, playlistID int) error
}
