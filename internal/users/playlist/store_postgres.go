package playlist

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sphildreth/melodee-sub003/internal/platform/database/schema"
	"github.com/sphildreth/melodee-sub003/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanPlaylist(row interface{ Scan(...any) error }) (*Playlist, error) {
	p := &Playlist{}
	err := row.Scan(
		&p.ID, &p.UserID, &p.Name, &p.Comment, &p.IsPublic, &p.SongCount, &p.Duration,
		&p.IsLocked, &p.SortOrder, &p.APIKey, &p.CreatedAt, &p.LastUpdatedAt,
		&p.Tags, &p.Notes, &p.Description,
	)
	return p, err
}

func selectPlaylists() string {
	return fmt.Sprintf(`SELECT %s FROM %s`,
		strings.Join(schema.LibraryPlaylist.Columns(), ", "), schema.LibraryPlaylist.Table)
}

func (repository *PostgresRepository) ListPlaylists(context context.Context, userID int) ([]*Playlist, error) {
	query := selectPlaylists() + fmt.Sprintf(` WHERE %s = $1 ORDER BY %s`,
		schema.LibraryPlaylist.UserID, schema.LibraryPlaylist.Name)

	rows, err := repository.db.Query(context, query, userID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_playlists")
	}
	defer rows.Close()

	var playlists []*Playlist
	for rows.Next() {
		p, err := scanPlaylist(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_playlist")
		}
		playlists = append(playlists, p)
	}

	return playlists, rows.Err()
}

func (repository *PostgresRepository) ListPublicPlaylists(context context.Context, limit, offset int) ([]*Playlist, int, error) {
	var total int
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s`,
		schema.LibraryPlaylist.Table, schema.LibraryPlaylist.IsPublic)
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_public_playlists")
	}

	query := selectPlaylists() + fmt.Sprintf(` WHERE %s ORDER BY %s LIMIT $1 OFFSET $2`,
		schema.LibraryPlaylist.IsPublic, schema.LibraryPlaylist.Name)

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_public_playlists")
	}
	defer rows.Close()

	var playlists []*Playlist
	for rows.Next() {
		p, err := scanPlaylist(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_playlist")
		}
		playlists = append(playlists, p)
	}

	return playlists, total, rows.Err()
}

func (repository *PostgresRepository) GetPlaylist(context context.Context, id int) (*Playlist, error) {
	query := selectPlaylists() + fmt.Sprintf(` WHERE %s = $1`, schema.LibraryPlaylist.ID)
	p, err := scanPlaylist(repository.db.QueryRow(context, query, id))
	return p, dberr.Wrap(err, "get_playlist")
}

func (repository *PostgresRepository) GetPlaylistByAPIKey(context context.Context, apiKey string) (*Playlist, error) {
	query := selectPlaylists() + fmt.Sprintf(` WHERE %s = $1`, schema.LibraryPlaylist.APIKey)
	p, err := scanPlaylist(repository.db.QueryRow(context, query, apiKey))
	return p, dberr.Wrap(err, "get_playlist_by_apikey")
}

func (repository *PostgresRepository) CreatePlaylist(context context.Context, p *Playlist) error {
	t := schema.LibraryPlaylist
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING %s, %s
	`,
		t.Table,
		t.UserID, t.Name, t.Comment, t.IsPublic, t.APIKey, t.CreatedAt,
		t.ID, t.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		p.UserID, p.Name, p.Comment, p.IsPublic, p.APIKey,
	).Scan(&p.ID, &p.CreatedAt)
	return dberr.Wrap(err, "create_playlist")
}

func (repository *PostgresRepository) UpdatePlaylist(context context.Context, p *Playlist) error {
	t := schema.LibraryPlaylist
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		t.Table,
		t.Name, t.Comment, t.IsPublic, t.LastUpdatedAt,
		t.ID,
		t.LastUpdatedAt,
	)

	err := repository.db.QueryRow(context, query, p.ID, p.Name, p.Comment, p.IsPublic).Scan(&p.LastUpdatedAt)
	return dberr.Wrap(err, "update_playlist")
}

func (repository *PostgresRepository) DeletePlaylist(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.LibraryPlaylist.Table, schema.LibraryPlaylist.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_playlist")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) ListSongs(context context.Context, playlistID int) ([]*PlaylistSong, error) {
	t := schema.LibraryPlaylistSong
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s`,
		strings.Join(t.Columns(), ", "), t.Table, t.PlaylistID, t.PlaylistOrder)

	rows, err := repository.db.Query(context, query, playlistID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_playlist_songs")
	}
	defer rows.Close()

	var songs []*PlaylistSong
	for rows.Next() {
		ps := &PlaylistSong{}
		err := rows.Scan(&ps.SongID, &ps.PlaylistID, &ps.SongAPIKey, &ps.PlaylistOrder,
			&ps.CreatedAt, &ps.LastUpdatedAt)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_playlist_song")
		}
		songs = append(songs, ps)
	}

	return songs, rows.Err()
}

// AppendSong inserts a membership row at the end of the playlist. The next
// order position and the song's denormalized apikey are both resolved inside
// the statement.
func (repository *PostgresRepository) AppendSong(context context.Context, playlistID, songID int) error {
	t := schema.LibraryPlaylistSong
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		SELECT $2, $1,
			(SELECT %s FROM %s WHERE %s = $2),
			COALESCE((SELECT MAX(%s) FROM %s WHERE %s = $1), 0) + 1,
			NOW()
	`,
		t.Table,
		t.SongID, t.PlaylistID, t.SongAPIKey, t.PlaylistOrder, t.CreatedAt,
		schema.CoreSong.APIKey, schema.CoreSong.Table, schema.CoreSong.ID,
		t.PlaylistOrder, t.Table, t.PlaylistID,
	)

	_, err := repository.db.Exec(context, query, playlistID, songID)
	return dberr.Wrap(err, "append_playlist_song")
}

func (repository *PostgresRepository) RemoveSong(context context.Context, playlistID, songID int) error {
	t := schema.LibraryPlaylistSong
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`, t.Table, t.PlaylistID, t.SongID)

	cmd, err := repository.db.Exec(context, query, playlistID, songID)
	if err != nil {
		return dberr.Wrap(err, "remove_playlist_song")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// ReplaceOrder rewrites playlistorder for the whole playlist in a single
// transaction. songIDs carries the new order, first element first.
func (repository *PostgresRepository) ReplaceOrder(context context.Context, playlistID int, songIDs []int) error {
	tx, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "reorder_playlist_begin")
	}
	defer tx.Rollback(context)

	t := schema.LibraryPlaylistSong

	// Shift everything out of the way first so the per-row updates cannot
	// trip over an existing order value.
	shift := fmt.Sprintf(`UPDATE %s SET %s = -%s WHERE %s = $1`,
		t.Table, t.PlaylistOrder, t.PlaylistOrder, t.PlaylistID)
	if _, err := tx.Exec(context, shift, playlistID); err != nil {
		return dberr.Wrap(err, "reorder_playlist_shift")
	}

	update := fmt.Sprintf(`UPDATE %s SET %s = $3, %s = NOW() WHERE %s = $1 AND %s = $2`,
		t.Table, t.PlaylistOrder, t.LastUpdatedAt, t.PlaylistID, t.SongID)
	for i, songID := range songIDs {
		cmd, err := tx.Exec(context, update, playlistID, songID, i+1)
		if err != nil {
			return dberr.Wrap(err, "reorder_playlist_update")
		}
		if cmd.RowsAffected() == 0 {
			return dberr.ErrNotFound
		}
	}

	return dberr.Wrap(tx.Commit(context), "reorder_playlist_commit")
}

// RecomputeCounters refreshes the denormalized songcount and duration from
// the membership rows.
func (repository *PostgresRepository) RecomputeCounters(context context.Context, playlistID int) error {
	t := schema.LibraryPlaylist
	ps := schema.LibraryPlaylistSong
	query := fmt.Sprintf(`
		UPDATE %s p
		SET %s = (SELECT count(*) FROM %s WHERE %s = p.%s),
		    %s = COALESCE((
				SELECT SUM(s.%s) FROM %s ps
				JOIN %s s ON s.%s = ps.%s
				WHERE ps.%s = p.%s
			), 0),
		    %s = NOW()
		WHERE p.%s = $1
	`,
		t.Table,
		t.SongCount, ps.Table, ps.PlaylistID, t.ID,
		t.Duration,
		schema.CoreSong.Duration, ps.Table,
		schema.CoreSong.Table, schema.CoreSong.ID, ps.SongID,
		ps.PlaylistID, t.ID,
		t.LastUpdatedAt,
		t.ID,
	)

	cmd, err := repository.db.Exec(context, query, playlistID)
	if err != nil {
		return dberr.Wrap(err, "recompute_playlist_counters")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
