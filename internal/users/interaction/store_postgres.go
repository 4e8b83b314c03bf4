package interaction

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

func scanUserArtist(row interface{ Scan(...any) error }) (*UserArtist, error) {
	ua := &UserArtist{}
	err := row.Scan(
		&ua.ID, &ua.UserID, &ua.ArtistID, &ua.IsStarred, &ua.StarredAt, &ua.IsHated,
		&ua.Rating, &ua.IsLocked, &ua.SortOrder, &ua.APIKey, &ua.CreatedAt,
		&ua.LastUpdatedAt, &ua.Tags, &ua.Notes, &ua.Description,
	)
	return ua, err
}

func (repository *PostgresRepository) GetUserArtist(context context.Context, userID, artistID int) (*UserArtist, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s = $2`,
		strings.Join(schema.LibraryUserArtist.Columns(), ", "), schema.LibraryUserArtist.Table,
		schema.LibraryUserArtist.UserID, schema.LibraryUserArtist.ArtistID)

	ua, err := scanUserArtist(repository.db.QueryRow(context, query, userID, artistID))
	return ua, dberr.Wrap(err, "get_user_artist")
}

func (repository *PostgresRepository) ListStarredArtists(context context.Context, userID int) ([]*UserArtist, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s ORDER BY %s DESC`,
		strings.Join(schema.LibraryUserArtist.Columns(), ", "), schema.LibraryUserArtist.Table,
		schema.LibraryUserArtist.UserID, schema.LibraryUserArtist.IsStarred,
		schema.LibraryUserArtist.StarredAt)

	rows, err := repository.db.Query(context, query, userID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_starred_artists")
	}
	defer rows.Close()

	var result []*UserArtist
	for rows.Next() {
		ua, err := scanUserArtist(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_user_artist")
		}
		result = append(result, ua)
	}

	return result, rows.Err()
}

func (repository *PostgresRepository) UpsertUserArtist(context context.Context, ua *UserArtist) error {
	t := schema.LibraryUserArtist
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		ON CONFLICT (%s, %s) DO UPDATE
		SET %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = NOW()
		RETURNING %s, %s
	`,
		t.Table,
		t.UserID, t.ArtistID, t.IsStarred, t.StarredAt, t.IsHated, t.Rating, t.APIKey, t.CreatedAt,
		t.UserID, t.ArtistID,
		t.IsStarred, t.IsStarred, t.StarredAt, t.StarredAt, t.IsHated, t.IsHated, t.Rating, t.Rating,
		t.LastUpdatedAt,
		t.ID, t.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		ua.UserID, ua.ArtistID, ua.IsStarred, ua.StarredAt, ua.IsHated, ua.Rating, ua.APIKey,
	).Scan(&ua.ID, &ua.CreatedAt)
	return dberr.Wrap(err, "upsert_user_artist")
}

func (repository *PostgresRepository) DeleteUserArtist(context context.Context, userID, artistID int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.LibraryUserArtist.Table, schema.LibraryUserArtist.UserID, schema.LibraryUserArtist.ArtistID)

	cmd, err := repository.db.Exec(context, query, userID, artistID)
	if err != nil {
		return dberr.Wrap(err, "delete_user_artist")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func scanUserAlbum(row interface{ Scan(...any) error }) (*UserAlbum, error) {
	ua := &UserAlbum{}
	err := row.Scan(
		&ua.ID, &ua.UserID, &ua.AlbumID, &ua.IsStarred, &ua.StarredAt, &ua.IsHated,
		&ua.Rating, &ua.PlayedCount, &ua.LastPlayedAt, &ua.IsLocked, &ua.SortOrder,
		&ua.APIKey, &ua.CreatedAt, &ua.LastUpdatedAt, &ua.Tags, &ua.Notes, &ua.Description,
	)
	return ua, err
}

func (repository *PostgresRepository) GetUserAlbum(context context.Context, userID, albumID int) (*UserAlbum, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s = $2`,
		strings.Join(schema.LibraryUserAlbum.Columns(), ", "), schema.LibraryUserAlbum.Table,
		schema.LibraryUserAlbum.UserID, schema.LibraryUserAlbum.AlbumID)

	ua, err := scanUserAlbum(repository.db.QueryRow(context, query, userID, albumID))
	return ua, dberr.Wrap(err, "get_user_album")
}

func (repository *PostgresRepository) ListStarredAlbums(context context.Context, userID int) ([]*UserAlbum, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s ORDER BY %s DESC`,
		strings.Join(schema.LibraryUserAlbum.Columns(), ", "), schema.LibraryUserAlbum.Table,
		schema.LibraryUserAlbum.UserID, schema.LibraryUserAlbum.IsStarred,
		schema.LibraryUserAlbum.StarredAt)

	rows, err := repository.db.Query(context, query, userID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_starred_albums")
	}
	defer rows.Close()

	var result []*UserAlbum
	for rows.Next() {
		ua, err := scanUserAlbum(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_user_album")
		}
		result = append(result, ua)
	}

	return result, rows.Err()
}

func (repository *PostgresRepository) UpsertUserAlbum(context context.Context, ua *UserAlbum) error {
	t := schema.LibraryUserAlbum
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		ON CONFLICT (%s, %s) DO UPDATE
		SET %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = NOW()
		RETURNING %s, %s
	`,
		t.Table,
		t.UserID, t.AlbumID, t.IsStarred, t.StarredAt, t.IsHated, t.Rating, t.APIKey, t.CreatedAt,
		t.UserID, t.AlbumID,
		t.IsStarred, t.IsStarred, t.StarredAt, t.StarredAt, t.IsHated, t.IsHated, t.Rating, t.Rating,
		t.LastUpdatedAt,
		t.ID, t.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		ua.UserID, ua.AlbumID, ua.IsStarred, ua.StarredAt, ua.IsHated, ua.Rating, ua.APIKey,
	).Scan(&ua.ID, &ua.CreatedAt)
	return dberr.Wrap(err, "upsert_user_album")
}

// MarkAlbumPlayed bumps the per-user album play tally in one statement. The
// increment rides on the conflict branch so concurrent plays both land.
func (repository *PostgresRepository) MarkAlbumPlayed(context context.Context, userID, albumID int, apiKey string) error {
	t := schema.LibraryUserAlbum
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, 1, NOW(), $3, NOW())
		ON CONFLICT (%s, %s) DO UPDATE
		SET %s = %s.%s + 1, %s = NOW(), %s = NOW()
	`,
		t.Table,
		t.UserID, t.AlbumID, t.PlayedCount, t.LastPlayedAt, t.APIKey, t.CreatedAt,
		t.UserID, t.AlbumID,
		t.PlayedCount, t.Table, t.PlayedCount, t.LastPlayedAt, t.LastUpdatedAt,
	)

	_, err := repository.db.Exec(context, query, userID, albumID, apiKey)
	return dberr.Wrap(err, "mark_album_played")
}

func (repository *PostgresRepository) DeleteUserAlbum(context context.Context, userID, albumID int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.LibraryUserAlbum.Table, schema.LibraryUserAlbum.UserID, schema.LibraryUserAlbum.AlbumID)

	cmd, err := repository.db.Exec(context, query, userID, albumID)
	if err != nil {
		return dberr.Wrap(err, "delete_user_album")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func scanUserSong(row interface{ Scan(...any) error }) (*UserSong, error) {
	us := &UserSong{}
	err := row.Scan(
		&us.ID, &us.UserID, &us.SongID, &us.IsStarred, &us.StarredAt, &us.IsHated,
		&us.Rating, &us.PlayedCount, &us.LastPlayedAt, &us.IsLocked, &us.SortOrder,
		&us.APIKey, &us.CreatedAt, &us.LastUpdatedAt, &us.Tags, &us.Notes, &us.Description,
	)
	return us, err
}

func (repository *PostgresRepository) GetUserSong(context context.Context, userID, songID int) (*UserSong, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s = $2`,
		strings.Join(schema.LibraryUserSong.Columns(), ", "), schema.LibraryUserSong.Table,
		schema.LibraryUserSong.UserID, schema.LibraryUserSong.SongID)

	us, err := scanUserSong(repository.db.QueryRow(context, query, userID, songID))
	return us, dberr.Wrap(err, "get_user_song")
}

func (repository *PostgresRepository) ListStarredSongs(context context.Context, userID int) ([]*UserSong, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s ORDER BY %s DESC`,
		strings.Join(schema.LibraryUserSong.Columns(), ", "), schema.LibraryUserSong.Table,
		schema.LibraryUserSong.UserID, schema.LibraryUserSong.IsStarred,
		schema.LibraryUserSong.StarredAt)

	rows, err := repository.db.Query(context, query, userID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_starred_songs")
	}
	defer rows.Close()

	var result []*UserSong
	for rows.Next() {
		us, err := scanUserSong(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_user_song")
		}
		result = append(result, us)
	}

	return result, rows.Err()
}

func (repository *PostgresRepository) UpsertUserSong(context context.Context, us *UserSong) error {
	t := schema.LibraryUserSong
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		ON CONFLICT (%s, %s) DO UPDATE
		SET %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = NOW()
		RETURNING %s, %s
	`,
		t.Table,
		t.UserID, t.SongID, t.IsStarred, t.StarredAt, t.IsHated, t.Rating, t.APIKey, t.CreatedAt,
		t.UserID, t.SongID,
		t.IsStarred, t.IsStarred, t.StarredAt, t.StarredAt, t.IsHated, t.IsHated, t.Rating, t.Rating,
		t.LastUpdatedAt,
		t.ID, t.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		us.UserID, us.SongID, us.IsStarred, us.StarredAt, us.IsHated, us.Rating, us.APIKey,
	).Scan(&us.ID, &us.CreatedAt)
	return dberr.Wrap(err, "upsert_user_song")
}

func (repository *PostgresRepository) MarkSongPlayed(context context.Context, userID, songID int, apiKey string) error {
	t := schema.LibraryUserSong
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, 1, NOW(), $3, NOW())
		ON CONFLICT (%s, %s) DO UPDATE
		SET %s = %s.%s + 1, %s = NOW(), %s = NOW()
	`,
		t.Table,
		t.UserID, t.SongID, t.PlayedCount, t.LastPlayedAt, t.APIKey, t.CreatedAt,
		t.UserID, t.SongID,
		t.PlayedCount, t.Table, t.PlayedCount, t.LastPlayedAt, t.LastUpdatedAt,
	)

	_, err := repository.db.Exec(context, query, userID, songID, apiKey)
	return dberr.Wrap(err, "mark_song_played")
}

func (repository *PostgresRepository) DeleteUserSong(context context.Context, userID, songID int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.LibraryUserSong.Table, schema.LibraryUserSong.UserID, schema.LibraryUserSong.SongID)

	cmd, err := repository.db.Exec(context, query, userID, songID)
	if err != nil {
		return dberr.Wrap(err, "delete_user_song")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
