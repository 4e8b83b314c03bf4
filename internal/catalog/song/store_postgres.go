package song

import (
	"context"
	"fmt"
	"strconv"
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

func scanSong(row interface{ Scan(...any) error }) (*Song, error) {
	s := &Song{}
	err := row.Scan(
		&s.ID, &s.AlbumDiscID, &s.Title, &s.TitleNormalized, &s.TitleSort, &s.AlternateNames,
		&s.SongNumber, &s.FileName, &s.FileSize, &s.FileHash, &s.Lyrics, &s.PartTitles,
		&s.Genres, &s.Moods, &s.Comment, &s.Duration, &s.SamplingRate, &s.BitRate, &s.BitDepth,
		&s.BPM, &s.ContentType, &s.ChannelCount, &s.IsVbr, &s.ReplayGain, &s.ReplayPeak,
		&s.ImageCount, &s.PlayedCount, &s.LastPlayedAt, &s.LastMetaDataUpdatedAt,
		&s.MetaDataStatus, &s.CalculatedRating, &s.MusicBrainzID, &s.DiscogsID, &s.SpotifyID,
		&s.ItunesID, &s.AmgID, &s.WikiDataID, &s.LastFmID, &s.IsLocked, &s.SortOrder,
		&s.APIKey, &s.CreatedAt, &s.LastUpdatedAt, &s.Tags, &s.Notes, &s.Description,
	)
	return s, err
}

func selectSongs() string {
	return fmt.Sprintf(`SELECT %s FROM %s`,
		strings.Join(schema.CoreSong.Columns(), ", "), schema.CoreSong.Table)
}

func (repository *PostgresRepository) ListSongs(context context.Context, f Filter, limit, offset int) ([]*Song, int, error) {
	query := selectSongs() + ` WHERE 1=1`
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE 1=1`, schema.CoreSong.Table)

	args := []any{}
	countArgs := []any{}

	if f.AlbumDiscID > 0 {
		clause := fmt.Sprintf(` AND %s = $%d`, schema.CoreSong.AlbumDiscID, len(args)+1)
		query += clause
		countQuery += clause
		args = append(args, f.AlbumDiscID)
		countArgs = append(countArgs, f.AlbumDiscID)
	}

	if f.Query != "" {
		clause := fmt.Sprintf(` AND %s ILIKE $%d`, schema.CoreSong.Title, len(args)+1)
		query += clause
		countQuery += clause
		args = append(args, "%"+f.Query+"%")
		countArgs = append(countArgs, "%"+f.Query+"%")
	}

	query += fmt.Sprintf(` ORDER BY %s, %s LIMIT $`, schema.CoreSong.AlbumDiscID, schema.CoreSong.SongNumber) +
		strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_songs")
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_songs")
	}
	defer rows.Close()

	var songs []*Song
	for rows.Next() {
		s, err := scanSong(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_song")
		}
		songs = append(songs, s)
	}

	return songs, total, rows.Err()
}

func (repository *PostgresRepository) ListSongsByDisc(context context.Context, albumDiscID int) ([]*Song, error) {
	query := selectSongs() + fmt.Sprintf(` WHERE %s = $1 ORDER BY %s`,
		schema.CoreSong.AlbumDiscID, schema.CoreSong.SongNumber)

	rows, err := repository.db.Query(context, query, albumDiscID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_songs_by_disc")
	}
	defer rows.Close()

	var songs []*Song
	for rows.Next() {
		s, err := scanSong(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_song")
		}
		songs = append(songs, s)
	}

	return songs, rows.Err()
}

func (repository *PostgresRepository) GetSong(context context.Context, id int) (*Song, error) {
	query := selectSongs() + fmt.Sprintf(` WHERE %s = $1`, schema.CoreSong.ID)
	s, err := scanSong(repository.db.QueryRow(context, query, id))
	return s, dberr.Wrap(err, "get_song")
}

func (repository *PostgresRepository) GetSongByAPIKey(context context.Context, apiKey string) (*Song, error) {
	query := selectSongs() + fmt.Sprintf(` WHERE %s = $1`, schema.CoreSong.APIKey)
	s, err := scanSong(repository.db.QueryRow(context, query, apiKey))
	return s, dberr.Wrap(err, "get_song_by_apikey")
}

// GetSongByFileHash resolves a song by its content hash, the duplicate
// detection key used by the scanner.
func (repository *PostgresRepository) GetSongByFileHash(context context.Context, fileHash string) (*Song, error) {
	query := selectSongs() + fmt.Sprintf(` WHERE %s = $1 ORDER BY %s LIMIT 1`,
		schema.CoreSong.FileHash, schema.CoreSong.ID)
	s, err := scanSong(repository.db.QueryRow(context, query, fileHash))
	return s, dberr.Wrap(err, "get_song_by_file_hash")
}

func insertSongQuery() string {
	return fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s,
		                %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17,
		        $18, $19, $20, $21, $22, $23, $24, NOW())
		RETURNING %s, %s
	`,
		schema.CoreSong.Table,
		schema.CoreSong.AlbumDiscID, schema.CoreSong.Title, schema.CoreSong.TitleNormalized,
		schema.CoreSong.TitleSort, schema.CoreSong.SongNumber, schema.CoreSong.FileName,
		schema.CoreSong.FileSize, schema.CoreSong.FileHash, schema.CoreSong.Lyrics,
		schema.CoreSong.PartTitles, schema.CoreSong.Genres, schema.CoreSong.Moods,
		schema.CoreSong.Comment, schema.CoreSong.Duration, schema.CoreSong.SamplingRate,
		schema.CoreSong.BitRate, schema.CoreSong.BitDepth, schema.CoreSong.BPM,
		schema.CoreSong.ContentType, schema.CoreSong.ChannelCount, schema.CoreSong.IsVbr,
		schema.CoreSong.ReplayGain, schema.CoreSong.ReplayPeak, schema.CoreSong.APIKey,
		schema.CoreSong.CreatedAt,
		schema.CoreSong.ID, schema.CoreSong.CreatedAt,
	)
}

func (repository *PostgresRepository) CreateSong(context context.Context, s *Song) error {
	err := repository.db.QueryRow(context, insertSongQuery(),
		s.AlbumDiscID, s.Title, s.TitleNormalized, s.TitleSort, s.SongNumber, s.FileName,
		s.FileSize, s.FileHash, s.Lyrics, s.PartTitles, s.Genres, s.Moods, s.Comment,
		s.Duration, s.SamplingRate, s.BitRate, s.BitDepth, s.BPM, s.ContentType,
		s.ChannelCount, s.IsVbr, s.ReplayGain, s.ReplayPeak, s.APIKey,
	).Scan(&s.ID, &s.CreatedAt)
	return dberr.Wrap(err, "create_song")
}

func (repository *PostgresRepository) UpdateSong(context context.Context, s *Song) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9,
		    %s = $10, %s = $11, %s = $12, %s = $13, %s = $14, %s = $15, %s = $16,
		    %s = $17, %s = $18, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.CoreSong.Table,
		schema.CoreSong.Title, schema.CoreSong.TitleNormalized, schema.CoreSong.TitleSort,
		schema.CoreSong.SongNumber, schema.CoreSong.FileName, schema.CoreSong.FileSize,
		schema.CoreSong.FileHash, schema.CoreSong.Lyrics, schema.CoreSong.Genres,
		schema.CoreSong.Moods, schema.CoreSong.Comment, schema.CoreSong.Duration,
		schema.CoreSong.BitRate, schema.CoreSong.ContentType, schema.CoreSong.IsLocked,
		schema.CoreSong.SortOrder, schema.CoreSong.LastMetaDataUpdatedAt,
		schema.CoreSong.LastUpdatedAt,
		schema.CoreSong.ID,
		schema.CoreSong.LastUpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		s.ID, s.Title, s.TitleNormalized, s.TitleSort, s.SongNumber, s.FileName, s.FileSize,
		s.FileHash, s.Lyrics, s.Genres, s.Moods, s.Comment, s.Duration, s.BitRate,
		s.ContentType, s.IsLocked, s.SortOrder, s.LastMetaDataUpdatedAt,
	).Scan(&s.LastUpdatedAt)
	return dberr.Wrap(err, "update_song")
}

func (repository *PostgresRepository) DeleteSong(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CoreSong.Table, schema.CoreSong.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_song")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) IncrementPlayedCount(context context.Context, id int) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = %s + 1, %s = NOW() WHERE %s = $1`,
		schema.CoreSong.Table, schema.CoreSong.PlayedCount, schema.CoreSong.PlayedCount,
		schema.CoreSong.LastPlayedAt, schema.CoreSong.ID,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "increment_song_played_count")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// GetLineage walks song -> disc -> album in one query.
func (repository *PostgresRepository) GetLineage(context context.Context, id int) (*Lineage, error) {
	query := fmt.Sprintf(`
		SELECT s.%s, d.%s, a.%s, a.%s
		FROM %s s
		JOIN %s d ON d.%s = s.%s
		JOIN %s a ON a.%s = d.%s
		WHERE s.%s = $1
	`,
		schema.CoreSong.ID, schema.CoreAlbumDisc.ID, schema.CoreAlbum.ID, schema.CoreAlbum.ArtistID,
		schema.CoreSong.Table,
		schema.CoreAlbumDisc.Table, schema.CoreAlbumDisc.ID, schema.CoreSong.AlbumDiscID,
		schema.CoreAlbum.Table, schema.CoreAlbum.ID, schema.CoreAlbumDisc.AlbumID,
		schema.CoreSong.ID,
	)

	l := &Lineage{}
	err := repository.db.QueryRow(context, query, id).Scan(&l.SongID, &l.DiscID, &l.AlbumID, &l.ArtistID)
	return l, dberr.Wrap(err, "get_song_lineage")
}
