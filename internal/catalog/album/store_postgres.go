package album

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

func scanAlbum(row interface{ Scan(...any) error }) (*Album, error) {
	a := &Album{}
	err := row.Scan(
		&a.ID, &a.ArtistID, &a.LibraryID, &a.Name, &a.NameNormalized, &a.SortName,
		&a.AlternateNames, &a.AlbumStatus, &a.AlbumType, &a.MetaDataStatus,
		&a.OriginalReleaseDate, &a.ReleaseDate, &a.IsCompilation, &a.SongCount, &a.DiscCount,
		&a.Duration, &a.Genres, &a.Moods, &a.Comment, &a.ReplayGain, &a.ReplayPeak,
		&a.Directory, &a.ImageCount, &a.MediaUniqueID, &a.PlayedCount, &a.LastPlayedAt,
		&a.LastMetaDataUpdatedAt, &a.CalculatedRating, &a.MusicBrainzID, &a.DiscogsID,
		&a.SpotifyID, &a.ItunesID, &a.AmgID, &a.WikiDataID, &a.LastFmID, &a.IsLocked,
		&a.SortOrder, &a.APIKey, &a.CreatedAt, &a.LastUpdatedAt, &a.Tags, &a.Notes, &a.Description,
	)
	return a, err
}

func selectAlbums() string {
	return fmt.Sprintf(`SELECT %s FROM %s`,
		strings.Join(schema.CoreAlbum.Columns(), ", "), schema.CoreAlbum.Table)
}

func (repository *PostgresRepository) ListAlbums(context context.Context, f Filter, limit, offset int) ([]*Album, int, error) {
	query := selectAlbums() + ` WHERE 1=1`
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE 1=1`, schema.CoreAlbum.Table)

	args := []any{}
	countArgs := []any{}

	addClause := func(clause string, value any) {
		query += clause
		countQuery += clause
		args = append(args, value)
		countArgs = append(countArgs, value)
	}

	if f.ArtistID > 0 {
		addClause(fmt.Sprintf(` AND %s = $%d`, schema.CoreAlbum.ArtistID, len(args)+1), f.ArtistID)
	}
	if f.LibraryID > 0 {
		addClause(fmt.Sprintf(` AND %s = $%d`, schema.CoreAlbum.LibraryID, len(args)+1), f.LibraryID)
	}
	if f.Query != "" {
		addClause(fmt.Sprintf(` AND %s ILIKE $%d`, schema.CoreAlbum.Name, len(args)+1), "%"+f.Query+"%")
	}

	query += fmt.Sprintf(` ORDER BY %s NULLS LAST, %s LIMIT $`, schema.CoreAlbum.SortName, schema.CoreAlbum.Name) +
		strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_albums")
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_albums")
	}
	defer rows.Close()

	var albums []*Album
	for rows.Next() {
		a, err := scanAlbum(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_album")
		}
		albums = append(albums, a)
	}

	return albums, total, rows.Err()
}

func (repository *PostgresRepository) GetAlbum(context context.Context, id int) (*Album, error) {
	query := selectAlbums() + fmt.Sprintf(` WHERE %s = $1`, schema.CoreAlbum.ID)
	a, err := scanAlbum(repository.db.QueryRow(context, query, id))
	return a, dberr.Wrap(err, "get_album")
}

func (repository *PostgresRepository) GetAlbumByAPIKey(context context.Context, apiKey string) (*Album, error) {
	query := selectAlbums() + fmt.Sprintf(` WHERE %s = $1`, schema.CoreAlbum.APIKey)
	a, err := scanAlbum(repository.db.QueryRow(context, query, apiKey))
	return a, dberr.Wrap(err, "get_album_by_apikey")
}

func (repository *PostgresRepository) GetAlbumByName(context context.Context, artistID int, name string) (*Album, error) {
	query := selectAlbums() + fmt.Sprintf(` WHERE %s = $1 AND %s = $2`,
		schema.CoreAlbum.ArtistID, schema.CoreAlbum.Name)
	a, err := scanAlbum(repository.db.QueryRow(context, query, artistID, name))
	return a, dberr.Wrap(err, "get_album_by_name")
}

// GetAlbumByExternalID looks up an album by one of its external identifier
// columns. The column comes from [schema.CoreAlbum], never from user input.
func (repository *PostgresRepository) GetAlbumByExternalID(context context.Context, column, value string) (*Album, error) {
	query := selectAlbums() + fmt.Sprintf(` WHERE %s = $1`, column)
	a, err := scanAlbum(repository.db.QueryRow(context, query, value))
	return a, dberr.Wrap(err, "get_album_by_external_id")
}

func (repository *PostgresRepository) CreateAlbum(context context.Context, a *Album) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s,
		                %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17,
		        $18, $19, $20, $21, $22, $23, $24, $25, $26, NOW())
		RETURNING %s, %s
	`,
		schema.CoreAlbum.Table,
		schema.CoreAlbum.ArtistID, schema.CoreAlbum.LibraryID, schema.CoreAlbum.Name,
		schema.CoreAlbum.NameNormalized, schema.CoreAlbum.SortName, schema.CoreAlbum.AlternateNames,
		schema.CoreAlbum.AlbumStatus, schema.CoreAlbum.AlbumType, schema.CoreAlbum.MetaDataStatus,
		schema.CoreAlbum.OriginalReleaseDate, schema.CoreAlbum.ReleaseDate, schema.CoreAlbum.IsCompilation,
		schema.CoreAlbum.Genres, schema.CoreAlbum.Moods, schema.CoreAlbum.Comment,
		schema.CoreAlbum.Directory, schema.CoreAlbum.MediaUniqueID,
		schema.CoreAlbum.MusicBrainzID, schema.CoreAlbum.DiscogsID, schema.CoreAlbum.SpotifyID,
		schema.CoreAlbum.ItunesID, schema.CoreAlbum.AmgID, schema.CoreAlbum.WikiDataID,
		schema.CoreAlbum.LastFmID, schema.CoreAlbum.SortOrder, schema.CoreAlbum.APIKey,
		schema.CoreAlbum.CreatedAt,
		schema.CoreAlbum.ID, schema.CoreAlbum.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		a.ArtistID, a.LibraryID, a.Name, a.NameNormalized, a.SortName, a.AlternateNames,
		int(a.AlbumStatus), int(a.AlbumType), a.MetaDataStatus, a.OriginalReleaseDate,
		a.ReleaseDate, a.IsCompilation, a.Genres, a.Moods, a.Comment, a.Directory,
		a.MediaUniqueID, a.MusicBrainzID, a.DiscogsID, a.SpotifyID, a.ItunesID, a.AmgID,
		a.WikiDataID, a.LastFmID, a.SortOrder, a.APIKey,
	).Scan(&a.ID, &a.CreatedAt)
	return dberr.Wrap(err, "create_album")
}

func (repository *PostgresRepository) UpdateAlbum(context context.Context, a *Album) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9,
		    %s = $10, %s = $11, %s = $12, %s = $13, %s = $14, %s = $15, %s = $16,
		    %s = $17, %s = $18, %s = $19, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.CoreAlbum.Table,
		schema.CoreAlbum.Name, schema.CoreAlbum.NameNormalized, schema.CoreAlbum.SortName,
		schema.CoreAlbum.AlternateNames, schema.CoreAlbum.AlbumStatus, schema.CoreAlbum.AlbumType,
		schema.CoreAlbum.MetaDataStatus, schema.CoreAlbum.OriginalReleaseDate,
		schema.CoreAlbum.ReleaseDate, schema.CoreAlbum.IsCompilation, schema.CoreAlbum.Genres,
		schema.CoreAlbum.Moods, schema.CoreAlbum.Comment, schema.CoreAlbum.Directory,
		schema.CoreAlbum.IsLocked, schema.CoreAlbum.SortOrder, schema.CoreAlbum.LastMetaDataUpdatedAt,
		schema.CoreAlbum.CalculatedRating, schema.CoreAlbum.LastUpdatedAt,
		schema.CoreAlbum.ID,
		schema.CoreAlbum.LastUpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		a.ID, a.Name, a.NameNormalized, a.SortName, a.AlternateNames, int(a.AlbumStatus),
		int(a.AlbumType), a.MetaDataStatus, a.OriginalReleaseDate, a.ReleaseDate,
		a.IsCompilation, a.Genres, a.Moods, a.Comment, a.Directory, a.IsLocked, a.SortOrder,
		a.LastMetaDataUpdatedAt, a.CalculatedRating,
	).Scan(&a.LastUpdatedAt)
	return dberr.Wrap(err, "update_album")
}

func (repository *PostgresRepository) DeleteAlbum(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CoreAlbum.Table, schema.CoreAlbum.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_album")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) IncrementPlayedCount(context context.Context, id int) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = %s + 1, %s = NOW() WHERE %s = $1`,
		schema.CoreAlbum.Table, schema.CoreAlbum.PlayedCount, schema.CoreAlbum.PlayedCount,
		schema.CoreAlbum.LastPlayedAt, schema.CoreAlbum.ID,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "increment_album_played_count")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// RecomputeCounters recalculates songcount, disccount and duration from the
// album's child rows, and refreshes each disc's own songcount on the way.
func (repository *PostgresRepository) RecomputeCounters(context context.Context, id int) error {
	discQuery := fmt.Sprintf(`
		UPDATE %s d
		SET %s = (SELECT count(*) FROM %s s WHERE s.%s = d.%s)
		WHERE d.%s = $1
	`,
		schema.CoreAlbumDisc.Table, schema.CoreAlbumDisc.SongCount,
		schema.CoreSong.Table, schema.CoreSong.AlbumDiscID, schema.CoreAlbumDisc.ID,
		schema.CoreAlbumDisc.AlbumID,
	)

	albumQuery := fmt.Sprintf(`
		UPDATE %s a
		SET %s = (SELECT count(*) FROM %s s JOIN %s d ON s.%s = d.%s WHERE d.%s = a.%s),
		    %s = (SELECT count(*) FROM %s d WHERE d.%s = a.%s),
		    %s = COALESCE((SELECT sum(s.%s) FROM %s s JOIN %s d ON s.%s = d.%s WHERE d.%s = a.%s), 0),
		    %s = NOW()
		WHERE a.%s = $1
	`,
		schema.CoreAlbum.Table,
		schema.CoreAlbum.SongCount, schema.CoreSong.Table, schema.CoreAlbumDisc.Table,
		schema.CoreSong.AlbumDiscID, schema.CoreAlbumDisc.ID, schema.CoreAlbumDisc.AlbumID, schema.CoreAlbum.ID,
		schema.CoreAlbum.DiscCount, schema.CoreAlbumDisc.Table, schema.CoreAlbumDisc.AlbumID, schema.CoreAlbum.ID,
		schema.CoreAlbum.Duration, schema.CoreSong.Duration, schema.CoreSong.Table, schema.CoreAlbumDisc.Table,
		schema.CoreSong.AlbumDiscID, schema.CoreAlbumDisc.ID, schema.CoreAlbumDisc.AlbumID, schema.CoreAlbum.ID,
		schema.CoreAlbum.LastUpdatedAt,
		schema.CoreAlbum.ID,
	)

	tx, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "recompute_album_counters")
	}
	defer tx.Rollback(context)

	if _, err := tx.Exec(context, discQuery, id); err != nil {
		return dberr.Wrap(err, "recompute_disc_counters")
	}

	cmd, err := tx.Exec(context, albumQuery, id)
	if err != nil {
		return dberr.Wrap(err, "recompute_album_counters")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return dberr.Wrap(tx.Commit(context), "recompute_album_counters")
}

func scanDisc(row interface{ Scan(...any) error }) (*Disc, error) {
	d := &Disc{}
	err := row.Scan(&d.ID, &d.AlbumID, &d.DiscNumber, &d.SongCount, &d.Title)
	return d, err
}

func (repository *PostgresRepository) ListDiscs(context context.Context, albumID int) ([]*Disc, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s`,
		strings.Join(schema.CoreAlbumDisc.Columns(), ", "), schema.CoreAlbumDisc.Table,
		schema.CoreAlbumDisc.AlbumID, schema.CoreAlbumDisc.DiscNumber,
	)

	rows, err := repository.db.Query(context, query, albumID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_discs")
	}
	defer rows.Close()

	var discs []*Disc
	for rows.Next() {
		d, err := scanDisc(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_disc")
		}
		discs = append(discs, d)
	}

	return discs, rows.Err()
}

func (repository *PostgresRepository) GetDisc(context context.Context, id int) (*Disc, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		strings.Join(schema.CoreAlbumDisc.Columns(), ", "), schema.CoreAlbumDisc.Table, schema.CoreAlbumDisc.ID,
	)

	d, err := scanDisc(repository.db.QueryRow(context, query, id))
	return d, dberr.Wrap(err, "get_disc")
}

func (repository *PostgresRepository) CreateDisc(context context.Context, d *Disc) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		RETURNING %s
	`,
		schema.CoreAlbumDisc.Table, schema.CoreAlbumDisc.AlbumID, schema.CoreAlbumDisc.DiscNumber,
		schema.CoreAlbumDisc.Title,
		schema.CoreAlbumDisc.ID,
	)

	err := repository.db.QueryRow(context, query, d.AlbumID, d.DiscNumber, d.Title).Scan(&d.ID)
	return dberr.Wrap(err, "create_disc")
}

func (repository *PostgresRepository) UpdateDisc(context context.Context, d *Disc) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = $3 WHERE %s = $1`,
		schema.CoreAlbumDisc.Table, schema.CoreAlbumDisc.DiscNumber, schema.CoreAlbumDisc.Title,
		schema.CoreAlbumDisc.ID,
	)

	cmd, err := repository.db.Exec(context, query, d.ID, d.DiscNumber, d.Title)
	if err != nil {
		return dberr.Wrap(err, "update_disc")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeleteDisc(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CoreAlbumDisc.Table, schema.CoreAlbumDisc.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_disc")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
