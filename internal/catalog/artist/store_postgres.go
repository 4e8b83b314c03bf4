package artist

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

func scanArtist(row interface{ Scan(...any) error }) (*Artist, error) {
	a := &Artist{}
	err := row.Scan(
		&a.ID, &a.LibraryID, &a.Name, &a.NameNormalized, &a.SortName, &a.RealName,
		&a.AlternateNames, &a.Roles, &a.Directory, &a.Biography, &a.AlbumCount, &a.SongCount,
		&a.ImageCount, &a.MetaDataStatus, &a.MediaUniqueID, &a.PlayedCount, &a.LastPlayedAt,
		&a.LastMetaDataUpdatedAt, &a.CalculatedRating, &a.MusicBrainzID, &a.DiscogsID,
		&a.SpotifyID, &a.ItunesID, &a.AmgID, &a.WikiDataID, &a.LastFmID, &a.IsLocked,
		&a.SortOrder, &a.APIKey, &a.CreatedAt, &a.LastUpdatedAt, &a.Tags, &a.Notes, &a.Description,
	)
	return a, err
}

func selectArtists() string {
	return fmt.Sprintf(`SELECT %s FROM %s`,
		strings.Join(schema.CoreArtist.Columns(), ", "), schema.CoreArtist.Table)
}

func (repository *PostgresRepository) ListArtists(context context.Context, f Filter, limit, offset int) ([]*Artist, int, error) {
	query := selectArtists() + ` WHERE 1=1`
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE 1=1`, schema.CoreArtist.Table)

	args := []any{}
	countArgs := []any{}

	if f.LibraryID > 0 {
		clause := fmt.Sprintf(` AND %s = $%d`, schema.CoreArtist.LibraryID, len(args)+1)
		query += clause
		countQuery += clause
		args = append(args, f.LibraryID)
		countArgs = append(countArgs, f.LibraryID)
	}

	if f.Query != "" {
		searchTerm := "%" + f.Query + "%"
		clause := fmt.Sprintf(` AND (%s ILIKE $%d OR %s ILIKE $%d)`,
			schema.CoreArtist.Name, len(args)+1, schema.CoreArtist.AlternateNames, len(args)+1)
		query += clause
		countQuery += clause
		args = append(args, searchTerm)
		countArgs = append(countArgs, searchTerm)
	}

	query += fmt.Sprintf(` ORDER BY %s NULLS LAST, %s LIMIT $`, schema.CoreArtist.SortName, schema.CoreArtist.Name) +
		strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_artists")
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_artists")
	}
	defer rows.Close()

	var artists []*Artist
	for rows.Next() {
		a, err := scanArtist(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_artist")
		}
		artists = append(artists, a)
	}

	return artists, total, rows.Err()
}

func (repository *PostgresRepository) GetArtist(context context.Context, id int) (*Artist, error) {
	query := selectArtists() + fmt.Sprintf(` WHERE %s = $1`, schema.CoreArtist.ID)
	a, err := scanArtist(repository.db.QueryRow(context, query, id))
	return a, dberr.Wrap(err, "get_artist")
}

func (repository *PostgresRepository) GetArtistByAPIKey(context context.Context, apiKey string) (*Artist, error) {
	query := selectArtists() + fmt.Sprintf(` WHERE %s = $1`, schema.CoreArtist.APIKey)
	a, err := scanArtist(repository.db.QueryRow(context, query, apiKey))
	return a, dberr.Wrap(err, "get_artist_by_apikey")
}

func (repository *PostgresRepository) GetArtistByName(context context.Context, name string) (*Artist, error) {
	query := selectArtists() + fmt.Sprintf(` WHERE %s = $1`, schema.CoreArtist.Name)
	a, err := scanArtist(repository.db.QueryRow(context, query, name))
	return a, dberr.Wrap(err, "get_artist_by_name")
}

// GetArtistByExternalID looks up an artist by one of its external identifier
// columns. The column comes from [schema.CoreArtist], never from user input.
func (repository *PostgresRepository) GetArtistByExternalID(context context.Context, column, value string) (*Artist, error) {
	query := selectArtists() + fmt.Sprintf(` WHERE %s = $1`, column)
	a, err := scanArtist(repository.db.QueryRow(context, query, value))
	return a, dberr.Wrap(err, "get_artist_by_external_id")
}

func (repository *PostgresRepository) FindByNameNormalized(context context.Context, nameNormalized string) ([]*Artist, error) {
	query := selectArtists() + fmt.Sprintf(` WHERE %s = $1 ORDER BY %s`,
		schema.CoreArtist.NameNormalized, schema.CoreArtist.ID)

	rows, err := repository.db.Query(context, query, nameNormalized)
	if err != nil {
		return nil, dberr.Wrap(err, "find_artists_by_name_normalized")
	}
	defer rows.Close()

	var artists []*Artist
	for rows.Next() {
		a, err := scanArtist(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_artist")
		}
		artists = append(artists, a)
	}

	return artists, rows.Err()
}

func (repository *PostgresRepository) CreateArtist(context context.Context, a *Artist) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, NOW())
		RETURNING %s, %s
	`,
		schema.CoreArtist.Table,
		schema.CoreArtist.LibraryID, schema.CoreArtist.Name, schema.CoreArtist.NameNormalized,
		schema.CoreArtist.SortName, schema.CoreArtist.RealName, schema.CoreArtist.AlternateNames,
		schema.CoreArtist.Roles, schema.CoreArtist.Directory, schema.CoreArtist.Biography,
		schema.CoreArtist.MetaDataStatus, schema.CoreArtist.MediaUniqueID,
		schema.CoreArtist.MusicBrainzID, schema.CoreArtist.DiscogsID, schema.CoreArtist.SpotifyID,
		schema.CoreArtist.ItunesID, schema.CoreArtist.AmgID, schema.CoreArtist.WikiDataID,
		schema.CoreArtist.LastFmID, schema.CoreArtist.SortOrder, schema.CoreArtist.APIKey,
		schema.CoreArtist.CreatedAt,
		schema.CoreArtist.ID, schema.CoreArtist.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		a.LibraryID, a.Name, a.NameNormalized, a.SortName, a.RealName, a.AlternateNames,
		a.Roles, a.Directory, a.Biography, a.MetaDataStatus, a.MediaUniqueID,
		a.MusicBrainzID, a.DiscogsID, a.SpotifyID, a.ItunesID, a.AmgID, a.WikiDataID,
		a.LastFmID, a.SortOrder, a.APIKey,
	).Scan(&a.ID, &a.CreatedAt)
	return dberr.Wrap(err, "create_artist")
}

func (repository *PostgresRepository) UpdateArtist(context context.Context, a *Artist) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9,
		    %s = $10, %s = $11, %s = $12, %s = $13, %s = $14, %s = $15, %s = $16,
		    %s = $17, %s = $18, %s = $19, %s = $20, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.CoreArtist.Table,
		schema.CoreArtist.Name, schema.CoreArtist.NameNormalized, schema.CoreArtist.SortName,
		schema.CoreArtist.RealName, schema.CoreArtist.AlternateNames, schema.CoreArtist.Roles,
		schema.CoreArtist.Directory, schema.CoreArtist.Biography, schema.CoreArtist.MetaDataStatus,
		schema.CoreArtist.MusicBrainzID, schema.CoreArtist.DiscogsID, schema.CoreArtist.SpotifyID,
		schema.CoreArtist.ItunesID, schema.CoreArtist.AmgID, schema.CoreArtist.WikiDataID,
		schema.CoreArtist.LastFmID, schema.CoreArtist.IsLocked, schema.CoreArtist.SortOrder,
		schema.CoreArtist.LastMetaDataUpdatedAt, schema.CoreArtist.LastUpdatedAt,
		schema.CoreArtist.ID,
		schema.CoreArtist.LastUpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		a.ID, a.Name, a.NameNormalized, a.SortName, a.RealName, a.AlternateNames, a.Roles,
		a.Directory, a.Biography, a.MetaDataStatus, a.MusicBrainzID, a.DiscogsID, a.SpotifyID,
		a.ItunesID, a.AmgID, a.WikiDataID, a.LastFmID, a.IsLocked, a.SortOrder, a.LastMetaDataUpdatedAt,
	).Scan(&a.LastUpdatedAt)
	return dberr.Wrap(err, "update_artist")
}

func (repository *PostgresRepository) DeleteArtist(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CoreArtist.Table, schema.CoreArtist.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_artist")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// IncrementPlayedCount bumps the play counter atomically; concurrent players
// never lose an increment.
func (repository *PostgresRepository) IncrementPlayedCount(context context.Context, id int) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = %s + 1, %s = NOW() WHERE %s = $1`,
		schema.CoreArtist.Table, schema.CoreArtist.PlayedCount, schema.CoreArtist.PlayedCount,
		schema.CoreArtist.LastPlayedAt, schema.CoreArtist.ID,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "increment_artist_played_count")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// RecomputeCounters recalculates the denormalized album and song counts from
// child rows. Callers invoke it after bulk mutation; nothing keeps the
// counters fresh automatically.
func (repository *PostgresRepository) RecomputeCounters(context context.Context, id int) error {
	query := fmt.Sprintf(`
		UPDATE %s a
		SET %s = (SELECT count(*) FROM %s al WHERE al.%s = a.%s),
		    %s = (SELECT count(*) FROM %s s
		          JOIN %s d ON s.%s = d.%s
		          JOIN %s al ON d.%s = al.%s
		          WHERE al.%s = a.%s),
		    %s = NOW()
		WHERE a.%s = $1
	`,
		schema.CoreArtist.Table,
		schema.CoreArtist.AlbumCount, schema.CoreAlbum.Table, schema.CoreAlbum.ArtistID, schema.CoreArtist.ID,
		schema.CoreArtist.SongCount, schema.CoreSong.Table,
		schema.CoreAlbumDisc.Table, schema.CoreSong.AlbumDiscID, schema.CoreAlbumDisc.ID,
		schema.CoreAlbum.Table, schema.CoreAlbumDisc.AlbumID, schema.CoreAlbum.ID,
		schema.CoreAlbum.ArtistID, schema.CoreArtist.ID,
		schema.CoreArtist.LastUpdatedAt,
		schema.CoreArtist.ID,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "recompute_artist_counters")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
