package library

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

func scanLibrary(row interface{ Scan(...any) error }) (*Library, error) {
	l := &Library{}
	err := row.Scan(
		&l.ID, &l.Name, &l.Path, &l.Type, &l.ArtistCount, &l.AlbumCount, &l.SongCount,
		&l.LastScanAt, &l.IsLocked, &l.SortOrder, &l.APIKey, &l.CreatedAt, &l.LastUpdatedAt,
		&l.Tags, &l.Notes, &l.Description,
	)
	return l, err
}

func (repository *PostgresRepository) ListLibraries(context context.Context) ([]*Library, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s, %s`,
		strings.Join(schema.CoreLibrary.Columns(), ", "), schema.CoreLibrary.Table,
		schema.CoreLibrary.SortOrder, schema.CoreLibrary.Name,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_libraries")
	}
	defer rows.Close()

	var libraries []*Library
	for rows.Next() {
		l, err := scanLibrary(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_library")
		}
		libraries = append(libraries, l)
	}

	return libraries, rows.Err()
}

func (repository *PostgresRepository) GetLibrary(context context.Context, id int) (*Library, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		strings.Join(schema.CoreLibrary.Columns(), ", "), schema.CoreLibrary.Table, schema.CoreLibrary.ID,
	)

	l, err := scanLibrary(repository.db.QueryRow(context, query, id))
	return l, dberr.Wrap(err, "get_library")
}

func (repository *PostgresRepository) GetLibraryByAPIKey(context context.Context, apiKey string) (*Library, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		strings.Join(schema.CoreLibrary.Columns(), ", "), schema.CoreLibrary.Table, schema.CoreLibrary.APIKey,
	)

	l, err := scanLibrary(repository.db.QueryRow(context, query, apiKey))
	return l, dberr.Wrap(err, "get_library_by_apikey")
}

func (repository *PostgresRepository) GetLibraryByType(context context.Context, t Type) (*Library, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s LIMIT 1`,
		strings.Join(schema.CoreLibrary.Columns(), ", "), schema.CoreLibrary.Table,
		schema.CoreLibrary.Type, schema.CoreLibrary.ID,
	)

	l, err := scanLibrary(repository.db.QueryRow(context, query, int(t)))
	return l, dberr.Wrap(err, "get_library_by_type")
}

func (repository *PostgresRepository) CreateLibrary(context context.Context, l *Library) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING %s, %s
	`,
		schema.CoreLibrary.Table, schema.CoreLibrary.Name, schema.CoreLibrary.Path,
		schema.CoreLibrary.Type, schema.CoreLibrary.SortOrder, schema.CoreLibrary.APIKey,
		schema.CoreLibrary.Tags, schema.CoreLibrary.Notes, schema.CoreLibrary.Description,
		schema.CoreLibrary.CreatedAt,
		schema.CoreLibrary.ID, schema.CoreLibrary.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		l.Name, l.Path, int(l.Type), l.SortOrder, l.APIKey, l.Tags, l.Notes, l.Description,
	).Scan(&l.ID, &l.CreatedAt)
	return dberr.Wrap(err, "create_library")
}

func (repository *PostgresRepository) UpdateLibrary(context context.Context, l *Library) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.CoreLibrary.Table,
		schema.CoreLibrary.Name, schema.CoreLibrary.Path, schema.CoreLibrary.Type,
		schema.CoreLibrary.IsLocked, schema.CoreLibrary.SortOrder, schema.CoreLibrary.Tags,
		schema.CoreLibrary.Notes, schema.CoreLibrary.Description, schema.CoreLibrary.LastUpdatedAt,
		schema.CoreLibrary.ID,
		schema.CoreLibrary.LastUpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		l.ID, l.Name, l.Path, int(l.Type), l.IsLocked, l.SortOrder, l.Tags, l.Notes, l.Description,
	).Scan(&l.LastUpdatedAt)
	return dberr.Wrap(err, "update_library")
}

func (repository *PostgresRepository) UpdateScanStats(context context.Context, id int, stats ScanStats) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = NOW()
		WHERE %s = $1
	`,
		schema.CoreLibrary.Table,
		schema.CoreLibrary.ArtistCount, schema.CoreLibrary.AlbumCount, schema.CoreLibrary.SongCount,
		schema.CoreLibrary.LastScanAt, schema.CoreLibrary.LastUpdatedAt,
		schema.CoreLibrary.ID,
	)

	cmd, err := repository.db.Exec(context, query, id, stats.ArtistCount, stats.AlbumCount, stats.SongCount, stats.ScannedAt)
	if err != nil {
		return dberr.Wrap(err, "update_library_scan_stats")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeleteLibrary(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CoreLibrary.Table, schema.CoreLibrary.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_library")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
