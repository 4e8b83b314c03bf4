package share

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

func scanShare(row interface{ Scan(...any) error }) (*Share, error) {
	s := &Share{}
	err := row.Scan(
		&s.ID, &s.UserID, &s.SongIDs, &s.ExpiresAt, &s.IsDownloadable, &s.LastVisitedAt,
		&s.VisitCount, &s.IsLocked, &s.SortOrder, &s.APIKey, &s.CreatedAt,
		&s.LastUpdatedAt, &s.Tags, &s.Notes, &s.Description,
	)
	return s, err
}

func selectShares() string {
	return fmt.Sprintf(`SELECT %s FROM %s`,
		strings.Join(schema.LibraryShare.Columns(), ", "), schema.LibraryShare.Table)
}

func (repository *PostgresRepository) ListShares(context context.Context, userID int) ([]*Share, error) {
	query := selectShares() + fmt.Sprintf(` WHERE %s = $1 ORDER BY %s DESC`,
		schema.LibraryShare.UserID, schema.LibraryShare.CreatedAt)

	rows, err := repository.db.Query(context, query, userID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_shares")
	}
	defer rows.Close()

	var shares []*Share
	for rows.Next() {
		s, err := scanShare(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_share")
		}
		shares = append(shares, s)
	}

	return shares, rows.Err()
}

func (repository *PostgresRepository) GetShare(context context.Context, id int) (*Share, error) {
	query := selectShares() + fmt.Sprintf(` WHERE %s = $1`, schema.LibraryShare.ID)
	s, err := scanShare(repository.db.QueryRow(context, query, id))
	return s, dberr.Wrap(err, "get_share")
}

func (repository *PostgresRepository) GetShareByAPIKey(context context.Context, apiKey string) (*Share, error) {
	query := selectShares() + fmt.Sprintf(` WHERE %s = $1`, schema.LibraryShare.APIKey)
	s, err := scanShare(repository.db.QueryRow(context, query, apiKey))
	return s, dberr.Wrap(err, "get_share_by_apikey")
}

func (repository *PostgresRepository) CreateShare(context context.Context, s *Share) error {
	t := schema.LibraryShare
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING %s, %s
	`,
		t.Table,
		t.UserID, t.SongIDs, t.ExpiresAt, t.IsDownloadable, t.APIKey, t.CreatedAt,
		t.ID, t.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		s.UserID, s.SongIDs, s.ExpiresAt, s.IsDownloadable, s.APIKey,
	).Scan(&s.ID, &s.CreatedAt)
	return dberr.Wrap(err, "create_share")
}

func (repository *PostgresRepository) UpdateShare(context context.Context, s *Share) error {
	t := schema.LibraryShare
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		t.Table,
		t.SongIDs, t.ExpiresAt, t.IsDownloadable, t.LastUpdatedAt,
		t.ID,
		t.LastUpdatedAt,
	)

	err := repository.db.QueryRow(context, query, s.ID, s.SongIDs, s.ExpiresAt, s.IsDownloadable).Scan(&s.LastUpdatedAt)
	return dberr.Wrap(err, "update_share")
}

// RecordVisit bumps the visit tally atomically.
func (repository *PostgresRepository) RecordVisit(context context.Context, id int) error {
	t := schema.LibraryShare
	query := fmt.Sprintf(`UPDATE %s SET %s = %s + 1, %s = NOW() WHERE %s = $1`,
		t.Table, t.VisitCount, t.VisitCount, t.LastVisitedAt, t.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "record_share_visit")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeleteShare(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.LibraryShare.Table, schema.LibraryShare.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_share")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// DeleteExpired sweeps lapsed shares, returning how many went.
func (repository *PostgresRepository) DeleteExpired(context context.Context) (int, error) {
	t := schema.LibraryShare
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s IS NOT NULL AND %s < NOW()`,
		t.Table, t.ExpiresAt, t.ExpiresAt)

	cmd, err := repository.db.Exec(context, query)
	if err != nil {
		return 0, dberr.Wrap(err, "delete_expired_shares")
	}
	return int(cmd.RowsAffected()), nil
}
