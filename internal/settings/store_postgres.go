package settings

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

func scanSetting(row interface{ Scan(...any) error }) (*Setting, error) {
	s := &Setting{}
	err := row.Scan(
		&s.ID, &s.Key, &s.Value, &s.Comment, &s.Category, &s.IsLocked, &s.SortOrder,
		&s.APIKey, &s.CreatedAt, &s.LastUpdatedAt, &s.Tags, &s.Notes, &s.Description,
	)
	return s, err
}

func (repository *PostgresRepository) ListSettings(context context.Context) ([]*Setting, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s`,
		strings.Join(schema.SystemSetting.Columns(), ", "), schema.SystemSetting.Table,
		schema.SystemSetting.Key,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_settings")
	}
	defer rows.Close()

	var out []*Setting
	for rows.Next() {
		s, err := scanSetting(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_setting")
		}
		out = append(out, s)
	}

	return out, rows.Err()
}

func (repository *PostgresRepository) GetSetting(context context.Context, key string) (*Setting, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		strings.Join(schema.SystemSetting.Columns(), ", "), schema.SystemSetting.Table,
		schema.SystemSetting.Key,
	)

	s, err := scanSetting(repository.db.QueryRow(context, query, key))
	return s, dberr.Wrap(err, "get_setting")
}

// UpsertSetting inserts or updates a key in one round trip. The unique key
// index carries the conflict target, so concurrent admin writes cannot race
// into duplicates.
func (repository *PostgresRepository) UpsertSetting(context context.Context, s *Setting) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (%s) DO UPDATE
		SET %s = EXCLUDED.%s, %s = COALESCE(EXCLUDED.%s, %s.%s),
		    %s = COALESCE(EXCLUDED.%s, %s.%s), %s = NOW()
		RETURNING %s, %s
	`,
		schema.SystemSetting.Table,
		schema.SystemSetting.Key, schema.SystemSetting.Value, schema.SystemSetting.Comment,
		schema.SystemSetting.Category, schema.SystemSetting.APIKey, schema.SystemSetting.CreatedAt,
		schema.SystemSetting.Key,
		schema.SystemSetting.Value, schema.SystemSetting.Value,
		schema.SystemSetting.Comment, schema.SystemSetting.Comment, schema.SystemSetting.Table, schema.SystemSetting.Comment,
		schema.SystemSetting.Category, schema.SystemSetting.Category, schema.SystemSetting.Table, schema.SystemSetting.Category,
		schema.SystemSetting.LastUpdatedAt,
		schema.SystemSetting.ID, schema.SystemSetting.APIKey,
	)

	err := repository.db.QueryRow(context, query,
		s.Key, s.Value, s.Comment, s.Category, s.APIKey,
	).Scan(&s.ID, &s.APIKey)
	return dberr.Wrap(err, "upsert_setting")
}

func (repository *PostgresRepository) DeleteSetting(context context.Context, key string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.SystemSetting.Table, schema.SystemSetting.Key)

	cmd, err := repository.db.Exec(context, query, key)
	if err != nil {
		return dberr.Wrap(err, "delete_setting")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
