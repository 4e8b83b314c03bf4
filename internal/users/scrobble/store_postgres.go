package scrobble

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
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

func scanScrobble(row interface{ Scan(...any) error }) (*Scrobble, error) {
	s := &Scrobble{}
	err := row.Scan(
		&s.ID, &s.UserID, &s.SongID, &s.ServiceURL, &s.PlayTimeInMs, &s.PlayerName,
		&s.ScrobbledAt, &s.IsLocked, &s.SortOrder, &s.APIKey, &s.CreatedAt,
		&s.LastUpdatedAt, &s.Tags, &s.Notes, &s.Description,
	)
	return s, err
}

func (repository *PostgresRepository) ListScrobbles(context context.Context, userID int, limit, offset int) ([]*Scrobble, int, error) {
	t := schema.LibraryScrobble

	var total int
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s = $1`, t.Table, t.UserID)
	if err := repository.db.QueryRow(context, countQuery, userID).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_scrobbles")
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s DESC LIMIT $2 OFFSET $3`,
		strings.Join(t.Columns(), ", "), t.Table, t.UserID, t.ScrobbledAt)

	rows, err := repository.db.Query(context, query, userID, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_scrobbles")
	}
	defer rows.Close()

	var scrobbles []*Scrobble
	for rows.Next() {
		s, err := scanScrobble(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_scrobble")
		}
		scrobbles = append(scrobbles, s)
	}

	return scrobbles, total, rows.Err()
}

// InsertScrobble writes a scrobble, absorbing replays of the natural key.
// The boolean result reports whether a new row landed.
func (repository *PostgresRepository) InsertScrobble(context context.Context, s *Scrobble) (bool, error) {
	t := schema.LibraryScrobble
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		ON CONFLICT (%s, %s, %s, %s) DO NOTHING
		RETURNING %s, %s
	`,
		t.Table,
		t.UserID, t.SongID, t.ServiceURL, t.PlayTimeInMs, t.PlayerName, t.ScrobbledAt,
		t.APIKey, t.CreatedAt,
		t.UserID, t.ServiceURL, t.SongID, t.PlayTimeInMs,
		t.ID, t.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		s.UserID, s.SongID, s.ServiceURL, s.PlayTimeInMs, s.PlayerName, s.ScrobbledAt, s.APIKey,
	).Scan(&s.ID, &s.CreatedAt)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		// Conflict branch: the natural key already exists.
		return false, nil
	}
	return false, dberr.Wrap(err, "insert_scrobble")
}

func (repository *PostgresRepository) DeleteScrobble(context context.Context, id int) error {
	t := schema.LibraryScrobble
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_scrobble")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
