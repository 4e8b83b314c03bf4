package playqueue

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/sphildreth/melodee-sub003/internal/platform/database/schema"
	"github.com/sphildreth/melodee-sub003/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// selectEntries casts position to text so it round-trips into
// decimal.Decimal without float truncation.
func selectEntries() string {
	t := schema.LibraryPlayQueue
	columns := make([]string, 0, len(t.Columns()))
	for _, column := range t.Columns() {
		if column == t.Position {
			columns = append(columns, t.Position+"::text")
			continue
		}
		columns = append(columns, column)
	}
	return fmt.Sprintf(`SELECT %s FROM %s`, strings.Join(columns, ", "), t.Table)
}

func scanEntry(row interface{ Scan(...any) error }) (*Entry, error) {
	e := &Entry{}
	var position string
	err := row.Scan(
		&e.ID, &e.UserID, &e.SongID, &e.SongAPIKey, &position, &e.IsCurrentSong,
		&e.ChangedBy, &e.IsLocked, &e.SortOrder, &e.APIKey, &e.CreatedAt,
		&e.LastUpdatedAt, &e.Tags, &e.Notes, &e.Description,
	)
	if err != nil {
		return nil, err
	}

	e.Position, err = decimal.NewFromString(position)
	return e, err
}

func (repository *PostgresRepository) ListQueue(context context.Context, userID int) ([]*Entry, error) {
	query := selectEntries() + fmt.Sprintf(` WHERE %s = $1 ORDER BY %s`,
		schema.LibraryPlayQueue.UserID, schema.LibraryPlayQueue.Position)

	rows, err := repository.db.Query(context, query, userID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_play_queue")
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_play_queue_entry")
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func (repository *PostgresRepository) GetEntry(context context.Context, id int) (*Entry, error) {
	query := selectEntries() + fmt.Sprintf(` WHERE %s = $1`, schema.LibraryPlayQueue.ID)
	e, err := scanEntry(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_play_queue_entry")
	}
	return e, nil
}

// TailPosition returns the highest position in the user's queue, or nil for
// an empty queue.
func (repository *PostgresRepository) TailPosition(context context.Context, userID int) (*decimal.Decimal, error) {
	t := schema.LibraryPlayQueue
	query := fmt.Sprintf(`SELECT MAX(%s)::text FROM %s WHERE %s = $1`, t.Position, t.Table, t.UserID)

	var tail *string
	if err := repository.db.QueryRow(context, query, userID).Scan(&tail); err != nil {
		return nil, dberr.Wrap(err, "play_queue_tail_position")
	}
	if tail == nil {
		return nil, nil
	}

	position, err := decimal.NewFromString(*tail)
	if err != nil {
		return nil, dberr.Wrap(err, "play_queue_tail_position")
	}
	return &position, nil
}

func (repository *PostgresRepository) CreateEntry(context context.Context, e *Entry) error {
	t := schema.LibraryPlayQueue
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4::numeric, $5, $6, $7, NOW())
		RETURNING %s, %s
	`,
		t.Table,
		t.UserID, t.SongID, t.SongAPIKey, t.Position, t.IsCurrentSong, t.ChangedBy, t.APIKey, t.CreatedAt,
		t.ID, t.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		e.UserID, e.SongID, e.SongAPIKey, e.Position.String(), e.IsCurrentSong, e.ChangedBy, e.APIKey,
	).Scan(&e.ID, &e.CreatedAt)
	return dberr.Wrap(err, "create_play_queue_entry")
}

// SetCurrentSong moves the current-song marker to one entry, clearing it
// everywhere else in the same transaction.
func (repository *PostgresRepository) SetCurrentSong(context context.Context, userID, entryID int) error {
	tx, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "set_current_song_begin")
	}
	defer tx.Rollback(context)

	t := schema.LibraryPlayQueue

	clear := fmt.Sprintf(`UPDATE %s SET %s = false WHERE %s = $1 AND %s`,
		t.Table, t.IsCurrentSong, t.UserID, t.IsCurrentSong)
	if _, err := tx.Exec(context, clear, userID); err != nil {
		return dberr.Wrap(err, "set_current_song_clear")
	}

	mark := fmt.Sprintf(`UPDATE %s SET %s = true, %s = NOW() WHERE %s = $1 AND %s = $2`,
		t.Table, t.IsCurrentSong, t.LastUpdatedAt, t.UserID, t.ID)
	cmd, err := tx.Exec(context, mark, userID, entryID)
	if err != nil {
		return dberr.Wrap(err, "set_current_song_mark")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return dberr.Wrap(tx.Commit(context), "set_current_song_commit")
}

// SetPositions rewrites positions for the given entries in one transaction.
// ids and positions are parallel slices.
func (repository *PostgresRepository) SetPositions(context context.Context, userID int, ids []int, positions []decimal.Decimal) error {
	tx, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "set_positions_begin")
	}
	defer tx.Rollback(context)

	t := schema.LibraryPlayQueue

	// Park rows on negative positions so the rewrite cannot collide with the
	// per-user position uniqueness along the way.
	park := fmt.Sprintf(`UPDATE %s SET %s = -%s WHERE %s = $1`,
		t.Table, t.Position, t.Position, t.UserID)
	if _, err := tx.Exec(context, park, userID); err != nil {
		return dberr.Wrap(err, "set_positions_park")
	}

	update := fmt.Sprintf(`UPDATE %s SET %s = $3::numeric, %s = NOW() WHERE %s = $1 AND %s = $2`,
		t.Table, t.Position, t.LastUpdatedAt, t.UserID, t.ID)
	for i, id := range ids {
		cmd, err := tx.Exec(context, update, userID, id, positions[i].String())
		if err != nil {
			return dberr.Wrap(err, "set_positions_update")
		}
		if cmd.RowsAffected() == 0 {
			return dberr.ErrNotFound
		}
	}

	return dberr.Wrap(tx.Commit(context), "set_positions_commit")
}

func (repository *PostgresRepository) DeleteEntry(context context.Context, id int) error {
	t := schema.LibraryPlayQueue
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_play_queue_entry")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) ClearQueue(context context.Context, userID int) error {
	t := schema.LibraryPlayQueue
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.UserID)

	_, err := repository.db.Exec(context, query, userID)
	return dberr.Wrap(err, "clear_play_queue")
}
