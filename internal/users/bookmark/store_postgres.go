package bookmark

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

func scanBookmark(row interface{ Scan(...any) error }) (*Bookmark, error) {
	b := &Bookmark{}
	err := row.Scan(
		&b.ID, &b.UserID, &b.SongID, &b.Position, &b.Comment, &b.IsLocked, &b.SortOrder,
		&b.APIKey, &b.CreatedAt, &b.LastUpdatedAt, &b.Tags, &b.Notes, &b.Description,
	)
	return b, err
}

func (repository *PostgresRepository) ListBookmarks(context context.Context, userID int) ([]*Bookmark, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s DESC`,
		strings.Join(schema.LibraryBookmark.Columns(), ", "), schema.LibraryBookmark.Table,
		schema.LibraryBookmark.UserID, schema.LibraryBookmark.CreatedAt)

	rows, err := repository.db.Query(context, query, userID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_bookmarks")
	}
	defer rows.Close()

	var bookmarks []*Bookmark
	for rows.Next() {
		b, err := scanBookmark(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_bookmark")
		}
		bookmarks = append(bookmarks, b)
	}

	return bookmarks, rows.Err()
}

func (repository *PostgresRepository) GetBookmark(context context.Context, userID, songID int) (*Bookmark, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s = $2`,
		strings.Join(schema.LibraryBookmark.Columns(), ", "), schema.LibraryBookmark.Table,
		schema.LibraryBookmark.UserID, schema.LibraryBookmark.SongID)

	b, err := scanBookmark(repository.db.QueryRow(context, query, userID, songID))
	return b, dberr.Wrap(err, "get_bookmark")
}

func (repository *PostgresRepository) UpsertBookmark(context context.Context, b *Bookmark) error {
	t := schema.LibraryBookmark
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (%s, %s) DO UPDATE
		SET %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = NOW()
		RETURNING %s, %s
	`,
		t.Table,
		t.UserID, t.SongID, t.Position, t.Comment, t.APIKey, t.CreatedAt,
		t.UserID, t.SongID,
		t.Position, t.Position, t.Comment, t.Comment, t.LastUpdatedAt,
		t.ID, t.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		b.UserID, b.SongID, b.Position, b.Comment, b.APIKey,
	).Scan(&b.ID, &b.CreatedAt)
	return dberr.Wrap(err, "upsert_bookmark")
}

func (repository *PostgresRepository) DeleteBookmark(context context.Context, userID, songID int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.LibraryBookmark.Table, schema.LibraryBookmark.UserID, schema.LibraryBookmark.SongID)

	cmd, err := repository.db.Exec(context, query, userID, songID)
	if err != nil {
		return dberr.Wrap(err, "delete_bookmark")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
