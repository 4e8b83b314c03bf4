package scanhistory

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

func scanHistory(row interface{ Scan(...any) error }) (*ScanHistory, error) {
	h := &ScanHistory{}
	err := row.Scan(
		&h.ID, &h.LibraryID, &h.ForArtistID, &h.ForAlbumID, &h.FoundArtistsCount,
		&h.FoundAlbumsCount, &h.FoundSongsCount, &h.DurationInMs, &h.CreatedAt,
	)
	return h, err
}

func selectHistory() string {
	return fmt.Sprintf(`SELECT %s FROM %s`,
		strings.Join(schema.SystemLibraryScanHistory.Columns(), ", "), schema.SystemLibraryScanHistory.Table)
}

func (repository *PostgresRepository) ListByLibrary(context context.Context, libraryID int, limit, offset int) ([]*ScanHistory, int, error) {
	t := schema.SystemLibraryScanHistory

	var total int
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s = $1`, t.Table, t.LibraryID)
	if err := repository.db.QueryRow(context, countQuery, libraryID).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_scan_history")
	}

	query := selectHistory() + fmt.Sprintf(` WHERE %s = $1 ORDER BY %s DESC LIMIT $2 OFFSET $3`,
		t.LibraryID, t.CreatedAt)

	rows, err := repository.db.Query(context, query, libraryID, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_scan_history")
	}
	defer rows.Close()

	var history []*ScanHistory
	for rows.Next() {
		h, err := scanHistory(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_scan_history")
		}
		history = append(history, h)
	}

	return history, total, rows.Err()
}

func (repository *PostgresRepository) LatestForLibrary(context context.Context, libraryID int) (*ScanHistory, error) {
	t := schema.SystemLibraryScanHistory
	query := selectHistory() + fmt.Sprintf(` WHERE %s = $1 ORDER BY %s DESC LIMIT 1`, t.LibraryID, t.CreatedAt)

	h, err := scanHistory(repository.db.QueryRow(context, query, libraryID))
	return h, dberr.Wrap(err, "latest_scan_history")
}

func (repository *PostgresRepository) Append(context context.Context, h *ScanHistory) error {
	t := schema.SystemLibraryScanHistory
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING %s, %s
	`,
		t.Table,
		t.LibraryID, t.ForArtistID, t.ForAlbumID, t.FoundArtistsCount, t.FoundAlbumsCount,
		t.FoundSongsCount, t.DurationInMs, t.CreatedAt,
		t.ID, t.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		h.LibraryID, h.ForArtistID, h.ForAlbumID, h.FoundArtistsCount, h.FoundAlbumsCount,
		h.FoundSongsCount, h.DurationInMs,
	).Scan(&h.ID, &h.CreatedAt)
	return dberr.Wrap(err, "append_scan_history")
}

// PruneOlderThan removes scan records older than the retention window.
func (repository *PostgresRepository) PruneOlderThan(context context.Context, days int) (int, error) {
	t := schema.SystemLibraryScanHistory
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s < NOW() - make_interval(days => $1)`,
		t.Table, t.CreatedAt)

	cmd, err := repository.db.Exec(context, query, days)
	if err != nil {
		return 0, dberr.Wrap(err, "prune_scan_history")
	}
	return int(cmd.RowsAffected()), nil
}
