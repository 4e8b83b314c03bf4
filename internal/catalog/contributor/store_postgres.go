package contributor

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

func scanContributor(row interface{ Scan(...any) error }) (*Contributor, error) {
	c := &Contributor{}
	err := row.Scan(
		&c.ID, &c.Role, &c.SubRole, &c.ArtistID, &c.ContributorName, &c.ContributorType,
		&c.MetaTagIdentifier, &c.AlbumID, &c.SongID, &c.IsLocked, &c.SortOrder, &c.APIKey,
		&c.CreatedAt, &c.LastUpdatedAt, &c.Tags, &c.Notes, &c.Description,
	)
	return c, err
}

func selectContributors() string {
	return fmt.Sprintf(`SELECT %s FROM %s`,
		strings.Join(schema.CoreContributor.Columns(), ", "), schema.CoreContributor.Table)
}

func (repository *PostgresRepository) list(context context.Context, column string, id int) ([]*Contributor, error) {
	query := selectContributors() + fmt.Sprintf(` WHERE %s = $1 ORDER BY %s, %s`,
		column, schema.CoreContributor.SortOrder, schema.CoreContributor.ID)

	rows, err := repository.db.Query(context, query, id)
	if err != nil {
		return nil, dberr.Wrap(err, "list_contributors")
	}
	defer rows.Close()

	var contributors []*Contributor
	for rows.Next() {
		c, err := scanContributor(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_contributor")
		}
		contributors = append(contributors, c)
	}

	return contributors, rows.Err()
}

func (repository *PostgresRepository) ListByAlbum(context context.Context, albumID int) ([]*Contributor, error) {
	return repository.list(context, schema.CoreContributor.AlbumID, albumID)
}

func (repository *PostgresRepository) ListBySong(context context.Context, songID int) ([]*Contributor, error) {
	return repository.list(context, schema.CoreContributor.SongID, songID)
}

func (repository *PostgresRepository) GetContributor(context context.Context, id int) (*Contributor, error) {
	query := selectContributors() + fmt.Sprintf(` WHERE %s = $1`, schema.CoreContributor.ID)
	c, err := scanContributor(repository.db.QueryRow(context, query, id))
	return c, dberr.Wrap(err, "get_contributor")
}

func (repository *PostgresRepository) CreateContributor(context context.Context, c *Contributor) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
		RETURNING %s, %s
	`,
		schema.CoreContributor.Table,
		schema.CoreContributor.Role, schema.CoreContributor.SubRole, schema.CoreContributor.ArtistID,
		schema.CoreContributor.ContributorName, schema.CoreContributor.ContributorType,
		schema.CoreContributor.MetaTagIdentifier, schema.CoreContributor.AlbumID,
		schema.CoreContributor.SongID, schema.CoreContributor.SortOrder, schema.CoreContributor.APIKey,
		schema.CoreContributor.CreatedAt,
		schema.CoreContributor.ID, schema.CoreContributor.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		c.Role, c.SubRole, c.ArtistID, c.ContributorName, c.ContributorType,
		c.MetaTagIdentifier, c.AlbumID, c.SongID, c.SortOrder, c.APIKey,
	).Scan(&c.ID, &c.CreatedAt)
	return dberr.Wrap(err, "create_contributor")
}

func (repository *PostgresRepository) UpdateContributor(context context.Context, c *Contributor) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.CoreContributor.Table,
		schema.CoreContributor.Role, schema.CoreContributor.SubRole, schema.CoreContributor.ArtistID,
		schema.CoreContributor.ContributorName, schema.CoreContributor.ContributorType,
		schema.CoreContributor.SortOrder, schema.CoreContributor.LastUpdatedAt,
		schema.CoreContributor.ID,
		schema.CoreContributor.LastUpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		c.ID, c.Role, c.SubRole, c.ArtistID, c.ContributorName, c.ContributorType, c.SortOrder,
	).Scan(&c.LastUpdatedAt)
	return dberr.Wrap(err, "update_contributor")
}

func (repository *PostgresRepository) DeleteContributor(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CoreContributor.Table, schema.CoreContributor.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_contributor")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// DeleteByAlbum clears an album's credit lines ahead of a re-scan rewrite.
func (repository *PostgresRepository) DeleteByAlbum(context context.Context, albumID int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.CoreContributor.Table, schema.CoreContributor.AlbumID)

	_, err := repository.db.Exec(context, query, albumID)
	return dberr.Wrap(err, "delete_contributors_by_album")
}
