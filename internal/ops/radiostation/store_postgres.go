package radiostation

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

func scanStation(row interface{ Scan(...any) error }) (*RadioStation, error) {
	r := &RadioStation{}
	err := row.Scan(
		&r.ID, &r.Name, &r.StreamURL, &r.HomePageURL, &r.IsLocked, &r.SortOrder,
		&r.APIKey, &r.CreatedAt, &r.LastUpdatedAt, &r.Tags, &r.Notes, &r.Description,
	)
	return r, err
}

func selectStations() string {
	return fmt.Sprintf(`SELECT %s FROM %s`,
		strings.Join(schema.CoreRadioStation.Columns(), ", "), schema.CoreRadioStation.Table)
}

func (repository *PostgresRepository) ListStations(context context.Context) ([]*RadioStation, error) {
	query := selectStations() + fmt.Sprintf(` ORDER BY %s, %s`,
		schema.CoreRadioStation.SortOrder, schema.CoreRadioStation.Name)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_radio_stations")
	}
	defer rows.Close()

	var stations []*RadioStation
	for rows.Next() {
		r, err := scanStation(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_radio_station")
		}
		stations = append(stations, r)
	}

	return stations, rows.Err()
}

func (repository *PostgresRepository) GetStation(context context.Context, id int) (*RadioStation, error) {
	query := selectStations() + fmt.Sprintf(` WHERE %s = $1`, schema.CoreRadioStation.ID)
	r, err := scanStation(repository.db.QueryRow(context, query, id))
	return r, dberr.Wrap(err, "get_radio_station")
}

func (repository *PostgresRepository) GetStationByAPIKey(context context.Context, apiKey string) (*RadioStation, error) {
	query := selectStations() + fmt.Sprintf(` WHERE %s = $1`, schema.CoreRadioStation.APIKey)
	r, err := scanStation(repository.db.QueryRow(context, query, apiKey))
	return r, dberr.Wrap(err, "get_radio_station_by_apikey")
}

func (repository *PostgresRepository) CreateStation(context context.Context, r *RadioStation) error {
	t := schema.CoreRadioStation
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING %s, %s
	`,
		t.Table,
		t.Name, t.StreamURL, t.HomePageURL, t.SortOrder, t.APIKey, t.CreatedAt,
		t.ID, t.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		r.Name, r.StreamURL, r.HomePageURL, r.SortOrder, r.APIKey,
	).Scan(&r.ID, &r.CreatedAt)
	return dberr.Wrap(err, "create_radio_station")
}

func (repository *PostgresRepository) UpdateStation(context context.Context, r *RadioStation) error {
	t := schema.CoreRadioStation
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		t.Table,
		t.Name, t.StreamURL, t.HomePageURL, t.SortOrder, t.LastUpdatedAt,
		t.ID,
		t.LastUpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		r.ID, r.Name, r.StreamURL, r.HomePageURL, r.SortOrder,
	).Scan(&r.LastUpdatedAt)
	return dberr.Wrap(err, "update_radio_station")
}

func (repository *PostgresRepository) DeleteStation(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.CoreRadioStation.Table, schema.CoreRadioStation.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_radio_station")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
