package user

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

func scanUser(row interface{ Scan(...any) error }) (*User, error) {
	u := &User{}
	err := row.Scan(
		&u.ID, &u.UserName, &u.UserNameNormalized, &u.Email, &u.EmailNormalized,
		&u.PasswordHash, &u.PublicKey, &u.IsAdmin, &u.IsScrobblingEnabled, &u.HasSettingsRole,
		&u.HasDownloadRole, &u.HasUploadRole, &u.HasPlaylistRole, &u.HasStreamRole,
		&u.HasJukeboxRole, &u.HasShareRole, &u.LastLoginAt, &u.LastActivityAt, &u.SongsPlayed,
		&u.ArtistsLiked, &u.ArtistsDisliked, &u.AlbumsLiked, &u.AlbumsDisliked, &u.SongsLiked,
		&u.SongsDisliked, &u.IsLocked, &u.SortOrder, &u.APIKey, &u.CreatedAt, &u.LastUpdatedAt,
		&u.Tags, &u.Notes, &u.Description,
	)
	return u, err
}

func selectUsers() string {
	return fmt.Sprintf(`SELECT %s FROM %s`,
		strings.Join(schema.UsersAccount.Columns(), ", "), schema.UsersAccount.Table)
}

func (repository *PostgresRepository) ListUsers(context context.Context, limit, offset int) ([]*User, int, error) {
	var total int
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.UsersAccount.Table)
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_users")
	}

	query := selectUsers() + fmt.Sprintf(` ORDER BY %s LIMIT $1 OFFSET $2`, schema.UsersAccount.UserName)
	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_users")
	}
	defer rows.Close()

	var users []*User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_user")
		}
		users = append(users, u)
	}

	return users, total, rows.Err()
}

func (repository *PostgresRepository) GetUser(context context.Context, id int) (*User, error) {
	query := selectUsers() + fmt.Sprintf(` WHERE %s = $1`, schema.UsersAccount.ID)
	u, err := scanUser(repository.db.QueryRow(context, query, id))
	return u, dberr.Wrap(err, "get_user")
}

func (repository *PostgresRepository) GetUserByAPIKey(context context.Context, apiKey string) (*User, error) {
	query := selectUsers() + fmt.Sprintf(` WHERE %s = $1`, schema.UsersAccount.APIKey)
	u, err := scanUser(repository.db.QueryRow(context, query, apiKey))
	return u, dberr.Wrap(err, "get_user_by_apikey")
}

func (repository *PostgresRepository) GetUserByUserName(context context.Context, userNameNormalized string) (*User, error) {
	query := selectUsers() + fmt.Sprintf(` WHERE %s = $1`, schema.UsersAccount.UserNameNormalized)
	u, err := scanUser(repository.db.QueryRow(context, query, userNameNormalized))
	return u, dberr.Wrap(err, "get_user_by_username")
}

func (repository *PostgresRepository) GetUserByEmail(context context.Context, emailNormalized string) (*User, error) {
	query := selectUsers() + fmt.Sprintf(` WHERE %s = $1`, schema.UsersAccount.EmailNormalized)
	u, err := scanUser(repository.db.QueryRow(context, query, emailNormalized))
	return u, dberr.Wrap(err, "get_user_by_email")
}

func (repository *PostgresRepository) CreateUser(context context.Context, u *User) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, NOW())
		RETURNING %s, %s
	`,
		schema.UsersAccount.Table,
		schema.UsersAccount.UserName, schema.UsersAccount.UserNameNormalized,
		schema.UsersAccount.Email, schema.UsersAccount.EmailNormalized,
		schema.UsersAccount.PasswordHash, schema.UsersAccount.PublicKey,
		schema.UsersAccount.IsAdmin, schema.UsersAccount.IsScrobblingEnabled,
		schema.UsersAccount.HasSettingsRole, schema.UsersAccount.HasDownloadRole,
		schema.UsersAccount.HasUploadRole, schema.UsersAccount.HasPlaylistRole,
		schema.UsersAccount.HasStreamRole, schema.UsersAccount.HasJukeboxRole,
		schema.UsersAccount.HasShareRole, schema.UsersAccount.APIKey,
		schema.UsersAccount.CreatedAt,
		schema.UsersAccount.ID, schema.UsersAccount.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		u.UserName, u.UserNameNormalized, u.Email, u.EmailNormalized, u.PasswordHash,
		u.PublicKey, u.IsAdmin, u.IsScrobblingEnabled, u.HasSettingsRole, u.HasDownloadRole,
		u.HasUploadRole, u.HasPlaylistRole, u.HasStreamRole, u.HasJukeboxRole, u.HasShareRole,
		u.APIKey,
	).Scan(&u.ID, &u.CreatedAt)
	return dberr.Wrap(err, "create_user")
}

func (repository *PostgresRepository) UpdateUser(context context.Context, u *User) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9,
		    %s = $10, %s = $11, %s = $12, %s = $13, %s = $14, %s = $15, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.UsersAccount.Table,
		schema.UsersAccount.UserName, schema.UsersAccount.UserNameNormalized,
		schema.UsersAccount.Email, schema.UsersAccount.EmailNormalized,
		schema.UsersAccount.IsAdmin, schema.UsersAccount.IsScrobblingEnabled,
		schema.UsersAccount.HasSettingsRole, schema.UsersAccount.HasDownloadRole,
		schema.UsersAccount.HasUploadRole, schema.UsersAccount.HasPlaylistRole,
		schema.UsersAccount.HasStreamRole, schema.UsersAccount.HasJukeboxRole,
		schema.UsersAccount.HasShareRole, schema.UsersAccount.IsLocked,
		schema.UsersAccount.LastUpdatedAt,
		schema.UsersAccount.ID,
		schema.UsersAccount.LastUpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		u.ID, u.UserName, u.UserNameNormalized, u.Email, u.EmailNormalized, u.IsAdmin,
		u.IsScrobblingEnabled, u.HasSettingsRole, u.HasDownloadRole, u.HasUploadRole,
		u.HasPlaylistRole, u.HasStreamRole, u.HasJukeboxRole, u.HasShareRole, u.IsLocked,
	).Scan(&u.LastUpdatedAt)
	return dberr.Wrap(err, "update_user")
}

func (repository *PostgresRepository) UpdatePasswordHash(context context.Context, id int, hash string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = NOW() WHERE %s = $1`,
		schema.UsersAccount.Table, schema.UsersAccount.PasswordHash,
		schema.UsersAccount.LastUpdatedAt, schema.UsersAccount.ID,
	)

	cmd, err := repository.db.Exec(context, query, id, hash)
	if err != nil {
		return dberr.Wrap(err, "update_password_hash")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// TouchActivity stamps lastactivityat, and lastloginat too when login is set.
func (repository *PostgresRepository) TouchActivity(context context.Context, id int, login bool) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = NOW() WHERE %s = $1`,
		schema.UsersAccount.Table, schema.UsersAccount.LastActivityAt, schema.UsersAccount.ID)
	if login {
		query = fmt.Sprintf(`UPDATE %s SET %s = NOW(), %s = NOW() WHERE %s = $1`,
			schema.UsersAccount.Table, schema.UsersAccount.LastActivityAt,
			schema.UsersAccount.LastLoginAt, schema.UsersAccount.ID)
	}

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "touch_user_activity")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// BumpCounter applies an atomic delta to one of the per-user counters. The
// counter name comes from the Counter constants, never from user input.
func (repository *PostgresRepository) BumpCounter(context context.Context, id int, counter string, delta int) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = GREATEST(%s + $2, 0) WHERE %s = $1`,
		schema.UsersAccount.Table, counter, counter, schema.UsersAccount.ID)

	cmd, err := repository.db.Exec(context, query, id, delta)
	if err != nil {
		return dberr.Wrap(err, "bump_user_counter")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeleteUser(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.UsersAccount.Table, schema.UsersAccount.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_user")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func scanPlayer(row interface{ Scan(...any) error }) (*Player, error) {
	p := &Player{}
	err := row.Scan(
		&p.ID, &p.UserID, &p.Name, &p.UserAgent, &p.Client, &p.IPAddress, &p.HostName,
		&p.MaxBitRate, &p.ScrobbleEnabled, &p.TranscodingID, &p.LastSeenAt, &p.IsLocked,
		&p.SortOrder, &p.APIKey, &p.CreatedAt, &p.LastUpdatedAt, &p.Tags, &p.Notes, &p.Description,
	)
	return p, err
}

func selectPlayers() string {
	return fmt.Sprintf(`SELECT %s FROM %s`,
		strings.Join(schema.UsersPlayer.Columns(), ", "), schema.UsersPlayer.Table)
}

func (repository *PostgresRepository) ListPlayers(context context.Context, userID int) ([]*Player, error) {
	query := selectPlayers() + fmt.Sprintf(` WHERE %s = $1 ORDER BY %s DESC NULLS LAST`,
		schema.UsersPlayer.UserID, schema.UsersPlayer.LastSeenAt)

	rows, err := repository.db.Query(context, query, userID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_players")
	}
	defer rows.Close()

	var players []*Player
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_player")
		}
		players = append(players, p)
	}

	return players, rows.Err()
}

func (repository *PostgresRepository) FindPlayer(context context.Context, userID int, client string, userAgent *string) (*Player, error) {
	query := selectPlayers() + fmt.Sprintf(` WHERE %s = $1 AND %s = $2 AND %s IS NOT DISTINCT FROM $3`,
		schema.UsersPlayer.UserID, schema.UsersPlayer.Client, schema.UsersPlayer.UserAgent)

	p, err := scanPlayer(repository.db.QueryRow(context, query, userID, client, userAgent))
	return p, dberr.Wrap(err, "find_player")
}

func (repository *PostgresRepository) CreatePlayer(context context.Context, p *Player) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), $10, NOW())
		RETURNING %s, %s
	`,
		schema.UsersPlayer.Table,
		schema.UsersPlayer.UserID, schema.UsersPlayer.Name, schema.UsersPlayer.UserAgent,
		schema.UsersPlayer.Client, schema.UsersPlayer.IPAddress, schema.UsersPlayer.HostName,
		schema.UsersPlayer.MaxBitRate, schema.UsersPlayer.ScrobbleEnabled,
		schema.UsersPlayer.TranscodingID, schema.UsersPlayer.LastSeenAt,
		schema.UsersPlayer.APIKey, schema.UsersPlayer.CreatedAt,
		schema.UsersPlayer.ID, schema.UsersPlayer.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		p.UserID, p.Name, p.UserAgent, p.Client, p.IPAddress, p.HostName, p.MaxBitRate,
		p.ScrobbleEnabled, p.TranscodingID, p.APIKey,
	).Scan(&p.ID, &p.CreatedAt)
	return dberr.Wrap(err, "create_player")
}

func (repository *PostgresRepository) UpdatePlayer(context context.Context, p *Player) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = NOW(), %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.UsersPlayer.Table,
		schema.UsersPlayer.Name, schema.UsersPlayer.IPAddress, schema.UsersPlayer.MaxBitRate,
		schema.UsersPlayer.ScrobbleEnabled, schema.UsersPlayer.TranscodingID,
		schema.UsersPlayer.LastSeenAt, schema.UsersPlayer.LastUpdatedAt,
		schema.UsersPlayer.ID,
		schema.UsersPlayer.LastUpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		p.ID, p.Name, p.IPAddress, p.MaxBitRate, p.ScrobbleEnabled, p.TranscodingID,
	).Scan(&p.LastUpdatedAt)
	return dberr.Wrap(err, "update_player")
}

func (repository *PostgresRepository) DeletePlayer(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.UsersPlayer.Table, schema.UsersPlayer.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_player")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
