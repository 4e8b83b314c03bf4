package user

import (
	"context"
	"log/slog"
	"strings"

	"github.com/sphildreth/melodee-sub003/internal/platform/apperr"
	"github.com/sphildreth/melodee-sub003/internal/platform/constants"
	"github.com/sphildreth/melodee-sub003/internal/platform/sec"
	"github.com/sphildreth/melodee-sub003/internal/platform/validate"
	"github.com/sphildreth/melodee-sub003/pkg/apikey"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// NormalizeUserName uppercases a user name for case-insensitive uniqueness.
func NormalizeUserName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// NormalizeEmail uppercases an email address for case-insensitive uniqueness.
func NormalizeEmail(email string) string {
	return strings.ToUpper(strings.TrimSpace(email))
}

func (service *Service) ListUsers(context context.Context, limit, offset int) ([]*User, int, error) {
	return service.repo.ListUsers(context, limit, offset)
}

func (service *Service) GetUser(context context.Context, id int) (*User, error) {
	return service.repo.GetUser(context, id)
}

func (service *Service) GetUserByAPIKey(context context.Context, key string) (*User, error) {
	return service.repo.GetUserByAPIKey(context, key)
}

func (service *Service) GetUserByUserName(context context.Context, userName string) (*User, error) {
	return service.repo.GetUserByUserName(context, NormalizeUserName(userName))
}

func (service *Service) validate(u *User) error {
	validator := &validate.Validator{}
	validator.Required(FieldUserName, u.UserName).MaxLen(FieldUserName, u.UserName, constants.MaxGeneralInputLength)
	validator.Required(FieldEmail, u.Email).Email(FieldEmail, u.Email).MaxLen(FieldEmail, u.Email, constants.MaxGeneralInputLength)
	return validator.Err()
}

// CreateUser registers a new account. The plaintext password is hashed before
// it touches the store.
func (service *Service) CreateUser(context context.Context, u *User, password string) error {
	if err := service.validate(u); err != nil {
		return err
	}
	if password == "" {
		return validate.RequiredError(FieldPassword, "This field is required")
	}

	hash, err := sec.HashPassword(password)
	if err != nil {
		return apperr.Internal(err)
	}
	u.PasswordHash = hash
	u.UserNameNormalized = NormalizeUserName(u.UserName)
	u.EmailNormalized = NormalizeEmail(u.Email)
	if u.APIKey == "" {
		u.APIKey = apikey.New()
	}

	if err := service.repo.CreateUser(context, u); err != nil {
		return err
	}

	service.logger.Info("user_created", slog.String("username", u.UserName), slog.Int("user_id", u.ID))
	return nil
}

func (service *Service) UpdateUser(context context.Context, id int, u *User) error {
	u.ID = id
	if err := service.validate(u); err != nil {
		return err
	}
	u.UserNameNormalized = NormalizeUserName(u.UserName)
	u.EmailNormalized = NormalizeEmail(u.Email)

	if err := service.repo.UpdateUser(context, u); err != nil {
		return err
	}

	service.logger.Info("user_updated", slog.Int("user_id", u.ID))
	return nil
}

// Authenticate checks credentials by normalized user name and stamps the
// login timestamps on success. The caller gets a generic validation error on
// any mismatch, never a hint at which half failed.
func (service *Service) Authenticate(context context.Context, userName, password string) (*User, error) {
	u, err := service.repo.GetUserByUserName(context, NormalizeUserName(userName))
	if err != nil {
		if apperr.IsCode(err, apperr.CodeNotFound) {
			return nil, apperr.ValidationError("invalid credentials")
		}
		return nil, err
	}
	if u.IsLocked {
		return nil, apperr.ValidationError("account is locked")
	}

	if !sec.CheckPasswordHash(password, u.PasswordHash) {
		return nil, apperr.ValidationError("invalid credentials")
	}

	if err := service.repo.TouchActivity(context, u.ID, true); err != nil {
		service.logger.Error("touch_activity_failed", slog.Int("user_id", u.ID), slog.Any("error", err))
	}

	return u, nil
}

func (service *Service) ChangePassword(context context.Context, id int, password string) error {
	if password == "" {
		return validate.RequiredError(FieldPassword, "This field is required")
	}

	hash, err := sec.HashPassword(password)
	if err != nil {
		return apperr.Internal(err)
	}

	return service.repo.UpdatePasswordHash(context, id, hash)
}

// BumpCounter applies a delta to one of the denormalized per-user counters.
// Unknown counter names are rejected before they reach SQL.
func (service *Service) BumpCounter(context context.Context, id int, counter string, delta int) error {
	switch counter {
	case CounterSongsPlayed, CounterArtistsLiked, CounterArtistsDisliked,
		CounterAlbumsLiked, CounterAlbumsDisliked, CounterSongsLiked, CounterSongsDisliked:
	default:
		return apperr.ValidationError("unknown counter: " + counter)
	}
	return service.repo.BumpCounter(context, id, counter, delta)
}

// DeleteUser removes the account and cascades through players, interaction
// rows, bookmarks, playlists, play queues, scrobbles and shares.
func (service *Service) DeleteUser(context context.Context, id int) error {
	if err := service.repo.DeleteUser(context, id); err != nil {
		return err
	}

	service.logger.Warn("user_deleted", slog.Int("user_id", id))
	return nil
}

func (service *Service) ListPlayers(context context.Context, userID int) ([]*Player, error) {
	return service.repo.ListPlayers(context, userID)
}

// RegisterPlayer records a client connecting on behalf of a user. A player is
// identified by its (user, client, user agent) fingerprint: a repeat
// connection refreshes the existing row instead of minting a new one.
func (service *Service) RegisterPlayer(context context.Context, p *Player) (*Player, error) {
	validator := &validate.Validator{}
	validator.Required(FieldClient, p.Client).MaxLen(FieldClient, p.Client, constants.MaxGeneralInputLength)
	validator.Required(FieldName, p.Name).MaxLen(FieldName, p.Name, constants.MaxGeneralInputLength)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	existing, err := service.repo.FindPlayer(context, p.UserID, p.Client, p.UserAgent)
	if err == nil {
		existing.Name = p.Name
		existing.IPAddress = p.IPAddress
		existing.MaxBitRate = p.MaxBitRate
		existing.ScrobbleEnabled = p.ScrobbleEnabled
		existing.TranscodingID = p.TranscodingID
		if err := service.repo.UpdatePlayer(context, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}
	if !apperr.IsCode(err, apperr.CodeNotFound) {
		return nil, err
	}

	if p.APIKey == "" {
		p.APIKey = apikey.New()
	}
	if err := service.repo.CreatePlayer(context, p); err != nil {
		return nil, err
	}

	service.logger.Info("player_registered", slog.Int("user_id", p.UserID), slog.String("client", p.Client))
	return p, nil
}

func (service *Service) DeletePlayer(context context.Context, id int) error {
	return service.repo.DeletePlayer(context, id)
}
