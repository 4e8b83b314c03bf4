package user

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sphildreth/melodee-sub003/internal/platform/apperr"
	"github.com/sphildreth/melodee-sub003/internal/platform/sec"
)

type fakeRepository struct {
	users      map[int]*User
	players    map[int]*Player
	nextID     int
	counters   map[string]int
	lastBumpID int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		users:    map[int]*User{},
		players:  map[int]*Player{},
		nextID:   1,
		counters: map[string]int{},
	}
}

func (f *fakeRepository) ListUsers(_ context.Context, _, _ int) ([]*User, int, error) {
	var out []*User
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, len(out), nil
}

func (f *fakeRepository) GetUser(_ context.Context, id int) (*User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, apperr.NotFound("User")
}

func (f *fakeRepository) GetUserByAPIKey(_ context.Context, apiKey string) (*User, error) {
	for _, u := range f.users {
		if u.APIKey == apiKey {
			return u, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (f *fakeRepository) GetUserByUserName(_ context.Context, normalized string) (*User, error) {
	for _, u := range f.users {
		if u.UserNameNormalized == normalized {
			return u, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (f *fakeRepository) GetUserByEmail(_ context.Context, normalized string) (*User, error) {
	for _, u := range f.users {
		if u.EmailNormalized == normalized {
			return u, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (f *fakeRepository) CreateUser(_ context.Context, u *User) error {
	for _, existing := range f.users {
		if existing.UserNameNormalized == u.UserNameNormalized {
			return apperr.DuplicateKey("ux_users_usernamenormalized")
		}
	}
	u.ID = f.nextID
	f.nextID++
	f.users[u.ID] = u
	return nil
}

func (f *fakeRepository) UpdateUser(_ context.Context, u *User) error {
	if _, ok := f.users[u.ID]; !ok {
		return apperr.NotFound("User")
	}
	f.users[u.ID] = u
	return nil
}

func (f *fakeRepository) UpdatePasswordHash(_ context.Context, id int, hash string) error {
	u, ok := f.users[id]
	if !ok {
		return apperr.NotFound("User")
	}
	u.PasswordHash = hash
	return nil
}

func (f *fakeRepository) TouchActivity(_ context.Context, id int, _ bool) error {
	if _, ok := f.users[id]; !ok {
		return apperr.NotFound("User")
	}
	return nil
}

func (f *fakeRepository) BumpCounter(_ context.Context, id int, counter string, delta int) error {
	f.lastBumpID = id
	f.counters[counter] += delta
	return nil
}

func (f *fakeRepository) DeleteUser(_ context.Context, id int) error {
	delete(f.users, id)
	return nil
}

func (f *fakeRepository) ListPlayers(_ context.Context, userID int) ([]*Player, error) {
	var out []*Player
	for _, p := range f.players {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeRepository) FindPlayer(_ context.Context, userID int, client string, userAgent *string) (*Player, error) {
	for _, p := range f.players {
		if p.UserID != userID || p.Client != client {
			continue
		}
		if (p.UserAgent == nil) != (userAgent == nil) {
			continue
		}
		if p.UserAgent != nil && *p.UserAgent != *userAgent {
			continue
		}
		return p, nil
	}
	return nil, apperr.NotFound("Player")
}

func (f *fakeRepository) CreatePlayer(_ context.Context, p *Player) error {
	p.ID = f.nextID
	f.nextID++
	f.players[p.ID] = p
	return nil
}

func (f *fakeRepository) UpdatePlayer(_ context.Context, p *Player) error {
	if _, ok := f.players[p.ID]; !ok {
		return apperr.NotFound("Player")
	}
	f.players[p.ID] = p
	return nil
}

func (f *fakeRepository) DeletePlayer(_ context.Context, id int) error {
	delete(f.players, id)
	return nil
}

func newTestService() (*Service, *fakeRepository) {
	repo := newFakeRepository()
	return NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil))), repo
}

func TestNormalizeUserName(t *testing.T) {
	assert.Equal(t, "ALICE", NormalizeUserName("alice"))
	assert.Equal(t, "ALICE", NormalizeUserName("  Alice  "))
	assert.Equal(t, "", NormalizeUserName("   "))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ALICE@EXAMPLE.COM", NormalizeEmail(" alice@Example.com "))
}

func TestCreateUserHashesAndNormalizes(t *testing.T) {
	service, repo := newTestService()

	u := &User{UserName: "Alice", Email: "alice@example.com"}
	require.NoError(t, service.CreateUser(context.Background(), u, "s3cret"))

	stored := repo.users[u.ID]
	assert.Equal(t, "ALICE", stored.UserNameNormalized)
	assert.Equal(t, "ALICE@EXAMPLE.COM", stored.EmailNormalized)
	assert.NotEmpty(t, stored.APIKey)
	assert.NotEqual(t, "s3cret", stored.PasswordHash)
	assert.True(t, sec.CheckPasswordHash("s3cret", stored.PasswordHash))
}

func TestCreateUserValidation(t *testing.T) {
	service, _ := newTestService()

	tests := []struct {
		name     string
		user     *User
		password string
	}{
		{"missing username", &User{Email: "a@example.com"}, "pw"},
		{"missing email", &User{UserName: "alice"}, "pw"},
		{"malformed email", &User{UserName: "alice", Email: "not-an-email"}, "pw"},
		{"missing password", &User{UserName: "alice", Email: "a@example.com"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.CreateUser(context.Background(), tt.user, tt.password)
			assert.True(t, apperr.IsCode(err, apperr.CodeValidation))
		})
	}
}

func TestCreateUserDuplicateNameDiffersOnlyByCase(t *testing.T) {
	service, _ := newTestService()

	require.NoError(t, service.CreateUser(context.Background(),
		&User{UserName: "Alice", Email: "a@example.com"}, "pw"))

	err := service.CreateUser(context.Background(),
		&User{UserName: "ALICE", Email: "b@example.com"}, "pw")
	assert.True(t, apperr.IsCode(err, apperr.CodeDuplicateKey))
}

func TestAuthenticate(t *testing.T) {
	service, repo := newTestService()
	require.NoError(t, service.CreateUser(context.Background(),
		&User{UserName: "Alice", Email: "a@example.com"}, "correct-horse"))

	t.Run("success is case-insensitive on the name", func(t *testing.T) {
		u, err := service.Authenticate(context.Background(), "aLiCe", "correct-horse")
		require.NoError(t, err)
		assert.Equal(t, "Alice", u.UserName)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := service.Authenticate(context.Background(), "alice", "wrong")
		require.Error(t, err)
		assert.Equal(t, "invalid credentials", err.Error())
	})

	t.Run("unknown user gets the same message", func(t *testing.T) {
		_, err := service.Authenticate(context.Background(), "nobody", "whatever")
		require.Error(t, err)
		assert.Equal(t, "invalid credentials", err.Error())
	})

	t.Run("locked account", func(t *testing.T) {
		for _, u := range repo.users {
			u.IsLocked = true
		}
		_, err := service.Authenticate(context.Background(), "alice", "correct-horse")
		require.Error(t, err)
		assert.Equal(t, "account is locked", err.Error())
	})
}

func TestBumpCounterRejectsUnknownName(t *testing.T) {
	service, repo := newTestService()

	err := service.BumpCounter(context.Background(), 1, "songsplayed; DROP TABLE", 1)
	assert.True(t, apperr.IsCode(err, apperr.CodeValidation))
	assert.Empty(t, repo.counters)

	require.NoError(t, service.BumpCounter(context.Background(), 1, CounterSongsPlayed, 1))
	assert.Equal(t, 1, repo.counters[CounterSongsPlayed])
}

func TestRegisterPlayerUpsertsByFingerprint(t *testing.T) {
	service, repo := newTestService()
	agent := "TestClient/1.0"

	first, err := service.RegisterPlayer(context.Background(), &Player{
		UserID: 1, Client: "subsonic", Name: "Living Room", UserAgent: &agent,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, first.APIKey)

	// Same (user, client, user agent) refreshes the row.
	second, err := service.RegisterPlayer(context.Background(), &Player{
		UserID: 1, Client: "subsonic", Name: "Renamed", UserAgent: &agent,
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Renamed", second.Name)
	assert.Len(t, repo.players, 1)

	// A different user agent is a new player.
	otherAgent := "OtherClient/2.0"
	third, err := service.RegisterPlayer(context.Background(), &Player{
		UserID: 1, Client: "subsonic", Name: "Kitchen", UserAgent: &otherAgent,
	})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, third.ID)
	assert.Len(t, repo.players, 2)
}

func TestRegisterPlayerValidation(t *testing.T) {
	service, _ := newTestService()

	_, err := service.RegisterPlayer(context.Background(), &Player{UserID: 1, Name: "No Client"})
	assert.True(t, apperr.IsCode(err, apperr.CodeValidation))
}
