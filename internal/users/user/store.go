package user

import "context"

type Repository interface {
	ListUsers(context context.Context, limit, offset int) ([]*User, int, error)
	GetUser(context context.Context, id int) (*User, error)
	GetUserByAPIKey(context context.Context, apiKey string) (*User, error)
	GetUserByUserName(context context.Context, userNameNormalized string) (*User, error)
	GetUserByEmail(context context.Context, emailNormalized string) (*User, error)
	CreateUser(context context.Context, u *User) error
	UpdateUser(context context.Context, u *User) error
	UpdatePasswordHash(context context.Context, id int, hash string) error
	TouchActivity(context context.Context, id int, login bool) error
	BumpCounter(context context.Context, id int, counter string, delta int) error
	DeleteUser(context context.Context, id int) error

	ListPlayers(context context.Context, userID int) ([]*Player, error)
	FindPlayer(context context.Context, userID int, client string, userAgent *string) (*Player, error)
	CreatePlayer(context context.Context, p *Player) error
	UpdatePlayer(context context.Context, p *Player) error
	DeletePlayer(context context.Context, id int) error
}
