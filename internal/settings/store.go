package settings

import "context"

type Repository interface {
	ListSettings(context context.Context) ([]*Setting, error)
	GetSetting(context context.Context, key string) (*Setting, error)
	UpsertSetting(context context.Context, s *Setting) error
	DeleteSetting(context context.Context, key string) error
}
