package ports

import (
	"context"

	"file-vault-api/internal/domain/user"
)

type UserService interface {
	Signup(ctx context.Context, username, password string) (*user.User, error)
	FindUserByUUID(ctx context.Context, uuid user.UUID) (*user.User, error)
	UpdateUser(ctx context.Context, uuid user.UUID, upd user.Update) (*user.User, error)
	DeleteUser(ctx context.Context, uuid user.UUID) (*user.User, error)
}
