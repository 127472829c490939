package user

import (
	"context"
)

type Repository interface {
	FetchUserByUUID(ctx context.Context, uuid UUID) (*User, error)
	FetchUserByUsername(ctx context.Context, username string) (*User, error)
	CreateUser(ctx context.Context, req User) (*User, error)
	UpdateUser(ctx context.Context, req User) (*User, error)
	FetchInternalID(ctx context.Context, uuid UUID) (ID, error)
	DeleteUser(ctx context.Context, id ID) (*User, error)

	// Live-token list mutations. Each is a single atomic statement
	// against the user row; no read-modify-write in process.
	AppendToken(ctx context.Context, uuid UUID, token string) error
	RemoveToken(ctx context.Context, uuid UUID, token string) error
	ClearTokens(ctx context.Context, uuid UUID) error
}
