package ports

import (
	"context"

	"file-vault-api/internal/domain/user"
)

// Auth covers credential verification and the whole session-token
// lifecycle: issue, verify, revoke one, revoke all.
type Auth interface {
	Login(ctx context.Context, username, password string) (*user.User, string, error)
	IssueToken(ctx context.Context, u *user.User) (string, error)
	Authenticate(ctx context.Context, token string) (*user.User, error)
	Logout(ctx context.Context, userUUID user.UUID, token string) error
	LogoutAll(ctx context.Context, userUUID user.UUID) error
}
