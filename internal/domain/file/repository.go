package file

import (
	"context"

	"github.com/google/uuid"

	"file-vault-api/internal/domain/user"
)

// Repository is owner-scoped by construction: every lookup and
// mutation carries the owner's id, and a miss on either the file id
// or the owner looks the same to the caller.
type Repository interface {
	CreateFile(ctx context.Context, ownerID user.ID, req *File) (*File, error)
	FetchFileByUUID(ctx context.Context, ownerID user.ID, id uuid.UUID) (*File, error)
	FetchFiles(ctx context.Context, ownerID user.ID, opts ListOptions) (Files, error)
	UpdateFile(ctx context.Context, ownerID user.ID, id uuid.UUID, upd Update) (*File, error)
	DeleteFile(ctx context.Context, ownerID user.ID, id uuid.UUID) (*File, error)
	DeleteUserFiles(ctx context.Context, ownerID user.ID) error
}
