package ports

import (
	"context"
	"mime/multipart"

	"github.com/google/uuid"

	"file-vault-api/internal/domain/file"
	"file-vault-api/internal/domain/user"
)

type FileService interface {
	CreateFile(ctx context.Context, ownerUUID user.UUID, in *multipart.FileHeader) (*file.File, error)
	FindFiles(ctx context.Context, ownerUUID user.UUID, opts file.ListOptions) (file.Files, error)
	FindFileByUUID(ctx context.Context, ownerUUID user.UUID, id uuid.UUID) (*file.File, error)
	UpdateFile(ctx context.Context, ownerUUID user.UUID, id uuid.UUID, upd file.Update) (*file.File, error)
	DeleteFile(ctx context.Context, ownerUUID user.UUID, id uuid.UUID) (*file.File, error)
}
