package file

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	domain "file-vault-api/internal/domain/file"
	"file-vault-api/internal/domain/user"
	"file-vault-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) domain.Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateFile(ctx context.Context, ownerID user.ID, req *domain.File) (*domain.File, error) {
	f := new(File)

	err := r.db.QueryRow(
		ctx,
		InsertFile,
		ownerID, req.Filename, req.SizeBytes, req.Content,
	).Scan(
		&f.ID,
		&f.UUID,
		&f.OwnerID,

		&f.Filename,
		&f.SizeBytes,

		&f.Title,
		&f.Description,
		&f.Completed,

		&f.CreatedAt,
		&f.UpdatedAt,
		&f.DeletedAt,
	)
	if err != nil {
		return nil, err
	}

	return fromDBModel(f), err
}

func (r *Repository) FetchFileByUUID(ctx context.Context, ownerID user.ID, id uuid.UUID) (*domain.File, error) {
	f := new(File)
	err := r.db.QueryRow(ctx, SelectFileByUUID, id.String(), ownerID).Scan(
		&f.ID,
		&f.UUID,
		&f.OwnerID,

		&f.Filename,
		&f.SizeBytes,
		&f.Content,

		&f.Title,
		&f.Description,
		&f.Completed,

		&f.CreatedAt,
		&f.UpdatedAt,
		&f.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(f), err
}

// FetchFiles runs exactly one of the three list modes:
// filename query, whole-set sort, or limit/skip pagination.
func (r *Repository) FetchFiles(ctx context.Context, ownerID user.ID, opts domain.ListOptions) (domain.Files, error) {
	var (
		rows pgx.Rows
		err  error
	)
	switch {
	case opts.Query != "":
		rows, err = r.db.Query(ctx, SelectFilesByFilename, ownerID, opts.Query)
	case opts.SortField != "":
		col, ok := domain.SortableFields[opts.SortField]
		if !ok {
			return nil, fmt.Errorf("unsortable field %q", opts.SortField)
		}
		dir := "ASC"
		if opts.SortDesc {
			dir = "DESC"
		}
		rows, err = r.db.Query(ctx, fmt.Sprintf(SelectFilesSortedFmt, col, dir), ownerID)
	default:
		rows, err = r.db.Query(ctx, SelectFilesPaged, ownerID, opts.Limit, opts.Skip)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fs Files
	for rows.Next() {
		f := new(File)

		if err = rows.Scan(
			&f.ID,
			&f.UUID,
			&f.OwnerID,

			&f.Filename,
			&f.SizeBytes,

			&f.Title,
			&f.Description,
			&f.Completed,

			&f.CreatedAt,
			&f.UpdatedAt,
			&f.DeletedAt,
		); err != nil {
			return nil, err
		}

		fs = append(fs, f)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&fs), nil
}

func (r *Repository) UpdateFile(ctx context.Context, ownerID user.ID, id uuid.UUID, upd domain.Update) (*domain.File, error) {
	f := new(File)

	err := r.db.QueryRow(ctx, UpdateFileByUUID,
		id.String(), ownerID, upd.Title, upd.Description, upd.Completed,
	).Scan(
		&f.ID,
		&f.UUID,
		&f.OwnerID,

		&f.Filename,
		&f.SizeBytes,

		&f.Title,
		&f.Description,
		&f.Completed,

		&f.CreatedAt,
		&f.UpdatedAt,
		&f.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(f), err
}

func (r *Repository) DeleteFile(ctx context.Context, ownerID user.ID, id uuid.UUID) (*domain.File, error) {
	f := new(File)
	err := r.db.QueryRow(ctx, SoftDeleteFileByUUID, id.String(), ownerID).Scan(
		&f.ID,
		&f.UUID,
		&f.OwnerID,

		&f.Filename,
		&f.SizeBytes,

		&f.Title,
		&f.Description,
		&f.Completed,

		&f.CreatedAt,
		&f.UpdatedAt,
		&f.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(f), err
}

func (r *Repository) DeleteUserFiles(ctx context.Context, ownerID user.ID) error {
	_, err := r.db.Exec(ctx, SoftDeleteUserFiles, ownerID)
	return err
}
