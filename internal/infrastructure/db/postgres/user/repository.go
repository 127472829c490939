package user

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"file-vault-api/internal/domain/user"
	"file-vault-api/internal/infrastructure/db/postgres"
)

var ErrUsernameTaken = errors.New("username already taken")

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) user.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchUserByUUID(ctx context.Context, uuid user.UUID) (*user.User, error) {
	u := new(User)
	err := r.db.QueryRow(ctx, SelectUserByUUID, uuid.String()).Scan(
		&u.ID,
		&u.UUID,
		&u.Username,
		&u.PasswordHash,
		&u.Tokens,

		&u.CreatedAt,
		&u.UpdatedAt,

		&u.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), err
}

func (r *Repository) FetchUserByUsername(ctx context.Context, username string) (*user.User, error) {
	u := new(User)
	err := r.db.QueryRow(ctx, SelectUserByUsername, username).Scan(
		&u.ID,
		&u.UUID,
		&u.Username,
		&u.PasswordHash,
		&u.Tokens,

		&u.CreatedAt,
		&u.UpdatedAt,

		&u.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), err
}

func (r *Repository) CreateUser(ctx context.Context, req user.User) (*user.User, error) {
	u := new(User)

	err := r.db.QueryRow(
		ctx,
		InsertUser,
		req.Username, req.PasswordHash,
	).Scan(
		&u.ID,
		&u.UUID,
		&u.Username,
		&u.PasswordHash,
		&u.Tokens,

		&u.CreatedAt,
		&u.UpdatedAt,

		&u.DeletedAt,
	)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	return fromDBModel(u), err
}

func (r *Repository) UpdateUser(ctx context.Context, req user.User) (*user.User, error) {
	u := new(User)

	err := r.db.QueryRow(ctx, UpdateUserByUUID,
		req.Username, req.PasswordHash, req.UUID,
	).Scan(
		&u.ID,
		&u.UUID,
		&u.Username,
		&u.PasswordHash,
		&u.Tokens,

		&u.CreatedAt,
		&u.UpdatedAt,

		&u.DeletedAt,
	)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrUsernameTaken
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), err
}

func (r *Repository) FetchInternalID(ctx context.Context, uuid user.UUID) (user.ID, error) {
	var id uint64
	if err := r.db.QueryRow(ctx, SelectIdByUUID, uuid.String()).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}

	return user.ID(id), nil
}

func (r *Repository) DeleteUser(ctx context.Context, id user.ID) (*user.User, error) {
	u := new(User)
	err := r.db.QueryRow(ctx, SoftDeleteUserByID, id).Scan(
		&u.ID,
		&u.UUID,
		&u.Username,
		&u.PasswordHash,
		&u.Tokens,

		&u.CreatedAt,
		&u.UpdatedAt,

		&u.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), err
}

func (r *Repository) AppendToken(ctx context.Context, uuid user.UUID, token string) error {
	_, err := r.db.Exec(ctx, AppendToken, uuid.String(), token)
	return err
}

func (r *Repository) RemoveToken(ctx context.Context, uuid user.UUID, token string) error {
	_, err := r.db.Exec(ctx, RemoveToken, uuid.String(), token)
	return err
}

func (r *Repository) ClearTokens(ctx context.Context, uuid user.UUID) error {
	_, err := r.db.Exec(ctx, ClearTokens, uuid.String())
	return err
}
