package user

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "file-vault-api/internal/domain/user"
)

func domainUser(username string, hash *string) domain.User {
	return domain.User{Username: username, PasswordHash: hash}
}

var userColumns = []string{
	"id", "uuid", "username", "password_hash", "tokens",
	"created_at", "updated_at", "deleted_at",
}

func userRow(id uint64, userUUID uuid.UUID, username string, tokens []string) *pgxmock.Rows {
	hash := "$2a$10$fakehashfakehashfakehash"
	now := time.Now()
	return pgxmock.NewRows(userColumns).
		AddRow(id, userUUID, username, &hash, tokens, now, now, nil)
}

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestRepository_FetchUserByUUID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("found", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(SelectUserByUUID)).
			WithArgs(id.String()).
			WillReturnRows(userRow(1, id, "alice", []string{"tok-1", "tok-2"}))

		repo := NewRepository(mock)
		u, err := repo.FetchUserByUUID(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, u)
		assert.Equal(t, id, u.UUID)
		assert.Equal(t, "alice", u.Username)
		assert.Equal(t, []string{"tok-1", "tok-2"}, u.Tokens)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no rows is nil, nil", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(SelectUserByUUID)).
			WithArgs(id.String()).
			WillReturnError(pgx.ErrNoRows)

		repo := NewRepository(mock)
		u, err := repo.FetchUserByUUID(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, u)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_CreateUser(t *testing.T) {
	ctx := context.Background()
	hash := "$2a$10$fakehashfakehashfakehash"

	t.Run("success", func(t *testing.T) {
		mock := newMock(t)
		newUUID := uuid.New()
		mock.ExpectQuery(regexp.QuoteMeta(InsertUser)).
			WithArgs("bob", &hash).
			WillReturnRows(userRow(7, newUUID, "bob", nil))

		repo := NewRepository(mock)
		u, err := repo.CreateUser(ctx, domainUser("bob", &hash))
		require.NoError(t, err)
		require.NotNil(t, u)
		assert.Equal(t, newUUID, u.UUID)
		assert.Empty(t, u.Tokens)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique violation maps to ErrUsernameTaken", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(InsertUser)).
			WithArgs("bob", &hash).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})

		repo := NewRepository(mock)
		u, err := repo.CreateUser(ctx, domainUser("bob", &hash))
		require.ErrorIs(t, err, ErrUsernameTaken)
		assert.Nil(t, u)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_FetchInternalID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("found", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(SelectIdByUUID)).
			WithArgs(id.String()).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(uint64(42)))

		repo := NewRepository(mock)
		got, err := repo.FetchInternalID(ctx, id)
		require.NoError(t, err)
		assert.EqualValues(t, 42, got)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent user is zero, nil", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(SelectIdByUUID)).
			WithArgs(id.String()).
			WillReturnError(pgx.ErrNoRows)

		repo := NewRepository(mock)
		got, err := repo.FetchInternalID(ctx, id)
		require.NoError(t, err)
		assert.Zero(t, got)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_DeleteUser(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the snapshot", func(t *testing.T) {
		mock := newMock(t)
		id := uuid.New()
		mock.ExpectQuery(regexp.QuoteMeta(SoftDeleteUserByID)).
			WithArgs(domain.ID(3)).
			WillReturnRows(userRow(3, id, "carol", nil))

		repo := NewRepository(mock)
		u, err := repo.DeleteUser(ctx, 3)
		require.NoError(t, err)
		require.NotNil(t, u)
		assert.Equal(t, "carol", u.Username)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already deleted is nil, nil", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(SoftDeleteUserByID)).
			WithArgs(domain.ID(3)).
			WillReturnError(pgx.ErrNoRows)

		repo := NewRepository(mock)
		u, err := repo.DeleteUser(ctx, 3)
		require.NoError(t, err)
		assert.Nil(t, u)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_TokenMutations(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	mock := newMock(t)
	mock.ExpectExec(regexp.QuoteMeta(AppendToken)).
		WithArgs(id.String(), "tok-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(regexp.QuoteMeta(RemoveToken)).
		WithArgs(id.String(), "tok-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(regexp.QuoteMeta(ClearTokens)).
		WithArgs(id.String()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	repo := NewRepository(mock)
	require.NoError(t, repo.AppendToken(ctx, id, "tok-1"))
	require.NoError(t, repo.RemoveToken(ctx, id, "tok-1"))
	require.NoError(t, repo.ClearTokens(ctx, id))
	require.NoError(t, mock.ExpectationsWereMet())
}
