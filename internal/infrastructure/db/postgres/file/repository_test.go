package file

import (
	"context"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "file-vault-api/internal/domain/file"
	userDomain "file-vault-api/internal/domain/user"
)

var (
	listColumns = []string{
		"id", "uuid", "owner_id", "filename", "size_bytes",
		"title", "description", "completed",
		"created_at", "updated_at", "deleted_at",
	}
	fullColumns = []string{
		"id", "uuid", "owner_id", "filename", "size_bytes", "content",
		"title", "description", "completed",
		"created_at", "updated_at", "deleted_at",
	}
)

func listRow(id uint64, fileUUID uuid.UUID, ownerID uint64, filename string) *pgxmock.Rows {
	now := time.Now()
	return pgxmock.NewRows(listColumns).
		AddRow(id, fileUUID, ownerID, filename, int64(3), "", "", false, now, now, nil)
}

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestRepository_CreateFile(t *testing.T) {
	ctx := context.Background()
	mock := newMock(t)
	newUUID := uuid.New()
	content := []byte("img")

	mock.ExpectQuery(regexp.QuoteMeta(InsertFile)).
		WithArgs(userDomain.ID(1), "photo.jpg", int64(3), content).
		WillReturnRows(listRow(10, newUUID, 1, "photo.jpg"))

	repo := NewRepository(mock)
	f, err := repo.CreateFile(ctx, 1, &domain.File{
		Filename:  "photo.jpg",
		SizeBytes: 3,
		Content:   content,
	})
	require.NoError(t, err)
	require.NotNil(t, f)
	assert.Equal(t, newUUID, f.UUID)
	assert.Equal(t, "photo.jpg", f.Filename)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FetchFileByUUID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("found, content included", func(t *testing.T) {
		mock := newMock(t)
		now := time.Now()
		mock.ExpectQuery(regexp.QuoteMeta(SelectFileByUUID)).
			WithArgs(id.String(), userDomain.ID(1)).
			WillReturnRows(pgxmock.NewRows(fullColumns).
				AddRow(uint64(10), id, uint64(1), "photo.jpg", int64(3), []byte("img"),
					"holiday", "", false, now, now, nil))

		repo := NewRepository(mock)
		f, err := repo.FetchFileByUUID(ctx, 1, id)
		require.NoError(t, err)
		require.NotNil(t, f)
		assert.Equal(t, []byte("img"), f.Content)
		assert.Equal(t, "holiday", f.Title)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("foreign or absent file is nil, nil", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(SelectFileByUUID)).
			WithArgs(id.String(), userDomain.ID(2)).
			WillReturnError(pgx.ErrNoRows)

		repo := NewRepository(mock)
		f, err := repo.FetchFileByUUID(ctx, 2, id)
		require.NoError(t, err)
		assert.Nil(t, f)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_FetchFiles_Modes(t *testing.T) {
	ctx := context.Background()

	t.Run("query mode matches one exact filename", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(SelectFilesByFilename)).
			WithArgs(userDomain.ID(1), "photo.jpg").
			WillReturnRows(listRow(10, uuid.New(), 1, "photo.jpg"))

		repo := NewRepository(mock)
		fs, err := repo.FetchFiles(ctx, 1, domain.ListOptions{Query: "photo.jpg"})
		require.NoError(t, err)
		require.Len(t, fs, 1)
		assert.Equal(t, "photo.jpg", fs[0].Filename)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("sort mode interpolates whitelisted column and direction", func(t *testing.T) {
		mock := newMock(t)
		wantSQL := fmt.Sprintf(SelectFilesSortedFmt, "size_bytes", "DESC")
		mock.ExpectQuery(regexp.QuoteMeta(wantSQL)).
			WithArgs(userDomain.ID(1)).
			WillReturnRows(listRow(10, uuid.New(), 1, "b.jpg").
				AddRow(uint64(11), uuid.New(), uint64(1), "a.jpg", int64(1), "", "", false,
					time.Now(), time.Now(), nil))

		repo := NewRepository(mock)
		fs, err := repo.FetchFiles(ctx, 1, domain.ListOptions{SortField: "size", SortDesc: true})
		require.NoError(t, err)
		assert.Len(t, fs, 2)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("sort mode rejects a field outside the whitelist", func(t *testing.T) {
		mock := newMock(t)
		repo := NewRepository(mock)
		_, err := repo.FetchFiles(ctx, 1, domain.ListOptions{SortField: "owner_id"})
		require.Error(t, err)
	})

	t.Run("pagination mode, zero limit means no limit", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(SelectFilesPaged)).
			WithArgs(userDomain.ID(1), 0, 0).
			WillReturnRows(pgxmock.NewRows(listColumns))

		repo := NewRepository(mock)
		fs, err := repo.FetchFiles(ctx, 1, domain.ListOptions{})
		require.NoError(t, err)
		assert.Empty(t, fs)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("pagination mode passes limit and skip through", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(SelectFilesPaged)).
			WithArgs(userDomain.ID(1), 5, 10).
			WillReturnRows(listRow(16, uuid.New(), 1, "p.jpg"))

		repo := NewRepository(mock)
		fs, err := repo.FetchFiles(ctx, 1, domain.ListOptions{Limit: 5, Skip: 10})
		require.NoError(t, err)
		assert.Len(t, fs, 1)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_UpdateFile(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	title := "new title"
	completed := true

	mock := newMock(t)
	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(UpdateFileByUUID)).
		WithArgs(id.String(), userDomain.ID(1), &title, (*string)(nil), &completed).
		WillReturnRows(pgxmock.NewRows(listColumns).
			AddRow(uint64(10), id, uint64(1), "photo.jpg", int64(3), title, "", completed, now, now, nil))

	repo := NewRepository(mock)
	f, err := repo.UpdateFile(ctx, 1, id, domain.Update{Title: &title, Completed: &completed})
	require.NoError(t, err)
	require.NotNil(t, f)
	assert.Equal(t, title, f.Title)
	assert.True(t, f.Completed)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_DeleteFile(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("returns the metadata snapshot", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(SoftDeleteFileByUUID)).
			WithArgs(id.String(), userDomain.ID(1)).
			WillReturnRows(listRow(10, id, 1, "photo.jpg"))

		repo := NewRepository(mock)
		f, err := repo.DeleteFile(ctx, 1, id)
		require.NoError(t, err)
		require.NotNil(t, f)
		assert.Equal(t, "photo.jpg", f.Filename)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("foreign or absent file is nil, nil", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(SoftDeleteFileByUUID)).
			WithArgs(id.String(), userDomain.ID(1)).
			WillReturnError(pgx.ErrNoRows)

		repo := NewRepository(mock)
		f, err := repo.DeleteFile(ctx, 1, id)
		require.NoError(t, err)
		assert.Nil(t, f)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_DeleteUserFiles(t *testing.T) {
	ctx := context.Background()
	mock := newMock(t)
	mock.ExpectExec(regexp.QuoteMeta(SoftDeleteUserFiles)).
		WithArgs(userDomain.ID(7)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 3))

	repo := NewRepository(mock)
	require.NoError(t, repo.DeleteUserFiles(ctx, 7))
	require.NoError(t, mock.ExpectationsWereMet())
}
