package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/text/unicode/norm"

	"file-vault-api/config"
	"file-vault-api/internal/application/ports"
	domain "file-vault-api/internal/domain/file"
	"file-vault-api/internal/domain/user"
	"file-vault-api/internal/infrastructure/mq"
	fileDTO "file-vault-api/internal/interface/api/rest/dto/file"
)

var (
	ErrFileType = errors.New("file type not allowed")
	ErrFileSize = errors.New("file too large or empty")
)

type FileService struct {
	fileRepository domain.Repository
	userRepository user.Repository
	mq             ports.RabbitMQ
	mCounter       *prometheus.CounterVec
	upload         config.Upload
}

// NewFileService takes the upload constraints explicitly; nothing
// here reads process-wide state.
func NewFileService(
	fileRepository domain.Repository,
	userRepository user.Repository,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
	upload config.Upload,
) ports.FileService {
	return &FileService{
		fileRepository: fileRepository,
		userRepository: userRepository,
		mq:             mq,
		mCounter:       mCounter,
		upload:         upload,
	}
}

// CreateFile validates the upload (extension whitelist, size limit)
// before any store write, reads the payload fully into memory, and
// persists one file row owned by the caller.
func (fs *FileService) CreateFile(
	ctx context.Context,
	ownerUUID user.UUID,
	in *multipart.FileHeader,
) (*domain.File, error) {
	id, err := fs.ownerID(ctx, ownerUUID)
	if err != nil {
		return nil, err
	}

	filename := normalizeFilename(in.Filename)
	if !fs.extAllowed(filename) {
		return nil, ErrFileType
	}
	if in.Size <= 0 || in.Size > fs.upload.MaxSizeBytes {
		return nil, ErrFileSize
	}

	f, err := in.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, fs.upload.MaxSizeBytes+1))
	if err != nil {
		return nil, err
	}
	if len(content) == 0 || int64(len(content)) > fs.upload.MaxSizeBytes {
		return nil, ErrFileSize
	}

	out, err := fs.fileRepository.CreateFile(ctx, id, &domain.File{
		Filename:  filename,
		SizeBytes: int64(len(content)),
		Content:   content,
	})
	if err != nil {
		return nil, err
	}

	if out != nil {
		fs.mq.GetInputChan() <- mq.Event{
			Id:      uuid.New(),
			TS:      time.Now(),
			Method:  http.MethodPost,
			Entity:  mq.EntityFile,
			UserID:  ownerUUID.String(),
			Payload: fileDTO.ToResponseFile(*out),
		}
	}

	fs.mCounter.WithLabelValues("files_uploaded_total").Inc()

	return out, nil
}

func (fs *FileService) FindFiles(ctx context.Context, ownerUUID user.UUID, opts domain.ListOptions) (domain.Files, error) {
	id, err := fs.ownerID(ctx, ownerUUID)
	if err != nil {
		return nil, err
	}

	fls, err := fs.fileRepository.FetchFiles(ctx, id, opts)
	if err != nil {
		return nil, err
	}

	return fls, nil
}

func (fs *FileService) FindFileByUUID(ctx context.Context, ownerUUID user.UUID, fileUUID uuid.UUID) (*domain.File, error) {
	id, err := fs.ownerID(ctx, ownerUUID)
	if err != nil {
		return nil, err
	}

	return fs.fileRepository.FetchFileByUUID(ctx, id, fileUUID)
}

func (fs *FileService) UpdateFile(ctx context.Context, ownerUUID user.UUID, fileUUID uuid.UUID, upd domain.Update) (*domain.File, error) {
	id, err := fs.ownerID(ctx, ownerUUID)
	if err != nil {
		return nil, err
	}

	return fs.fileRepository.UpdateFile(ctx, id, fileUUID, upd)
}

func (fs *FileService) DeleteFile(ctx context.Context, ownerUUID user.UUID, fileUUID uuid.UUID) (*domain.File, error) {
	id, err := fs.ownerID(ctx, ownerUUID)
	if err != nil {
		return nil, err
	}

	out, err := fs.fileRepository.DeleteFile(ctx, id, fileUUID)
	if err != nil {
		return nil, err
	}

	if out != nil {
		fs.mq.GetInputChan() <- mq.Event{
			Id:      uuid.New(),
			TS:      time.Now(),
			Method:  http.MethodDelete,
			Entity:  mq.EntityFile,
			UserID:  ownerUUID.String(),
			Payload: fileDTO.ToResponseFile(*out),
		}
		fs.mCounter.WithLabelValues("files_deleted_total").Inc()
	}

	return out, nil
}

func (fs *FileService) ownerID(ctx context.Context, ownerUUID user.UUID) (user.ID, error) {
	id, err := fs.userRepository.FetchInternalID(ctx, ownerUUID)
	if err != nil {
		return 0, err
	}
	if id == 0 {
		// callers are authenticated, so a missing owner means the
		// account vanished mid-request
		return 0, fmt.Errorf("owner %s not found", ownerUUID)
	}
	return id, nil
}

func (fs *FileService) extAllowed(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, allowed := range fs.upload.AllowedExts {
		if ext == allowed {
			return true
		}
	}
	return false
}

// normalizeFilename keeps the client's original name but strips any
// path and normalizes it to NFC, so the upload/download round-trip
// returns one canonical spelling.
func normalizeFilename(original string) string {
	s := strings.TrimSpace(original)
	s = strings.ReplaceAll(s, "\\", "/")
	s = path.Base(s)

	if s == "." || s == ".." || s == "/" || s == "" {
		return "file"
	}

	return norm.NFC.String(s)
}
