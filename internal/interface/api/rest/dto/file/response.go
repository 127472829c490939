package file

import (
	"time"

	"github.com/google/uuid"
)

type (
	// File is the metadata shape used by list, update and delete
	// responses; the binary content is never included here.
	File struct {
		UUID        uuid.UUID `json:"uuid"`
		Filename    string    `json:"filename"`
		SizeBytes   int64     `json:"size_bytes"`
		Title       string    `json:"title"`
		Description string    `json:"description"`
		Completed   bool      `json:"completed"`
		CreatedAt   time.Time `json:"created_at"`
		UpdatedAt   time.Time `json:"updated_at"`
	}
	// FileWithContent is the single-file fetch shape; content is
	// base64 in JSON.
	FileWithContent struct {
		File
		Content []byte `json:"content"`
	}
	Files        []File
	ResponseData struct {
		Data Files `json:"data"`
	}
	CreatedResponse struct {
		ID uuid.UUID `json:"id"`
	}
)
