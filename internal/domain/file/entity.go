package file

import (
	"time"

	"github.com/google/uuid"

	"file-vault-api/internal/domain/user"
)

type (
	File struct {
		UUID    uuid.UUID
		OwnerID user.ID

		Filename  string
		SizeBytes int64
		// Content is the raw payload, held fully in memory.
		// Excluded from list results and delete snapshots.
		Content []byte

		Title       string
		Description string
		Completed   bool

		CreatedAt time.Time
		UpdatedAt time.Time
		DeletedAt *time.Time
	}
	Files []*File

	// Update carries the mutable metadata fields. Filename, size
	// and content are immutable after upload.
	Update struct {
		Title       *string
		Description *string
		Completed   *bool
	}

	// ListOptions selects one of three mutually exclusive list
	// modes, checked in order: Query, then SortField, then
	// Limit/Skip pagination.
	ListOptions struct {
		Query     string
		SortField string
		SortDesc  bool
		Limit     int
		Skip      int
	}
)

// SortableFields maps client-facing sort field names to store columns.
var SortableFields = map[string]string{
	"filename":  "filename",
	"size":      "size_bytes",
	"title":     "title",
	"completed": "completed",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}
