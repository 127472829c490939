package file

import (
	"time"

	"github.com/google/uuid"
)

type (
	File struct {
		ID      uint64
		UUID    uuid.UUID
		OwnerID uint64

		Filename  string
		SizeBytes int64
		Content   []byte

		Title       string
		Description string
		Completed   bool

		CreatedAt time.Time
		UpdatedAt time.Time
		DeletedAt *time.Time
	}
	Files []*File
)
