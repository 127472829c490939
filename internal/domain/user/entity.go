package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	ID   uint64
	UUID = uuid.UUID
	User struct {
		UUID         UUID
		Username     string
		PasswordHash *string
		// Tokens is the live-token list: one entry per logged-in
		// device. Membership decides whether a bearer token is
		// still valid.
		Tokens []string

		CreatedAt time.Time
		UpdatedAt time.Time

		DeletedAt *time.Time
	}
	Users []*User

	// Update carries the only profile fields a client may change.
	// Password is the raw secret, hashed by the service layer.
	Update struct {
		Username *string
		Password *string
	}
)
