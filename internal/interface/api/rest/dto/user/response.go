package user

import (
	"time"

	"github.com/google/uuid"
)

// User never carries the password hash or the token list.
type (
	User struct {
		UUID      uuid.UUID `json:"uuid"`
		Username  string    `json:"username"`
		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
	}
	Users        []User
	ResponseData struct {
		Data Users `json:"data"`
	}
)
