package auth

import (
	"file-vault-api/internal/interface/api/rest/dto/user"
)

// TokenResponse is the signup/login payload: the public user record
// plus the freshly issued session token.
type TokenResponse struct {
	User  user.User `json:"user"`
	Token string    `json:"token"`
}
