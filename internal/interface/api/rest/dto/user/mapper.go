package user

import (
	"file-vault-api/internal/domain/user"
)

func ToResponseUser(uDomain user.User) User {
	var u = User{
		UUID:      uDomain.UUID,
		Username:  uDomain.Username,
		CreatedAt: uDomain.CreatedAt,
		UpdatedAt: uDomain.UpdatedAt,
	}

	return u
}

func ToResponseUsers(usDomain user.Users) Users {
	us := make(Users, len(usDomain))
	for idx, u := range usDomain {
		us[idx] = ToResponseUser(*u)
	}

	return us
}
