package user

import (
	domain "file-vault-api/internal/domain/user"
)

func fromDBModel(model *User) *domain.User {
	var u = &domain.User{
		UUID:         model.UUID,
		Username:     model.Username,
		PasswordHash: model.PasswordHash,
		Tokens:       model.Tokens,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,

		DeletedAt: model.DeletedAt,
	}

	return u
}
