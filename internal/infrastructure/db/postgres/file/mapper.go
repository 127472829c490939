package file

import (
	domain "file-vault-api/internal/domain/file"
	"file-vault-api/internal/domain/user"
)

func fromDBModel(model *File) *domain.File {
	var f = &domain.File{
		UUID:    model.UUID,
		OwnerID: user.ID(model.OwnerID),

		Filename:  model.Filename,
		SizeBytes: model.SizeBytes,
		Content:   model.Content,

		Title:       model.Title,
		Description: model.Description,
		Completed:   model.Completed,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
		DeletedAt: model.DeletedAt,
	}

	return f
}

func fromDBModels(models *Files) domain.Files {
	fs := make(domain.Files, len(*models))
	for idx, f := range *models {
		fs[idx] = fromDBModel(f)
	}

	return fs
}
