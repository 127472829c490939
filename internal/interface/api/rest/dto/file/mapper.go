package file

import (
	"file-vault-api/internal/domain/file"
)

func ToResponseFile(fDomain file.File) File {
	var f = File{
		UUID:        fDomain.UUID,
		Filename:    fDomain.Filename,
		SizeBytes:   fDomain.SizeBytes,
		Title:       fDomain.Title,
		Description: fDomain.Description,
		Completed:   fDomain.Completed,
		CreatedAt:   fDomain.CreatedAt,
		UpdatedAt:   fDomain.UpdatedAt,
	}

	return f
}

func ToResponseFiles(fsDomain file.Files) Files {
	fs := make(Files, len(fsDomain))
	for idx, f := range fsDomain {
		fs[idx] = ToResponseFile(*f)
	}

	return fs
}

func ToResponseFileWithContent(fDomain file.File) FileWithContent {
	return FileWithContent{
		File:    ToResponseFile(fDomain),
		Content: fDomain.Content,
	}
}
