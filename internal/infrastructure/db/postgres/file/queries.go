package file

// Every statement filters on owner_id, so a file that exists but
// belongs to someone else scans as no rows at all.
const (
	SelectFileByUUID = `
		SELECT id, uuid, owner_id, filename, size_bytes, content, title, description, completed, created_at, updated_at, deleted_at
		FROM files
		WHERE uuid = $1 AND owner_id = $2 AND deleted_at IS NULL
	`
	// List queries exclude the content column.
	SelectFilesByFilename = `
		SELECT id, uuid, owner_id, filename, size_bytes, title, description, completed, created_at, updated_at, deleted_at
		FROM files
		WHERE owner_id = $1 AND filename = $2 AND deleted_at IS NULL
	`
	// Sort column and direction are interpolated from the
	// SortableFields whitelist, never from raw client input.
	SelectFilesSortedFmt = `
		SELECT id, uuid, owner_id, filename, size_bytes, title, description, completed, created_at, updated_at, deleted_at
		FROM files
		WHERE owner_id = $1 AND deleted_at IS NULL
		ORDER BY %s %s
	`
	SelectFilesPaged = `
		SELECT id, uuid, owner_id, filename, size_bytes, title, description, completed, created_at, updated_at, deleted_at
		FROM files
		WHERE owner_id = $1 AND deleted_at IS NULL
		ORDER BY id
		LIMIT NULLIF($2, 0) OFFSET $3
	`
	InsertFile = `
		INSERT INTO files (owner_id, filename, size_bytes, content)
		VALUES ($1, $2, $3, $4)
		RETURNING
		  id, uuid, owner_id, filename, size_bytes, title, description, completed, created_at, updated_at, deleted_at
	`
	UpdateFileByUUID = `
		UPDATE files
		SET title = COALESCE($3, title),
		    description = COALESCE($4, description),
		    completed = COALESCE($5, completed),
		    updated_at = now()
		WHERE uuid = $1 AND owner_id = $2 AND deleted_at IS NULL
		RETURNING
		  id, uuid, owner_id, filename, size_bytes, title, description, completed, created_at, updated_at, deleted_at
	`
	SoftDeleteFileByUUID = `
		UPDATE files
		SET deleted_at = now()
		WHERE uuid = $1 AND owner_id = $2 AND deleted_at IS NULL
		RETURNING
		  id, uuid, owner_id, filename, size_bytes, title, description, completed, created_at, updated_at, deleted_at
	`
	SoftDeleteUserFiles = `
		UPDATE files
		SET deleted_at = now()
		WHERE owner_id = $1 AND deleted_at IS NULL
	`
)
