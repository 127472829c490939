package user

const (
	SelectUserByUUID = `
		SELECT id, uuid, username, password_hash, tokens, created_at, updated_at, deleted_at
		FROM users
		WHERE uuid = $1 AND deleted_at IS NULL
	`
	SelectUserByUsername = `
		SELECT id, uuid, username, password_hash, tokens, created_at, updated_at, deleted_at
		FROM users
		WHERE username = $1 AND deleted_at IS NULL
	`
	InsertUser = `
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		RETURNING
		  id, uuid, username, password_hash, tokens, created_at, updated_at, deleted_at
	`
	UpdateUserByUUID = `
		UPDATE users
		SET username = $1,
		    password_hash = $2,
		    updated_at = now()
		WHERE uuid = $3 AND deleted_at IS NULL
		RETURNING
		  id, uuid, username, password_hash, tokens, created_at, updated_at, deleted_at
	`
	SelectIdByUUID = `SELECT id FROM users WHERE uuid = $1::uuid AND deleted_at IS NULL`

	// Soft delete also empties the live-token list so no session
	// survives the account.
	SoftDeleteUserByID = `
		UPDATE users
		SET deleted_at = now(),
		    tokens = '{}'
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING
		  id, uuid, username, password_hash, tokens, created_at, updated_at, deleted_at
	`

	// Token-list mutations are single atomic statements, so
	// concurrent logins/logouts for one user cannot lose each
	// other's writes.
	AppendToken = `
		UPDATE users
		SET tokens = array_append(tokens, $2),
		    updated_at = now()
		WHERE uuid = $1 AND deleted_at IS NULL
	`
	RemoveToken = `
		UPDATE users
		SET tokens = array_remove(tokens, $2),
		    updated_at = now()
		WHERE uuid = $1 AND deleted_at IS NULL
	`
	ClearTokens = `
		UPDATE users
		SET tokens = '{}',
		    updated_at = now()
		WHERE uuid = $1 AND deleted_at IS NULL
	`
)
