package validator

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	fileDomain "file-vault-api/internal/domain/file"
	userDomain "file-vault-api/internal/domain/user"
	"file-vault-api/internal/interface/api/rest/dto/auth"
)

const (
	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt safe
	minUsernameLen = 3
	maxUsernameLen = 32
)

func IsUUID(s string) (bool, uuid.UUID) {
	id, err := uuid.Parse(s)
	return err == nil, id
}

func ValidateSignup(r auth.SignupRequest) map[string]string {
	errs := make(map[string]string)

	validateUsername(strings.TrimSpace(r.Username), errs)
	validatePassword(r.Password, errs)

	if len(errs) == 0 {
		return nil
	}

	return errs
}

func ValidateLogin(r auth.LoginRequest) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(r.Username) == "" {
		errs["username"] = "username is required"
	}
	if r.Password == "" {
		errs["password"] = "password is required"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func validateUsername(username string, errs map[string]string) {
	if username == "" {
		errs["username"] = "username is required"
	} else if l := utf8.RuneCountInString(username); l < minUsernameLen || l > maxUsernameLen {
		errs["username"] = "username length must be 3-32 characters"
	} else if !isUsername(username) {
		errs["username"] = "allowed characters: letters, digits, '.', '_', '-'"
	}
}

func validatePassword(password string, errs map[string]string) {
	if strings.TrimSpace(password) == "" {
		errs["password"] = "password is required"
	} else if l := utf8.RuneCountInString(password); l < minPasswordLen || l > maxPasswordLen {
		errs["password"] = "password length must be 8-72 characters"
	}
}

func isUsername(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '.' || r == '_' || r == '-':
		default:
			return false
		}
	}
	return true
}

// ParseUserUpdate rejects the whole request if any field outside the
// {username, password} whitelist is present, before anything is
// applied.
func ParseUserUpdate(body map[string]json.RawMessage) (userDomain.Update, error) {
	var upd userDomain.Update

	if len(body) == 0 {
		return upd, fmt.Errorf("empty update")
	}

	for k, raw := range body {
		switch k {
		case "username":
			var v string
			if err := json.Unmarshal(raw, &v); err != nil {
				return userDomain.Update{}, fmt.Errorf("username must be a string")
			}
			errs := make(map[string]string)
			validateUsername(strings.TrimSpace(v), errs)
			if msg, ok := errs["username"]; ok {
				return userDomain.Update{}, fmt.Errorf("%s", msg)
			}
			upd.Username = &v
		case "password":
			var v string
			if err := json.Unmarshal(raw, &v); err != nil {
				return userDomain.Update{}, fmt.Errorf("password must be a string")
			}
			errs := make(map[string]string)
			validatePassword(v, errs)
			if msg, ok := errs["password"]; ok {
				return userDomain.Update{}, fmt.Errorf("%s", msg)
			}
			upd.Password = &v
		default:
			return userDomain.Update{}, fmt.Errorf("invalid update field %q", k)
		}
	}

	return upd, nil
}

// ParseFileUpdate allows only the metadata whitelist
// {title, description, completed}; storage fields (filename, size,
// content) are immutable.
func ParseFileUpdate(body map[string]json.RawMessage) (fileDomain.Update, error) {
	var upd fileDomain.Update

	if len(body) == 0 {
		return upd, fmt.Errorf("empty update")
	}

	for k, raw := range body {
		switch k {
		case "title":
			var v string
			if err := json.Unmarshal(raw, &v); err != nil {
				return fileDomain.Update{}, fmt.Errorf("title must be a string")
			}
			upd.Title = &v
		case "description":
			var v string
			if err := json.Unmarshal(raw, &v); err != nil {
				return fileDomain.Update{}, fmt.Errorf("description must be a string")
			}
			upd.Description = &v
		case "completed":
			var v bool
			if err := json.Unmarshal(raw, &v); err != nil {
				return fileDomain.Update{}, fmt.Errorf("completed must be a boolean")
			}
			upd.Completed = &v
		default:
			return fileDomain.Update{}, fmt.Errorf("invalid update field %q", k)
		}
	}

	return upd, nil
}

// ParseListOptions reads the three list-mode inputs. Query wins over
// sortBy, which wins over limit/skip; the modes never combine.
func ParseListOptions(query, sortBy, limit, skip string) (fileDomain.ListOptions, error) {
	opts := fileDomain.ListOptions{Query: strings.TrimSpace(query)}

	if sortBy != "" {
		field, desc, err := parseSortBy(sortBy)
		if err != nil {
			return fileDomain.ListOptions{}, err
		}
		opts.SortField = field
		opts.SortDesc = desc
	}

	var err error
	if opts.Limit, err = parseNonNegative("limit", limit); err != nil {
		return fileDomain.ListOptions{}, err
	}
	if opts.Skip, err = parseNonNegative("skip", skip); err != nil {
		return fileDomain.ListOptions{}, err
	}

	return opts, nil
}

func parseSortBy(s string) (string, bool, error) {
	field, dir, _ := strings.Cut(s, ":")
	if _, ok := fileDomain.SortableFields[field]; !ok {
		return "", false, fmt.Errorf("cannot sort by %q", field)
	}
	switch dir {
	case "", "asc":
		return field, false, nil
	case "desc":
		return field, true, nil
	default:
		return "", false, fmt.Errorf("sort direction must be asc or desc")
	}
}

func parseNonNegative(name, s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return n, nil
}
