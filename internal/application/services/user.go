package services

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/crypto/bcrypt"

	"file-vault-api/internal/application/ports"
	"file-vault-api/internal/domain/file"
	domain "file-vault-api/internal/domain/user"
	"file-vault-api/internal/infrastructure/mq"
	userDTO "file-vault-api/internal/interface/api/rest/dto/user"
)

type UserService struct {
	userRepository domain.Repository
	fileRepository file.Repository
	mq             ports.RabbitMQ
	mCounter       *prometheus.CounterVec
}

func NewUserService(
	userRepository domain.Repository,
	fileRepository file.Repository,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.UserService {
	return &UserService{
		userRepository: userRepository,
		fileRepository: fileRepository,
		mq:             mq,
		mCounter:       mCounter,
	}
}

func (us *UserService) Signup(ctx context.Context, username, password string) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hashStr := string(hash)

	uRet, err := us.userRepository.CreateUser(ctx, domain.User{
		Username:     strings.TrimSpace(username),
		PasswordHash: &hashStr,
	})
	if err != nil {
		return nil, err
	}

	if uRet != nil {
		us.mq.GetInputChan() <- mq.Event{
			Id:      uuid.New(),
			TS:      time.Now(),
			Method:  http.MethodPost,
			Entity:  mq.EntityUser,
			UserID:  uRet.UUID.String(),
			Payload: userDTO.ToResponseUser(*uRet),
		}
	}

	us.mCounter.WithLabelValues("users_signed_up_total").Inc()

	return uRet, nil
}

func (us *UserService) FindUserByUUID(ctx context.Context, userUUID domain.UUID) (*domain.User, error) {
	u, err := us.userRepository.FetchUserByUUID(ctx, userUUID)
	if err != nil {
		return nil, err
	}

	return u, nil
}

// UpdateUser applies the whitelisted profile fields. A password
// change re-hashes the credential; it does not revoke live tokens
// (known gap, kept on purpose).
func (us *UserService) UpdateUser(ctx context.Context, userUUID domain.UUID, upd domain.Update) (*domain.User, error) {
	u, err := us.userRepository.FetchUserByUUID(ctx, userUUID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}

	if upd.Username != nil {
		u.Username = strings.TrimSpace(*upd.Username)
	}
	if upd.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*upd.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hashStr := string(hash)
		u.PasswordHash = &hashStr
	}

	uRet, err := us.userRepository.UpdateUser(ctx, *u)
	if err != nil {
		return nil, err
	}

	if uRet != nil {
		us.mq.GetInputChan() <- mq.Event{
			Id:      uuid.New(),
			TS:      time.Now(),
			Method:  http.MethodPatch,
			Entity:  mq.EntityUser,
			UserID:  uRet.UUID.String(),
			Payload: userDTO.ToResponseUser(*uRet),
		}
	}

	us.mCounter.WithLabelValues("users_updated_total").Inc()

	return uRet, nil
}

// DeleteUser removes the account and everything it owns. The user's
// files go first; the soft-deleted user record takes its live-token
// list with it, so remaining sessions die immediately.
func (us *UserService) DeleteUser(ctx context.Context, userUUID domain.UUID) (*domain.User, error) {
	id, err := us.userRepository.FetchInternalID(ctx, userUUID)
	if err != nil {
		return nil, err
	}
	if id == 0 {
		return nil, nil
	}

	// todo: should be run in transaction

	if err = us.fileRepository.DeleteUserFiles(ctx, id); err != nil {
		return nil, err
	}
	u, err := us.userRepository.DeleteUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if u != nil {
		us.mq.GetInputChan() <- mq.Event{
			Id:      uuid.New(),
			TS:      time.Now(),
			Method:  http.MethodDelete,
			Entity:  mq.EntityUser,
			UserID:  u.UUID.String(),
			Payload: userDTO.ToResponseUser(*u),
		}
	}

	us.mCounter.WithLabelValues("users_deleted_total").Inc()

	return u, nil
}
