package services

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/crypto/bcrypt"

	"file-vault-api/internal/application/ports"
	"file-vault-api/internal/domain/user"
	"file-vault-api/internal/infrastructure/jwt"
)

var (
	// ErrInvalidCredentials covers every login failure: unknown
	// username and wrong password look identical to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken covers every token failure: malformed,
	// tampered, expired, revoked, or owned by a deleted user.
	ErrInvalidToken          = errors.New("invalid token")
	ErrFailedToGenerateToken = errors.New("failed to generate token")
)

const tokenTTL = 30 * 24 * time.Hour

type AuthService struct {
	jwtService     *jwt.Service
	userRepository user.Repository
	mCounter       *prometheus.CounterVec
}

func NewAuthService(
	jwtService *jwt.Service,
	userRepository user.Repository,
	mCounter *prometheus.CounterVec,
) ports.Auth {
	return &AuthService{
		jwtService:     jwtService,
		userRepository: userRepository,
		mCounter:       mCounter,
	}
}

func (as *AuthService) Login(ctx context.Context, username, password string) (*user.User, string, error) {
	u, err := as.userRepository.FetchUserByUsername(ctx, username)
	if err != nil {
		return nil, "", err
	}
	if u == nil || u.PasswordHash == nil {
		return nil, "", ErrInvalidCredentials
	}

	if err = bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := as.IssueToken(ctx, u)
	if err != nil {
		return nil, "", err
	}

	as.mCounter.WithLabelValues("logins_total").Inc()

	return u, token, nil
}

// IssueToken signs a fresh token and appends it to the user's
// live-token list. Each device gets its own entry.
func (as *AuthService) IssueToken(ctx context.Context, u *user.User) (string, error) {
	token, err := as.jwtService.GenerateJWT(u.UUID.String(), tokenTTL)
	if err != nil {
		return "", ErrFailedToGenerateToken
	}

	if err = as.userRepository.AppendToken(ctx, u.UUID, token); err != nil {
		return "", err
	}

	as.mCounter.WithLabelValues("tokens_issued_total").Inc()

	return token, nil
}

// Authenticate resolves a bearer token to its user. Signature is
// checked first, without a store lookup; then the decoded user must
// still exist and still carry this exact token in its live list.
func (as *AuthService) Authenticate(ctx context.Context, token string) (*user.User, error) {
	claims, err := as.jwtService.ValidateToken(token)
	if err != nil {
		return nil, ErrInvalidToken
	}

	userUUID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, ErrInvalidToken
	}

	u, err := as.userRepository.FetchUserByUUID(ctx, userUUID)
	if err != nil {
		return nil, err
	}
	if u == nil || !slices.Contains(u.Tokens, token) {
		return nil, ErrInvalidToken
	}

	return u, nil
}

// Logout removes exactly the presented token; other sessions of the
// same user stay live. A no-op if the token is already gone.
func (as *AuthService) Logout(ctx context.Context, userUUID user.UUID, token string) error {
	if err := as.userRepository.RemoveToken(ctx, userUUID, token); err != nil {
		return err
	}

	as.mCounter.WithLabelValues("logouts_total").Inc()

	return nil
}

func (as *AuthService) LogoutAll(ctx context.Context, userUUID user.UUID) error {
	if err := as.userRepository.ClearTokens(ctx, userUUID); err != nil {
		return err
	}

	as.mCounter.WithLabelValues("logout_all_total").Inc()

	return nil
}
