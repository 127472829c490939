package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"file-vault-api/internal/application/ports"
	"file-vault-api/internal/application/services"
	"file-vault-api/internal/domain/user"
)

const (
	CtxUser  = "authUser"
	CtxToken = "authToken"
)

// AuthMiddleware resolves the bearer token to a live user and stores
// both the user and the exact presented token on the context; logout
// needs the token to revoke that one session only. Every
// authentication failure collapses to the same 401.
func AuthMiddleware(logger *zap.Logger, auth ports.Auth) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "please authenticate"},
			)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenStr == authHeader {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "please authenticate"},
			)
			return
		}

		u, err := auth.Authenticate(c.Request.Context(), tokenStr)
		if err != nil {
			if errors.Is(err, services.ErrInvalidToken) {
				c.AbortWithStatusJSON(
					http.StatusUnauthorized,
					gin.H{"error": "please authenticate"},
				)
				return
			}
			logger.Error("Authenticate() error", zap.Error(err))
			c.AbortWithStatusJSON(
				http.StatusInternalServerError,
				gin.H{"error": "internal error"},
			)
			return
		}

		c.Set(CtxUser, u)
		c.Set(CtxToken, tokenStr)

		c.Next()
	}
}

func UserFromContext(c *gin.Context) (*user.User, bool) {
	v, ok := c.Get(CtxUser)
	if !ok {
		return nil, false
	}
	u, ok := v.(*user.User)
	return u, ok
}

func TokenFromContext(c *gin.Context) (string, bool) {
	v, ok := c.Get(CtxToken)
	if !ok {
		return "", false
	}
	t, ok := v.(string)
	return t, ok
}
