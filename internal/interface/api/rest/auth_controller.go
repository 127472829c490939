package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"file-vault-api/internal/application/ports"
	"file-vault-api/internal/application/services"
	userDB "file-vault-api/internal/infrastructure/db/postgres/user"
	"file-vault-api/internal/interface/api/rest/dto/auth"
	userDTO "file-vault-api/internal/interface/api/rest/dto/user"
	"file-vault-api/internal/interface/api/rest/middleware"
	"file-vault-api/internal/interface/api/rest/validator"
)

type AuthController struct {
	logger      *zap.Logger
	userService ports.UserService
	authService ports.Auth
}

func NewAuthController(
	r *gin.Engine,
	logger *zap.Logger,
	userService ports.UserService,
	authService ports.Auth,
) *AuthController {
	ac := &AuthController{
		logger:      logger,
		userService: userService,
		authService: authService,
	}

	authMW := middleware.AuthMiddleware(logger, authService)

	r.POST(RouteSignup, ac.SignupHandler)
	r.POST(RouteLogin, ac.LoginHandler)
	r.POST(RouteLogout, authMW, ac.LogoutHandler)
	r.POST(RouteLogoutAll, authMW, ac.LogoutAllHandler)

	return ac
}

func (ac *AuthController) SignupHandler(c *gin.Context) {
	var req auth.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "invalid json"},
		)
		return
	}

	if errs := validator.ValidateSignup(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	u, err := ac.userService.Signup(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, userDB.ErrUsernameTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to create a user"},
		)
		ac.logger.Error("Signup() error", zap.Error(err))
		return
	}

	token, err := ac.authService.IssueToken(c.Request.Context(), u)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to generate token"},
		)
		ac.logger.Error("IssueToken() error", zap.Error(err), zap.Stringer("user_uuid", u.UUID))
		return
	}

	c.JSON(http.StatusCreated, auth.TokenResponse{
		User:  userDTO.ToResponseUser(*u),
		Token: token,
	})
}

// LoginHandler never reveals which part of the credentials was
// wrong; every failure is the same generic response.
func (ac *AuthController) LoginHandler(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "invalid json"},
		)
		return
	}

	if errs := validator.ValidateLogin(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	u, token, err := ac.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if !errors.Is(err, services.ErrInvalidCredentials) {
			ac.logger.Error("Login() error", zap.Error(err))
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "invalid login details"},
		)
		return
	}

	c.JSON(http.StatusOK, auth.TokenResponse{
		User:  userDTO.ToResponseUser(*u),
		Token: token,
	})
}

// LogoutHandler revokes only the token that authenticated this
// request; other devices stay logged in.
func (ac *AuthController) LogoutHandler(c *gin.Context) {
	u, ok := middleware.UserFromContext(c)
	token, tok := middleware.TokenFromContext(c)
	if !ok || !tok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "please authenticate"})
		return
	}

	if err := ac.authService.Logout(c.Request.Context(), u.UUID, token); err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "internal error"},
		)
		ac.logger.Error("Logout() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "successfully logged out"})
}

func (ac *AuthController) LogoutAllHandler(c *gin.Context) {
	u, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "please authenticate"})
		return
	}

	if err := ac.authService.LogoutAll(c.Request.Context(), u.UUID); err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "internal error"},
		)
		ac.logger.Error("LogoutAll() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "successfully logged out from all devices"})
}
