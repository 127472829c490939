package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"file-vault-api/internal/application/ports"
	domain "file-vault-api/internal/domain/user"
	userDB "file-vault-api/internal/infrastructure/db/postgres/user"
	userDTO "file-vault-api/internal/interface/api/rest/dto/user"
	"file-vault-api/internal/interface/api/rest/middleware"
	"file-vault-api/internal/interface/api/rest/validator"
)

type UserController struct {
	userService ports.UserService
	logger      *zap.Logger
}

func NewUserController(
	r *gin.Engine,
	userService ports.UserService,
	logger *zap.Logger,
	authService ports.Auth,
) *UserController {
	uc := &UserController{
		userService: userService,
		logger:      logger,
	}

	authMW := middleware.AuthMiddleware(logger, authService)

	r.GET(RouteUserMe, authMW, uc.GetMeHandler)
	r.PATCH(RouteUserMe, authMW, uc.UpdateMeHandler)
	r.DELETE(RouteUserMe, authMW, uc.DeleteMeHandler)

	r.GET(RouteUser, authMW, uc.GetUserHandler)
	r.PATCH(RouteUser, authMW, uc.UpdateUserHandler)
	r.DELETE(RouteUser, authMW, uc.DeleteUserHandler)

	return uc
}

func (uc *UserController) GetMeHandler(c *gin.Context) {
	u, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "please authenticate"})
		return
	}

	c.JSON(http.StatusOK, userDTO.ToResponseUser(*u))
}

func (uc *UserController) GetUserHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("user_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "user_id must be a valid UUID"},
		)
		return
	}

	u, err := uc.userService.FindUserByUUID(c.Request.Context(), uuid)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get a user"},
		)
		uc.logger.Error("FindUserByUUID() error", zap.Error(err))
		return
	}

	if u == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "user not found"},
		)
		return
	}

	c.JSON(http.StatusOK, userDTO.ToResponseUser(*u))
}

func (uc *UserController) UpdateMeHandler(c *gin.Context) {
	u, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "please authenticate"})
		return
	}

	uc.updateUser(c, u.UUID)
}

func (uc *UserController) UpdateUserHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("user_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "user_id must be a valid UUID"},
		)
		return
	}

	uc.updateUser(c, uuid)
}

// updateUser enforces validate-then-apply: an update naming any
// field outside {username, password} is rejected whole, before the
// record is touched.
func (uc *UserController) updateUser(c *gin.Context, uuid domain.UUID) {
	var body map[string]json.RawMessage
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "invalid json"},
		)
		return
	}

	upd, err := validator.ParseUserUpdate(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid update",
			"details": err.Error(),
		})
		return
	}

	u, err := uc.userService.UpdateUser(c.Request.Context(), uuid, upd)
	if err != nil {
		if errors.Is(err, userDB.ErrUsernameTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to update a user"},
		)
		uc.logger.Error("UpdateUser() error", zap.Error(err))
		return
	}

	if u == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "user not found"},
		)
		return
	}

	c.JSON(http.StatusOK, userDTO.ToResponseUser(*u))
}

func (uc *UserController) DeleteMeHandler(c *gin.Context) {
	u, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "please authenticate"})
		return
	}

	uc.deleteUser(c, u.UUID)
}

func (uc *UserController) DeleteUserHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("user_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "user_id must be a valid UUID"},
		)
		return
	}

	uc.deleteUser(c, uuid)
}

func (uc *UserController) deleteUser(c *gin.Context, uuid domain.UUID) {
	u, err := uc.userService.DeleteUser(c.Request.Context(), uuid)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to delete user"},
		)
		uc.logger.Error("DeleteUser() error", zap.Error(err))
		return
	}

	if u == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "user not found"},
		)
		return
	}

	c.JSON(http.StatusOK, userDTO.ToResponseUser(*u))
}
