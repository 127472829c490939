package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"file-vault-api/internal/application/ports"
	"file-vault-api/internal/application/services"
	fileDTO "file-vault-api/internal/interface/api/rest/dto/file"
	"file-vault-api/internal/interface/api/rest/middleware"
	"file-vault-api/internal/interface/api/rest/validator"
)

type FileController struct {
	fileService ports.FileService
	logger      *zap.Logger
}

func NewFileController(
	r *gin.Engine,
	fileService ports.FileService,
	logger *zap.Logger,
	authService ports.Auth,
) *FileController {
	fc := &FileController{
		fileService: fileService,
		logger:      logger,
	}

	authMW := middleware.AuthMiddleware(logger, authService)

	r.POST(RouteFiles, authMW, fc.CreateFileHandler)
	r.GET(RouteFiles, authMW, fc.GetFilesHandler)
	r.GET(RouteFile, authMW, fc.GetFileHandler)
	r.PATCH(RouteFile, authMW, fc.UpdateFileHandler)
	r.DELETE(RouteFile, authMW, fc.DeleteFileHandler)

	return fc
}

// CreateFileHandler accepts a multipart upload and answers with the
// new file's id only; the binary is never echoed back.
func (fc *FileController) CreateFileHandler(c *gin.Context) {
	u, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "please authenticate"})
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	f, err := fc.fileService.CreateFile(c.Request.Context(), u.UUID, fh)
	if err != nil {
		if errors.Is(err, services.ErrFileType) || errors.Is(err, services.ErrFileSize) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to create a file"},
		)
		fc.logger.Error("CreateFile() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, fileDTO.CreatedResponse{ID: f.UUID})
}

func (fc *FileController) GetFilesHandler(c *gin.Context) {
	u, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "please authenticate"})
		return
	}

	opts, err := validator.ParseListOptions(
		c.Query("query"),
		c.Query("sortBy"),
		c.Query("limit"),
		c.Query("skip"),
	)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": err.Error()},
		)
		return
	}

	files, err := fc.fileService.FindFiles(c.Request.Context(), u.UUID, opts)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get files"},
		)
		fc.logger.Error("FindFiles() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, fileDTO.ResponseData{
		Data: fileDTO.ToResponseFiles(files),
	})
}

func (fc *FileController) GetFileHandler(c *gin.Context) {
	u, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "please authenticate"})
		return
	}

	ok, fileUUID := validator.IsUUID(c.Param("file_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "file_id must be a valid UUID"},
		)
		return
	}

	f, err := fc.fileService.FindFileByUUID(c.Request.Context(), u.UUID, fileUUID)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get a file"},
		)
		fc.logger.Error("FindFileByUUID() error", zap.Error(err))
		return
	}

	// not found and not owned are the same answer
	if f == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "file not found"},
		)
		return
	}

	c.JSON(http.StatusOK, fileDTO.ToResponseFileWithContent(*f))
}

func (fc *FileController) UpdateFileHandler(c *gin.Context) {
	u, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "please authenticate"})
		return
	}

	ok, fileUUID := validator.IsUUID(c.Param("file_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "file_id must be a valid UUID"},
		)
		return
	}

	var body map[string]json.RawMessage
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "invalid json"},
		)
		return
	}

	upd, err := validator.ParseFileUpdate(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid update",
			"details": err.Error(),
		})
		return
	}

	f, err := fc.fileService.UpdateFile(c.Request.Context(), u.UUID, fileUUID, upd)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to update a file"},
		)
		fc.logger.Error("UpdateFile() error", zap.Error(err))
		return
	}

	if f == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "file not found"},
		)
		return
	}

	c.JSON(http.StatusOK, fileDTO.ToResponseFile(*f))
}

func (fc *FileController) DeleteFileHandler(c *gin.Context) {
	u, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "please authenticate"})
		return
	}

	ok, fileUUID := validator.IsUUID(c.Param("file_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "file_id must be a valid UUID"},
		)
		return
	}

	f, err := fc.fileService.DeleteFile(c.Request.Context(), u.UUID, fileUUID)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to delete a file"},
		)
		fc.logger.Error("DeleteFile() error", zap.Error(err))
		return
	}

	if f == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "file not found"},
		)
		return
	}

	c.JSON(http.StatusOK, fileDTO.ToResponseFile(*f))
}
