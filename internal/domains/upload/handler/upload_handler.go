package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/phongnguyen123/treow-physio-sub000/internal/domains/upload"
	"github.com/phongnguyen123/treow-physio-sub000/internal/shared/response"
	"github.com/phongnguyen123/treow-physio-sub000/pkg/logger"
)

// ============================================================
// HANDLER STRUCT
// ============================================================
type UploadHandler struct {
	service *upload.Service
}

func NewUploadHandler(svc *upload.Service) *UploadHandler {
	return &UploadHandler{
		service: svc,
	}
}

// ========== POST /api/v1/admin/upload ==========
// Multipart form, field "file".
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "Thiếu file upload")
		return
	}

	// Server-side limit, không tin Content-Length
	if fileHeader.Size > upload.MaxFileSize {
		response.BadRequest(c, upload.ErrFileTooLarge.Error())
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file", err)
		response.InternalServerError(c, "Có lỗi xảy ra")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, upload.MaxFileSize+1))
	if err != nil {
		logger.Error("Failed to read uploaded file", err)
		response.InternalServerError(c, "Có lỗi xảy ra")
		return
	}

	result, err := h.service.Upload(c.Request.Context(), fileHeader.Filename, data)
	if err != nil {
		switch {
		case errors.Is(err, upload.ErrFileTooLarge),
			errors.Is(err, upload.ErrUnsupportedType),
			errors.Is(err, upload.ErrEmptyFile):
			response.BadRequest(c, err.Error())
		default:
			response.InternalServerError(c, "Có lỗi xảy ra")
		}
		return
	}

	response.Success(c, http.StatusCreated, result)
}
