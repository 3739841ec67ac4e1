package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/phongnguyen123/treow-physio-sub000/internal/domains/post"
	"github.com/phongnguyen123/treow-physio-sub000/internal/shared/response"
	"github.com/phongnguyen123/treow-physio-sub000/pkg/logger"
)

// ============================================================
// HANDLER STRUCT
// ============================================================
type PostHandler struct {
	service post.Service
}

func NewPostHandler(svc post.Service) *PostHandler {
	return &PostHandler{
		service: svc,
	}
}

// ========== READ: GET /api/v1/posts ==========
// Public endpoint: chỉ trả về published posts, newest-first.
func (h *PostHandler) GetAll(c *gin.Context) {
	posts, err := h.service.GetAll(c.Request.Context(), false)
	if err != nil {
		response.InternalServerError(c, "Có lỗi xảy ra")
		return
	}

	response.Success(c, http.StatusOK, posts)
}

// ========== READ: GET /api/v1/admin/posts ==========
// Admin view bao gồm cả drafts.
func (h *PostHandler) GetAllAdmin(c *gin.Context) {
	posts, err := h.service.GetAll(c.Request.Context(), true)
	if err != nil {
		response.InternalServerError(c, "Có lỗi xảy ra")
		return
	}

	response.Success(c, http.StatusOK, posts)
}

// ========== READ: GET /api/v1/posts/:slug ==========
func (h *PostHandler) GetBySlug(c *gin.Context) {
	slug := c.Param("slug")

	p, err := h.service.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, p)
}

// ========== READ: GET /api/v1/admin/posts/:id ==========
func (h *PostHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, p)
}

// ========== CREATE: POST /api/v1/admin/posts ==========
func (h *PostHandler) Create(c *gin.Context) {
	// ========== Parse Request ==========
	var req post.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	// ========== Call Service ==========
	p, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, p)
}

// ========== UPDATE: PUT /api/v1/admin/posts/:id ==========
func (h *PostHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var req post.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	p, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, p)
}

// ========== DELETE: DELETE /api/v1/admin/posts/:id ==========
func (h *PostHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// handleError map domain errors sang HTTP response.
// Unknown errors không leak chi tiết ra ngoài, chỉ log internal.
func (h *PostHandler) handleError(c *gin.Context, err error) {
	if _, ok := err.(validation.Errors); ok {
		response.BadRequest(c, err.Error())
		return
	}

	status := post.ToHTTPStatus(err)
	if status == http.StatusInternalServerError {
		logger.Error("Unhandled post error", err)
		response.InternalServerError(c, "Có lỗi xảy ra")
		return
	}

	response.ErrorResponse(c, status, post.ToErrorCode(err), err.Error())
}
