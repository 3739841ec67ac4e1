package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/phongnguyen123/treow-physio-sub000/internal/domains/author"
	"github.com/phongnguyen123/treow-physio-sub000/internal/shared/response"
	"github.com/phongnguyen123/treow-physio-sub000/pkg/logger"
)

// ============================================================
// HANDLER STRUCT
// ============================================================
type AuthorHandler struct {
	service author.Service
}

func NewAuthorHandler(svc author.Service) *AuthorHandler {
	return &AuthorHandler{
		service: svc,
	}
}

// ========== READ: GET /api/v1/authors ==========
func (h *AuthorHandler) GetAll(c *gin.Context) {
	authors, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Có lỗi xảy ra")
		return
	}

	response.Success(c, http.StatusOK, authors)
}

// ========== READ: GET /api/v1/authors/:slug ==========
func (h *AuthorHandler) GetBySlug(c *gin.Context) {
	a, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, a)
}

// ========== CREATE: POST /api/v1/admin/authors ==========
func (h *AuthorHandler) Create(c *gin.Context) {
	var req author.CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	a, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, a)
}

// ========== UPDATE: PUT /api/v1/admin/authors/:id ==========
func (h *AuthorHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var req author.UpdateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	a, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, a)
}

// ========== DELETE: DELETE /api/v1/admin/authors/:id ==========
func (h *AuthorHandler) Delete(c *gin.Context) {
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

func (h *AuthorHandler) handleError(c *gin.Context, err error) {
	if _, ok := err.(validation.Errors); ok {
		response.BadRequest(c, err.Error())
		return
	}

	status := author.ToHTTPStatus(err)
	if status == http.StatusInternalServerError {
		logger.Error("Unhandled author error", err)
		response.InternalServerError(c, "Có lỗi xảy ra")
		return
	}

	response.ErrorResponse(c, status, author.ToErrorCode(err), err.Error())
}
