package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/phongnguyen123/treow-physio-sub000/internal/domains/settings"
	"github.com/phongnguyen123/treow-physio-sub000/internal/shared/response"
)

// ============================================================
// HANDLER STRUCT
// ============================================================
type SettingsHandler struct {
	service settings.Service
}

func NewSettingsHandler(svc settings.Service) *SettingsHandler {
	return &SettingsHandler{
		service: svc,
	}
}

// ========== GET /api/v1/admin/seo-settings ==========
func (h *SettingsHandler) GetSeo(c *gin.Context) {
	seo, err := h.service.GetSeo(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Có lỗi xảy ra")
		return
	}

	response.Success(c, http.StatusOK, seo)
}

// ========== PUT /api/v1/admin/seo-settings ==========
func (h *SettingsHandler) UpdateSeo(c *gin.Context) {
	var req settings.UpdateSeoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	seo, err := h.service.UpdateSeo(c.Request.Context(), &req)
	if err != nil {
		response.InternalServerError(c, "Có lỗi xảy ra")
		return
	}

	response.Success(c, http.StatusOK, seo)
}

// ========== GET /api/v1/admin/smtp-settings ==========
// Password luôn redacted trong response.
func (h *SettingsHandler) GetSmtp(c *gin.Context) {
	smtp, err := h.service.GetSmtp(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Có lỗi xảy ra")
		return
	}

	response.Success(c, http.StatusOK, smtp)
}

// ========== PUT /api/v1/admin/smtp-settings ==========
func (h *SettingsHandler) UpdateSmtp(c *gin.Context) {
	var req settings.UpdateSmtpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	smtp, err := h.service.UpdateSmtp(c.Request.Context(), &req)
	if err != nil {
		response.InternalServerError(c, "Có lỗi xảy ra")
		return
	}

	response.Success(c, http.StatusOK, smtp)
}
