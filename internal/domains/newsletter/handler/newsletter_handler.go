package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/phongnguyen123/treow-physio-sub000/internal/domains/newsletter"
	"github.com/phongnguyen123/treow-physio-sub000/internal/infrastructure/queue"
	"github.com/phongnguyen123/treow-physio-sub000/internal/shared/response"
	"github.com/phongnguyen123/treow-physio-sub000/pkg/logger"
)

// ============================================================
// HANDLER STRUCT
// ============================================================
type NewsletterHandler struct {
	service newsletter.Service
	queue   *queue.Client // nil khi Redis không được configure
}

func NewNewsletterHandler(svc newsletter.Service, queueClient *queue.Client) *NewsletterHandler {
	return &NewsletterHandler{
		service: svc,
		queue:   queueClient,
	}
}

// ========== CREATE: POST /api/v1/newsletter/subscribe ==========
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req newsletter.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	sub, err := h.service.Subscribe(c.Request.Context(), req.Email)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, sub)
}

// ========== GET /api/v1/newsletter/unsubscribe?email= ==========
// GET để link trong email click được trực tiếp.
func (h *NewsletterHandler) Unsubscribe(c *gin.Context) {
	addr := c.Query("email")
	if addr == "" {
		response.BadRequest(c, "Thiếu địa chỉ email")
		return
	}

	if err := h.service.Unsubscribe(c.Request.Context(), addr); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"unsubscribed": true})
}

// ========== READ: GET /api/v1/admin/subscribers ==========
func (h *NewsletterHandler) GetAll(c *gin.Context) {
	subscribers, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Có lỗi xảy ra")
		return
	}

	response.Success(c, http.StatusOK, subscribers)
}

// ========== DELETE: DELETE /api/v1/admin/subscribers/:id ==========
func (h *NewsletterHandler) Delete(c *gin.Context) {
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

// ========== POST /api/v1/admin/newsletter/broadcast ==========
// Có Redis: enqueue background task, trả 202 ngay.
// Không Redis: gửi inline, trả kết quả đầy đủ (request có thể lâu).
func (h *NewsletterHandler) Broadcast(c *gin.Context) {
	var req newsletter.BroadcastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if h.queue != nil {
		payload := queue.NewsletterBroadcastPayload{
			Subject: req.Subject,
			HTML:    req.HTML,
		}
		if err := h.queue.EnqueueNewsletterBroadcast(c.Request.Context(), payload); err != nil {
			logger.Error("Failed to enqueue newsletter broadcast", err)
			response.InternalServerError(c, "Có lỗi xảy ra")
			return
		}

		response.Success(c, http.StatusAccepted, gin.H{"queued": true})
		return
	}

	result, err := h.service.Broadcast(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

func (h *NewsletterHandler) handleError(c *gin.Context, err error) {
	status := newsletter.ToHTTPStatus(err)
	if status == http.StatusInternalServerError {
		logger.Error("Unhandled newsletter error", err)
		response.InternalServerError(c, "Có lỗi xảy ra")
		return
	}

	response.ErrorResponse(c, status, newsletter.ToErrorCode(err), err.Error())
}
