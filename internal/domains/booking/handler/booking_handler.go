package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/phongnguyen123/treow-physio-sub000/internal/domains/booking"
	"github.com/phongnguyen123/treow-physio-sub000/internal/shared/response"
	"github.com/phongnguyen123/treow-physio-sub000/pkg/logger"
)

// ============================================================
// HANDLER STRUCT
// ============================================================
type BookingHandler struct {
	service booking.Service
}

func NewBookingHandler(svc booking.Service) *BookingHandler {
	return &BookingHandler{
		service: svc,
	}
}

// ========== CREATE: POST /api/v1/bookings ==========
// Public endpoint, khách đặt lịch từ website.
func (h *BookingHandler) Create(c *gin.Context) {
	var req booking.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	b, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, b)
}

// ========== READ: GET /api/v1/bookings/slots ==========
// Catalog giờ hẹn cho booking form.
func (h *BookingHandler) GetTimeSlots(c *gin.Context) {
	response.Success(c, http.StatusOK, booking.TimeSlots)
}

// ========== READ: GET /api/v1/admin/bookings ==========
func (h *BookingHandler) GetAll(c *gin.Context) {
	bookings, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Có lỗi xảy ra")
		return
	}

	response.Success(c, http.StatusOK, bookings)
}

// ========== READ: GET /api/v1/admin/bookings/:id ==========
func (h *BookingHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, b)
}

// ========== UPDATE: PUT /api/v1/admin/bookings/:id ==========
func (h *BookingHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var req booking.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	b, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, b)
}

// ========== UPDATE: PATCH /api/v1/admin/bookings/:id/status ==========
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var req booking.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	b, err := h.service.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, b)
}

// ========== DELETE: DELETE /api/v1/admin/bookings/:id ==========
func (h *BookingHandler) Delete(c *gin.Context) {
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

func (h *BookingHandler) handleError(c *gin.Context, err error) {
	status := booking.ToHTTPStatus(err)
	if status == http.StatusInternalServerError {
		logger.Error("Unhandled booking error", err)
		response.InternalServerError(c, "Có lỗi xảy ra")
		return
	}

	response.ErrorResponse(c, status, booking.ToErrorCode(err), err.Error())
}
