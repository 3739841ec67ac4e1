package handler

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/phongnguyen123/treow-physio-sub000/internal/config"
	"github.com/phongnguyen123/treow-physio-sub000/internal/shared/middleware"
	"github.com/phongnguyen123/treow-physio-sub000/internal/shared/response"
	"github.com/phongnguyen123/treow-physio-sub000/pkg/logger"
	"github.com/phongnguyen123/treow-physio-sub000/pkg/session"
)

// ============================================================
// HANDLER STRUCT
// ============================================================
type AuthHandler struct {
	admin    config.AdminConfig
	sessions *session.Manager
}

func NewAuthHandler(admin config.AdminConfig, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{
		admin:    admin,
		sessions: sessions,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ========== POST /api/v1/auth/login ==========
// Sai username hay sai password đều trả cùng một message để tránh
// account enumeration.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if !h.checkCredentials(req.Username, req.Password) {
		response.Unauthorized(c, "Tên đăng nhập hoặc mật khẩu không đúng")
		return
	}

	token, err := h.sessions.CreateSession(req.Username)
	if err != nil {
		logger.Error("Failed to create admin session", err)
		response.InternalServerError(c, "Có lỗi xảy ra")
		return
	}

	// httpOnly cookie, 24h trùng với token exp
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, token, 24*3600, "/", "", false, true)

	response.Success(c, http.StatusOK, gin.H{"success": true})
}

// ========== POST /api/v1/auth/logout ==========
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	response.Success(c, http.StatusOK, gin.H{"success": true})
}

func (h *AuthHandler) checkCredentials(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(h.admin.Username)) == 1

	var passOK bool
	if h.admin.PasswordHash != "" {
		passOK = bcrypt.CompareHashAndPassword([]byte(h.admin.PasswordHash), []byte(password)) == nil
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(password), []byte(h.admin.Password)) == 1
	}

	return userOK && passOK
}
