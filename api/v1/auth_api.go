package v1

import (
	"errors"
	"net/http"

	"oolongblog/api/v1/request"
	"oolongblog/internal/auth"
	"oolongblog/internal/metrics"
	"oolongblog/middleware"
	"oolongblog/service"

	"github.com/gin-gonic/gin"
)

// AuthAPI 管理员登录、登出、资料与一次性初始化
type AuthAPI struct {
	service *service.AuthService
}

// NewAuthAPI wires the service layer into the HTTP handlers.
func NewAuthAPI(s *service.AuthService) *AuthAPI {
	return &AuthAPI{service: s}
}

// Login 管理员登录，令牌走 cookie + 响应体双通道
func (a *AuthAPI) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.IncLogin("admin", "bad_request")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	token, admin, err := a.service.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			metrics.IncLogin("admin", "unauthorized")
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		metrics.IncLogin("admin", "internal_error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	metrics.IncLogin("admin", "success")
	setTokenCookie(c, token, auth.RoleAdmin)
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":       admin.ID,
			"username": admin.Username,
			"nickname": admin.Nickname,
			"avatar":   admin.Avatar,
		},
	})
}

// Logout 清除会话 cookie
func (a *AuthAPI) Logout(c *gin.Context) {
	clearTokenCookie(c)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Profile 当前管理员资料
func (a *AuthAPI) Profile(c *gin.Context) {
	id, _ := middleware.Principal(c)
	admin, err := a.service.Profile(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "管理员不存在"})
		return
	}
	c.JSON(http.StatusOK, admin)
}

// Check 站点是否已完成管理员初始化，前端据此决定是否展示引导页
func (a *AuthAPI) Check(c *gin.Context) {
	initialized, err := a.service.Initialized()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"initialized": initialized})
}

// Init 一次性创建首个管理员
func (a *AuthAPI) Init(c *gin.Context) {
	var req request.InitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	admin, err := a.service.Init(req.Username, req.Password, req.Nickname)
	if err != nil {
		if errors.Is(err, service.ErrAlreadyInitialized) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":       admin.ID,
		"username": admin.Username,
		"nickname": admin.Nickname,
	})
}
