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

// VisitorAPI 访客注册、登录与个人资料
type VisitorAPI struct {
	service *service.VisitorService
}

// NewVisitorAPI wires the service layer into the HTTP handlers.
func NewVisitorAPI(s *service.VisitorService) *VisitorAPI {
	return &VisitorAPI{service: s}
}

// Register 访客注册，成功即登录
func (a *VisitorAPI) Register(c *gin.Context) {
	var req request.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	token, visitor, err := a.service.Register(req.Nickname, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	setTokenCookie(c, token, auth.RoleVisitor)
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":       visitor.ID,
			"nickname": visitor.Nickname,
			"email":    visitor.Email,
			"avatar":   visitor.Avatar,
		},
	})
}

// Login 访客登录
func (a *VisitorAPI) Login(c *gin.Context) {
	var req request.VisitorLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.IncLogin("visitor", "bad_request")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	token, visitor, err := a.service.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidVisitorCredentials) {
			metrics.IncLogin("visitor", "unauthorized")
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		metrics.IncLogin("visitor", "internal_error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	metrics.IncLogin("visitor", "success")
	setTokenCookie(c, token, auth.RoleVisitor)
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":       visitor.ID,
			"nickname": visitor.Nickname,
			"email":    visitor.Email,
			"avatar":   visitor.Avatar,
		},
	})
}

// requireVisitor 访客专属接口的角色检查
func requireVisitor(c *gin.Context) (uint, bool) {
	id, role := middleware.Principal(c)
	if role != auth.RoleVisitor {
		c.JSON(http.StatusForbidden, gin.H{"error": "无权限"})
		return 0, false
	}
	return id, true
}

// Profile 查看自己的资料
func (a *VisitorAPI) Profile(c *gin.Context) {
	id, ok := requireVisitor(c)
	if !ok {
		return
	}
	visitor, err := a.service.Profile(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "访客不存在"})
		return
	}
	c.JSON(http.StatusOK, visitor)
}

// UpdateProfile 更新自己的昵称/头像
func (a *VisitorAPI) UpdateProfile(c *gin.Context) {
	id, ok := requireVisitor(c)
	if !ok {
		return
	}
	var req request.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	visitor, err := a.service.UpdateProfile(id, req.Nickname, req.Avatar)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, visitor)
}

// ChangePassword 修改自己的密码
func (a *VisitorAPI) ChangePassword(c *gin.Context) {
	id, ok := requireVisitor(c)
	if !ok {
		return
	}
	var req request.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := a.service.ChangePassword(id, req.OldPassword, req.NewPassword); err != nil {
		if errors.Is(err, service.ErrWrongOldPassword) || errors.Is(err, service.ErrBrokenAccount) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
