package v1

import (
	"errors"
	"net/http"

	"oolongblog/api/v1/request"
	"oolongblog/internal/metrics"
	"oolongblog/middleware"
	"oolongblog/service"

	"github.com/gin-gonic/gin"
)

// MomentAPI 说说与点赞
type MomentAPI struct {
	service *service.MomentService
}

// NewMomentAPI wires the service layer into the HTTP handlers.
func NewMomentAPI(s *service.MomentService) *MomentAPI {
	return &MomentAPI{service: s}
}

// List 公开的分页列表
func (a *MomentAPI) List(c *gin.Context) {
	var q request.ListMomentsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	page, pageSize := normalizePage(q.Page, q.PageSize, 10, 50)
	result, err := a.service.List(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// Get 单条说说
func (a *MomentAPI) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	moment, err := a.service.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrMomentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, moment)
}

// Create 发布说说（管理员）
func (a *MomentAPI) Create(c *gin.Context) {
	var req request.CreateMomentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	adminID, _ := middleware.Principal(c)
	moment, err := a.service.Create(adminID, req.Content, req.Images)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, moment)
}

// Delete 删除说说（管理员）
func (a *MomentAPI) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := a.service.Delete(id); err != nil {
		if errors.Is(err, service.ErrMomentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ToggleLike 点赞/取消点赞（登录即可）
func (a *MomentAPI) ToggleLike(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	principalID, role := middleware.Principal(c)
	liked, err := a.service.ToggleLike(principalID, role, id)
	if err != nil {
		if errors.Is(err, service.ErrMomentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	metrics.IncLikeToggle(liked)
	c.JSON(http.StatusOK, gin.H{"liked": liked})
}
