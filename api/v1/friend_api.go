package v1

import (
	"errors"
	"net/http"

	"oolongblog/api/v1/request"
	"oolongblog/service"

	"github.com/gin-gonic/gin"
)

// FriendAPI 友情链接与审核
type FriendAPI struct {
	service *service.FriendService
}

// NewFriendAPI wires the service layer into the HTTP handlers.
func NewFriendAPI(s *service.FriendService) *FriendAPI {
	return &FriendAPI{service: s}
}

// List 公开列表，只含已通过的友链
func (a *FriendAPI) List(c *gin.Context) {
	links, err := a.service.ListPublic()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, links)
}

// ListAll 后台完整列表（管理员）
func (a *FriendAPI) ListAll(c *gin.Context) {
	links, err := a.service.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, links)
}

// Apply 提交友链申请，无需登录
func (a *FriendAPI) Apply(c *gin.Context) {
	var req request.ApplyFriendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	link, err := a.service.Apply(req.Name, req.Avatar, req.URL, req.Description)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, link)
}

// SetStatus 审核友链（管理员）
func (a *FriendAPI) SetStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req request.FriendStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	link, err := a.service.SetStatus(id, *req.Status)
	if err != nil {
		if errors.Is(err, service.ErrFriendNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, link)
}

// Update 编辑友链（管理员）
func (a *FriendAPI) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req request.UpdateFriendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Avatar != nil {
		updates["avatar"] = *req.Avatar
	}
	if req.URL != nil {
		updates["url"] = *req.URL
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}

	link, err := a.service.Update(id, updates)
	if err != nil {
		if errors.Is(err, service.ErrFriendNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, link)
}

// Delete 删除友链（管理员）
func (a *FriendAPI) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := a.service.Delete(id); err != nil {
		if errors.Is(err, service.ErrFriendNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
