package v1

import (
	"errors"
	"net/http"

	"oolongblog/api/v1/request"
	"oolongblog/model"
	"oolongblog/service"

	"github.com/gin-gonic/gin"
)

// GalleryAPI 相册读写
type GalleryAPI struct {
	service *service.GalleryService
}

// NewGalleryAPI wires the service layer into the HTTP handlers.
func NewGalleryAPI(s *service.GalleryService) *GalleryAPI {
	return &GalleryAPI{service: s}
}

// List 公开的分页列表，可按分类过滤
func (a *GalleryAPI) List(c *gin.Context) {
	var q request.ListGalleryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	page, pageSize := normalizePage(q.Page, q.PageSize, 20, 50)
	result, err := a.service.List(page, pageSize, q.Category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// Create 新增图片（管理员）
func (a *GalleryAPI) Create(c *gin.Context) {
	var req request.CreateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	image := &model.GalleryImage{
		URL:         req.URL,
		Thumbnail:   req.Thumbnail,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
	}
	item, err := a.service.Create(image, req.Tags)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, item)
}

// Update 更新图片（管理员）
func (a *GalleryAPI) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req request.UpdateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updates := map[string]interface{}{}
	if req.URL != nil {
		updates["url"] = *req.URL
	}
	if req.Thumbnail != nil {
		updates["thumbnail"] = *req.Thumbnail
	}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}

	item, err := a.service.Update(id, updates, req.Tags)
	if err != nil {
		if errors.Is(err, service.ErrImageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, item)
}

// Delete 删除图片（管理员）
func (a *GalleryAPI) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := a.service.Delete(id); err != nil {
		if errors.Is(err, service.ErrImageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
