package v1

import (
	"net/http"

	"oolongblog/api/v1/request"
	"oolongblog/model"
	"oolongblog/service"

	"github.com/gin-gonic/gin"
)

// SettingAPI 站点配置
type SettingAPI struct {
	service *service.SettingService
}

// NewSettingAPI wires the service layer into the HTTP handlers.
func NewSettingAPI(s *service.SettingService) *SettingAPI {
	return &SettingAPI{service: s}
}

// Public 白名单内的公开配置，无需登录
func (a *SettingAPI) Public(c *gin.Context) {
	settings, err := a.service.Public()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// All 完整配置（管理员）
func (a *SettingAPI) All(c *gin.Context) {
	settings, err := a.service.All()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateMany 批量写入配置（管理员），整体一个事务
func (a *SettingAPI) UpdateMany(c *gin.Context) {
	var req []request.SettingItem
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	items := make([]model.Setting, 0, len(req))
	for _, item := range req {
		items = append(items, model.Setting{Key: item.Key, Value: item.Value})
	}
	if err := a.service.SetMany(items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Update 写入单个配置项（管理员）
func (a *SettingAPI) Update(c *gin.Context) {
	key := c.Param("key")
	var req request.SettingItem
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	setting, err := a.service.Set(key, req.Value)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, setting)
}
