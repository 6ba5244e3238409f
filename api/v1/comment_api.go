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

// CommentAPI 评论线程
type CommentAPI struct {
	service *service.CommentService
}

// NewCommentAPI wires the service layer into the HTTP handlers.
func NewCommentAPI(s *service.CommentService) *CommentAPI {
	return &CommentAPI{service: s}
}

// List 按文章或说说返回顶层评论和各自的回复
func (a *CommentAPI) List(c *gin.Context) {
	var q request.ListCommentsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	page, pageSize := normalizePage(q.Page, q.PageSize, 20, 50)
	comments, err := a.service.ListThread(q.ArticleID, q.MomentID, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, comments)
}

// ListAll 后台审核的平铺列表（管理员）
func (a *CommentAPI) ListAll(c *gin.Context) {
	comments, err := a.service.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, comments)
}

// Create 发表评论或回复（登录即可，管理员走合成访客身份）
func (a *CommentAPI) Create(c *gin.Context) {
	var req request.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	principalID, role := middleware.Principal(c)
	comment, err := a.service.Create(principalID, role, req.Content, req.ArticleID, req.MomentID, req.ParentID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidTarget),
			errors.Is(err, service.ErrParentNotFound),
			errors.Is(err, service.ErrNestedReply):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	if req.ArticleID != nil {
		metrics.IncComment("article")
	} else {
		metrics.IncComment("moment")
	}
	c.JSON(http.StatusOK, comment)
}

// Delete 删除评论及其回复（管理员）
func (a *CommentAPI) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := a.service.Delete(id); err != nil {
		if errors.Is(err, service.ErrCommentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
