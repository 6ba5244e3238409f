package v1

import (
	"errors"
	"net/http"

	"oolongblog/api/v1/request"
	"oolongblog/dao"
	"oolongblog/middleware"
	"oolongblog/model"
	"oolongblog/service"

	"github.com/gin-gonic/gin"
)

// ArticleAPI 文章读写
type ArticleAPI struct {
	service *service.ArticleService
}

// NewArticleAPI wires the service layer into the HTTP handlers.
func NewArticleAPI(s *service.ArticleService) *ArticleAPI {
	return &ArticleAPI{service: s}
}

// List 公开的分页列表，支持分类/状态/关键词过滤
func (a *ArticleAPI) List(c *gin.Context) {
	var q request.ListArticlesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	page, pageSize := normalizePage(q.Page, q.PageSize, 10, 100)
	result, err := a.service.List(dao.ArticleFilter{
		Page:     page,
		PageSize: pageSize,
		Category: q.Category,
		Status:   q.Status,
		Keyword:  q.Keyword,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// Get 文章详情
func (a *ArticleAPI) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	article, err := a.service.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrArticleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, article)
}

// View 浏览数 +1，无鉴权
func (a *ArticleAPI) View(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := a.service.View(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Create 新建文章（管理员）
func (a *ArticleAPI) Create(c *gin.Context) {
	var req request.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	adminID, _ := middleware.Principal(c)
	status := model.ArticleDraft
	if req.Status != nil {
		status = *req.Status
	}
	article := &model.Article{
		Title:    req.Title,
		Excerpt:  req.Excerpt,
		Content:  req.Content,
		Cover:    req.Cover,
		Category: req.Category,
		Status:   status,
		AuthorID: adminID,
	}
	item, err := a.service.Create(article, req.Tags)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, item)
}

// Update 更新文章（管理员）
func (a *ArticleAPI) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req request.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Excerpt != nil {
		updates["excerpt"] = *req.Excerpt
	}
	if req.Content != nil {
		updates["content"] = *req.Content
	}
	if req.Cover != nil {
		updates["cover"] = *req.Cover
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}

	article, err := a.service.Update(id, updates, req.Tags)
	if err != nil {
		if errors.Is(err, service.ErrArticleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, article)
}

// Delete 删除文章（管理员）
func (a *ArticleAPI) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := a.service.Delete(id); err != nil {
		if errors.Is(err, service.ErrArticleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
