package service

import (
	"errors"

	"oolongblog/dao"
	"oolongblog/model"
	"oolongblog/utils"

	"gorm.io/gorm"
)

var ErrArticleNotFound = errors.New("文章不存在")

// PageResult 统一的分页响应壳
type PageResult struct {
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"pageSize"`
	Data     interface{} `json:"data"`
}

// ArticleItem 列表项：标签展开成名字数组，附带评论数
type ArticleItem struct {
	model.Article
	Tags         []string `json:"tags"`
	CommentCount int64    `json:"commentCount"`
}

// ArticleDetail 详情：额外带渲染好的 HTML 正文
type ArticleDetail struct {
	model.Article
	Tags        []string `json:"tags"`
	ContentHTML string   `json:"contentHtml"`
}

// ArticleService 文章 CRUD 与标签归并
type ArticleService struct {
	articles *dao.ArticleDAO
	comments *dao.CommentDAO
}

// NewArticleService 创建一个新的 ArticleService 实例
func NewArticleService(articles *dao.ArticleDAO, comments *dao.CommentDAO) *ArticleService {
	return &ArticleService{articles: articles, comments: comments}
}

func tagNames(tags []model.Tag) []string {
	names := make([]string, 0, len(tags))
	for _, t := range tags {
		names = append(names, t.Name)
	}
	return names
}

// cleanTagNames 去掉空白标签名，标签归并组件自身不做校验
func cleanTagNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n != "" {
			out = append(out, n)
		}
	}
	return out
}

// List 分页查询文章，带过滤条件
func (s *ArticleService) List(f dao.ArticleFilter) (*PageResult, error) {
	total, articles, err := s.articles.List(f)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(articles))
	for _, a := range articles {
		ids = append(ids, a.ID)
	}
	counts, err := s.comments.CountByArticleIDs(ids)
	if err != nil {
		return nil, err
	}

	items := make([]ArticleItem, 0, len(articles))
	for _, a := range articles {
		items = append(items, ArticleItem{
			Article:      a,
			Tags:         tagNames(a.Tags),
			CommentCount: counts[a.ID],
		})
	}
	return &PageResult{Total: total, Page: f.Page, PageSize: f.PageSize, Data: items}, nil
}

// Get 文章详情，正文同时给出 Markdown 原文和渲染结果
func (s *ArticleService) Get(id uint) (*ArticleDetail, error) {
	article, err := s.articles.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	return &ArticleDetail{
		Article:     *article,
		Tags:        tagNames(article.Tags),
		ContentHTML: utils.RenderMarkdown(article.Content),
	}, nil
}

// View 浏览数 +1
func (s *ArticleService) View(id uint) error {
	return s.articles.IncrementViews(id)
}

// Create 新建文章
func (s *ArticleService) Create(article *model.Article, tags []string) (*ArticleItem, error) {
	if err := s.articles.Create(article, cleanTagNames(tags)); err != nil {
		return nil, err
	}
	return &ArticleItem{Article: *article, Tags: tagNames(article.Tags)}, nil
}

// Update 更新文章；tags 非 nil 时整体替换标签集合
func (s *ArticleService) Update(id uint, updates map[string]interface{}, tags *[]string) (*ArticleDetail, error) {
	if _, err := s.articles.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	if tags != nil {
		cleaned := cleanTagNames(*tags)
		tags = &cleaned
	}
	if err := s.articles.Update(id, updates, tags); err != nil {
		return nil, err
	}
	return s.Get(id)
}

// Delete 删除文章
func (s *ArticleService) Delete(id uint) error {
	if _, err := s.articles.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrArticleNotFound
		}
		return err
	}
	return s.articles.Delete(id)
}
