package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"oolongblog/dao"
	"oolongblog/model"
)

func TestArticleCreate_TagsAreReused(t *testing.T) {
	db := setupTestDB()
	svc := NewArticleService(dao.NewArticleDAO(db, dao.NewTagDAO(db)), dao.NewCommentDAO(db))
	admin := createTestAdmin(db)

	_, err := svc.Create(&model.Article{
		Title:    "入门",
		Content:  "...",
		Category: "技术",
		Status:   model.ArticlePublished,
		AuthorID: admin.ID,
	}, []string{"go", "web"})
	assert.NoError(t, err)

	_, err = svc.Create(&model.Article{
		Title:    "进阶",
		Content:  "...",
		Category: "技术",
		Status:   model.ArticlePublished,
		AuthorID: admin.ID,
	}, []string{"go", "gorm"})
	assert.NoError(t, err)

	// 标签名区分大小写，React 和 react 是两个标签
	_, err = svc.Create(&model.Article{
		Title:    "前端",
		Content:  "...",
		Category: "技术",
		Status:   model.ArticlePublished,
		AuthorID: admin.ID,
	}, []string{"react", "React", ""})
	assert.NoError(t, err)

	var tags []model.Tag
	db.Order("name").Find(&tags)
	names := make([]string, 0, len(tags))
	for _, tg := range tags {
		names = append(names, tg.Name)
	}
	assert.Equal(t, []string{"React", "go", "gorm", "react", "web"}, names)
}

func TestArticleList_FilterAndTotal(t *testing.T) {
	db := setupTestDB()
	svc := NewArticleService(dao.NewArticleDAO(db, dao.NewTagDAO(db)), dao.NewCommentDAO(db))
	admin := createTestAdmin(db)

	createTestArticle(db, admin.ID, "Go 并发", "技术", model.ArticlePublished)
	createTestArticle(db, admin.ID, "读书笔记", "生活", model.ArticlePublished)
	createTestArticle(db, admin.ID, "未完成的草稿", "技术", model.ArticleDraft)

	published := model.ArticlePublished
	page, err := svc.List(dao.ArticleFilter{Page: 1, PageSize: 10, Status: &published})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)

	page, err = svc.List(dao.ArticleFilter{Page: 1, PageSize: 10, Category: "技术", Status: &published})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
	items := page.Data.([]ArticleItem)
	assert.Equal(t, "Go 并发", items[0].Title)

	// 不带状态过滤时草稿也可见（后台视角）
	page, err = svc.List(dao.ArticleFilter{Page: 1, PageSize: 2})
	assert.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	assert.Len(t, page.Data.([]ArticleItem), 2)
}

func TestArticleGet_RendersMarkdown(t *testing.T) {
	db := setupTestDB()
	svc := NewArticleService(dao.NewArticleDAO(db, dao.NewTagDAO(db)), dao.NewCommentDAO(db))
	admin := createTestAdmin(db)
	article := createTestArticle(db, admin.ID, "标题", "技术", model.ArticlePublished)

	detail, err := svc.Get(article.ID)
	assert.NoError(t, err)
	assert.Equal(t, "# 正文", detail.Content)
	assert.Contains(t, detail.ContentHTML, "<h1")
	assert.Contains(t, detail.ContentHTML, "正文")
}

func TestArticleView_IncrementsCounter(t *testing.T) {
	db := setupTestDB()
	svc := NewArticleService(dao.NewArticleDAO(db, dao.NewTagDAO(db)), dao.NewCommentDAO(db))
	admin := createTestAdmin(db)
	article := createTestArticle(db, admin.ID, "标题", "技术", model.ArticlePublished)

	assert.NoError(t, svc.View(article.ID))
	assert.NoError(t, svc.View(article.ID))

	var got model.Article
	db.First(&got, article.ID)
	assert.Equal(t, 2, got.Views)
}

func TestArticleUpdate_ReplacesTags(t *testing.T) {
	db := setupTestDB()
	svc := NewArticleService(dao.NewArticleDAO(db, dao.NewTagDAO(db)), dao.NewCommentDAO(db))
	admin := createTestAdmin(db)

	created, err := svc.Create(&model.Article{
		Title:    "旧标题",
		Content:  "旧正文",
		Category: "技术",
		Status:   model.ArticleDraft,
		AuthorID: admin.ID,
	}, []string{"go", "web"})
	assert.NoError(t, err)

	newTags := []string{"go", "http"}
	detail, err := svc.Update(created.ID, map[string]interface{}{
		"title":  "新标题",
		"status": model.ArticlePublished,
	}, &newTags)
	assert.NoError(t, err)
	assert.Equal(t, "新标题", detail.Title)
	assert.Equal(t, model.ArticlePublished, detail.Status)
	assert.ElementsMatch(t, []string{"go", "http"}, detail.Tags)

	_, err = svc.Update(999, map[string]interface{}{"title": "x"}, nil)
	assert.ErrorIs(t, err, ErrArticleNotFound)
}

func TestArticleDelete_ClearsTagLinks(t *testing.T) {
	db := setupTestDB()
	svc := NewArticleService(dao.NewArticleDAO(db, dao.NewTagDAO(db)), dao.NewCommentDAO(db))
	admin := createTestAdmin(db)

	created, err := svc.Create(&model.Article{
		Title:    "删我",
		Content:  "...",
		Category: "技术",
		Status:   model.ArticlePublished,
		AuthorID: admin.ID,
	}, []string{"go"})
	assert.NoError(t, err)

	assert.NoError(t, svc.Delete(created.ID))
	assert.ErrorIs(t, svc.Delete(created.ID), ErrArticleNotFound)

	var linkCount int64
	db.Table("article_tags").Count(&linkCount)
	assert.Equal(t, int64(0), linkCount)

	// 标签本身保留，可被后续文章复用
	var tagCount int64
	db.Model(&model.Tag{}).Count(&tagCount)
	assert.Equal(t, int64(1), tagCount)
}
