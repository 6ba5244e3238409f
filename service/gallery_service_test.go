package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"oolongblog/dao"
	"oolongblog/model"
)

func TestGallery_SharesTagTableWithArticles(t *testing.T) {
	db := setupTestDB()
	tagDAO := dao.NewTagDAO(db)
	articles := NewArticleService(dao.NewArticleDAO(db, tagDAO), dao.NewCommentDAO(db))
	gallery := NewGalleryService(dao.NewGalleryDAO(db, tagDAO))
	admin := createTestAdmin(db)

	_, err := articles.Create(&model.Article{
		Title:    "旅行记",
		Excerpt:  "摘要",
		Content:  "...",
		Category: "生活",
		Status:   model.ArticlePublished,
		AuthorID: admin.ID,
	}, []string{"travel"})
	assert.NoError(t, err)

	item, err := gallery.Create(&model.GalleryImage{
		URL:      "https://example.com/photo.jpg",
		Title:    "海边",
		Category: "旅行",
	}, []string{"travel", "sea"})
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"travel", "sea"}, item.Tags)

	// 文章和相册复用同一张标签表
	var count int64
	db.Model(&model.Tag{}).Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestGalleryList_CategoryFilter(t *testing.T) {
	db := setupTestDB()
	tagDAO := dao.NewTagDAO(db)
	gallery := NewGalleryService(dao.NewGalleryDAO(db, tagDAO))

	for _, c := range []string{"旅行", "旅行", "日常"} {
		_, err := gallery.Create(&model.GalleryImage{
			URL:      "https://example.com/a.jpg",
			Title:    "图",
			Category: c,
		}, nil)
		assert.NoError(t, err)
	}

	page, err := gallery.List(1, 20, "旅行")
	assert.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
	assert.Len(t, page.Data.([]GalleryItem), 2)
}

func TestGalleryUpdate_ReplacesTagsAndFields(t *testing.T) {
	db := setupTestDB()
	gallery := NewGalleryService(dao.NewGalleryDAO(db, dao.NewTagDAO(db)))

	item, err := gallery.Create(&model.GalleryImage{
		URL:      "https://example.com/a.jpg",
		Title:    "旧标题",
		Category: "日常",
	}, []string{"old"})
	assert.NoError(t, err)

	newTags := []string{"new"}
	updated, err := gallery.Update(item.ID, map[string]interface{}{"title": "新标题"}, &newTags)
	assert.NoError(t, err)
	assert.Equal(t, "新标题", updated.Title)
	assert.Equal(t, []string{"new"}, updated.Tags)

	_, err = gallery.Update(999, nil, nil)
	assert.ErrorIs(t, err, ErrImageNotFound)

	assert.NoError(t, gallery.Delete(item.ID))
	assert.ErrorIs(t, gallery.Delete(item.ID), ErrImageNotFound)
}
