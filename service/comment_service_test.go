package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"oolongblog/dao"
	"oolongblog/internal/auth"
	"oolongblog/model"
)

func uintPtr(v uint) *uint { return &v }

func TestCreateComment_ExactlyOneTarget(t *testing.T) {
	db := setupTestDB()
	svc := NewCommentService(dao.NewCommentDAO(db), dao.NewVisitorDAO(db))
	visitor := createTestVisitor(db, "a@x.com")

	_, err := svc.Create(visitor.ID, auth.RoleVisitor, "hi", nil, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidTarget)

	_, err = svc.Create(visitor.ID, auth.RoleVisitor, "hi", uintPtr(1), uintPtr(2), nil)
	assert.ErrorIs(t, err, ErrInvalidTarget)
}

func TestCreateComment_VisitorOnArticle(t *testing.T) {
	db := setupTestDB()
	svc := NewCommentService(dao.NewCommentDAO(db), dao.NewVisitorDAO(db))
	admin := createTestAdmin(db)
	article := createTestArticle(db, admin.ID, "第一篇", "技术", model.ArticlePublished)
	visitor := createTestVisitor(db, "a@x.com")

	comment, err := svc.Create(visitor.ID, auth.RoleVisitor, "写得不错", uintPtr(article.ID), nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, visitor.ID, comment.VisitorID)
	assert.Equal(t, article.ID, *comment.ArticleID)
	assert.Nil(t, comment.MomentID)
	// 评论人公开资料已内联
	assert.Equal(t, "Ann", comment.Visitor.Nickname)
}

func TestCreateComment_AdminGetsSyntheticVisitor(t *testing.T) {
	db := setupTestDB()
	svc := NewCommentService(dao.NewCommentDAO(db), dao.NewVisitorDAO(db))
	admin := createTestAdmin(db)
	article := createTestArticle(db, admin.ID, "第一篇", "技术", model.ArticlePublished)

	first, err := svc.Create(admin.ID, auth.RoleAdmin, "谢谢支持", uintPtr(article.ID), nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, "管理员", first.Visitor.Nickname)

	second, err := svc.Create(admin.ID, auth.RoleAdmin, "再来一条", uintPtr(article.ID), nil, nil)
	assert.NoError(t, err)
	// 同一个管理员复用同一条合成访客记录
	assert.Equal(t, first.VisitorID, second.VisitorID)

	var count int64
	db.Model(&model.Visitor{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCreateComment_ParentChecks(t *testing.T) {
	db := setupTestDB()
	svc := NewCommentService(dao.NewCommentDAO(db), dao.NewVisitorDAO(db))
	admin := createTestAdmin(db)
	article := createTestArticle(db, admin.ID, "第一篇", "技术", model.ArticlePublished)
	visitor := createTestVisitor(db, "a@x.com")

	_, err := svc.Create(visitor.ID, auth.RoleVisitor, "回复谁呢", uintPtr(article.ID), nil, uintPtr(999))
	assert.ErrorIs(t, err, ErrParentNotFound)

	top, err := svc.Create(visitor.ID, auth.RoleVisitor, "顶层", uintPtr(article.ID), nil, nil)
	assert.NoError(t, err)

	reply, err := svc.Create(visitor.ID, auth.RoleVisitor, "一层回复", uintPtr(article.ID), nil, uintPtr(top.ID))
	assert.NoError(t, err)

	// 不允许回复一条回复，嵌套深度固定为一层
	_, err = svc.Create(visitor.ID, auth.RoleVisitor, "二层回复", uintPtr(article.ID), nil, uintPtr(reply.ID))
	assert.ErrorIs(t, err, ErrNestedReply)
}

func TestListThread_OrderAndReplies(t *testing.T) {
	db := setupTestDB()
	svc := NewCommentService(dao.NewCommentDAO(db), dao.NewVisitorDAO(db))
	admin := createTestAdmin(db)
	article := createTestArticle(db, admin.ID, "第一篇", "技术", model.ArticlePublished)
	visitor := createTestVisitor(db, "a@x.com")

	first, _ := svc.Create(visitor.ID, auth.RoleVisitor, "第一条", uintPtr(article.ID), nil, nil)
	second, _ := svc.Create(visitor.ID, auth.RoleVisitor, "第二条", uintPtr(article.ID), nil, nil)
	_, err := svc.Create(visitor.ID, auth.RoleVisitor, "给第一条的回复", uintPtr(article.ID), nil, uintPtr(first.ID))
	assert.NoError(t, err)

	comments, err := svc.ListThread(uintPtr(article.ID), nil, 1, 20)
	assert.NoError(t, err)
	assert.Len(t, comments, 2)

	// 顶层最新在前
	ids := []uint{comments[0].ID, comments[1].ID}
	assert.Contains(t, ids, first.ID)
	assert.Contains(t, ids, second.ID)

	for _, c := range comments {
		if c.ID == first.ID {
			assert.Len(t, c.Replies, 1)
			assert.Equal(t, "给第一条的回复", c.Replies[0].Content)
			assert.Equal(t, "Ann", c.Replies[0].Visitor.Nickname)
		}
	}
}

func TestDeleteComment_CascadesToReplies(t *testing.T) {
	db := setupTestDB()
	svc := NewCommentService(dao.NewCommentDAO(db), dao.NewVisitorDAO(db))
	admin := createTestAdmin(db)
	article := createTestArticle(db, admin.ID, "第一篇", "技术", model.ArticlePublished)
	visitor := createTestVisitor(db, "a@x.com")

	top, _ := svc.Create(visitor.ID, auth.RoleVisitor, "顶层", uintPtr(article.ID), nil, nil)
	svc.Create(visitor.ID, auth.RoleVisitor, "回复一", uintPtr(article.ID), nil, uintPtr(top.ID))
	svc.Create(visitor.ID, auth.RoleVisitor, "回复二", uintPtr(article.ID), nil, uintPtr(top.ID))

	err := svc.Delete(top.ID)
	assert.NoError(t, err)

	var count int64
	db.Model(&model.Comment{}).Count(&count)
	assert.Equal(t, int64(0), count)

	assert.ErrorIs(t, svc.Delete(top.ID), ErrCommentNotFound)
}
