package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"oolongblog/dao"
	"oolongblog/internal/auth"
	"oolongblog/model"
)

func TestToggleLike_RoundTrip(t *testing.T) {
	db := setupTestDB()
	svc := NewMomentService(dao.NewMomentDAO(db), dao.NewCommentDAO(db), dao.NewVisitorDAO(db))
	admin := createTestAdmin(db)
	moment := createTestMoment(db, admin.ID)
	visitor := createTestVisitor(db, "a@x.com")

	liked, err := svc.ToggleLike(visitor.ID, auth.RoleVisitor, moment.ID)
	assert.NoError(t, err)
	assert.True(t, liked)

	var m model.Moment
	db.First(&m, moment.ID)
	assert.Equal(t, 1, m.Likes)

	liked, err = svc.ToggleLike(visitor.ID, auth.RoleVisitor, moment.ID)
	assert.NoError(t, err)
	assert.False(t, liked)

	db.First(&m, moment.ID)
	assert.Equal(t, 0, m.Likes)

	var count int64
	db.Model(&model.Like{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestToggleLike_MomentMissing(t *testing.T) {
	db := setupTestDB()
	svc := NewMomentService(dao.NewMomentDAO(db), dao.NewCommentDAO(db), dao.NewVisitorDAO(db))
	visitor := createTestVisitor(db, "a@x.com")

	_, err := svc.ToggleLike(visitor.ID, auth.RoleVisitor, 999)
	assert.ErrorIs(t, err, ErrMomentNotFound)
}

func TestToggleLike_AdminUsesSyntheticVisitor(t *testing.T) {
	db := setupTestDB()
	svc := NewMomentService(dao.NewMomentDAO(db), dao.NewCommentDAO(db), dao.NewVisitorDAO(db))
	admin := createTestAdmin(db)
	moment := createTestMoment(db, admin.ID)

	liked, err := svc.ToggleLike(admin.ID, auth.RoleAdmin, moment.ID)
	assert.NoError(t, err)
	assert.True(t, liked)

	var like model.Like
	assert.NoError(t, db.First(&like).Error)

	var synthetic model.Visitor
	assert.NoError(t, db.First(&synthetic, like.VisitorID).Error)
	assert.Equal(t, "管理员", synthetic.Nickname)
	assert.Empty(t, synthetic.Password)
}

func TestMomentList_ImagesAndCounts(t *testing.T) {
	db := setupTestDB()
	svc := NewMomentService(dao.NewMomentDAO(db), dao.NewCommentDAO(db), dao.NewVisitorDAO(db))
	comments := NewCommentService(dao.NewCommentDAO(db), dao.NewVisitorDAO(db))
	admin := createTestAdmin(db)
	visitor := createTestVisitor(db, "a@x.com")

	created, err := svc.Create(admin.ID, "出门拍了两张", []string{"/img/1.jpg", "/img/2.jpg"})
	assert.NoError(t, err)

	_, err = comments.Create(visitor.ID, auth.RoleVisitor, "好看", nil, uintPtr(created.ID), nil)
	assert.NoError(t, err)
	_, err = svc.ToggleLike(visitor.ID, auth.RoleVisitor, created.ID)
	assert.NoError(t, err)

	page, err := svc.List(1, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)

	items := page.Data.([]MomentItem)
	assert.Len(t, items, 1)
	assert.Equal(t, []string{"/img/1.jpg", "/img/2.jpg"}, items[0].Images)
	assert.Equal(t, int64(1), items[0].CommentCount)
	assert.Equal(t, int64(1), items[0].LikeCount)
}

func TestMomentDelete_RemovesCommentsAndLikes(t *testing.T) {
	db := setupTestDB()
	svc := NewMomentService(dao.NewMomentDAO(db), dao.NewCommentDAO(db), dao.NewVisitorDAO(db))
	comments := NewCommentService(dao.NewCommentDAO(db), dao.NewVisitorDAO(db))
	admin := createTestAdmin(db)
	moment := createTestMoment(db, admin.ID)
	visitor := createTestVisitor(db, "a@x.com")

	comments.Create(visitor.ID, auth.RoleVisitor, "围观", nil, uintPtr(moment.ID), nil)
	svc.ToggleLike(visitor.ID, auth.RoleVisitor, moment.ID)

	assert.NoError(t, svc.Delete(moment.ID))

	var commentCount, likeCount int64
	db.Model(&model.Comment{}).Count(&commentCount)
	db.Model(&model.Like{}).Count(&likeCount)
	assert.Equal(t, int64(0), commentCount)
	assert.Equal(t, int64(0), likeCount)

	assert.ErrorIs(t, svc.Delete(moment.ID), ErrMomentNotFound)
}
