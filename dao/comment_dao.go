package dao

import (
	"oolongblog/model"

	"gorm.io/gorm"
)

type CommentDAO struct {
	db *gorm.DB
}

// NewCommentDAO 创建一个新的 CommentDAO 实例
func NewCommentDAO(db *gorm.DB) *CommentDAO {
	return &CommentDAO{db: db}
}

func visitorProfile(db *gorm.DB) *gorm.DB {
	return db.Select("id", "nickname", "avatar")
}

// ListThread 按目标返回顶层评论（最新在前），每条带按时间正序的回复，
// 评论人公开资料内联
func (dao *CommentDAO) ListThread(articleID, momentID *uint, page, pageSize int) ([]model.Comment, error) {
	q := dao.db.Where("parent_id IS NULL")
	if articleID != nil {
		q = q.Where("article_id = ?", *articleID)
	}
	if momentID != nil {
		q = q.Where("moment_id = ?", *momentID)
	}

	var comments []model.Comment
	err := q.
		Preload("Visitor", visitorProfile).
		Preload("Article", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "title")
		}).
		Preload("Moment", func(db *gorm.DB) *gorm.DB {
			return db.Select("id")
		}).
		Preload("Replies", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Replies.Visitor", visitorProfile).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&comments).Error
	return comments, err
}

// ListAll 后台审核用的全量平铺列表，最新在前，封顶 limit 条
func (dao *CommentDAO) ListAll(limit int) ([]model.Comment, error) {
	var comments []model.Comment
	err := dao.db.
		Preload("Visitor", visitorProfile).
		Preload("Article", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "title")
		}).
		Preload("Moment", func(db *gorm.DB) *gorm.DB {
			return db.Select("id")
		}).
		Order("created_at DESC").
		Limit(limit).
		Find(&comments).Error
	return comments, err
}

// GetByID 查询单条评论
func (dao *CommentDAO) GetByID(id uint) (*model.Comment, error) {
	var comment model.Comment
	err := dao.db.First(&comment, id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// Create 写入评论并回读内联的评论人资料
func (dao *CommentDAO) Create(comment *model.Comment) error {
	if err := dao.db.Create(comment).Error; err != nil {
		return err
	}
	return dao.db.Preload("Visitor", visitorProfile).First(comment, comment.ID).Error
}

// DeleteWithReplies 删除评论和它名下的回复，作为一个事务执行
func (dao *CommentDAO) DeleteWithReplies(id uint) error {
	return dao.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("parent_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Comment{}, id).Error
	})
}

// CountByArticleIDs 各文章的评论数
func (dao *CommentDAO) CountByArticleIDs(ids []uint) (map[uint]int64, error) {
	return countGrouped(dao.db, &model.Comment{}, "article_id", ids)
}

// CountByMomentIDs 各说说的评论数
func (dao *CommentDAO) CountByMomentIDs(ids []uint) (map[uint]int64, error) {
	return countGrouped(dao.db, &model.Comment{}, "moment_id", ids)
}
