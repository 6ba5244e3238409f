package dao

import (
	"oolongblog/model"

	"gorm.io/gorm"
)

// Stats 后台首页的聚合计数
type Stats struct {
	ArticleCount int64 `json:"articleCount"`
	MomentCount  int64 `json:"momentCount"`
	CommentCount int64 `json:"commentCount"`
	FriendCount  int64 `json:"friendCount"`
	GalleryCount int64 `json:"galleryCount"`
	TotalViews   int64 `json:"totalViews"`
	TotalLikes   int64 `json:"totalLikes"`
}

type StatsDAO struct {
	db *gorm.DB
}

// NewStatsDAO 创建一个新的 StatsDAO 实例
func NewStatsDAO(db *gorm.DB) *StatsDAO {
	return &StatsDAO{db: db}
}

// Overview 汇总各内容表的数量、总浏览和总点赞。
// FriendCount 只统计已通过的友链。
func (dao *StatsDAO) Overview() (*Stats, error) {
	var s Stats
	if err := dao.db.Model(&model.Article{}).Count(&s.ArticleCount).Error; err != nil {
		return nil, err
	}
	if err := dao.db.Model(&model.Moment{}).Count(&s.MomentCount).Error; err != nil {
		return nil, err
	}
	if err := dao.db.Model(&model.Comment{}).Count(&s.CommentCount).Error; err != nil {
		return nil, err
	}
	if err := dao.db.Model(&model.FriendLink{}).Where("status = ?", model.FriendApproved).
		Count(&s.FriendCount).Error; err != nil {
		return nil, err
	}
	if err := dao.db.Model(&model.GalleryImage{}).Count(&s.GalleryCount).Error; err != nil {
		return nil, err
	}
	if err := dao.db.Model(&model.Article{}).
		Select("COALESCE(SUM(views), 0)").Scan(&s.TotalViews).Error; err != nil {
		return nil, err
	}
	if err := dao.db.Model(&model.Moment{}).
		Select("COALESCE(SUM(likes), 0)").Scan(&s.TotalLikes).Error; err != nil {
		return nil, err
	}
	return &s, nil
}
