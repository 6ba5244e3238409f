package dao

import (
	"errors"

	"oolongblog/model"

	"gorm.io/gorm"
)

type MomentDAO struct {
	db *gorm.DB
}

// NewMomentDAO 创建一个新的 MomentDAO 实例
func NewMomentDAO(db *gorm.DB) *MomentDAO {
	return &MomentDAO{db: db}
}

// List 分页返回说说，最新在前
func (dao *MomentDAO) List(page, pageSize int) (int64, []model.Moment, error) {
	var total int64
	if err := dao.db.Model(&model.Moment{}).Count(&total).Error; err != nil {
		return 0, nil, err
	}

	var moments []model.Moment
	err := dao.db.
		Preload("Author", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "nickname", "avatar")
		}).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&moments).Error
	return total, moments, err
}

// GetByID 查询单条说说
func (dao *MomentDAO) GetByID(id uint) (*model.Moment, error) {
	var moment model.Moment
	err := dao.db.
		Preload("Author", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "nickname", "avatar")
		}).
		First(&moment, id).Error
	if err != nil {
		return nil, err
	}
	return &moment, nil
}

// Create 写入新说说
func (dao *MomentDAO) Create(moment *model.Moment) error {
	return dao.db.Create(moment).Error
}

// Delete 删除说说及其评论和点赞记录
func (dao *MomentDAO) Delete(id uint) error {
	return dao.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("moment_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("moment_id = ?", id).Delete(&model.Like{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Moment{}, id).Error
	})
}

// ToggleLike 切换点赞状态。存在性检查、点赞行增删和计数增减跑在
// 同一个事务里，保证 Like 行和 Moment.Likes 永不发散；
// (visitor_id, moment_id) 唯一索引让并发的重复点赞直接失败回滚。
func (dao *MomentDAO) ToggleLike(visitorID, momentID uint) (bool, error) {
	liked := false
	err := dao.db.Transaction(func(tx *gorm.DB) error {
		var moment model.Moment
		if err := tx.First(&moment, momentID).Error; err != nil {
			return err
		}

		var like model.Like
		err := tx.Where("visitor_id = ? AND moment_id = ?", visitorID, momentID).First(&like).Error
		if err == nil {
			if err := tx.Delete(&like).Error; err != nil {
				return err
			}
			return tx.Model(&model.Moment{}).Where("id = ?", momentID).
				UpdateColumn("likes", gorm.Expr("likes - 1")).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := tx.Create(&model.Like{VisitorID: visitorID, MomentID: momentID}).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Moment{}).Where("id = ?", momentID).
			UpdateColumn("likes", gorm.Expr("likes + 1")).Error; err != nil {
			return err
		}
		liked = true
		return nil
	})
	return liked, err
}

// CountLikes 点赞行计数
func (dao *MomentDAO) CountLikes(momentIDs []uint) (map[uint]int64, error) {
	return countGrouped(dao.db, &model.Like{}, "moment_id", momentIDs)
}
