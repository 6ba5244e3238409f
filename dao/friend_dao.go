package dao

import (
	"oolongblog/model"

	"gorm.io/gorm"
)

type FriendDAO struct {
	db *gorm.DB
}

// NewFriendDAO 创建一个新的 FriendDAO 实例
func NewFriendDAO(db *gorm.DB) *FriendDAO {
	return &FriendDAO{db: db}
}

// ListApproved 公开列表，只含已通过的友链
func (dao *FriendDAO) ListApproved() ([]model.FriendLink, error) {
	var links []model.FriendLink
	err := dao.db.Where("status = ?", model.FriendApproved).
		Order("created_at DESC").Find(&links).Error
	return links, err
}

// ListAll 后台完整列表
func (dao *FriendDAO) ListAll() ([]model.FriendLink, error) {
	var links []model.FriendLink
	err := dao.db.Order("created_at DESC").Find(&links).Error
	return links, err
}

// Create 写入新友链（申请入口，状态默认待审核）
func (dao *FriendDAO) Create(link *model.FriendLink) error {
	return dao.db.Create(link).Error
}

// GetByID 查询单条友链
func (dao *FriendDAO) GetByID(id uint) (*model.FriendLink, error) {
	var link model.FriendLink
	err := dao.db.First(&link, id).Error
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// Update 更新友链字段
func (dao *FriendDAO) Update(id uint, updates map[string]interface{}) error {
	return dao.db.Model(&model.FriendLink{}).Where("id = ?", id).Updates(updates).Error
}

// Delete 删除友链
func (dao *FriendDAO) Delete(id uint) error {
	return dao.db.Delete(&model.FriendLink{}, id).Error
}
