package dao

import (
	"oolongblog/model"

	"gorm.io/gorm"
)

type AdminDAO struct {
	db *gorm.DB
}

// NewAdminDAO 创建一个新的 AdminDAO 实例
func NewAdminDAO(db *gorm.DB) *AdminDAO {
	return &AdminDAO{db: db}
}

// Count 统计管理员数量，用于 init 的一次性门禁
func (dao *AdminDAO) Count() (int64, error) {
	var count int64
	err := dao.db.Model(&model.Admin{}).Count(&count).Error
	return count, err
}

// CreateIfNone 在同一事务里做计数检查和插入，避免并发 init 各自通过检查。
// 已有管理员时返回 created=false。
func (dao *AdminDAO) CreateIfNone(admin *model.Admin) (bool, error) {
	created := false
	err := dao.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Admin{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		if err := tx.Create(admin).Error; err != nil {
			return err
		}
		created = true
		return nil
	})
	return created, err
}

// GetByUsername 根据用户名获取管理员
func (dao *AdminDAO) GetByUsername(username string) (*model.Admin, error) {
	var admin model.Admin
	err := dao.db.Where("username = ?", username).First(&admin).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// GetByID 根据 ID 获取管理员
func (dao *AdminDAO) GetByID(id uint) (*model.Admin, error) {
	var admin model.Admin
	err := dao.db.First(&admin, id).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}
