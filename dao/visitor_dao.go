package dao

import (
	"fmt"
	"time"

	"oolongblog/model"

	"gorm.io/gorm"
)

type VisitorDAO struct {
	db *gorm.DB
}

// NewVisitorDAO 创建一个新的 VisitorDAO 实例
func NewVisitorDAO(db *gorm.DB) *VisitorDAO {
	return &VisitorDAO{db: db}
}

// Create 创建新访客
func (dao *VisitorDAO) Create(visitor *model.Visitor) error {
	return dao.db.Create(visitor).Error
}

// GetByEmail 根据邮箱查询访客
func (dao *VisitorDAO) GetByEmail(email string) (*model.Visitor, error) {
	var visitor model.Visitor
	err := dao.db.Where("email = ?", email).First(&visitor).Error
	if err != nil {
		return nil, err
	}
	return &visitor, nil
}

// GetByID 根据 ID 查询访客
func (dao *VisitorDAO) GetByID(id uint) (*model.Visitor, error) {
	var visitor model.Visitor
	err := dao.db.First(&visitor, id).Error
	if err != nil {
		return nil, err
	}
	return &visitor, nil
}

// UpdateProfile 更新昵称/头像等字段
func (dao *VisitorDAO) UpdateProfile(id uint, updates map[string]interface{}) error {
	return dao.db.Model(&model.Visitor{}).Where("id = ?", id).Updates(updates).Error
}

// UpdatePassword 更新密码哈希
func (dao *VisitorDAO) UpdatePassword(id uint, hash string) error {
	return dao.db.Model(&model.Visitor{}).Where("id = ?", id).Update("password", hash).Error
}

// TouchLastLogin 记录最近登录时间
func (dao *VisitorDAO) TouchLastLogin(id uint) error {
	now := time.Now()
	return dao.db.Model(&model.Visitor{}).Where("id = ?", id).Update("last_login_at", now).Error
}

// FindOrCreateSynthetic 为管理员解析合成访客身份。邮箱由管理员 ID 确定性
// 派生，访客表上的唯一索引保证并发调用最多创建一行。
func (dao *VisitorDAO) FindOrCreateSynthetic(adminID uint) (*model.Visitor, error) {
	email := fmt.Sprintf("admin_%d@local", adminID)
	var visitor model.Visitor
	err := dao.db.Where(model.Visitor{Email: email}).
		Attrs(model.Visitor{
			Nickname:   "管理员",
			Provider:   "admin",
			ProviderID: fmt.Sprintf("%d", adminID),
		}).
		FirstOrCreate(&visitor).Error
	if err != nil {
		return nil, err
	}
	return &visitor, nil
}
