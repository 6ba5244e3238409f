package dao

import (
	"oolongblog/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingDAO struct {
	db *gorm.DB
}

// NewSettingDAO 创建一个新的 SettingDAO 实例
func NewSettingDAO(db *gorm.DB) *SettingDAO {
	return &SettingDAO{db: db}
}

// All 返回全部配置行
func (dao *SettingDAO) All() ([]model.Setting, error) {
	var settings []model.Setting
	err := dao.db.Find(&settings).Error
	return settings, err
}

// Upsert 按主键写入或覆盖单个配置项
func (dao *SettingDAO) Upsert(key, value string) (*model.Setting, error) {
	setting := model.Setting{Key: key, Value: value}
	err := dao.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&setting).Error
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

// UpsertMany 在一个事务里批量写入配置
func (dao *SettingDAO) UpsertMany(settings []model.Setting) error {
	return dao.db.Transaction(func(tx *gorm.DB) error {
		for _, s := range settings {
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value"}),
			}).Create(&model.Setting{Key: s.Key, Value: s.Value}).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}
