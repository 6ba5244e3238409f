package dao

import (
	"oolongblog/model"

	"gorm.io/gorm"
)

type TagDAO struct {
	db *gorm.DB
}

// NewTagDAO 创建一个新的 TagDAO 实例
func NewTagDAO(db *gorm.DB) *TagDAO {
	return &TagDAO{db: db}
}

// ResolveNames 把自由文本标签名逐个 find-or-create 成共享标签行。
// 名字区分大小写，空白名由调用方过滤；跑在调用方的事务里，
// 名字上的唯一索引兜底并发下的重复创建。
func (dao *TagDAO) ResolveNames(tx *gorm.DB, names []string) ([]model.Tag, error) {
	tags := make([]model.Tag, 0, len(names))
	for _, name := range names {
		var tag model.Tag
		if err := tx.Where(model.Tag{Name: name}).FirstOrCreate(&tag).Error; err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}
