package dao

import (
	"oolongblog/model"

	"gorm.io/gorm"
)

type GalleryDAO struct {
	db   *gorm.DB
	tags *TagDAO
}

// NewGalleryDAO 创建一个新的 GalleryDAO 实例
func NewGalleryDAO(db *gorm.DB, tags *TagDAO) *GalleryDAO {
	return &GalleryDAO{db: db, tags: tags}
}

// List 分页返回相册图片，可按分类过滤
func (dao *GalleryDAO) List(page, pageSize int, category string) (int64, []model.GalleryImage, error) {
	q := dao.db.Model(&model.GalleryImage{})
	if category != "" {
		q = q.Where("category = ?", category)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return 0, nil, err
	}

	var images []model.GalleryImage
	err := q.
		Preload("Tags").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&images).Error
	return total, images, err
}

// GetByID 查询单张图片
func (dao *GalleryDAO) GetByID(id uint) (*model.GalleryImage, error) {
	var image model.GalleryImage
	err := dao.db.Preload("Tags").First(&image, id).Error
	if err != nil {
		return nil, err
	}
	return &image, nil
}

// Create 写入图片并在同一事务里解析标签
func (dao *GalleryDAO) Create(image *model.GalleryImage, tagNames []string) error {
	return dao.db.Transaction(func(tx *gorm.DB) error {
		tags, err := dao.tags.ResolveNames(tx, tagNames)
		if err != nil {
			return err
		}
		image.Tags = tags
		return tx.Create(image).Error
	})
}

// Update 更新图片字段；tagNames 非 nil 时整体替换标签关联
func (dao *GalleryDAO) Update(id uint, updates map[string]interface{}, tagNames *[]string) error {
	return dao.db.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(&model.GalleryImage{}).Where("id = ?", id).Updates(updates).Error; err != nil {
				return err
			}
		}
		if tagNames != nil {
			tags, err := dao.tags.ResolveNames(tx, *tagNames)
			if err != nil {
				return err
			}
			image := model.GalleryImage{ID: id}
			if err := tx.Model(&image).Association("Tags").Replace(tags); err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete 删除图片及其标签关联
func (dao *GalleryDAO) Delete(id uint) error {
	return dao.db.Transaction(func(tx *gorm.DB) error {
		image := model.GalleryImage{ID: id}
		if err := tx.Model(&image).Association("Tags").Clear(); err != nil {
			return err
		}
		return tx.Delete(&model.GalleryImage{}, id).Error
	})
}
