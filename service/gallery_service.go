package service

import (
	"errors"

	"oolongblog/dao"
	"oolongblog/model"

	"gorm.io/gorm"
)

var ErrImageNotFound = errors.New("图片不存在")

// GalleryItem 相册视图：标签展开成名字数组
type GalleryItem struct {
	model.GalleryImage
	Tags []string `json:"tags"`
}

// GalleryService 相册 CRUD，和文章共用标签归并
type GalleryService struct {
	gallery *dao.GalleryDAO
}

// NewGalleryService 创建一个新的 GalleryService 实例
func NewGalleryService(gallery *dao.GalleryDAO) *GalleryService {
	return &GalleryService{gallery: gallery}
}

// List 分页返回图片，可按分类过滤
func (s *GalleryService) List(page, pageSize int, category string) (*PageResult, error) {
	total, images, err := s.gallery.List(page, pageSize, category)
	if err != nil {
		return nil, err
	}
	items := make([]GalleryItem, 0, len(images))
	for _, img := range images {
		items = append(items, GalleryItem{GalleryImage: img, Tags: tagNames(img.Tags)})
	}
	return &PageResult{Total: total, Page: page, PageSize: pageSize, Data: items}, nil
}

// Create 新增图片
func (s *GalleryService) Create(image *model.GalleryImage, tags []string) (*GalleryItem, error) {
	if err := s.gallery.Create(image, cleanTagNames(tags)); err != nil {
		return nil, err
	}
	return &GalleryItem{GalleryImage: *image, Tags: tagNames(image.Tags)}, nil
}

// Update 更新图片；tags 非 nil 时整体替换标签集合
func (s *GalleryService) Update(id uint, updates map[string]interface{}, tags *[]string) (*GalleryItem, error) {
	if _, err := s.gallery.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrImageNotFound
		}
		return nil, err
	}
	if tags != nil {
		cleaned := cleanTagNames(*tags)
		tags = &cleaned
	}
	if err := s.gallery.Update(id, updates, tags); err != nil {
		return nil, err
	}
	image, err := s.gallery.GetByID(id)
	if err != nil {
		return nil, err
	}
	return &GalleryItem{GalleryImage: *image, Tags: tagNames(image.Tags)}, nil
}

// Delete 删除图片
func (s *GalleryService) Delete(id uint) error {
	if _, err := s.gallery.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrImageNotFound
		}
		return err
	}
	return s.gallery.Delete(id)
}
