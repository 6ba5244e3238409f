package model

import "time"

// GalleryImage 相册图片，URL 只作为不透明字符串存储
type GalleryImage struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	URL         string    `gorm:"not null;size:255" json:"url"`
	Thumbnail   string    `gorm:"size:255" json:"thumbnail"`
	Title       string    `gorm:"not null;size:100" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Category    string    `gorm:"not null;size:50;index" json:"category"`
	Tags        []Tag     `gorm:"many2many:gallery_image_tags" json:"tags,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
