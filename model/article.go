package model

import "time"

// 文章状态
const (
	ArticleDraft     = 0
	ArticlePublished = 1
)

// Article 博客文章，正文为 Markdown
type Article struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Title     string    `gorm:"not null;size:200" json:"title"`
	Excerpt   string    `gorm:"not null;type:text" json:"excerpt"`
	Content   string    `gorm:"not null;type:text" json:"content"`
	Cover     string    `gorm:"size:255" json:"cover"`
	Category  string    `gorm:"not null;size:50;index" json:"category"`
	Status    int       `gorm:"default:0;index" json:"status"` // 0-草稿, 1-已发布
	Views     int       `gorm:"default:0" json:"views"`
	AuthorID  uint      `gorm:"not null" json:"authorId"`
	Author    Admin     `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Tags      []Tag     `gorm:"many2many:article_tags" json:"tags,omitempty"`
	Comments  []Comment `gorm:"foreignKey:ArticleID" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
