package model

import "time"

// Moment 说说（短动态）。Images 列存放 JSON 序列化的 URL 数组，
// 对外始终以数组形式返回。
type Moment struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Content   string    `gorm:"not null;type:text" json:"content"`
	Images    string    `gorm:"type:text" json:"-"`
	Likes     int       `gorm:"default:0" json:"likes"`
	AuthorID  uint      `gorm:"not null" json:"authorId"`
	Author    Admin     `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Comments  []Comment `gorm:"foreignKey:MomentID" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}
