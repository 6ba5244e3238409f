package model

import "time"

// 友链状态
const (
	FriendPending  = 0
	FriendApproved = 1
	FriendRejected = 2
)

// FriendLink 友情链接，公开列表只展示已通过的
type FriendLink struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"not null;size:50" json:"name"`
	Avatar      string    `gorm:"size:255" json:"avatar"` // emoji 或图片 URL
	URL         string    `gorm:"not null;size:255" json:"url"`
	Description string    `gorm:"not null;type:text" json:"description"`
	Status      int       `gorm:"default:0;index" json:"status"` // 0-待审核, 1-已通过, 2-已拒绝
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
