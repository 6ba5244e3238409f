package model

import "time"

// Like 点赞记录，存在即表示该访客赞过该说说。
// (visitor_id, moment_id) 上的唯一索引兜底并发重复点赞。
type Like struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	VisitorID uint      `gorm:"not null;uniqueIndex:uk_visitor_moment,priority:1" json:"visitorId"`
	MomentID  uint      `gorm:"not null;uniqueIndex:uk_visitor_moment,priority:2" json:"momentId"`
	CreatedAt time.Time `json:"createdAt"`
}
