package model

import "time"

// Comment 评论。ArticleID/MomentID 恰好一个非空；
// ParentID 非空表示回复，且父评论必须是顶层评论（只允许一层嵌套）。
type Comment struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Content   string    `gorm:"not null;type:text" json:"content"`
	VisitorID uint      `gorm:"not null" json:"visitorId"`
	Visitor   Visitor   `gorm:"foreignKey:VisitorID" json:"visitor,omitempty"`
	ArticleID *uint     `gorm:"index" json:"articleId,omitempty"`
	Article   *Article  `gorm:"foreignKey:ArticleID" json:"article,omitempty"`
	MomentID  *uint     `gorm:"index" json:"momentId,omitempty"`
	Moment    *Moment   `gorm:"foreignKey:MomentID" json:"moment,omitempty"`
	ParentID  *uint     `gorm:"index" json:"parentId,omitempty"`
	Replies   []Comment `gorm:"foreignKey:ParentID" json:"replies,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
