package model

import "time"

// Visitor 访客账号。Password 为空表示没有本地密码，
// 例如管理员发表评论时惰性创建的合成访客。
type Visitor struct {
	ID          uint       `gorm:"primarykey" json:"id"`
	Email       string     `gorm:"uniqueIndex;not null;size:100" json:"email"`
	Password    string     `gorm:"size:100" json:"-"`
	Nickname    string     `gorm:"not null;size:50" json:"nickname"`
	Avatar      string     `gorm:"size:255" json:"avatar"`
	Provider    string     `gorm:"size:20" json:"-"`
	ProviderID  string     `gorm:"size:50" json:"-"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
