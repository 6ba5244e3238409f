package model

// Tag 标签，名字全局唯一（区分大小写），文章和相册共用
type Tag struct {
	ID   uint   `gorm:"primarykey" json:"id"`
	Name string `gorm:"uniqueIndex;not null;size:50" json:"name"`
}
