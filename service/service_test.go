package service

import (
	"oolongblog/config"
	"oolongblog/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func init() {
	config.GlobalConfig = &config.Config{
		JWT: config.JWTConfig{
			Secret:        "test-secret",
			AdminExpire:   3600,
			VisitorExpire: 3600,
		},
	}
}

func setupTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		panic("failed to connect database")
	}

	db.AutoMigrate(
		&model.Admin{},
		&model.Visitor{},
		&model.Article{},
		&model.Moment{},
		&model.GalleryImage{},
		&model.FriendLink{},
		&model.Comment{},
		&model.Like{},
		&model.Tag{},
		&model.Setting{},
	)
	return db
}

func createTestAdmin(db *gorm.DB) *model.Admin {
	admin := &model.Admin{
		Username: "boss",
		Password: "$2a$10$irrelevant.for.most.tests",
		Nickname: "站长",
	}
	db.Create(admin)
	return admin
}

func createTestVisitor(db *gorm.DB, email string) *model.Visitor {
	visitor := &model.Visitor{
		Email:    email,
		Nickname: "Ann",
	}
	db.Create(visitor)
	return visitor
}

func createTestMoment(db *gorm.DB, authorID uint) *model.Moment {
	moment := &model.Moment{
		Content:  "今天天气不错",
		Images:   "[]",
		AuthorID: authorID,
	}
	db.Create(moment)
	return moment
}

func createTestArticle(db *gorm.DB, authorID uint, title, category string, status int) *model.Article {
	article := &model.Article{
		Title:    title,
		Excerpt:  "摘要",
		Content:  "# 正文",
		Category: category,
		Status:   status,
		AuthorID: authorID,
	}
	db.Create(article)
	return article
}
