package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	v1 "oolongblog/api/v1"
	"oolongblog/config"
	"oolongblog/internal/logger"
	"oolongblog/model"
)

func main() {
	// .env 存在则加载，生产环境直接用真实环境变量
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "."
	}
	config.InitConfig(configPath)
	config.InitRedis()

	logger.Init(config.IsRelease())
	if config.IsRelease() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := gorm.Open(mysql.Open(config.GlobalConfig.MySQL.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logger.Logger.Fatalf("connect database failed: %v", err)
	}

	if err := db.AutoMigrate(
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
	); err != nil {
		logger.Logger.Fatalf("migrate failed: %v", err)
	}

	r := v1.NewRouter(db, config.RedisClient)

	logger.Logger.Infof("listening on %s", config.GlobalConfig.Server.Port)
	if err := r.Run(config.GlobalConfig.Server.Port); err != nil {
		logger.Logger.Fatalf("server exited: %v", err)
	}
}
