package v1

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"oolongblog/dao"
	myvalidator "oolongblog/internal/validator"
	"oolongblog/middleware"
	"oolongblog/service"
)

// NewRouter 组装全部 DAO/Service/Handler 并注册路由。
// rdb 为 nil 时关闭登录限流（本地开发和测试）。
func NewRouter(db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("avatar", myvalidator.IsAvatar)
	}

	tagDAO := dao.NewTagDAO(db)
	adminDAO := dao.NewAdminDAO(db)
	visitorDAO := dao.NewVisitorDAO(db)
	articleDAO := dao.NewArticleDAO(db, tagDAO)
	momentDAO := dao.NewMomentDAO(db)
	galleryDAO := dao.NewGalleryDAO(db, tagDAO)
	friendDAO := dao.NewFriendDAO(db)
	commentDAO := dao.NewCommentDAO(db)
	settingDAO := dao.NewSettingDAO(db)
	statsDAO := dao.NewStatsDAO(db)

	authAPI := NewAuthAPI(service.NewAuthService(adminDAO))
	visitorAPI := NewVisitorAPI(service.NewVisitorService(visitorDAO))
	articleAPI := NewArticleAPI(service.NewArticleService(articleDAO, commentDAO))
	momentAPI := NewMomentAPI(service.NewMomentService(momentDAO, commentDAO, visitorDAO))
	galleryAPI := NewGalleryAPI(service.NewGalleryService(galleryDAO))
	friendAPI := NewFriendAPI(service.NewFriendService(friendDAO))
	commentAPI := NewCommentAPI(service.NewCommentService(commentDAO, visitorDAO))
	settingAPI := NewSettingAPI(service.NewSettingService(settingDAO))
	statsAPI := NewStatsAPI(statsDAO)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog())
	r.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().Format(time.RFC3339)})
	})

	var loginLimiter gin.HandlerFunc
	if rdb != nil {
		loginLimiter = middleware.LoginRateLimiter(rdb, 5, time.Minute)
	} else {
		loginLimiter = func(c *gin.Context) { c.Next() }
	}

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", loginLimiter, authAPI.Login)
		authGroup.POST("/logout", authAPI.Logout)
		authGroup.GET("/profile", middleware.RequireAdmin(), authAPI.Profile)
		authGroup.POST("/init", authAPI.Init)
		authGroup.GET("/check", authAPI.Check)
	}

	visitorGroup := api.Group("/visitor")
	{
		visitorGroup.POST("/register", visitorAPI.Register)
		visitorGroup.POST("/login", loginLimiter, visitorAPI.Login)
		visitorGroup.GET("/profile", middleware.RequireAuth(), visitorAPI.Profile)
		visitorGroup.PUT("/profile", middleware.RequireAuth(), visitorAPI.UpdateProfile)
		visitorGroup.PUT("/password", middleware.RequireAuth(), visitorAPI.ChangePassword)
	}

	articleGroup := api.Group("/articles")
	{
		articleGroup.GET("", articleAPI.List)
		articleGroup.GET("/:id", articleAPI.Get)
		articleGroup.POST("/:id/view", articleAPI.View)
		articleGroup.POST("", middleware.RequireAdmin(), articleAPI.Create)
		articleGroup.PUT("/:id", middleware.RequireAdmin(), articleAPI.Update)
		articleGroup.DELETE("/:id", middleware.RequireAdmin(), articleAPI.Delete)
	}

	momentGroup := api.Group("/moments")
	{
		momentGroup.GET("", momentAPI.List)
		momentGroup.GET("/:id", momentAPI.Get)
		momentGroup.POST("", middleware.RequireAdmin(), momentAPI.Create)
		momentGroup.DELETE("/:id", middleware.RequireAdmin(), momentAPI.Delete)
		momentGroup.POST("/:id/like", middleware.RequireAuth(), momentAPI.ToggleLike)
	}

	galleryGroup := api.Group("/gallery")
	{
		galleryGroup.GET("", galleryAPI.List)
		galleryGroup.POST("", middleware.RequireAdmin(), galleryAPI.Create)
		galleryGroup.PUT("/:id", middleware.RequireAdmin(), galleryAPI.Update)
		galleryGroup.DELETE("/:id", middleware.RequireAdmin(), galleryAPI.Delete)
	}

	friendGroup := api.Group("/friends")
	{
		friendGroup.GET("", friendAPI.List)
		friendGroup.GET("/all", middleware.RequireAdmin(), friendAPI.ListAll)
		friendGroup.POST("/apply", friendAPI.Apply)
		friendGroup.PUT("/:id/status", middleware.RequireAdmin(), friendAPI.SetStatus)
		friendGroup.PUT("/:id", middleware.RequireAdmin(), friendAPI.Update)
		friendGroup.DELETE("/:id", middleware.RequireAdmin(), friendAPI.Delete)
	}

	commentGroup := api.Group("/comments")
	{
		commentGroup.GET("", commentAPI.List)
		commentGroup.GET("/all", middleware.RequireAdmin(), commentAPI.ListAll)
		commentGroup.POST("", middleware.RequireAuth(), commentAPI.Create)
		commentGroup.DELETE("/:id", middleware.RequireAdmin(), commentAPI.Delete)
	}

	api.GET("/stats", middleware.RequireAdmin(), statsAPI.Overview)

	settingGroup := api.Group("/settings")
	{
		settingGroup.GET("/public", settingAPI.Public)
		settingGroup.GET("", middleware.RequireAdmin(), settingAPI.All)
		settingGroup.PUT("", middleware.RequireAdmin(), settingAPI.UpdateMany)
		settingGroup.PUT("/:key", middleware.RequireAdmin(), settingAPI.Update)
	}

	return r
}
