package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/snapwall/snapwall/config"
	"github.com/snapwall/snapwall/controllers"
	"github.com/snapwall/snapwall/middleware"
	"github.com/snapwall/snapwall/services"
	"github.com/snapwall/snapwall/storage"
	"github.com/snapwall/snapwall/utils"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(cfg config.AppConfig, db *gorm.DB, store storage.Store) *gin.Engine {
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	if utils.Logger != nil {
		r.Use(utils.Ginzap(utils.Logger))
		r.Use(utils.RecoveryWithZap(utils.Logger))
	} else {
		r.Use(gin.Recovery())
	}

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	codec := utils.NewTokenCodec(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)
	creator := services.NewPostCreator(db, store, utils.Sugar)

	homeController := controllers.NewHomeController()
	authController := controllers.NewAuthController(db, codec)
	postController := controllers.NewPostController(db, creator, cfg)

	r.Static("/public", cfg.UploadDir)

	r.GET("/hello/:name", homeController.Greet)
	r.GET("/test", homeController.Test)
	r.GET("/health", func(ctx *gin.Context) {
		utils.Success(ctx, gin.H{"status": "ok"})
	})

	auth := r.Group("/auth")
	auth.POST("/register", authController.Register)
	auth.POST("/login", authController.Login)
	auth.GET("/me", middleware.AuthRequired(codec), authController.Me)

	secure := r.Group("/secure/post")
	secure.Use(middleware.AuthRequired(codec))
	secure.POST("/create", postController.CreatePost)
	secure.GET("/my-posts", postController.MyPosts)

	public := r.Group("/post")
	public.GET("/all-posts", postController.AllPosts)
	public.GET("/post/:uuid", postController.SinglePost)

	r.NoRoute(func(ctx *gin.Context) {
		utils.Error(ctx, http.StatusNotFound, 40400, "route not found")
	})

	return r
}
