package main

import (
	"log"

	"miniblog/internal/api"
	"miniblog/internal/cache"
	"miniblog/internal/middleware"
	"miniblog/internal/repository"
	"miniblog/internal/service"
	"miniblog/pkg/config"
	"miniblog/pkg/db"
	"miniblog/pkg/logger"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := config.Init(); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.InitLogger(config.GlobalConfig.Log.Level, config.GlobalConfig.Log.Production); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if err := db.InitDB(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	redisClient, err := cache.InitRedis()
	if err != nil {
		log.Fatalf("Failed to connect to redis: %v", err)
	}
	pageCache := cache.NewPageCache(redisClient, config.GlobalConfig.Cache.IndexTTL)

	userRepo := repository.NewUserRepository()
	groupRepo := repository.NewGroupRepository()
	postRepo := repository.NewPostRepository()
	commentRepo := repository.NewCommentRepository()
	followRepo := repository.NewFollowRepository()

	imageService, err := service.NewImageService()
	if err != nil {
		log.Fatalf("Failed to initialize image storage: %v", err)
	}
	authService := service.NewAuthService(userRepo)
	postService := service.NewPostService(postRepo, groupRepo, userRepo, commentRepo, followRepo, imageService)
	followService := service.NewFollowService(followRepo, userRepo)

	authHandler := api.NewAuthHandler(authService)
	postHandler := api.NewPostHandler(postService)
	groupHandler := api.NewGroupHandler(postService)
	profileHandler := api.NewProfileHandler(postService, followService)
	cacheHandler := api.NewCacheHandler(pageCache)

	r := gin.New()
	r.Use(middleware.GinZapLogger(), gin.Recovery())

	// Uploaded post images.
	r.Static("/media", config.GlobalConfig.Upload.StoragePath)

	// Public routes.
	r.POST("/auth/signup", authHandler.Register)
	r.GET("/auth/login", authHandler.LoginForm)
	r.POST("/auth/login", authHandler.Login)
	r.POST("/auth/logout", authHandler.Logout)

	// The index is the only cached page; staleness until TTL expiry or
	// manual clear is intentional.
	r.GET("/", middleware.CachePage(pageCache), postHandler.Index)
	r.GET("/group/:slug", groupHandler.GroupPosts)
	r.GET("/profile/:username", middleware.OptionalAuthMiddleware(), profileHandler.Profile)
	r.GET("/posts/:id", postHandler.Detail)

	// Auth-required routes; anonymous requests redirect to the login
	// path with a "next" return target.
	protected := r.Group("/", middleware.AuthMiddleware())
	{
		protected.GET("/create", postHandler.CreateForm)
		protected.POST("/create", postHandler.Create)
		protected.GET("/posts/:id/edit", postHandler.EditForm)
		protected.POST("/posts/:id/edit", postHandler.Edit)
		protected.POST("/posts/:id/delete", postHandler.Delete)
		protected.POST("/posts/:id/comment", postHandler.AddComment)
		protected.GET("/follow", profileHandler.Feed)
		protected.POST("/profile/:username/follow", profileHandler.Follow)
		protected.POST("/profile/:username/unfollow", profileHandler.Unfollow)
		protected.POST("/internal/cache/clear", cacheHandler.Clear)
	}

	if err := r.Run(config.GlobalConfig.Server.Addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
