package routes

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/princeprakhar/boardgame-reviews/internal/api/handlers"
	"github.com/princeprakhar/boardgame-reviews/internal/api/middleware"
	"github.com/princeprakhar/boardgame-reviews/internal/config"
	"github.com/princeprakhar/boardgame-reviews/internal/services"
	"github.com/princeprakhar/boardgame-reviews/internal/utils"
	"github.com/princeprakhar/boardgame-reviews/pkg/logger"
)

type Handlers struct {
	Categories *handlers.CategoryHandler
	Reviews    *handlers.ReviewHandler
	Comments   *handlers.CommentHandler
	Users      *handlers.UserHandler
}

func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// Initialize services
	categoryService := services.NewCategoryService(db)
	reviewService := services.NewReviewService(db)
	commentService := services.NewCommentService(db)
	userService := services.NewUserService(db)

	// Initialize handlers
	Register(router, Handlers{
		Categories: handlers.NewCategoryHandler(categoryService),
		Reviews:    handlers.NewReviewHandler(reviewService),
		Comments:   handlers.NewCommentHandler(commentService),
		Users:      handlers.NewUserHandler(userService),
	}, cfg)

	logger.Info("Routes initialized successfully")
}

func Register(router *gin.Engine, h Handlers, cfg *config.Config) {
	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		utils.SendError(c, fmt.Errorf("panic: %v", recovered))
	}))
	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RateLimitMiddleware(cfg))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	api.GET("", handlers.GetEndpoints)
	api.GET("/categories", h.Categories.GetCategories)

	reviews := api.Group("/reviews")
	{
		reviews.GET("", h.Reviews.GetReviews)
		reviews.GET("/:review_id", h.Reviews.GetReview)
		reviews.PATCH("/:review_id", h.Reviews.PatchVotes)
		reviews.GET("/:review_id/comments", h.Comments.GetComments)
		reviews.POST("/:review_id/comments", h.Comments.PostComment)
	}

	users := api.Group("/users")
	{
		users.GET("", h.Users.GetUsers)
		users.GET("/:username", h.Users.GetUser)
	}

	router.NoRoute(utils.SendRouteNotFound)
}
