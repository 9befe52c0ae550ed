package httpapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/samadhaan/backend/internal/config"
	"github.com/samadhaan/backend/internal/db"
	"github.com/samadhaan/backend/internal/http/handlers"
	"github.com/samadhaan/backend/internal/http/middleware"
	"github.com/samadhaan/backend/internal/service"

	_ "github.com/samadhaan/backend/docs"
)

func Router(cfg config.Config, store *db.Store, rdb *redis.Client, logger zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if cfg.CORSAllowed == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = []string{cfg.CORSAllowed}
	}
	r.Use(cors.New(corsCfg))

	h := &handlers.Handler{
		Store:      store,
		Complaints: service.NewComplaintService(store, logger),
		Stats:      service.NewStatsService(store),
		Validator:  validator.New(),
		Logger:     logger,
	}

	api := r.Group("/api")
	api.GET("/health", h.Health)

	auth := middleware.Auth(cfg.JWTSecret)

	complaints := api.Group("/complaints", auth)
	{
		complaints.POST("", middleware.SubmitRateLimit(rdb, cfg.SubmitRateLimit, cfg.SubmitRateWindow), h.SubmitComplaint)
		complaints.GET("/my", h.MyComplaints)
		complaints.GET("", h.ListComplaints)
		complaints.GET("/:id", h.GetComplaint)
		complaints.PATCH("/:id/status", middleware.RequireAdmin(), h.UpdateComplaintStatus)
	}

	profile := api.Group("/profile", auth)
	{
		profile.GET("/me", h.Profile)
		profile.PUT("/update", h.UpdateProfile)
		profile.PUT("/change-password", h.ChangePassword)
	}

	stats := api.Group("/stats", auth, middleware.RequireAdmin())
	{
		stats.GET("/total", h.TotalComplaints)
		stats.GET("/pending", h.PendingComplaints)
		stats.GET("/resolved", h.ResolvedComplaints)
		stats.GET("/category-distribution", h.CategoryDistribution)
		stats.GET("/status-distribution", h.StatusDistribution)
		stats.GET("/all", h.AllStats)
	}

	export := api.Group("/export", auth, middleware.RequireAdmin())
	{
		export.GET("/csv", h.ExportCSV)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
