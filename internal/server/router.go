package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"techrent/internal/config"
	"techrent/internal/listing"
	"techrent/internal/middleware"
	"techrent/internal/modules/admin"
	"techrent/internal/modules/auth"
	"techrent/internal/modules/catalog"
	"techrent/internal/modules/review"
	jwtsvc "techrent/internal/pkg/jwt"
	"techrent/internal/pkg/response"
	"techrent/internal/repository"
)

// NewRouter wires repositories, services and handlers into a gin engine.
func NewRouter(cfg *config.Config, db *gorm.DB, log *zap.Logger) *gin.Engine {
	limits := listing.Limits{DefaultPageSize: cfg.DefaultPageSize, MaxPageSize: cfg.MaxPageSize}

	equipmentRepo := repository.NewEquipmentRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	userRepo := repository.NewUserRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	identity := auth.NewIdentityStore(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	authHandler := auth.NewHandler(auth.NewService(identity, j, cfg.JWTAccessTTL, log))
	catalogHandler := catalog.NewHandler(catalog.NewService(equipmentRepo, categoryRepo, limits))
	reviewHandler := review.NewHandler(review.NewService(reviewRepo, equipmentRepo, limits, log))
	adminHandler := admin.NewHandler(admin.NewService(
		admin.Repositories{
			Equipment:  equipmentRepo,
			Categories: categoryRepo,
			Reviews:    reviewRepo,
			Users:      userRepo,
			Bookings:   bookingRepo,
		},
		identity,
		limits,
		log,
	))

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.RequestLogger(log), middleware.CORS(cfg.CORSOrigins))

	r.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)
		catalogHandler.RegisterRoutes(v1)

		protected := v1.Group("")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			reviewHandler.RegisterRoutes(v1, protected)

			adminGroup := protected.Group("/admin")
			adminGroup.Use(middleware.AdminOnly())
			adminHandler.RegisterRoutes(adminGroup)
		}
	}

	return r
}
