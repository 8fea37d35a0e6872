package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/radoraza-hash/hair-style-it/internal/audit"
	"github.com/radoraza-hash/hair-style-it/internal/availability"
	"github.com/radoraza-hash/hair-style-it/internal/config"
	"github.com/radoraza-hash/hair-style-it/internal/handlers"
	infraRepo "github.com/radoraza-hash/hair-style-it/internal/infra/repository"
	"github.com/radoraza-hash/hair-style-it/internal/middleware"
	"github.com/radoraza-hash/hair-style-it/internal/notification"
	"github.com/radoraza-hash/hair-style-it/internal/realtime"
	"github.com/radoraza-hash/hair-style-it/internal/storage"
	ucBooking "github.com/radoraza-hash/hair-style-it/internal/usecase/booking"
)

// RegisterRoutes wires the API and returns a func that flushes background workers.
func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	logger *zap.Logger,
) (shutdown func()) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsCfg.MaxAge = 12 * time.Hour
	origins := cfg.AllowedOrigins()
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = origins
	}
	r.Use(cors.New(corsCfg))

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	draftStore := infraRepo.NewDraftRedisStore(rdb, cfg.DraftTTL)
	sequencer := infraRepo.NewRedisSequencer(rdb, cfg.DraftTTL)
	publisher := realtime.NewPublisher(rdb)

	auditDispatcher := audit.NewDispatcher(audit.New(db), logger)

	sender := notification.NewResendSender(
		notification.DefaultResendURL,
		cfg.ResendAPIKey,
		cfg.NotifyFrom,
		cfg.NotifyTo,
		10*time.Second,
		logger,
	)
	notifier := notification.NewDispatcher(sender, logger)

	var avatars handlers.AvatarUploader
	if store := storage.NewAvatarStore(cfg); store != nil {
		avatars = store
	}

	// ======================================================
	// USE CASES
	// ======================================================
	resolver := availability.NewResolver(
		bookingRepo,
		availability.NewRealTimeProvider(cfg.Timezone),
		logger,
	)

	submitUC := ucBooking.NewSubmitBooking(
		bookingRepo,
		resolver,
		notifier,
		auditDispatcher,
		publisher,
		logger,
	)

	draftsUC := ucBooking.NewDrafts(
		draftStore,
		bookingRepo,
		resolver,
		sequencer,
		submitUC,
		cfg.BookingWindowDays,
		logger,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, auditDispatcher, logger)
	publicHandler := handlers.NewPublicHandler(bookingRepo, resolver, draftsUC, submitUC, cfg.BookingWindowDays, logger)
	draftHandler := handlers.NewDraftHandler(draftsUC)
	barberHandler := handlers.NewBarberHandler(db, avatars, auditDispatcher, logger)
	planningHandler := handlers.NewPlanningHandler(db, auditDispatcher)
	bookingAdminHandler := handlers.NewBookingAdminHandler(db, publisher, auditDispatcher, origins, logger)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	limiter := middleware.NewRateLimiter(cfg.RateLimitPerMin, logger)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		publicAPI := api.Group("/public")
		publicAPI.Use(limiter.Middleware())
		{
			publicAPI.GET("/services", publicHandler.ListServices)
			publicAPI.GET("/options", publicHandler.ListOptions)
			publicAPI.GET("/barbers", publicHandler.ListBarbers)

			publicAPI.GET("/availability/dates", publicHandler.AvailableDates)
			publicAPI.GET("/availability/slots", publicHandler.AvailableSlots)

			publicAPI.POST("/drafts", draftHandler.Create)
			publicAPI.GET("/drafts/:id", draftHandler.Get)
			publicAPI.PATCH("/drafts/:id", draftHandler.Update)
			publicAPI.POST("/drafts/:id/slots", draftHandler.Slots)
			publicAPI.POST("/drafts/:id/submit", draftHandler.Submit)

			publicAPI.POST("/bookings", publicHandler.CreateBooking)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		authAPI := api.Group("/auth")
		authAPI.Use(limiter.Middleware())
		{
			authAPI.POST("/register", authHandler.Register)
			authAPI.POST("/login", authHandler.Login)
		}

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(cfg))
		{
			admin.GET("/barbers", barberHandler.List)
			admin.POST("/barbers", barberHandler.Create)
			admin.PATCH("/barbers/:id", barberHandler.Update)
			admin.PATCH("/barbers/:id/active", barberHandler.SetActive)
			admin.POST("/barbers/:id/avatar", barberHandler.UploadAvatar)
			admin.DELETE("/barbers/:id", barberHandler.Delete)

			admin.GET("/planning", planningHandler.List)
			admin.POST("/planning", planningHandler.Create)
			admin.DELETE("/planning/:id", planningHandler.Delete)

			admin.GET("/bookings", bookingAdminHandler.List)
			admin.DELETE("/bookings/:id", bookingAdminHandler.Delete)
			admin.GET("/bookings/live", bookingAdminHandler.Live)

			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error_code": "route_not_found", "message": "Route inconnue."})
	})

	return func() {
		notifier.Close()
		auditDispatcher.Close()
	}
}
