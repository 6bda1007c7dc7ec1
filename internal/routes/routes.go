package routes

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/cache"
	"github.com/BruksfildServices01/salon-scheduler/internal/calendar"
	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	domainBooking "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/handlers"
	infraRepo "github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	ucAvailability "github.com/BruksfildServices01/salon-scheduler/internal/usecase/availability"
	ucBooking "github.com/BruksfildServices01/salon-scheduler/internal/usecase/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/validators"
)

// Deps are the process-wide singletons built in main.
type Deps struct {
	DB       *gorm.DB
	Redis    *redis.Client
	Calendar calendar.Gateway
	Audit    *audit.Dispatcher
	Log      *logrus.Logger
}

func RegisterRoutes(r *gin.Engine, deps Deps, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE
	// ======================================================
	r.Use(
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(deps.Log),
		middleware.CORSMiddleware(),
	)

	// ======================================================
	// INFRA
	// ======================================================
	loc := cfg.Location()

	bookingRepo := infraRepo.NewBookingGormRepository(deps.DB)
	store := domainBooking.NewStore(bookingRepo, bookingRepo, loc)

	availabilityCache := cache.NewRedisCache(deps.Redis)
	invalidator := ucAvailability.NewInvalidator(availabilityCache, loc, deps.Log)

	// ======================================================
	// USE CASES: AVAILABILITY
	// ======================================================
	getBusyDaysUC := ucAvailability.NewGetBusyDays(
		deps.Calendar,
		availabilityCache,
		cfg.BusyDaysTTL,
		deps.Log,
	)

	getFreeSlotsUC := ucAvailability.NewGetFreeSlots(
		deps.Calendar,
		availabilityCache,
		ucAvailability.BusinessHours{
			StartHour: cfg.WorkStartHour,
			EndHour:   cfg.WorkEndHour,
			Slot:      cfg.SlotDuration(),
			Location:  loc,
		},
		cfg.FreeSlotsTTL,
		deps.Log,
	)

	// ======================================================
	// USE CASES: BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(store, deps.Calendar, invalidator, deps.Audit, deps.Log)
	cancelBookingUC := ucBooking.NewCancelBooking(store, deps.Calendar, invalidator, deps.Audit, deps.Log)
	getBookingUC := ucBooking.NewGetBooking(store)
	listBookingsUC := ucBooking.NewListBookings(store)
	syncBookingUC := ucBooking.NewSyncBooking(store, deps.Calendar, invalidator, deps.Audit, deps.Log)

	// ======================================================
	// HANDLERS
	// ======================================================
	availabilityHandler := handlers.NewAvailabilityHandler(getBusyDaysUC, getFreeSlotsUC, loc)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		cancelBookingUC,
		getBookingUC,
		listBookingsUC,
		syncBookingUC,
		loc,
	)
	if cfg.VerifyEmailDomain {
		bookingHandler.WithEmailDomainCheck(validators.NewEmailDomainChecker(nil, 2*time.Second))
	}

	auditLogsHandler := handlers.NewAuditLogsHandler(deps.DB)

	healthHandler := handlers.NewHealthHandler(
		handlers.HealthCheck{
			Name: "database",
			Ping: func(ctx context.Context) error {
				sqlDB, err := deps.DB.DB()
				if err != nil {
					return err
				}
				return sqlDB.PingContext(ctx)
			},
			Critical: true,
		},
		handlers.HealthCheck{
			Name: "cache",
			Ping: func(ctx context.Context) error {
				return deps.Redis.Ping(ctx).Err()
			},
		},
	)

	// ======================================================
	// ROUTES
	// ======================================================
	r.GET("/health", healthHandler.Health)

	api := r.Group("/api")
	{
		availability := api.Group("/availability")
		{
			availability.GET("/busy", availabilityHandler.BusyDays)
			availability.GET("/slots", availabilityHandler.FreeSlots)
		}

		bookings := api.Group("/bookings")
		{
			bookings.POST("", bookingHandler.Create)
			bookings.POST("/voucher", bookingHandler.CreateVoucher)
			bookings.GET("/:code", bookingHandler.Get)
			bookings.DELETE("/:code", bookingHandler.Cancel)
		}

		admin := api.Group("/admin")
		admin.Use(middleware.AdminMiddleware(cfg))
		{
			admin.GET("/bookings", bookingHandler.List)
			admin.POST("/bookings/manual", bookingHandler.CreateManual)
			admin.POST("/bookings/:code/sync", bookingHandler.Sync)

			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
