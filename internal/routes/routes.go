package routes

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Lis-Kacper/BeautySaloon/internal/config"
	domain "github.com/Lis-Kacper/BeautySaloon/internal/domain/appointment"
	"github.com/Lis-Kacper/BeautySaloon/internal/handlers"
	infraRepo "github.com/Lis-Kacper/BeautySaloon/internal/infra/repository"
	"github.com/Lis-Kacper/BeautySaloon/internal/middleware"
	"github.com/Lis-Kacper/BeautySaloon/internal/notifier"
	"github.com/Lis-Kacper/BeautySaloon/internal/slotlock"
	ucAppointment "github.com/Lis-Kacper/BeautySaloon/internal/usecase/appointment"
)

func window(cfg *config.Config) domain.Window {
	return domain.Window{
		Open:  fmt.Sprintf("%02d:00", cfg.OpenHour),
		Close: fmt.Sprintf("%02d:00", cfg.CloseHour),
		Slot:  cfg.SlotDuration(),
	}
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	dispatcher := notifier.NewDispatcher(notifier.SenderFromConfig(cfg))

	var locker slotlock.Locker = slotlock.NopLocker{}
	if cfg.RedisAddr != "" {
		locker = slotlock.NewRedisLocker(cfg.RedisAddr)
	}

	// ======================================================
	// USE CASES
	// ======================================================
	availabilityUC := ucAppointment.NewGetAvailability(
		appointmentRepo,
		window(cfg),
	)

	createUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		dispatcher,
		locker,
	)

	listUC := ucAppointment.NewListAppointments(appointmentRepo)
	updateUC := ucAppointment.NewUpdateAppointment(appointmentRepo)
	deleteUC := ucAppointment.NewDeleteAppointment(appointmentRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(appointmentRepo, cfg)
	bookingHandler := handlers.NewBookingHandler(cfg, availabilityUC, createUC)
	adminHandler := handlers.NewAdminHandler(cfg, listUC, updateUC, deleteUC)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/availability", bookingHandler.Availability)
		api.POST("/appointments", bookingHandler.Create)

		api.POST("/login", authHandler.Login)

		// ------------------------------
		// ADMIN DASHBOARD
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/appointments", adminHandler.List)
			secured.PATCH("/appointments/:id", adminHandler.Update)
			secured.DELETE("/appointments/:id", adminHandler.Delete)
		}
	}
}
