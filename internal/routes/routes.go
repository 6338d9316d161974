package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"github.com/careslot/appointment-api/internal/audit"
	"github.com/careslot/appointment-api/internal/cache"
	"github.com/careslot/appointment-api/internal/config"
	"github.com/careslot/appointment-api/internal/handlers"
	infraRepo "github.com/careslot/appointment-api/internal/infra/repository"
	"github.com/careslot/appointment-api/internal/mail"
	"github.com/careslot/appointment-api/internal/middleware"
	"github.com/careslot/appointment-api/internal/payment"
	"github.com/careslot/appointment-api/internal/storage"
	ucBooking "github.com/careslot/appointment-api/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, redisClient *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	slotCache := cache.NewSlotCache(redisClient)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	imageStore := storage.NewImageStore(cfg)
	mailer := mail.New(cfg)

	providers := buildProviders(cfg)

	// ======================================================
	// USE CASES — BOOKING
	// ======================================================
	bookUC := ucBooking.NewBookAppointment(bookingRepo, slotCache, auditDispatcher)

	cancelUC := ucBooking.NewCancelAppointment(
		bookingRepo,
		slotCache,
		auditDispatcher,
		cfg.ClinicTimezone,
	)

	completeUC := ucBooking.NewCompleteAppointment(
		bookingRepo,
		auditDispatcher,
		cfg.ClinicTimezone,
	)

	availabilityUC := ucBooking.NewGetAvailability(
		bookingRepo,
		slotCache,
		cfg.ClinicTimezone,
	)

	listUC := ucBooking.NewListAppointments(bookingRepo)

	startPaymentUC := ucBooking.NewStartPayment(bookingRepo, providers, auditDispatcher)

	confirmPaymentUC := ucBooking.NewConfirmPayment(
		bookingRepo,
		providers,
		auditDispatcher,
		mailer,
		cfg.ClinicTimezone,
		cfg.Currency,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	publicHandler := handlers.NewPublicHandler(db, availabilityUC)
	profileHandler := handlers.NewProfileHandler(db, imageStore)
	bookingHandler := handlers.NewBookingHandler(bookUC, cancelUC, listUC)
	paymentHandler := handlers.NewPaymentHandler(startPaymentUC, confirmPaymentUC)
	doctorHandler := handlers.NewDoctorHandler(db, imageStore, auditDispatcher, listUC, completeUC)
	adminHandler := handlers.NewAdminHandler(db, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	authLimiter := middleware.NewIPRateLimiter(rate.Limit(1), 5)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/doctors", publicHandler.ListDoctors)
		api.GET("/doctors/:id", publicHandler.GetDoctor)
		api.GET("/doctors/:id/availability", publicHandler.Availability)

		// ------------------------------
		// AUTH
		// ------------------------------
		auth := api.Group("/auth")
		auth.Use(authLimiter.Middleware())
		{
			auth.POST("/patient/register", authHandler.RegisterPatient)
			auth.POST("/patient/login", authHandler.LoginPatient)
			auth.POST("/doctor/login", authHandler.LoginDoctor)
			auth.POST("/admin/login", authHandler.LoginAdmin)
		}

		// ------------------------------
		// PATIENT
		// ------------------------------
		patientAPI := api.Group("/patient")
		patientAPI.Use(middleware.AuthMiddleware(cfg, middleware.RolePatient))
		{
			patientAPI.GET("/me", profileHandler.GetMe)
			patientAPI.PATCH("/me", profileHandler.UpdateMe)

			patientAPI.POST("/appointments", bookingHandler.Book)
			patientAPI.GET("/appointments", bookingHandler.ListMine)
			patientAPI.PATCH("/appointments/:id/cancel", bookingHandler.Cancel)

			patientAPI.POST("/payments", paymentHandler.Start)
		}

		// Gateway callbacks arrive unauthenticated.
		api.POST("/payments/confirm", paymentHandler.Confirm)

		// ------------------------------
		// DOCTOR
		// ------------------------------
		doctorAPI := api.Group("/doctor")
		doctorAPI.Use(middleware.AuthMiddleware(cfg, middleware.RoleDoctor))
		{
			doctorAPI.GET("/me", doctorHandler.GetMe)
			doctorAPI.PATCH("/me", doctorHandler.UpdateMe)
			doctorAPI.PATCH("/me/availability", doctorHandler.ToggleAvailability)

			doctorAPI.GET("/appointments", doctorHandler.Appointments)
			doctorAPI.PATCH("/appointments/:id/complete", doctorHandler.Complete)
		}

		// ------------------------------
		// ADMIN
		// ------------------------------
		adminAPI := api.Group("/admin")
		adminAPI.Use(middleware.AuthMiddleware(cfg, middleware.RoleAdmin))
		{
			adminAPI.POST("/doctors", adminHandler.AddDoctor)
			adminAPI.GET("/doctors", adminHandler.ListDoctors)
			adminAPI.PATCH("/doctors/:id/availability", adminHandler.SetDoctorAvailability)

			adminAPI.GET("/appointments", adminHandler.AllAppointments)
			adminAPI.GET("/dashboard", adminHandler.Dashboard)
			adminAPI.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}

func buildProviders(cfg *config.Config) *payment.Registry {
	var list []payment.Provider

	if cfg.RazorpayKeyID != "" {
		list = append(list, payment.NewRazorpayProvider(
			cfg.RazorpayKeyID,
			cfg.RazorpayKeySecret,
			cfg.Currency,
		))
	} else {
		log.Println("razorpay disabled: missing credentials")
	}

	if cfg.MercadoPagoToken != "" {
		mp, err := payment.NewMercadoPagoProvider(cfg.MercadoPagoToken, cfg.Currency)
		if err != nil {
			log.Printf("mercadopago disabled: %v", err)
		} else {
			list = append(list, mp)
		}
	} else {
		log.Println("mercadopago disabled: missing access token")
	}

	return payment.NewRegistry(list...)
}
