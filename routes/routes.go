package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"MediBuddy/cache"
	"MediBuddy/config"
	"MediBuddy/controllers"
	"MediBuddy/handlers"
	"MediBuddy/middlewares"
	"MediBuddy/models"
	"MediBuddy/repositories"
	"MediBuddy/services"
	"MediBuddy/utils"
)

// SetupRoutes seeds the record sets and wires middleware, services and
// handlers into the router.
func SetupRoutes(cache *cache.Cache, config *config.AppConfig) (http.Handler, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	corsConfig := &middlewares.CorsConfig{
		AllowedOrigins:   config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}
	router.Use(middlewares.CorsMiddleware(corsConfig))

	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: 15,
		Burst:             30,
	}))

	router.Use(middlewares.LoggingMiddleware())

	// Seed the static record sets. The directory is built first so every
	// other set can be checked against it.
	userRepo, err := repositories.NewUserRepository(models.SeedUsers())
	if err != nil {
		return nil, err
	}
	appointmentRepo, err := repositories.NewAppointmentRepository(userRepo, models.SeedAppointments())
	if err != nil {
		return nil, err
	}
	recordRepo, err := repositories.NewMedicalRecordRepository(userRepo, models.SeedMedicalRecords())
	if err != nil {
		return nil, err
	}
	medicationRepo, err := repositories.NewMedicationRepository(userRepo, models.SeedMedications())
	if err != nil {
		return nil, err
	}
	notificationRepo := repositories.NewNotificationRepository()
	messageRepo := repositories.NewMessageRepository()

	var mailer services.Mailer
	if utils.MailEnabled() {
		mailer = utils.SendNotificationEmail
	}

	sessionService := services.NewSessionService(userRepo, cache)
	notificationService := services.NewNotificationService(userRepo, notificationRepo, mailer)
	appointmentService := services.NewAppointmentService(userRepo, appointmentRepo, notificationService)
	patientService := services.NewPatientService(userRepo, appointmentRepo, recordRepo, medicationRepo)
	recordService := services.NewMedicalRecordService(userRepo, recordRepo)
	medicationService := services.NewMedicationService(medicationRepo)
	messageService := services.NewMessageService(userRepo, messageRepo)
	analyticsService := services.NewAnalyticsService(appointmentRepo)
	themeService := services.NewThemeService(cache, config.DefaultTheme)

	router.Use(middlewares.SessionAuthMiddleware(sessionService))

	authController := controllers.NewAuthController(handlers.NewAuthHandler(sessionService))
	authController.RegisterRoutes(router)

	controllers.SetupPortalRoutes(
		router,
		handlers.NewAppointmentHandler(appointmentService),
		handlers.NewPatientHandler(patientService),
		handlers.NewDoctorHandler(userRepo),
		handlers.NewMedicalRecordHandler(recordService),
		handlers.NewMedicationHandler(medicationService),
		handlers.NewNotificationHandler(notificationService),
		handlers.NewMessageHandler(messageService),
		handlers.NewAnalyticsHandler(analyticsService),
		handlers.NewSettingsHandler(themeService),
	)

	controllers.SetupRootRoute(router)

	return router, nil
}
