package controllers

import (
	"github.com/gin-gonic/gin"

	"MediBuddy/handlers"
	"MediBuddy/middlewares"
	"MediBuddy/models"
)

// SetupPortalRoutes registers the two role-scoped dashboards. Every
// route below a dashboard group passes the authorization gate for that
// role; the gate resolves denied access by redirection.
func SetupPortalRoutes(
	router *gin.Engine,
	appointmentHandler *handlers.AppointmentHandler,
	patientHandler *handlers.PatientHandler,
	doctorHandler *handlers.DoctorHandler,
	recordHandler *handlers.MedicalRecordHandler,
	medicationHandler *handlers.MedicationHandler,
	notificationHandler *handlers.NotificationHandler,
	messageHandler *handlers.MessageHandler,
	analyticsHandler *handlers.AnalyticsHandler,
	settingsHandler *handlers.SettingsHandler,
) {
	patient := router.Group("/patient-dashboard", middlewares.RequireRole(models.RolePatient))
	{
		patient.GET("/appointments", appointmentHandler.ListForPatient)
		patient.POST("/appointments", appointmentHandler.Book)
		patient.PUT("/appointments/:appointment_id/status", appointmentHandler.UpdateStatus)
		patient.GET("/appointments/slots", appointmentHandler.TimeSlots)
		patient.GET("/doctors", doctorHandler.Search)
		patient.GET("/doctors/:id", doctorHandler.GetByID)
		patient.GET("/records", recordHandler.ListForPatient)
		patient.GET("/medications", medicationHandler.ListForPatient)
	}

	doctor := router.Group("/doctor-dashboard", middlewares.RequireRole(models.RoleDoctor))
	{
		doctor.GET("/appointments", appointmentHandler.ListForDoctor)
		doctor.PUT("/appointments/:appointment_id/status", appointmentHandler.UpdateStatus)
		doctor.GET("/patients", patientHandler.ListForDoctor)
		doctor.GET("/patients/:patient_id", patientHandler.Details)
		doctor.POST("/records", recordHandler.Append)
		doctor.GET("/analytics", analyticsHandler.ForDoctor)
	}

	// Shared screens: any authenticated role, each scoped to the caller.
	for _, role := range []models.Role{models.RolePatient, models.RoleDoctor} {
		g := router.Group("/"+string(role)+"-dashboard", middlewares.RequireRole(role))
		g.GET("/notifications", notificationHandler.List)
		g.PUT("/notifications/read-all", notificationHandler.MarkAllRead)
		g.PUT("/notifications/:notification_id/read", notificationHandler.MarkRead)
		g.DELETE("/notifications/:notification_id", notificationHandler.Delete)
		g.GET("/messages", messageHandler.Conversations)
		g.GET("/messages/:partner_id", messageHandler.History)
		g.POST("/messages", messageHandler.Send)
		g.GET("/settings/theme", settingsHandler.GetTheme)
		g.PUT("/settings/theme", settingsHandler.SetTheme)
		g.PUT("/settings/profile", settingsHandler.UpdateProfile)
	}
}
