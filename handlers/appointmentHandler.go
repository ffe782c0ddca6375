package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"MediBuddy/middlewares"
	"MediBuddy/models"
	"MediBuddy/repositories"
	"MediBuddy/services"
	"MediBuddy/utils"
)

type AppointmentHandler struct {
	service *services.AppointmentService
}

func NewAppointmentHandler(service *services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

func appointmentFilter(c *gin.Context) services.AppointmentFilter {
	return services.AppointmentFilter{
		Status: c.DefaultQuery("status", services.StatusAll),
		Search: c.Query("search"),
	}
}

// ListForPatient returns the calling patient's upcoming/past appointments.
func (h *AppointmentHandler) ListForPatient(c *gin.Context) {
	user, _ := middlewares.CurrentUser(c)
	c.JSON(200, h.service.ForPatient(user.ID, appointmentFilter(c)))
}

// ListForDoctor returns the calling doctor's schedule grouped by date.
func (h *AppointmentHandler) ListForDoctor(c *gin.Context) {
	user, _ := middlewares.CurrentUser(c)
	c.JSON(200, h.service.ForDoctor(user.ID, appointmentFilter(c)))
}

// Book creates a pending appointment for the calling patient.
func (h *AppointmentHandler) Book(c *gin.Context) {
	user, _ := middlewares.CurrentUser(c)

	var req services.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}
	if err := utils.ValidateBookingPayload(req.DoctorID, req.Date, req.Time, req.Type, req.Symptoms); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	appt, err := h.service.Book(user, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDoctorNotFound):
			c.JSON(404, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrDateOutOfRange), errors.Is(err, services.ErrInvalidTimeSlot):
			c.JSON(400, gin.H{"error": err.Error()})
		default:
			c.JSON(500, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(201, appt)
}

// UpdateStatus moves an appointment through its lifecycle.
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	user, _ := middlewares.CurrentUser(c)
	id := c.Param("appointment_id")

	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}
	next := models.AppointmentStatus(body.Status)
	if !next.Valid() {
		c.JSON(400, gin.H{"error": "invalid status value"})
		return
	}

	appt, err := h.service.UpdateStatus(user, id, next)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrAppointmentNotFound):
			c.JSON(404, gin.H{"error": "Appointment not found"})
		case errors.Is(err, services.ErrNotOwner):
			c.JSON(403, gin.H{"error": err.Error()})
		case errors.Is(err, repositories.ErrInvalidTransition):
			c.JSON(409, gin.H{"error": err.Error()})
		default:
			c.JSON(500, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(200, appt)
}

// TimeSlots lists the bookable slots and the booking window.
func (h *AppointmentHandler) TimeSlots(c *gin.Context) {
	slots, minDate, maxDate := h.service.TimeSlots()
	c.JSON(200, gin.H{"slots": slots, "min_date": minDate, "max_date": maxDate})
}
