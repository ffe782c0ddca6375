package handlers

import (
	"github.com/gin-gonic/gin"

	"MediBuddy/middlewares"
	"MediBuddy/services"
)

type PatientHandler struct {
	service *services.PatientService
}

func NewPatientHandler(service *services.PatientService) *PatientHandler {
	return &PatientHandler{service: service}
}

// ListForDoctor returns the distinct patients derived from the calling
// doctor's appointments.
func (h *PatientHandler) ListForDoctor(c *gin.Context) {
	user, _ := middlewares.CurrentUser(c)
	c.JSON(200, h.service.PatientsOfDoctor(user.ID, c.Query("search")))
}

// Details returns one patient's profile and history for the calling doctor.
func (h *PatientHandler) Details(c *gin.Context) {
	user, _ := middlewares.CurrentUser(c)
	details, ok := h.service.Details(user.ID, c.Param("patient_id"))
	if !ok {
		c.JSON(404, gin.H{"error": "Patient not found"})
		return
	}
	c.JSON(200, details)
}
