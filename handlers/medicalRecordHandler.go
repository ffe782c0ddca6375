package handlers

import (
	"github.com/gin-gonic/gin"

	"MediBuddy/middlewares"
	"MediBuddy/models"
	"MediBuddy/services"
)

type MedicalRecordHandler struct {
	service *services.MedicalRecordService
}

func NewMedicalRecordHandler(service *services.MedicalRecordService) *MedicalRecordHandler {
	return &MedicalRecordHandler{service: service}
}

// ListForPatient returns the calling patient's records, newest first.
func (h *MedicalRecordHandler) ListForPatient(c *gin.Context) {
	user, _ := middlewares.CurrentUser(c)
	c.JSON(200, h.service.ForPatient(user.ID, c.Query("search")))
}

// Append lets the calling doctor author a record for a patient.
func (h *MedicalRecordHandler) Append(c *gin.Context) {
	user, _ := middlewares.CurrentUser(c)

	var rec models.MedicalRecord
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}
	if err := h.service.Append(user, &rec); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, rec)
}
