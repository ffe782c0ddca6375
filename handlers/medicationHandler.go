package handlers

import (
	"github.com/gin-gonic/gin"

	"MediBuddy/middlewares"
	"MediBuddy/services"
)

type MedicationHandler struct {
	service *services.MedicationService
}

func NewMedicationHandler(service *services.MedicationService) *MedicationHandler {
	return &MedicationHandler{service: service}
}

// ListForPatient returns the calling patient's medications, split into
// active and expired.
func (h *MedicationHandler) ListForPatient(c *gin.Context) {
	user, _ := middlewares.CurrentUser(c)
	c.JSON(200, h.service.ForPatient(user.ID, c.Query("search")))
}
