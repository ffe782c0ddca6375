package handlers

import (
	"github.com/gin-gonic/gin"

	"MediBuddy/middlewares"
	"MediBuddy/services"
)

type AnalyticsHandler struct {
	service *services.AnalyticsService
}

func NewAnalyticsHandler(service *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// ForDoctor returns the calling doctor's dashboard aggregates.
func (h *AnalyticsHandler) ForDoctor(c *gin.Context) {
	user, _ := middlewares.CurrentUser(c)
	c.JSON(200, h.service.ForDoctor(user.ID))
}
