package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"MediBuddy/middlewares"
	"MediBuddy/models"
	"MediBuddy/repositories"
)

type DoctorHandler struct {
	directory repositories.UserRepository
}

func NewDoctorHandler(directory repositories.UserRepository) *DoctorHandler {
	return &DoctorHandler{directory: directory}
}

// Search lists doctors for the booking screen, filtered by an optional
// name/specialty token.
func (h *DoctorHandler) Search(c *gin.Context) {
	doctors := h.directory.SearchDoctors(c.Query("search"))
	out := make([]models.User, 0, len(doctors))
	for _, d := range doctors {
		out = append(out, d.Public())
	}
	middlewares.RespondJSON(c, out, http.StatusOK)
}

// GetByID returns one doctor's public profile.
func (h *DoctorHandler) GetByID(c *gin.Context) {
	d, ok := h.directory.GetByID(c.Param("id"))
	if !ok || d.Role != models.RoleDoctor {
		c.JSON(404, gin.H{"error": "Doctor not found"})
		return
	}
	middlewares.RespondJSON(c, d.Public(), http.StatusOK)
}
