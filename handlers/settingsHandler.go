package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"MediBuddy/middlewares"
	"MediBuddy/services"
	"MediBuddy/utils"
)

type SettingsHandler struct {
	themes *services.ThemeService
}

func NewSettingsHandler(themes *services.ThemeService) *SettingsHandler {
	return &SettingsHandler{themes: themes}
}

// GetTheme returns the calling user's theme preference (or the default).
func (h *SettingsHandler) GetTheme(c *gin.Context) {
	user, _ := middlewares.CurrentUser(c)
	theme, err := h.themes.Get(c.Request.Context(), user.ID)
	if err != nil {
		middlewares.HttpError(c, "Failed to read theme preference", http.StatusInternalServerError, err)
		return
	}
	c.JSON(200, gin.H{"theme": theme})
}

// SetTheme persists a light/dark toggle.
func (h *SettingsHandler) SetTheme(c *gin.Context) {
	user, _ := middlewares.CurrentUser(c)

	var body struct {
		Theme string `json:"theme"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}
	if err := h.themes.Set(c.Request.Context(), user.ID, body.Theme); err != nil {
		if errors.Is(err, services.ErrUnknownTheme) {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		middlewares.HttpError(c, "Failed to persist theme preference", http.StatusInternalServerError, err)
		return
	}
	c.Status(200)
}

// UpdateProfile validates the editable profile fields and echoes the
// merged result. The demo directory is immutable reference data, so the
// form round-trips without persisting.
func (h *SettingsHandler) UpdateProfile(c *gin.Context) {
	user, _ := middlewares.CurrentUser(c)

	var body struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Phone string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}
	if err := utils.ValidateSettingsPayload(body.Name, body.Email, body.Phone); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	merged := user.Public()
	merged.Name = body.Name
	merged.Email = body.Email
	merged.Phone = body.Phone
	c.JSON(200, merged)
}
