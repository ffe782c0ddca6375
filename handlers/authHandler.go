package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"MediBuddy/middlewares"
	"MediBuddy/models"
	"MediBuddy/services"
	"MediBuddy/utils"
)

type AuthHandler struct {
	Sessions *services.SessionService
}

func NewAuthHandler(sessions *services.SessionService) *AuthHandler {
	return &AuthHandler{Sessions: sessions}
}

// Login authenticates the credential tuple and establishes a session.
// A failed match is an inline, retryable error; any existing session is
// left untouched.
func (h *AuthHandler) Login(c *gin.Context) {
	var credentials struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := c.ShouldBindJSON(&credentials); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}
	if err := utils.ValidateLoginPayload(credentials.Email, credentials.Password, credentials.Role); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	role, err := models.ParseRole(credentials.Role)
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	sess, token, err := h.Sessions.Login(c.Request.Context(), credentials.Email, credentials.Password, role)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(401, gin.H{"error": "Invalid email or password"})
			return
		}
		middlewares.HttpError(c, "Login failed", http.StatusInternalServerError, err)
		return
	}

	utils.SetSessionCookie(c, token)
	c.JSON(200, gin.H{
		"sessionToken": token,
		"user":         sess.User.Public(),
		"redirect":     middlewares.DashboardPath(sess.User.Role),
	})
}

// Logout clears the persisted session and the cookie. It succeeds even
// when no session is active.
func (h *AuthHandler) Logout(c *gin.Context) {
	if sess, ok := middlewares.CurrentSession(c); ok {
		if err := h.Sessions.Logout(c.Request.Context(), sess.ID); err != nil {
			middlewares.HttpError(c, "Logout failed", http.StatusInternalServerError, err)
			return
		}
	}
	utils.ClearSessionCookie(c)
	c.Status(200)
}

// Me returns the restored session's user, or 401 when none is active.
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(401, gin.H{"error": "Not logged in"})
		return
	}
	c.JSON(200, user.Public())
}
