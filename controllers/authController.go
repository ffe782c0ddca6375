package controllers

import (
	"github.com/gin-gonic/gin"

	"MediBuddy/handlers"
)

type AuthController struct {
	Handler *handlers.AuthHandler
}

// NewAuthController creates a new AuthController with the given AuthHandler
func NewAuthController(authHandler *handlers.AuthHandler) *AuthController {
	return &AuthController{Handler: authHandler}
}

// RegisterRoutes initializes the authentication routes directly on the
// router. Login is public; logout succeeds unconditionally; Me reports
// 401 on its own when no session was restored.
func (ac *AuthController) RegisterRoutes(router *gin.Engine) {
	router.POST("/auth/login", ac.Handler.Login)
	router.POST("/auth/logout", ac.Handler.Logout)
	router.GET("/auth/me", ac.Handler.Me)
}
