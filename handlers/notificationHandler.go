package handlers

import (
	"github.com/gin-gonic/gin"

	"MediBuddy/middlewares"
	"MediBuddy/services"
)

type NotificationHandler struct {
	service *services.NotificationService
}

func NewNotificationHandler(service *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// List returns the calling user's feed; ?filter=unread narrows it.
func (h *NotificationHandler) List(c *gin.Context) {
	user, _ := middlewares.CurrentUser(c)
	unreadOnly := c.DefaultQuery("filter", "all") == "unread"
	c.JSON(200, gin.H{
		"notifications": h.service.List(user.ID, unreadOnly),
		"unread_count":  h.service.UnreadCount(user.ID),
	})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	user, _ := middlewares.CurrentUser(c)
	if !h.service.MarkRead(user.ID, c.Param("notification_id")) {
		c.JSON(404, gin.H{"error": "Notification not found"})
		return
	}
	c.Status(200)
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	user, _ := middlewares.CurrentUser(c)
	h.service.MarkAllRead(user.ID)
	c.Status(200)
}

func (h *NotificationHandler) Delete(c *gin.Context) {
	user, _ := middlewares.CurrentUser(c)
	if !h.service.Delete(user.ID, c.Param("notification_id")) {
		c.JSON(404, gin.H{"error": "Notification not found"})
		return
	}
	c.Status(204)
}
