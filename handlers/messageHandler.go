package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"MediBuddy/middlewares"
	"MediBuddy/services"
	"MediBuddy/utils"
)

type MessageHandler struct {
	service *services.MessageService
}

func NewMessageHandler(service *services.MessageService) *MessageHandler {
	return &MessageHandler{service: service}
}

// Conversations lists the calling user's chat partners.
func (h *MessageHandler) Conversations(c *gin.Context) {
	user, _ := middlewares.CurrentUser(c)
	c.JSON(200, h.service.Conversations(user.ID))
}

// History returns the thread with one partner, marking it read.
func (h *MessageHandler) History(c *gin.Context) {
	user, _ := middlewares.CurrentUser(c)
	msgs, err := h.service.History(user.ID, c.Param("partner_id"))
	if err != nil {
		c.JSON(404, gin.H{"error": "Conversation partner not found"})
		return
	}
	c.JSON(200, msgs)
}

// Send stores a message from the calling user.
func (h *MessageHandler) Send(c *gin.Context) {
	user, _ := middlewares.CurrentUser(c)

	var body struct {
		ToID string `json:"to_id"`
		Body string `json:"body"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}
	if err := utils.ValidateMessagePayload(body.ToID, body.Body); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	msg, err := h.service.Send(user, body.ToID, body.Body)
	if err != nil {
		if errors.Is(err, services.ErrRecipientNotFound) {
			c.JSON(404, gin.H{"error": err.Error()})
			return
		}
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, msg)
}
