package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"MediBuddy/models"
	"MediBuddy/repositories"
)

var ErrRecipientNotFound = errors.New("recipient not found")

// Conversation is one entry in a user's chat list.
type Conversation struct {
	Partner models.User `json:"partner"`
	Unread  int         `json:"unread"`
}

// MessageService handles the doctor<->patient messaging views.
type MessageService struct {
	directory repositories.UserRepository
	messages  *repositories.MessageRepository
}

func NewMessageService(directory repositories.UserRepository, messages *repositories.MessageRepository) *MessageService {
	return &MessageService{directory: directory, messages: messages}
}

// Conversations lists the user's chat partners, most recent first, with
// unread counts.
func (s *MessageService) Conversations(userID string) []Conversation {
	var out []Conversation
	for _, partnerID := range s.messages.PartnerIDs(userID) {
		partner, ok := s.directory.GetByID(partnerID)
		if !ok {
			continue
		}
		out = append(out, Conversation{
			Partner: partner.Public(),
			Unread:  s.messages.UnreadFrom(userID, partnerID),
		})
	}
	return out
}

// History returns the conversation with the given partner, oldest first,
// marking received messages as read.
func (s *MessageService) History(userID, partnerID string) ([]models.Message, error) {
	if _, ok := s.directory.GetByID(partnerID); !ok {
		return nil, ErrRecipientNotFound
	}
	return s.messages.Conversation(userID, partnerID), nil
}

// Send stores a message. Doctors and patients may only message each
// other, not peers of the same role.
func (s *MessageService) Send(from *models.User, toID, body string) (*models.Message, error) {
	to, ok := s.directory.GetByID(toID)
	if !ok {
		return nil, ErrRecipientNotFound
	}
	if to.Role == from.Role {
		return nil, errors.New("messages can only be sent between a doctor and a patient")
	}

	m := &models.Message{
		ID:     uuid.New().String(),
		FromID: from.ID,
		ToID:   to.ID,
		Body:   body,
		SentAt: time.Now(),
	}
	s.messages.Add(m)
	return m, nil
}
