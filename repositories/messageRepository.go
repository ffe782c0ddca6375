package repositories

import (
	"sort"
	"sync"

	"MediBuddy/models"
)

// MessageRepository holds doctor<->patient chat messages.
type MessageRepository struct {
	mu       sync.RWMutex
	messages []*models.Message
}

func NewMessageRepository() *MessageRepository {
	return &MessageRepository{}
}

func (r *MessageRepository) Add(m *models.Message) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *m
	r.messages = append(r.messages, &cp)
}

// Conversation returns the messages exchanged between two users, oldest
// first, and marks messages addressed to userID as read.
func (r *MessageRepository) Conversation(userID, otherID string) []models.Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Message
	for _, m := range r.messages {
		if (m.FromID == userID && m.ToID == otherID) || (m.FromID == otherID && m.ToID == userID) {
			if m.ToID == userID {
				m.Read = true
			}
			out = append(out, *m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].SentAt.Before(out[j].SentAt) })
	return out
}

// PartnerIDs returns the distinct ids this user has exchanged messages
// with, most recent conversation first.
func (r *MessageRepository) PartnerIDs(userID string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[string]bool)
	var out []string
	for i := len(r.messages) - 1; i >= 0; i-- {
		m := r.messages[i]
		var other string
		switch userID {
		case m.FromID:
			other = m.ToID
		case m.ToID:
			other = m.FromID
		default:
			continue
		}
		if !seen[other] {
			seen[other] = true
			out = append(out, other)
		}
	}
	return out
}

// UnreadFrom counts unread messages sent by otherID to userID.
func (r *MessageRepository) UnreadFrom(userID, otherID string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	count := 0
	for _, m := range r.messages {
		if m.FromID == otherID && m.ToID == userID && !m.Read {
			count++
		}
	}
	return count
}
