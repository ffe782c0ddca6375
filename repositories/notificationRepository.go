package repositories

import (
	"sync"

	"MediBuddy/models"
)

// NotificationRepository holds per-user notification feeds.
type NotificationRepository struct {
	mu     sync.RWMutex
	byUser map[string][]*models.Notification
}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{byUser: make(map[string][]*models.Notification)}
}

func (r *NotificationRepository) Add(n *models.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *n
	r.byUser[n.UserID] = append(r.byUser[n.UserID], &cp)
}

// ListByUser returns the user's feed, newest first.
func (r *NotificationRepository) ListByUser(userID string) []models.Notification {
	r.mu.RLock()
	defer r.mu.RUnlock()
	feed := r.byUser[userID]
	out := make([]models.Notification, 0, len(feed))
	for i := len(feed) - 1; i >= 0; i-- {
		out = append(out, *feed[i])
	}
	return out
}

// MarkRead flags one notification; it reports whether the id was found.
func (r *NotificationRepository) MarkRead(userID, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.byUser[userID] {
		if n.ID == id {
			n.Read = true
			return true
		}
	}
	return false
}

func (r *NotificationRepository) MarkAllRead(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.byUser[userID] {
		n.Read = true
	}
}

// Delete removes one notification; it reports whether the id was found.
func (r *NotificationRepository) Delete(userID, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	feed := r.byUser[userID]
	for i, n := range feed {
		if n.ID == id {
			r.byUser[userID] = append(feed[:i], feed[i+1:]...)
			return true
		}
	}
	return false
}

func (r *NotificationRepository) UnreadCount(userID string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	count := 0
	for _, n := range r.byUser[userID] {
		if !n.Read {
			count++
		}
	}
	return count
}
