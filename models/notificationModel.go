package models

import "time"

// NotificationKind classifies a notification for icon/filter purposes.
type NotificationKind string

const (
	NotifyAppointment NotificationKind = "appointment"
	NotifyMedical     NotificationKind = "medical"
	NotifyMedication  NotificationKind = "medication"
	NotifySystem      NotificationKind = "system"
)

// Valid reports whether the kind is one of the known values.
func (k NotificationKind) Valid() bool {
	switch k {
	case NotifyAppointment, NotifyMedical, NotifyMedication, NotifySystem:
		return true
	}
	return false
}

// Notification is a per-user feed entry.
type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"`
	Kind      NotificationKind `json:"kind"`
	Title     string           `json:"title"`
	Body      string           `json:"body"`
	CreatedAt time.Time        `json:"created_at"`
	Read      bool             `json:"read"`
}

// Message is a single doctor<->patient chat message.
type Message struct {
	ID     string    `json:"id"`
	FromID string    `json:"from_id"`
	ToID   string    `json:"to_id"`
	Body   string    `json:"body"`
	SentAt time.Time `json:"sent_at"`
	Read   bool      `json:"read"`
}
