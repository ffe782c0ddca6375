package services

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"MediBuddy/models"
	"MediBuddy/repositories"
)

// Mailer sends an e-mail copy of a notification. utils.SendNotificationEmail
// is the production implementation; a nil-op is used when SMTP is not
// configured.
type Mailer func(to, subject, body string) error

// NotificationService maintains per-user notification feeds and emits
// entries when the appointment lifecycle advances.
type NotificationService struct {
	directory     repositories.UserRepository
	notifications *repositories.NotificationRepository
	mailer        Mailer
}

func NewNotificationService(directory repositories.UserRepository, notifications *repositories.NotificationRepository, mailer Mailer) *NotificationService {
	return &NotificationService{directory: directory, notifications: notifications, mailer: mailer}
}

// List returns the user's feed, optionally narrowed to unread entries.
func (s *NotificationService) List(userID string, unreadOnly bool) []models.Notification {
	feed := s.notifications.ListByUser(userID)
	if !unreadOnly {
		return feed
	}
	var out []models.Notification
	for _, n := range feed {
		if !n.Read {
			out = append(out, n)
		}
	}
	return out
}

func (s *NotificationService) UnreadCount(userID string) int {
	return s.notifications.UnreadCount(userID)
}

func (s *NotificationService) MarkRead(userID, id string) bool {
	return s.notifications.MarkRead(userID, id)
}

func (s *NotificationService) MarkAllRead(userID string) {
	s.notifications.MarkAllRead(userID)
}

func (s *NotificationService) Delete(userID, id string) bool {
	return s.notifications.Delete(userID, id)
}

// AppointmentBooked notifies both parties of a new pending appointment.
func (s *NotificationService) AppointmentBooked(a *models.Appointment) {
	s.push(a.DoctorID, models.NotifyAppointment, "New appointment request",
		fmt.Sprintf("%s requested a %s on %s at %s.", a.PatientName, a.Type, a.Date, a.Time))
	s.push(a.PatientID, models.NotifyAppointment, "Appointment requested",
		fmt.Sprintf("Your %s with %s on %s at %s is awaiting confirmation.", a.Type, a.DoctorName, a.Date, a.Time))
}

// AppointmentStatusChanged notifies the patient of a lifecycle change.
func (s *NotificationService) AppointmentStatusChanged(a *models.Appointment) {
	s.push(a.PatientID, models.NotifyAppointment,
		fmt.Sprintf("Appointment %s", a.Status),
		fmt.Sprintf("Your %s with %s on %s at %s is now %s.", a.Type, a.DoctorName, a.Date, a.Time, a.Status))
}

// System adds a system notification for a user.
func (s *NotificationService) System(userID, title, body string) {
	s.push(userID, models.NotifySystem, title, body)
}

// push stores the feed entry and, when a mailer is wired, sends a copy in
// the background. Mail delivery is fire-and-forget: a failure is logged
// and never surfaced.
func (s *NotificationService) push(userID string, kind models.NotificationKind, title, body string) {
	n := &models.Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Kind:      kind,
		Title:     title,
		Body:      body,
		CreatedAt: time.Now(),
	}
	s.notifications.Add(n)

	if s.mailer == nil {
		return
	}
	user, ok := s.directory.GetByID(userID)
	if !ok {
		return
	}
	go func(to, subject, text string) {
		if err := s.mailer(to, subject, text); err != nil {
			log.Printf("Failed to send notification email to %s: %v", to, err)
		}
	}(user.Email, title, body)
}
