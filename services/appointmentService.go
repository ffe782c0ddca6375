package services

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"MediBuddy/models"
	"MediBuddy/repositories"
)

var (
	ErrDoctorNotFound  = errors.New("doctor not found")
	ErrDateOutOfRange  = errors.New("appointments must be booked between tomorrow and 90 days out")
	ErrInvalidTimeSlot = errors.New("requested time is not a bookable slot")
	ErrNotOwner        = errors.New("appointment does not belong to this user")
)

// StatusAll disables status filtering in an AppointmentFilter.
const StatusAll = "all"

// AppointmentFilter narrows an owner's appointment list. Search is a
// free-text token tested case-insensitively against the counterpart
// name, the appointment type and the symptoms.
type AppointmentFilter struct {
	Status string
	Search string
}

// PatientAppointmentsView splits a patient's appointments the way the
// dashboard shows them: non-completed ascending, completed descending.
type PatientAppointmentsView struct {
	Upcoming []models.Appointment `json:"upcoming"`
	Past     []models.Appointment `json:"past"`
}

// DaySchedule is one date's worth of a doctor's filtered appointments.
type DaySchedule struct {
	Date         string               `json:"date"`
	Appointments []models.Appointment `json:"appointments"`
}

// BookingRequest is a patient's appointment booking form.
type BookingRequest struct {
	DoctorID string `json:"doctor_id"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Type     string `json:"type"`
	Symptoms string `json:"symptoms"`
	Virtual  bool   `json:"virtual"`
}

// AppointmentService derives the appointment view models and runs the
// booking lifecycle over the shared record set.
type AppointmentService struct {
	directory     repositories.UserRepository
	appointments  *repositories.AppointmentRepository
	notifications *NotificationService
}

func NewAppointmentService(directory repositories.UserRepository, appointments *repositories.AppointmentRepository, notifications *NotificationService) *AppointmentService {
	return &AppointmentService{directory: directory, appointments: appointments, notifications: notifications}
}

// ForPatient returns the patient's appointments under the filter, split
// into upcoming and past.
func (s *AppointmentService) ForPatient(patientID string, f AppointmentFilter) PatientAppointmentsView {
	matched := FilterAppointments(s.appointments.ListByPatient(patientID), f, models.RolePatient)

	view := PatientAppointmentsView{}
	for _, a := range matched {
		if a.Status == models.StatusCompleted {
			view.Past = append(view.Past, a)
		} else {
			view.Upcoming = append(view.Upcoming, a)
		}
	}
	sortByDateTime(view.Upcoming, true)
	sortByDateTime(view.Past, false)
	return view
}

// ForDoctor returns the doctor's appointments under the filter, grouped
// by date with dates ascending and slots ordered within each day.
func (s *AppointmentService) ForDoctor(doctorID string, f AppointmentFilter) []DaySchedule {
	matched := FilterAppointments(s.appointments.ListByDoctor(doctorID), f, models.RoleDoctor)

	byDate := make(map[string][]models.Appointment)
	for _, a := range matched {
		byDate[a.Date] = append(byDate[a.Date], a)
	}
	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	out := make([]DaySchedule, 0, len(dates))
	for _, d := range dates {
		day := byDate[d]
		sortByDateTime(day, true)
		out = append(out, DaySchedule{Date: d, Appointments: day})
	}
	return out
}

// FilterAppointments applies the status and free-text filters. The
// viewer role decides which counterpart name the search token is tested
// against: patients search by doctor name, doctors by patient name.
func FilterAppointments(list []models.Appointment, f AppointmentFilter, viewer models.Role) []models.Appointment {
	status := f.Status
	if status == "" {
		status = StatusAll
	}
	needle := strings.ToLower(f.Search)

	var out []models.Appointment
	for _, a := range list {
		if status != StatusAll && string(a.Status) != status {
			continue
		}
		if needle != "" && !matchesSearch(a, needle, viewer) {
			continue
		}
		out = append(out, a)
	}
	return out
}

func matchesSearch(a models.Appointment, needle string, viewer models.Role) bool {
	counterpart := a.PatientName
	if viewer == models.RolePatient {
		counterpart = a.DoctorName
	}
	return strings.Contains(strings.ToLower(counterpart), needle) ||
		strings.Contains(strings.ToLower(a.Type), needle) ||
		strings.Contains(strings.ToLower(a.Symptoms), needle)
}

// sortByDateTime orders appointments by date, breaking ties on the clock
// slot. Dates are ISO strings so lexicographic order is calendar order.
func sortByDateTime(list []models.Appointment, ascending bool) {
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if !ascending {
			a, b = b, a
		}
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		return slotMinutes(a.Time) < slotMinutes(b.Time)
	})
}

func slotMinutes(slot string) int {
	t, err := time.Parse("03:04 PM", slot)
	if err != nil {
		return 0
	}
	return t.Hour()*60 + t.Minute()
}

// Book creates a pending appointment for the patient and notifies both
// parties. The date must fall inside the booking window and the time
// must be one of the published slots.
func (s *AppointmentService) Book(patient *models.User, req BookingRequest) (*models.Appointment, error) {
	doctor, ok := s.directory.GetByID(req.DoctorID)
	if !ok || doctor.Role != models.RoleDoctor {
		return nil, ErrDoctorNotFound
	}
	if req.Date < models.TodayPlus(1) || req.Date > models.TodayPlus(90) {
		return nil, ErrDateOutOfRange
	}
	if !validTimeSlot(req.Time) {
		return nil, ErrInvalidTimeSlot
	}

	appt := &models.Appointment{
		ID:          uuid.New().String(),
		PatientID:   patient.ID,
		DoctorID:    doctor.ID,
		PatientName: patient.Name,
		DoctorName:  doctor.Name,
		Date:        req.Date,
		Time:        req.Time,
		Status:      models.StatusPending,
		Type:        req.Type,
		Symptoms:    req.Symptoms,
	}
	if req.Virtual {
		appt.VirtualMeeting = "https://meet.medibuddy.example/" + appt.ID[:8]
	}

	if err := s.appointments.Create(s.directory, appt); err != nil {
		return nil, err
	}

	s.notifications.AppointmentBooked(appt)
	return appt, nil
}

func validTimeSlot(slot string) bool {
	for _, s := range models.AvailableTimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// UpdateStatus applies a lifecycle transition on behalf of the acting
// user. Doctors manage their own schedule; patients may only cancel
// their own appointments.
func (s *AppointmentService) UpdateStatus(actor *models.User, id string, next models.AppointmentStatus) (*models.Appointment, error) {
	current, err := s.appointments.GetByID(id)
	if err != nil {
		return nil, err
	}
	switch actor.Role {
	case models.RoleDoctor:
		if current.DoctorID != actor.ID {
			return nil, ErrNotOwner
		}
	case models.RolePatient:
		if current.PatientID != actor.ID {
			return nil, ErrNotOwner
		}
		if next != models.StatusCancelled {
			return nil, repositories.ErrInvalidTransition
		}
	}

	updated, err := s.appointments.UpdateStatus(id, next)
	if err != nil {
		return nil, err
	}
	s.notifications.AppointmentStatusChanged(updated)
	return updated, nil
}

// TimeSlots exposes the bookable slot list together with the booking window.
func (s *AppointmentService) TimeSlots() (slots []string, minDate, maxDate string) {
	return models.AvailableTimeSlots, models.TodayPlus(1), models.TodayPlus(90)
}
