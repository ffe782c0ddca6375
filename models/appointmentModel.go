package models

import "fmt"

// AppointmentStatus is a closed enumeration of appointment lifecycle states.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Valid reports whether the status is one of the known values.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transition is allowed from s.
func (s AppointmentStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransition reports whether s may move to next. The lifecycle is
// pending -> confirmed -> completed, with cancelled reachable from any
// non-terminal state.
func (s AppointmentStatus) CanTransition(next AppointmentStatus) bool {
	if !next.Valid() || s.Terminal() {
		return false
	}
	switch next {
	case StatusConfirmed:
		return s == StatusPending
	case StatusCompleted:
		return s == StatusConfirmed
	case StatusCancelled:
		return true
	}
	return false
}

// Appointment links a patient and a doctor at a date and time slot.
// Date is an ISO calendar date ("2006-01-02"); Time is a clock slot
// ("09:30 AM") drawn from the bookable slot list.
type Appointment struct {
	ID             string            `json:"id"`
	PatientID      string            `json:"patient_id"`
	DoctorID       string            `json:"doctor_id"`
	PatientName    string            `json:"patient_name"`
	DoctorName     string            `json:"doctor_name"`
	Date           string            `json:"date"`
	Time           string            `json:"time"`
	Status         AppointmentStatus `json:"status"`
	Type           string            `json:"type"`
	Symptoms       string            `json:"symptoms"`
	Notes          string            `json:"notes,omitempty"`
	VirtualMeeting string            `json:"virtual_meeting,omitempty"`
}

// Check validates the closed-enumeration fields and required references.
func (a *Appointment) Check() error {
	if a.PatientID == "" || a.DoctorID == "" {
		return fmt.Errorf("appointment %s: missing patient or doctor reference", a.ID)
	}
	if !a.Status.Valid() {
		return fmt.Errorf("appointment %s: invalid status %q", a.ID, a.Status)
	}
	return nil
}
