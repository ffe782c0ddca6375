package repositories

import (
	"sync"

	"github.com/pkg/errors"

	"MediBuddy/models"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvalidTransition   = errors.New("invalid status transition")
)

// AppointmentRepository holds the mutable appointment record set.
// Appointments are created by booking and change status over their
// lifecycle; they are never deleted.
type AppointmentRepository struct {
	mu      sync.RWMutex
	byID    map[string]*models.Appointment
	ordered []*models.Appointment
}

// NewAppointmentRepository seeds the record set, validating each entry
// against the directory so every appointment references a real patient
// and a real doctor.
func NewAppointmentRepository(dir UserRepository, seed []models.Appointment) (*AppointmentRepository, error) {
	r := &AppointmentRepository{byID: make(map[string]*models.Appointment, len(seed))}
	for i := range seed {
		a := seed[i]
		if err := checkAppointmentRefs(dir, &a); err != nil {
			return nil, err
		}
		r.byID[a.ID] = &a
		r.ordered = append(r.ordered, &a)
	}
	return r, nil
}

func checkAppointmentRefs(dir UserRepository, a *models.Appointment) error {
	if err := a.Check(); err != nil {
		return err
	}
	p, ok := dir.GetByID(a.PatientID)
	if !ok || p.Role != models.RolePatient {
		return errors.Errorf("appointment %s: patient %q not in directory", a.ID, a.PatientID)
	}
	d, ok := dir.GetByID(a.DoctorID)
	if !ok || d.Role != models.RoleDoctor {
		return errors.Errorf("appointment %s: doctor %q not in directory", a.ID, a.DoctorID)
	}
	return nil
}

// Create appends a booked appointment after reference validation.
func (r *AppointmentRepository) Create(dir UserRepository, a *models.Appointment) error {
	if err := checkAppointmentRefs(dir, a); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.byID[a.ID]; dup {
		return errors.Errorf("appointment %s already exists", a.ID)
	}
	stored := *a
	r.byID[stored.ID] = &stored
	r.ordered = append(r.ordered, &stored)
	return nil
}

func (r *AppointmentRepository) GetByID(id string) (*models.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.byID[id]
	if !ok {
		return nil, ErrAppointmentNotFound
	}
	cp := *a
	return &cp, nil
}

// UpdateStatus applies a lifecycle transition, rejecting moves the closed
// enumeration does not allow.
func (r *AppointmentRepository) UpdateStatus(id string, next models.AppointmentStatus) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.byID[id]
	if !ok {
		return nil, ErrAppointmentNotFound
	}
	if !a.Status.CanTransition(next) {
		return nil, errors.Wrapf(ErrInvalidTransition, "%s -> %s", a.Status, next)
	}
	a.Status = next
	cp := *a
	return &cp, nil
}

// ListByPatient returns copies of the patient's appointments in insertion order.
func (r *AppointmentRepository) ListByPatient(patientID string) []models.Appointment {
	return r.list(func(a *models.Appointment) bool { return a.PatientID == patientID })
}

// ListByDoctor returns copies of the doctor's appointments in insertion order.
func (r *AppointmentRepository) ListByDoctor(doctorID string) []models.Appointment {
	return r.list(func(a *models.Appointment) bool { return a.DoctorID == doctorID })
}

func (r *AppointmentRepository) list(keep func(*models.Appointment) bool) []models.Appointment {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Appointment
	for _, a := range r.ordered {
		if keep(a) {
			out = append(out, *a)
		}
	}
	return out
}
