package models

import "testing"

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		from, to AppointmentStatus
		want     bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusPending, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusPending, AppointmentStatus("rescheduled"), false},
	}
	for _, tt := range tests {
		if got := tt.from.CanTransition(tt.to); got != tt.want {
			t.Errorf("CanTransition(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestSeedDataSatisfiesInvariants(t *testing.T) {
	users := SeedUsers()
	byID := make(map[string]User, len(users))
	for _, u := range users {
		if err := u.CheckProfile(); err != nil {
			t.Errorf("seed user %s: %v", u.ID, err)
		}
		byID[u.ID] = u
	}

	for _, a := range SeedAppointments() {
		if err := a.Check(); err != nil {
			t.Errorf("seed appointment: %v", err)
		}
		if byID[a.PatientID].Role != RolePatient {
			t.Errorf("appointment %s references non-patient %q", a.ID, a.PatientID)
		}
		if byID[a.DoctorID].Role != RoleDoctor {
			t.Errorf("appointment %s references non-doctor %q", a.ID, a.DoctorID)
		}
	}
	for _, r := range SeedMedicalRecords() {
		if byID[r.PatientID].Role != RolePatient || byID[r.DoctorID].Role != RoleDoctor {
			t.Errorf("medical record %s has dangling references", r.ID)
		}
	}
	for _, m := range SeedMedications() {
		if byID[m.PatientID].Role != RolePatient {
			t.Errorf("medication %s has a dangling patient reference", m.ID)
		}
	}
}
