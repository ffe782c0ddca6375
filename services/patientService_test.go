package services

import (
	"testing"

	"MediBuddy/models"
	"MediBuddy/repositories"
)

func newTestPatientService(t *testing.T) *PatientService {
	t.Helper()

	dir, err := repositories.NewUserRepository(models.SeedUsers())
	if err != nil {
		t.Fatalf("seed directory: %v", err)
	}
	// d1 sees p1 twice and p2 once; d2 sees nobody.
	seed := []models.Appointment{
		{ID: "a1", PatientID: "p1", DoctorID: "d1", Date: "2025-05-10", Time: "09:30 AM", Status: models.StatusConfirmed},
		{ID: "a2", PatientID: "p1", DoctorID: "d1", Date: "2025-04-01", Time: "10:00 AM", Status: models.StatusCompleted},
		{ID: "a3", PatientID: "p2", DoctorID: "d1", Date: "2025-05-12", Time: "11:00 AM", Status: models.StatusPending},
	}
	appts, err := repositories.NewAppointmentRepository(dir, seed)
	if err != nil {
		t.Fatalf("seed appointments: %v", err)
	}
	records, err := repositories.NewMedicalRecordRepository(dir, models.SeedMedicalRecords())
	if err != nil {
		t.Fatalf("seed records: %v", err)
	}
	medications, err := repositories.NewMedicationRepository(dir, models.SeedMedications())
	if err != nil {
		t.Fatalf("seed medications: %v", err)
	}
	return NewPatientService(dir, appts, records, medications)
}

func TestPatientsOfDoctorIsDistinct(t *testing.T) {
	svc := newTestPatientService(t)

	patients := svc.PatientsOfDoctor("d1", "")
	if len(patients) != 2 {
		t.Fatalf("got %d patients, want 2 (p1 deduplicated)", len(patients))
	}
	if patients[0].ID != "p1" || patients[1].ID != "p2" {
		t.Errorf("patients = [%s %s], want [p1 p2]", patients[0].ID, patients[1].ID)
	}
	for _, p := range patients {
		if p.Password != "" {
			t.Errorf("patient %s leaked a password", p.ID)
		}
	}
}

func TestPatientsOfDoctorEmptyWithoutAppointments(t *testing.T) {
	svc := newTestPatientService(t)
	if patients := svc.PatientsOfDoctor("d2", ""); len(patients) != 0 {
		t.Errorf("d2 patients = %d, want 0", len(patients))
	}
}

func TestPatientsOfDoctorSearch(t *testing.T) {
	svc := newTestPatientService(t)

	patients := svc.PatientsOfDoctor("d1", "amit")
	if len(patients) != 1 || patients[0].ID != "p2" {
		t.Errorf("search result = %v, want [p2]", patients)
	}
}

func TestDetailsRequiresRelationship(t *testing.T) {
	svc := newTestPatientService(t)

	if _, ok := svc.Details("d2", "p1"); ok {
		t.Error("d2 has no appointment with p1 but saw their details")
	}

	details, ok := svc.Details("d1", "p1")
	if !ok {
		t.Fatal("d1 should see p1's details")
	}
	if details.Patient.ID != "p1" {
		t.Errorf("patient = %s, want p1", details.Patient.ID)
	}
	if len(details.Appointments) != 2 {
		t.Errorf("appointments = %d, want 2", len(details.Appointments))
	}
	if len(details.Records) != 1 || details.Records[0].PatientID != "p1" {
		t.Errorf("records = %+v, want p1's record", details.Records)
	}
	if len(details.Medications) != 1 || details.Medications[0].PatientID != "p1" {
		t.Errorf("medications = %+v, want p1's medication", details.Medications)
	}
}
