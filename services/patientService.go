package services

import (
	"strings"

	"MediBuddy/models"
	"MediBuddy/repositories"
)

// PatientDetails is the doctor's view of one patient: the directory
// entry joined with the patient's history.
type PatientDetails struct {
	Patient      models.User            `json:"patient"`
	Appointments []models.Appointment   `json:"appointments"`
	Records      []models.MedicalRecord `json:"records"`
	Medications  []models.Medication    `json:"medications"`
}

// PatientService derives the doctor-side patient views. The doctor ->
// patients relationship is not stored anywhere: it is recomputed from
// the appointment record set on every call.
type PatientService struct {
	directory    repositories.UserRepository
	appointments *repositories.AppointmentRepository
	records      *repositories.MedicalRecordRepository
	medications  *repositories.MedicationRepository
}

func NewPatientService(directory repositories.UserRepository, appointments *repositories.AppointmentRepository, records *repositories.MedicalRecordRepository, medications *repositories.MedicationRepository) *PatientService {
	return &PatientService{directory: directory, appointments: appointments, records: records, medications: medications}
}

// PatientsOfDoctor returns the distinct patients referenced by the
// doctor's appointments, materialized against the directory. A patient
// with several appointments appears once. The optional term filters by
// name, case-insensitively.
func (s *PatientService) PatientsOfDoctor(doctorID, term string) []models.User {
	ids := make(map[string]struct{})
	for _, a := range s.appointments.ListByDoctor(doctorID) {
		ids[a.PatientID] = struct{}{}
	}

	patients := repositories.MaterializeByID(s.directory, ids)
	out := patients[:0]
	needle := strings.ToLower(term)
	for _, p := range patients {
		if p.Role != models.RolePatient {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(p.Name), needle) {
			continue
		}
		out = append(out, p.Public())
	}
	return out
}

// Details joins one patient's directory entry with their record sets,
// provided the doctor actually has an appointment relationship with them.
func (s *PatientService) Details(doctorID, patientID string) (*PatientDetails, bool) {
	related := false
	appts := s.appointments.ListByDoctor(doctorID)
	for _, a := range appts {
		if a.PatientID == patientID {
			related = true
			break
		}
	}
	if !related {
		return nil, false
	}
	patient, ok := s.directory.GetByID(patientID)
	if !ok || patient.Role != models.RolePatient {
		return nil, false
	}

	var own []models.Appointment
	for _, a := range appts {
		if a.PatientID == patientID {
			own = append(own, a)
		}
	}
	sortByDateTime(own, true)

	return &PatientDetails{
		Patient:      patient.Public(),
		Appointments: own,
		Records:      s.records.ListByPatient(patientID),
		Medications:  s.medications.ListByPatient(patientID),
	}, true
}
