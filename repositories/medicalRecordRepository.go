package repositories

import (
	"sync"

	"github.com/pkg/errors"

	"MediBuddy/models"
)

// MedicalRecordRepository holds the append-only medical record set.
type MedicalRecordRepository struct {
	mu      sync.RWMutex
	records []models.MedicalRecord
}

func NewMedicalRecordRepository(dir UserRepository, seed []models.MedicalRecord) (*MedicalRecordRepository, error) {
	r := &MedicalRecordRepository{}
	for _, rec := range seed {
		if err := checkRecordRefs(dir, &rec); err != nil {
			return nil, err
		}
		r.records = append(r.records, rec)
	}
	return r, nil
}

func checkRecordRefs(dir UserRepository, rec *models.MedicalRecord) error {
	p, ok := dir.GetByID(rec.PatientID)
	if !ok || p.Role != models.RolePatient {
		return errors.Errorf("medical record %s: patient %q not in directory", rec.ID, rec.PatientID)
	}
	d, ok := dir.GetByID(rec.DoctorID)
	if !ok || d.Role != models.RoleDoctor {
		return errors.Errorf("medical record %s: doctor %q not in directory", rec.ID, rec.DoctorID)
	}
	return nil
}

// Append adds a record authored by a doctor. Records are never updated
// or removed.
func (r *MedicalRecordRepository) Append(dir UserRepository, rec *models.MedicalRecord) error {
	if err := checkRecordRefs(dir, rec); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, *rec)
	return nil
}

func (r *MedicalRecordRepository) ListByPatient(patientID string) []models.MedicalRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.MedicalRecord
	for _, rec := range r.records {
		if rec.PatientID == patientID {
			out = append(out, rec)
		}
	}
	return out
}

func (r *MedicalRecordRepository) ListByDoctor(doctorID string) []models.MedicalRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.MedicalRecord
	for _, rec := range r.records {
		if rec.DoctorID == doctorID {
			out = append(out, rec)
		}
	}
	return out
}
