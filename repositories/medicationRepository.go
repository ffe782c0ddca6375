package repositories

import (
	"sync"

	"github.com/pkg/errors"

	"MediBuddy/models"
)

// MedicationRepository holds the append-only medication record set.
type MedicationRepository struct {
	mu          sync.RWMutex
	medications []models.Medication
}

func NewMedicationRepository(dir UserRepository, seed []models.Medication) (*MedicationRepository, error) {
	r := &MedicationRepository{}
	for _, m := range seed {
		if err := checkMedicationRefs(dir, &m); err != nil {
			return nil, err
		}
		r.medications = append(r.medications, m)
	}
	return r, nil
}

func checkMedicationRefs(dir UserRepository, m *models.Medication) error {
	p, ok := dir.GetByID(m.PatientID)
	if !ok || p.Role != models.RolePatient {
		return errors.Errorf("medication %s: patient %q not in directory", m.ID, m.PatientID)
	}
	return nil
}

// Append adds a prescription. Medications are never updated or removed.
func (r *MedicationRepository) Append(dir UserRepository, m *models.Medication) error {
	if err := checkMedicationRefs(dir, m); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.medications = append(r.medications, *m)
	return nil
}

func (r *MedicationRepository) ListByPatient(patientID string) []models.Medication {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Medication
	for _, m := range r.medications {
		if m.PatientID == patientID {
			out = append(out, m)
		}
	}
	return out
}
