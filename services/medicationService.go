package services

import (
	"sort"
	"strings"

	"MediBuddy/models"
	"MediBuddy/repositories"
)

// MedicationView splits a patient's prescriptions into current and
// expired by comparing the end date against today.
type MedicationView struct {
	Active  []models.Medication `json:"active"`
	Expired []models.Medication `json:"expired"`
}

type MedicationService struct {
	medications *repositories.MedicationRepository
}

func NewMedicationService(medications *repositories.MedicationRepository) *MedicationService {
	return &MedicationService{medications: medications}
}

// ForPatient returns the patient's medications under an optional
// case-insensitive name/purpose filter, split into active and expired,
// most recently prescribed first.
func (s *MedicationService) ForPatient(patientID, term string) MedicationView {
	list := s.medications.ListByPatient(patientID)
	if needle := strings.ToLower(term); needle != "" {
		filtered := list[:0]
		for _, m := range list {
			if strings.Contains(strings.ToLower(m.Name), needle) ||
				strings.Contains(strings.ToLower(m.Purpose), needle) {
				filtered = append(filtered, m)
			}
		}
		list = filtered
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].PrescribedDate > list[j].PrescribedDate })

	today := models.TodayPlus(0)
	view := MedicationView{}
	for _, m := range list {
		if m.EndDate != "" && m.EndDate < today {
			view.Expired = append(view.Expired, m)
		} else {
			view.Active = append(view.Active, m)
		}
	}
	return view
}
