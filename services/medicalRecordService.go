package services

import (
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"MediBuddy/models"
	"MediBuddy/repositories"
)

// MedicalRecordService derives record views and appends doctor-authored
// entries.
type MedicalRecordService struct {
	directory repositories.UserRepository
	records   *repositories.MedicalRecordRepository
}

func NewMedicalRecordService(directory repositories.UserRepository, records *repositories.MedicalRecordRepository) *MedicalRecordService {
	return &MedicalRecordService{directory: directory, records: records}
}

// ForPatient returns the patient's records, newest first, optionally
// filtered by a case-insensitive token over diagnosis, symptoms and
// treatment.
func (s *MedicalRecordService) ForPatient(patientID, term string) []models.MedicalRecord {
	list := s.records.ListByPatient(patientID)
	if needle := strings.ToLower(term); needle != "" {
		filtered := list[:0]
		for _, rec := range list {
			if strings.Contains(strings.ToLower(rec.Diagnosis), needle) ||
				strings.Contains(strings.ToLower(rec.Symptoms), needle) ||
				strings.Contains(strings.ToLower(rec.Treatment), needle) {
				filtered = append(filtered, rec)
			}
		}
		list = filtered
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].Date > list[j].Date })
	return list
}

// Append records a new entry authored by the acting doctor.
func (s *MedicalRecordService) Append(doctor *models.User, rec *models.MedicalRecord) error {
	if doctor.Role != models.RoleDoctor {
		return errors.New("only doctors may author medical records")
	}
	rec.ID = uuid.New().String()
	rec.DoctorID = doctor.ID
	rec.DoctorName = doctor.Name
	if rec.Date == "" {
		rec.Date = models.TodayPlus(0)
	}
	return s.records.Append(s.directory, rec)
}
