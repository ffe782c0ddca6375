package services

import (
	"sort"

	"MediBuddy/models"
	"MediBuddy/repositories"
)

// MonthVolume is the appointment count for one calendar month ("2006-01").
type MonthVolume struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// DoctorAnalytics aggregates a doctor's dashboard numbers. Everything is
// derived from the appointment record set at call time.
type DoctorAnalytics struct {
	TotalAppointments int                              `json:"total_appointments"`
	StatusCounts      map[models.AppointmentStatus]int `json:"status_counts"`
	MonthlyVolume     []MonthVolume                    `json:"monthly_volume"`
	DistinctPatients  int                              `json:"distinct_patients"`
	CompletionRate    float64                          `json:"completion_rate"`
}

type AnalyticsService struct {
	appointments *repositories.AppointmentRepository
}

func NewAnalyticsService(appointments *repositories.AppointmentRepository) *AnalyticsService {
	return &AnalyticsService{appointments: appointments}
}

// ForDoctor computes the dashboard aggregates for one doctor.
func (s *AnalyticsService) ForDoctor(doctorID string) DoctorAnalytics {
	appts := s.appointments.ListByDoctor(doctorID)

	out := DoctorAnalytics{
		TotalAppointments: len(appts),
		StatusCounts:      make(map[models.AppointmentStatus]int),
	}
	byMonth := make(map[string]int)
	patients := make(map[string]struct{})
	for _, a := range appts {
		out.StatusCounts[a.Status]++
		if len(a.Date) >= 7 {
			byMonth[a.Date[:7]]++
		}
		patients[a.PatientID] = struct{}{}
	}
	out.DistinctPatients = len(patients)

	months := make([]string, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Strings(months)
	for _, m := range months {
		out.MonthlyVolume = append(out.MonthlyVolume, MonthVolume{Month: m, Count: byMonth[m]})
	}

	if out.TotalAppointments > 0 {
		out.CompletionRate = float64(out.StatusCounts[models.StatusCompleted]) / float64(out.TotalAppointments)
	}
	return out
}
