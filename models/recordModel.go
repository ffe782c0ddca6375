package models

// MedicalRecord is an append-only entry authored by a doctor for a patient.
type MedicalRecord struct {
	ID         string `json:"id"`
	PatientID  string `json:"patient_id"`
	DoctorID   string `json:"doctor_id"`
	DoctorName string `json:"doctor_name"`
	Date       string `json:"date"`
	Diagnosis  string `json:"diagnosis"`
	Symptoms   string `json:"symptoms"`
	Treatment  string `json:"treatment"`
	Notes      string `json:"notes,omitempty"`
	FollowUp   string `json:"follow_up"`
}

// Medication is an append-only prescription entry for a patient.
type Medication struct {
	ID             string `json:"id"`
	PatientID      string `json:"patient_id"`
	Name           string `json:"name"`
	Dosage         string `json:"dosage"`
	Frequency      string `json:"frequency"`
	PrescribedBy   string `json:"prescribed_by"`
	PrescribedDate string `json:"prescribed_date"`
	EndDate        string `json:"end_date"`
	Instructions   string `json:"instructions"`
	Purpose        string `json:"purpose"`
	SideEffects    string `json:"side_effects"`
}
