package models

import (
	"errors"
	"fmt"
)

// Role determines which dashboard and data a user may access.
type Role string

const (
	RoleDoctor  Role = "doctor"
	RolePatient Role = "patient"
)

// ParseRole converts a wire value into a Role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleDoctor, RolePatient:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleDoctor || r == RolePatient
}

// DoctorProfile holds the doctor-specific attributes of a user.
type DoctorProfile struct {
	Specialty      string  `json:"specialty"`
	Experience     string  `json:"experience"`
	Qualifications string  `json:"qualifications"`
	Bio            string  `json:"bio"`
	Rating         float64 `json:"rating"`
	ReviewCount    int     `json:"review_count"`
}

// PatientProfile holds the patient-specific attributes of a user.
type PatientProfile struct {
	Age              int      `json:"age"`
	BloodType        string   `json:"blood_type"`
	Allergies        []string `json:"allergies"`
	MedicalHistory   string   `json:"medical_history"`
	EmergencyContact string   `json:"emergency_contact"`
}

// User is a directory entry. Exactly one of Doctor/Patient is set,
// matching Role; the directory enforces this on seed.
type User struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Password       string          `json:"password"`
	Role           Role            `json:"role"`
	ProfilePicture string          `json:"profile_picture,omitempty"`
	Phone          string          `json:"phone,omitempty"`
	Address        string          `json:"address,omitempty"`
	Doctor         *DoctorProfile  `json:"doctor,omitempty"`
	Patient        *PatientProfile `json:"patient,omitempty"`
}

// CheckProfile verifies that the role tag and the profile payload agree.
func (u *User) CheckProfile() error {
	if !u.Role.Valid() {
		return fmt.Errorf("user %s: invalid role %q", u.ID, u.Role)
	}
	switch u.Role {
	case RoleDoctor:
		if u.Doctor == nil || u.Patient != nil {
			return errors.New("user " + u.ID + ": doctor role requires a doctor profile only")
		}
	case RolePatient:
		if u.Patient == nil || u.Doctor != nil {
			return errors.New("user " + u.ID + ": patient role requires a patient profile only")
		}
	}
	return nil
}

// Public returns a copy safe to hand to clients: the cleartext password is
// blanked. The directory itself keeps the full record for credential checks.
func (u User) Public() User {
	u.Password = ""
	return u
}

// Session is the single active authenticated identity for a client.
// It is serialized as-is into the durable session slot.
type Session struct {
	ID   string `json:"id"`
	User User   `json:"user"`
}
