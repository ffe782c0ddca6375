package models

import "time"

// The demo dataset the portal ships with. The directory entries are
// immutable reference data; appointments seed the mutable record set.

// SeedUsers returns the static user directory.
func SeedUsers() []User {
	return []User{
		{
			ID: "d1", Name: "Dr. Gaurav Sharma", Email: "gaurav@example.com",
			Password: "gaurav123", Role: RoleDoctor,
			ProfilePicture: "https://images.pexels.com/photos/5452201/pexels-photo-5452201.jpeg",
			Phone:          "+91 98765 43210",
			Address:        "Apollo Hospitals, Sector 26, Noida, UP - 201301",
			Doctor: &DoctorProfile{
				Specialty:      "Cardiologist",
				Experience:     "12 years",
				Qualifications: "MD, DM Cardiology",
				Bio:            "Senior Cardiologist at Apollo Hospitals. Specialized in interventional cardiology and preventive cardiac care.",
				Rating:         4.8,
				ReviewCount:    127,
			},
		},
		{
			ID: "d2", Name: "Dr. Kartik Verma", Email: "kartik@example.com",
			Password: "kartik123", Role: RoleDoctor,
			ProfilePicture: "https://images.pexels.com/photos/5452290/pexels-photo-5452290.jpeg",
			Phone:          "+91 98765 43211",
			Address:        "Max Super Speciality Hospital, Saket, New Delhi - 110017",
			Doctor: &DoctorProfile{
				Specialty:      "Neurologist",
				Experience:     "10 years",
				Qualifications: "MD, DM Neurology",
				Bio:            "Consultant Neurologist at Max Healthcare. Expert in stroke management and neurodegenerative disorders.",
				Rating:         4.9,
				ReviewCount:    93,
			},
		},
		{
			ID: "d3", Name: "Dr. Kulmeet Singh", Email: "kulmeet@example.com",
			Password: "kulmeet123", Role: RoleDoctor,
			ProfilePicture: "https://images.pexels.com/photos/5452223/pexels-photo-5452223.jpeg",
			Phone:          "+91 98765 43212",
			Address:        "Fortis Hospital, Gurugram, Haryana - 122002",
			Doctor: &DoctorProfile{
				Specialty:      "Orthopedic Surgeon",
				Experience:     "15 years",
				Qualifications: "MS Ortho, Fellowship in Joint Replacement",
				Bio:            "Director of Orthopedics at Fortis Hospital. Specializes in joint replacement and sports medicine.",
				Rating:         4.7,
				ReviewCount:    89,
			},
		},
		{
			ID: "d4", Name: "Dr. Divyansh Kumar", Email: "divyansh@example.com",
			Password: "divyansh123", Role: RoleDoctor,
			ProfilePicture: "https://images.pexels.com/photos/5452238/pexels-photo-5452238.jpeg",
			Phone:          "+91 98765 43213",
			Address:        "Medanta - The Medicity, Gurugram, Haryana - 122001",
			Doctor: &DoctorProfile{
				Specialty:      "Pediatrician",
				Experience:     "8 years",
				Qualifications: "MD Pediatrics, Fellowship in Neonatology",
				Bio:            "Consultant Pediatrician at Medanta Hospital. Expert in pediatric care and child development.",
				Rating:         4.9,
				ReviewCount:    156,
			},
		},
		{
			ID: "p1", Name: "Rahul Mehta", Email: "rahul@example.com",
			Password: "rahul123", Role: RolePatient,
			ProfilePicture: "https://images.pexels.com/photos/1270076/pexels-photo-1270076.jpeg",
			Address:        "C-42, Vasant Kunj, New Delhi - 110070",
			Patient: &PatientProfile{
				Age:              35,
				BloodType:        "O+",
				Allergies:        []string{"Penicillin", "Peanuts"},
				MedicalHistory:   "Hypertension, Asthma",
				EmergencyContact: "Priya Mehta (Wife) - +91 98765 43214",
			},
		},
		{
			ID: "p2", Name: "Amit Patel", Email: "amit@example.com",
			Password: "amit123", Role: RolePatient,
			ProfilePicture: "https://images.pexels.com/photos/2182970/pexels-photo-2182970.jpeg",
			Address:        "204, Shivalik Apartments, Ahmedabad, Gujarat - 380015",
			Patient: &PatientProfile{
				Age:              42,
				BloodType:        "A-",
				Allergies:        []string{"Sulfa drugs", "Shellfish"},
				MedicalHistory:   "Diabetes Type 2, Migraines",
				EmergencyContact: "Neha Patel (Wife) - +91 98765 43215",
			},
		},
		{
			ID: "p3", Name: "Vikram Singh", Email: "vikram@example.com",
			Password: "vikram123", Role: RolePatient,
			ProfilePicture: "https://images.pexels.com/photos/834863/pexels-photo-834863.jpeg",
			Address:        "E-15, Gomti Nagar, Lucknow, UP - 226010",
			Patient: &PatientProfile{
				Age:              28,
				BloodType:        "B+",
				Allergies:        []string{"Latex", "Dairy"},
				MedicalHistory:   "Sports injuries, Seasonal allergies",
				EmergencyContact: "Rajesh Singh (Father) - +91 98765 43216",
			},
		},
	}
}

// SeedAppointments returns the initial appointment record set.
func SeedAppointments() []Appointment {
	return []Appointment{
		{
			ID: "a1", PatientID: "p1", DoctorID: "d1",
			PatientName: "Rahul Mehta", DoctorName: "Dr. Gaurav Sharma",
			Date: "2025-05-10", Time: "09:30 AM", Status: StatusConfirmed,
			Type:           "Cardiac Checkup",
			Symptoms:       "Chest pain, shortness of breath",
			Notes:          "Patient reports occasional chest pain after physical activity.",
			VirtualMeeting: "https://meet.example.com/dr-sharma-123",
		},
		{
			ID: "a2", PatientID: "p2", DoctorID: "d2",
			PatientName: "Amit Patel", DoctorName: "Dr. Kartik Verma",
			Date: "2025-05-15", Time: "11:00 AM", Status: StatusPending,
			Type:           "Neurology Consultation",
			Symptoms:       "Frequent headaches, dizziness",
			Notes:          "Follow-up for migraine treatment",
			VirtualMeeting: "https://meet.example.com/dr-verma-456",
		},
		{
			ID: "a3", PatientID: "p3", DoctorID: "d3",
			PatientName: "Vikram Singh", DoctorName: "Dr. Kulmeet Singh",
			Date: "2025-05-12", Time: "02:15 PM", Status: StatusConfirmed,
			Type:           "Orthopedic Follow-up",
			Symptoms:       "Knee pain post physiotherapy",
			Notes:          "Review of rehabilitation progress",
			VirtualMeeting: "https://meet.example.com/dr-singh-789",
		},
	}
}

// SeedMedicalRecords returns the initial medical record set.
func SeedMedicalRecords() []MedicalRecord {
	return []MedicalRecord{
		{
			ID: "r1", PatientID: "p1", DoctorID: "d1", DoctorName: "Dr. Gaurav Sharma",
			Date:      "2025-01-15",
			Diagnosis: "Hypertension Stage 1",
			Symptoms:  "Elevated blood pressure, occasional headaches",
			Treatment: "Prescribed Amlodipine 5mg daily",
			Notes:     "Patient advised to monitor BP daily and maintain log",
			FollowUp:  "1 month",
		},
		{
			ID: "r2", PatientID: "p2", DoctorID: "d2", DoctorName: "Dr. Kartik Verma",
			Date:      "2025-02-10",
			Diagnosis: "Chronic Migraine",
			Symptoms:  "Severe headaches with aura",
			Treatment: "Started on Propranolol 40mg",
			Notes:     "Recommended lifestyle modifications and stress management",
			FollowUp:  "2 weeks",
		},
		{
			ID: "r3", PatientID: "p3", DoctorID: "d3", DoctorName: "Dr. Kulmeet Singh",
			Date:      "2025-03-01",
			Diagnosis: "Meniscal Tear",
			Symptoms:  "Right knee pain and swelling",
			Treatment: "Prescribed physiotherapy and knee brace",
			Notes:     "MRI shows grade 2 tear, conservative management planned",
			FollowUp:  "2 weeks",
		},
	}
}

// SeedMedications returns the initial medication record set.
func SeedMedications() []Medication {
	return []Medication{
		{
			ID: "m1", PatientID: "p1", Name: "Amlodipine", Dosage: "5mg",
			Frequency:      "Once daily",
			PrescribedBy:   "Dr. Gaurav Sharma",
			PrescribedDate: "2025-01-15", EndDate: "2025-07-15",
			Instructions: "Take after breakfast",
			Purpose:      "Blood pressure control",
			SideEffects:  "Ankle swelling, headache",
		},
		{
			ID: "m2", PatientID: "p2", Name: "Propranolol", Dosage: "40mg",
			Frequency:      "Twice daily",
			PrescribedBy:   "Dr. Kartik Verma",
			PrescribedDate: "2025-02-10", EndDate: "2025-08-10",
			Instructions: "Take with meals",
			Purpose:      "Migraine prevention",
			SideEffects:  "Fatigue, cold hands",
		},
		{
			ID: "m3", PatientID: "p3", Name: "Aceclofenac", Dosage: "100mg",
			Frequency:      "Twice daily",
			PrescribedBy:   "Dr. Kulmeet Singh",
			PrescribedDate: "2025-03-01", EndDate: "2025-03-15",
			Instructions: "Take after food",
			Purpose:      "Pain and inflammation relief",
			SideEffects:  "Gastric irritation",
		},
	}
}

// AvailableTimeSlots lists the bookable clock slots for any day.
var AvailableTimeSlots = []string{
	"09:00 AM", "09:30 AM", "10:00 AM", "10:30 AM", "11:00 AM", "11:30 AM",
	"01:00 PM", "01:30 PM", "02:00 PM", "02:30 PM", "03:00 PM", "03:30 PM",
	"04:00 PM", "04:30 PM",
}

// TodayPlus returns the ISO date n days from now.
func TodayPlus(n int) string {
	return time.Now().AddDate(0, 0, n).Format("2006-01-02")
}
