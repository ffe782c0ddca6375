package utils

import (
	"log"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// ValidateLoginPayload validates the credential tuple shape. Whether the
// tuple matches a directory entry is the session store's concern.
func ValidateLoginPayload(email, password, role string) error {
	err := validation.Errors{
		"email":    validation.Validate(email, validation.Required, is.Email),
		"password": validation.Validate(password, validation.Required),
		"role":     validation.Validate(role, validation.Required, validation.In("doctor", "patient")),
	}.Filter()
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidateBookingPayload validates the booking form fields. Date-window
// and slot membership checks live in the appointment service.
func ValidateBookingPayload(doctorID, date, timeSlot, appointmentType, symptoms string) error {
	err := validation.Errors{
		"doctor_id": validation.Validate(doctorID, validation.Required),
		"date":      validation.Validate(date, validation.Required, validation.Date("2006-01-02")),
		"time":      validation.Validate(timeSlot, validation.Required),
		"type":      validation.Validate(appointmentType, validation.Required, validation.Length(3, 100)),
		"symptoms":  validation.Validate(symptoms, validation.Length(0, 500)),
	}.Filter()
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidateMessagePayload validates a chat message before it is stored.
func ValidateMessagePayload(toID, body string) error {
	err := validation.Errors{
		"to_id": validation.Validate(toID, validation.Required),
		"body":  validation.Validate(body, validation.Required, validation.Length(1, 2000)),
	}.Filter()
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidateSettingsPayload validates the editable profile fields.
func ValidateSettingsPayload(name, email, phone string) error {
	err := validation.Errors{
		"name":  validation.Validate(name, validation.Required, validation.Length(3, 100)),
		"email": validation.Validate(email, validation.Required, is.Email),
		"phone": validation.Validate(phone, validation.Length(0, 30)),
	}.Filter()
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}
