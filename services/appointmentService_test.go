package services

import (
	"testing"

	"MediBuddy/models"
	"MediBuddy/repositories"
)

func testFixtures(t *testing.T) (*AppointmentService, *repositories.NotificationRepository) {
	t.Helper()

	dir, err := repositories.NewUserRepository(models.SeedUsers())
	if err != nil {
		t.Fatalf("seed directory: %v", err)
	}
	seed := []models.Appointment{
		{
			ID: "a1", PatientID: "p1", DoctorID: "d1",
			PatientName: "Rahul Mehta", DoctorName: "Dr. Gaurav Sharma",
			Date: "2025-05-10", Time: "09:30 AM", Status: models.StatusConfirmed,
			Type: "Cardiac Checkup", Symptoms: "Chest pain",
		},
		{
			ID: "a2", PatientID: "p1", DoctorID: "d1",
			PatientName: "Rahul Mehta", DoctorName: "Dr. Gaurav Sharma",
			Date: "2025-04-01", Time: "10:00 AM", Status: models.StatusCompleted,
			Type: "Cardiac Checkup", Symptoms: "Follow-up",
		},
		{
			ID: "a3", PatientID: "p1", DoctorID: "d2",
			PatientName: "Rahul Mehta", DoctorName: "Dr. Kartik Verma",
			Date: "2025-06-20", Time: "11:00 AM", Status: models.StatusPending,
			Type: "Neurology Consultation", Symptoms: "Headaches",
		},
		{
			ID: "a4", PatientID: "p2", DoctorID: "d1",
			PatientName: "Amit Patel", DoctorName: "Dr. Gaurav Sharma",
			Date: "2025-05-10", Time: "09:00 AM", Status: models.StatusConfirmed,
			Type: "Cardiac Checkup", Symptoms: "Palpitations",
		},
		{
			ID: "a5", PatientID: "p1", DoctorID: "d1",
			PatientName: "Rahul Mehta", DoctorName: "Dr. Gaurav Sharma",
			Date: "2025-02-01", Time: "01:00 PM", Status: models.StatusCompleted,
			Type: "Cardiac Checkup", Symptoms: "Initial consult",
		},
	}
	appts, err := repositories.NewAppointmentRepository(dir, seed)
	if err != nil {
		t.Fatalf("seed appointments: %v", err)
	}
	notifRepo := repositories.NewNotificationRepository()
	notifications := NewNotificationService(dir, notifRepo, nil)
	return NewAppointmentService(dir, appts, notifications), notifRepo
}

func ids(list []models.Appointment) []string {
	out := make([]string, len(list))
	for i, a := range list {
		out[i] = a.ID
	}
	return out
}

func equalIDs(got []models.Appointment, want ...string) bool {
	if len(got) != len(want) {
		return false
	}
	for i, a := range got {
		if a.ID != want[i] {
			return false
		}
	}
	return true
}

func TestForPatientStatusFilterSortedAscending(t *testing.T) {
	svc, _ := testFixtures(t)

	view := svc.ForPatient("p1", AppointmentFilter{Status: "confirmed"})
	if !equalIDs(view.Upcoming, "a1") {
		t.Errorf("upcoming = %v, want [a1]", ids(view.Upcoming))
	}
	if len(view.Past) != 0 {
		t.Errorf("past = %v, want empty", ids(view.Past))
	}
}

func TestForPatientSplitsAndOrders(t *testing.T) {
	svc, _ := testFixtures(t)

	view := svc.ForPatient("p1", AppointmentFilter{})
	// Non-completed ascending by date.
	if !equalIDs(view.Upcoming, "a1", "a3") {
		t.Errorf("upcoming = %v, want [a1 a3]", ids(view.Upcoming))
	}
	// Completed descending by date.
	if !equalIDs(view.Past, "a2", "a5") {
		t.Errorf("past = %v, want [a2 a5]", ids(view.Past))
	}
}

func TestForPatientSearchIsCaseInsensitive(t *testing.T) {
	svc, _ := testFixtures(t)

	view := svc.ForPatient("p1", AppointmentFilter{Search: "NEUROLOGY"})
	if !equalIDs(view.Upcoming, "a3") {
		t.Errorf("upcoming = %v, want [a3]", ids(view.Upcoming))
	}

	// Patients search by doctor name.
	view = svc.ForPatient("p1", AppointmentFilter{Search: "verma"})
	if !equalIDs(view.Upcoming, "a3") {
		t.Errorf("upcoming = %v, want [a3]", ids(view.Upcoming))
	}
}

func TestForDoctorGroupsByDate(t *testing.T) {
	svc, _ := testFixtures(t)

	days := svc.ForDoctor("d1", AppointmentFilter{})
	if len(days) != 3 {
		t.Fatalf("got %d day groups, want 3", len(days))
	}
	wantDates := []string{"2025-02-01", "2025-04-01", "2025-05-10"}
	for i, d := range days {
		if d.Date != wantDates[i] {
			t.Errorf("day[%d] = %s, want %s", i, d.Date, wantDates[i])
		}
	}
	// Same-day appointments ordered by time slot.
	if !equalIDs(days[2].Appointments, "a4", "a1") {
		t.Errorf("2025-05-10 = %v, want [a4 a1]", ids(days[2].Appointments))
	}
}

func TestBookCreatesPendingAndNotifies(t *testing.T) {
	svc, notifRepo := testFixtures(t)

	patient := models.User{ID: "p3", Name: "Vikram Singh", Role: models.RolePatient}
	appt, err := svc.Book(&patient, BookingRequest{
		DoctorID: "d4",
		Date:     models.TodayPlus(5),
		Time:     "10:00 AM",
		Type:     "Pediatric Consultation",
		Symptoms: "Routine checkup",
		Virtual:  true,
	})
	if err != nil {
		t.Fatalf("book: %v", err)
	}
	if appt.Status != models.StatusPending {
		t.Errorf("status = %s, want pending", appt.Status)
	}
	if appt.DoctorName != "Dr. Divyansh Kumar" {
		t.Errorf("doctor name = %q", appt.DoctorName)
	}
	if appt.VirtualMeeting == "" {
		t.Error("virtual booking has no meeting link")
	}
	if n := notifRepo.UnreadCount("d4"); n != 1 {
		t.Errorf("doctor unread notifications = %d, want 1", n)
	}
	if n := notifRepo.UnreadCount("p3"); n != 1 {
		t.Errorf("patient unread notifications = %d, want 1", n)
	}
}

func TestBookValidation(t *testing.T) {
	svc, _ := testFixtures(t)
	patient := models.User{ID: "p3", Name: "Vikram Singh", Role: models.RolePatient}

	tests := []struct {
		name string
		req  BookingRequest
		want error
	}{
		{"unknown doctor", BookingRequest{DoctorID: "nope", Date: models.TodayPlus(5), Time: "10:00 AM"}, ErrDoctorNotFound},
		{"patient id as doctor", BookingRequest{DoctorID: "p1", Date: models.TodayPlus(5), Time: "10:00 AM"}, ErrDoctorNotFound},
		{"date today", BookingRequest{DoctorID: "d1", Date: models.TodayPlus(0), Time: "10:00 AM"}, ErrDateOutOfRange},
		{"date too far", BookingRequest{DoctorID: "d1", Date: models.TodayPlus(91), Time: "10:00 AM"}, ErrDateOutOfRange},
		{"off-grid time", BookingRequest{DoctorID: "d1", Date: models.TodayPlus(5), Time: "09:15 AM"}, ErrInvalidTimeSlot},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Book(&patient, tt.req); err != tt.want {
				t.Errorf("Book() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestUpdateStatusLifecycle(t *testing.T) {
	svc, _ := testFixtures(t)
	doctor := models.User{ID: "d2", Name: "Dr. Kartik Verma", Role: models.RoleDoctor}

	appt, err := svc.UpdateStatus(&doctor, "a3", models.StatusConfirmed)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if appt.Status != models.StatusConfirmed {
		t.Errorf("status = %s, want confirmed", appt.Status)
	}

	if _, err := svc.UpdateStatus(&doctor, "a3", models.StatusCompleted); err != nil {
		t.Fatalf("complete: %v", err)
	}
	// Completed is terminal.
	if _, err := svc.UpdateStatus(&doctor, "a3", models.StatusCancelled); err == nil {
		t.Error("transition out of completed was allowed")
	}
}

func TestUpdateStatusOwnership(t *testing.T) {
	svc, _ := testFixtures(t)

	otherDoctor := models.User{ID: "d3", Role: models.RoleDoctor}
	if _, err := svc.UpdateStatus(&otherDoctor, "a1", models.StatusCompleted); err != ErrNotOwner {
		t.Errorf("foreign doctor error = %v, want ErrNotOwner", err)
	}

	patient := models.User{ID: "p1", Role: models.RolePatient}
	if _, err := svc.UpdateStatus(&patient, "a1", models.StatusCompleted); err != repositories.ErrInvalidTransition {
		t.Errorf("patient completing error = %v, want ErrInvalidTransition", err)
	}
	if _, err := svc.UpdateStatus(&patient, "a1", models.StatusCancelled); err != nil {
		t.Errorf("patient cancelling own appointment: %v", err)
	}

	otherPatient := models.User{ID: "p2", Role: models.RolePatient}
	if _, err := svc.UpdateStatus(&otherPatient, "a3", models.StatusCancelled); err != ErrNotOwner {
		t.Errorf("foreign patient error = %v, want ErrNotOwner", err)
	}
}
