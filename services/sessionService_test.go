package services

import (
	"context"
	"testing"

	"MediBuddy/models"
	"MediBuddy/repositories"
)

func newTestSessionService(t *testing.T) (*SessionService, *fakeSlot) {
	t.Helper()
	t.Setenv("SYMMETRIC_KEY", "0123456789abcdef0123456789abcdef")

	dir, err := repositories.NewUserRepository(models.SeedUsers())
	if err != nil {
		t.Fatalf("seed directory: %v", err)
	}
	slot := newFakeSlot()
	return NewSessionService(dir, slot), slot
}

func TestLoginPersistsAndRestores(t *testing.T) {
	svc, slot := newTestSessionService(t)
	ctx := context.Background()

	sess, token, err := svc.Login(ctx, "rahul@example.com", "rahul123", models.RolePatient)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if sess.User.ID != "p1" {
		t.Errorf("session user = %q, want p1", sess.User.ID)
	}
	if slot.entries[SessionSlotPrefix+sess.ID] == "" {
		t.Error("session snapshot was not persisted")
	}

	restored, err := svc.Restore(ctx, token)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if restored == nil || restored.User.ID != "p1" {
		t.Fatalf("restore = %+v, want session for p1", restored)
	}
}

func TestLoginIdempotentInEffect(t *testing.T) {
	svc, _ := newTestSessionService(t)
	ctx := context.Background()

	first, _, err := svc.Login(ctx, "gaurav@example.com", "gaurav123", models.RoleDoctor)
	if err != nil {
		t.Fatalf("first login: %v", err)
	}
	second, _, err := svc.Login(ctx, "gaurav@example.com", "gaurav123", models.RoleDoctor)
	if err != nil {
		t.Fatalf("second login: %v", err)
	}
	if first.User != second.User {
		t.Errorf("repeated login produced a different user: %+v vs %+v", first.User, second.User)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, slot := newTestSessionService(t)
	ctx := context.Background()

	// Establish a session first; a failed login must not disturb it.
	prior, _, err := svc.Login(ctx, "rahul@example.com", "rahul123", models.RolePatient)
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	cases := []struct {
		name, email, password string
		role                  models.Role
	}{
		{"unknown email", "nonexistent@x.com", "x", models.RolePatient},
		{"wrong password", "rahul@example.com", "wrong", models.RolePatient},
		{"wrong role", "rahul@example.com", "rahul123", models.RoleDoctor},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := svc.Login(ctx, tc.email, tc.password, tc.role); err != ErrInvalidCredentials {
				t.Errorf("login error = %v, want ErrInvalidCredentials", err)
			}
		})
	}

	if slot.entries[SessionSlotPrefix+prior.ID] == "" {
		t.Error("failed login disturbed the existing session")
	}
}

func TestLogoutClearsSession(t *testing.T) {
	svc, slot := newTestSessionService(t)
	ctx := context.Background()

	sess, token, err := svc.Login(ctx, "amit@example.com", "amit123", models.RolePatient)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := svc.Logout(ctx, sess.ID); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, ok := slot.entries[SessionSlotPrefix+sess.ID]; ok {
		t.Error("logout left the persisted snapshot in place")
	}

	// Simulated restart: restoring from the same token finds nothing.
	restored, err := svc.Restore(ctx, token)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if restored != nil {
		t.Errorf("restore after logout = %+v, want nil", restored)
	}
}

func TestRestoreDiscardsCorruptSnapshot(t *testing.T) {
	svc, slot := newTestSessionService(t)
	ctx := context.Background()

	sess, token, err := svc.Login(ctx, "vikram@example.com", "vikram123", models.RolePatient)
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	key := SessionSlotPrefix + sess.ID
	slot.entries[key] = "{not json"

	restored, err := svc.Restore(ctx, token)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if restored != nil {
		t.Errorf("restore of corrupt snapshot = %+v, want logged-out state", restored)
	}
	if _, ok := slot.entries[key]; ok {
		t.Error("corrupt snapshot was not discarded")
	}
}

func TestRestoreRejectsGarbageToken(t *testing.T) {
	svc, _ := newTestSessionService(t)

	restored, err := svc.Restore(context.Background(), "not-a-token")
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if restored != nil {
		t.Errorf("restore of garbage token = %+v, want nil", restored)
	}
}
