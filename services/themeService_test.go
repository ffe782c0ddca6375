package services

import (
	"context"
	"testing"
)

func TestThemeDefaultsWhenUnset(t *testing.T) {
	svc := NewThemeService(newFakeSlot(), ThemeDark)
	theme, err := svc.Get(context.Background(), "p1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if theme != ThemeDark {
		t.Errorf("theme = %q, want dark default", theme)
	}
}

func TestThemeRoundTrip(t *testing.T) {
	svc := NewThemeService(newFakeSlot(), "")
	ctx := context.Background()

	if err := svc.Set(ctx, "p1", ThemeDark); err != nil {
		t.Fatalf("set: %v", err)
	}
	theme, err := svc.Get(ctx, "p1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if theme != ThemeDark {
		t.Errorf("theme = %q, want dark", theme)
	}
}

func TestThemeRejectsUnknownValue(t *testing.T) {
	svc := NewThemeService(newFakeSlot(), "")
	if err := svc.Set(context.Background(), "p1", "sepia"); err != ErrUnknownTheme {
		t.Errorf("set error = %v, want ErrUnknownTheme", err)
	}
}

func TestThemeDiscardsCorruptStoredValue(t *testing.T) {
	slot := newFakeSlot()
	slot.entries[ThemeSlotPrefix+"p1"] = "garbage"

	svc := NewThemeService(slot, ThemeLight)
	theme, err := svc.Get(context.Background(), "p1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if theme != ThemeLight {
		t.Errorf("theme = %q, want light fallback", theme)
	}
	if _, ok := slot.entries[ThemeSlotPrefix+"p1"]; ok {
		t.Error("corrupt stored value was not discarded")
	}
}
