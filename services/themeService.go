package services

import (
	"context"

	"github.com/pkg/errors"
)

const (
	// ThemeSlotPrefix names the durable key holding a user's theme
	// preference, mirroring the portal's storage key.
	ThemeSlotPrefix = "medibuddy_theme:"

	ThemeLight = "light"
	ThemeDark  = "dark"
)

var ErrUnknownTheme = errors.New("theme must be \"light\" or \"dark\"")

// ThemeService stores the two-valued theme preference in a durable slot,
// falling back to the configured default when none is stored.
type ThemeService struct {
	slot       SessionSlot
	defaultVal string
}

func NewThemeService(slot SessionSlot, defaultTheme string) *ThemeService {
	if defaultTheme != ThemeDark {
		defaultTheme = ThemeLight
	}
	return &ThemeService{slot: slot, defaultVal: defaultTheme}
}

// Get returns the stored preference or the default. A stored value that
// is neither light nor dark is discarded and the default returned.
func (s *ThemeService) Get(ctx context.Context, userID string) (string, error) {
	val, err := s.slot.Get(ctx, ThemeSlotPrefix+userID)
	if err != nil {
		return "", errors.Wrap(err, "read theme preference")
	}
	if val != ThemeLight && val != ThemeDark {
		if val != "" {
			_ = s.slot.Delete(ctx, ThemeSlotPrefix+userID)
		}
		return s.defaultVal, nil
	}
	return val, nil
}

// Set stores the preference. The slot never expires; a toggle overwrites it.
func (s *ThemeService) Set(ctx context.Context, userID, theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return ErrUnknownTheme
	}
	if err := s.slot.Set(ctx, ThemeSlotPrefix+userID, theme, 0); err != nil {
		return errors.Wrap(err, "persist theme preference")
	}
	return nil
}
