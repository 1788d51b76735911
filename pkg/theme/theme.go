// Package theme reads and flips the Windows light/dark appearance flags.
package theme

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

const (
	// PersonalizeKeyPath is the HKEY_CURRENT_USER subkey holding the appearance flags
	PersonalizeKeyPath = `Software\Microsoft\Windows\CurrentVersion\Themes\Personalize`

	AppsUseLightThemeValue    = "AppsUseLightTheme"
	SystemUsesLightThemeValue = "SystemUsesLightTheme"
)

// ErrRegistryAccess covers a missing personalize key, denied access, and
// failed value reads or writes alike.
var ErrRegistryAccess = errors.New("registry access error")

// Key is the subset of registry.Key used to read and write appearance flags.
type Key interface {
	GetIntegerValue(name string) (val uint64, valtype uint32, err error)
	SetDWordValue(name string, value uint32) error
	Close() error
}

// KeyOpener opens the personalize key. writable requests set-value access
// in addition to query access.
type KeyOpener func(writable bool) (Key, error)

// Appearance is a snapshot of both flags. True means light.
type Appearance struct {
	AppsLight   bool
	SystemLight bool
}

// Controller toggles the appearance flags. It holds no state between calls,
// and concurrent Toggle calls may lose updates.
type Controller struct {
	slogger *slog.Logger
	open    KeyOpener
}

// New returns a Controller backed by the current user's registry.
func New(slogger *slog.Logger) *Controller {
	return NewWithOpener(slogger, openPersonalizeKey)
}

// NewWithOpener creates a Controller that reaches the personalize key through
// opener instead of the registry.
func NewWithOpener(slogger *slog.Logger, opener KeyOpener) *Controller {
	return &Controller{
		slogger: slogger.With("component", "theme_controller"),
		open:    opener,
	}
}

// Toggle negates AppsUseLightTheme and, when mirrorToSystem is set,
// SystemUsesLightTheme. Each flag is read and negated on its own, so flags
// that disagree before the call still disagree after it. A failure after the
// first write leaves that write in place.
func (c *Controller) Toggle(mirrorToSystem bool) error {
	key, err := c.open(true)
	if err != nil {
		return fmt.Errorf("%w: opening personalize key: %w", ErrRegistryAccess, err)
	}
	defer key.Close()

	appsLight, err := flip(key, AppsUseLightThemeValue)
	if err != nil {
		return err
	}

	c.slogger.Log(context.TODO(), slog.LevelInfo,
		"toggled app theme",
		"apps_light", appsLight,
	)

	if !mirrorToSystem {
		return nil
	}

	systemLight, err := flip(key, SystemUsesLightThemeValue)
	if err != nil {
		return err
	}

	c.slogger.Log(context.TODO(), slog.LevelInfo,
		"toggled system theme",
		"system_light", systemLight,
	)

	return nil
}

// Current reads both flags without modifying them.
func (c *Controller) Current() (Appearance, error) {
	key, err := c.open(false)
	if err != nil {
		return Appearance{}, fmt.Errorf("%w: opening personalize key: %w", ErrRegistryAccess, err)
	}
	defer key.Close()

	appsLight, err := readFlag(key, AppsUseLightThemeValue)
	if err != nil {
		return Appearance{}, err
	}

	systemLight, err := readFlag(key, SystemUsesLightThemeValue)
	if err != nil {
		return Appearance{}, err
	}

	return Appearance{AppsLight: appsLight, SystemLight: systemLight}, nil
}

// flip writes the negation of the named flag and returns the new value.
func flip(key Key, name string) (bool, error) {
	light, err := readFlag(key, name)
	if err != nil {
		return false, err
	}

	newValue := !light
	if err := key.SetDWordValue(name, dword(newValue)); err != nil {
		return false, fmt.Errorf("%w: writing %s: %w", ErrRegistryAccess, name, err)
	}

	return newValue, nil
}

func readFlag(key Key, name string) (bool, error) {
	val, _, err := key.GetIntegerValue(name)
	if err != nil {
		return false, fmt.Errorf("%w: reading %s: %w", ErrRegistryAccess, name, err)
	}

	// Anything nonzero counts as light; we only ever write 0 or 1.
	return val != 0, nil
}

func dword(light bool) uint32 {
	if light {
		return 1
	}
	return 0
}
