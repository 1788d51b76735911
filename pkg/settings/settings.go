// Package settings persists the single user preference YinYang has: whether
// toggling the app theme should also toggle the system theme.
package settings

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

const (
	// AppDirName is the directory created under the user config dir
	AppDirName = "YinYang"
	// FileName is the preference file within AppDirName
	FileName = "config.txt"

	trueValue  = "true"
	falseValue = "false"
)

var (
	// ErrConfigIO is returned when the config directory or file cannot be created, written, or read.
	ErrConfigIO = errors.New("config io error")
	// ErrConfigParse is returned when the config file does not contain a boolean literal.
	ErrConfigParse = errors.New("config parse error")
)

// Store reads and writes the mirror-to-system preference. It performs no
// locking; concurrent writers race and the last one wins.
type Store struct {
	slogger *slog.Logger
	dir     string
}

// New returns a Store rooted at baseDir/YinYang. An empty baseDir means the
// OS per-user configuration directory.
func New(slogger *slog.Logger, baseDir string) (*Store, error) {
	if baseDir == "" {
		var err error
		baseDir, err = DefaultBaseDir()
		if err != nil {
			return nil, err
		}
	}

	return &Store{
		slogger: slogger.With("component", "settings"),
		dir:     filepath.Join(baseDir, AppDirName),
	}, nil
}

// DefaultBaseDir returns the OS per-user configuration directory.
func DefaultBaseDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("%w: locating user config dir: %w", ErrConfigIO, err)
	}
	return dir, nil
}

// Dir returns the application's config directory.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the full path of the preference file.
func (s *Store) Path() string {
	return filepath.Join(s.dir, FileName)
}

// ReadPreference returns the stored preference. If no preference file exists
// yet, the default (false) is written first.
func (s *Store) ReadPreference() (bool, error) {
	if _, err := os.Stat(s.Path()); errors.Is(err, os.ErrNotExist) {
		s.slogger.Log(context.TODO(), slog.LevelInfo,
			"no preference file found, writing default",
			"path", s.Path(),
		)
		if err := s.WritePreference(false); err != nil {
			return false, err
		}
	}

	raw, err := os.ReadFile(s.Path())
	if err != nil {
		return false, fmt.Errorf("%w: reading %s: %w", ErrConfigIO, s.Path(), err)
	}

	return parse(string(raw))
}

// WritePreference overwrites the stored preference, creating the config
// directory if needed.
func (s *Store) WritePreference(value bool) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("%w: creating directory %s: %w", ErrConfigIO, s.dir, err)
	}

	if err := os.WriteFile(s.Path(), []byte(format(value)), 0644); err != nil {
		return fmt.Errorf("%w: writing %s: %w", ErrConfigIO, s.Path(), err)
	}

	s.slogger.Log(context.TODO(), slog.LevelDebug,
		"wrote preference",
		"mirror_to_system", value,
	)

	return nil
}

func format(value bool) string {
	if value {
		return trueValue
	}
	return falseValue
}

// parse accepts only the exact literals true and false, after trimming
// surrounding whitespace.
func parse(raw string) (bool, error) {
	switch strings.TrimSpace(raw) {
	case trueValue:
		return true, nil
	case falseValue:
		return false, nil
	default:
		return false, fmt.Errorf("%w: unexpected content %q", ErrConfigParse, raw)
	}
}
