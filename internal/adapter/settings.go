package adapter

import (
	"fmt"
	"os"
	"path/filepath"

	m "github.com/mouse-blink/lswbridge/internal/model"
	"gopkg.in/yaml.v3"
)

// DefaultSettingsPath is where settings are looked up when no path is given.
var DefaultSettingsPath = m.Path(filepath.Join(".lswbridge", "settings.yaml"))

// Settings holds lswbridge configuration from .lswbridge/settings.yaml.
// Command-line flags take precedence over every field.
type Settings struct {
	// Learner is the path of the learning binary.
	Learner string `yaml:"learner"`
	// Dialect is the path of an HCL dialect file.
	Dialect string `yaml:"dialect"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// LoadSettings reads the settings file at path.
// Returns nil (not an error) if the file does not exist.
func LoadSettings(path m.Path) (*Settings, error) {
	data, err := os.ReadFile(string(path))
	if os.IsNotExist(err) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", path, err)
	}

	return &s, nil
}

// LearnerOr returns the configured learner, or fallback when unset. Safe to
// call on a nil *Settings receiver.
func (s *Settings) LearnerOr(fallback string) string {
	if s == nil || s.Learner == "" {
		return fallback
	}

	return s.Learner
}

// DialectOr returns the configured dialect file, or fallback when unset.
func (s *Settings) DialectOr(fallback string) string {
	if s == nil || s.Dialect == "" {
		return fallback
	}

	return s.Dialect
}

// LogLevelOr returns the configured log level, or fallback when unset.
func (s *Settings) LogLevelOr(fallback string) string {
	if s == nil || s.LogLevel == "" {
		return fallback
	}

	return s.LogLevel
}
