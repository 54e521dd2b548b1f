// Package config loads datesift settings from a TOML file and the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

const appName = "datesift"

// Environment variables consulted by Load.
const (
	EnvConfig   = "DATESIFT_CONFIG"
	EnvTimezone = "DATESIFT_TZ"
	EnvStrict   = "DATESIFT_STRICT"
	EnvMethod   = "DATESIFT_METHOD"
	EnvFormat   = "DATESIFT_FORMAT"
	EnvJobs     = "DATESIFT_JOBS"
	EnvLocation = "DATESIFT_LOCATION"
)

// File mirrors the on-disk TOML layout. Pointer fields distinguish an unset
// key from its zero value.
type File struct {
	Timezone *string `toml:"tz"`
	Strict   *bool   `toml:"strict"`
	Method   *string `toml:"method"`
	Format   *string `toml:"format"`
	Jobs     *int    `toml:"jobs"`
	Location *string `toml:"location"`
}

// Settings are the resolved values handed to the commands.
type Settings struct {
	Timezone string
	Strict   bool
	Method   string
	Format   string
	Jobs     int
	Location string

	// Path is the config file that was read, or empty if none was.
	Path string
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		Method: "auto",
		Format: "plain",
		Jobs:   10,
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() string {
	if xdg := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); xdg != "" {
		return filepath.Join(xdg, appName, "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".config", appName, "config.toml")
}

// Load resolves settings from defaults, the config file, and the environment,
// in that order of increasing precedence. An explicit path (or DATESIFT_CONFIG)
// must exist; the default path may be absent.
func Load(path string) (Settings, error) {
	s := Defaults()

	explicit := true
	path = firstNonEmpty(path, os.Getenv(EnvConfig))
	if path == "" {
		path = DefaultPath()
		explicit = false
	}

	if path != "" {
		f, err := Read(path)
		switch {
		case err == nil:
			s.apply(f)
			s.Path = path
		case !explicit && errors.Is(err, os.ErrNotExist):
		default:
			return Settings{}, err
		}
	}

	if err := s.applyEnv(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Read parses a single config file.
func Read(path string) (File, error) {
	var f File
	b, err := os.ReadFile(path)
	if err != nil {
		return f, errors.Wrapf(err, "read config %s", path)
	}
	if err := toml.Unmarshal(b, &f); err != nil {
		return f, errors.Wrapf(err, "parse config %s", path)
	}
	return f, nil
}

func (s *Settings) apply(f File) {
	copyIfSet(&s.Timezone, f.Timezone)
	copyIfSet(&s.Strict, f.Strict)
	copyIfSet(&s.Method, f.Method)
	copyIfSet(&s.Format, f.Format)
	copyIfSet(&s.Jobs, f.Jobs)
	copyIfSet(&s.Location, f.Location)
}

func (s *Settings) applyEnv() error {
	if v, ok := env(EnvTimezone); ok {
		s.Timezone = v
	}
	if v, ok := env(EnvMethod); ok {
		s.Method = v
	}
	if v, ok := env(EnvFormat); ok {
		s.Format = v
	}
	if v, ok := env(EnvLocation); ok {
		s.Location = v
	}
	if v, ok := env(EnvStrict); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvStrict, v, err)
		}
		s.Strict = b
	}
	if v, ok := env(EnvJobs); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvJobs, v, err)
		}
		s.Jobs = n
	}
	return nil
}

func copyIfSet[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func env(key string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(key))
	return v, v != ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
