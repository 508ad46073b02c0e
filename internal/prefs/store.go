package prefs

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
	"github.com/jhughes-dev/mcmod/internal/filesystem"
)

const fileName = "config.toml"

// Store owns the singleton user-scope preferences file. The file is
// lazily created on the first Set; loads never fail on a missing or
// corrupt file, they degrade to structural defaults.
type Store struct {
	fs  filesystem.FileSystem
	dir string
}

// NewStore creates a store over the platform config directory
func NewStore(fs filesystem.FileSystem) (*Store, error) {
	dir, err := ConfigDir()
	if err != nil {
		return nil, err
	}
	return NewStoreAt(fs, dir), nil
}

// NewStoreAt creates a store over an explicit directory (for tests)
func NewStoreAt(fs filesystem.FileSystem, dir string) *Store {
	return &Store{fs: fs, dir: dir}
}

// Dir returns the directory holding the preferences file
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the preferences file path
func (s *Store) Path() string {
	return filepath.Join(s.dir, fileName)
}

// Load reads the preferences, layering the on-disk values over the
// structural defaults. A missing or unparseable file yields defaults.
func (s *Store) Load() *Prefs {
	p := Default()

	data, err := s.fs.ReadFile(s.Path())
	if err != nil {
		return p
	}

	if err := toml.Unmarshal(data, p); err != nil {
		// Corrupt preferences are treated as absent, never as fatal
		return Default()
	}

	return p
}

// Save writes the preferences, creating the config directory if needed
func (s *Store) Save(p *Prefs) error {
	if err := s.fs.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(p); err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}

	if err := s.fs.WriteFile(s.Path(), buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write preferences: %w", err)
	}

	return nil
}

// Set loads, mutates, and persists a single preference
func (s *Store) Set(key, value string) error {
	p := s.Load()
	if err := p.Set(key, value); err != nil {
		return err
	}
	return s.Save(p)
}

// ConfigDir returns the platform-specific preferences directory:
// %APPDATA%/mcmod on Windows, $XDG_CONFIG_HOME/mcmod when set,
// otherwise ~/.config/mcmod.
func ConfigDir() (string, error) {
	if runtime.GOOS == "windows" {
		if appdata := os.Getenv("APPDATA"); appdata != "" {
			return filepath.Join(appdata, "mcmod"), nil
		}
	} else if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "mcmod"), nil
	}

	home := os.Getenv("HOME")
	if home == "" {
		home = os.Getenv("USERPROFILE")
	}
	if home == "" {
		return "", fmt.Errorf("could not determine home directory")
	}
	return filepath.Join(home, ".config", "mcmod"), nil
}
