package descriptor

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/jhughes-dev/mcmod/internal/filesystem"
	"github.com/jhughes-dev/mcmod/internal/models"
)

// FileName is the descriptor file written to every project root.
const FileName = "mcmod.toml"

// ErrNotFound indicates the project directory holds no descriptor file.
var ErrNotFound = errors.New("mcmod.toml not found, run `mcmod init` first")

// Store owns the on-disk descriptor file. In-memory descriptors are
// snapshots: callers load, mutate, and save wholesale once every
// dependent file edit has succeeded.
type Store struct {
	fs filesystem.FileSystem
}

// NewStore creates a descriptor store over the given filesystem
func NewStore(fs filesystem.FileSystem) *Store {
	return &Store{fs: fs}
}

// Path returns the descriptor path for a project root
func (s *Store) Path(projectRoot string) string {
	return filepath.Join(projectRoot, FileName)
}

// Load reads the descriptor from the project root. Returns ErrNotFound
// when the file is absent.
func (s *Store) Load(projectRoot string) (*models.Descriptor, error) {
	path := s.Path(projectRoot)
	if !s.fs.Exists(path) {
		return nil, ErrNotFound
	}

	data, err := s.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var d models.Descriptor
	if err := toml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &d, nil
}

// Save writes the descriptor to the project root, overwriting any
// existing file. No partial or field-level writes are supported.
func (s *Store) Save(d *models.Descriptor, projectRoot string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(d); err != nil {
		return fmt.Errorf("failed to encode %s: %w", FileName, err)
	}

	if err := s.fs.WriteFile(s.Path(projectRoot), buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", FileName, err)
	}

	return nil
}
