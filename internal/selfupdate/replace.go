package selfupdate

import (
	"fmt"

	"github.com/jhughes-dev/mcmod/internal/filesystem"
)

// Replacer swaps the binary at path with a new payload
type Replacer interface {
	Replace(path string, payload []byte) error
}

// newReplacer picks the swap strategy for the platform. Unix allows
// renaming over a running binary; Windows locks it, so the original is
// displaced to a backup first.
func newReplacer(fs filesystem.FileSystem, goos string) Replacer {
	if goos == "windows" {
		return &displaceReplacer{fs: fs}
	}
	return &renameReplacer{fs: fs}
}

// renameReplacer writes the payload to a sibling file and renames it
// over the original. The rename is atomic on the same filesystem.
type renameReplacer struct {
	fs filesystem.FileSystem
}

func (r *renameReplacer) Replace(path string, payload []byte) error {
	staging := path + ".new"

	if err := r.fs.WriteFile(staging, payload, 0755); err != nil {
		return fmt.Errorf("failed to stage new binary: %w", err)
	}
	if err := r.fs.Chmod(staging, 0755); err != nil {
		return fmt.Errorf("failed to mark new binary executable: %w", err)
	}
	if err := r.fs.Rename(staging, path); err != nil {
		return fmt.Errorf("failed to replace binary: %w", err)
	}
	return nil
}

// displaceReplacer moves the original aside before writing the payload
// at its path, restoring the original when the write fails.
type displaceReplacer struct {
	fs filesystem.FileSystem
}

func (r *displaceReplacer) Replace(path string, payload []byte) error {
	backup := path + ".old"

	// A stale backup from an earlier update blocks the rename
	if r.fs.Exists(backup) {
		if err := r.fs.Remove(backup); err != nil {
			return fmt.Errorf("failed to remove stale backup: %w", err)
		}
	}

	if err := r.fs.Rename(path, backup); err != nil {
		return fmt.Errorf("failed to move running binary aside: %w", err)
	}

	if err := r.fs.WriteFile(path, payload, 0755); err != nil {
		if restoreErr := r.fs.Rename(backup, path); restoreErr != nil {
			return fmt.Errorf("failed to write new binary (%v) and to restore the original: %w", err, restoreErr)
		}
		return fmt.Errorf("failed to write new binary: %w", err)
	}

	if err := r.fs.Remove(backup); err != nil {
		return fmt.Errorf("failed to remove backup: %w", err)
	}
	return nil
}
