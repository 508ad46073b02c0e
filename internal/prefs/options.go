package prefs

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jhughes-dev/mcmod/internal/filesystem"
)

// RenderOptionsTxt renders the client options.txt content from the set
// display options. Unset keys are omitted.
func (p *Prefs) RenderOptionsTxt() string {
	lines := []string{"lang:en_us"}

	if v := p.Options.Fullscreen; v != nil {
		lines = append(lines, fmt.Sprintf("fullscreen:%t", *v))
	}
	if v := p.Options.PauseOnLostFocus; v != nil {
		lines = append(lines, fmt.Sprintf("pauseOnLostFocus:%t", *v))
	}
	if v := p.Options.AutoJump; v != nil {
		lines = append(lines, fmt.Sprintf("autoJump:%t", *v))
	}
	if v := p.Options.ReducedDebugInfo; v != nil {
		lines = append(lines, fmt.Sprintf("reducedDebugInfo:%t", *v))
	}
	if v := p.Options.Gamma; v != nil {
		lines = append(lines, "gamma:"+strconv.FormatFloat(*v, 'f', -1, 64))
	}

	return strings.Join(lines, "\n") + "\n"
}

// WriteRunOptions writes the rendered options.txt to dest unless it
// already exists; dev runs should keep whatever the user changed in-game.
func WriteRunOptions(fs filesystem.FileSystem, dest string, p *Prefs) error {
	if fs.Exists(dest) {
		return nil
	}
	if err := fs.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return err
	}
	return fs.WriteFile(dest, []byte(p.RenderOptionsTxt()), 0644)
}
