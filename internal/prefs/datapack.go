package prefs

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jhughes-dev/mcmod/internal/filesystem"
)

// packFormat maps a Minecraft version to its data pack pack_format.
// Minor is nonzero only for versions using the split format numbers.
type packFormat struct {
	Major int
	Minor int
}

// packFormatFor resolves the data pack format for a Minecraft version.
// Unknown future versions fall back by minor-version heuristic.
func packFormatFor(mcVersion string) packFormat {
	switch mcVersion {
	case "1.21", "1.21.1":
		return packFormat{48, 0}
	case "1.21.2", "1.21.3":
		return packFormat{57, 0}
	case "1.21.4":
		return packFormat{61, 0}
	case "1.21.5":
		return packFormat{71, 0}
	case "1.21.6":
		return packFormat{80, 0}
	case "1.21.7", "1.21.8":
		return packFormat{81, 0}
	case "1.21.9", "1.21.10":
		return packFormat{88, 0}
	case "1.21.11":
		return packFormat{94, 1}
	}

	parts := strings.SplitN(mcVersion, ".", 3)
	if len(parts) == 3 {
		var minor int
		if _, err := fmt.Sscanf(parts[2], "%d", &minor); err == nil {
			if minor >= 11 {
				return packFormat{94, 1}
			}
			if minor >= 9 {
				return packFormat{88, 0}
			}
		}
	}

	return packFormat{61, 0}
}

// usesNewPackFormat reports whether the version uses the
// min_format/max_format pack.mcmeta scheme introduced in 1.21.9.
func usesNewPackFormat(mcVersion string) bool {
	return packFormatFor(mcVersion).Major >= 88
}

func renderPackMcmeta(mcVersion string) string {
	pf := packFormatFor(mcVersion)
	const desc = "Dev defaults (generated by mcmod)"

	if !usesNewPackFormat(mcVersion) {
		return fmt.Sprintf("{\n  \"pack\": {\n    \"pack_format\": %d,\n    \"description\": %q\n  }\n}\n", pf.Major, desc)
	}

	if pf.Minor > 0 {
		return fmt.Sprintf("{\n  \"pack\": {\n    \"pack_format\": [%d, %d],\n    \"min_format\": [%d, 0],\n    \"max_format\": [%d, %d],\n    \"description\": %q\n  }\n}\n",
			pf.Major, pf.Minor, pf.Major, pf.Major, pf.Minor, desc)
	}

	return fmt.Sprintf("{\n  \"pack\": {\n    \"pack_format\": %d,\n    \"min_format\": %d,\n    \"max_format\": %d,\n    \"description\": %q\n  }\n}\n",
		pf.Major, pf.Major, pf.Major, desc)
}

// TimeToTick converts a named time of day to the argument passed to the
// `time set` command. Raw tick numbers pass through.
func TimeToTick(time string) string {
	switch strings.ToLower(time) {
	case "noon", "day":
		return "day"
	case "midnight", "night":
		return "midnight"
	case "sunrise":
		return "23000"
	case "sunset":
		return "12000"
	}
	return time
}

// WriteDevDatapack writes the dev-defaults data pack into the project's
// run/world directory. The pack applies the configured game rules on
// world load via a dev:init mcfunction.
func WriteDevDatapack(fs filesystem.FileSystem, projectDir string, p *Prefs, mcVersion string) error {
	packDir := filepath.Join(projectDir, "run/world/datapacks/dev-defaults")

	if err := writeFile(fs, filepath.Join(packDir, "pack.mcmeta"), renderPackMcmeta(mcVersion)); err != nil {
		return err
	}

	loadTag := "{\n  \"values\": [\n    \"dev:init\"\n  ]\n}\n"
	if err := writeFile(fs, filepath.Join(packDir, "data/minecraft/tags/function/load.json"), loadTag); err != nil {
		return err
	}

	var commands []string
	if v := p.GameRules.DoDaylightCycle; v != nil {
		commands = append(commands, fmt.Sprintf("gamerule doDaylightCycle %t", *v))
	}
	if v := p.GameRules.DoWeatherCycle; v != nil {
		commands = append(commands, fmt.Sprintf("gamerule doWeatherCycle %t", *v))
	}
	if v := p.GameRules.TimeOfDay; v != nil {
		commands = append(commands, "time set "+TimeToTick(*v))
	}

	var fn string
	if len(commands) > 0 {
		fn = strings.Join(commands, "\n") + "\n"
	}

	return writeFile(fs, filepath.Join(packDir, "data/dev/function/init.mcfunction"), fn)
}

func writeFile(fs filesystem.FileSystem, path, content string) error {
	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return fs.WriteFile(path, []byte(content), 0644)
}
