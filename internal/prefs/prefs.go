package prefs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jhughes-dev/mcmod/internal/models"
)

// Prefs holds the user-scope preferences, independent of any project.
// Every key is independently present-or-absent; nil means "not set".
type Prefs struct {
	Defaults  Defaults  `toml:"defaults"`
	Options   Options   `toml:"options"`
	GameRules GameRules `toml:"gamerules"`
}

// Defaults seeds the init prompts
type Defaults struct {
	Author   *string `toml:"author"`
	Language *string `toml:"language"`
}

// Options are client display/runtime defaults written into run/options.txt
type Options struct {
	Fullscreen       *bool    `toml:"fullscreen"`
	PauseOnLostFocus *bool    `toml:"pause_on_lost_focus"`
	AutoJump         *bool    `toml:"auto_jump"`
	ReducedDebugInfo *bool    `toml:"reduced_debug_info"`
	Gamma            *float64 `toml:"gamma"`
}

// GameRules are world-rule defaults baked into the dev datapack
type GameRules struct {
	DoDaylightCycle *bool   `toml:"do_daylight_cycle"`
	DoWeatherCycle  *bool   `toml:"do_weather_cycle"`
	TimeOfDay       *string `toml:"time_of_day"`
}

// Default returns the structural defaults layered under a sparse or
// missing preferences file.
func Default() *Prefs {
	return &Prefs{
		Options: Options{
			Fullscreen:       boolPtr(true),
			PauseOnLostFocus: boolPtr(false),
			AutoJump:         boolPtr(false),
			ReducedDebugInfo: boolPtr(false),
		},
		GameRules: GameRules{
			DoDaylightCycle: boolPtr(false),
			DoWeatherCycle:  boolPtr(false),
			TimeOfDay:       stringPtr("noon"),
		},
	}
}

func boolPtr(v bool) *bool          { return &v }
func stringPtr(v string) *string    { return &v }
func float64Ptr(v float64) *float64 { return &v }

// Entry is one row of the `config list` output
type Entry struct {
	Section string
	Key     string
	Value   string
}

// KnownKey reports whether key names a preference, set or not. Accepts
// the same short/camelCase/dotted spellings as Get and Set.
func KnownKey(key string) bool {
	switch normalizeKey(key) {
	case "defaults.author", "defaults.language",
		"options.fullscreen", "options.pause_on_lost_focus",
		"options.auto_jump", "options.reduced_debug_info", "options.gamma",
		"gamerules.do_daylight_cycle", "gamerules.do_weather_cycle",
		"gamerules.time_of_day":
		return true
	}
	return false
}

// Get returns the value for a key, accepting short names like "author"
// or dotted names like "defaults.author". The second return reports
// whether the key is set; unknown keys also report false (use KnownKey
// to tell the two apart).
func (p *Prefs) Get(key string) (string, bool) {
	switch normalizeKey(key) {
	case "defaults.author":
		return displayString(p.Defaults.Author)
	case "defaults.language":
		return displayString(p.Defaults.Language)
	case "options.fullscreen":
		return displayBool(p.Options.Fullscreen)
	case "options.pause_on_lost_focus":
		return displayBool(p.Options.PauseOnLostFocus)
	case "options.auto_jump":
		return displayBool(p.Options.AutoJump)
	case "options.reduced_debug_info":
		return displayBool(p.Options.ReducedDebugInfo)
	case "options.gamma":
		return displayFloat(p.Options.Gamma)
	case "gamerules.do_daylight_cycle":
		return displayBool(p.GameRules.DoDaylightCycle)
	case "gamerules.do_weather_cycle":
		return displayBool(p.GameRules.DoWeatherCycle)
	case "gamerules.time_of_day":
		return displayString(p.GameRules.TimeOfDay)
	}
	return "", false
}

// Set validates and stores a value under a key. Unknown keys and
// malformed values are rejected.
func (p *Prefs) Set(key, value string) error {
	switch normalizeKey(key) {
	case "defaults.author":
		p.Defaults.Author = stringPtr(value)
	case "defaults.language":
		lower := strings.ToLower(value)
		if lower != models.LanguageJava && lower != models.LanguageKotlin {
			return fmt.Errorf("invalid language %q: must be 'java' or 'kotlin'", value)
		}
		p.Defaults.Language = stringPtr(lower)
	case "options.fullscreen":
		return setBool(&p.Options.Fullscreen, value)
	case "options.pause_on_lost_focus":
		return setBool(&p.Options.PauseOnLostFocus, value)
	case "options.auto_jump":
		return setBool(&p.Options.AutoJump, value)
	case "options.reduced_debug_info":
		return setBool(&p.Options.ReducedDebugInfo, value)
	case "options.gamma":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid gamma value %q: must be a number", value)
		}
		p.Options.Gamma = float64Ptr(v)
	case "gamerules.do_daylight_cycle":
		return setBool(&p.GameRules.DoDaylightCycle, value)
	case "gamerules.do_weather_cycle":
		return setBool(&p.GameRules.DoWeatherCycle, value)
	case "gamerules.time_of_day":
		if err := validateTimeOfDay(value); err != nil {
			return err
		}
		p.GameRules.TimeOfDay = stringPtr(strings.ToLower(value))
	default:
		return fmt.Errorf("unknown config key %q, run 'mcmod config list' to see valid keys", key)
	}
	return nil
}

// List returns all preference entries grouped by section, unset keys included
func (p *Prefs) List() []Entry {
	return []Entry{
		{"Defaults", "author", orUnset(displayString(p.Defaults.Author))},
		{"Defaults", "language", orUnset(displayString(p.Defaults.Language))},
		{"Client Options", "fullscreen", orUnset(displayBool(p.Options.Fullscreen))},
		{"Client Options", "pauseOnLostFocus", orUnset(displayBool(p.Options.PauseOnLostFocus))},
		{"Client Options", "autoJump", orUnset(displayBool(p.Options.AutoJump))},
		{"Client Options", "reducedDebugInfo", orUnset(displayBool(p.Options.ReducedDebugInfo))},
		{"Client Options", "gamma", orUnset(displayFloat(p.Options.Gamma))},
		{"Game Rules", "doDaylightCycle", orUnset(displayBool(p.GameRules.DoDaylightCycle))},
		{"Game Rules", "doWeatherCycle", orUnset(displayBool(p.GameRules.DoWeatherCycle))},
		{"Game Rules", "timeOfDay", orUnset(displayString(p.GameRules.TimeOfDay))},
	}
}

// normalizeKey maps short camelCase/snake_case key names to their
// canonical dotted form. Already-dotted keys pass through.
func normalizeKey(key string) string {
	switch key {
	case "author":
		return "defaults.author"
	case "language":
		return "defaults.language"
	case "fullscreen":
		return "options.fullscreen"
	case "pauseOnLostFocus", "pause_on_lost_focus":
		return "options.pause_on_lost_focus"
	case "autoJump", "auto_jump":
		return "options.auto_jump"
	case "reducedDebugInfo", "reduced_debug_info":
		return "options.reduced_debug_info"
	case "gamma":
		return "options.gamma"
	case "doDaylightCycle", "do_daylight_cycle":
		return "gamerules.do_daylight_cycle"
	case "doWeatherCycle", "do_weather_cycle":
		return "gamerules.do_weather_cycle"
	case "timeOfDay", "time_of_day":
		return "gamerules.time_of_day"
	}
	return key
}

func setBool(dst **bool, value string) error {
	v, err := parseBool(value)
	if err != nil {
		return err
	}
	*dst = boolPtr(v)
	return nil
}

func parseBool(value string) (bool, error) {
	switch strings.ToLower(value) {
	case "true", "yes", "1":
		return true, nil
	case "false", "no", "0":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean %q: must be true/false/yes/no/1/0", value)
}

func validateTimeOfDay(value string) error {
	switch strings.ToLower(value) {
	case "noon", "day", "midnight", "night", "sunrise", "sunset":
		return nil
	}
	if _, err := strconv.ParseUint(value, 10, 32); err != nil {
		return fmt.Errorf("invalid time %q: must be noon/day/midnight/night/sunrise/sunset or a tick number", value)
	}
	return nil
}

func displayString(v *string) (string, bool) {
	if v == nil {
		return "", false
	}
	return *v, true
}

func displayBool(v *bool) (string, bool) {
	if v == nil {
		return "", false
	}
	return strconv.FormatBool(*v), true
}

func displayFloat(v *float64) (string, bool) {
	if v == nil {
		return "", false
	}
	return strconv.FormatFloat(*v, 'f', -1, 64), true
}

func orUnset(value string, ok bool) string {
	if !ok {
		return "(not set)"
	}
	return value
}
