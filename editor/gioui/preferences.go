package gioui

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gioui.org/unit"
	"gopkg.in/yaml.v2"
)

type (
	// Preferences are the GUI settings; the editor settings live in
	// editor.Config.
	Preferences struct {
		Window    WindowPreferences
		TrackList TrackListPreferences
		Waveform  WaveformPreferences
	}

	WindowPreferences struct {
		Width     int
		Height    int
		Maximized bool `yaml:",omitempty"`
	}

	TrackListPreferences struct {
		Width int
	}

	WaveformPreferences struct {
		Height int
	}
)

//go:embed preferences.yml
var defaultPreferencesYaml []byte

func DefaultPreferences() Preferences {
	var p Preferences
	if err := yaml.UnmarshalStrict(defaultPreferencesYaml, &p); err != nil {
		panic(fmt.Errorf("failed to unmarshal preferences: %w", err))
	}
	return p
}

// ParsePreferences overlays data on the default preferences. Unknown keys
// are an error.
func ParsePreferences(data []byte) (Preferences, error) {
	p := DefaultPreferences()
	if err := yaml.UnmarshalStrict(data, &p); err != nil {
		return DefaultPreferences(), err
	}
	return p, nil
}

// LoadPreferences reads preferences.yml from the gramocut directory under the
// user config dir. A missing file gives the defaults without an error.
func LoadPreferences() (Preferences, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return DefaultPreferences(), nil
	}
	data, err := os.ReadFile(filepath.Join(configDir, "gramocut", "preferences.yml"))
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultPreferences(), nil
	}
	if err != nil {
		return DefaultPreferences(), err
	}
	p, err := ParsePreferences(data)
	if err != nil {
		return p, fmt.Errorf("preferences.yml: %w", err)
	}
	return p, nil
}

func (p Preferences) WindowSize() (unit.Dp, unit.Dp) {
	return unit.Dp(p.Window.Width), unit.Dp(p.Window.Height)
}

// TrackListWidth is the widest the track list grows; on wider windows it
// stays centered.
func (p Preferences) TrackListWidth() unit.Dp { return unit.Dp(max(p.TrackList.Width, 200)) }

func (p Preferences) WaveformHeight() unit.Dp { return unit.Dp(max(p.Waveform.Height, 80)) }
