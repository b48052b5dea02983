package gioui_test

import (
	"testing"

	"github.com/vsariola/gramocut/editor/gioui"
)

func TestDefaultPreferences(t *testing.T) {
	p := gioui.DefaultPreferences()
	if w, h := p.WindowSize(); w != 1200 || h != 720 {
		t.Errorf("window size = %v x %v", w, h)
	}
	if p.Window.Maximized {
		t.Errorf("window should not start maximized")
	}
}

func TestParsePreferences(t *testing.T) {
	p, err := gioui.ParsePreferences([]byte("window:\n  width: 800\n  height: 600\n  maximized: true\ntracklist:\n  width: 10\n"))
	if err != nil {
		t.Fatalf("ParsePreferences: %v", err)
	}
	if !p.Window.Maximized || p.Window.Width != 800 {
		t.Errorf("window = %+v", p.Window)
	}
	if p.TrackListWidth() != 200 {
		t.Errorf("track list width should be clamped, got %v", p.TrackListWidth())
	}
	if p.WaveformHeight() != 220 {
		t.Errorf("waveform height should keep its default, got %v", p.WaveformHeight())
	}
	if _, err := gioui.ParsePreferences([]byte("window:\n  colour: red\n")); err == nil {
		t.Errorf("unknown keys should be rejected")
	}
}
