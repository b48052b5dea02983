package editor_test

import (
	"errors"
	"testing"

	"github.com/vsariola/gramocut"
	"github.com/vsariola/gramocut/editor"
)

func TestUnmarshalCommands(t *testing.T) {
	script := []byte(`
- zoom: 0.8
- pan: -5000
- cursor: 0.5
- seek: 1234
- reset: true
- create: 30000
- delete: 2
- set: {index: 1, start: 100, end: 900, title: Intro}
`)
	cmds, err := editor.UnmarshalCommands(script)
	if err != nil {
		t.Fatalf("UnmarshalCommands: %v", err)
	}
	want := []editor.Command{
		editor.ZoomCommand{Factor: 0.8},
		editor.PanCommand{DeltaMs: -5000},
		editor.PlaceCursorCommand{Fraction: 0.5},
		editor.SetCursorCommand{Ms: 1234},
		editor.ResetZoomCommand{},
		editor.CreateTrackCommand{LengthMs: 30000},
		editor.DeleteTrackCommand{Index: 2},
		editor.EditTrackCommand{
			Index:  1,
			Fields: editor.StartField | editor.EndField | editor.TitleField,
			Track:  gramocut.Track{Start: 100, End: 900, Title: "Intro"},
		},
	}
	if len(cmds) != len(want) {
		t.Fatalf("got %d commands, want %d", len(cmds), len(want))
	}
	for i := range want {
		if cmds[i] != want[i] {
			t.Errorf("command %d = %#v, want %#v", i, cmds[i], want[i])
		}
	}
}

func TestUnmarshalCommandsErrors(t *testing.T) {
	for _, tc := range []struct {
		name   string
		script string
	}{
		{"NotAList", "zoom: 0.8"},
		{"TwoCommandsInOneStep", "- {zoom: 0.8, pan: 10}"},
		{"EmptyStep", "- {}"},
		{"BadValue", "- zoom: fast"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := editor.UnmarshalCommands([]byte(tc.script)); err == nil {
				t.Errorf("expected an error for %q", tc.script)
			}
		})
	}
}

func TestScriptEndToEnd(t *testing.T) {
	m := loadedModel(t, 600000)
	cmds, err := editor.UnmarshalCommands([]byte(`
- cursor: 0.25
- create: 60000
- seek: 300000
- create: 60000
- zoom: 0.1
`))
	if err != nil {
		t.Fatalf("UnmarshalCommands: %v", err)
	}
	v, err := m.ApplyAll(cmds)
	if err != nil {
		t.Fatalf("ApplyAll: %v", err)
	}
	if v.End-v.Start != 60000 || !v.CursorVisible {
		t.Errorf("view = %+v", v)
	}
	want := []gramocut.Track{
		{Start: 150000, End: 210000, Number: "1"},
		{Start: 300000, End: 360000, Number: "2"},
	}
	got := m.Tracks()
	if len(got) != len(want) {
		t.Fatalf("got %d tracks", len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("track %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestScriptSetChangesOnlyNamedFields(t *testing.T) {
	m := loadedModel(t, 200000)
	cmds, err := editor.UnmarshalCommands([]byte(`
- seek: 5000
- create: 30000
- set: {index: 0, title: Intro}
- set: {index: 0, artist: Band, end: 40000}
`))
	if err != nil {
		t.Fatalf("UnmarshalCommands: %v", err)
	}
	if _, err := m.ApplyAll(cmds); err != nil {
		t.Fatalf("ApplyAll: %v", err)
	}
	want := gramocut.Track{Start: 5000, End: 40000, Number: "1", Title: "Intro", Artist: "Band"}
	if got, _ := m.Track(0); got != want {
		t.Errorf("track = %+v, want %+v", got, want)
	}
}

func TestTrackCommandsRejectInvalidBounds(t *testing.T) {
	for _, tc := range []struct {
		name string
		cmd  editor.Command
	}{
		{"EndBeforeStart", editor.SetTrackCommand{Index: 0, Track: gramocut.Track{Start: 150000, End: -5}}},
		{"PastTheEnd", editor.SetTrackCommand{Index: 0, Track: gramocut.Track{Start: 0, End: 999999999}}},
		{"NegativeStart", editor.SetTrackCommand{Index: 0, Track: gramocut.Track{Start: -1, End: 1000}}},
		{"Empty", editor.SetTrackCommand{Index: 0, Track: gramocut.Track{Start: 1000, End: 1000}}},
		{"EditStartPastEnd", editor.EditTrackCommand{Index: 0, Fields: editor.StartField, Track: gramocut.Track{Start: 50000}}},
		{"EditEndPastSource", editor.EditTrackCommand{Index: 0, Fields: editor.EndField, Track: gramocut.Track{End: 200001}}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m := loadedModel(t, 200000)
			m.Apply(editor.CreateTrackCommand{LengthMs: 30000})
			before, _ := m.Track(0)
			undo := m.History().UndoCount()
			_, err := m.Apply(tc.cmd)
			var rangeErr *gramocut.TrackRangeError
			if !errors.As(err, &rangeErr) {
				t.Fatalf("err = %v, want a TrackRangeError", err)
			}
			if got, _ := m.Track(0); got != before {
				t.Errorf("track changed to %+v", got)
			}
			if m.History().UndoCount() != undo {
				t.Errorf("rejected command left an undo step")
			}
		})
	}
}

func TestEditMissingTrack(t *testing.T) {
	m := loadedModel(t, 200000)
	_, err := m.Apply(editor.EditTrackCommand{Index: 3, Fields: editor.TitleField})
	var indexErr *gramocut.IndexError
	if !errors.As(err, &indexErr) {
		t.Errorf("err = %v, want an IndexError", err)
	}
}
