package editor_test

import (
	"testing"

	"github.com/vsariola/gramocut/editor"
)

func modelWithTracks(t *testing.T, starts ...int) *editor.Model {
	t.Helper()
	m := loadedModel(t, 100000)
	for _, s := range starts {
		m.Apply(editor.SetCursorCommand{Ms: s})
		m.Apply(editor.CreateTrackCommand{LengthMs: 1000})
	}
	return m
}

func starts(m *editor.Model) []int {
	var ret []int
	for _, t := range m.Tracks() {
		ret = append(ret, t.Start)
	}
	return ret
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestTrackListMove(t *testing.T) {
	m := modelWithTracks(t, 0, 10000, 20000, 30000)
	l := m.TrackList()
	l.SetSelected(1)
	l.SetSelected2(2)
	if !l.MoveSelection(1) {
		t.Fatalf("MoveSelection(1) failed")
	}
	if got := starts(m); !equalInts(got, []int{0, 30000, 10000, 20000}) {
		t.Errorf("after move: %v", got)
	}
	if l.Selected() != 2 || l.Selected2() != 3 {
		t.Errorf("selection did not follow: %d..%d", l.Selected(), l.Selected2())
	}
	if l.MoveSelection(1) {
		t.Errorf("moving past the end should fail")
	}
	m.History().Undo().Do()
	if got := starts(m); !equalInts(got, []int{0, 10000, 20000, 30000}) {
		t.Errorf("after undo: %v", got)
	}
}

func TestTrackListDeleteSelection(t *testing.T) {
	m := modelWithTracks(t, 0, 10000, 20000, 30000)
	l := m.TrackList()
	l.SetSelected(2)
	l.SetSelected2(1)
	if !l.DeleteSelection() {
		t.Fatalf("DeleteSelection failed")
	}
	if got := starts(m); !equalInts(got, []int{0, 30000}) {
		t.Errorf("after delete: %v", got)
	}
	if l.Selected() != 1 {
		t.Errorf("selection = %d, want 1", l.Selected())
	}
}

func TestTrackListCopyPaste(t *testing.T) {
	m := modelWithTracks(t, 0, 10000)
	m.TrackTitle(1).SetValue("Side A closer")
	l := m.TrackList()
	l.SetSelected(1)
	l.SetSelected2(1)
	data, ok := l.CopySelection()
	if !ok {
		t.Fatalf("CopySelection failed")
	}
	l.SetSelected(0)
	l.SetSelected2(0)
	if !l.Paste(data) {
		t.Fatalf("Paste failed")
	}
	if got := starts(m); !equalInts(got, []int{0, 10000, 10000}) {
		t.Errorf("after paste: %v", got)
	}
	if tr, _ := m.Track(1); tr.Title != "Side A closer" {
		t.Errorf("pasted track = %+v", tr)
	}
	if l.Selected() != 1 || l.Selected2() != 1 {
		t.Errorf("pasted track should be selected, got %d..%d", l.Selected(), l.Selected2())
	}
	if l.Paste([]byte("- {start: 99000, end: 200000}")) {
		t.Errorf("pasting a track beyond the source should fail")
	}
	if l.Paste([]byte("not: [yaml")) {
		t.Errorf("pasting garbage should fail")
	}
	if m.TrackCount() != 3 {
		t.Errorf("failed pastes changed the list: %d tracks", m.TrackCount())
	}
}

func TestTrackEdgeRanges(t *testing.T) {
	m := modelWithTracks(t, 5000)
	start, end := m.TrackStart(0), m.TrackEnd(0)
	if r := start.Range(); r.Min != 0 || r.Max != 5999 {
		t.Errorf("start range = %+v", r)
	}
	if r := end.Range(); r.Min != 5001 || r.Max != 100000 {
		t.Errorf("end range = %+v", r)
	}
	start.SetValue(9000)
	if start.Value() != 5999 {
		t.Errorf("start should be clamped below the end, got %d", start.Value())
	}
	end.SetValue(1 << 30)
	if end.Value() != 100000 {
		t.Errorf("end should be clamped to the source, got %d", end.Value())
	}
	if s := end.String(); s != "1m:40s:000" {
		t.Errorf("end string = %q", s)
	}
	if m.TrackStart(7).SetValue(10) {
		t.Errorf("setting a missing track should do nothing")
	}
}
