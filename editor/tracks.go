package editor

import (
	"fmt"

	"github.com/vsariola/gramocut"
	"gopkg.in/yaml.v3"
)

type (
	// TrackList is the track list of the model seen as a List: selection,
	// moving, deleting and copy & paste of tracks.
	TrackList Model

	trackRef struct {
		m *Model
		i int
	}

	trackStart  trackRef
	trackEnd    trackRef
	trackNumber trackRef
	trackTitle  trackRef
	trackArtist trackRef

	addTrack    Model
	deleteTrack Model
)

func (m *Model) TrackList() List { return MakeList((*TrackList)(m)) }

func (v *TrackList) Selected() int          { return v.d.Selected }
func (v *TrackList) Selected2() int         { return v.d.Selected2 }
func (v *TrackList) SetSelected(value int)  { v.d.Selected = value }
func (v *TrackList) SetSelected2(value int) { v.d.Selected2 = value }
func (v *TrackList) Count() int             { return v.d.Tracks.Count() }

func (v *TrackList) Change(kind string, severity ChangeSeverity) func() {
	return (*Model)(v).change("TrackList."+kind, severity)
}

func (v *TrackList) Cancel() { v.changeCancel = true }

func (v *TrackList) Move(r Range, delta int) (ok bool) {
	tracks := v.d.Tracks.Tracks()
	if r.Start+delta < 0 || r.End+delta > len(tracks) {
		return false
	}
	moved := append([]gramocut.Track(nil), tracks[r.Start:r.End]...)
	rest := append(tracks[:r.Start:r.Start], tracks[r.End:]...)
	at := r.Start + delta
	out := make([]gramocut.Track, 0, len(tracks))
	out = append(out, rest[:at]...)
	out = append(out, moved...)
	out = append(out, rest[at:]...)
	v.d.Tracks = gramocut.MakeTrackStore(out...)
	return true
}

func (v *TrackList) Delete(r Range) (ok bool) {
	for i := r.End - 1; i >= r.Start; i-- {
		if v.d.Tracks.RemoveAt(i) != nil {
			return false
		}
	}
	return true
}

func (v *TrackList) Marshal(r Range) ([]byte, error) {
	tracks := v.d.Tracks.Tracks()
	if r.Start < 0 || r.End > len(tracks) || r.Len() <= 0 {
		return nil, fmt.Errorf("invalid track range [%d,%d)", r.Start, r.End)
	}
	return yaml.Marshal(tracks[r.Start:r.End])
}

// Unmarshal inserts the tracks in data after the selection. Tracks that do
// not fit in the source are rejected.
func (v *TrackList) Unmarshal(data []byte) (r Range, err error) {
	var tracks []gramocut.Track
	if err := yaml.Unmarshal(data, &tracks); err != nil {
		return Range{}, fmt.Errorf("could not unmarshal tracks: %w", err)
	}
	if len(tracks) == 0 {
		return Range{}, fmt.Errorf("no tracks to paste")
	}
	n := (*Model)(v).Length()
	for _, t := range tracks {
		if err := t.Check(n); err != nil {
			return Range{}, err
		}
	}
	at := 0
	if v.d.Tracks.Count() > 0 {
		at = max(v.d.Selected, v.d.Selected2) + 1
	}
	if err := v.d.Tracks.Insert(at, tracks...); err != nil {
		return Range{}, err
	}
	return Range{Start: at, End: at + len(tracks)}, nil
}

// Per track handles. The handles address tracks by position, so a handle
// obtained before a deletion may refer to a different track afterwards.

func (m *Model) TrackStart(i int) Int     { return MakeInt(trackStart{m, i}) }
func (m *Model) TrackEnd(i int) Int       { return MakeInt(trackEnd{m, i}) }
func (m *Model) TrackNumber(i int) String { return MakeString(trackNumber{m, i}) }
func (m *Model) TrackTitle(i int) String  { return MakeString(trackTitle{m, i}) }
func (m *Model) TrackArtist(i int) String { return MakeString(trackArtist{m, i}) }

// updateTrack applies f to the track at i as a minor change of the given
// kind; consecutive edits of the same field merge into one undo step.
func (m *Model) updateTrack(i int, kind string, f func(t *gramocut.Track)) bool {
	t, ok := m.d.Tracks.Get(i)
	if !ok {
		return false
	}
	defer m.change(fmt.Sprintf("%s.%d", kind, i), MinorChange)()
	f(&t)
	m.d.Tracks.Set(i, t)
	return true
}

func (v trackStart) Value() int {
	t, _ := v.m.d.Tracks.Get(v.i)
	return t.Start
}

func (v trackStart) SetValue(value int) bool {
	return v.m.updateTrack(v.i, "TrackStart", func(t *gramocut.Track) { t.Start = value })
}

func (v trackStart) Range() Bounds {
	t, ok := v.m.d.Tracks.Get(v.i)
	if !ok {
		return Bounds{}
	}
	return Bounds{Min: 0, Max: max(t.End-1, 0)}
}

func (v trackEnd) Value() int {
	t, _ := v.m.d.Tracks.Get(v.i)
	return t.End
}

func (v trackEnd) SetValue(value int) bool {
	return v.m.updateTrack(v.i, "TrackEnd", func(t *gramocut.Track) { t.End = value })
}

func (v trackEnd) Range() Bounds {
	t, ok := v.m.d.Tracks.Get(v.i)
	if !ok {
		return Bounds{}
	}
	return Bounds{Min: t.Start + 1, Max: max(v.m.Length(), t.Start+1)}
}

func (v trackNumber) Value() string {
	t, _ := v.m.d.Tracks.Get(v.i)
	return t.Number
}

func (v trackNumber) SetValue(value string) bool {
	return v.m.updateTrack(v.i, "TrackNumber", func(t *gramocut.Track) { t.Number = value })
}

func (v trackTitle) Value() string {
	t, _ := v.m.d.Tracks.Get(v.i)
	return t.Title
}

func (v trackTitle) SetValue(value string) bool {
	return v.m.updateTrack(v.i, "TrackTitle", func(t *gramocut.Track) { t.Title = value })
}

func (v trackArtist) Value() string {
	t, _ := v.m.d.Tracks.Get(v.i)
	return t.Artist
}

func (v trackArtist) SetValue(value string) bool {
	return v.m.updateTrack(v.i, "TrackArtist", func(t *gramocut.Track) { t.Artist = value })
}

// Actions

func (m *Model) AddTrack() Action    { return MakeAction((*addTrack)(m)) }
func (m *Model) DeleteTrack() Action { return MakeAction((*deleteTrack)(m)) }

func (m *addTrack) Enabled() bool { return (*Model)(m).Loaded() }
func (m *addTrack) Do()           { (*Model)(m).Apply(CreateTrackCommand{}) }

func (m *deleteTrack) Enabled() bool { return m.d.Tracks.Count() > 0 }
func (m *deleteTrack) Do()           { (*Model)(m).TrackList().DeleteSelection() }
