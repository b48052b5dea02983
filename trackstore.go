package gramocut

import "fmt"

type (
	// TrackStore is the ordered list of tracks of a session. Insertion order
	// is the display order and the color order. The store does not check that
	// tracks are disjoint or non-empty.
	TrackStore struct {
		tracks []Track
	}

	// IndexedTrack pairs a track with its position in the store.
	IndexedTrack struct {
		Index int
		Track
	}

	// IndexError is returned when a track is addressed with an index outside
	// [0, Count). It usually means the caller holds a stale index.
	IndexError struct {
		Index, Count int
	}
)

func (e *IndexError) Error() string {
	return fmt.Sprintf("track index %d out of range [0,%d)", e.Index, e.Count)
}

// MakeTrackStore returns a store holding copies of the given tracks.
func MakeTrackStore(tracks ...Track) TrackStore {
	return TrackStore{tracks: append([]Track(nil), tracks...)}
}

func (s *TrackStore) Append(t Track) { s.tracks = append(s.tracks, t) }
func (s *TrackStore) Clear()         { s.tracks = nil }
func (s *TrackStore) Count() int     { return len(s.tracks) }

// Get returns the track at index i; ok is false if i is out of range.
func (s *TrackStore) Get(i int) (t Track, ok bool) {
	if i < 0 || i >= len(s.tracks) {
		return Track{}, false
	}
	return s.tracks[i], true
}

// RemoveAt removes the track at index i, shifting the following tracks one
// position down.
func (s *TrackStore) RemoveAt(i int) error {
	if i < 0 || i >= len(s.tracks) {
		return &IndexError{Index: i, Count: len(s.tracks)}
	}
	s.tracks = append(s.tracks[:i:i], s.tracks[i+1:]...)
	return nil
}

// Set replaces the track at index i.
func (s *TrackStore) Set(i int, t Track) error {
	if i < 0 || i >= len(s.tracks) {
		return &IndexError{Index: i, Count: len(s.tracks)}
	}
	s.tracks[i] = t
	return nil
}

// Insert inserts tracks before index i; i == Count() appends.
func (s *TrackStore) Insert(i int, tracks ...Track) error {
	if i < 0 || i > len(s.tracks) {
		return &IndexError{Index: i, Count: len(s.tracks)}
	}
	ret := make([]Track, 0, len(s.tracks)+len(tracks))
	ret = append(ret, s.tracks[:i]...)
	ret = append(ret, tracks...)
	s.tracks = append(ret, s.tracks[i:]...)
	return nil
}

// Tracks returns a copy of all the tracks.
func (s *TrackStore) Tracks() []Track { return append([]Track(nil), s.tracks...) }

// Copy returns a deep copy of the store.
func (s *TrackStore) Copy() TrackStore { return TrackStore{tracks: s.Tracks()} }

// Duration returns the summed length of all tracks in milliseconds. Overlapping
// tracks are counted once per track.
func (s *TrackStore) Duration() int {
	ret := 0
	for _, t := range s.tracks {
		ret += t.Len()
	}
	return ret
}

// VisibleIn returns the tracks intersecting the half-open window [start,end),
// in store order.
func (s *TrackStore) VisibleIn(start, end int) []IndexedTrack {
	var ret []IndexedTrack
	for i, t := range s.tracks {
		if t.Overlaps(start, end) {
			ret = append(ret, IndexedTrack{Index: i, Track: t})
		}
	}
	return ret
}
