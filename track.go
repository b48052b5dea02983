package gramocut

import "fmt"

// Track is a segment [Start,End) of the source recording, in milliseconds,
// with the metadata the user has typed in. A track has no identity of its
// own: it is identified by its position in the TrackStore.
type Track struct {
	Start  int
	End    int
	Number string `yaml:",omitempty"`
	Title  string `yaml:",omitempty"`
	Artist string `yaml:",omitempty"`
}

// Len returns the length of the track in milliseconds.
func (t Track) Len() int { return t.End - t.Start }

// Valid reports whether 0 <= Start < End <= length.
func (t Track) Valid(length int) bool {
	return t.Start >= 0 && t.Start < t.End && t.End <= length
}

// Check is Valid returning a *TrackRangeError for invalid tracks.
func (t Track) Check(length int) error {
	if !t.Valid(length) {
		return &TrackRangeError{Start: t.Start, End: t.End, Length: length}
	}
	return nil
}

// TrackRangeError is returned when a track does not fit in a recording of
// Length milliseconds, or ends before it starts.
type TrackRangeError struct {
	Start, End, Length int
}

func (e *TrackRangeError) Error() string {
	return fmt.Sprintf("track [%d,%d) does not fit in [0,%d]", e.Start, e.End, e.Length)
}

// Overlaps reports whether the track intersects the half-open range
// [start,end).
func (t Track) Overlaps(start, end int) bool {
	return t.End > start && t.Start < end
}
