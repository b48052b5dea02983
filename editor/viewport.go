package editor

import "math"

// MinViewWidth is the narrowest window, in milliseconds, that zooming in can
// reach. Recordings shorter than this are always shown in full.
const MinViewWidth = 10000

type (
	// Viewport is the visible window [Start,End) over a recording of Length
	// milliseconds, plus the cursor. The zero value is a viewport over an
	// empty recording.
	//
	// All operations keep 0 <= Start <= End <= Length, End-Start >=
	// min(MinViewWidth, Length) and 0 <= Cursor <= Length. Requests that
	// would break these are clamped, never rejected.
	Viewport struct {
		start, end, cursor int
		length             int
	}

	// ViewState is a snapshot of the viewport reported after every operation
	// so the host can redraw.
	ViewState struct {
		Start, End, Cursor int
		CursorVisible      bool
	}
)

// MakeViewport returns a viewport showing the whole recording with the
// cursor at 0.
func MakeViewport(length int) Viewport {
	length = max(length, 0)
	return Viewport{end: length, length: length}
}

func (v *Viewport) Start() int  { return v.start }
func (v *Viewport) End() int    { return v.end }
func (v *Viewport) Cursor() int { return v.cursor }
func (v *Viewport) Length() int { return v.length }
func (v *Viewport) Width() int  { return v.end - v.start }

// CursorVisible reports whether the cursor falls inside [Start,End).
func (v *Viewport) CursorVisible() bool {
	return v.start <= v.cursor && v.cursor < v.end
}

func (v *Viewport) State() ViewState {
	return ViewState{Start: v.start, End: v.end, Cursor: v.cursor, CursorVisible: v.CursorVisible()}
}

// Zoom scales the window width by factor around its center: factor < 1
// zooms in, factor > 1 zooms out. The width never goes below the minimum
// width.
func (v *Viewport) Zoom(factor float64) ViewState {
	if math.IsNaN(factor) || factor < 0 {
		factor = 0
	}
	floor := v.minWidth()
	width := v.Width()
	if width <= 0 {
		return v.State()
	}
	newWidth := max(min(factor*float64(width), float64(v.length)), float64(floor))
	offset := (width - int(newWidth)) / 2
	start := max(v.start+offset, 0)
	end := min(v.end-offset, v.length)
	if end-start < floor {
		start = max(min(start, v.length-floor), 0)
		end = start + floor
	}
	v.start, v.end = start, end
	return v.State()
}

// SetLength replaces the recording with one of length milliseconds, showing
// all of it with the cursor at 0.
func (v *Viewport) SetLength(length int) ViewState {
	*v = MakeViewport(length)
	return v.State()
}

// ResetZoom shows the whole recording.
func (v *Viewport) ResetZoom() ViewState {
	v.start, v.end = 0, v.length
	return v.State()
}

// Pan shifts the window by delta milliseconds. The shift is reduced so that
// the window stays inside the recording; the width never changes.
func (v *Viewport) Pan(delta int) ViewState {
	if delta < 0 {
		delta = max(delta, -v.start)
	} else {
		delta = min(delta, v.length-v.end)
	}
	v.start += delta
	v.end += delta
	return v.State()
}

// PlaceCursor puts the cursor at fraction of the visible window: 0 is the
// left edge (Start) and 1 the right edge (End). Fractions outside [0,1] are
// clamped.
func (v *Viewport) PlaceCursor(fraction float64) ViewState {
	if math.IsNaN(fraction) {
		fraction = 0
	}
	fraction = max(min(fraction, 1), 0)
	v.cursor = v.start + int(fraction*float64(v.Width()))
	return v.State()
}

// SetCursor moves the cursor to an absolute position, clamped to the
// recording. The window does not follow the cursor.
func (v *Viewport) SetCursor(ms int) ViewState {
	v.cursor = max(min(ms, v.length), 0)
	return v.State()
}

// Fraction returns the relative horizontal position of ms in the window;
// values outside [0,1] are outside the window.
func (v *Viewport) Fraction(ms int) float64 {
	if v.Width() <= 0 {
		return 0
	}
	return float64(ms-v.start) / float64(v.Width())
}

func (v *Viewport) minWidth() int { return min(MinViewWidth, v.length) }
