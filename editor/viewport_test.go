package editor_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vsariola/gramocut/editor"
)

func checkInvariants(t *testing.T, v *editor.Viewport, op string) {
	t.Helper()
	n := v.Length()
	if v.Start() < 0 || v.Start() > v.End() || v.End() > n {
		t.Fatalf("%s: window [%d,%d) outside [0,%d]", op, v.Start(), v.End(), n)
	}
	if floor := min(editor.MinViewWidth, n); v.Width() < floor {
		t.Fatalf("%s: width %d below floor %d", op, v.Width(), floor)
	}
	if v.Cursor() < 0 || v.Cursor() > n {
		t.Fatalf("%s: cursor %d outside [0,%d]", op, v.Cursor(), n)
	}
}

func TestViewportZoomInThreeTimes(t *testing.T) {
	v := editor.MakeViewport(200000)
	for i := range 3 {
		s := v.Zoom(0.8)
		if s.End-s.Start < editor.MinViewWidth {
			t.Fatalf("zoom %d: width %d below %d", i, s.End-s.Start, editor.MinViewWidth)
		}
		checkInvariants(t, &v, "Zoom(0.8)")
	}
	if v.Width() >= 200000 {
		t.Errorf("zooming in did not narrow the window: %d", v.Width())
	}
	center := (v.Start() + v.End()) / 2
	if math.Abs(float64(center-100000)) > 2 {
		t.Errorf("zoom drifted the center to %d", center)
	}
}

func TestViewportZoomFloor(t *testing.T) {
	v := editor.MakeViewport(200000)
	for range 50 {
		v.Zoom(0.5)
	}
	if v.Width() != editor.MinViewWidth {
		t.Errorf("width = %d, want floor %d", v.Width(), editor.MinViewWidth)
	}
	checkInvariants(t, &v, "Zoom(0.5)")
}

func TestViewportShortRecording(t *testing.T) {
	v := editor.MakeViewport(4000)
	s := v.Zoom(0.1)
	if s.Start != 0 || s.End != 4000 {
		t.Errorf("short recording should stay fully visible, got [%d,%d)", s.Start, s.End)
	}
	s = v.Zoom(3)
	if s.Start != 0 || s.End != 4000 {
		t.Errorf("short recording zoom out got [%d,%d)", s.Start, s.End)
	}
}

func TestViewportZoomOutClamps(t *testing.T) {
	v := editor.MakeViewport(100000)
	for range 5 {
		v.Zoom(0.8)
	}
	v.Pan(-100000)
	if v.Start() != 0 {
		t.Fatalf("pan to the left edge failed, start = %d", v.Start())
	}
	width := v.Width()
	for range 20 {
		v.Zoom(1.2)
		checkInvariants(t, &v, "Zoom(1.2)")
		if v.Start() != 0 {
			t.Fatalf("left edge should stay clamped at 0, got %d", v.Start())
		}
		if v.Width() < width {
			t.Fatalf("zooming out narrowed the window from %d to %d", width, v.Width())
		}
		width = v.Width()
	}
	if v.End() < 99000 {
		t.Errorf("zooming out should approach the full view, got [%d,%d)", v.Start(), v.End())
	}
}

func TestViewportResetThenZoomOneIsIdempotent(t *testing.T) {
	v := editor.MakeViewport(123456)
	v.Zoom(0.3)
	v.Pan(7777)
	want := v.ResetZoom()
	if got := v.Zoom(1.0); got != want {
		t.Errorf("Zoom(1.0) after reset = %+v, want %+v", got, want)
	}
	if want.Start != 0 || want.End != 123456 {
		t.Errorf("ResetZoom = %+v", want)
	}
}

func TestViewportPanRoundTrip(t *testing.T) {
	v := editor.MakeViewport(300000)
	v.Zoom(0.2)
	before := v.State()
	v.Pan(5000)
	v.Pan(-5000)
	if after := v.State(); after != before {
		t.Errorf("pan round trip: %+v, want %+v", after, before)
	}
}

func TestViewportPanClampsWithoutChangingWidth(t *testing.T) {
	v := editor.MakeViewport(300000)
	v.Zoom(0.5)
	width := v.Width()
	s := v.Pan(1 << 30)
	if s.End != 300000 || s.End-s.Start != width {
		t.Errorf("pan right: [%d,%d), width %d want %d", s.Start, s.End, s.End-s.Start, width)
	}
	s = v.Pan(-(1 << 30))
	if s.Start != 0 || s.End-s.Start != width {
		t.Errorf("pan left: [%d,%d), width %d want %d", s.Start, s.End, s.End-s.Start, width)
	}
}

func TestViewportPlaceCursor(t *testing.T) {
	v := editor.MakeViewport(500000)
	v.Zoom(0.37)
	v.Pan(12345)
	if s := v.PlaceCursor(0); s.Cursor != v.Start() || !s.CursorVisible {
		t.Errorf("PlaceCursor(0) = %+v, want cursor at %d", s, v.Start())
	}
	if s := v.PlaceCursor(1); s.Cursor != v.End() || s.CursorVisible {
		t.Errorf("PlaceCursor(1) = %+v, want invisible cursor at %d", s, v.End())
	}
	if s := v.PlaceCursor(0.5); s.Cursor != v.Start()+v.Width()/2 {
		t.Errorf("PlaceCursor(0.5) = %+v", s)
	}
	if s := v.PlaceCursor(-3); s.Cursor != v.Start() {
		t.Errorf("PlaceCursor(-3) = %+v, want clamped to %d", s, v.Start())
	}
	if s := v.PlaceCursor(math.NaN()); s.Cursor != v.Start() {
		t.Errorf("PlaceCursor(NaN) = %+v", s)
	}
	v.PlaceCursor(0.5)
	v.ResetZoom()
	v.Zoom(0.1)
	v.Pan(-(1 << 30))
	if v.CursorVisible() {
		t.Errorf("cursor at %d should be hidden outside [%d,%d)", v.Cursor(), v.Start(), v.End())
	}
}

func TestViewportRandomOperations(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, n := range []int{0, 1, 9999, 10000, 10001, 200000, 3600000} {
		v := editor.MakeViewport(n)
		checkInvariants(t, &v, "MakeViewport")
		for range 2000 {
			switch rng.Intn(5) {
			case 0:
				v.Zoom(rng.Float64() * 3)
				checkInvariants(t, &v, "Zoom")
			case 1:
				v.Pan(rng.Intn(2*n+1) - n)
				checkInvariants(t, &v, "Pan")
			case 2:
				v.PlaceCursor(rng.Float64()*1.4 - 0.2)
				checkInvariants(t, &v, "PlaceCursor")
			case 3:
				v.ResetZoom()
				checkInvariants(t, &v, "ResetZoom")
			case 4:
				v.Zoom(math.Inf(1))
				checkInvariants(t, &v, "Zoom(+Inf)")
			}
		}
	}
}

func TestViewportFraction(t *testing.T) {
	v := editor.MakeViewport(100000)
	if f := v.Fraction(50000); f != 0.5 {
		t.Errorf("Fraction(50000) = %v, want 0.5", f)
	}
	var empty editor.Viewport
	if f := empty.Fraction(10); f != 0 {
		t.Errorf("Fraction on empty viewport = %v, want 0", f)
	}
}
