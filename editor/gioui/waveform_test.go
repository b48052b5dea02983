package gioui

import "testing"

func TestNiceStep(t *testing.T) {
	for _, tc := range []struct{ in, want int }{
		{0, 1},
		{1, 1},
		{3, 5},
		{7, 10},
		{1500, 2000},
		{45000, 50000},
		{60000, 60000},
		{61000, 120000},
	} {
		if got := niceStep(tc.in); got != tc.want {
			t.Errorf("niceStep(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestTitleFromPath(t *testing.T) {
	if got := titleFromPath(""); got != "Gramocut" {
		t.Errorf("empty path title = %q", got)
	}
	if got := titleFromPath("/music/side a.wav"); got != "Gramocut - side a.wav" {
		t.Errorf("title = %q", got)
	}
}
