package gramocut_test

import (
	"testing"

	"github.com/vsariola/gramocut"
)

func TestColorForIsCyclic(t *testing.T) {
	n := len(gramocut.DefaultPalette)
	if n < 2 {
		t.Fatalf("default palette has %d colors, want at least 2", n)
	}
	for i := 0; i < 3*n; i++ {
		if gramocut.ColorFor(i) != gramocut.ColorFor(i+n) {
			t.Errorf("ColorFor(%d) != ColorFor(%d)", i, i+n)
		}
	}
	if gramocut.ColorFor(0) == gramocut.ColorFor(1) {
		t.Errorf("adjacent tracks got the same color")
	}
}

func TestPaletteColorFor(t *testing.T) {
	p := gramocut.Palette{{Name: "a"}, {Name: "b"}, {Name: "c"}}
	tests := []struct {
		index int
		want  string
	}{
		{0, "a"}, {1, "b"}, {2, "c"}, {3, "a"}, {7, "b"}, {-1, "c"},
	}
	for _, tt := range tests {
		if got := p.ColorFor(tt.index).Name; got != tt.want {
			t.Errorf("ColorFor(%d) = %q, want %q", tt.index, got, tt.want)
		}
	}
	var empty gramocut.Palette
	if empty.ColorFor(3) != gramocut.ColorFor(3) {
		t.Errorf("empty palette should fall back to the default palette")
	}
}

func TestFormatMs(t *testing.T) {
	tests := []struct {
		ms   int
		want string
	}{
		{0, "0m:00s:000"},
		{1, "0m:00s:001"},
		{61001, "1m:01s:001"},
		{1234567, "20m:34s:567"},
		{-1500, "-0m:01s:500"},
	}
	for _, tt := range tests {
		if got := gramocut.FormatMs(tt.ms); got != tt.want {
			t.Errorf("FormatMs(%d) = %q, want %q", tt.ms, got, tt.want)
		}
	}
}
