package gramocut

import "image/color"

type (
	// NamedColor is a palette entry.
	NamedColor struct {
		Name  string
		Color color.NRGBA `yaml:",flow"`
	}

	// Palette is the cyclic list of colors given to tracks by their position.
	Palette []NamedColor
)

var DefaultPalette = Palette{
	{Name: "blue", Color: color.NRGBA{R: 66, G: 133, B: 244, A: 255}},
	{Name: "red", Color: color.NRGBA{R: 219, G: 68, B: 55, A: 255}},
	{Name: "yellow", Color: color.NRGBA{R: 244, G: 180, B: 0, A: 255}},
	{Name: "green", Color: color.NRGBA{R: 15, G: 157, B: 88, A: 255}},
	{Name: "purple", Color: color.NRGBA{R: 171, G: 71, B: 188, A: 255}},
	{Name: "cyan", Color: color.NRGBA{R: 0, G: 172, B: 193, A: 255}},
	{Name: "orange", Color: color.NRGBA{R: 255, G: 112, B: 67, A: 255}},
	{Name: "lime", Color: color.NRGBA{R: 158, G: 157, B: 36, A: 255}},
}

// ColorFor returns the color of the track at position index. Colors repeat
// every len(p) tracks; an empty palette falls back to DefaultPalette.
func (p Palette) ColorFor(index int) NamedColor {
	if len(p) == 0 {
		p = DefaultPalette
	}
	i := index % len(p)
	if i < 0 {
		i += len(p)
	}
	return p[i]
}

// ColorFor returns the DefaultPalette color of the track at position index.
func ColorFor(index int) NamedColor { return DefaultPalette.ColorFor(index) }
