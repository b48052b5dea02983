package gioui

import (
	"image/color"

	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"
)

type (
	Theme struct {
		Material *material.Theme

		Waveform WaveformStyle
		Alert    AlertStyles
		TrackRow TrackRowStyle
	}

	WaveformStyle struct {
		Bg           color.NRGBA
		Curve        color.NRGBA
		Cursor       color.NRGBA
		TrackAlpha   uint8
		Tick         color.NRGBA
		TickText     color.NRGBA
		DpPerTick    unit.Dp
		OverviewSize unit.Dp
	}

	TrackRowStyle struct {
		Selected color.NRGBA
		Swatch   unit.Dp
		Inset    layout.Inset
	}

	AlertStyle struct {
		Bg   color.NRGBA
		Text color.NRGBA
	}

	AlertStyles struct {
		Info    AlertStyle
		Warning AlertStyle
		Error   AlertStyle
		Margin  layout.Inset
		Inset   layout.Inset
	}
)

var white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
var black = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
var transparent = color.NRGBA{A: 0}

var primaryColor = color.NRGBA{R: 206, G: 147, B: 216, A: 255}
var disabledTextColor = color.NRGBA{R: 255, G: 255, B: 255, A: 97}
var highEmphasisTextColor = color.NRGBA{R: 222, G: 222, B: 222, A: 222}
var mediumEmphasisTextColor = color.NRGBA{R: 153, G: 153, B: 153, A: 153}
var backgroundColor = color.NRGBA{R: 18, G: 18, B: 18, A: 255}
var surfaceColor = color.NRGBA{R: 37, G: 37, B: 38, A: 255}
var popupSurfaceColor = color.NRGBA{R: 50, G: 50, B: 51, A: 255}
var selectedRowColor = color.NRGBA{R: 55, G: 55, B: 61, A: 255}
var errorColor = color.NRGBA{R: 207, G: 102, B: 121, A: 255}
var warningColor = color.NRGBA{R: 251, G: 192, B: 45, A: 255}

func NewTheme() *Theme {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	th.Palette.Bg = backgroundColor
	th.Palette.Fg = highEmphasisTextColor
	th.Palette.ContrastBg = primaryColor
	th.Palette.ContrastFg = black
	th.TextSize = unit.Sp(14)
	return &Theme{
		Material: th,
		Waveform: WaveformStyle{
			Bg:           surfaceColor,
			Curve:        highEmphasisTextColor,
			Cursor:       color.NRGBA{R: 255, G: 255, B: 130, A: 255},
			TrackAlpha:   72,
			Tick:         color.NRGBA{R: 255, G: 255, B: 255, A: 24},
			TickText:     mediumEmphasisTextColor,
			DpPerTick:    unit.Dp(96),
			OverviewSize: unit.Dp(10),
		},
		Alert: AlertStyles{
			Info:    AlertStyle{Bg: popupSurfaceColor, Text: white},
			Warning: AlertStyle{Bg: warningColor, Text: black},
			Error:   AlertStyle{Bg: errorColor, Text: black},
			Margin:  layout.UniformInset(unit.Dp(6)),
			Inset:   layout.UniformInset(unit.Dp(6)),
		},
		TrackRow: TrackRowStyle{
			Selected: selectedRowColor,
			Swatch:   unit.Dp(12),
			Inset:    layout.Inset{Top: unit.Dp(2), Bottom: unit.Dp(2), Left: unit.Dp(6), Right: unit.Dp(6)},
		},
	}
}
