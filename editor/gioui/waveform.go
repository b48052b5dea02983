package gioui

import (
	"image"
	"image/color"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"github.com/vsariola/gramocut"
	"github.com/vsariola/gramocut/editor"
)

// Waveform draws the envelope of the visible window with the tracks on top
// of it, and turns mouse input into viewport commands: wheel zooms, dragging
// pans, clicking places the cursor and the secondary button resets the zoom.
type Waveform struct {
	dragging   bool
	moved      bool
	dragID     pointer.ID
	dragStart  f32.Point
	dragOrigin f32.Point
}

func (w *Waveform) Layout(gtx C, th *Theme, m *editor.Model) D {
	s := gtx.Constraints.Max
	if s.X <= 1 || s.Y <= 1 {
		return D{}
	}
	w.update(gtx, m, s.X)
	style := th.Waveform
	defer clip.Rect(image.Rectangle{Max: s}).Push(gtx.Ops).Pop()
	event.Op(gtx.Ops, w)
	paint.Fill(gtx.Ops, style.Bg)

	overview := gtx.Dp(style.OverviewSize)
	h := s.Y - overview
	vp := m.Viewport()
	toScreen := func(ms int) int { return int(vp.Fraction(ms)*float64(s.X) + 0.5) }

	for _, v := range m.VisibleTracks() {
		x1, x2 := max(toScreen(v.Start), 0), min(toScreen(v.End), s.X)
		c := v.Color.Color
		c.A = style.TrackAlpha
		fillRect(gtx, c, image.Rect(x1, 0, max(x2, x1+1), h))
	}

	if vp.Width() > 0 {
		w.layoutTicks(gtx, th, vp, s.X, h)
		w.layoutCurve(gtx, style.Curve, m.Envelope(), vp, s.X, h)
	}

	if vp.CursorVisible() {
		x := toScreen(vp.Cursor())
		fillRect(gtx, style.Cursor, image.Rect(x, 0, x+1, h))
	}

	w.layoutOverview(gtx, style, m, image.Rect(0, h, s.X, s.Y))
	return D{Size: s}
}

func (w *Waveform) layoutCurve(gtx C, c color.NRGBA, env gramocut.Envelope, vp *editor.Viewport, width, height int) {
	mid := height / 2
	start, span := vp.Start(), vp.Width()
	right := start
	for sx := range width {
		// left and right is the millisecond range covered by the pixel
		left := right
		right = start + int(int64(sx+1)*int64(span)/int64(width))
		peak := env.Peak(left, max(right, left+1))
		dy := int(peak * float32(mid))
		fillRect(gtx, c, image.Rect(sx, mid-dy, sx+1, mid+dy+1))
	}
}

func (w *Waveform) layoutTicks(gtx C, th *Theme, vp *editor.Viewport, width, height int) {
	style := th.Waveform
	num := max(width/gtx.Dp(style.DpPerTick), 1)
	step := niceStep(vp.Width() / num)
	for ms := (vp.Start() + step - 1) / step * step; ms < vp.End(); ms += step {
		x := int(vp.Fraction(ms)*float64(width) + 0.5)
		fillRect(gtx, style.Tick, image.Rect(x, 0, x+1, height))
		stack := op.Offset(image.Pt(x+gtx.Dp(2), gtx.Dp(2))).Push(gtx.Ops)
		l := material.Label(th.Material, unit.Sp(10), gramocut.FormatMs(ms))
		l.Color = style.TickText
		l.Layout(gtx)
		stack.Pop()
	}
}

// layoutOverview draws the whole recording in a thin strip: every track at
// its position and the visible window as a frame.
func (w *Waveform) layoutOverview(gtx C, style WaveformStyle, m *editor.Model, r image.Rectangle) {
	if r.Dy() <= 0 {
		return
	}
	fillRect(gtx, black, r)
	frac := func(f float64) int { return r.Min.X + int(f*float64(r.Dx())+0.5) }
	for _, v := range m.TrackViews() {
		x1, x2 := frac(v.StartFrac), frac(v.EndFrac)
		fillRect(gtx, v.Color.Color, image.Rect(x1, r.Min.Y+1, max(x2, x1+1), r.Max.Y-1))
	}
	if n := m.Length(); n > 0 {
		vp := m.Viewport()
		x1 := frac(float64(vp.Start()) / float64(n))
		x2 := frac(float64(vp.End()) / float64(n))
		fillRect(gtx, style.Cursor, image.Rect(x1, r.Min.Y, x2, r.Min.Y+1))
		fillRect(gtx, style.Cursor, image.Rect(x1, r.Max.Y-1, x2, r.Max.Y))
	}
}

func (w *Waveform) update(gtx C, m *editor.Model, width int) {
	cfg := m.Config()
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target:  w,
			Kinds:   pointer.Scroll | pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel,
			ScrollY: pointer.ScrollRange{Min: -1e6, Max: 1e6},
		})
		if !ok {
			break
		}
		e, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		switch e.Kind {
		case pointer.Scroll:
			if e.Scroll.Y < 0 {
				m.Apply(editor.ZoomCommand{Factor: cfg.ZoomIn})
			} else if e.Scroll.Y > 0 {
				m.Apply(editor.ZoomCommand{Factor: cfg.ZoomOut})
			}
		case pointer.Press:
			if e.Buttons&pointer.ButtonSecondary != 0 {
				m.Apply(editor.ResetZoomCommand{})
			}
			if e.Buttons&pointer.ButtonPrimary != 0 {
				w.dragging = true
				w.moved = false
				w.dragID = e.PointerID
				w.dragStart = e.Position
				w.dragOrigin = e.Position
			}
		case pointer.Drag:
			if !w.dragging || e.PointerID != w.dragID {
				break
			}
			if d := e.Position.X - w.dragOrigin.X; d*d > 16 {
				w.moved = true
			}
			if w.moved {
				delta := int(float64(w.dragStart.X-e.Position.X) * float64(m.Viewport().Width()) / float64(width))
				if delta != 0 {
					m.Apply(editor.PanCommand{DeltaMs: delta})
					w.dragStart = e.Position
				}
			}
		case pointer.Release:
			if w.dragging && !w.moved {
				m.Apply(editor.PlaceCursorCommand{Fraction: float64(e.Position.X) / float64(width)})
			}
			w.dragging = false
		case pointer.Cancel:
			w.dragging = false
		}
	}
}

// niceStep rounds a tick distance in milliseconds up to 1, 2 or 5 times a
// power of ten, or to whole minutes.
func niceStep(ms int) int {
	if ms >= 60000 {
		return (ms + 59999) / 60000 * 60000
	}
	for p := 1; ; p *= 10 {
		for _, m := range []int{1, 2, 5} {
			if m*p >= ms {
				return m * p
			}
		}
	}
}

func fillRect(gtx C, c color.NRGBA, r image.Rectangle) {
	paint.FillShape(gtx.Ops, c, clip.Rect(r).Op())
}
