package gioui

import (
	"image"
	"time"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/widget/material"
	"github.com/vsariola/gramocut/editor"
)

type (
	AlertsState struct {
		prevUpdate time.Time
	}

	AlertsWidget struct {
		Theme *Theme
		Model *editor.Alerts
		State *AlertsState
	}
)

func NewAlertsState() *AlertsState {
	return &AlertsState{prevUpdate: time.Now()}
}

func Alerts(m *editor.Alerts, th *Theme, st *AlertsState) AlertsWidget {
	return AlertsWidget{Theme: th, Model: m, State: st}
}

// Layout stacks the live alerts at the bottom of the window, most severe
// lowest.
func (a *AlertsWidget) Layout(gtx C) D {
	now := time.Now()
	if a.Model.Update(now.Sub(a.State.prevUpdate)) {
		gtx.Execute(op.InvalidateCmd{At: now.Add(50 * time.Millisecond)})
	}
	a.State.prevUpdate = now

	styles := a.Theme.Alert
	totalY := 0
	for _, alert := range a.Model.Iterate() {
		var style AlertStyle
		switch alert.Priority {
		case editor.Warning:
			style = styles.Warning
		case editor.Error:
			style = styles.Error
		default:
			style = styles.Info
		}
		styles.Margin.Layout(gtx, func(gtx C) D {
			return layout.S.Layout(gtx, func(gtx C) D {
				gtx.Constraints.Min.X = gtx.Constraints.Max.X
				recording := op.Record(gtx.Ops)
				dims := layout.Stack{Alignment: layout.Center}.Layout(gtx,
					layout.Expanded(func(gtx C) D {
						paint.FillShape(gtx.Ops, style.Bg, clip.Rect{Max: gtx.Constraints.Min}.Op())
						return D{Size: gtx.Constraints.Min}
					}),
					layout.Stacked(func(gtx C) D {
						return styles.Inset.Layout(gtx, func(gtx C) D {
							l := material.Body1(a.Theme.Material, alert.Message)
							l.Color = style.Text
							return l.Layout(gtx)
						})
					}),
				)
				macro := recording.Stop()
				stack := op.Offset(image.Pt(0, -totalY)).Push(gtx.Ops)
				macro.Add(gtx.Ops)
				stack.Pop()
				totalY += dims.Size.Y + gtx.Dp(styles.Margin.Bottom)
				return dims
			})
		})
	}
	return D{}
}
