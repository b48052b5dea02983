package gioui

import (
	"fmt"
	"image"
	"io"
	"path/filepath"
	"strings"

	"gioui.org/app"
	"gioui.org/io/clipboard"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/transfer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/explorer"
	"github.com/vsariola/gramocut"
	"github.com/vsariola/gramocut/decode"
	"github.com/vsariola/gramocut/editor"
	"golang.org/x/exp/shiny/materialdesign/icons"
	"go.uber.org/zap"
)

type (
	// GUI is the gioui frontend of an editor.Model. It owns the model: all
	// model calls happen on the goroutine running Main.
	GUI struct {
		Theme      *Theme
		Waveform   *Waveform
		TrackRows  *TrackList
		PopupAlert *AlertsState
		Explorer   *explorer.Explorer
		Exploring  bool

		openBtn, zoomInBtn, zoomOutBtn, resetZoomBtn widget.Clickable
		addTrackBtn, deleteTrackBtn                  widget.Clickable
		undoBtn, redoBtn                             widget.Clickable

		preferences Preferences
		logger      *zap.Logger

		*editor.Model
	}

	C = layout.Context
	D = layout.Dimensions
)

func NewGUI(model *editor.Model, logger *zap.Logger) *GUI {
	if logger == nil {
		logger = zap.NewNop()
	}
	g := &GUI{
		Theme:      NewTheme(),
		Waveform:   new(Waveform),
		TrackRows:  NewTrackList(),
		PopupAlert: NewAlertsState(),
		logger:     logger,
		Model:      model,
	}
	var err error
	if g.preferences, err = LoadPreferences(); err != nil {
		model.Alerts().Add("Preferences", err.Error(), editor.Warning)
	}
	return g
}

// Main runs the window until it is closed.
func (g *GUI) Main() {
	var ops op.Ops
	w := g.newWindow()
	g.Explorer = explorer.NewExplorer(w)
	title := ""
	acks := make(chan struct{})
	events := make(chan event.Event)
	go func() {
		for {
			ev := w.Event()
			events <- ev
			<-acks
			if _, ok := ev.(app.DestroyEvent); ok {
				return
			}
		}
	}()
	for {
		select {
		case e := <-g.Broker().ToModel:
			g.ProcessMsg(e)
			w.Invalidate()
		case e := <-events:
			switch e := e.(type) {
			case app.DestroyEvent:
				editor.TrySend(g.Broker().CloseLoader, struct{}{})
				if e.Err != nil {
					g.logger.Error("window closed", zap.Error(e.Err))
				}
				acks <- struct{}{}
				return
			case app.FrameEvent:
				if t := titleFromPath(g.SourcePath()); t != title {
					title = t
					w.Option(app.Title(title))
				}
				gtx := app.NewContext(&ops, e)
				g.Layout(gtx)
				e.Frame(gtx.Ops)
			}
			acks <- struct{}{}
		}
	}
}

func (g *GUI) newWindow() *app.Window {
	w := new(app.Window)
	w.Option(app.Title(titleFromPath("")), app.Size(g.preferences.WindowSize()))
	if g.preferences.Window.Maximized {
		w.Option(app.Maximized.Option())
	}
	return w
}

func titleFromPath(path string) string {
	if path == "" {
		return "Gramocut"
	}
	return fmt.Sprintf("Gramocut - %s", filepath.Base(path))
}

func (g *GUI) Layout(gtx C) {
	defer clip.Rect(image.Rectangle{Max: gtx.Constraints.Max}).Push(gtx.Ops).Pop()
	paint.Fill(gtx.Ops, g.Theme.Material.Bg)
	event.Op(gtx.Ops, g)
	g.update(gtx)

	layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(g.layoutToolbar),
		layout.Rigid(func(gtx C) D {
			h := gtx.Dp(g.preferences.WaveformHeight())
			gtx.Constraints = layout.Exact(image.Pt(gtx.Constraints.Max.X, h))
			if !g.Loaded() {
				return g.layoutPlaceholder(gtx)
			}
			return g.Waveform.Layout(gtx, g.Theme, g.Model)
		}),
		layout.Flexed(1, func(gtx C) D {
			return layout.N.Layout(gtx, func(gtx C) D {
				gtx.Constraints.Max.X = min(gtx.Constraints.Max.X, gtx.Dp(g.preferences.TrackListWidth()))
				gtx.Constraints.Min.X = gtx.Constraints.Max.X
				return g.TrackRows.Layout(gtx, g.Theme, g.Model)
			})
		}),
	)
	alerts := Alerts(g.Alerts(), g.Theme, g.PopupAlert)
	alerts.Layout(gtx)
}

func (g *GUI) layoutPlaceholder(gtx C) D {
	paint.FillShape(gtx.Ops, g.Theme.Waveform.Bg, clip.Rect{Max: gtx.Constraints.Max}.Op())
	msg := "Open a recording (Ctrl+O)"
	if g.Loading() {
		msg = "Loading..."
	}
	return layout.Center.Layout(gtx, func(gtx C) D {
		l := material.H6(g.Theme.Material, msg)
		l.Color = mediumEmphasisTextColor
		return l.Layout(gtx)
	})
}

func (g *GUI) layoutToolbar(gtx C) D {
	th := g.Theme.Material
	if g.openBtn.Clicked(gtx) {
		g.chooseFile()
	}
	clicks := []struct {
		btn    *widget.Clickable
		action editor.Action
	}{
		{&g.zoomInBtn, g.ZoomIn()},
		{&g.zoomOutBtn, g.ZoomOut()},
		{&g.resetZoomBtn, g.ResetZoom()},
		{&g.addTrackBtn, g.AddTrack()},
		{&g.deleteTrackBtn, g.DeleteTrack()},
		{&g.undoBtn, g.History().Undo()},
		{&g.redoBtn, g.History().Redo()},
	}
	for _, c := range clicks {
		if c.btn.Clicked(gtx) {
			c.action.Do()
		}
	}
	btn := func(c *widget.Clickable, icon []byte, description string, enabled bool) layout.FlexChild {
		return layout.Rigid(IconButton(th, c, icon, description, enabled).Layout)
	}
	status := func(gtx C) D {
		txt := ""
		if g.Loaded() {
			v := g.View()
			txt = fmt.Sprintf("%s / %s   cursor %s   %d tracks, %s",
				gramocut.FormatMs(v.End-v.Start), gramocut.FormatMs(g.Length()),
				gramocut.FormatMs(v.Cursor), g.TrackCount(), gramocut.FormatMs(g.Duration()))
		}
		l := material.Body2(th, txt)
		l.Color = mediumEmphasisTextColor
		return layout.Inset{Left: unit.Dp(12)}.Layout(gtx, l.Layout)
	}
	return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
		btn(&g.openBtn, icons.FileFolderOpen, "Open (Ctrl+O)", !g.Exploring && !g.Loading()),
		btn(&g.zoomInBtn, icons.ActionZoomIn, "Zoom in (+)", g.ZoomIn().Enabled()),
		btn(&g.zoomOutBtn, icons.ActionZoomOut, "Zoom out (-)", g.ZoomOut().Enabled()),
		btn(&g.resetZoomBtn, icons.NavigationFullscreen, "Show all (0)", g.ResetZoom().Enabled()),
		btn(&g.addTrackBtn, icons.ContentAdd, "Add track at cursor (N)", g.AddTrack().Enabled()),
		btn(&g.deleteTrackBtn, icons.ActionDelete, "Delete selected tracks (Del)", g.DeleteTrack().Enabled()),
		btn(&g.undoBtn, icons.ContentUndo, "Undo (Ctrl+Z)", g.History().Undo().Enabled()),
		btn(&g.redoBtn, icons.ContentRedo, "Redo (Ctrl+Y)", g.History().Redo().Enabled()),
		layout.Flexed(1, status),
	)
}

// chooseFile opens the platform file dialog, unless one is already open or a
// file is still loading.
func (g *GUI) chooseFile() {
	if g.Exploring || g.Explorer == nil || g.Loading() {
		return
	}
	g.Exploring = true
	go func() {
		file, err := g.Explorer.ChooseFile(decode.Extensions...)
		g.Broker().ToModel <- editor.MsgToModel{Data: func() {
			g.Exploring = false
			if err == nil {
				g.LoadReader(file)
			} else if err != explorer.ErrUserDecline {
				g.Alerts().Add("Explorer", err.Error(), editor.Error)
			}
		}}
	}()
}

// update is the top level input handler: global key bindings and clipboard
// data.
func (g *GUI) update(gtx C) {
	for {
		ev, ok := gtx.Event(
			key.Filter{Name: "", Optional: key.ModShift | key.ModShortcut | key.ModAlt},
			transfer.TargetFilter{Target: g, Type: "application/text"},
		)
		if !ok {
			break
		}
		switch e := ev.(type) {
		case key.Event:
			if e.State == key.Press {
				g.keyEvent(gtx, e)
			}
		case transfer.DataEvent:
			g.paste(e.Open())
		}
	}
}

func (g *GUI) keyEvent(gtx C, e key.Event) {
	l := g.TrackList()
	if e.Modifiers.Contain(key.ModShortcut) {
		switch e.Name {
		case "O":
			g.chooseFile()
		case "Z":
			if e.Modifiers.Contain(key.ModShift) {
				g.History().Redo().Do()
			} else {
				g.History().Undo().Do()
			}
		case "Y":
			g.History().Redo().Do()
		case "C":
			if data, ok := l.CopySelection(); ok {
				gtx.Execute(clipboard.WriteCmd{Type: "application/text", Data: io.NopCloser(strings.NewReader(string(data)))})
			}
		case "V":
			gtx.Execute(clipboard.ReadCmd{Tag: g})
		}
		return
	}
	pan := max(g.View().End-g.View().Start, 1) / 10
	switch e.Name {
	case "+":
		g.ZoomIn().Do()
	case "-":
		g.ZoomOut().Do()
	case "0":
		g.ResetZoom().Do()
	case "N":
		g.AddTrack().Do()
	case key.NameDeleteForward:
		g.DeleteTrack().Do()
	case key.NameLeftArrow:
		g.Apply(editor.PanCommand{DeltaMs: -pan})
	case key.NameRightArrow:
		g.Apply(editor.PanCommand{DeltaMs: pan})
	case key.NameUpArrow, key.NameDownArrow:
		delta := 1
		if e.Name == key.NameUpArrow {
			delta = -1
		}
		switch {
		case e.Modifiers.Contain(key.ModAlt):
			l.MoveSelection(delta)
		case e.Modifiers.Contain(key.ModShift):
			l.SetSelected2(l.Selected2() + delta)
		default:
			l.SetSelected(l.Selected() + delta)
			l.SetSelected2(l.Selected())
		}
	}
}

func (g *GUI) paste(rc io.ReadCloser) {
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return
	}
	if !g.TrackList().Paste(data) {
		g.Alerts().Add("Paste", "clipboard does not contain tracks that fit in this recording", editor.Warning)
	}
}
