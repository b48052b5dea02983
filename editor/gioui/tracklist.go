package gioui

import (
	"fmt"
	"image"

	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/vsariola/gramocut"
	"github.com/vsariola/gramocut/editor"
	"golang.org/x/exp/shiny/materialdesign/icons"
)

type (
	// TrackList shows one row per track. The rows are render handles kept
	// in step with the model by editor.Sync whenever the tracks change.
	TrackList struct {
		rows    []*trackRow
		version int
		synced  bool
		list    widget.List
	}

	trackRow struct {
		view  editor.TrackView
		alive bool

		selectBtn   widget.Clickable
		setStartBtn widget.Clickable
		setEndBtn   widget.Clickable
		deleteBtn   widget.Clickable

		number widget.Editor
		title  widget.Editor
		artist widget.Editor
	}

	rowRenderer struct{}
)

func NewTrackList() *TrackList {
	return &TrackList{list: widget.List{List: layout.List{Axis: layout.Vertical}}}
}

func (rowRenderer) Create(view editor.TrackView) *trackRow {
	r := &trackRow{view: view, alive: true}
	for _, ed := range []*widget.Editor{&r.number, &r.title, &r.artist} {
		ed.SingleLine = true
		ed.Submit = true
	}
	r.number.SetText(view.Number)
	r.title.SetText(view.Title)
	r.artist.SetText(view.Artist)
	return r
}

func (rowRenderer) Update(r *trackRow, view editor.TrackView) { r.view = view }

func (rowRenderer) Destroy(r *trackRow) { r.alive = false }

// Sync brings the rows up to date with the model; it is a no-op when the
// tracks have not changed since the last call.
func (tl *TrackList) Sync(m *editor.Model) {
	if tl.synced && tl.version == m.TracksVersion() {
		return
	}
	tl.rows = editor.Sync(m.TrackViews(), tl.rows, rowRenderer{})
	tl.version = m.TracksVersion()
	tl.synced = true
}

func (tl *TrackList) Layout(gtx C, th *Theme, m *editor.Model) D {
	tl.Sync(m)
	for _, r := range tl.rows {
		if r.update(gtx, m) {
			break
		}
	}
	tl.Sync(m) // the rows may have edited the tracks
	l := m.TrackList()
	lo, hi := min(l.Selected(), l.Selected2()), max(l.Selected(), l.Selected2())
	return material.List(th.Material, &tl.list).Layout(gtx, len(tl.rows), func(gtx C, i int) D {
		r := tl.rows[i]
		return r.layout(gtx, th, i >= lo && i <= hi)
	})
}

// update handles the input of the row. It returns true if the row deleted its
// track, after which the indices of the following rows are stale.
func (r *trackRow) update(gtx C, m *editor.Model) (deleted bool) {
	if !r.alive {
		return false
	}
	i := r.view.Index
	if r.selectBtn.Clicked(gtx) {
		l := m.TrackList()
		l.SetSelected(i)
		l.SetSelected2(i)
		m.Apply(editor.SetCursorCommand{Ms: r.view.Start})
	}
	if r.setStartBtn.Clicked(gtx) {
		m.TrackStart(i).SetValue(m.View().Cursor)
	}
	if r.setEndBtn.Clicked(gtx) {
		m.TrackEnd(i).SetValue(m.View().Cursor)
	}
	if r.deleteBtn.Clicked(gtx) {
		m.Apply(editor.DeleteTrackCommand{Index: i})
		return true
	}
	commit := func(ed *widget.Editor, s editor.String) {
		for {
			ev, ok := ed.Update(gtx)
			if !ok {
				break
			}
			switch ev.(type) {
			case widget.ChangeEvent, widget.SubmitEvent:
				s.SetValue(ed.Text())
			}
		}
	}
	commit(&r.number, m.TrackNumber(i))
	commit(&r.title, m.TrackTitle(i))
	commit(&r.artist, m.TrackArtist(i))
	return false
}

func (r *trackRow) layout(gtx C, th *Theme, selected bool) D {
	style := th.TrackRow
	// keep the editors showing the model unless the user is typing in them
	refresh := func(ed *widget.Editor, value string) {
		if !gtx.Focused(ed) && ed.Text() != value {
			ed.SetText(value)
		}
	}
	refresh(&r.number, r.view.Number)
	refresh(&r.title, r.view.Title)
	refresh(&r.artist, r.view.Artist)

	row := func(gtx C) D {
		return style.Inset.Layout(gtx, func(gtx C) D {
			return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
				layout.Rigid(func(gtx C) D {
					return r.selectBtn.Layout(gtx, func(gtx C) D {
						return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
							layout.Rigid(func(gtx C) D {
								sz := gtx.Dp(style.Swatch)
								fillRect(gtx, r.view.Color.Color, image.Rect(0, 0, sz, sz))
								return D{Size: image.Pt(sz, sz)}
							}),
							layout.Rigid(layout.Spacer{Width: unit.Dp(6)}.Layout),
							layout.Rigid(func(gtx C) D {
								txt := fmt.Sprintf("%s - %s", gramocut.FormatMs(r.view.Start), gramocut.FormatMs(r.view.End))
								l := material.Body2(th.Material, txt)
								l.Color = mediumEmphasisTextColor
								return l.Layout(gtx)
							}),
						)
					})
				}),
				layout.Rigid(layout.Spacer{Width: unit.Dp(6)}.Layout),
				layout.Rigid(func(gtx C) D {
					gtx.Constraints.Min.X = gtx.Dp(32)
					gtx.Constraints.Max.X = gtx.Dp(32)
					return material.Editor(th.Material, &r.number, "#").Layout(gtx)
				}),
				layout.Flexed(0.6, func(gtx C) D {
					return material.Editor(th.Material, &r.title, "Title").Layout(gtx)
				}),
				layout.Flexed(0.4, func(gtx C) D {
					return material.Editor(th.Material, &r.artist, "Artist").Layout(gtx)
				}),
				layout.Rigid(IconButton(th.Material, &r.setStartBtn, icons.NavigationFirstPage, "Set start to cursor", true).Layout),
				layout.Rigid(IconButton(th.Material, &r.setEndBtn, icons.NavigationLastPage, "Set end to cursor", true).Layout),
				layout.Rigid(IconButton(th.Material, &r.deleteBtn, icons.ActionDelete, "Delete track", true).Layout),
			)
		})
	}
	if !selected {
		return row(gtx)
	}
	return layout.Background{}.Layout(gtx, func(gtx C) D {
		fillRect(gtx, style.Selected, image.Rectangle{Max: gtx.Constraints.Min})
		return D{Size: gtx.Constraints.Min}
	}, row)
}
