package editor

import "github.com/vsariola/gramocut"

type (
	// TrackView is everything a renderer needs to draw one track: the track
	// itself, its position in the list, its color and label, and its position
	// relative to the whole recording.
	TrackView struct {
		gramocut.Track
		Index     int
		Color     gramocut.NamedColor
		Label     string
		StartFrac float64
		EndFrac   float64
	}

	// OpKind tells what a reconciliation Op does to a render handle.
	OpKind int

	// Op is one step of a reconciliation plan. Create ops carry no handle,
	// Destroy ops carry no view.
	Op[H any] struct {
		Kind   OpKind
		Index  int
		Handle H
		View   TrackView
	}

	// Renderer owns the render handles; Apply calls it to carry out a plan.
	Renderer[H any] interface {
		Create(view TrackView) H
		Update(handle H, view TrackView)
		Destroy(handle H)
	}
)

const (
	OpUpdate OpKind = iota
	OpCreate
	OpDestroy
)

func (k OpKind) String() string {
	switch k {
	case OpUpdate:
		return "Update"
	case OpCreate:
		return "Create"
	case OpDestroy:
		return "Destroy"
	}
	return "Unknown"
}

// Reconcile aligns handles with views by position: handles[i] is updated to
// show views[i], views without a handle get one created and handles without
// a view are destroyed. The ops are ordered by index.
func Reconcile[H any](views []TrackView, handles []H) []Op[H] {
	n := max(len(views), len(handles))
	ret := make([]Op[H], 0, n)
	for i := range n {
		switch {
		case i < len(views) && i < len(handles):
			ret = append(ret, Op[H]{Kind: OpUpdate, Index: i, Handle: handles[i], View: views[i]})
		case i < len(views):
			ret = append(ret, Op[H]{Kind: OpCreate, Index: i, View: views[i]})
		default:
			ret = append(ret, Op[H]{Kind: OpDestroy, Index: i, Handle: handles[i]})
		}
	}
	return ret
}

// Apply executes ops against r and returns the new handle list, which has
// one handle per view. handles is not modified.
func Apply[H any](ops []Op[H], handles []H, r Renderer[H]) []H {
	ret := make([]H, 0, len(ops))
	for _, op := range ops {
		switch op.Kind {
		case OpUpdate:
			r.Update(op.Handle, op.View)
			ret = append(ret, op.Handle)
		case OpCreate:
			ret = append(ret, r.Create(op.View))
		case OpDestroy:
			r.Destroy(op.Handle)
		}
	}
	return ret
}

// Sync reconciles handles with views and applies the plan in one go.
func Sync[H any](views []TrackView, handles []H, r Renderer[H]) []H {
	return Apply(Reconcile(views, handles), handles, r)
}
