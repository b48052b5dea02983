package editor

import "github.com/vsariola/gramocut"

// Handles are small values the GUI keeps to read and change one part of the
// model. They guard the model: a disabled Action does nothing, an Int never
// leaves its range and a List edit that fails is rolled back.

type (
	// Action is something the user can do, bound to a button or a key.
	Action struct {
		doer Doer
	}

	Doer interface {
		Do()
	}

	// Enabler is implemented by doers that are not always available, e.g.
	// undo with an empty history.
	Enabler interface {
		Enabled() bool
	}
)

func MakeAction(doer Doer) Action { return Action{doer: doer} }

func (a Action) Enabled() bool {
	if a.doer == nil {
		return false
	}
	if e, ok := a.doer.(Enabler); ok {
		return e.Enabled()
	}
	return true
}

func (a Action) Do() {
	if a.Enabled() {
		a.doer.Do()
	}
}

type (
	// Int is a position in milliseconds, e.g. a track edge. Values are
	// clamped to Range before they reach the model.
	Int struct {
		value IntValue
	}

	IntValue interface {
		Value() int
		SetValue(int) (changed bool)
		Range() Bounds
	}

	// Bounds is the inclusive range [Min, Max].
	Bounds struct{ Min, Max int }
)

func MakeInt(value IntValue) Int { return Int{value: value} }

func (v Int) Value() int {
	if v.value == nil {
		return 0
	}
	return v.value.Value()
}

func (v Int) Range() Bounds {
	if v.value == nil {
		return Bounds{}
	}
	return v.value.Range()
}

// SetValue clamps value to the range and reports whether the model changed.
func (v Int) SetValue(value int) (changed bool) {
	if v.value == nil {
		return false
	}
	value = v.Range().Clamp(value)
	if value == v.value.Value() {
		return false
	}
	return v.value.SetValue(value)
}

func (v Int) String() string { return gramocut.FormatMs(v.Value()) }

func (b Bounds) Clamp(value int) int { return max(min(value, b.Max), b.Min) }

type (
	// String is a free text field of the model, e.g. a track title.
	String struct {
		value StringValue
	}

	StringValue interface {
		Value() string
		SetValue(string) (changed bool)
	}
)

func MakeString(value StringValue) String { return String{value: value} }

func (v String) Value() string {
	if v.value == nil {
		return ""
	}
	return v.value.Value()
}

func (v String) SetValue(value string) (changed bool) {
	if v.value == nil || v.value.Value() == value {
		return false
	}
	return v.value.SetValue(value)
}

type (
	// List is an editable list with a selection: the elements between
	// Selected and Selected2, both included.
	List struct {
		data ListData
	}

	// ListData is the model side of a List. Every edit is bracketed by
	// Change; calling Cancel before the returned func restores the list.
	ListData interface {
		Selected() int
		Selected2() int
		SetSelected(int)
		SetSelected2(int)
		Count() int

		Change(kind string, severity ChangeSeverity) func()
		Cancel()
		Move(r Range, delta int) (ok bool)
		Delete(r Range) (ok bool)
		Marshal(r Range) ([]byte, error)
		Unmarshal([]byte) (r Range, err error)
	}

	// Range is the half-open range [Start, End).
	Range struct{ Start, End int }
)

func MakeList(data ListData) List { return List{data: data} }

func (l List) Count() int     { return l.data.Count() }
func (l List) Selected() int  { return l.clamp(l.data.Selected()) }
func (l List) Selected2() int { return l.clamp(l.data.Selected2()) }

func (l List) SetSelected(i int)  { l.data.SetSelected(l.clamp(i)) }
func (l List) SetSelected2(i int) { l.data.SetSelected2(l.clamp(i)) }

// Select selects the single element i.
func (l List) Select(i int) {
	l.SetSelected(i)
	l.SetSelected2(i)
}

// Selection returns the selected elements; empty for an empty list.
func (l List) Selection() Range {
	a, b := l.Selected(), l.Selected2()
	return Range{Start: min(a, b), End: min(max(a, b)+1, l.Count())}
}

// MoveSelection shifts the selected elements by delta places, keeping them
// selected. Moves past either end of the list fail.
func (l List) MoveSelection(delta int) bool {
	r := l.Selection()
	if delta == 0 || r.Len() == 0 || r.Start+delta < 0 || r.End+delta > l.Count() {
		return false
	}
	sel, sel2 := l.Selected()+delta, l.Selected2()+delta
	return l.edit("Move", func() bool {
		if !l.data.Move(r, delta) {
			return false
		}
		l.SetSelected(sel)
		l.SetSelected2(sel2)
		return true
	})
}

// DeleteSelection removes the selected elements and selects the element
// that took the place of the first one.
func (l List) DeleteSelection() bool {
	r := l.Selection()
	if r.Len() == 0 {
		return false
	}
	return l.edit("Delete", func() bool {
		if !l.data.Delete(r) {
			return false
		}
		l.Select(r.Start)
		return true
	})
}

// CopySelection marshals the selected elements for the clipboard.
func (l List) CopySelection() ([]byte, bool) {
	r := l.Selection()
	if r.Len() == 0 {
		return nil, false
	}
	data, err := l.data.Marshal(r)
	return data, err == nil
}

// Paste inserts clipboard data and selects what was pasted. Nothing changes
// if any of the data is rejected.
func (l List) Paste(data []byte) bool {
	return l.edit("Paste", func() bool {
		r, err := l.data.Unmarshal(data)
		if err != nil {
			return false
		}
		l.SetSelected(r.Start)
		l.SetSelected2(r.End - 1)
		return true
	})
}

// edit runs f as one undo step, rolling it back if f fails.
func (l List) edit(kind string, f func() bool) bool {
	defer l.data.Change(kind, MajorChange)()
	if !f() {
		l.data.Cancel()
		return false
	}
	return true
}

func (l List) clamp(i int) int { return max(min(i, l.data.Count()-1), 0) }

func (r Range) Len() int { return r.End - r.Start }
