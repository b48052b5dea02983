package editor

import (
	"errors"
	"fmt"
	"io"
	"text/template"

	"github.com/vsariola/gramocut"
	"go.uber.org/zap"
)

type (
	// Model is the editing session: the loaded source, its envelope, the
	// tracks marked on it, the viewport and the undo history. There is no
	// global state; everything the editor does goes through a Model. A Model
	// is not safe for concurrent use: it is owned by one goroutine, and
	// background work reaches it only through the Broker.
	Model struct {
		d modelData

		envelope gramocut.Envelope
		viewport Viewport

		undoStack    []modelData
		redoStack    []modelData
		prevUndoKind string

		changeLevel    int
		changeCancel   bool
		changeSnapshot modelData

		tracksVersion int
		loading       bool
		loadSeq       int

		alerts []Alert

		config Config
		label  *template.Template
		broker *Broker
		logger *zap.Logger
	}

	// modelData is the part of the session that undo and redo restore.
	modelData struct {
		Tracks     gramocut.TrackStore
		Selected   int
		Selected2  int
		SourcePath string
	}

	// ChangeSeverity tells the history whether consecutive changes of the same
	// kind may be merged into one undo step.
	ChangeSeverity int
)

const (
	MajorChange ChangeSeverity = iota
	MinorChange
)

const maxUndo = 64

// NewModel returns an empty session. logger may be nil.
func NewModel(broker *Broker, logger *zap.Logger, config Config) *Model {
	if broker == nil {
		broker = NewBroker()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Model{broker: broker, logger: logger, config: config.sanitized()}
	label, err := parseLabel(m.config.Label)
	if err != nil {
		m.logger.Warn("invalid label template, using default", zap.Error(err))
		label, _ = parseLabel(DefaultConfig().Label)
	}
	m.label = label
	return m
}

func (d *modelData) Copy() modelData {
	ret := *d
	ret.Tracks = d.Tracks.Copy()
	return ret
}

func (m *Model) Broker() *Broker             { return m.broker }
func (m *Model) Config() Config              { return m.config }
func (m *Model) Envelope() gramocut.Envelope { return m.envelope }
func (m *Model) SourcePath() string          { return m.d.SourcePath }
func (m *Model) Length() int                 { return m.viewport.Length() }
func (m *Model) Loaded() bool                { return m.envelope.Len() > 0 }
func (m *Model) Loading() bool               { return m.loading }
func (m *Model) View() ViewState             { return m.viewport.State() }
func (m *Model) Viewport() *Viewport         { return &m.viewport }
func (m *Model) TrackCount() int             { return m.d.Tracks.Count() }
func (m *Model) Duration() int               { return m.d.Tracks.Duration() }

// TracksVersion is bumped whenever the track list or the source length
// changes. Hosts reconcile their track rows when it differs from the value
// they saw last.
func (m *Model) TracksVersion() int { return m.tracksVersion }

func (m *Model) Track(i int) (gramocut.Track, bool) { return m.d.Tracks.Get(i) }
func (m *Model) Tracks() []gramocut.Track           { return m.d.Tracks.Tracks() }

// SetAudio replaces the session source with buf. It is all or nothing: if an
// envelope cannot be derived from buf, the session is left untouched, an
// error alert is shown and the *gramocut.InvalidAudioError is returned. On
// success the envelope is replaced, tracks and history are cleared and the
// viewport shows the whole recording.
func (m *Model) SetAudio(buf gramocut.MonoBuffer, path string) error {
	env, err := gramocut.NewEnvelope(buf)
	if err != nil {
		m.loadFailed(path, err)
		return err
	}
	m.installAudio(env, path)
	return nil
}

// LoadFile starts decoding path in the background. The session changes only
// when the result is processed by ProcessMsg. Starting a new load supersedes
// the ones still running: only the newest result is installed.
func (m *Model) LoadFile(path string) {
	m.startLoad(path)
	m.broker.LoadFile(m.loadSeq, path)
}

// LoadReader starts decoding an already opened source in the background.
// If rc has a Name method, e.g. *os.File, the name is used as the source
// path and to pick the format.
func (m *Model) LoadReader(rc io.ReadCloser) {
	name := ""
	if n, ok := rc.(interface{ Name() string }); ok {
		name = n.Name()
	}
	m.startLoad(name)
	m.broker.LoadReader(m.loadSeq, name, rc)
}

func (m *Model) startLoad(path string) {
	m.loadSeq++
	m.loading = true
	m.logger.Info("loading", zap.String("path", path), zap.Int("seq", m.loadSeq))
}

// ProcessMsg handles a message received from Broker.ToModel.
func (m *Model) ProcessMsg(msg MsgToModel) {
	switch e := msg.Data.(type) {
	case *AudioLoaded:
		if e.Seq != m.loadSeq {
			m.logger.Debug("dropping superseded load", zap.String("path", e.Path), zap.Int("seq", e.Seq))
			return
		}
		m.loading = false
		if e.Err != nil {
			m.loadFailed(e.Path, e.Err)
			return
		}
		m.installAudio(e.Envelope, e.Path)
	case Alert:
		m.Alerts().AddAlert(e)
	case func():
		e()
	}
}

func (m *Model) installAudio(env gramocut.Envelope, path string) {
	m.envelope = env
	m.viewport.SetLength(env.Len())
	m.d = modelData{SourcePath: path}
	m.undoStack = nil
	m.redoStack = nil
	m.prevUndoKind = ""
	m.tracksVersion++
	m.logger.Info("source loaded", zap.String("path", path), zap.String("length", gramocut.FormatMs(env.Len())))
}

func (m *Model) loadFailed(path string, err error) {
	m.logger.Warn("load failed", zap.String("path", path), zap.Error(err))
	var invalid *gramocut.InvalidAudioError
	if errors.As(err, &invalid) {
		m.Alerts().Add("LoadError", "cannot process this source", Error)
		return
	}
	m.Alerts().Add("LoadError", fmt.Sprintf("cannot open %s: %v", path, err), Error)
}

// change marks the beginning of a change to modelData, and the returned
// function its end. Changes nest; only the outermost one touches the history.
// A MinorChange of the same kind as the previous one is merged into the
// previous undo step, so that e.g. dragging a track edge is undone at once.
func (m *Model) change(kind string, severity ChangeSeverity) func() {
	if m.changeLevel == 0 {
		m.changeSnapshot = m.d.Copy()
		m.changeCancel = false
	}
	m.changeLevel++
	return func() {
		m.changeLevel--
		if m.changeLevel > 0 {
			return
		}
		if m.changeCancel {
			m.d = m.changeSnapshot
			m.changeCancel = false
			return
		}
		if severity == MajorChange || kind != m.prevUndoKind {
			m.undoStack = pushBounded(m.undoStack, m.changeSnapshot)
		}
		if severity == MinorChange {
			m.prevUndoKind = kind
		} else {
			m.prevUndoKind = ""
		}
		m.redoStack = m.redoStack[:0]
		m.tracksVersion++
	}
}

// Apply executes one command against the session and returns the resulting
// view. Only commands addressing a track can fail: with a
// *gramocut.IndexError for a missing track, or a *gramocut.TrackRangeError
// when the new bounds do not fit the recording. The session is unchanged in
// that case.
func (m *Model) Apply(cmd Command) (ViewState, error) {
	var err error
	switch c := cmd.(type) {
	case ZoomCommand:
		m.viewport.Zoom(c.Factor)
	case PanCommand:
		m.viewport.Pan(c.DeltaMs)
	case PlaceCursorCommand:
		m.viewport.PlaceCursor(c.Fraction)
	case SetCursorCommand:
		m.viewport.SetCursor(c.Ms)
	case ResetZoomCommand:
		m.viewport.ResetZoom()
	case CreateTrackCommand:
		m.createTrack(c.LengthMs)
	case DeleteTrackCommand:
		err = m.deleteTrack(c.Index)
	case SetTrackCommand:
		err = m.setTrack(c.Index, c.Track)
	case EditTrackCommand:
		err = m.editTrack(c)
	default:
		err = fmt.Errorf("unknown command %T", cmd)
	}
	if err != nil {
		m.logger.Debug("command failed", zap.String("command", fmt.Sprint(cmd)), zap.Error(err))
	}
	return m.viewport.State(), err
}

func (m *Model) createTrack(length int) {
	if length <= 0 {
		length = m.config.NewTrackLength
	}
	start := m.viewport.Cursor()
	t := gramocut.Track{
		Start:  start,
		End:    min(start+length, m.viewport.Length()),
		Number: fmt.Sprint(m.d.Tracks.Count() + 1),
	}
	defer m.change("CreateTrack", MajorChange)()
	m.d.Tracks.Append(t)
	m.d.Selected = m.d.Tracks.Count() - 1
	m.d.Selected2 = m.d.Selected
}

func (m *Model) deleteTrack(index int) error {
	defer m.change("DeleteTrack", MajorChange)()
	if err := m.d.Tracks.RemoveAt(index); err != nil {
		m.changeCancel = true
		return err
	}
	m.d.Selected = max(min(m.d.Selected, m.d.Tracks.Count()-1), 0)
	m.d.Selected2 = m.d.Selected
	return nil
}

func (m *Model) setTrack(index int, t gramocut.Track) error {
	defer m.change("SetTrack", MajorChange)()
	if err := m.d.Tracks.Set(index, t); err != nil {
		m.changeCancel = true
		return err
	}
	if err := t.Check(m.Length()); err != nil {
		m.changeCancel = true
		return err
	}
	return nil
}

func (m *Model) editTrack(c EditTrackCommand) error {
	t, ok := m.d.Tracks.Get(c.Index)
	if !ok {
		return &gramocut.IndexError{Index: c.Index, Count: m.d.Tracks.Count()}
	}
	return m.setTrack(c.Index, c.overlay(t))
}

// TrackViews returns the render description of every track, in list order.
func (m *Model) TrackViews() []TrackView {
	ret := make([]TrackView, m.d.Tracks.Count())
	for i := range ret {
		t, _ := m.d.Tracks.Get(i)
		ret[i] = m.trackView(i, t)
	}
	return ret
}

// VisibleTracks returns the tracks that intersect the current window.
func (m *Model) VisibleTracks() []TrackView {
	vis := m.d.Tracks.VisibleIn(m.viewport.Start(), m.viewport.End())
	ret := make([]TrackView, len(vis))
	for i, it := range vis {
		ret[i] = m.trackView(it.Index, it.Track)
	}
	return ret
}

func (m *Model) trackView(i int, t gramocut.Track) TrackView {
	v := TrackView{Track: t, Index: i, Color: m.config.Palette.ColorFor(i), Label: m.renderLabel(i, t)}
	if n := m.viewport.Length(); n > 0 {
		v.StartFrac = float64(t.Start) / float64(n)
		v.EndFrac = float64(t.End) / float64(n)
	}
	return v
}
