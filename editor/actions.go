package editor

type (
	zoomIn    Model
	zoomOut   Model
	resetZoom Model
)

// ZoomIn returns an Action narrowing the window by the configured factor.
func (m *Model) ZoomIn() Action    { return MakeAction((*zoomIn)(m)) }
func (m *Model) ZoomOut() Action   { return MakeAction((*zoomOut)(m)) }
func (m *Model) ResetZoom() Action { return MakeAction((*resetZoom)(m)) }

func (m *zoomIn) Enabled() bool { return m.viewport.Width() > m.viewport.minWidth() }
func (m *zoomIn) Do()           { (*Model)(m).Apply(ZoomCommand{Factor: m.config.ZoomIn}) }

func (m *zoomOut) Enabled() bool { return m.viewport.Width() < m.viewport.Length() }
func (m *zoomOut) Do()           { (*Model)(m).Apply(ZoomCommand{Factor: m.config.ZoomOut}) }

func (m *resetZoom) Enabled() bool { return m.viewport.Width() < m.viewport.Length() }
func (m *resetZoom) Do()           { (*Model)(m).Apply(ResetZoomCommand{}) }
