// Package editor contains the session model of gramocut: the loaded source
// and its envelope, the tracks marked on it, the viewport over the recording,
// the undo history and the configuration. The model is independent of any
// GUI toolkit; a frontend drives it with Commands and Actions and draws
// what TrackViews, VisibleTracks and View report.
package editor
