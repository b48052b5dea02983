package editor

import (
	"fmt"

	"github.com/vsariola/gramocut"
	"gopkg.in/yaml.v3"
)

type (
	// Command is a request to change the session, see Model.Apply. Commands
	// are plain values so that hosts can build them from GUI events, key
	// bindings or scripts alike.
	Command interface {
		command()
	}

	ZoomCommand        struct{ Factor float64 }
	PanCommand         struct{ DeltaMs int }
	PlaceCursorCommand struct{ Fraction float64 }
	SetCursorCommand   struct{ Ms int }
	ResetZoomCommand   struct{}

	// CreateTrackCommand adds a track starting at the cursor. LengthMs <= 0
	// uses the configured new track length.
	CreateTrackCommand struct{ LengthMs int }
	DeleteTrackCommand struct{ Index int }

	// SetTrackCommand replaces the track at Index. The new track must fit
	// in the recording.
	SetTrackCommand struct {
		Index int
		Track gramocut.Track
	}

	// EditTrackCommand changes only the Fields of the track at Index,
	// taking their new values from Track.
	EditTrackCommand struct {
		Index  int
		Fields TrackField
		Track  gramocut.Track
	}

	TrackField uint8

	// scriptStep is one element of a command script. Exactly one of the
	// fields is expected to be set.
	scriptStep struct {
		Zoom   *float64        `yaml:"zoom"`
		Pan    *int            `yaml:"pan"`
		Cursor *float64        `yaml:"cursor"`
		Seek   *int            `yaml:"seek"`
		Reset  bool            `yaml:"reset"`
		Create *int            `yaml:"create"`
		Delete *int            `yaml:"delete"`
		Set    *scriptSetTrack `yaml:"set"`
	}

	scriptSetTrack struct {
		Index  int     `yaml:"index"`
		Start  *int    `yaml:"start"`
		End    *int    `yaml:"end"`
		Number *string `yaml:"number"`
		Title  *string `yaml:"title"`
		Artist *string `yaml:"artist"`
	}
)

const (
	StartField TrackField = 1 << iota
	EndField
	NumberField
	TitleField
	ArtistField
)

func (ZoomCommand) command()        {}
func (PanCommand) command()         {}
func (PlaceCursorCommand) command() {}
func (SetCursorCommand) command()   {}
func (ResetZoomCommand) command()   {}
func (CreateTrackCommand) command() {}
func (DeleteTrackCommand) command() {}
func (SetTrackCommand) command()    {}
func (EditTrackCommand) command()   {}

// UnmarshalCommands parses a yaml command script. A set step changes only
// the fields it names. For example:
//
//	- zoom: 0.8
//	- pan: 5000
//	- cursor: 0.5
//	- create: 30000
//	- set: {index: 0, title: Intro}
//	- set: {index: 0, start: 1000, end: 61000}
//	- delete: 0
//	- reset: true
func UnmarshalCommands(data []byte) ([]Command, error) {
	var steps []scriptStep
	if err := yaml.Unmarshal(data, &steps); err != nil {
		return nil, fmt.Errorf("could not parse command script: %w", err)
	}
	ret := make([]Command, 0, len(steps))
	for i, s := range steps {
		cmd, err := s.command()
		if err != nil {
			return nil, fmt.Errorf("command %d: %w", i+1, err)
		}
		ret = append(ret, cmd)
	}
	return ret, nil
}

func (s scriptStep) command() (Command, error) {
	var ret []Command
	if s.Zoom != nil {
		ret = append(ret, ZoomCommand{Factor: *s.Zoom})
	}
	if s.Pan != nil {
		ret = append(ret, PanCommand{DeltaMs: *s.Pan})
	}
	if s.Cursor != nil {
		ret = append(ret, PlaceCursorCommand{Fraction: *s.Cursor})
	}
	if s.Seek != nil {
		ret = append(ret, SetCursorCommand{Ms: *s.Seek})
	}
	if s.Reset {
		ret = append(ret, ResetZoomCommand{})
	}
	if s.Create != nil {
		ret = append(ret, CreateTrackCommand{LengthMs: *s.Create})
	}
	if s.Delete != nil {
		ret = append(ret, DeleteTrackCommand{Index: *s.Delete})
	}
	if s.Set != nil {
		ret = append(ret, s.Set.edit())
	}
	if len(ret) != 1 {
		return nil, fmt.Errorf("expected exactly one command, got %d", len(ret))
	}
	return ret[0], nil
}

func (s *scriptSetTrack) edit() EditTrackCommand {
	c := EditTrackCommand{Index: s.Index}
	if s.Start != nil {
		c.Fields |= StartField
		c.Track.Start = *s.Start
	}
	if s.End != nil {
		c.Fields |= EndField
		c.Track.End = *s.End
	}
	if s.Number != nil {
		c.Fields |= NumberField
		c.Track.Number = *s.Number
	}
	if s.Title != nil {
		c.Fields |= TitleField
		c.Track.Title = *s.Title
	}
	if s.Artist != nil {
		c.Fields |= ArtistField
		c.Track.Artist = *s.Artist
	}
	return c
}

// overlay returns t with the edited fields replaced.
func (c EditTrackCommand) overlay(t gramocut.Track) gramocut.Track {
	if c.Fields&StartField != 0 {
		t.Start = c.Track.Start
	}
	if c.Fields&EndField != 0 {
		t.End = c.Track.End
	}
	if c.Fields&NumberField != 0 {
		t.Number = c.Track.Number
	}
	if c.Fields&TitleField != 0 {
		t.Title = c.Track.Title
	}
	if c.Fields&ArtistField != 0 {
		t.Artist = c.Track.Artist
	}
	return t
}

// ApplyAll applies cmds in order and stops at the first failing one.
func (m *Model) ApplyAll(cmds []Command) (ViewState, error) {
	for i, c := range cmds {
		if _, err := m.Apply(c); err != nil {
			return m.View(), fmt.Errorf("command %d (%T): %w", i+1, c, err)
		}
	}
	return m.View(), nil
}
