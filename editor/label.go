package editor

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig"
	"github.com/vsariola/gramocut"
	"go.uber.org/zap"
)

// LabelData is the data a track label template is executed with.
type LabelData struct {
	Index  int
	Number string
	Title  string
	Artist string
	Start  string
	End    string
	Length string
	Color  string
}

func parseLabel(text string) (*template.Template, error) {
	t, err := template.New("label").Funcs(sprig.TxtFuncMap()).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("could not parse label template: %w", err)
	}
	return t, nil
}

// ValidateLabel reports whether text is a usable label template.
func ValidateLabel(text string) error {
	t, err := parseLabel(text)
	if err != nil {
		return err
	}
	var sb strings.Builder
	return t.Execute(&sb, LabelData{})
}

// TrackLabel renders the label of the track at index i. Out of range
// indices give an empty label.
func (m *Model) TrackLabel(i int) string {
	t, ok := m.d.Tracks.Get(i)
	if !ok {
		return ""
	}
	return m.renderLabel(i, t)
}

func (m *Model) renderLabel(i int, t gramocut.Track) string {
	data := LabelData{
		Index:  i,
		Number: t.Number,
		Title:  t.Title,
		Artist: t.Artist,
		Start:  gramocut.FormatMs(t.Start),
		End:    gramocut.FormatMs(t.End),
		Length: gramocut.FormatMs(t.Len()),
		Color:  m.config.Palette.ColorFor(i).Name,
	}
	var sb strings.Builder
	if err := m.label.Execute(&sb, data); err != nil {
		m.logger.Debug("label template failed", zap.Error(err))
		return t.Title
	}
	return sb.String()
}
