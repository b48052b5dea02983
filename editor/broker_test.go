package editor_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/vsariola/gramocut/editor"
)

func writeSineishWAV(t *testing.T, seconds int) string {
	t.Helper()
	const rate = 8000
	path := filepath.Join(t.TempDir(), "side.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	data := make([]int, seconds*rate)
	for i := range data {
		data[i] = (i%16 - 8) * 1000
	}
	enc := wav.NewEncoder(f, rate, 16, 1, 1)
	buf := &audio.IntBuffer{Format: &audio.Format{NumChannels: 1, SampleRate: rate}, Data: data, SourceBitDepth: 16}
	if err := enc.Write(buf); err != nil {
		t.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func receive(t *testing.T, m *editor.Model) {
	t.Helper()
	msg, ok := editor.TimeoutReceive(m.Broker().ToModel, 10*time.Second)
	if !ok {
		t.Fatalf("no message from the loader")
	}
	m.ProcessMsg(msg)
}

func TestLoadFileInBackground(t *testing.T) {
	path := writeSineishWAV(t, 12)
	m := editor.NewModel(editor.NewBroker(), nil, editor.DefaultConfig())
	m.LoadFile(path)
	if !m.Loading() || m.Loaded() {
		t.Fatalf("model should be loading")
	}
	receive(t, m)
	if m.Loading() || !m.Loaded() {
		t.Fatalf("model should be loaded")
	}
	if m.Length() != 12000 || m.SourcePath() != path {
		t.Errorf("loaded %q of %d ms", m.SourcePath(), m.Length())
	}
	if v := m.Envelope().At(5000); v != 1 {
		t.Errorf("envelope at 5000 = %v, want 1", v)
	}
}

func TestLoadFileFailureKeepsSession(t *testing.T) {
	m := editor.NewModel(editor.NewBroker(), nil, editor.DefaultConfig())
	m.LoadFile(writeSineishWAV(t, 20))
	receive(t, m)
	m.Apply(editor.CreateTrackCommand{LengthMs: 1000})
	m.LoadFile(filepath.Join(t.TempDir(), "missing.wav"))
	receive(t, m)
	if m.Length() != 20000 || m.TrackCount() != 1 {
		t.Errorf("failed load changed the session: %d ms, %d tracks", m.Length(), m.TrackCount())
	}
	if alerts := m.Alerts().Iterate(); len(alerts) != 1 || alerts[0].Priority != editor.Error {
		t.Errorf("alerts = %+v", alerts)
	}
	if m.Alerts().Update(time.Minute) {
		t.Errorf("alert should expire")
	}
}

func TestNewestLoadWins(t *testing.T) {
	first, second := writeSineishWAV(t, 20), writeSineishWAV(t, 12)
	m := editor.NewModel(editor.NewBroker(), nil, editor.DefaultConfig())
	m.LoadFile(first)
	m.LoadFile(second)
	receive(t, m)
	receive(t, m)
	if m.Loading() {
		t.Errorf("model should not be loading")
	}
	if m.SourcePath() != second || m.Length() != 12000 {
		t.Errorf("loaded %q of %d ms, want %q of 12000 ms", m.SourcePath(), m.Length(), second)
	}
}

func TestSupersededLoadIgnored(t *testing.T) {
	m := editor.NewModel(editor.NewBroker(), nil, editor.DefaultConfig())
	m.LoadFile(writeSineishWAV(t, 12))
	m.ProcessMsg(editor.MsgToModel{Data: &editor.AudioLoaded{Seq: 0, Path: "old.wav", Err: errors.New("gone")}})
	if !m.Loading() {
		t.Errorf("an older result should not end the load")
	}
	if alerts := m.Alerts().Iterate(); len(alerts) != 0 {
		t.Errorf("an older result raised alerts: %+v", alerts)
	}
	receive(t, m)
	if m.Loading() || m.Length() != 12000 {
		t.Errorf("newest load not installed: loading %v, %d ms", m.Loading(), m.Length())
	}
}
