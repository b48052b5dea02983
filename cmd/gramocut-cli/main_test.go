package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/vsariola/gramocut"
)

// writeSide writes an 8 kHz recording of three one second songs separated by
// two seconds of silence.
func writeSide(t *testing.T) string {
	t.Helper()
	const rate = 8000
	var data []int
	for song := range 3 {
		if song > 0 {
			data = append(data, make([]int, 2*rate)...)
		}
		for i := range rate {
			data = append(data, (i%20-10)*1000)
		}
	}
	path := filepath.Join(t.TempDir(), "side.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
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

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yml"), "--loglevel", "error"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestInspect(t *testing.T) {
	out, err := execute(t, "inspect", "--window", "2", writeSide(t))
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	for _, want := range []string{"8000 Hz", "0m:07s:000", "Gap start", "0m:01s:000", "0m:03s:000"} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}
}

func TestRun(t *testing.T) {
	script := filepath.Join(t.TempDir(), "script.yml")
	err := os.WriteFile(script, []byte(`
- seek: 0
- create: 1000
- seek: 3000
- create: 1000
- set: {index: 1, start: 3000, end: 4000, title: Second}
`), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	side := writeSide(t)
	out, err := execute(t, "run", side, script)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	for _, want := range []string{"1. Untitled", "2. Second", "blue", "Tracks cover 0m:02s:000 of 0m:07s:000"} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}

	out, err = execute(t, "run", "--yaml", side, script)
	if err != nil {
		t.Fatalf("run --yaml: %v", err)
	}
	if !strings.Contains(out, "title: Second") || !strings.Contains(out, "start: 3000") {
		t.Errorf("yaml output = %s", out)
	}
}

func TestRunErrors(t *testing.T) {
	side := writeSide(t)
	for _, tc := range []struct {
		name   string
		script string
	}{
		{"BadYaml", "- zoom: [1"},
		{"TwoCommandsInOneStep", "- {zoom: 0.5, pan: 100}"},
		{"DeleteMissingTrack", "- delete: 0"},
		{"TrackPastTheEnd", "- create: 1000\n- set: {index: 0, end: 999999}"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			script := filepath.Join(t.TempDir(), "script.yml")
			if err := os.WriteFile(script, []byte(tc.script), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := execute(t, "run", side, script); err == nil {
				t.Errorf("expected an error")
			}
		})
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil || !strings.HasPrefix(out, "gramocut-cli") {
		t.Errorf("version = %q, %v", out, err)
	}
}

func TestQuietGaps(t *testing.T) {
	buf := gramocut.MakeMonoBuffer([]float32{1, 0, 0, 0, 1, 0, 1, 0, 0}, 1000)
	env, err := gramocut.NewEnvelope(buf)
	if err != nil {
		t.Fatal(err)
	}
	gaps := quietGaps(env, 0.5, 2)
	if len(gaps) != 1 || gaps[0] != (gap{1, 4}) {
		t.Errorf("gaps = %+v", gaps)
	}
}
