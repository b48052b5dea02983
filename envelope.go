package gramocut

import (
	"fmt"

	"github.com/viterin/vek/vek32"
)

type (
	// Envelope is the per-millisecond peak amplitude of a recording, each
	// value normalized to [0,1] against the global peak of the recording.
	// Envelopes are built once per load and never modified afterwards; the
	// zero value is an empty envelope.
	Envelope struct {
		peaks []float32
	}

	// InvalidAudioError is returned when an envelope cannot be normalized,
	// i.e. the recording is empty or completely silent.
	InvalidAudioError struct {
		Reason string
	}
)

func (e *InvalidAudioError) Error() string {
	return fmt.Sprintf("invalid audio: %s", e.Reason)
}

// NewEnvelope reduces a decoded mono buffer into an Envelope with one entry
// per millisecond of buf.DurationMs. Millisecond i covers the samples
// [i*len/DurationMs, (i+1)*len/DurationMs).
func NewEnvelope(buf MonoBuffer) (Envelope, error) {
	if buf.DurationMs <= 0 || len(buf.Samples) == 0 {
		return Envelope{}, &InvalidAudioError{Reason: "zero length source"}
	}
	if !(buf.Peak > 0) {
		return Envelope{}, &InvalidAudioError{Reason: "silent source"}
	}
	n := int64(len(buf.Samples))
	d := int64(buf.DurationMs)
	peaks := make([]float32, buf.DurationMs)
	var tmp []float32
	for i := range peaks {
		a := int(int64(i) * n / d)
		b := int((int64(i) + 1) * n / d)
		if b <= a {
			continue
		}
		tmp = append(tmp[:0], buf.Samples[a:b]...)
		vek32.Abs_Inplace(tmp)
		peaks[i] = min(vek32.Max(tmp)/buf.Peak, 1)
	}
	return Envelope{peaks: peaks}, nil
}

// Len returns the length of the envelope in milliseconds.
func (e Envelope) Len() int { return len(e.peaks) }

// At returns the normalized peak at millisecond ms, or 0 if ms is outside the
// envelope.
func (e Envelope) At(ms int) float32 {
	if ms < 0 || ms >= len(e.peaks) {
		return 0
	}
	return e.peaks[ms]
}

// Slice returns a copy of the peaks in [start,end), clamped to the envelope.
func (e Envelope) Slice(start, end int) []float32 {
	start, end = e.clamp(start, end)
	ret := make([]float32, end-start)
	copy(ret, e.peaks[start:end])
	return ret
}

// Peak returns the largest value in [start,end), clamped to the envelope. An
// empty range has a peak of 0.
func (e Envelope) Peak(start, end int) float32 {
	start, end = e.clamp(start, end)
	if end <= start {
		return 0
	}
	return vek32.Max(e.peaks[start:end])
}

func (e Envelope) clamp(start, end int) (int, int) {
	start = max(min(start, len(e.peaks)), 0)
	end = max(min(end, len(e.peaks)), start)
	return start, end
}
