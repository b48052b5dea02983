package gramocut

import (
	"github.com/viterin/vek/vek32"
)

// MonoBuffer is a decoded, downmixed recording. It is what the decoders hand
// over to NewEnvelope: the samples, the duration of the recording in
// milliseconds and the global peak amplitude (max absolute sample value).
//
// Samples can be in any unit (e.g. raw int16 values or floats in [-1,1]); the
// envelope is normalized against Peak, so only the ratio matters.
type MonoBuffer struct {
	Samples    []float32
	SampleRate int
	DurationMs int
	Peak       float32
}

// MakeMonoBuffer wraps samples of the given sample rate, computing the
// duration and the peak amplitude.
func MakeMonoBuffer(samples []float32, sampleRate int) MonoBuffer {
	ret := MonoBuffer{Samples: samples, SampleRate: sampleRate}
	if sampleRate > 0 {
		ret.DurationMs = int(int64(len(samples)) * 1000 / int64(sampleRate))
	}
	ret.Peak = ret.PeakAmplitude()
	return ret
}

// PeakAmplitude returns the maximum absolute sample value of the buffer, or 0
// for an empty buffer.
func (b MonoBuffer) PeakAmplitude() float32 {
	var peak float32
	tmp := make([]float32, 0, peakChunk)
	for i := 0; i < len(b.Samples); i += peakChunk {
		chunk := b.Samples[i:min(i+peakChunk, len(b.Samples))]
		tmp = append(tmp[:0], chunk...)
		vek32.Abs_Inplace(tmp)
		peak = max(peak, vek32.Max(tmp))
	}
	return peak
}

const peakChunk = 4096
