package decode

import (
	"fmt"
	"io"

	"github.com/go-audio/wav"
	"github.com/vsariola/gramocut"
)

// WAV decodes a PCM WAV stream. 8, 16, 24 and 32 bit integer samples are
// supported.
func WAV(r io.ReadSeeker) (gramocut.MonoBuffer, error) {
	decoder := wav.NewDecoder(r)
	if !decoder.IsValidFile() {
		return gramocut.MonoBuffer{}, fmt.Errorf("invalid WAV file")
	}
	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return gramocut.MonoBuffer{}, fmt.Errorf("could not decode WAV: %w", err)
	}
	bitDepth := int(decoder.BitDepth)
	if bitDepth == 0 || bitDepth > 32 {
		return gramocut.MonoBuffer{}, fmt.Errorf("unsupported WAV bit depth %d", bitDepth)
	}
	scale := float32(int64(1) << (bitDepth - 1))
	offset := 0
	if bitDepth == 8 {
		offset = 128 // 8 bit samples are unsigned
	}
	samples := downmix(buf.Data, buf.Format.NumChannels, scale, offset)
	return gramocut.MakeMonoBuffer(samples, buf.Format.SampleRate), nil
}
