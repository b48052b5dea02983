package decode

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/hajimehoshi/go-mp3"
	"github.com/vsariola/gramocut"
)

// MP3 decodes an MP3 stream. The decoder always produces 16 bit little
// endian stereo.
func MP3(r io.Reader) (gramocut.MonoBuffer, error) {
	decoder, err := mp3.NewDecoder(r)
	if err != nil {
		return gramocut.MonoBuffer{}, fmt.Errorf("could not decode MP3: %w", err)
	}
	const nchannels = 2
	var data []int
	if n := decoder.Length(); n > 0 {
		data = make([]int, 0, n/2)
	}
	chunk := make([]byte, 4096)
	for {
		n, err := io.ReadFull(decoder, chunk)
		for i := 0; i+1 < n; i += 2 {
			data = append(data, int(int16(binary.LittleEndian.Uint16(chunk[i:]))))
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			break
		}
		if err != nil {
			return gramocut.MonoBuffer{}, fmt.Errorf("could not decode MP3: %w", err)
		}
	}
	samples := downmix(data, nchannels, 32768, 0)
	return gramocut.MakeMonoBuffer(samples, decoder.SampleRate()), nil
}
