// Package decode turns audio files into the mono sample buffers the editor
// derives envelopes from. WAV is decoded with go-audio/wav and MP3 with
// go-mp3; multichannel audio is downmixed by averaging the channels.
package decode

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vsariola/gramocut"
)

// ErrUnsupportedFormat is returned for files whose extension is not one of
// Extensions.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// Extensions lists the file extensions File can decode, lower case with the
// leading dot.
var Extensions = []string{".wav", ".mp3"}

// File decodes the audio file at path into a mono buffer. The format is
// chosen by the file extension.
func File(path string) (gramocut.MonoBuffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return gramocut.MonoBuffer{}, err
	}
	defer f.Close()
	return Reader(f, filepath.Ext(path))
}

// Reader decodes r as the format identified by ext, e.g. ".wav".
func Reader(r io.ReadSeeker, ext string) (gramocut.MonoBuffer, error) {
	switch strings.ToLower(ext) {
	case ".wav", ".wave":
		return WAV(r)
	case ".mp3":
		return MP3(r)
	}
	return gramocut.MonoBuffer{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
}

// Sniff guesses the extension of an audio stream from its first bytes, for
// sources that come without a file name. Returns "" if unknown.
func Sniff(header []byte) string {
	switch {
	case len(header) >= 12 && string(header[0:4]) == "RIFF" && string(header[8:12]) == "WAVE":
		return ".wav"
	case len(header) >= 3 && string(header[0:3]) == "ID3":
		return ".mp3"
	case len(header) >= 2 && header[0] == 0xFF && header[1]&0xE0 == 0xE0:
		return ".mp3" // mpeg frame sync
	}
	return ""
}

// Bytes decodes an in-memory file. name is only used for its extension;
// when it has none, the format is sniffed from the data.
func Bytes(name string, data []byte) (gramocut.MonoBuffer, error) {
	ext := filepath.Ext(name)
	if ext == "" {
		ext = Sniff(data)
	}
	return Reader(bytes.NewReader(data), ext)
}

// downmix averages interleaved frames of nchannels channels into one channel,
// scaling each sample by 1/scale.
func downmix(data []int, nchannels int, scale float32, offset int) []float32 {
	if nchannels < 1 {
		nchannels = 1
	}
	frames := len(data) / nchannels
	ret := make([]float32, frames)
	k := scale * float32(nchannels)
	for i := range ret {
		var sum int
		for c := range nchannels {
			sum += data[i*nchannels+c] - offset
		}
		ret[i] = float32(sum) / k
	}
	return ret
}
