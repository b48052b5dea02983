package editor

import (
	"io"
	"time"

	"github.com/vsariola/gramocut"
	"github.com/vsariola/gramocut/decode"
)

type (
	// Broker carries messages from background goroutines to the model. The
	// model is owned by one goroutine, usually the GUI loop, which drains
	// ToModel and hands every message to Model.ProcessMsg.
	//
	// CloseLoader has capacity 1, so a close request never blocks; if the
	// channel is already full, someone has already asked the loaders to stop.
	Broker struct {
		ToModel     chan MsgToModel
		CloseLoader chan struct{}
	}

	// MsgToModel is a message sent to the model. Data is boxed; the messages
	// are infrequent.
	MsgToModel struct {
		Data any
	}

	// AudioLoaded is posted by LoadFile once a file has been decoded and its
	// envelope derived, or when either step failed. Seq is the number the
	// load was started with.
	AudioLoaded struct {
		Seq      int
		Path     string
		Envelope gramocut.Envelope
		Err      error
	}
)

func NewBroker() *Broker {
	return &Broker{
		ToModel:     make(chan MsgToModel, 64),
		CloseLoader: make(chan struct{}, 1),
	}
}

// LoadFile decodes path and derives its envelope on a new goroutine, posting
// an *AudioLoaded tagged with seq to ToModel when done. The result is dropped
// if CloseLoader has been signalled in the meantime.
func (b *Broker) LoadFile(seq int, path string) {
	go func() {
		msg := loadAudio(path)
		msg.Seq = seq
		select {
		case b.ToModel <- MsgToModel{Data: msg}:
		case <-b.CloseLoader:
			TrySend(b.CloseLoader, struct{}{}) // let other loaders see it too
		}
	}()
}

// LoadReader is LoadFile for sources that are already open, e.g. files picked
// with a platform file dialog. rc is closed when read.
func (b *Broker) LoadReader(seq int, name string, rc io.ReadCloser) {
	go func() {
		msg := readAudio(name, rc)
		msg.Seq = seq
		select {
		case b.ToModel <- MsgToModel{Data: msg}:
		case <-b.CloseLoader:
			TrySend(b.CloseLoader, struct{}{})
		}
	}()
}

func readAudio(name string, rc io.ReadCloser) *AudioLoaded {
	data, err := io.ReadAll(rc)
	rc.Close()
	if err != nil {
		return &AudioLoaded{Path: name, Err: err}
	}
	buf, err := decode.Bytes(name, data)
	if err != nil {
		return &AudioLoaded{Path: name, Err: err}
	}
	return envelopeOf(name, buf)
}

func loadAudio(path string) *AudioLoaded {
	buf, err := decode.File(path)
	if err != nil {
		return &AudioLoaded{Path: path, Err: err}
	}
	return envelopeOf(path, buf)
}

func envelopeOf(path string, buf gramocut.MonoBuffer) *AudioLoaded {
	env, err := gramocut.NewEnvelope(buf)
	if err != nil {
		return &AudioLoaded{Path: path, Err: err}
	}
	return &AudioLoaded{Path: path, Envelope: env}
}

// TrySend is a helper function to send a value to a channel if it is not full.
// It is guaranteed to be non-blocking. Return true if the value was sent, false
// otherwise.
func TrySend[T any](c chan<- T, v T) bool {
	select {
	case c <- v:
	default:
		return false
	}
	return true
}

// TimeoutReceive is a helper function to block until a value is received from a
// channel, or timing out after t. ok will be false if the timeout occurred or
// if the channel is closed.
func TimeoutReceive[T any](c <-chan T, t time.Duration) (v T, ok bool) {
	select {
	case v, ok = <-c:
		return v, ok
	case <-time.After(t):
		return v, false
	}
}
