package audio

import "fmt"

// RenderFunc fills one stereo-interleaved float32 buffer per device pull.
type RenderFunc func(out []float32)

// Output is an audio device backend. Start opens the device and begins
// pulling buffers through render; constructors are cheap and never touch
// the device, so probing happens at Start time.
type Output interface {
	Start(render RenderFunc) error
	Close() error
}

// Open selects an output backend by name. The empty string means the
// default backend (portaudio).
func Open(backend string) (Output, error) {
	switch backend {
	case "", "portaudio":
		return &portAudioOutput{}, nil
	case "oto":
		return &otoOutput{}, nil
	case "none":
		return NoOutput(), nil
	default:
		return nil, fmt.Errorf("unknown audio backend: %q", backend)
	}
}

// noOutput discards all audio. It stands in when no device is wanted; the
// engine runs but nothing pulls buffers.
type noOutput struct{}

func NoOutput() Output { return &noOutput{} }

func (o *noOutput) Start(render RenderFunc) error { return nil }

func (o *noOutput) Close() error { return nil }
