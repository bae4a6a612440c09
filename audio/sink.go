package audio

import (
	"github.com/gordonklaus/portaudio"
)

// portAudioOutput drives the default portaudio device with a callback
// stream.
type portAudioOutput struct {
	stream *portaudio.Stream
	inited bool
}

func (o *portAudioOutput) Start(render RenderFunc) error {
	if err := portaudio.Initialize(); err != nil {
		return err
	}
	o.inited = true
	stream, err := portaudio.OpenDefaultStream(0, nChannels, sampleRate, bufferSize, func(out []float32) {
		render(out)
	})
	if err != nil {
		o.Close()
		return err
	}
	o.stream = stream
	if err := stream.Start(); err != nil {
		o.Close()
		return err
	}
	return nil
}

func (o *portAudioOutput) Close() error {
	var err error
	if o.stream != nil {
		err = o.stream.Close()
		o.stream = nil
	}
	if o.inited {
		portaudio.Terminate()
		o.inited = false
	}
	return err
}
