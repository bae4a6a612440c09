package audio

import (
	"encoding/binary"
	"math"

	"github.com/ebitengine/oto/v3"
)

// otoOutput drives an oto/v3 player. oto pulls audio through an io.Reader,
// so the render callback is wrapped in one.
type otoOutput struct {
	ctx    *oto.Context
	player *oto.Player
}

func (o *otoOutput) Start(render RenderFunc) error {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: nChannels,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return err
	}
	<-ready
	o.ctx = ctx
	o.player = ctx.NewPlayer(&renderReader{render: render})
	o.player.Play()
	return nil
}

func (o *otoOutput) Close() error {
	if o.player != nil {
		err := o.player.Close()
		o.player = nil
		return err
	}
	return nil
}

type renderReader struct {
	render RenderFunc
	buf    []float32
}

const bytesPerFrame = nChannels * 4 // float32 samples

func (r *renderReader) Read(p []byte) (int, error) {
	frames := len(p) / bytesPerFrame
	if frames > bufferSize {
		frames = bufferSize
	}
	if frames == 0 {
		return 0, nil
	}
	if len(r.buf) < frames*nChannels {
		r.buf = make([]float32, frames*nChannels)
	}
	samples := r.buf[:frames*nChannels]
	r.render(samples)
	for n, sample := range samples {
		binary.LittleEndian.PutUint32(p[n*4:], math.Float32bits(sample))
	}
	return frames * bytesPerFrame, nil
}
