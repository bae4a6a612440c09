package audio

import (
	"errors"
	"log"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"
)

const (
	sampleRate = 44100
	bufferSize = 512
	nChannels  = 2
)

// ErrEngineClosed is returned by Start after Close; a closed engine has
// released its output device and cannot be reused.
var ErrEngineClosed = errors.New("audio: engine is closed")

// Engine is the playback controller: it owns the one sequencer, kit and
// output device, and is the only API surfaced to callers. Engines are
// independent values; build as many as you need.
type Engine struct {
	props  *Props
	volume *atomic.Value // float64
	seq    *Sequencer
	kit    *Kit
	out    Output
	sum    []float64

	mu      sync.Mutex
	playing bool
	started bool
	closed  bool
}

func New(out Output) *Engine {
	return NewSeeded(out, time.Now().UnixNano())
}

// NewSeeded builds an engine whose noise voices are seeded with seed, so
// rendered output is reproducible.
func NewSeeded(out Output, seed int64) *Engine {
	props := NewProps()
	kit := NewKit(rand.New(rand.NewSource(seed)))
	e := &Engine{
		props:  props,
		volume: props.MustRegister("volume", clampFloat64(0, 1), 0.8),
		kit:    kit,
		out:    out,
		sum:    make([]float64, bufferSize),
	}
	props.MustRegister("style", setString, "none")
	e.seq = newSequencer(props, kit)
	return e
}

// Start begins playing the pattern's style at its tempo. Starting while
// already playing restarts from step 0; there is never more than one active
// schedule. An unavailable output device is not an error: the engine stays
// idle and IsPlaying reports false.
func (e *Engine) Start(p BeatPattern) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrEngineClosed
	}
	if err := e.props.Set("bpm", p.BPM); err != nil {
		return err
	}
	if !e.started {
		if err := e.out.Start(e.render); err != nil {
			log.Printf("audio: output unavailable: %v", err)
			return nil
		}
		e.started = true
	}
	e.props.Set("style", p.Style)
	e.props.Set("grid", GridFor(p.Style))
	e.seq.reset()
	e.playing = true
	return nil
}

// Stop cancels future triggers and rewinds to step 0. Voices already
// sounding decay naturally.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopLocked()
}

func (e *Engine) stopLocked() {
	e.playing = false
	e.seq.reset()
}

// SetVolume sets the master gain, clamped to [0, 1].
func (e *Engine) SetVolume(v float64) {
	e.props.Set("volume", v)
}

func (e *Engine) Volume() float64 {
	return e.volume.Load().(float64)
}

func (e *Engine) IsPlaying() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.playing
}

// Set updates a registered engine property ("volume", "bpm", "style",
// "grid") while playing.
func (e *Engine) Set(key string, value interface{}) error {
	return e.props.Set(key, value)
}

func (e *Engine) Get(key string) (interface{}, error) {
	return e.props.Get(key)
}

type Status struct {
	Playing bool
	Style   string
	BPM     int
	Step    int
	Volume  float64
}

func (e *Engine) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	style, _ := e.props.Get("style")
	bpm, _ := e.props.Get("bpm")
	return Status{
		Playing: e.playing,
		Style:   style.(string),
		BPM:     bpm.(int),
		Step:    e.seq.step,
		Volume:  e.volume.Load().(float64),
	}
}

// Close stops playback and releases the output device. Terminal: the engine
// cannot be started again.
func (e *Engine) Close() error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil
	}
	e.stopLocked()
	e.closed = true
	started := e.started
	e.started = false
	e.mu.Unlock()

	// Close the device outside the lock: the render callback may be
	// waiting on it and the device blocks until callbacks drain.
	if started {
		return e.out.Close()
	}
	return nil
}

// render is the device pull callback: schedule the steps that fall inside
// this buffer, mix every active voice, apply the master gain. out is
// stereo-interleaved.
func (e *Engine) render(out []float32) {
	frames := len(out) / nChannels
	if len(e.sum) < frames {
		e.sum = make([]float64, frames)
	}
	sum := e.sum[:frames]
	for n := range sum {
		sum[n] = 0
	}

	e.mu.Lock()
	if e.playing {
		e.seq.tick(frames)
	} else {
		e.seq.advance(frames)
	}
	e.mu.Unlock()

	// Voices keep decaying after Stop; only new triggers cease.
	e.kit.process(sum)

	gain := e.volume.Load().(float64)
	for n, sample := range sum {
		s := float32(gain * sample)
		out[n*2] = s
		out[n*2+1] = s
	}
}
