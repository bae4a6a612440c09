package audio

import (
	"sync/atomic"
	"time"
)

const maxBPM = 999

// Every step whose index is a multiple of this plays the open hi-hat
// variant; all other hat hits are closed.
const openHatEvery = 8

// StepDuration returns the wall-clock length of one step at the given
// tempo: a 16th note, (60/bpm)/4 seconds.
func StepDuration(bpm int) time.Duration {
	return time.Duration(float64(time.Minute) / float64(bpm) / 4)
}

func samplesPerStep(bpm int) float64 {
	return StepDuration(bpm).Seconds() * sampleRate
}

type triggerSink interface {
	trigger(ev event)
}

// Sequencer advances a 16-step counter against the output device's own
// sample clock. Each buffer it schedules every step boundary that falls
// inside the buffer at its exact sample offset, so trigger timing never
// depends on when the callback happens to run. Tempo and grid are read
// from registered properties, so they can change mid-playback.
type Sequencer struct {
	dst  triggerSink
	bpm  *atomic.Value // int
	grid *atomic.Value // StepGrid

	samples  uint64  // device time in frames
	nextStep float64 // absolute frame of the next step boundary
	step     int
}

func newSequencer(props *Props, dst triggerSink) *Sequencer {
	return &Sequencer{
		dst:  dst,
		bpm:  props.MustRegister("bpm", setIntRange(1, maxBPM), 120),
		grid: props.MustRegister("grid", setGrid, defaultGrid),
	}
}

// reset rewinds to step 0 and schedules it at the current device time, so
// the next buffer fires it at offset 0.
func (s *Sequencer) reset() {
	s.step = 0
	s.nextStep = float64(s.samples)
}

// tick schedules all steps falling within the next frames samples and
// advances the device clock.
func (s *Sequencer) tick(frames int) {
	grid := s.grid.Load().(StepGrid)
	sps := samplesPerStep(s.bpm.Load().(int))

	end := float64(s.samples) + float64(frames)
	for s.nextStep < end {
		offset := int(s.nextStep - float64(s.samples))
		s.fire(grid, s.step, offset)
		s.step = (s.step + 1) % NumSteps
		s.nextStep += sps
	}
	s.samples += uint64(frames)
}

// advance moves the device clock without scheduling anything.
func (s *Sequencer) advance(frames int) {
	s.samples += uint64(frames)
}

func (s *Sequencer) fire(grid StepGrid, step, offset int) {
	if grid.Kick[step] {
		s.dst.trigger(event{track: trackKick, offset: offset})
	}
	if grid.Snare[step] {
		s.dst.trigger(event{track: trackSnare, offset: offset})
	}
	if grid.Hihat[step] {
		s.dst.trigger(event{track: trackHihat, offset: offset, open: step%openHatEvery == 0})
	}
	if grid.SubBass[step] {
		s.dst.trigger(event{track: trackSubBass, offset: offset})
	}
}
