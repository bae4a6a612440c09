package audio

import (
	"math"
	"time"
)

// envFloor is the level an exponential decay aims for. Decays never target
// zero; a voice frees itself once its envelope falls below this.
const envFloor = 0.001

// voiceParams is the synthesis recipe for one drum voice. All tuning lives
// here so the scheduler never has to know about frequencies or decay times.
type voiceParams struct {
	level float64 // output gain into the mix

	startFreq float64       // oscillator start frequency
	endFreq   float64       // oscillator target frequency
	pitchRamp time.Duration // time to glide from start to end
	ampDecay  time.Duration // oscillator amplitude decay

	toneFreq  float64       // snare body tone
	toneDecay time.Duration // snare body decay

	cutoff     float64       // noise high-pass cutoff
	noiseDecay time.Duration // noise amplitude decay
	openDecay  time.Duration // open hi-hat variant decay
}

var (
	kickParams = voiceParams{
		level:     0.9,
		startFreq: 150,
		endFreq:   40,
		pitchRamp: 100 * time.Millisecond,
		ampDecay:  300 * time.Millisecond,
	}
	snareParams = voiceParams{
		level:      0.55,
		toneFreq:   190,
		toneDecay:  100 * time.Millisecond,
		cutoff:     1000,
		noiseDecay: 150 * time.Millisecond,
	}
	hihatParams = voiceParams{
		level:      0.3,
		cutoff:     7000,
		noiseDecay: 50 * time.Millisecond,
		openDecay:  150 * time.Millisecond,
	}
	subBassParams = voiceParams{
		level:     0.8,
		startFreq: 55,
		endFreq:   27.5,
		pitchRamp: 400 * time.Millisecond,
		ampDecay:  500 * time.Millisecond,
	}
)

// decayFactor returns the per-sample multiplier that carries a level of 1.0
// down to envFloor over d.
func decayFactor(d time.Duration) float64 {
	n := d.Seconds() * sampleRate
	return math.Pow(envFloor, 1/n)
}

// rampFactor returns the per-sample multiplier gliding a frequency from
// start to end over d.
func rampFactor(start, end float64, d time.Duration) float64 {
	n := d.Seconds() * sampleRate
	return math.Pow(end/start, 1/n)
}
