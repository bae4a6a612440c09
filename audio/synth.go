package audio

import (
	"math"
	"math/rand"
)

const twoPi = 2 * math.Pi

// kickVoice is a sine whose pitch glides down exponentially while the
// amplitude decays, the classic synthesized bass drum.
type kickVoice struct {
	params voiceParams

	phase       float64
	freq        float64
	pitchFactor float64
	env         decayEnv
	on          bool
}

func newKickVoice(params voiceParams) *kickVoice {
	return &kickVoice{
		params:      params,
		pitchFactor: rampFactor(params.startFreq, params.endFreq, params.pitchRamp),
	}
}

func (v *kickVoice) track() track { return trackKick }

func (v *kickVoice) trigger(ev event) {
	v.freq = v.params.startFreq
	v.env.trigger(v.params.ampDecay)
	v.on = true
}

func (v *kickVoice) active() bool { return v.on }

func (v *kickVoice) process(buf []float64) {
	for n := range buf {
		buf[n] += math.Sin(v.phase) * v.env.value() * v.params.level
		v.phase += twoPi * v.freq / sampleRate
		if v.phase >= twoPi {
			v.phase -= twoPi
		}
		v.freq *= v.pitchFactor
		if v.freq < v.params.endFreq {
			v.freq = v.params.endFreq
		}
	}
	if !v.env.active() {
		v.on = false
	}
}

// snareVoice sums a burst of high-passed noise with a short triangle tone.
type snareVoice struct {
	params voiceParams
	rng    *rand.Rand

	phase    float64
	noiseEnv decayEnv
	toneEnv  decayEnv
	highpass filter
	on       bool
}

func newSnareVoice(params voiceParams, rng *rand.Rand) *snareVoice {
	v := &snareVoice{params: params, rng: rng}
	v.highpass.setHighpass(params.cutoff)
	return v
}

func (v *snareVoice) track() track { return trackSnare }

func (v *snareVoice) trigger(ev event) {
	v.noiseEnv.trigger(v.params.noiseDecay)
	v.toneEnv.trigger(v.params.toneDecay)
	v.highpass.reset()
	v.phase = 0
	v.on = true
}

func (v *snareVoice) active() bool { return v.on }

func (v *snareVoice) process(buf []float64) {
	for n := range buf {
		noise := v.highpass.process(v.rng.Float64()*2 - 1)
		tone := triangle(v.phase)
		v.phase += twoPi * v.params.toneFreq / sampleRate
		if v.phase >= twoPi {
			v.phase -= twoPi
		}
		sample := noise*v.noiseEnv.value() + 0.5*tone*v.toneEnv.value()
		buf[n] += sample * v.params.level
	}
	if !v.noiseEnv.active() && !v.toneEnv.active() {
		v.on = false
	}
}

// hihatVoice is high-passed noise with a closed or open decay, selected per
// trigger by the scheduler.
type hihatVoice struct {
	params voiceParams
	rng    *rand.Rand

	env      decayEnv
	highpass filter
	on       bool
}

func newHihatVoice(params voiceParams, rng *rand.Rand) *hihatVoice {
	v := &hihatVoice{params: params, rng: rng}
	v.highpass.setHighpass(params.cutoff)
	return v
}

func (v *hihatVoice) track() track { return trackHihat }

func (v *hihatVoice) trigger(ev event) {
	decay := v.params.noiseDecay
	if ev.open {
		decay = v.params.openDecay
	}
	v.env.trigger(decay)
	v.highpass.reset()
	v.on = true
}

func (v *hihatVoice) active() bool { return v.on }

func (v *hihatVoice) process(buf []float64) {
	for n := range buf {
		noise := v.highpass.process(v.rng.Float64()*2 - 1)
		buf[n] += noise * v.env.value() * v.params.level
	}
	if !v.env.active() {
		v.on = false
	}
}

// subBassVoice is an 808-style sine gliding down an octave from the root.
type subBassVoice struct {
	params voiceParams

	phase       float64
	freq        float64
	pitchFactor float64
	env         decayEnv
	on          bool
}

func newSubBassVoice(params voiceParams) *subBassVoice {
	return &subBassVoice{
		params:      params,
		pitchFactor: rampFactor(params.startFreq, params.endFreq, params.pitchRamp),
	}
}

func (v *subBassVoice) track() track { return trackSubBass }

func (v *subBassVoice) trigger(ev event) {
	v.freq = v.params.startFreq
	v.env.trigger(v.params.ampDecay)
	v.on = true
}

func (v *subBassVoice) active() bool { return v.on }

func (v *subBassVoice) process(buf []float64) {
	for n := range buf {
		buf[n] += math.Sin(v.phase) * v.env.value() * v.params.level
		v.phase += twoPi * v.freq / sampleRate
		if v.phase >= twoPi {
			v.phase -= twoPi
		}
		v.freq *= v.pitchFactor
		if v.freq < v.params.endFreq {
			v.freq = v.params.endFreq
		}
	}
	if !v.env.active() {
		v.on = false
	}
}

func triangle(phase float64) float64 {
	p := phase / twoPi
	if p < 0.5 {
		return 4*p - 1
	}
	return 3 - 4*p
}
