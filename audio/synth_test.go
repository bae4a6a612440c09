package audio

import (
	"math"
	"math/rand"
	"testing"
)

// processUntilSilent returns how many samples a voice stays active after a
// trigger.
func processUntilSilent(t *testing.T, v voice, ev event) int {
	t.Helper()
	v.trigger(ev)
	buf := make([]float64, blockSize)
	var samples int
	for v.active() {
		for n := range buf {
			buf[n] = 0
		}
		v.process(buf)
		samples += len(buf)
		if samples > 5*sampleRate {
			t.Fatal("voice never went silent")
		}
	}
	return samples
}

func TestKickDecay(t *testing.T) {
	v := newKickVoice(kickParams)
	samples := processUntilSilent(t, v, event{track: trackKick})

	// The envelope reaches the floor after ampDecay, give or take one
	// processing block.
	want := int(kickParams.ampDecay.Seconds() * sampleRate)
	if diff := samples - want; diff < 0 || diff > 2*blockSize {
		t.Errorf("kick should ring for ~%d samples, got %d", want, samples)
	}
}

func TestKickPitchGlidesDown(t *testing.T) {
	v := newKickVoice(kickParams)
	v.trigger(event{track: trackKick})

	buf := make([]float64, blockSize)
	prev := v.freq
	for v.active() {
		v.process(buf)
		if v.freq > prev {
			t.Fatalf("kick frequency went up: %v -> %v", prev, v.freq)
		}
		prev = v.freq
	}
	if math.Abs(v.freq-kickParams.endFreq) > 1e-9 {
		t.Errorf("kick should settle at %v Hz, got %v", kickParams.endFreq, v.freq)
	}
}

func TestHihatOpenRingsLonger(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	closed := processUntilSilent(t, newHihatVoice(hihatParams, rng), event{track: trackHihat})
	open := processUntilSilent(t, newHihatVoice(hihatParams, rng), event{track: trackHihat, open: true})
	if open <= closed {
		t.Errorf("open hat (%d samples) should outlast closed hat (%d samples)", open, closed)
	}
}

func TestSnareIsDeterministicWithSeed(t *testing.T) {
	render := func() []float64 {
		v := newSnareVoice(snareParams, rand.New(rand.NewSource(7)))
		v.trigger(event{track: trackSnare})
		buf := make([]float64, 4096)
		v.process(buf)
		return buf
	}
	a, b := render(), render()
	for n := range a {
		if a[n] != b[n] {
			t.Fatalf("seeded snares diverge at sample %d", n)
		}
	}
	var energy float64
	for _, s := range a {
		energy += s * s
	}
	if energy == 0 {
		t.Fatal("snare rendered silence")
	}
}

func TestSubBassOctaveDrop(t *testing.T) {
	v := newSubBassVoice(subBassParams)
	v.trigger(event{track: trackSubBass})

	buf := make([]float64, blockSize)
	for v.active() {
		v.process(buf)
	}
	if want := subBassParams.startFreq / 2; math.Abs(v.freq-want) > 1e-9 {
		t.Errorf("sub bass should settle an octave down at %v Hz, got %v", want, v.freq)
	}

	want := int(subBassParams.ampDecay.Seconds() * sampleRate)
	samples := processUntilSilent(t, v, event{track: trackSubBass})
	if diff := samples - want; diff < 0 || diff > 2*blockSize {
		t.Errorf("sub bass should ring for ~%d samples, got %d", want, samples)
	}
}

func TestDecayEnvelopeNeverReachesZero(t *testing.T) {
	var env decayEnv
	env.trigger(hihatParams.noiseDecay)
	for n := 0; n < sampleRate; n++ {
		if v := env.value(); v <= 0 {
			t.Fatalf("envelope hit %v at sample %d; decays must stay above zero", v, n)
		}
	}
	if env.active() {
		t.Error("envelope should be below the floor after a full second")
	}
}

func TestTriangleShape(t *testing.T) {
	cases := []struct {
		phase, want float64
	}{
		{0, -1},
		{math.Pi / 2, 0},
		{math.Pi, 1},
		{3 * math.Pi / 2, 0},
	}
	for _, c := range cases {
		if got := triangle(c.phase); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("triangle(%v): want %v, got %v", c.phase, c.want, got)
		}
	}
}

func TestHighpassBlocksDC(t *testing.T) {
	var f filter
	f.setHighpass(1000)
	var out float64
	for n := 0; n < sampleRate/10; n++ {
		out = f.process(1.0)
	}
	if math.Abs(out) > 0.01 {
		t.Errorf("high-pass should reject DC, got %v after settling", out)
	}
}
