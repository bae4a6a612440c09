package audio

import (
	"math"
	"testing"
)

type captureSink struct {
	events []event
}

func (c *captureSink) trigger(ev event) {
	c.events = append(c.events, ev)
}

func (c *captureSink) flush() {
	c.events = nil
}

func TestStepDuration(t *testing.T) {
	if want, got := 0.125, StepDuration(120).Seconds(); math.Abs(want-got) > 1e-9 {
		t.Errorf("step duration at 120 bpm: want %v, got %v", want, got)
	}
	if want, got := (60.0/90)/4, StepDuration(90).Seconds(); math.Abs(want-got) > 1e-6 {
		t.Errorf("step duration at 90 bpm: want %v, got %v", want, got)
	}
}

func newTestSequencer(t *testing.T, style string, bpm int) (*Sequencer, *captureSink) {
	t.Helper()
	props := NewProps()
	sink := &captureSink{}
	seq := newSequencer(props, sink)
	if err := props.Set("bpm", bpm); err != nil {
		t.Fatal(err)
	}
	if err := props.Set("grid", GridFor(style)); err != nil {
		t.Fatal(err)
	}
	seq.reset()
	return seq, sink
}

func TestSequencerSchedulesGridColumns(t *testing.T) {
	const bpm = 120
	seq, sink := newTestSequencer(t, "hiphop", bpm)

	// One big buffer covering exactly one bar: 16 steps of 5512.5 samples.
	sps := samplesPerStep(bpm)
	seq.tick(int(sps * NumSteps))

	offsets := make(map[track][]int)
	for _, ev := range sink.events {
		offsets[ev.track] = append(offsets[ev.track], ev.offset)
	}

	stepOffset := func(step int) int { return int(float64(step) * sps) }

	wantKick := []int{stepOffset(0), stepOffset(8)}
	if got := offsets[trackKick]; !equalInts(wantKick, got) {
		t.Errorf("kick offsets: want %v, got %v", wantKick, got)
	}
	wantSnare := []int{stepOffset(4), stepOffset(12)}
	if got := offsets[trackSnare]; !equalInts(wantSnare, got) {
		t.Errorf("snare offsets: want %v, got %v", wantSnare, got)
	}
	var wantHat []int
	for step := 0; step < NumSteps; step += 2 {
		wantHat = append(wantHat, stepOffset(step))
	}
	if got := offsets[trackHihat]; !equalInts(wantHat, got) {
		t.Errorf("hihat offsets: want %v, got %v", wantHat, got)
	}
	if got := offsets[trackSubBass]; !equalInts(wantKick, got) {
		t.Errorf("subbass offsets: want %v, got %v", wantKick, got)
	}
}

func TestSequencerOpenHat(t *testing.T) {
	seq, sink := newTestSequencer(t, "hiphop", 120)
	seq.tick(int(samplesPerStep(120) * NumSteps))

	var open, closed int
	for _, ev := range sink.events {
		if ev.track != trackHihat {
			continue
		}
		if ev.open {
			open++
		} else {
			closed++
		}
	}
	// Steps 0 and 8 open, the remaining six even steps stay closed.
	if open != 2 || closed != 6 {
		t.Errorf("want 2 open / 6 closed hats, got %d / %d", open, closed)
	}
}

// Plays one full bar at 90 bpm through buffer-sized ticks and checks the
// triggered instruments per step against the grid.
func TestSequencerFullBar(t *testing.T) {
	const bpm = 90
	seq, sink := newTestSequencer(t, "hiphop", bpm)

	sps := samplesPerStep(bpm) // exactly 7350 samples at 90 bpm
	total := int(sps * NumSteps)

	triggered := make(map[int]map[track]bool)
	var processed int
	for processed < total {
		frames := bufferSize
		if total-processed < frames {
			frames = total - processed
		}
		sink.flush()
		seq.tick(frames)
		for _, ev := range sink.events {
			step := int(math.Round(float64(processed+ev.offset) / sps))
			if triggered[step] == nil {
				triggered[step] = make(map[track]bool)
			}
			triggered[step][ev.track] = true
		}
		processed += frames
	}

	grid := GridFor("hiphop")
	for step := 0; step < NumSteps; step++ {
		want := map[track]bool{}
		if grid.Kick[step] {
			want[trackKick] = true
		}
		if grid.Snare[step] {
			want[trackSnare] = true
		}
		if grid.Hihat[step] {
			want[trackHihat] = true
		}
		if grid.SubBass[step] {
			want[trackSubBass] = true
		}
		got := triggered[step]
		if len(want) == 0 && len(got) == 0 {
			continue
		}
		if len(want) != len(got) {
			t.Errorf("step %d: want triggers %v, got %v", step, want, got)
			continue
		}
		for tr := range want {
			if !got[tr] {
				t.Errorf("step %d: missing %s trigger", step, tr)
			}
		}
	}

	if seq.step != 0 {
		t.Errorf("after a full bar the counter should wrap to 0, got %d", seq.step)
	}
}

func TestSequencerResetRewindsToStepZero(t *testing.T) {
	seq, sink := newTestSequencer(t, "hiphop", 120)

	// Advance partway into the bar, then reset.
	seq.tick(int(samplesPerStep(120) * 5))
	if seq.step == 0 {
		t.Fatal("expected the sequencer to have advanced")
	}
	seq.reset()
	if seq.step != 0 {
		t.Fatalf("reset should rewind to step 0, got %d", seq.step)
	}

	sink.flush()
	seq.tick(bufferSize)
	if len(sink.events) == 0 {
		t.Fatal("expected step 0 to fire immediately after reset")
	}
	for _, ev := range sink.events[:3] {
		if ev.offset != 0 {
			t.Errorf("step 0 should fire at offset 0, got %d", ev.offset)
		}
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
