package audio

import (
	"log"
	"math/rand"
)

// blockSize is the trigger quantization inside a buffer; 16 samples gives
// about 0.35ms accuracy for sequenced events.
const blockSize = 16

type track int

const (
	trackKick track = iota
	trackSnare
	trackHihat
	trackSubBass
	numTracks
)

func (t track) String() string {
	switch t {
	case trackKick:
		return "kick"
	case trackSnare:
		return "snare"
	case trackHihat:
		return "hihat"
	case trackSubBass:
		return "subbass"
	}
	return "unknown"
}

// event is one scheduled drum trigger. offset is the exact sample position
// within the buffer being rendered.
type event struct {
	track  track
	offset int
	open   bool // hi-hat variant
}

// voice renders one triggered drum hit into the mix. A voice has no state
// that survives across triggers; trigger re-initializes it completely.
type voice interface {
	track() track
	trigger(ev event)
	active() bool
	process(buf []float64)
}

// voicesPerTrack bounds how many overlapping hits of the same drum can ring
// at once. With decays of at most half a second this is plenty.
const voicesPerTrack = 4

// Kit owns the four drum voices and mixes them into a single sum. It is the
// one long-lived stage all triggers feed into.
type Kit struct {
	events *eventBuffer
	voices []voice
}

// NewKit builds a drum kit. The noise voices draw from rng, so kits built
// from the same seed render identical output.
func NewKit(rng *rand.Rand) *Kit {
	k := &Kit{events: newEventBuffer(64)}
	for n := 0; n < voicesPerTrack; n++ {
		k.voices = append(k.voices,
			newKickVoice(kickParams),
			newSnareVoice(snareParams, rng),
			newHihatVoice(hihatParams, rng),
			newSubBassVoice(subBassParams),
		)
	}
	return k
}

func (k *Kit) trigger(ev event) {
	k.events.push(ev)
}

// process renders all active voices into sum, starting queued events at
// their sample offsets.
func (k *Kit) process(sum []float64) {
	for n := 0; n < len(sum); n += blockSize {
		end := n + blockSize
		if end > len(sum) {
			end = len(sum)
		}
		k.events.iter(end, func(ev event) {
			voice := k.findFreeVoice(ev.track)
			if voice == nil {
				log.Printf("kit: no free %s voice", ev.track)
				return
			}
			voice.trigger(ev)
		})
		for _, voice := range k.voices {
			if voice.active() {
				voice.process(sum[n:end])
			}
		}
	}
}

func (k *Kit) findFreeVoice(t track) voice {
	for _, voice := range k.voices {
		if voice.track() == t && !voice.active() {
			return voice
		}
	}
	return nil
}
