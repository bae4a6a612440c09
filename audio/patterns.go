package audio

import "sort"

// NumSteps is the length of every rhythm grid: one bar of 16th notes.
const NumSteps = 16

// StepGrid holds one bar of triggers for each of the four voices.
type StepGrid struct {
	Kick    [NumSteps]bool
	Snare   [NumSteps]bool
	Hihat   [NumSteps]bool
	SubBass [NumSteps]bool
}

// BeatPattern selects a style and tempo to play. It's a plain value; the
// engine never mutates it.
type BeatPattern struct {
	Name  string
	BPM   int
	Style string
}

func row(steps ...int) [NumSteps]bool {
	var r [NumSteps]bool
	for i, v := range steps {
		if i >= NumSteps {
			break
		}
		r[i] = v != 0
	}
	return r
}

// defaultGrid is the fallback for unrecognized styles: kick on 1 and 3,
// snare on 2 and 4, hats on every 8th, no sub bass.
var defaultGrid = StepGrid{
	Kick:  row(1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0),
	Snare: row(0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0),
	Hihat: row(1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0),
}

var styles = map[string]StepGrid{
	"hiphop": {
		Kick:    row(1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0),
		Snare:   row(0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0),
		Hihat:   row(1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0),
		SubBass: row(1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0),
	},
	"boombap": {
		Kick:    row(1, 0, 0, 0, 0, 0, 0, 1, 0, 0, 1, 0, 0, 0, 0, 0),
		Snare:   row(0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0),
		Hihat:   row(1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0),
		SubBass: row(1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0),
	},
	"trap": {
		Kick:    row(1, 0, 0, 0, 0, 0, 0, 1, 0, 0, 1, 0, 0, 0, 0, 0),
		Snare:   row(0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0),
		Hihat:   row(1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1),
		SubBass: row(1, 0, 0, 0, 0, 0, 0, 1, 0, 0, 1, 0, 0, 0, 0, 0),
	},
	"house": {
		Kick:  row(1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0),
		Snare: row(0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0),
		Hihat: row(0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0),
	},
	"techno": {
		Kick:    row(1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0),
		Hihat:   row(0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0),
		SubBass: row(1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0),
	},
	"dnb": {
		Kick:    row(1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0),
		Snare:   row(0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0),
		Hihat:   row(1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0),
		SubBass: row(1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0),
	},
	"dubstep": {
		Kick:    row(1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0),
		Snare:   row(0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0),
		Hihat:   row(0, 0, 1, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 1, 0, 0),
		SubBass: row(1, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0),
	},
	"reggaeton": {
		Kick:    row(1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0),
		Snare:   row(0, 0, 0, 1, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 1, 0),
		Hihat:   row(1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0),
		SubBass: row(1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0),
	},
	"afrobeat": {
		Kick:    row(1, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 1, 0, 0, 0, 0),
		Snare:   row(0, 0, 0, 0, 1, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0),
		Hihat:   row(1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1),
		SubBass: row(1, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0),
	},
	"funk": {
		Kick:  row(1, 0, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0),
		Snare: row(0, 0, 0, 0, 1, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0),
		Hihat: row(1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1),
	},
	"lofi": {
		Kick:    row(1, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0),
		Snare:   row(0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0),
		Hihat:   row(1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 0, 1),
		SubBass: row(1, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0),
	},
	"electro": {
		Kick:    row(1, 0, 0, 0, 0, 0, 1, 0, 1, 0, 0, 0, 0, 0, 1, 0),
		Snare:   row(0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0),
		Hihat:   row(1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0),
		SubBass: row(1, 0, 0, 0, 0, 0, 1, 0, 1, 0, 0, 0, 0, 0, 0, 0),
	},
}

// GridFor returns the rhythm grid for a style. Unknown styles get the
// default grid rather than an error, so playback can always proceed.
func GridFor(style string) StepGrid {
	if g, ok := styles[style]; ok {
		return g
	}
	return defaultGrid
}

// Styles lists the known style names in sorted order.
func Styles() []string {
	names := make([]string, 0, len(styles))
	for name := range styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Catalog is the built-in pattern list shown to the user. Entries are
// ordered roughly slow to fast within each style.
var Catalog = []BeatPattern{
	{"Dusty Crates", 88, "boombap"},
	{"Corner Cypher", 92, "boombap"},
	{"Golden Era", 96, "boombap"},
	{"Westside Bounce", 90, "hiphop"},
	{"Low Rider", 94, "hiphop"},
	{"Block Party", 100, "hiphop"},
	{"Purple Haze", 70, "trap"},
	{"Trunk Rattle", 75, "trap"},
	{"Night Drive", 80, "trap"},
	{"Warehouse", 122, "house"},
	{"Deep End", 124, "house"},
	{"Piano Sunrise", 126, "house"},
	{"Concrete", 128, "techno"},
	{"Strobe", 132, "techno"},
	{"Bunker", 138, "techno"},
	{"Amen Run", 170, "dnb"},
	{"Liquid Roller", 174, "dnb"},
	{"Wobble Pit", 140, "dubstep"},
	{"Half Step", 145, "dubstep"},
	{"Dembow Nights", 92, "reggaeton"},
	{"Isla Verde", 96, "reggaeton"},
	{"Lagos Traffic", 104, "afrobeat"},
	{"Talking Drum", 110, "afrobeat"},
	{"Rubber Band", 104, "funk"},
	{"Pocket Groove", 108, "funk"},
	{"Tape Hiss", 72, "lofi"},
	{"Rainy Window", 78, "lofi"},
	{"Circuit Breaker", 118, "electro"},
	{"Neon Grid", 125, "electro"},
}
