package main

import (
	"fmt"
	"io"

	"groovebox/audio"
)

func renderCatalog(w io.Writer) {
	for i, p := range audio.Catalog {
		num := colorize(fmt.Sprintf("%2d", i+1), colorGreen)
		name := colorize(fmt.Sprintf("%-16s", p.Name), colorBlue)
		fmt.Fprintf(w, "%s  %s %3d bpm  %s\n", num, name, p.BPM, colorize(p.Style, colorMagenta))
	}
}

func renderStatus(w io.Writer, status audio.Status) {
	state := "stopped"
	if status.Playing {
		state = "playing"
	}
	fmt.Fprintf(w, "%s  style=%s bpm=%d step=%d volume=%.2f\n",
		colorize(state, colorGreen), status.Style, status.BPM, status.Step, status.Volume)
	renderGrid(w, audio.GridFor(status.Style))
}

func renderGrid(w io.Writer, grid audio.StepGrid) {
	rows := []struct {
		name  string
		steps [audio.NumSteps]bool
	}{
		{"kick", grid.Kick},
		{"snare", grid.Snare},
		{"hihat", grid.Hihat},
		{"sub", grid.SubBass},
	}
	for _, row := range rows {
		var steps string
		for _, on := range row.steps {
			step := "⬜️"
			if on {
				step = "⬛️"
			}
			steps += step + " "
		}
		fmt.Fprintf(w, "%s %s\n", colorize(fmt.Sprintf("%-6s", row.name), colorBlue), steps)
	}
}

const (
	colorBlack = iota + 30
	colorRed
	colorGreen
	colorYellow
	colorBlue
	colorMagenta
)

func colorize(text string, color int) string {
	return fmt.Sprintf("\033[%dm%s\033[0m", color, text)
}
