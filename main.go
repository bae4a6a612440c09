package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"groovebox/audio"
)

func main() {
	var (
		backend = flag.String("backend", "portaudio", "audio backend: portaudio, oto or none")
		list    = flag.Bool("list", false, "print the pattern catalog and exit")
		style   = flag.String("style", "", "start playing the given style right away")
		bpm     = flag.Int("bpm", 0, "tempo override for -style")
	)
	flag.Parse()

	if *list {
		renderCatalog(os.Stdout)
		return
	}

	out, err := audio.Open(*backend)
	if err != nil {
		log.Fatal(err)
	}
	engine := audio.New(out)
	defer engine.Close()

	env := &env{engine: engine}

	if *style != "" {
		pattern := catalogDefault(*style)
		if *bpm > 0 {
			pattern.BPM = *bpm
		}
		if err := engine.Start(pattern); err != nil {
			log.Fatal(err)
		}
		if !engine.IsPlaying() {
			log.Printf("no usable audio device; staying idle")
		}
	}

	if err := repl(env); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// catalogDefault picks the first catalog entry for a style, or a bare
// pattern at 120 bpm when the style has no entry.
func catalogDefault(style string) audio.BeatPattern {
	for _, p := range audio.Catalog {
		if p.Style == style {
			return p
		}
	}
	return audio.BeatPattern{Name: style, BPM: 120, Style: style}
}
