package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"groovebox/audio"
)

type env struct {
	engine *audio.Engine
}

func repl(env *env) error {
	rl, err := readline.New("> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			fmt.Println(err)
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "quit" || fields[0] == "exit" {
			return nil
		}
		if err := env.eval(fields[0], fields[1:]); err != nil {
			fmt.Println(err)
		}
	}
}

func (e *env) eval(name string, args []string) error {
	for _, cmd := range commands {
		if name != cmd.name {
			continue
		}
		if cmd.arity >= 0 && len(args) != cmd.arity {
			return fmt.Errorf("%s: wrong number of arguments: want %v, got %v",
				cmd.name, cmd.arity, len(args))
		}
		if err := cmd.run(e, args); err != nil {
			return fmt.Errorf("%s: %w", cmd.name, err)
		}
		return nil
	}
	return fmt.Errorf("unknown command: %s (try help)", name)
}

type command struct {
	name  string
	arity int // -1 means any
	run   func(*env, []string) error
	help  string
}

var commands []command

// Filled here rather than in the declaration: helpCommand walks the table,
// which would otherwise be an initialization cycle.
func init() {
	commands = []command{
		{"help", 0, helpCommand, "list commands"},
		{"list", 0, listCommand, "show the pattern catalog"},
		{"start", 1, startCommand, "start <number|name>: play a catalog pattern"},
		{"stop", 0, stopCommand, "stop playback"},
		{"vol", 1, volCommand, "vol <0..1>: set master volume"},
		{"set", 2, setCommand, "set <bpm|volume> <value>: tweak while playing"},
		{"status", 0, statusCommand, "show playback state and the active grid"},
	}
}

func helpCommand(e *env, args []string) error {
	for _, cmd := range commands {
		fmt.Printf("%-8s %s\n", cmd.name, cmd.help)
	}
	return nil
}

func listCommand(e *env, args []string) error {
	renderCatalog(os.Stdout)
	return nil
}

func startCommand(e *env, args []string) error {
	pattern, err := findPattern(args[0])
	if err != nil {
		return err
	}
	if err := e.engine.Start(pattern); err != nil {
		return err
	}
	if !e.engine.IsPlaying() {
		fmt.Println("no usable audio device; not playing")
		return nil
	}
	fmt.Printf("playing %q (%s, %d bpm)\n", pattern.Name, pattern.Style, pattern.BPM)
	return nil
}

func findPattern(arg string) (audio.BeatPattern, error) {
	if n, err := strconv.Atoi(arg); err == nil {
		if n < 1 || n > len(audio.Catalog) {
			return audio.BeatPattern{}, fmt.Errorf("no pattern %d in the catalog", n)
		}
		return audio.Catalog[n-1], nil
	}
	for _, p := range audio.Catalog {
		if strings.EqualFold(p.Name, arg) {
			return p, nil
		}
	}
	// Fall back to treating the argument as a style name; unknown styles
	// play the default grid.
	return audio.BeatPattern{Name: arg, BPM: 120, Style: arg}, nil
}

func stopCommand(e *env, args []string) error {
	e.engine.Stop()
	return nil
}

func volCommand(e *env, args []string) error {
	v, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return err
	}
	e.engine.SetVolume(v)
	fmt.Printf("volume %.2f\n", e.engine.Volume())
	return nil
}

func setCommand(e *env, args []string) error {
	key := args[0]
	if v, err := strconv.ParseFloat(args[1], 64); err == nil {
		return e.engine.Set(key, v)
	}
	return e.engine.Set(key, args[1])
}

func statusCommand(e *env, args []string) error {
	renderStatus(os.Stdout, e.engine.Status())
	return nil
}
