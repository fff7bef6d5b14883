package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/mks/bonzo/audio"
	"github.com/mks/bonzo/riddim"
)

type env struct {
	engine    *audio.Engine
	sequencer *audio.Sequencer
	devices   map[string]audio.Device
	timeSig   timeSig
}

func (e *env) setProp(device, prop string, v interface{}) error {
	d, ok := e.devices[device]
	if !ok {
		return fmt.Errorf("unknown device: %s", device)
	}
	return d.Set(prop, v)
}

func (e *env) getProp(device, prop string) (interface{}, error) {
	d, ok := e.devices[device]
	if !ok {
		return nil, fmt.Errorf("unknown device: %s", device)
	}
	return d.Get(prop)
}

// updatePatterns copies the active pattern map, lets f edit the copy and
// swaps it in; the render side reads the map without locks, so it is never
// modified in place.
func (e *env) updatePatterns(f func(map[string]audio.Pattern)) error {
	v, err := e.getProp("seq", "patterns")
	if err != nil {
		return err
	}
	old := v.(map[string]audio.Pattern)
	patterns := make(map[string]audio.Pattern, len(old))
	for k, p := range old {
		patterns[k] = p
	}
	f(patterns)
	return e.setProp("seq", "patterns", patterns)
}

func (e *env) eval(input string) error {
	command, err := riddim.Parse(input)
	if err != nil {
		return err
	}
	name := string(command.Name)
	for _, cmd := range commands {
		if name != cmd.name {
			continue
		}
		if cmd.arity < 0 {
			arity := -cmd.arity
			if len(command.Args) < arity {
				return fmt.Errorf("%s: wrong number of arguments: need at least %v, got %v",
					cmd.name, arity, len(command.Args))
			}
		} else if len(command.Args) != cmd.arity {
			return fmt.Errorf("%s: wrong number of arguments: want %v, got %v",
				cmd.name, cmd.arity, len(command.Args))
		}
		if err := cmd.run(e, command.Args); err != nil {
			return fmt.Errorf("%s: %w", cmd.name, err)
		}
		return nil
	}
	return fmt.Errorf("unknown command: %s", name)
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
		if len(strings.TrimSpace(line)) == 0 {
			continue
		}
		if err := env.eval(line); err != nil {
			fmt.Println(err)
		}
	}
}

type command struct {
	name  string
	run   func(*env, []riddim.Node) error
	arity int // -n means len(args) must be >= n
}

var commands = []command{
	{"play", playCommand, -1},
	{"pat", patCommand, -2},
	{"clear", clearCommand, -1},
	{"beat", beatCommand, 2},
	{"bpm", bpmCommand, 1},
	{"level", levelCommand, 2},
	{"set", setCommand, 3},
	{"preset", presetCommand, 1},
	{"start", startCommand, 0},
	{"stop", stopCommand, 0},
	{"kit", kitCommand, 0},
	{"bounce", bounceCommand, 2},
}

func readArgs(args []riddim.Node, slots ...interface{}) error {
	if len(args) != len(slots) {
		return errors.New("not enough arguments")
	}
	for n, arg := range args {
		dest := slots[n]
		switch p := dest.(type) {
		case *string:
			switch s := arg.(type) {
			case riddim.String:
				*p = string(s)
			case riddim.Identifier:
				*p = string(s)
			default:
				return fmt.Errorf("argument error: expected a string or identifier")
			}
		case *float64:
			switch v := arg.(type) {
			case riddim.Float:
				*p = float64(v)
			case riddim.Int:
				*p = float64(v)
			default:
				return fmt.Errorf("argument error: expected a number")
			}
		case *int:
			v, ok := arg.(riddim.Int)
			if !ok {
				return fmt.Errorf("argument error: expected an integer")
			}
			*p = int(v)
		case *riddim.MatchExpr:
			v, ok := arg.(riddim.MatchExpr)
			if !ok {
				return fmt.Errorf("argument error: expected a pattern expression")
			}
			*p = v
		default:
			panic("readArgs: unhandled destination type: " + fmt.Sprint(p))
		}
	}
	return nil
}
