package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mks/bonzo/audio"
	"github.com/mks/bonzo/riddim"
)

// stepSize is the pattern resolution per whole note. 16 means sixteenth
// note steps, the grid the sequencer plays.
const stepSize = 16

type timeSig struct {
	num   int
	denom int
}

func newTimeSig(num, denom int) (timeSig, error) {
	if num < 1 || num > 32 {
		return timeSig{}, fmt.Errorf("beats out of range 1-32: %d", num)
	}
	switch denom {
	case 1, 2, 4, 8, 16:
	default:
		return timeSig{}, fmt.Errorf("invalid beat unit: %d", denom)
	}
	return timeSig{num: num, denom: denom}, nil
}

func parseTimeSignature(s string) (timeSig, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return timeSig{}, fmt.Errorf("not a valid time signature: %s", s)
	}
	num, err := strconv.Atoi(parts[0])
	if err != nil {
		return timeSig{}, fmt.Errorf("bad numerator %s: %s", parts[0], err)
	}
	denom, err := strconv.Atoi(parts[1])
	if err != nil {
		return timeSig{}, fmt.Errorf("bad denominator %s: %s", parts[1], err)
	}
	return newTimeSig(num, denom)
}

// patternSteps is the length of a pattern covering one bar of the current
// time signature.
func (e *env) patternSteps() int {
	return (stepSize / e.timeSig.denom) * e.timeSig.num
}

func (e *env) knownInstrument(name string) error {
	for _, n := range e.engine.Instruments() {
		if n == name {
			return nil
		}
	}
	return fmt.Errorf("unknown instrument: %s", name)
}

func playCommand(env *env, args []riddim.Node) error {
	if len(args) > 2 {
		return fmt.Errorf("too many arguments")
	}
	var name string
	if err := readArgs(args[:1], &name); err != nil {
		return err
	}
	velocity := 1.0
	if len(args) == 2 {
		if err := readArgs(args[1:], &velocity); err != nil {
			return err
		}
	}
	return env.engine.Trigger(name, velocity)
}

func patCommand(env *env, args []riddim.Node) error {
	if len(args) > 3 {
		return fmt.Errorf("too many arguments")
	}
	var name string
	var expr riddim.MatchExpr
	if err := readArgs(args[:2], &name, &expr); err != nil {
		return err
	}
	velocity := 1.0
	if len(args) == 3 {
		if err := readArgs(args[2:], &velocity); err != nil {
			return err
		}
	}
	if err := env.knownInstrument(name); err != nil {
		return err
	}
	steps, err := riddim.EvalMatchExpr(expr, env.timeSig.num, env.timeSig.denom, stepSize)
	if err != nil {
		return err
	}
	pattern := make(audio.Pattern, len(steps))
	for i, hit := range steps {
		if hit != 0 {
			pattern[i] = velocity
		}
	}
	return env.updatePatterns(func(patterns map[string]audio.Pattern) {
		patterns[name] = pattern
	})
}

func clearCommand(env *env, args []riddim.Node) error {
	names := make([]string, len(args))
	for i := range args {
		if err := readArgs(args[i:i+1], &names[i]); err != nil {
			return err
		}
	}
	return env.updatePatterns(func(patterns map[string]audio.Pattern) {
		for _, name := range names {
			delete(patterns, name)
		}
	})
}

func beatCommand(env *env, args []riddim.Node) error {
	var num, denom int
	if err := readArgs(args, &num, &denom); err != nil {
		return err
	}
	sig, err := newTimeSig(num, denom)
	if err != nil {
		return err
	}
	env.timeSig = sig
	return nil
}

func bpmCommand(env *env, args []riddim.Node) error {
	var bpm float64
	if err := readArgs(args, &bpm); err != nil {
		return err
	}
	return env.setProp("seq", "bpm", bpm)
}

func levelCommand(env *env, args []riddim.Node) error {
	var name string
	var db float64
	if err := readArgs(args, &name, &db); err != nil {
		return err
	}
	prop := "level"
	if name != "master" {
		if err := env.knownInstrument(name); err != nil {
			return err
		}
		prop = "level." + name
	}
	return env.setProp("kit", prop, db)
}

func setCommand(env *env, args []riddim.Node) error {
	var device, prop string
	if err := readArgs(args[:2], &device, &prop); err != nil {
		return err
	}
	switch v := args[2].(type) {
	case riddim.Int:
		return env.setProp(device, prop, int(v))
	case riddim.Float:
		return env.setProp(device, prop, float64(v))
	case riddim.String:
		return env.setProp(device, prop, string(v))
	case riddim.Identifier:
		return env.setProp(device, prop, string(v))
	default:
		return fmt.Errorf("unsupported property type: %v", v)
	}
}

func presetCommand(env *env, args []riddim.Node) error {
	var name string
	if err := readArgs(args, &name); err != nil {
		return err
	}
	return audio.LoadPreset(name, env.sequencer)
}

func startCommand(env *env, args []riddim.Node) error {
	env.sequencer.Start()
	return nil
}

func stopCommand(env *env, args []riddim.Node) error {
	env.sequencer.Stop()
	return nil
}

func bounceCommand(env *env, args []riddim.Node) error {
	var path string
	var bars int
	if err := readArgs(args, &path, &bars); err != nil {
		return err
	}
	if bars < 1 {
		return fmt.Errorf("bars must be positive: %d", bars)
	}
	return bounce(env, path, bars)
}
