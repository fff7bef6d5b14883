package main

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/mks/bonzo/audio"
)

func testEnv() *env {
	engine := audio.New(audio.Config{})
	sequencer := audio.NewSequencer(audio.NewProps(), engine, engine.SampleRate())
	return &env{
		engine:    engine,
		sequencer: sequencer,
		timeSig:   timeSig{num: 4, denom: 4},
		devices: map[string]audio.Device{
			"kit": engine,
			"seq": sequencer,
		},
	}
}

func patterns(t *testing.T, env *env) map[string]audio.Pattern {
	t.Helper()
	v, err := env.getProp("seq", "patterns")
	if err != nil {
		t.Fatal(err)
	}
	return v.(map[string]audio.Pattern)
}

func TestParseTimeSignature(t *testing.T) {
	tests := []struct {
		input string
		want  timeSig
		err   bool
	}{
		{input: "4/4", want: timeSig{4, 4}},
		{input: "3/4", want: timeSig{3, 4}},
		{input: "7/8", want: timeSig{7, 8}},
		{input: "12/8", want: timeSig{12, 8}},
		{input: "4", err: true},
		{input: "a/4", err: true},
		{input: "4/x", err: true},
		{input: "4/5", err: true},
		{input: "0/4", err: true},
		{input: "33/4", err: true},
	}
	for _, test := range tests {
		got, err := parseTimeSignature(test.input)
		if test.err {
			if err == nil {
				t.Errorf("%s: expected an error", test.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: %v", test.input, err)
			continue
		}
		if got != test.want {
			t.Errorf("%s: want %+v, got %+v", test.input, test.want, got)
		}
	}
}

func TestPatternSteps(t *testing.T) {
	tests := []struct {
		sig  timeSig
		want int
	}{
		{timeSig{4, 4}, 16},
		{timeSig{3, 4}, 12},
		{timeSig{7, 8}, 14},
		{timeSig{2, 2}, 16},
		{timeSig{6, 8}, 12},
	}
	for _, test := range tests {
		e := &env{timeSig: test.sig}
		if got := e.patternSteps(); got != test.want {
			t.Errorf("%d/%d: want %d steps, got %d",
				test.sig.num, test.sig.denom, test.want, got)
		}
	}
}

func TestEvalErrors(t *testing.T) {
	env := testEnv()
	tests := []struct {
		input string
		want  string
	}{
		{"blah", "unknown command"},
		{"bpm", "wrong number of arguments"},
		{"beat 4", "wrong number of arguments"},
		{"bpm fast", "expected a number"},
		{"pat bongo '1:4", "unknown instrument"},
		{"level bongo -6", "unknown instrument"},
		{"set amp gain 3", "unknown device"},
		{"bounce out.wav 0", "bars must be positive"},
	}
	for _, test := range tests {
		err := env.eval(test.input)
		if err == nil || !strings.Contains(err.Error(), test.want) {
			t.Errorf("%s: want error containing %q, got %v", test.input, test.want, err)
		}
	}
}

func TestPlayRequiresAudio(t *testing.T) {
	env := testEnv()
	if err := env.eval("play kick"); !errors.Is(err, audio.ErrNotInitialized) {
		t.Errorf("want ErrNotInitialized, got %v", err)
	}
}

func TestPatCommand(t *testing.T) {
	env := testEnv()
	if err := env.eval("pat kick '1:4"); err != nil {
		t.Fatal(err)
	}
	want := audio.Pattern{1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0}
	if got := patterns(t, env)["kick"]; !reflect.DeepEqual(want, got) {
		t.Errorf("want %v, got %v", want, got)
	}

	if err := env.eval("pat snare '3 0.8"); err != nil {
		t.Fatal(err)
	}
	want = audio.Pattern{0, 0, 0, 0, 0, 0, 0, 0, 0.8, 0, 0, 0, 0, 0, 0, 0}
	if got := patterns(t, env)["snare"]; !reflect.DeepEqual(want, got) {
		t.Errorf("want %v, got %v", want, got)
	}
}

func TestClearCommand(t *testing.T) {
	env := testEnv()
	if err := env.eval("pat kick '1:4"); err != nil {
		t.Fatal(err)
	}
	if err := env.eval("pat clave '2,4"); err != nil {
		t.Fatal(err)
	}
	if err := env.eval("clear kick"); err != nil {
		t.Fatal(err)
	}
	got := patterns(t, env)
	if _, ok := got["kick"]; ok {
		t.Error("kick should be cleared")
	}
	if _, ok := got["clave"]; !ok {
		t.Error("clave should survive clearing kick")
	}
}

func TestBeatCommand(t *testing.T) {
	env := testEnv()
	if err := env.eval("beat 7 8"); err != nil {
		t.Fatal(err)
	}
	if want := (timeSig{7, 8}); env.timeSig != want {
		t.Errorf("want %+v, got %+v", want, env.timeSig)
	}
	if err := env.eval("beat 7 9"); err == nil {
		t.Error("invalid beat unit should error")
	}
}

func TestLevelCommand(t *testing.T) {
	env := testEnv()
	if err := env.eval("level kick -6"); err != nil {
		t.Fatal(err)
	}
	v, err := env.getProp("kit", "level.kick")
	if err != nil {
		t.Fatal(err)
	}
	if v.(float64) != -6.0 {
		t.Errorf("want -6 dB on the kick, got %v", v)
	}

	if err := env.eval("level master -3"); err != nil {
		t.Fatal(err)
	}
	v, err = env.getProp("kit", "level")
	if err != nil {
		t.Fatal(err)
	}
	if v.(float64) != -3.0 {
		t.Errorf("want -3 dB on the master, got %v", v)
	}
}

func TestSetCommand(t *testing.T) {
	env := testEnv()
	if err := env.eval("set seq bpm 100"); err != nil {
		t.Fatal(err)
	}
	v, err := env.getProp("seq", "bpm")
	if err != nil {
		t.Fatal(err)
	}
	if v.(float64) != 100.0 {
		t.Errorf("want 100 bpm, got %v", v)
	}
}

func TestStartStopCommands(t *testing.T) {
	env := testEnv()
	if err := env.eval("start"); err != nil {
		t.Fatal(err)
	}
	if !env.sequencer.Playing() {
		t.Error("start should set the sequencer playing")
	}
	if err := env.eval("stop"); err != nil {
		t.Fatal(err)
	}
	if env.sequencer.Playing() {
		t.Error("stop should halt the sequencer")
	}
}

func TestPresetCommand(t *testing.T) {
	env := testEnv()
	if err := env.eval(`preset "boots-n-cats"`); err != nil {
		t.Fatal(err)
	}
	v, err := env.getProp("seq", "bpm")
	if err != nil {
		t.Fatal(err)
	}
	if v.(float64) != 96.0 {
		t.Errorf("want 96 bpm from the preset, got %v", v)
	}
	if _, ok := patterns(t, env)["snare"]; !ok {
		t.Error("preset should set a snare pattern")
	}
}
