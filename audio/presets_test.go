package audio

import "testing"

func TestLoadPreset(t *testing.T) {
	seq := NewSequencer(NewProps(), &testPlayer{}, 44100)
	if err := LoadPreset("four-on-the-floor", seq); err != nil {
		t.Fatal(err)
	}
	v, err := seq.Get("bpm")
	if err != nil {
		t.Fatal(err)
	}
	if v.(float64) != 124.0 {
		t.Errorf("want 124 bpm, got %v", v)
	}
	v, err = seq.Get("patterns")
	if err != nil {
		t.Fatal(err)
	}
	patterns := v.(map[string]Pattern)
	kick := patterns[Kick]
	if len(kick) != 16 {
		t.Fatalf("kick pattern should have 16 steps, got %d", len(kick))
	}
	if kick[0] != 1 || kick[1] != 0 {
		t.Errorf("kick should open on the downbeat: %v", kick)
	}
}

func TestLoadPresetUnknown(t *testing.T) {
	seq := NewSequencer(NewProps(), &testPlayer{}, 44100)
	if err := LoadPreset("amen-break", seq); err == nil {
		t.Error("unknown preset should error")
	}
}

func TestPresetsAreValid(t *testing.T) {
	kit := map[string]bool{}
	for _, name := range kitNames {
		kit[name] = true
	}
	for name, p := range presets {
		seq := NewSequencer(NewProps(), &testPlayer{}, 44100)
		if err := LoadPreset(name, seq); err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		for instr := range p["patterns"].(map[string]Pattern) {
			if !kit[instr] {
				t.Errorf("%s: unknown instrument %s", name, instr)
			}
		}
	}
}
