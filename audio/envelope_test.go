package audio

import (
	"math"
	"testing"
)

func TestAutomationValueAt(t *testing.T) {
	env := newAutomation(0, 0).
		linearTo(0.002, 1).
		expTo(0.102, 0)

	tests := []struct {
		t    float64
		want float64
	}{
		{-1, 0},
		{0, 0},
		{0.001, 0.5},
		{0.002, 1},
		{0.052, 0.01}, // halfway down the exponential: (1e-4)^0.5
		{0.102, silenceFloor},
		{5, silenceFloor},
	}
	for _, test := range tests {
		if got := env.valueAt(test.t); math.Abs(got-test.want) > 1e-9 {
			t.Errorf("valueAt(%v): want %v, got %v", test.t, test.want, got)
		}
	}
}

func TestAutomationRewind(t *testing.T) {
	env := newAutomation(0, 0).linearTo(1, 1)
	if got := env.valueAt(0.75); got != 0.75 {
		t.Errorf("forward lookup: want 0.75, got %v", got)
	}
	if got := env.valueAt(0.25); got != 0.25 {
		t.Errorf("lookup before the cursor: want 0.25, got %v", got)
	}
}

func TestAutomationStepHolds(t *testing.T) {
	env := newAutomation(0, 1)
	env.add(breakpoint{time: 1, value: 2, ramp: rampStep})
	tests := []struct {
		t    float64
		want float64
	}{
		{0, 1},
		{0.999, 1},
		{1, 2},
		{3, 2},
	}
	for _, test := range tests {
		if got := env.valueAt(test.t); got != test.want {
			t.Errorf("valueAt(%v): want %v, got %v", test.t, test.want, got)
		}
	}
}

func TestExpToFloorsTarget(t *testing.T) {
	env := newAutomation(0, 1).expTo(1, 0)
	if got := env.valueAt(1); got != silenceFloor {
		t.Errorf("target should be floored: want %v, got %v", silenceFloor, got)
	}
	if got := env.valueAt(0.5); got <= silenceFloor || got >= 1 {
		t.Errorf("midpoint should fall between floor and peak, got %v", got)
	}
}

func TestExpFromZeroFallsBackToLinear(t *testing.T) {
	env := newAutomation(0, 0).expTo(1, 1)
	if got := env.valueAt(0.5); got != 0.5 {
		t.Errorf("exponential from zero should interpolate linearly: want 0.5, got %v", got)
	}
}

func TestAutomationEndTime(t *testing.T) {
	env := newAutomation(0.25, 0).linearTo(0.5, 1).expTo(1.5, 0)
	if got := env.endTime(); got != 1.5 {
		t.Errorf("want 1.5, got %v", got)
	}
}

func TestBreakpointTimesMustIncrease(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for a non-increasing breakpoint time")
		}
	}()
	newAutomation(1, 0).linearTo(1, 1)
}
