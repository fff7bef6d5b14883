package audio

import "math"

// The kit. Instrument names double as property name suffixes (level.kick).
const (
	Kick      = "kick"
	Snare     = "snare"
	ClosedHat = "closedHH"
	OpenHat   = "openHH"
	Clap      = "clap"
	TomLow    = "tomLow"
	TomMid    = "tomMid"
	TomHigh   = "tomHigh"
	Rimshot   = "rimshot"
	Cowbell   = "cowbell"
	Clave     = "clave"
	Maracas   = "maracas"
)

// kitNames lists the instruments in display order.
var kitNames = []string{
	Kick, Snare, ClosedHat, OpenHat, Clap, TomLow, TomMid, TomHigh,
	Rimshot, Cowbell, Clave, Maracas,
}

// inKit reports whether name is one of the twelve instruments. The kit is
// fixed, so an unknown name is a caller bug whatever the engine state.
func inKit(name string) bool {
	for _, n := range kitNames {
		if n == name {
			return true
		}
	}
	return false
}

// Voice turns trigger times and velocities into transient signal graphs.
// Triggering never mutates the voice; overlapping hits each get their own
// graph. The unexported build method keeps the set of implementations closed
// to this package.
type Voice interface {
	// Trigger schedules a hit at time when (seconds on the engine clock)
	// with the given velocity. It never blocks on rendering.
	Trigger(when, velocity float64) error
	// Dispose releases voice resources. Instruments hold configuration
	// only, so there is nothing to free, but the engine calls it on
	// teardown for every kit entry.
	Dispose()

	build(when, velocity float64) *graph
}

// graphBuilder produces the signal graph for one hit of one instrument.
type graphBuilder func(e *Engine, name string, when, velocity float64) *graph

// instrument is the concrete Voice. Every kit entry is an instrument holding
// the builder for its graph shape; parameterized families (toms, hats) share
// a builder closed over their constants.
type instrument struct {
	eng   *Engine
	name  string
	graph graphBuilder
}

func (v *instrument) Trigger(when, velocity float64) error {
	return v.eng.schedule(v.build(when, velocity))
}

func (v *instrument) Dispose() {}

func (v *instrument) build(when, velocity float64) *graph {
	return v.graph(v.eng, v.name, when, velocity)
}

func buildVoices(e *Engine) map[string]Voice {
	return map[string]Voice{
		Kick:      &instrument{e, Kick, kickGraph},
		Snare:     &instrument{e, Snare, snareGraph},
		ClosedHat: &instrument{e, ClosedHat, hatGraph(0.05)},
		OpenHat:   &instrument{e, OpenHat, hatGraph(0.3)},
		Clap:      &instrument{e, Clap, clapGraph},
		TomLow:    &instrument{e, TomLow, tomGraph(80)},
		TomMid:    &instrument{e, TomMid, tomGraph(120)},
		TomHigh:   &instrument{e, TomHigh, tomGraph(180)},
		Rimshot:   &instrument{e, Rimshot, rimshotGraph},
		Cowbell:   &instrument{e, Cowbell, cowbellGraph},
		Clave:     &instrument{e, Clave, claveGraph},
		Maracas:   &instrument{e, Maracas, maracasGraph},
	}
}

// attackTime is the minimum linear fade-in applied to every hit; jumping the
// gain from zero clicks.
const attackTime = 0.002

// decayEnv is the common trigger envelope: silence at the trigger point, a
// short linear attack to the peak, then an exponential fall into the silence
// floor over the decay window.
func decayEnv(when, peak, decay float64) *automation {
	env := newAutomation(when, 0)
	env.linearTo(when+attackTime, peak)
	env.expTo(when+attackTime+decay, silenceFloor)
	return env
}

// peakFor scales an instrument's nominal peak by the trigger velocity and the
// instrument's level property. Velocity is not clamped at 1, so callers may
// overdrive; products at or below zero floor at silence.
func (e *Engine) peakFor(name string, velocity, peak float64) float64 {
	g := velocity * peak * e.levelGain(name)
	if g < silenceFloor {
		return silenceFloor
	}
	return g
}

func (e *Engine) levelGain(name string) float64 {
	db := e.levels[name].Load().(float64)
	return math.Pow(10, db/20.0)
}
