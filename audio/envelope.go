package audio

import "math"

// silenceFloor is the smallest value exponential ramps may start from or end
// at. An exponential approach to zero never gets there, so ramp targets are
// floored here and anything at or below it counts as silence.
const silenceFloor = 1e-4

type rampKind int

const (
	rampStep rampKind = iota
	rampLinear
	rampExp
)

// A breakpoint pins a parameter to value at time. The ramp describes how the
// parameter travels from the previous breakpoint to this one.
type breakpoint struct {
	time  float64
	value float64
	ramp  rampKind
}

// automation is a breakpoint schedule for a single scalar parameter, laid out
// in absolute stream time. Breakpoints are appended in strictly increasing
// time order at build time and never change afterwards.
type automation struct {
	points []breakpoint

	// evaluation cursor; valueAt is called with mostly increasing times,
	// so remember where the last lookup ended up.
	idx   int
	lastT float64
}

func newAutomation(t, v float64) *automation {
	return &automation{points: []breakpoint{{time: t, value: v, ramp: rampStep}}}
}

// linearTo adds a linear ramp ending at value v at time t.
func (a *automation) linearTo(t, v float64) *automation {
	a.add(breakpoint{time: t, value: v, ramp: rampLinear})
	return a
}

// expTo adds an exponential ramp ending at time t. Targets at or below zero
// are floored at silenceFloor since the curve is undefined there.
func (a *automation) expTo(t, v float64) *automation {
	if v < silenceFloor {
		v = silenceFloor
	}
	a.add(breakpoint{time: t, value: v, ramp: rampExp})
	return a
}

func (a *automation) add(p breakpoint) {
	if last := a.points[len(a.points)-1]; p.time <= last.time {
		panic("automation: breakpoint times must increase")
	}
	a.points = append(a.points, p)
}

// endTime is the time of the last breakpoint; the parameter holds its final
// value from there on.
func (a *automation) endTime() float64 {
	return a.points[len(a.points)-1].time
}

// valueAt evaluates the schedule at time t. Before the first breakpoint the
// first value holds, after the last one the last value holds. In between, the
// ramp kind of the upcoming breakpoint decides the interpolation.
func (a *automation) valueAt(t float64) float64 {
	pts := a.points
	if t <= pts[0].time {
		a.idx = 0
		a.lastT = t
		return pts[0].value
	}
	if t < a.lastT {
		a.idx = 0
	}
	a.lastT = t
	for a.idx+1 < len(pts) && t >= pts[a.idx+1].time {
		a.idx++
	}
	cur := pts[a.idx]
	if a.idx+1 == len(pts) {
		return cur.value
	}
	next := pts[a.idx+1]
	u := (t - cur.time) / (next.time - cur.time)
	switch next.ramp {
	case rampLinear:
		return cur.value + (next.value-cur.value)*u
	case rampExp:
		if cur.value <= 0 || next.value <= 0 {
			return cur.value + (next.value-cur.value)*u
		}
		return cur.value * math.Pow(next.value/cur.value, u)
	default:
		return cur.value
	}
}
