package audio

import "math"

// source produces one sample per call. i is the sample index relative to the
// start of the owning branch, t the absolute stream time in seconds. Sources
// are stepped once per rendered sample, in order.
type source interface {
	sample(i int, t float64) float64
}

// branch is one source -> filter chain -> gain lane of a trigger graph.
type branch struct {
	sampleRate float64
	start, end uint64 // absolute sample range, end exclusive
	src        source
	filters    []*biquad
	gain       *automation
}

// graph is the disposable signal chain built for a single trigger. After
// scheduling it is owned by the render callback, which drops it once the
// stream position passes end.
type graph struct {
	branches []*branch
	end      uint64
}

func newGraph(branches ...*branch) *graph {
	g := &graph{branches: branches}
	for _, b := range g.branches {
		if b.end > g.end {
			g.end = b.end
		}
	}
	return g
}

func newBranch(sampleRate, when float64, src source, gain *automation, filters ...*biquad) *branch {
	return &branch{
		sampleRate: sampleRate,
		start:      uint64(math.Round(when * sampleRate)),
		end:        uint64(math.Ceil(gain.endTime()*sampleRate)) + 1,
		src:        src,
		filters:    filters,
		gain:       gain,
	}
}

// render mixes the graph into bus, which covers stream positions
// [pos, pos+len(bus)).
func (g *graph) render(bus []float64, pos uint64) {
	for _, b := range g.branches {
		b.render(bus, pos)
	}
}

// render walks the overlap of the branch's sample range with the buffer. A
// branch whose start has already passed picks up from the current position;
// its envelopes stay anchored at the scheduled start, so the missed samples
// are simply gone rather than time-shifted.
func (b *branch) render(bus []float64, pos uint64) {
	bufEnd := pos + uint64(len(bus))
	if b.start >= bufEnd || b.end <= pos {
		return
	}
	from, to := pos, bufEnd
	if b.start > from {
		from = b.start
	}
	if b.end < to {
		to = b.end
	}
	for s := from; s < to; s++ {
		t := float64(s) / b.sampleRate
		v := b.src.sample(int(s-b.start), t)
		for _, f := range b.filters {
			v = f.process(v)
		}
		bus[s-pos] += v * b.gain.valueAt(t)
	}
}
