package audio

import "sync/atomic"

// clock keeps track of the number of samples rendered since the engine first
// started. The render callback is the only writer; reads are atomic so any
// goroutine can ask for the current time.
type clock struct {
	sampleRate float64
	samples    uint64
}

func newClock(sampleRate float64) *clock {
	return &clock{sampleRate: sampleRate}
}

// now returns the stream time in seconds.
func (c *clock) now() float64 {
	return float64(atomic.LoadUint64(&c.samples)) / c.sampleRate
}

// pos returns the stream time as an absolute sample index.
func (c *clock) pos() uint64 {
	return atomic.LoadUint64(&c.samples)
}

func (c *clock) advance(numSamples int) {
	atomic.AddUint64(&c.samples, uint64(numSamples))
}
