package audio

import "math"

const twoPi = 2 * math.Pi

// sineOsc renders a sine whose frequency follows an automation schedule. The
// phase accumulates per rendered sample, so frequency ramps glide without
// discontinuities.
type sineOsc struct {
	sampleRate float64
	freq       *automation
	phase      float64
}

func newSine(sampleRate float64, freq *automation) *sineOsc {
	return &sineOsc{sampleRate: sampleRate, freq: freq}
}

func (o *sineOsc) sample(_ int, t float64) float64 {
	v := math.Sin(o.phase)
	o.phase += twoPi * o.freq.valueAt(t) / o.sampleRate
	if o.phase >= twoPi {
		o.phase -= twoPi
	}
	return v
}
