package audio

import "math"

// biquad is a single second order filter section. Designs follow the audio EQ
// cookbook (https://www.w3.org/2011/audio/audio-eq-cookbook.html), the state
// runs in direct form II transposed. Each branch owns its sections, so state
// starts from zero on every trigger.
type biquad struct {
	b0, b1, b2, a1, a2 float64
	z1, z2             float64
}

func (f *biquad) process(x float64) float64 {
	y := f.b0*x + f.z1
	f.z1 = f.b1*x - f.a1*y + f.z2
	f.z2 = f.b2*x - f.a2*y
	return y
}

// bandpass returns the constant 0 dB peak gain variant, so a narrow (high Q)
// band doesn't boost the signal at the center frequency.
func bandpass(sampleRate, freq, q float64) *biquad {
	w0 := twoPi * freq / sampleRate
	if w0 <= 0 || w0 >= math.Pi {
		return &biquad{}
	}
	sin, cos := math.Sincos(w0)
	alpha := sin / (2 * q)
	a0 := 1 + alpha
	return &biquad{
		b0: alpha / a0,
		b1: 0,
		b2: -alpha / a0,
		a1: -2 * cos / a0,
		a2: (1 - alpha) / a0,
	}
}

func highpass(sampleRate, freq, q float64) *biquad {
	w0 := twoPi * freq / sampleRate
	if w0 <= 0 || w0 >= math.Pi {
		return &biquad{}
	}
	sin, cos := math.Sincos(w0)
	alpha := sin / (2 * q)
	a0 := 1 + alpha
	return &biquad{
		b0: (1 + cos) / 2 / a0,
		b1: -(1 + cos) / a0,
		b2: (1 + cos) / 2 / a0,
		a1: -2 * cos / a0,
		a2: (1 - alpha) / a0,
	}
}
