package audio

import "math/rand"

// noiseSource plays back a buffer of white noise rendered when the trigger
// graph is built. Buffers are never shared or reused between triggers; the
// spectral shape comes from the filter sections downstream.
type noiseSource struct {
	buf []float64
}

func newNoise(sampleRate, duration float64) *noiseSource {
	buf := make([]float64, int(sampleRate*duration))
	for i := range buf {
		buf[i] = rand.Float64()*2 - 1
	}
	return &noiseSource{buf: buf}
}

func (s *noiseSource) sample(i int, _ float64) float64 {
	if i < 0 || i >= len(s.buf) {
		return 0
	}
	return s.buf[i]
}
