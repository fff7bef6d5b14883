package audio

// Render runs an engine without an audio device and returns the mono mix for
// the requested number of seconds. The schedule callback runs once on the
// started engine, before any rendering, and typically queues TriggerAt calls;
// tickers added there fire exactly as they would live.
func Render(cfg Config, seconds float64, schedule func(*Engine) error) ([]float64, error) {
	e := New(cfg)
	if err := e.start(nullSink{}); err != nil {
		return nil, err
	}
	defer e.Dispose()
	if schedule != nil {
		if err := schedule(e); err != nil {
			return nil, err
		}
	}

	total := int(seconds * e.cfg.SampleRate)
	left := make([]float32, e.cfg.BufferSize)
	right := make([]float32, e.cfg.BufferSize)
	mix := make([]float64, 0, total)
	for len(mix) < total {
		n := e.cfg.BufferSize
		if rem := total - len(mix); rem < n {
			n = rem
		}
		out := [][]float32{left[:n], right[:n]}
		e.process(out)
		for _, s := range out[0] {
			mix = append(mix, float64(s))
		}
	}
	return mix, nil
}
