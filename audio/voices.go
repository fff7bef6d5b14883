package audio

// Graph builders for the twelve kit instruments. All of them follow the same
// scheme: one branch per sound layer, each a source through optional filter
// sections into the shared decay envelope shape.

const (
	kickBase  = 52.0
	kickRatio = 2.6  // pitch starts this far above the base
	kickDrop  = 0.07 // seconds for the pitch to fall back onto the base
	kickDecay = 0.45
	kickPeak  = 0.9
)

func kickGraph(e *Engine, name string, when, velocity float64) *graph {
	sr := e.cfg.SampleRate
	freq := newAutomation(when, kickBase*kickRatio)
	freq.expTo(when+kickDrop, kickBase)
	gain := decayEnv(when, e.peakFor(name, velocity, kickPeak), kickDecay)
	return newGraph(newBranch(sr, when, newSine(sr, freq), gain))
}

const (
	tomRatio = 1.5
	tomDrop  = 0.05
	tomDecay = 0.25
	tomPeak  = 0.8
)

// tomGraph builds the tom family; low, mid and high share the builder and
// differ only in base frequency.
func tomGraph(base float64) graphBuilder {
	return func(e *Engine, name string, when, velocity float64) *graph {
		sr := e.cfg.SampleRate
		freq := newAutomation(when, base*tomRatio)
		freq.expTo(when+tomDrop, base)
		gain := decayEnv(when, e.peakFor(name, velocity, tomPeak), tomDecay)
		return newGraph(newBranch(sr, when, newSine(sr, freq), gain))
	}
}

const (
	snareBandFreq   = 4000.0
	snareHighFreq   = 800.0
	snareNoisePeak  = 0.5
	snareNoiseDecay = 0.12
	snareBodyFreqA  = 185.0
	snareBodyPeakA  = 0.45
	snareBodyDecayA = 0.18
	snareBodyFreqB  = 330.0
	snareBodyPeakB  = 0.3
	snareBodyDecayB = 0.11
)

// snareGraph layers a filtered noise burst over two sine body partials, each
// with its own decay.
func snareGraph(e *Engine, name string, when, velocity float64) *graph {
	sr := e.cfg.SampleRate
	noise := decayEnv(when, e.peakFor(name, velocity, snareNoisePeak), snareNoiseDecay)
	bodyA := decayEnv(when, e.peakFor(name, velocity, snareBodyPeakA), snareBodyDecayA)
	bodyB := decayEnv(when, e.peakFor(name, velocity, snareBodyPeakB), snareBodyDecayB)
	return newGraph(
		newBranch(sr, when, newNoise(sr, attackTime+snareNoiseDecay), noise,
			bandpass(sr, snareBandFreq, 0.7), highpass(sr, snareHighFreq, 0.7)),
		newBranch(sr, when, newSine(sr, newAutomation(when, snareBodyFreqA)), bodyA),
		newBranch(sr, when, newSine(sr, newAutomation(when, snareBodyFreqB)), bodyB),
	)
}

const (
	hatBandFreq = 9000.0
	hatHighFreq = 7000.0
	hatPeak     = 0.5
)

// hatGraph builds both hi-hats; open and closed differ only in decay.
func hatGraph(decay float64) graphBuilder {
	return func(e *Engine, name string, when, velocity float64) *graph {
		sr := e.cfg.SampleRate
		gain := decayEnv(when, e.peakFor(name, velocity, hatPeak), decay)
		return newGraph(newBranch(sr, when, newNoise(sr, attackTime+decay), gain,
			bandpass(sr, hatBandFreq, 1), highpass(sr, hatHighFreq, 0.7)))
	}
}

const (
	clapBandFreq   = 1100.0
	clapHighFreq   = 600.0
	clapSpacing    = 0.01
	clapBursts     = 4
	clapBurstPeak  = 0.15
	clapBurstDecay = 0.02
	clapTailPeak   = 0.3
	clapTailDecay  = 0.15
)

// clapGraph layers four noise bursts 10 ms apart: three short slaps and a
// final burst that rings out.
func clapGraph(e *Engine, name string, when, velocity float64) *graph {
	sr := e.cfg.SampleRate
	branches := make([]*branch, clapBursts)
	for i := range branches {
		peak, decay := clapBurstPeak, clapBurstDecay
		if i == clapBursts-1 {
			peak, decay = clapTailPeak, clapTailDecay
		}
		start := when + float64(i)*clapSpacing
		gain := decayEnv(start, e.peakFor(name, velocity, peak), decay)
		branches[i] = newBranch(sr, start, newNoise(sr, attackTime+decay), gain,
			bandpass(sr, clapBandFreq, 1), highpass(sr, clapHighFreq, 0.7))
	}
	return newGraph(branches...)
}

const (
	rimNoiseFreq  = 3400.0
	rimHighFreq   = 2000.0
	rimNoisePeak  = 0.5
	rimNoiseDecay = 0.03
	rimBodyFreq   = 1700.0
	rimBodyPeak   = 0.35
	rimBodyDecay  = 0.025
)

func rimshotGraph(e *Engine, name string, when, velocity float64) *graph {
	sr := e.cfg.SampleRate
	noise := decayEnv(when, e.peakFor(name, velocity, rimNoisePeak), rimNoiseDecay)
	body := decayEnv(when, e.peakFor(name, velocity, rimBodyPeak), rimBodyDecay)
	return newGraph(
		newBranch(sr, when, newNoise(sr, attackTime+rimNoiseDecay), noise,
			bandpass(sr, rimNoiseFreq, 1), highpass(sr, rimHighFreq, 0.7)),
		newBranch(sr, when, newSine(sr, newAutomation(when, rimBodyFreq)), body),
	)
}

const (
	cowbellFreqA = 540.0
	cowbellFreqB = 800.0
	cowbellPeak  = 0.45
	cowbellDecay = 0.25
)

// cowbellGraph beats two inharmonic partials against each other, both through
// a band around the upper one.
func cowbellGraph(e *Engine, name string, when, velocity float64) *graph {
	sr := e.cfg.SampleRate
	peak := e.peakFor(name, velocity, cowbellPeak)
	return newGraph(
		newBranch(sr, when, newSine(sr, newAutomation(when, cowbellFreqA)),
			decayEnv(when, peak, cowbellDecay), bandpass(sr, cowbellFreqB, 1)),
		newBranch(sr, when, newSine(sr, newAutomation(when, cowbellFreqB)),
			decayEnv(when, peak, cowbellDecay), bandpass(sr, cowbellFreqB, 1)),
	)
}

const (
	claveFreq  = 2500.0
	claveQ     = 10.0
	clavePeak  = 0.6
	claveDecay = 0.02
)

func claveGraph(e *Engine, name string, when, velocity float64) *graph {
	sr := e.cfg.SampleRate
	gain := decayEnv(when, e.peakFor(name, velocity, clavePeak), claveDecay)
	return newGraph(newBranch(sr, when, newSine(sr, newAutomation(when, claveFreq)), gain,
		bandpass(sr, claveFreq, claveQ)))
}

const (
	maracasHighFreq = 5500.0
	maracasPeak     = 0.4
	maracasDecay    = 0.05
)

func maracasGraph(e *Engine, name string, when, velocity float64) *graph {
	sr := e.cfg.SampleRate
	gain := decayEnv(when, e.peakFor(name, velocity, maracasPeak), maracasDecay)
	return newGraph(newBranch(sr, when, newNoise(sr, attackTime+maracasDecay), gain,
		highpass(sr, maracasHighFreq, 0.7)))
}
