package main

import (
	"fmt"
	"os"

	wav "github.com/youpy/go-wav"

	"github.com/mks/bonzo/audio"
)

// boundedPlayer drops triggers scheduled at or past until, so a looping
// sequencer can drive a fixed-length offline render without spilling hits
// into the ring-out tail.
type boundedPlayer struct {
	*audio.Engine
	until float64
}

func (p boundedPlayer) TriggerAt(name string, when, velocity float64) error {
	if when >= p.until {
		return nil
	}
	return p.Engine.TriggerAt(name, when, velocity)
}

// bounce renders bars repetitions of the current patterns offline and
// writes them to a 16 bit stereo WAV file.
func bounce(env *env, path string, bars int) error {
	v, err := env.getProp("seq", "patterns")
	if err != nil {
		return err
	}
	patterns := v.(map[string]audio.Pattern)
	if len(patterns) == 0 {
		return fmt.Errorf("nothing to bounce: no patterns set")
	}
	v, err = env.getProp("seq", "bpm")
	if err != nil {
		return err
	}
	bpm := v.(float64)

	stepDur := 60 / (bpm * audio.StepsPerBeat)
	loop := float64(bars*env.patternSteps()) * stepDur
	const tail = 0.5 // ring-out after the last step

	cfg := audio.Config{SampleRate: env.engine.SampleRate()}
	mix, err := audio.Render(cfg, loop+tail, func(e *audio.Engine) error {
		levels := []string{"level"}
		for _, name := range env.engine.Instruments() {
			levels = append(levels, "level."+name)
		}
		for _, prop := range levels {
			v, err := env.getProp("kit", prop)
			if err != nil {
				return err
			}
			if err := e.Set(prop, v.(float64)); err != nil {
				return err
			}
		}

		props := audio.NewProps()
		seq := audio.NewSequencer(props, boundedPlayer{e, loop - stepDur/2}, e.SampleRate())
		if err := seq.Set("bpm", bpm); err != nil {
			return err
		}
		if err := seq.Set("patterns", patterns); err != nil {
			return err
		}
		e.AddTicker(seq)
		seq.Start()
		return nil
	})
	if err != nil {
		return err
	}
	return writeWAV(path, mix, env.engine.SampleRate())
}

func writeWAV(path string, mix []float64, sampleRate float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := wav.NewWriter(f, uint32(len(mix)), 2, uint32(sampleRate), 16)
	samples := make([]wav.Sample, len(mix))
	const scale = 1<<15 - 1
	for i, v := range mix {
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		n := int(scale * v)
		samples[i] = wav.Sample{Values: [2]int{n, n}}
	}
	return w.WriteSamples(samples)
}
