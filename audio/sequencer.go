package audio

import (
	"fmt"
	"log"
	"sync/atomic"
)

// Pattern is one cycle of steps for a single instrument: a velocity per step,
// 0 meaning rest. Patterns of different lengths run against each other since
// every pattern wraps on its own length.
type Pattern []float64

// Player is the trigger target a Sequencer drives; *Engine satisfies it.
type Player interface {
	Now() float64
	TriggerAt(name string, when, velocity float64) error
}

// StepsPerBeat fixes the grid resolution to 16th notes.
const StepsPerBeat = 4

const (
	propBPM      = "bpm"
	propPatterns = "patterns"
	propPlaying  = "playing"
)

// Sequencer walks step patterns against the engine clock. It runs as a Ticker
// inside the render callback and schedules hits through the Player, so step
// boundaries land on exact samples regardless of the buffer size. Tempo,
// patterns and transport state are properties and safe to change from any
// goroutine.
type Sequencer struct {
	*Props
	player     Player
	sampleRate float64

	bpm      *atomic.Value
	patterns *atomic.Value
	playing  *atomic.Value

	pos      uint64  // samples seen so far
	nextStep float64 // absolute sample position of the next step boundary
	step     int
}

func NewSequencer(props *Props, player Player, sampleRate float64) *Sequencer {
	return &Sequencer{
		Props:      props,
		player:     player,
		sampleRate: sampleRate,
		bpm:        props.MustRegister(propBPM, setFloat64(20, 300), 120.0),
		patterns:   props.MustRegister(propPatterns, setPatterns, map[string]Pattern{}),
		playing:    props.MustRegister(propPlaying, setBool, false),
	}
}

// Start begins (or resumes) stepping; the first step lands on the first
// sample of the next render callback.
func (s *Sequencer) Start() { s.playing.Store(true) }

// Stop pauses stepping and keeps the step position.
func (s *Sequencer) Stop() { s.playing.Store(false) }

func (s *Sequencer) Playing() bool { return s.playing.Load().(bool) }

// Tick scans the coming buffer for step boundaries and schedules every
// pattern hit that lands on one.
func (s *Sequencer) Tick(numSamples int) {
	end := s.pos + uint64(numSamples)
	if !s.playing.Load().(bool) {
		// hold the next boundary at the playhead so Start fires right away
		s.pos = end
		s.nextStep = float64(end)
		return
	}
	bpm := s.bpm.Load().(float64)
	patterns := s.patterns.Load().(map[string]Pattern)
	stepSamples := s.sampleRate * 60 / (bpm * StepsPerBeat)
	now := s.player.Now()

	for s.nextStep < float64(end) {
		when := now + (s.nextStep-float64(s.pos))/s.sampleRate
		for name, p := range patterns {
			if len(p) == 0 {
				continue
			}
			v := p[s.step%len(p)]
			if v <= 0 {
				continue
			}
			if err := s.player.TriggerAt(name, when, v); err != nil {
				log.Printf("sequencer: %s: %v", name, err)
			}
		}
		s.step++
		s.nextStep += stepSamples
	}
	s.pos = end
}

func setPatterns(v interface{}, dest *atomic.Value) error {
	if m, ok := v.(map[string]Pattern); ok {
		dest.Store(m)
		return nil
	}
	return fmt.Errorf("value is not a pattern map: %v", v)
}
