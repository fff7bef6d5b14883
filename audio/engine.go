package audio

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"
	"sync/atomic"
)

const (
	defaultSampleRate = 44100
	defaultBufferSize = 512

	// queueSize bounds how many triggers can pile up between two render
	// callbacks before Trigger starts failing with ErrScheduleFull.
	queueSize = 1024
)

var (
	ErrInitFailed     = errors.New("audio initialization failed")
	ErrNotInitialized = errors.New("engine not initialized")
	ErrUnknownVoice   = errors.New("unknown instrument")
	ErrScheduleFull   = errors.New("trigger schedule full")
)

type Config struct {
	SampleRate float64
	BufferSize int
}

const propLevel = "level"

// Engine owns the kit: twelve voices, the clock, the mix bus and the output
// stream. Level properties (master and per instrument, in dB) are registered
// at construction and survive Initialize/Dispose cycles.
type Engine struct {
	*Props
	cfg Config

	mu      sync.Mutex // guards lifecycle transitions
	running uint32
	out     sink

	clock   *clock
	queue   *graphQueue
	tickers []Ticker

	// render-side state, touched only by the callback
	bus    []float64
	active []*graph

	voices atomic.Value // map[string]Voice
	levels map[string]*atomic.Value
	master *atomic.Value
}

func New(cfg Config) *Engine {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = defaultSampleRate
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = defaultBufferSize
	}
	props := NewProps()
	e := &Engine{
		Props:  props,
		cfg:    cfg,
		clock:  newClock(cfg.SampleRate),
		queue:  newGraphQueue(queueSize),
		bus:    make([]float64, cfg.BufferSize),
		levels: make(map[string]*atomic.Value, len(kitNames)),
		master: props.MustRegister(propLevel, setLevel, 0.0),
	}
	for _, name := range kitNames {
		e.levels[name] = props.MustRegister(propLevel+"."+name, setLevel, 0.0)
	}
	e.voices.Store(map[string]Voice{})
	return e
}

// Initialize opens the default output device, builds the kit and starts
// rendering. Calling it on a running engine is a no-op. On failure the engine
// stays uninitialized and the call may be retried.
func (e *Engine) Initialize() error {
	return e.start(&paSink{})
}

func (e *Engine) start(out sink) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if atomic.LoadUint32(&e.running) == 1 {
		return nil
	}
	if err := out.start(e.cfg.SampleRate, e.cfg.BufferSize, e.process); err != nil {
		return fmt.Errorf("%w: %v", ErrInitFailed, err)
	}
	e.out = out
	e.voices.Store(buildVoices(e))
	atomic.StoreUint32(&e.running, 1)
	return nil
}

// Dispose stops the stream and tears down the kit. It is a no-op on an engine
// that isn't running. The engine can be initialized again afterwards; the
// clock keeps its position and level properties keep their values.
func (e *Engine) Dispose() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if atomic.LoadUint32(&e.running) == 0 {
		return nil
	}
	atomic.StoreUint32(&e.running, 0)
	err := e.out.stop()
	e.out = nil
	for _, v := range e.voices.Load().(map[string]Voice) {
		v.Dispose()
	}
	e.voices.Store(map[string]Voice{})
	e.queue.drain(func(*graph) {})
	e.active = e.active[:0]
	return err
}

// Trigger schedules an instrument hit for right now.
func (e *Engine) Trigger(name string, velocity float64) error {
	return e.TriggerAt(name, e.Now(), velocity)
}

// TriggerAt schedules an instrument hit at an absolute time in seconds on the
// engine clock. A time already in the past plays as soon as possible, with
// its envelopes still anchored at the requested time. TriggerAt never blocks
// on rendering; when triggers pile up faster than the render callback drains
// them it fails with ErrScheduleFull.
func (e *Engine) TriggerAt(name string, when, velocity float64) error {
	if !inKit(name) {
		return fmt.Errorf("%w: %s", ErrUnknownVoice, name)
	}
	v, ok := e.voices.Load().(map[string]Voice)[name]
	if !ok {
		return ErrNotInitialized
	}
	return v.Trigger(when, velocity)
}

// Voice returns the named instrument. It reports false when the engine isn't
// running or the name is not part of the kit.
func (e *Engine) Voice(name string) (Voice, bool) {
	if atomic.LoadUint32(&e.running) == 0 {
		return nil, false
	}
	v, ok := e.voices.Load().(map[string]Voice)[name]
	return v, ok
}

// Instruments returns the kit's instrument names, sorted.
func (e *Engine) Instruments() []string {
	names := make([]string, len(kitNames))
	copy(names, kitNames)
	sort.Strings(names)
	return names
}

// Now returns the engine clock in seconds: samples rendered so far divided by
// the sample rate.
func (e *Engine) Now() float64 {
	return e.clock.now()
}

func (e *Engine) Running() bool {
	return atomic.LoadUint32(&e.running) == 1
}

func (e *Engine) SampleRate() float64 {
	return e.cfg.SampleRate
}

// AddTicker registers t to be called at the start of every render callback.
// Tickers must be registered before rendering starts; on a live stream that
// means before Initialize.
func (e *Engine) AddTicker(t Ticker) {
	e.tickers = append(e.tickers, t)
}

func (e *Engine) schedule(g *graph) error {
	if !e.queue.push(g) {
		return ErrScheduleFull
	}
	return nil
}

// process renders one buffer: run the tickers, adopt freshly scheduled
// graphs, mix every live graph into the bus, reap the ones whose end has
// passed, then write the bus through the master level into both output
// channels and advance the clock.
func (e *Engine) process(out [][]float32) {
	n := len(out[0])
	if len(e.bus) < n {
		e.bus = make([]float64, n)
	}
	bus := e.bus[:n]
	for i := range bus {
		bus[i] = 0
	}

	for _, t := range e.tickers {
		t.Tick(n)
	}

	e.queue.drain(func(g *graph) {
		e.active = append(e.active, g)
	})

	pos := e.clock.pos()
	bufEnd := pos + uint64(n)
	live := e.active[:0]
	for _, g := range e.active {
		g.render(bus, pos)
		if g.end > bufEnd {
			live = append(live, g)
		}
	}
	for i := len(live); i < len(e.active); i++ {
		e.active[i] = nil
	}
	e.active = live

	db := e.master.Load().(float64)
	gain := math.Pow(10, db/20.0)
	for i := 0; i < n; i++ {
		s := float32(gain * bus[i])
		out[0][i] = s
		out[1][i] = s
	}
	e.clock.advance(n)
}
