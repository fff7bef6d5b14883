package audio

import "github.com/gordonklaus/portaudio"

// Ticker gets a callback at the start of every audio buffer, before any graph
// renders. The sequencer uses it to schedule triggers sample-accurately.
type Ticker interface {
	Tick(numSamples int)
}

// sink is the output the engine renders into. The realtime implementation
// drives the process callback from a portaudio stream; tests and the offline
// renderer pump the engine by hand instead.
type sink interface {
	start(sampleRate float64, bufferSize int, process func([][]float32)) error
	stop() error
}

// paSink plays through the default output device.
type paSink struct {
	stream *portaudio.Stream
}

func (s *paSink) start(sampleRate float64, bufferSize int, process func([][]float32)) error {
	if err := portaudio.Initialize(); err != nil {
		return err
	}
	stream, err := portaudio.OpenDefaultStream(0, 2, sampleRate, bufferSize, process)
	if err != nil {
		portaudio.Terminate()
		return err
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return err
	}
	s.stream = stream
	return nil
}

func (s *paSink) stop() error {
	err := s.stream.Stop()
	if cerr := s.stream.Close(); err == nil {
		err = cerr
	}
	portaudio.Terminate()
	return err
}

// nullSink renders to nowhere; the offline renderer calls the engine's
// process method directly.
type nullSink struct{}

func (nullSink) start(float64, int, func([][]float32)) error { return nil }
func (nullSink) stop() error                                 { return nil }
