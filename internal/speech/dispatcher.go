// Package speech turns utterance labels into audio without blocking the
// caller.
package speech

import (
	"context"
	"io"
	"log"
	"strings"
	"sync"
)

const queueSize = 32

// Dispatcher plays utterances one at a time on a background goroutine.
// Dispatch never blocks; when the backlog is full the utterance is dropped
// and logged.
type Dispatcher struct {
	engine Engine
	logger *log.Logger
	queue  chan string

	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// NewDispatcher starts the playback goroutine. Call Close to stop it.
func NewDispatcher(engine Engine, logger *log.Logger) *Dispatcher {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	ctx, cancel := context.WithCancel(context.Background())
	d := &Dispatcher{
		engine: engine,
		logger: logger,
		queue:  make(chan string, queueSize),
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go d.run(ctx)
	return d
}

// Dispatch queues text for playback.
func (d *Dispatcher) Dispatch(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	select {
	case <-d.done:
		d.logger.Printf("speech: dispatcher closed, dropped %q", text)
	case d.queue <- text:
	default:
		d.logger.Printf("speech: backlog full, dropped %q", text)
	}
}

// Close stops playback and waits for the goroutine to exit. Pending
// utterances are discarded.
func (d *Dispatcher) Close() error {
	d.once.Do(func() {
		d.cancel()
		<-d.done
	})
	return nil
}

func (d *Dispatcher) run(ctx context.Context) {
	defer close(d.done)
	for {
		select {
		case <-ctx.Done():
			return
		case text := <-d.queue:
			if err := d.engine.Speak(ctx, text); err != nil && ctx.Err() == nil {
				d.logger.Printf("speech: %v", err)
			}
		}
	}
}

// Silent is a Dispatcher stand-in that only logs.
type Silent struct {
	Logger *log.Logger
}

func (s Silent) Dispatch(text string) {
	if s.Logger != nil {
		s.Logger.Printf("speech disabled: %q", text)
	}
}
