package study

import (
	"context"
	"time"
)

// DefaultDelay mirrors the pause a remote model call would take.
const DefaultDelay = 2 * time.Second

// Generator is the asynchronous boundary in front of Generate.
type Generator interface {
	Generate(ctx context.Context, text string, mode Mode) (Content, error)
}

// GeneratorFunc adapts a function into a Generator.
type GeneratorFunc func(ctx context.Context, text string, mode Mode) (Content, error)

// Generate calls f.
func (f GeneratorFunc) Generate(ctx context.Context, text string, mode Mode) (Content, error) {
	return f(ctx, text, mode)
}

// Immediate resolves without any delay.
var Immediate Generator = GeneratorFunc(func(_ context.Context, text string, mode Mode) (Content, error) {
	return Generate(text, mode)
})

// Simulator pretends to be an external model: it waits Delay and then
// derives content locally.
type Simulator struct {
	Delay time.Duration

	sleep func(time.Duration)
}

// NewSimulator returns a Simulator with the given delay. Negative delays are
// treated as zero.
func NewSimulator(delay time.Duration) *Simulator {
	if delay < 0 {
		delay = 0
	}
	return &Simulator{Delay: delay, sleep: time.Sleep}
}

// Generate waits for the configured delay and then builds the content. The
// wait always runs to completion; ctx is not consulted.
func (s *Simulator) Generate(_ context.Context, text string, mode Mode) (Content, error) {
	if s.Delay > 0 {
		sleep := s.sleep
		if sleep == nil {
			sleep = time.Sleep
		}
		sleep(s.Delay)
	}
	return Generate(text, mode)
}
