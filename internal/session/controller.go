package session

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/csheth/studyai/internal/study"
)

var errNoContent = errors.New("generator returned no content")

// Controller drives a State synchronously against a Generator. It is meant
// for a single goroutine; the processing flag is its only guard.
type Controller struct {
	state     State
	generator study.Generator
	logger    *log.Logger
}

// Option customises a Controller.
type Option func(*Controller)

// WithLogger routes failure diagnostics to logger.
func WithLogger(logger *log.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMode sets the initially selected mode.
func WithMode(mode study.Mode) Option {
	return func(c *Controller) {
		c.state = c.state.SetMode(mode)
	}
}

// NewController returns a controller in the idle state. A nil generator
// falls back to study.Immediate.
func NewController(generator study.Generator, opts ...Option) *Controller {
	if generator == nil {
		generator = study.Immediate
	}
	c := &Controller{
		state:     New(study.ModeSummary),
		generator: generator,
		logger:    log.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Generator returns the generator Process calls.
func (c *Controller) Generator() study.Generator {
	return c.generator
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	return c.state
}

func (c *Controller) SetText(text string)     { c.state = c.state.SetText(text) }
func (c *Controller) SetMode(mode study.Mode) { c.state = c.state.SetMode(mode) }
func (c *Controller) NextFlashcard()          { c.state = c.state.NextFlashcard() }
func (c *Controller) PrevFlashcard()          { c.state = c.state.PrevFlashcard() }
func (c *Controller) ToggleAnswer()           { c.state = c.state.ToggleAnswer() }

// LoadFromFile replaces the text when the file is plain text.
func (c *Controller) LoadFromFile(name string, data []byte) bool {
	next, ok := c.state.LoadFromFile(name, data)
	if !ok {
		c.logger.Printf("[load] ignored %s: not a plain-text file", name)
		return false
	}
	c.state = next
	return true
}

// Process runs one generation to completion. It returns false without
// calling the generator when the input is blank or a generation is already
// running. Generator failures are logged and leave the content empty.
func (c *Controller) Process(ctx context.Context) bool {
	next, req, ok := c.state.BeginProcess()
	if !ok {
		return false
	}
	c.state = next
	content, err := callGenerator(ctx, c.generator, req)
	if err == nil && content == nil {
		err = errNoContent
	}
	if err != nil {
		c.logger.Printf("[process] %s generation failed: %v", req.Mode, err)
	}
	c.state = c.state.CompleteProcess(content, err)
	return true
}

// callGenerator converts a panic inside the generator into an error.
func callGenerator(ctx context.Context, generator study.Generator, req Request) (content study.Content, err error) {
	defer func() {
		if r := recover(); r != nil {
			content = nil
			err = fmt.Errorf("generator panic: %v", r)
		}
	}()
	return generator.Generate(ctx, req.Text, req.Mode)
}
