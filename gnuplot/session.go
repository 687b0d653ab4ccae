// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gnuplot drives a gnuplot process from Go.
//
// A Session accumulates a declarative description of a chart (data
// series, per-series styles, axis configuration, and canvas size) and
// translates it into gnuplot commands and inline data when the chart
// is rendered. Rendering may target a file, an in-memory buffer, or the
// engine's interactive display.
//
// A Session owns its engine process. Callers must Close it when done:
//
//	s, err := gnuplot.New(nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer s.Close()
//	s.SetXLabel("time").SetYLabel("ns/op")
//	for i, v := range results {
//		s.Push(0, i, v)
//	}
//	err = s.RenderToFile("out.png", gnuplot.PNG)
//
// A Session is not safe for concurrent use.
package gnuplot

import (
	"fmt"
	"log"
	"time"

	"github.com/aclements/go-gg/palette"
	"github.com/aclements/go-gnuplot/internal/pipe"
)

// A Channel carries lines to the engine and output back from it.
// *pipe.Channel is the standard implementation.
type Channel interface {
	// SendLine queues one command or data line.
	SendLine(text string) error
	// Flush delivers queued lines to the engine.
	Flush() error
	// ReadAvailable reads engine output without blocking. See
	// pipe.Source.
	ReadAvailable(p []byte) (int, error)
	// Close terminates the engine. It must be safe to call more
	// than once.
	Close() error
}

// Options configures a Session. The zero Options is usable.
type Options struct {
	// Command is the engine command line, split with shell quoting
	// rules. Default "gnuplot".
	Command string

	// PollInterval and Timeout control how RenderToBuffer waits for
	// output. Timeout is a minimum wait: reading continues past it
	// while output keeps arriving. Defaults 5ms and 100ms.
	PollInterval time.Duration
	Timeout      time.Duration

	// SettleDelay is how long RenderToFile waits after asking the
	// engine to close the output file. Default 100ms.
	SettleDelay time.Duration

	// Format formats values sent to the engine. Default
	// DecimalFormat{}.
	Format Formatter

	// Logger, if non-nil, receives every line sent to the engine.
	Logger *log.Logger

	// DisplayTerminal is the terminal type Display selects, such as
	// "qt" or "x11". If empty, Display leaves the engine's current
	// terminal alone.
	DisplayTerminal string

	// Open, if non-nil, is used instead of starting Command.
	Open func() (Channel, error)
}

func (o *Options) withDefaults() Options {
	var r Options
	if o != nil {
		r = *o
	}
	if r.Command == "" {
		r.Command = "gnuplot"
	}
	if r.PollInterval == 0 {
		r.PollInterval = 5 * time.Millisecond
	}
	if r.Timeout == 0 {
		r.Timeout = 100 * time.Millisecond
	}
	if r.SettleDelay == 0 {
		r.SettleDelay = 100 * time.Millisecond
	}
	if r.Format == nil {
		r.Format = DecimalFormat{}
	}
	return r
}

// State is the rendering state of a Session.
type State int

const (
	// Fresh is a new or reset Session.
	Fresh State = iota
	// Configured is a Session with changes that have not been
	// rendered.
	Configured
	// Rendered is a Session whose current state has been rendered.
	Rendered
)

func (s State) String() string {
	switch s {
	case Fresh:
		return "fresh"
	case Configured:
		return "configured"
	case Rendered:
		return "rendered"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Session is a chart and the engine process that renders it.
type Session struct {
	opts Options
	ch   Channel

	state State
	// plotted is set once a plot command has been sent to the
	// current engine, which makes "replot" meaningful.
	plotted bool

	series map[int]*series
	styles map[int]*style
	axis   axisConfig
	labels []label
	title  string

	defaultMode Mode
	palette     palette.Continuous
	canvas      canvas
}

// New starts an engine and returns a Session connected to it. If the
// engine cannot be started, the error wraps ErrEngineUnavailable.
func New(opts *Options) (*Session, error) {
	s := &Session{
		opts:        opts.withDefaults(),
		defaultMode: Lines,
		canvas:      canvas{width: 1200, height: 800},
	}
	s.Reset()
	if err := s.open(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) open() error {
	var ch Channel
	var err error
	if s.opts.Open != nil {
		ch, err = s.opts.Open()
	} else {
		var args []string
		args, err = pipe.SplitCommand(s.opts.Command)
		if err == nil {
			ch, err = pipe.Open(args)
		}
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEngineUnavailable, err)
	}
	if ch == nil {
		return fmt.Errorf("%w: no channel", ErrEngineUnavailable)
	}
	s.ch = ch
	return nil
}

// Close terminates the engine. Close is idempotent; after it, render
// operations fail with ErrChannelBroken.
func (s *Session) Close() error {
	if s.ch == nil {
		return nil
	}
	ch := s.ch
	s.ch = nil
	s.plotted = false
	return ch.Close()
}

// Flush terminates the engine, starts a new one, and resets the
// Session. It is the way to recover from ErrChannelBroken.
func (s *Session) Flush() error {
	if err := s.Close(); err != nil && s.opts.Logger != nil {
		s.opts.Logger.Printf("closing engine: %v", err)
	}
	s.Reset()
	return s.open()
}

// Reset clears all series, styles, labels, and axis configuration.
// Canvas size, the default mode, and the palette are kept. Reset does
// not touch the engine, so a following Refresh still replots.
func (s *Session) Reset() *Session {
	s.series = make(map[int]*series)
	s.styles = make(map[int]*style)
	s.axis = axisConfig{}
	s.labels = nil
	s.title = ""
	s.state = Fresh
	return s
}

// State returns the Session's rendering state.
func (s *Session) State() State {
	return s.state
}

// touch records a local configuration change.
func (s *Session) touch() *Session {
	s.state = Configured
	return s
}

// Diagnostics returns what the engine has written to its error stream,
// if the channel captures it. gnuplot reports command errors there.
func (s *Session) Diagnostics() string {
	if d, ok := s.ch.(interface{ Stderr() []byte }); ok {
		return string(d.Stderr())
	}
	return ""
}

// SendCommand sends a raw command line to the engine and flushes it.
// No quoting or validation is performed.
func (s *Session) SendCommand(cmd string) error {
	if err := s.send(cmd); err != nil {
		return err
	}
	return s.flush()
}

func (s *Session) send(line string) error {
	if s.ch == nil {
		return fmt.Errorf("%w: session closed", ErrChannelBroken)
	}
	if s.opts.Logger != nil {
		s.opts.Logger.Printf("gnuplot> %s", line)
	}
	if err := s.ch.SendLine(line); err != nil {
		return fmt.Errorf("%w: %v", ErrChannelBroken, err)
	}
	return nil
}

func (s *Session) sendAll(lines []string) error {
	for _, line := range lines {
		if err := s.send(line); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) flush() error {
	if s.ch == nil {
		return fmt.Errorf("%w: session closed", ErrChannelBroken)
	}
	if err := s.ch.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ErrChannelBroken, err)
	}
	return nil
}
