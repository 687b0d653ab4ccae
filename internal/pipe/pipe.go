// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pipe manages a child process connected through its
// standard streams.
//
// A Channel is write-oriented: commands are buffered onto the child's
// stdin and output is pumped off stdout by a reader goroutine so it can
// be polled without blocking. Stderr is retained separately for
// diagnostics.
package pipe

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/kballard/go-shellquote"
)

// maxStderr bounds how much diagnostic output is retained.
const maxStderr = 64 << 10

// QuitCommand is sent to the child before its input is closed.
const QuitCommand = "quit"

// ErrClosed is returned by operations on a closed Channel.
var ErrClosed = errors.New("pipe: channel closed")

// Channel is a running child process and its three streams.
type Channel struct {
	cmd   *exec.Cmd
	stdin io.WriteCloser
	w     *bufio.Writer

	// waitChan is closed when the process has exited.
	waitChan chan struct{}

	// readDone is closed when the stdout reader has stopped.
	readDone chan struct{}

	mu      sync.Mutex // Protects fields below
	pending []byte
	readErr error
	stderr  []byte
	closed  bool
}

// SplitCommand splits a shell-style command line into arguments.
func SplitCommand(cmdline string) ([]string, error) {
	args, err := shellquote.Split(cmdline)
	if err != nil {
		return nil, fmt.Errorf("parsing command %q: %w", cmdline, err)
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("empty command")
	}
	return args, nil
}

// Open starts args[0] with arguments args[1:] and connects pipes to
// its stdin, stdout, and stderr.
func Open(args []string) (*Channel, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("empty command")
	}
	cmd := exec.Command(args[0], args[1:]...)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, err
	}
	// Create the output pipes ourselves so the readers own the read
	// ends and exec does not close them out from under us on Wait.
	outR, outW, err := os.Pipe()
	if err != nil {
		stdin.Close()
		return nil, err
	}
	errR, errW, err := os.Pipe()
	if err != nil {
		stdin.Close()
		outR.Close()
		outW.Close()
		return nil, err
	}
	cmd.Stdout = outW
	cmd.Stderr = errW

	err = cmd.Start()
	// The child has its own copies of the write ends now.
	outW.Close()
	errW.Close()
	if err != nil {
		stdin.Close()
		outR.Close()
		errR.Close()
		return nil, err
	}

	c := &Channel{
		cmd:      cmd,
		stdin:    stdin,
		w:        bufio.NewWriter(stdin),
		waitChan: make(chan struct{}),
		readDone: make(chan struct{}),
	}
	go c.reader(outR)
	go c.errReader(errR)
	go c.waiter()
	return c, nil
}

func (c *Channel) reader(f *os.File) {
	buf := make([]byte, ChunkSize)
	for {
		n, err := f.Read(buf)
		c.mu.Lock()
		if n > 0 {
			c.pending = append(c.pending, buf[:n]...)
		}
		if err != nil {
			c.readErr = err
		}
		c.mu.Unlock()
		if err != nil {
			if err != io.EOF && !errors.Is(err, os.ErrClosed) {
				log.Printf("reading from engine: %v", err)
			}
			break
		}
	}
	f.Close()
	close(c.readDone)
}

func (c *Channel) errReader(f *os.File) {
	buf := make([]byte, 512)
	for {
		n, err := f.Read(buf)
		if n > 0 {
			c.mu.Lock()
			c.stderr = append(c.stderr, buf[:n]...)
			if over := len(c.stderr) - maxStderr; over > 0 {
				c.stderr = append(c.stderr[:0], c.stderr[over:]...)
			}
			c.mu.Unlock()
		}
		if err != nil {
			break
		}
	}
	f.Close()
}

func (c *Channel) waiter() {
	err := c.cmd.Wait()
	switch err.(type) {
	case nil, *exec.ExitError:
		// Exit status is picked up below.
	default:
		log.Printf("waiting for engine %d: %v", c.cmd.Process.Pid, err)
	}

	// The pipe is asynchronous with exit, so give the reader a moment
	// to pick up any trailing output.
	select {
	case <-c.readDone:
	case <-time.After(1 * time.Second):
	}

	close(c.waitChan)
}

// SendLine buffers text followed by a newline for the child's stdin.
// The line is not guaranteed to reach the child until Flush.
func (c *Channel) SendLine(text string) error {
	c.mu.Lock()
	closed := c.closed
	c.mu.Unlock()
	if closed {
		return ErrClosed
	}
	if _, err := c.w.WriteString(text); err != nil {
		return err
	}
	return c.w.WriteByte('\n')
}

// Flush writes any buffered lines to the child.
func (c *Channel) Flush() error {
	c.mu.Lock()
	closed := c.closed
	c.mu.Unlock()
	if closed {
		return ErrClosed
	}
	return c.w.Flush()
}

// ReadAvailable copies up to len(p) bytes of output the child has
// produced so far into p. It never blocks. Once the child's stdout has
// been closed and all output consumed, it returns 0, io.EOF.
func (c *Channel) ReadAvailable(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.pending) == 0 {
		if c.readErr != nil {
			return 0, io.EOF
		}
		return 0, nil
	}
	n := copy(p, c.pending)
	c.pending = c.pending[n:]
	if len(c.pending) == 0 {
		c.pending = nil
	}
	return n, nil
}

// Stderr returns a copy of the most recent diagnostic output.
func (c *Channel) Stderr() []byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]byte(nil), c.stderr...)
}

// Done returns a channel that is closed when the child exits.
func (c *Channel) Done() <-chan struct{} {
	return c.waitChan
}

// Close asks the child to quit, closes its input, and waits for it to
// exit, killing it if it does not exit promptly. Close is idempotent.
func (c *Channel) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.mu.Unlock()

	// The child may already be gone, in which case these fail with a
	// broken pipe. That's fine; we only care that it exits.
	c.SendLine(QuitCommand)
	c.w.Flush()

	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
	c.stdin.Close()

	select {
	case <-c.waitChan:
		return nil
	case <-time.After(1 * time.Second):
	}
	c.kill()
	return nil
}

// kill stops the child, first gracefully then aggressively.
func (c *Channel) kill() {
	for _, sig := range []os.Signal{os.Interrupt, os.Kill} {
		if err := c.cmd.Process.Signal(sig); err != nil {
			// Already exited (or interrupt unsupported on
			// this platform).
			if sig == os.Kill {
				return
			}
			continue
		}
		select {
		case <-c.waitChan:
			return
		case <-time.After(2 * time.Second):
		}
	}
}
