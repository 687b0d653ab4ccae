// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gnuplot

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aclements/go-gnuplot/internal/pipe"
)

// dataSource is the plot token for inline data.
const dataSource = "'-'"

// endData terminates a block of inline data.
const endData = "e"

// sleep is replaced in tests.
var sleep = time.Sleep

func quote(s string) string {
	return `"` + s + `"`
}

// initCommands returns the commands that configure the graph, in the
// order the engine should receive them.
func (s *Session) initCommands() []string {
	a := &s.axis
	f := s.opts.Format
	var cmds []string

	grid := "set grid"
	if a.gridMinor {
		grid += " xtics ytics mxtics mytics"
	}
	if a.gridLayer != LayerDefault {
		grid += " " + string(a.gridLayer)
	}
	cmds = append(cmds, grid)

	if s.title != "" {
		cmds = append(cmds, "set title "+quote(s.title))
	}
	if a.legend != "" {
		cmds = append(cmds, "set key "+a.legend)
	}
	if a.xlabel != "" {
		cmds = append(cmds, "set xlabel "+quote(a.xlabel))
	}
	if a.origin != nil {
		cmds = append(cmds, "set origin "+f.FormatFloat(a.origin[0])+","+f.FormatFloat(a.origin[1]))
	}
	if a.xTimeFmt != "" {
		cmds = append(cmds,
			"set xdata time",
			"set timefmt "+quote(a.xTimeFmt),
			"set xtics rotate")
		if a.xDisplayFmt != "" {
			cmds = append(cmds, "set format x "+quote(a.xDisplayFmt))
		}
	}
	if a.ylabel != "" {
		cmds = append(cmds, "set ylabel "+quote(a.ylabel))
	}
	if a.yFormat != "" {
		cmds = append(cmds, "set format y "+quote(a.yFormat))
	}

	xrange, xtics := s.autoAxis(X, a.xrange, a.xtics)
	yrange, ytics := s.autoAxis(Y, a.yrange, a.ytics)
	if xrange != nil {
		cmds = append(cmds, "set xrange "+s.formatRange(*xrange))
	}
	if yrange != nil {
		cmds = append(cmds, "set yrange "+s.formatRange(*yrange))
	}
	if xtics > 0 {
		cmds = append(cmds, "set xtics "+f.FormatFloat(xtics))
	}
	if ytics > 0 {
		cmds = append(cmds, "set ytics "+f.FormatFloat(ytics))
	}
	if a.mxtics > 0 {
		cmds = append(cmds, "set mxtics "+strconv.Itoa(a.mxtics))
	}
	if a.mytics > 0 {
		cmds = append(cmds, "set mytics "+strconv.Itoa(a.mytics))
	}

	for _, l := range s.labels {
		cmds = append(cmds, "set label "+quote(l.text)+" at "+f.FormatValue(l.x)+", "+f.FormatValue(l.y))
	}
	return cmds
}

// plotCommand returns the plot directive with one clause per populated
// series, in index order.
func (s *Session) plotCommand() string {
	f := s.opts.Format
	idxs := s.indexes()
	colors := s.paletteColors(len(idxs))
	clauses := make([]string, 0, len(idxs))
	for i, idx := range idxs {
		st := s.styles[idx]
		if st == nil {
			st = new(style)
		}

		var b strings.Builder
		b.WriteString(dataSource)
		b.WriteString(" using 1:2")
		for col := 3; col <= s.series[idx].dim+1; col++ {
			fmt.Fprintf(&b, ":%d", col)
		}
		if st.smooth != "" {
			b.WriteString(" smooth " + st.smooth)
		}
		mode := st.mode
		if mode == "" {
			mode = s.defaultMode
		}
		b.WriteString(" with " + string(mode))
		if st.lineType != 0 {
			b.WriteString(" lt " + strconv.Itoa(st.lineType))
		}
		color := st.color
		if color == "" && colors != nil {
			color = colors[i]
		}
		if color != "" {
			b.WriteString(" lc rgb " + quote(color))
		}
		if st.width != 0 {
			b.WriteString(" lw " + f.FormatFloat(st.width))
		}
		if st.pointType != 0 {
			b.WriteString(" pt " + strconv.Itoa(st.pointType))
		}
		if st.title != "" {
			b.WriteString(" title " + quote(st.title))
		}
		clauses = append(clauses, b.String())
	}
	if len(clauses) == 0 {
		return "plot"
	}
	return "plot " + strings.Join(clauses, ", ")
}

// dataLines returns the inline data for every series in index order,
// each block ending with endData.
func (s *Session) dataLines() []string {
	f := s.opts.Format
	var lines []string
	var b strings.Builder
	for _, idx := range s.indexes() {
		for _, p := range s.series[idx].points {
			b.Reset()
			b.WriteString(f.FormatValue(p.x))
			for _, y := range p.y {
				b.WriteByte(' ')
				b.WriteString(f.FormatFloat(y))
			}
			lines = append(lines, b.String())
		}
		lines = append(lines, endData)
	}
	return lines
}

func (s *Session) plotLines() []string {
	return append([]string{s.plotCommand()}, s.dataLines()...)
}

func (s *Session) rendered() {
	s.plotted = true
	s.state = Rendered
}

// RenderToFile renders the graph to path in format f using the
// Session's canvas size.
//
// gnuplot writes the file asynchronously, so RenderToFile waits
// Options.SettleDelay after closing the output before returning.
func (s *Session) RenderToFile(path string, f Format) error {
	return s.renderFile(path, f, s.canvas)
}

// RenderToFileSize is like RenderToFile, but renders at the given size
// instead of the Session's canvas size.
func (s *Session) RenderToFileSize(path string, f Format, width, height float64, unit Unit) error {
	return s.renderFile(path, f, canvas{width: width, height: height, unit: unit})
}

func (s *Session) renderFile(path string, f Format, c canvas) error {
	s.discardOutput()
	cmds := s.initCommands()
	cmds = append(cmds, s.terminalCommand(f, c), "set output "+quote(path))
	cmds = append(cmds, s.plotLines()...)
	cmds = append(cmds, "unset output")
	if err := s.sendAll(cmds); err != nil {
		return err
	}
	if err := s.flush(); err != nil {
		return err
	}
	s.rendered()
	sleep(s.opts.SettleDelay)
	return nil
}

// RenderToBuffer renders the graph in format f and returns the bytes
// the engine produced. The output is not framed; use DecodeImage or
// inspect the magic bytes to interpret it.
//
// RenderToBuffer blocks for at least Options.Timeout and for as long
// after that as output keeps arriving.
func (s *Session) RenderToBuffer(f Format) ([]byte, error) {
	if s.ch == nil {
		return nil, fmt.Errorf("%w: session closed", ErrChannelBroken)
	}
	s.discardOutput()

	cmds := s.initCommands()
	cmds = append(cmds, s.terminalCommand(f, s.canvas))
	cmds = append(cmds, s.plotLines()...)
	if err := s.sendAll(cmds); err != nil {
		return nil, err
	}
	if err := s.flush(); err != nil {
		return nil, err
	}
	out, err := pipe.Drain(s.ch, s.opts.PollInterval, s.opts.Timeout)
	if err != nil {
		return out, fmt.Errorf("%w: reading output: %v", ErrChannelBroken, err)
	}
	s.rendered()
	return out, nil
}

// discardOutput drops engine output left over from earlier commands,
// such as a replot to an unset output. Every render calls it so that
// output nobody reads cannot pile up in the channel.
func (s *Session) discardOutput() {
	if s.ch == nil {
		return
	}
	buf := make([]byte, pipe.ChunkSize)
	for {
		n, err := s.ch.ReadAvailable(buf)
		if n == 0 || err != nil {
			return
		}
	}
}

// Display plots the graph on the engine's display terminal (see
// Options.DisplayTerminal).
func (s *Session) Display() error {
	s.discardOutput()
	cmds := s.initCommands()
	if s.opts.DisplayTerminal != "" {
		cmds = append(cmds, "set terminal "+s.opts.DisplayTerminal)
	}
	cmds = append(cmds, s.plotLines()...)
	if err := s.sendAll(cmds); err != nil {
		return err
	}
	if err := s.flush(); err != nil {
		return err
	}
	s.rendered()
	return nil
}

// Refresh redraws the last plot with "replot", resending only the
// data. Configuration changes since the last render are not sent, and
// the set of series must not have changed. If nothing has been plotted
// on this engine yet, Refresh is Display.
func (s *Session) Refresh() error {
	if !s.plotted {
		return s.Display()
	}
	s.discardOutput()
	if err := s.sendAll(append([]string{"replot"}, s.dataLines()...)); err != nil {
		return err
	}
	if err := s.flush(); err != nil {
		return err
	}
	s.rendered()
	return nil
}
