// SPDX-License-Identifier: MIT
// Package: pargraph/benchmark
//
// report.go — line-oriented text reports.
//
// Layout conventions:
//   • Section headers are framed by RuleWidth '=' characters.
//   • Matrix cells are followed by one space; Inf renders as "∞".
//   • Every line, including the last, ends in '\n'.

package benchmark

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/pargraph/core"
)

// RuleWidth is the width of the '=' rules around section headers.
const RuleWidth = 50

// InfSymbol replaces core.Inf when matrices are rendered.
const InfSymbol = "∞"

// Report accumulates report lines. The zero value is ready to use.
// Report implements io.Writer so that the Write* helpers can target it.
type Report struct {
	b strings.Builder
}

// Write appends p verbatim.
func (r *Report) Write(p []byte) (int, error) { return r.b.Write(p) }

// Title writes a report heading line.
func (r *Report) Title(s string) *Report { return r.Line(s) }

// Line writes s followed by a newline.
func (r *Report) Line(s string) *Report {
	r.b.WriteString(s)
	r.b.WriteByte('\n')
	return r
}

// Linef formats a line with fmt.Sprintf semantics.
func (r *Report) Linef(format string, args ...any) *Report {
	fmt.Fprintf(&r.b, format, args...)
	r.b.WriteByte('\n')
	return r
}

// Blank writes an empty line.
func (r *Report) Blank() *Report {
	r.b.WriteByte('\n')
	return r
}

// Rule writes RuleWidth '=' characters.
func (r *Report) Rule() *Report { return r.Line(strings.Repeat("=", RuleWidth)) }

// Section writes name framed by rules, with a trailing colon.
func (r *Report) Section(name string) *Report {
	return r.Rule().Line(name + ":").Rule()
}

// String returns the rendered report.
func (r *Report) String() string { return r.b.String() }

// Len returns the number of bytes written so far.
func (r *Report) Len() int { return r.b.Len() }

// WriteMatrix writes one line per row of m. Invalid matrices write nothing.
func WriteMatrix(w io.Writer, m *core.Matrix) error {
	if !m.Valid() {
		return nil
	}
	n := m.Order()
	var line []byte
	for i := 0; i < n; i++ {
		line = line[:0]
		for _, v := range m.Row(i) {
			if core.IsFinite(v) {
				line = strconv.AppendInt(line, int64(v), 10)
			} else {
				line = append(line, InfSymbol...)
			}
			line = append(line, ' ')
		}
		line = append(line, '\n')
		if _, err := w.Write(line); err != nil {
			return err
		}
	}
	return nil
}

// WriteComponents writes "Component i: members (size: k)" for each component,
// numbering from 1.
func WriteComponents(w io.Writer, comps [][]int) error {
	for i, c := range comps {
		members := make([]string, len(c))
		for j, v := range c {
			members[j] = strconv.Itoa(v)
		}
		if _, err := fmt.Fprintf(w, "Component %d: %s (size: %d)\n",
			i+1, strings.Join(members, " "), len(c)); err != nil {
			return err
		}
	}
	return nil
}
