// SPDX-License-Identifier: MIT

package chain

import "fmt"

// Side tells where a step's matrix joined the accumulator.
type Side uint8

const (
	// SideSeed marks the first step: the accumulator is the matrix itself.
	SideSeed Side = iota
	// SideRight means acc = acc · M.
	SideRight
	// SideLeft means acc = M · acc.
	SideLeft
)

// String implements fmt.Stringer.
func (s Side) String() string {
	switch s {
	case SideSeed:
		return "seed"
	case SideRight:
		return "right"
	case SideLeft:
		return "left"
	default:
		return fmt.Sprintf("Side(%d)", uint8(s))
	}
}

// Step describes one completed fold step, as reported to a WithTrace hook.
type Step struct {
	Position int  // fold position, 0 for the seed
	Index    int  // 0-based position of the matrix in the sequence
	Side     Side // where the matrix joined the accumulator
	Rows     int  // accumulator rows after the step
	Cols     int  // accumulator cols after the step
}

// String renders the step for diagnostics, e.g. "#2 M0 left -> 2x2".
func (s Step) String() string {
	return fmt.Sprintf("#%d M%d %s -> %dx%d", s.Position, s.Index, s.Side, s.Rows, s.Cols)
}
