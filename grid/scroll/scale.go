// Copyright © 2026 Flexpad contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: grid/scroll/scale.go
// Summary: Binds an extent sequence, a viewport extent and a granularity policy
// to quantize scroll offsets and convert between absolute and relative values.

package scroll

import "github.com/dave-wathen/flexpad/grid/extent"

// Granularity governs where a scroll offset may land on an axis.
type Granularity int

const (
	// Continuous allows the offset to land at any unit.
	Continuous Granularity = iota
	// Discrete snaps the offset to element boundaries.
	Discrete
)

func (g Granularity) String() string {
	if g == Discrete {
		return "discrete"
	}
	return "continuous"
}

// Scale resolves offsets for one axis. It is rebuilt from current sizes every
// layout pass and never stored; only the Seq it points at is long-lived.
type Scale struct {
	Viewport    float64
	Content     float64
	Seq         *extent.Seq
	Granularity Granularity
}

// NewScale builds a Scale for an axis whose content extent is the sum of seq.
func NewScale(seq *extent.Seq, viewport float64, g Granularity) Scale {
	return Scale{Viewport: viewport, Content: seq.Sum(), Seq: seq, Granularity: g}
}

// MaxOffset returns the largest reachable offset on this axis.
func (sc Scale) MaxOffset() float64 {
	if m := sc.Content - sc.Viewport; m > 0 {
		return m
	}
	return 0
}

// CanScroll reports whether the content overflows the viewport.
func (sc Scale) CanScroll() bool {
	return sc.Content > sc.Viewport
}

// Quantize clamps value to the scrollable range and, under Discrete
// granularity, snaps it to the nearest element boundary: values at or before
// the enclosing element's midpoint land on its start, values past the midpoint
// on its end. Quantize is idempotent.
func (sc Scale) Quantize(value float64) float64 {
	max := sc.MaxOffset()
	if value < 0 {
		value = 0
	}
	if value > max {
		value = max
	}
	if sc.Granularity != Discrete || sc.Seq == nil || sc.Seq.Len() == 0 {
		return value
	}

	i := sc.Seq.IndexOfSum(value, extent.RoundDown)
	start, end := sc.Seq.Bounds(i)
	mid := start + (end-start)/2
	if value <= mid {
		value = start
	} else {
		value = end
	}
	// Snapping to an element end can overshoot the scrollable range.
	if value > max {
		value = max
	}
	return value
}

// Percentage resolves a relative offset in [0,1] to an absolute quantized
// offset.
func (sc Scale) Percentage(p float64) float64 {
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	return sc.Quantize(sc.MaxOffset() * p)
}

// Relative converts an absolute offset to a fraction of the scrollable range.
// The caller must check CanScroll first; on a non-scrollable axis the range is
// zero and there is no meaningful fraction.
func (sc Scale) Relative(abs float64) float64 {
	return abs / (sc.Content - sc.Viewport)
}
