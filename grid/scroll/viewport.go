// Copyright © 2026 Flexpad contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: grid/scroll/viewport.go
// Summary: Computes the visible cell range and packages it with the current
// offsets into a Viewport value with change-suppression equality.

package scroll

import (
	"math"

	"github.com/dave-wathen/flexpad/grid"
	"github.com/dave-wathen/flexpad/grid/extent"
)

// Point is a per-axis pair of values (x horizontal, y vertical).
type Point struct {
	X float64
	Y float64
}

// Viewport is the visible window into the grid: the absolute and relative
// offsets on both axes plus the inclusive block of at least partially visible
// cells. It is recomputed every layout pass; the scroll state keeps only the
// last notified value.
type Viewport struct {
	Absolute Point
	Relative Point
	Cells    grid.CellRange
}

const viewportEpsilon = 1e-6

// ComputeViewport resolves the visible cell range for the given offsets under
// the given per-axis scales.
func ComputeViewport(xs, ys Scale, xOff, yOff float64) Viewport {
	startCol, endCol := axisRange(xs, xOff)
	startRow, endRow := axisRange(ys, yOff)

	return Viewport{
		Absolute: Point{X: xOff, Y: yOff},
		Relative: Point{X: relativeOrZero(xs, xOff), Y: relativeOrZero(ys, yOff)},
		Cells: grid.CellRange{
			Start: grid.RowCol{Row: startRow, Col: startCol},
			End:   grid.RowCol{Row: endRow, Col: endCol},
		},
	}
}

// axisRange computes the first and last visible element on one axis. Up
// rounding at the leading edge excludes an element not yet reached; Down at
// the trailing edge includes any element at least partially visible.
func axisRange(sc Scale, offset float64) (start, end int) {
	if sc.Seq == nil || sc.Seq.Len() == 0 {
		return 0, 0
	}
	start = sc.Seq.IndexOfSum(offset, extent.RoundUp)
	end = sc.Seq.IndexOfSum(offset+sc.Viewport, extent.RoundDown)
	if end < start {
		end = start
	}
	return start, end
}

// relativeOrZero reports the relative offset, or 0 when the axis cannot
// scroll, so NaN never leaks into layout geometry.
func relativeOrZero(sc Scale, offset float64) float64 {
	if !sc.CanScroll() {
		return 0
	}
	return sc.Relative(offset)
}

// ApproxEqual compares two viewports field by field with a small tolerance.
// NaN compares equal to NaN so non-scrollable axes never register as changes.
func (v Viewport) ApproxEqual(o Viewport) bool {
	return approxEqual(v.Absolute.X, o.Absolute.X) &&
		approxEqual(v.Absolute.Y, o.Absolute.Y) &&
		approxEqual(v.Relative.X, o.Relative.X) &&
		approxEqual(v.Relative.Y, o.Relative.Y) &&
		v.Cells == o.Cells
}

func approxEqual(a, b float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	return math.Abs(a-b) <= viewportEpsilon
}
