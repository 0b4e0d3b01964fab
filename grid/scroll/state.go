// Copyright © 2026 Flexpad contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: grid/scroll/state.go
// Summary: Long-lived scroll state machine for one grid: current per-axis
// offsets, gesture state (thumb drags, touch panning), sub-quantum wheel delta
// accumulation, and viewport change notification with duplicate suppression.

package scroll

import (
	"time"

	"github.com/dave-wathen/flexpad/grid"
	"github.com/dave-wathen/flexpad/grid/extent"
)

// Phase is the gesture the state machine is currently in.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDragVertical
	PhaseDragHorizontal
	PhaseTouchPan
)

// unusedDeltaWindow is how long accumulated sub-quantum wheel delta survives
// between pulses. Checked lazily on the next event, never by a timer.
const unusedDeltaWindow = time.Second

// State owns the scroll position of a grid for the grid's whole lifetime.
// Every mutation happens inside the handling of a single input event; Scales
// are rebuilt by the caller each pass and passed in, never retained.
type State struct {
	x Offset
	y Offset

	granX Granularity
	granY Granularity

	phase       Phase
	grab        float64
	touchOrigin Point

	unused    Point
	lastPulse time.Time

	last   *Viewport
	notify func(Viewport)

	now func() time.Time
}

// NewState builds an idle state at offset zero. The granularities are fixed
// for the life of the state; notify receives every distinct Viewport.
func NewState(granX, granY Granularity, notify func(Viewport)) *State {
	return &State{
		granX:  granX,
		granY:  granY,
		notify: notify,
		now:    time.Now,
	}
}

// Phase returns the current gesture phase.
func (s *State) Phase() Phase {
	return s.phase
}

// GranularityX returns the horizontal snapping policy.
func (s *State) GranularityX() Granularity {
	return s.granX
}

// GranularityY returns the vertical snapping policy.
func (s *State) GranularityY() Granularity {
	return s.granY
}

// Offsets returns the tagged per-axis offsets, absolute/relative as last set.
func (s *State) Offsets() (x, y Offset) {
	return s.x, s.y
}

// SetOffsets restores tagged per-axis offsets, preserving their
// absolute/relative nature.
func (s *State) SetOffsets(x, y Offset) {
	s.x = x
	s.y = y
}

// OffsetX resolves the horizontal offset against a live scale.
func (s *State) OffsetX(xs Scale) float64 {
	return s.x.Resolve(xs)
}

// OffsetY resolves the vertical offset against a live scale.
func (s *State) OffsetY(ys Scale) float64 {
	return s.y.Resolve(ys)
}

// Wheel applies a wheel or trackpad delta on both axes. A positive delta
// scrolls toward the content start, mirroring wheel-up. Deltas too small to
// cross a quantization boundary accumulate until they do, so repeated small
// pulses eventually move a Discrete axis; the accumulator expires after one
// second without pulses. Wheel works in any phase.
func (s *State) Wheel(dx, dy float64, xs, ys Scale) Viewport {
	s.expireUnused()
	s.wheelAxis(&s.x, &s.unused.X, dx, xs)
	s.wheelAxis(&s.y, &s.unused.Y, dy, ys)
	return s.Refresh(xs, ys)
}

func (s *State) wheelAxis(o *Offset, unused *float64, delta float64, sc Scale) {
	if delta == 0 && *unused == 0 {
		return
	}
	cur := o.Resolve(sc)
	next := sc.Quantize(cur - (delta + *unused))
	if approxEqual(next, cur) {
		*unused += delta
	} else {
		*unused = 0
	}
	*o = Absolute(next)
}

func (s *State) expireUnused() {
	now := s.now()
	if !s.lastPulse.IsZero() && now.Sub(s.lastPulse) > unusedDeltaWindow {
		s.unused = Point{}
	}
	s.lastPulse = now
}

// StartDragVertical enters the vertical thumb drag. grab is the pointer's
// offset inside the thumb at press time.
func (s *State) StartDragVertical(grab float64) {
	s.phase = PhaseDragVertical
	s.grab = grab
}

// StartDragHorizontal enters the horizontal thumb drag.
func (s *State) StartDragHorizontal(grab float64) {
	s.phase = PhaseDragHorizontal
	s.grab = grab
}

// Drag moves the active thumb to the pointer coordinate pos along the bar's
// axis, inverse-mapping it through the bar geometry into a relative offset.
// Ignored when no drag is active.
func (s *State) Drag(pos float64, bar BarGeometry, xs, ys Scale) Viewport {
	switch s.phase {
	case PhaseDragVertical:
		s.y = Relative(bar.Percent(pos, s.grab))
	case PhaseDragHorizontal:
		s.x = Relative(bar.Percent(pos, s.grab))
	}
	return s.Refresh(xs, ys)
}

// EndDrag leaves any drag phase.
func (s *State) EndDrag() {
	if s.phase == PhaseDragVertical || s.phase == PhaseDragHorizontal {
		s.phase = PhaseIdle
	}
}

// StartTouch enters touch panning at the given content-area position.
func (s *State) StartTouch(x, y float64) {
	s.phase = PhaseTouchPan
	s.touchOrigin = Point{X: x, Y: y}
}

// TouchMove applies the position delta since the previous touch point exactly
// like a wheel delta, including sub-quantum accumulation.
func (s *State) TouchMove(x, y float64, xs, ys Scale) Viewport {
	if s.phase != PhaseTouchPan {
		return s.Refresh(xs, ys)
	}
	dx := x - s.touchOrigin.X
	dy := y - s.touchOrigin.Y
	s.touchOrigin = Point{X: x, Y: y}
	return s.Wheel(dx, dy, xs, ys)
}

// EndTouch leaves the touch panning phase.
func (s *State) EndTouch() {
	if s.phase == PhaseTouchPan {
		s.phase = PhaseIdle
	}
}

// ScrollTo sets both axes to absolute offsets, clamped to be non-negative.
func (s *State) ScrollTo(x, y float64) {
	s.x = Absolute(x)
	s.y = Absolute(y)
}

// SnapTo sets both axes to relative offsets, clamped to [0,1].
func (s *State) SnapTo(px, py float64) {
	s.x = Relative(px)
	s.y = Relative(py)
}

// EnsureColVisible scrolls horizontally by the minimum amount that makes the
// whole column visible. A column already visible leaves the offset untouched.
func (s *State) EnsureColVisible(col int, xs Scale) {
	s.x = ensureVisible(s.x, col, xs)
}

// EnsureRowVisible scrolls vertically by the minimum amount that makes the
// whole row visible.
func (s *State) EnsureRowVisible(row int, ys Scale) {
	s.y = ensureVisible(s.y, row, ys)
}

// ensureVisible aligns the offset with the element's start boundary when the
// element lies before the window, or with the nearest boundary that brings its
// end inside the far edge when it lies beyond. The whole element becomes
// visible, not merely a clipped sliver.
func ensureVisible(o Offset, index int, sc Scale) Offset {
	if sc.Seq == nil || sc.Seq.Len() == 0 {
		return o
	}
	if index < 0 {
		index = 0
	}
	if index > sc.Seq.Len()-1 {
		index = sc.Seq.Len() - 1
	}
	start, end := sc.Seq.Bounds(index)
	cur := o.Resolve(sc)
	switch {
	case start < cur:
		return Absolute(start)
	case end > cur+sc.Viewport:
		k := sc.Seq.IndexOfSum(end-sc.Viewport, extent.RoundUp)
		next := sc.Seq.SumTo(k)
		if next > start {
			// Element larger than the window: the nearest boundary that fits
			// its end is its own end, which would hide it entirely. Pin the
			// window to its start edge instead.
			return Absolute(start)
		}
		return Absolute(next)
	}
	return o
}

// EnsureCellVisible makes the whole target cell visible on both axes and
// notifies if the viewport changed.
func (s *State) EnsureCellVisible(target grid.RowCol, xs, ys Scale) Viewport {
	s.EnsureColVisible(target.Col, xs)
	s.EnsureRowVisible(target.Row, ys)
	return s.Refresh(xs, ys)
}

// ScrollToCell puts the target cell's start boundaries at the viewport origin
// on both axes and notifies if the viewport changed.
func (s *State) ScrollToCell(target grid.RowCol, xs, ys Scale) Viewport {
	if xs.Seq != nil && xs.Seq.Len() > 0 {
		s.x = Absolute(xs.Seq.SumTo(target.Col))
	}
	if ys.Seq != nil && ys.Seq.Len() > 0 {
		s.y = Absolute(ys.Seq.SumTo(target.Row))
	}
	return s.Refresh(xs, ys)
}

// Refresh recomputes the Viewport under the given scales and delivers it to
// the notification callback when it differs from the last delivered one.
func (s *State) Refresh(xs, ys Scale) Viewport {
	vp := ComputeViewport(xs, ys, s.x.Resolve(xs), s.y.Resolve(ys))
	if s.last == nil || !vp.ApproxEqual(*s.last) {
		kept := vp
		s.last = &kept
		if s.notify != nil {
			s.notify(vp)
		}
	}
	return vp
}
