// Copyright © 2026 Flexpad contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: ui/gridview/input.go
// Summary: Mouse and keyboard handling for GridView plus the programmatic
// scroll command surface.

package gridview

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dave-wathen/flexpad/grid"
	"github.com/dave-wathen/flexpad/grid/extent"
	"github.com/dave-wathen/flexpad/grid/scroll"
)

// HandleMouse routes wheel pulses, thumb drags and content-area panning into
// the scroll state. Press/move/release are inferred from the button mask and
// the current gesture phase.
func (g *GridView) HandleMouse(ev *tcell.EventMouse) bool {
	x, y := ev.Position()
	btn := ev.Buttons()

	if wx, wy := wheelDelta(btn, g.wheelStep); wx != 0 || wy != 0 {
		xs, ys, _, _, _ := g.geometry()
		g.state.Wheel(wx, wy, xs, ys)
		g.invalidate()
		return true
	}

	switch {
	case btn&tcell.Button1 != 0 && g.state.Phase() == scroll.PhaseIdle:
		return g.mousePress(x, y)
	case btn&tcell.Button1 != 0:
		return g.mouseMove(x, y)
	default:
		return g.mouseRelease()
	}
}

// wheelDelta converts tcell wheel buttons to engine deltas. Wheel-up scrolls
// toward the content start, which the engine expresses as a positive delta.
func wheelDelta(btn tcell.ButtonMask, step float64) (dx, dy float64) {
	if btn&tcell.WheelUp != 0 {
		dy += step
	}
	if btn&tcell.WheelDown != 0 {
		dy -= step
	}
	if btn&tcell.WheelLeft != 0 {
		dx += step
	}
	if btn&tcell.WheelRight != 0 {
		dx -= step
	}
	return dx, dy
}

func (g *GridView) mousePress(x, y int) bool {
	if !g.HitTest(x, y) {
		return false
	}
	_, _, body, barV, barH := g.geometry()
	fx, fy := float64(x), float64(y)

	switch {
	case g.showBars && barV.Thumb.Contains(fx, fy):
		g.state.StartDragVertical(fy - barV.Thumb.Y)
	case g.showBars && barH.Thumb.Contains(fx, fy):
		g.state.StartDragHorizontal(fx - barH.Thumb.X)
	case body.Contains(x, y):
		g.state.StartTouch(fx, fy)
		if rc, ok := g.cellAt(x, y); ok {
			g.cursor = rc
			g.invalidate()
		}
	default:
		return false
	}
	return true
}

func (g *GridView) mouseMove(x, y int) bool {
	xs, ys, _, barV, barH := g.geometry()
	switch g.state.Phase() {
	case scroll.PhaseDragVertical:
		g.state.Drag(float64(y), barV, xs, ys)
	case scroll.PhaseDragHorizontal:
		g.state.Drag(float64(x), barH, xs, ys)
	case scroll.PhaseTouchPan:
		g.state.TouchMove(float64(x), float64(y), xs, ys)
	default:
		return false
	}
	g.invalidate()
	return true
}

func (g *GridView) mouseRelease() bool {
	switch g.state.Phase() {
	case scroll.PhaseDragVertical, scroll.PhaseDragHorizontal:
		g.state.EndDrag()
		return true
	case scroll.PhaseTouchPan:
		g.state.EndTouch()
		return true
	}
	return false
}

// cellAt maps a screen position inside the body to the cell under it.
func (g *GridView) cellAt(x, y int) (grid.RowCol, bool) {
	xs, ys, body, _, _ := g.geometry()
	if !body.Contains(x, y) {
		return grid.RowCol{}, false
	}
	vp := scroll.ComputeViewport(xs, ys, g.state.OffsetX(xs), g.state.OffsetY(ys))
	col := g.cols.IndexOfSum(vp.Absolute.X+float64(x-body.X)+0.5, extent.RoundDown)
	row := g.rows.IndexOfSum(vp.Absolute.Y+float64(y-body.Y)+0.5, extent.RoundDown)
	return grid.RowCol{Row: row, Col: col}, true
}

// HandleKey moves the cursor and keeps it visible. Page and Home/End keys
// scroll without moving the cursor off its cell unless they would leave it
// outside the grid.
func (g *GridView) HandleKey(ev *tcell.EventKey) bool {
	xs, ys, body, _, _ := g.geometry()

	switch ev.Key() {
	case tcell.KeyUp:
		g.moveCursor(-1, 0, xs, ys)
	case tcell.KeyDown:
		g.moveCursor(1, 0, xs, ys)
	case tcell.KeyLeft:
		g.moveCursor(0, -1, xs, ys)
	case tcell.KeyRight:
		g.moveCursor(0, 1, xs, ys)
	case tcell.KeyPgUp:
		g.state.Wheel(0, float64(body.H), xs, ys)
	case tcell.KeyPgDn:
		g.state.Wheel(0, -float64(body.H), xs, ys)
	case tcell.KeyHome:
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			g.cursor = grid.RowCol{}
			g.state.ScrollToCell(g.cursor, xs, ys)
		} else {
			g.moveCursor(0, -g.cols.Len(), xs, ys)
		}
	case tcell.KeyEnd:
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			g.cursor = grid.RowCol{Row: g.rows.Len() - 1, Col: g.cols.Len() - 1}
			g.state.EnsureCellVisible(g.cursor, xs, ys)
		} else {
			g.moveCursor(0, g.cols.Len(), xs, ys)
		}
	default:
		return false
	}
	g.invalidate()
	return true
}

func (g *GridView) moveCursor(dr, dc int, xs, ys scroll.Scale) {
	g.cursor.Row = clampInt(g.cursor.Row+dr, 0, g.rows.Len()-1)
	g.cursor.Col = clampInt(g.cursor.Col+dc, 0, g.cols.Len()-1)
	g.state.EnsureCellVisible(g.cursor, xs, ys)
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ScrollToCell aligns the cell's start boundaries with the viewport origin.
// Part of the command surface the registry routes to.
func (g *GridView) ScrollToCell(rc grid.RowCol) {
	xs, ys, _, _, _ := g.geometry()
	g.cursor = grid.RowCol{
		Row: clampInt(rc.Row, 0, g.rows.Len()-1),
		Col: clampInt(rc.Col, 0, g.cols.Len()-1),
	}
	g.state.ScrollToCell(g.cursor, xs, ys)
	g.invalidate()
}

// EnsureCellVisible scrolls the minimum amount that brings the whole cell
// into view.
func (g *GridView) EnsureCellVisible(rc grid.RowCol) {
	xs, ys, _, _, _ := g.geometry()
	g.cursor = grid.RowCol{
		Row: clampInt(rc.Row, 0, g.rows.Len()-1),
		Col: clampInt(rc.Col, 0, g.cols.Len()-1),
	}
	g.state.EnsureCellVisible(g.cursor, xs, ys)
	g.invalidate()
}

// ScrollTo jumps both axes to absolute content offsets.
func (g *GridView) ScrollTo(x, y float64) {
	xs, ys, _, _, _ := g.geometry()
	g.state.ScrollTo(x, y)
	g.state.Refresh(xs, ys)
	g.invalidate()
}

// SnapTo jumps both axes to relative positions in [0,1]; the position is kept
// proportional across later content or viewport resizes.
func (g *GridView) SnapTo(px, py float64) {
	xs, ys, _, _, _ := g.geometry()
	g.state.SnapTo(px, py)
	g.state.Refresh(xs, ys)
	g.invalidate()
}
