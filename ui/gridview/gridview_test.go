// Copyright © 2026 Flexpad contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: ui/gridview/gridview_test.go
// Summary: Widget-level tests: rendering into an off-screen buffer, mouse
// gestures, keyboard navigation, and the programmatic command surface.

package gridview

import (
	"fmt"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dave-wathen/flexpad/config"
	"github.com/dave-wathen/flexpad/grid"
	"github.com/dave-wathen/flexpad/grid/extent"
	"github.com/dave-wathen/flexpad/grid/scroll"
	"github.com/dave-wathen/flexpad/ui/core"
)

type fakeModel struct{}

func (fakeModel) CellText(rc grid.RowCol) string {
	return fmt.Sprintf("r%dc%d", rc.Row, rc.Col)
}

// newTestGrid builds a 24x12 widget over 5 columns of width 10 and 20 rows
// of height 1. With the header row, gutter (3 wide for "20") and scrollbar
// gutters the body is 20x10, so both axes are scrollable.
func newTestGrid() *GridView {
	return newTestGridRows(20)
}

func newTestGridRows(nrows int) *GridView {
	cols := extent.New()
	cols.PushN(5, 10)
	rows := extent.New()
	rows.PushN(nrows, 1)
	g := New(fakeModel{}, cols, rows, config.Scroll{
		WheelStep:      3,
		GranularityX:   "continuous",
		GranularityY:   "discrete",
		ShowScrollbars: true,
		MinThumb:       1,
	})
	g.SetPosition(0, 0)
	g.Resize(24, 12)
	return g
}

func TestColumnName(t *testing.T) {
	cases := []struct {
		col  int
		want string
	}{
		{0, "A"}, {1, "B"}, {25, "Z"}, {26, "AA"}, {27, "AB"}, {701, "ZZ"}, {702, "AAA"},
	}
	for _, c := range cases {
		if got := ColumnName(c.col); got != c.want {
			t.Errorf("ColumnName(%d) = %q, want %q", c.col, got, c.want)
		}
	}
}

func TestDrawRendersHeadersCellsAndBars(t *testing.T) {
	g := newTestGrid()
	buf := draw(g)

	if buf[0][4].Ch != 'A' {
		t.Errorf("column header: got %q at (4,0), want 'A'", buf[0][4].Ch)
	}
	if buf[1][0].Ch != '1' {
		t.Errorf("row header: got %q at (0,1), want '1'", buf[1][0].Ch)
	}
	if buf[1][3].Ch != 'r' {
		t.Errorf("cell (0,0): got %q at (3,1), want 'r'", buf[1][3].Ch)
	}

	// Vertical bar: viewport 10 of content 20 puts a 5-cell thumb at the top
	// of the 10-cell track.
	if buf[1][23].Ch != '█' {
		t.Errorf("vertical thumb: got %q at (23,1)", buf[1][23].Ch)
	}
	if buf[10][23].Ch != '│' {
		t.Errorf("vertical track: got %q at (23,10)", buf[10][23].Ch)
	}

	// Horizontal bar: viewport 20 of content 50 gives an 8-cell thumb flush
	// left on the 20-cell track.
	if buf[11][3].Ch != '█' {
		t.Errorf("horizontal thumb: got %q at (3,11)", buf[11][3].Ch)
	}
	if buf[11][22].Ch != '─' {
		t.Errorf("horizontal track: got %q at (22,11)", buf[11][22].Ch)
	}
}

func draw(g *GridView) [][]core.Cell {
	buf := core.NewBuffer(24, 12)
	p := core.NewPainter(buf, core.Rect{X: 0, Y: 0, W: 24, H: 12})
	g.Draw(p)
	return buf
}

func TestWheelScrollsVertically(t *testing.T) {
	g := newTestGrid()
	g.HandleMouse(tcell.NewEventMouse(10, 5, tcell.WheelDown, 0))
	if got := g.Viewport().Absolute.Y; got != 3 {
		t.Errorf("after one wheel-down tick, y offset = %v, want 3", got)
	}
	g.HandleMouse(tcell.NewEventMouse(10, 5, tcell.WheelUp, 0))
	if got := g.Viewport().Absolute.Y; got != 0 {
		t.Errorf("after wheel-up back, y offset = %v, want 0", got)
	}
}

func TestThumbDrag(t *testing.T) {
	g := newTestGrid()

	// Press inside the vertical thumb (rows 1..5 of the bar at x=23).
	if !g.HandleMouse(tcell.NewEventMouse(23, 2, tcell.Button1, 0)) {
		t.Fatal("press on thumb not consumed")
	}

	// Pointer at y=4, grab 1, track top 1, travel 5: 40% of max offset 10.
	g.HandleMouse(tcell.NewEventMouse(23, 4, tcell.Button1, 0))
	if got := g.Viewport().Absolute.Y; got != 4 {
		t.Errorf("mid-drag y offset = %v, want 4", got)
	}

	// Way past the track end clamps to the bottom.
	g.HandleMouse(tcell.NewEventMouse(23, 100, tcell.Button1, 0))
	if got := g.Viewport().Absolute.Y; got != 10 {
		t.Errorf("overshoot drag y offset = %v, want 10", got)
	}

	g.HandleMouse(tcell.NewEventMouse(23, 100, tcell.ButtonNone, 0))
	if g.state.Phase() != scroll.PhaseIdle {
		t.Errorf("phase after release = %v, want idle", g.state.Phase())
	}
}

func TestTouchPan(t *testing.T) {
	g := newTestGrid()

	g.HandleMouse(tcell.NewEventMouse(10, 5, tcell.Button1, 0))
	if g.state.Phase() != scroll.PhaseTouchPan {
		t.Fatalf("phase after content press = %v, want touch pan", g.state.Phase())
	}
	if got := (grid.RowCol{Row: 4, Col: 0}); g.Cursor() != got {
		t.Errorf("cursor after press = %+v, want %+v", g.Cursor(), got)
	}

	// Dragging the content up two cells scrolls down two rows.
	g.HandleMouse(tcell.NewEventMouse(10, 3, tcell.Button1, 0))
	if got := g.Viewport().Absolute.Y; got != 2 {
		t.Errorf("after pan, y offset = %v, want 2", got)
	}

	g.HandleMouse(tcell.NewEventMouse(10, 3, tcell.ButtonNone, 0))
	if g.state.Phase() != scroll.PhaseIdle {
		t.Errorf("phase after release = %v, want idle", g.state.Phase())
	}
}

func TestKeyDownKeepsCursorVisible(t *testing.T) {
	g := newTestGrid()
	for i := 0; i < 12; i++ {
		g.HandleKey(tcell.NewEventKey(tcell.KeyDown, 0, 0))
	}
	if got := (grid.RowCol{Row: 12, Col: 0}); g.Cursor() != got {
		t.Fatalf("cursor = %+v, want %+v", g.Cursor(), got)
	}
	// Row 12 spans [12,13); the 10-row window must have scrolled to 3.
	if got := g.Viewport().Absolute.Y; got != 3 {
		t.Errorf("y offset = %v, want 3", got)
	}
}

func TestPageDown(t *testing.T) {
	g := newTestGrid()
	g.HandleKey(tcell.NewEventKey(tcell.KeyPgDn, 0, 0))
	if got := g.Viewport().Absolute.Y; got != 10 {
		t.Errorf("y offset after page down = %v, want 10", got)
	}
	g.HandleKey(tcell.NewEventKey(tcell.KeyPgUp, 0, 0))
	if got := g.Viewport().Absolute.Y; got != 0 {
		t.Errorf("y offset after page up = %v, want 0", got)
	}
}

func TestScrollToCellCommand(t *testing.T) {
	g := newTestGrid()
	g.ScrollToCell(grid.RowCol{Row: 5, Col: 2})
	vp := g.Viewport()
	if vp.Absolute.X != 20 || vp.Absolute.Y != 5 {
		t.Errorf("offsets = (%v,%v), want (20,5)", vp.Absolute.X, vp.Absolute.Y)
	}
	if got := (grid.RowCol{Row: 5, Col: 2}); g.Cursor() != got {
		t.Errorf("cursor = %+v, want %+v", g.Cursor(), got)
	}
}

func TestPositionsRestoredAcrossInstances(t *testing.T) {
	store := scroll.NewPositions()
	key := scroll.PositionKey{Document: "book.fpd", View: "sheet1"}

	g := newTestGrid()
	g.UsePositions(store, key)
	g.ScrollTo(10, 6)

	g2 := newTestGrid()
	g2.UsePositions(store, key)
	if vp := g2.Viewport(); vp.Absolute.X != 10 || vp.Absolute.Y != 6 {
		t.Errorf("restored offsets = (%v,%v), want (10,6)", vp.Absolute.X, vp.Absolute.Y)
	}
}

// A position snapped to a fraction stays a fraction in the store, so it keeps
// meaning "the bottom" even when a later instance has more rows.
func TestPositionsKeepRelativeTagging(t *testing.T) {
	store := scroll.NewPositions()
	key := scroll.PositionKey{Document: "book.fpd", View: "sheet1"}

	g := newTestGrid()
	g.UsePositions(store, key)
	g.SnapTo(0, 1)

	_, y, ok := store.Load(key)
	if !ok {
		t.Fatal("no stored position after SnapTo")
	}
	if !y.IsRelative() {
		t.Fatal("stored y offset lost its relative tagging")
	}

	// Twice the rows: the restored fraction resolves against the new extent.
	g2 := newTestGridRows(40)
	g2.UsePositions(store, key)
	if got := g2.Viewport().Absolute.Y; got != 30 {
		t.Errorf("restored y offset = %v, want 30 (bottom of 40 rows)", got)
	}
}

func TestViewportCallbackSuppressesDuplicates(t *testing.T) {
	g := newTestGrid()
	var count int
	g.OnViewport(func(scroll.Viewport) { count++ })

	draw(g)
	draw(g)
	if count != 1 {
		t.Errorf("callbacks after two identical draws = %d, want 1", count)
	}

	g.HandleMouse(tcell.NewEventMouse(10, 5, tcell.WheelDown, 0))
	if count != 2 {
		t.Errorf("callbacks after a scroll = %d, want 2", count)
	}
}
