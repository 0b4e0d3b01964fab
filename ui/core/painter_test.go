// Copyright © 2026 Flexpad contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package core

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestPainterClips(t *testing.T) {
	buf := NewBuffer(10, 4)
	p := NewPainter(buf, Rect{X: 2, Y: 1, W: 4, H: 2})

	p.SetCell(2, 1, 'A', tcell.StyleDefault)
	p.SetCell(5, 2, 'B', tcell.StyleDefault)
	p.SetCell(1, 1, 'X', tcell.StyleDefault) // left of clip
	p.SetCell(6, 1, 'X', tcell.StyleDefault) // right of clip
	p.SetCell(2, 3, 'X', tcell.StyleDefault) // below clip

	if buf[1][2].Ch != 'A' || buf[2][5].Ch != 'B' {
		t.Error("cells inside the clip were not written")
	}
	for _, c := range []Cell{buf[1][1], buf[1][6], buf[3][2]} {
		if c.Ch == 'X' {
			t.Error("cell outside the clip was written")
		}
	}
}

func TestPainterFill(t *testing.T) {
	buf := NewBuffer(6, 3)
	p := NewPainter(buf, Rect{X: 0, Y: 0, W: 6, H: 3})
	p.Fill(Rect{X: 1, Y: 1, W: 3, H: 1}, '.', tcell.StyleDefault)

	for x := 1; x <= 3; x++ {
		if buf[1][x].Ch != '.' {
			t.Errorf("cell (%d,1) = %q, want '.'", x, buf[1][x].Ch)
		}
	}
	if buf[1][0].Ch != ' ' || buf[1][4].Ch != ' ' {
		t.Error("Fill leaked outside its rectangle")
	}
}

func TestPainterWithClipNarrows(t *testing.T) {
	buf := NewBuffer(8, 3)
	p := NewPainter(buf, Rect{X: 0, Y: 0, W: 8, H: 3})
	inner := p.WithClip(Rect{X: 2, Y: 0, W: 2, H: 3})

	inner.SetCell(5, 0, 'X', tcell.StyleDefault)
	if buf[0][5].Ch == 'X' {
		t.Error("WithClip did not narrow the clip")
	}
	inner.SetCell(3, 0, 'Y', tcell.StyleDefault)
	if buf[0][3].Ch != 'Y' {
		t.Error("WithClip rejects cells inside the narrowed clip")
	}
}

func TestDrawTextTruncates(t *testing.T) {
	buf := NewBuffer(10, 1)
	p := NewPainter(buf, Rect{X: 0, Y: 0, W: 10, H: 1})

	n := p.DrawText(0, 0, "Quarterly", 5, tcell.StyleDefault)
	if n != 5 {
		t.Errorf("DrawText wrote %d columns, want 5", n)
	}
	if buf[0][4].Ch != 't' || buf[0][5].Ch != ' ' {
		t.Errorf("truncation wrong: got %q then %q", buf[0][4].Ch, buf[0][5].Ch)
	}
}

func TestDrawTextWideRunes(t *testing.T) {
	buf := NewBuffer(10, 1)
	p := NewPainter(buf, Rect{X: 0, Y: 0, W: 10, H: 1})

	// Each CJK rune is two columns; the third would straddle the 5-column
	// limit and must be dropped.
	n := p.DrawText(0, 0, "日本語", 5, tcell.StyleDefault)
	if n != 4 {
		t.Errorf("DrawText wrote %d columns, want 4", n)
	}
	if buf[0][0].Ch != '日' || buf[0][2].Ch != '本' {
		t.Error("wide runes not placed at their column starts")
	}
}

func TestRectIntersect(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 5, H: 5}
	b := Rect{X: 3, Y: 2, W: 5, H: 5}
	got := a.Intersect(b)
	want := Rect{X: 3, Y: 2, W: 2, H: 3}
	if got != want {
		t.Errorf("Intersect = %+v, want %+v", got, want)
	}

	if !a.Intersect(Rect{X: 9, Y: 9, W: 2, H: 2}).Empty() {
		t.Error("disjoint rects have a non-empty intersection")
	}
}
