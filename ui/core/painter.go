// Copyright © 2026 Flexpad contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: ui/core/painter.go
// Summary: Clipped cell painter widgets draw through. Composes into a
// framebuffer that the host blits to the terminal.

package core

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Cell is one character cell of the framebuffer.
type Cell struct {
	Ch    rune
	Style tcell.Style
}

// Painter writes cells into a buffer, discarding anything outside its clip
// rectangle.
type Painter struct {
	buf  [][]Cell
	clip Rect
}

// NewPainter wraps a framebuffer with a clip region.
func NewPainter(buf [][]Cell, clip Rect) *Painter {
	return &Painter{buf: buf, clip: clip}
}

// NewBuffer allocates a blank framebuffer of the given size.
func NewBuffer(w, h int) [][]Cell {
	buf := make([][]Cell, h)
	for y := range buf {
		row := make([]Cell, w)
		for x := range row {
			row[x] = Cell{Ch: ' ', Style: tcell.StyleDefault}
		}
		buf[y] = row
	}
	return buf
}

// WithClip returns a painter sharing the same buffer with a tighter clip.
func (p *Painter) WithClip(r Rect) *Painter {
	return &Painter{buf: p.buf, clip: p.clip.Intersect(r)}
}

// SetCell writes one cell if it falls inside the clip.
func (p *Painter) SetCell(x, y int, ch rune, style tcell.Style) {
	if !p.clip.Contains(x, y) {
		return
	}
	if y < 0 || y >= len(p.buf) || x < 0 || x >= len(p.buf[y]) {
		return
	}
	p.buf[y][x] = Cell{Ch: ch, Style: style}
}

// Fill paints every cell of the rectangle with one character.
func (p *Painter) Fill(r Rect, ch rune, style tcell.Style) {
	area := p.clip.Intersect(r)
	for y := area.Y; y < area.Y+area.H; y++ {
		for x := area.X; x < area.X+area.W; x++ {
			p.SetCell(x, y, ch, style)
		}
	}
}

// DrawText draws a string starting at (x, y), truncated to maxW columns.
// Wide runes occupy two columns; a wide rune that would straddle the limit is
// dropped. Returns the number of columns written.
func (p *Painter) DrawText(x, y int, text string, maxW int, style tcell.Style) int {
	col := 0
	for _, ch := range text {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if col+w > maxW {
			break
		}
		p.SetCell(x+col, y, ch, style)
		if w == 2 {
			// Shadow cell for the wide rune's second column.
			p.SetCell(x+col+1, y, ' ', style)
		}
		col += w
	}
	return col
}
