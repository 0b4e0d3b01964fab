// Copyright © 2026 Flexpad contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: ui/gridview/gridview.go
// Summary: Scrollable spreadsheet-style grid widget. Owns the per-axis extent
// sequences and the scroll state, rebuilds scales every pass, and renders only
// the visible cell block plus headers and scrollbars.

package gridview

import (
	"math"
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/dave-wathen/flexpad/config"
	"github.com/dave-wathen/flexpad/grid"
	"github.com/dave-wathen/flexpad/grid/extent"
	"github.com/dave-wathen/flexpad/grid/scroll"
	"github.com/dave-wathen/flexpad/ui/core"
)

// Scrollbar glyphs, one cell wide.
const (
	vTrackGlyph = '│'
	hTrackGlyph = '─'
	thumbGlyph  = '█'
)

// Model supplies cell content. Grid dimensions come from the extent
// sequences, not the model.
type Model interface {
	CellText(rc grid.RowCol) string
}

// GridView is a scrollable grid of cells with row/column headers.
type GridView struct {
	core.BaseWidget
	Style       tcell.Style
	HeaderStyle tcell.Style
	CursorStyle tcell.Style
	TrackStyle  tcell.Style
	ThumbStyle  tcell.Style

	model Model
	cols  *extent.Seq
	rows  *extent.Seq
	state *scroll.State

	cursor    grid.RowCol
	wheelStep float64
	showBars  bool
	minThumb  float64

	positions *scroll.Positions
	posKey    scroll.PositionKey
	hasPosKey bool

	inv        func(core.Rect)
	onViewport func(scroll.Viewport)
	lastVP     scroll.Viewport
}

// New builds a grid over the given column widths and row heights (both in
// cells). The sequences are owned by the widget from here on and shared
// read-only with the header renderers.
func New(model Model, cols, rows *extent.Seq, cfg config.Scroll) *GridView {
	g := &GridView{
		Style:       tcell.StyleDefault,
		HeaderStyle: tcell.StyleDefault.Reverse(true),
		CursorStyle: tcell.StyleDefault.Reverse(true).Bold(true),
		TrackStyle:  tcell.StyleDefault.Dim(true),
		ThumbStyle:  tcell.StyleDefault,
		model:       model,
		cols:        cols,
		rows:        rows,
		wheelStep:   cfg.WheelStep,
		showBars:    cfg.ShowScrollbars,
		minThumb:    cfg.MinThumb,
	}
	g.SetFocusable(true)
	g.state = scroll.NewState(
		config.ParseGranularity(cfg.GranularityX),
		config.ParseGranularity(cfg.GranularityY),
		g.viewportChanged,
	)
	return g
}

// Cols returns the column extent sequence for header sub-renderers.
func (g *GridView) Cols() *extent.Seq { return g.cols }

// Rows returns the row extent sequence for header sub-renderers.
func (g *GridView) Rows() *extent.Seq { return g.rows }

// Cursor returns the active cell.
func (g *GridView) Cursor() grid.RowCol { return g.cursor }

// Viewport returns the last computed viewport.
func (g *GridView) Viewport() scroll.Viewport { return g.lastVP }

// OnViewport registers a callback for viewport changes. Duplicate viewports
// are suppressed upstream.
func (g *GridView) OnViewport(fn func(scroll.Viewport)) {
	g.onViewport = fn
}

// SetInvalidator sets the invalidation callback.
func (g *GridView) SetInvalidator(fn func(core.Rect)) {
	g.inv = fn
}

// UsePositions attaches a scroll-position store. The remembered offsets for
// the key are restored immediately and updated on every viewport change.
func (g *GridView) UsePositions(store *scroll.Positions, key scroll.PositionKey) {
	g.positions = store
	g.posKey = key
	g.hasPosKey = true
	if x, y, ok := store.Load(key); ok {
		g.state.SetOffsets(x, y)
		xs, ys, _, _, _ := g.geometry()
		g.state.Refresh(xs, ys)
	}
}

func (g *GridView) viewportChanged(vp scroll.Viewport) {
	g.lastVP = vp
	if g.positions != nil && g.hasPosKey {
		x, y := g.state.Offsets()
		g.positions.Save(g.posKey, x, y)
	}
	if g.onViewport != nil {
		g.onViewport(vp)
	}
	g.invalidate()
}

func (g *GridView) invalidate() {
	if g.inv != nil {
		g.inv(g.Rect)
	}
}

// gutterWidth is the width of the row-number column.
func (g *GridView) gutterWidth() int {
	return len(strconv.Itoa(g.rows.Len())) + 1
}

// bodyRect returns the cell area: the widget minus headers and scrollbar
// gutters.
func (g *GridView) bodyRect() core.Rect {
	body := core.Rect{
		X: g.Rect.X + g.gutterWidth(),
		Y: g.Rect.Y + 1,
		W: g.Rect.W - g.gutterWidth(),
		H: g.Rect.H - 1,
	}
	if g.showBars {
		body.W--
		body.H--
	}
	if body.W < 0 {
		body.W = 0
	}
	if body.H < 0 {
		body.H = 0
	}
	return body
}

// geometry rebuilds everything derived from current sizes: the per-axis
// scales, the body rect, and both scrollbar geometries. Called once per event
// or draw pass; nothing here is retained.
func (g *GridView) geometry() (xs, ys scroll.Scale, body core.Rect, barV, barH scroll.BarGeometry) {
	body = g.bodyRect()
	xs = scroll.NewScale(g.cols, float64(body.W), g.state.GranularityX())
	ys = scroll.NewScale(g.rows, float64(body.H), g.state.GranularityY())

	if g.showBars {
		vTrack := scroll.Rect{
			X: float64(body.X + body.W),
			Y: float64(body.Y),
			W: 1,
			H: float64(body.H),
		}
		barV = scroll.VerticalBar(ys, g.state.OffsetY(ys), vTrack, g.minThumb)

		hTrack := scroll.Rect{
			X: float64(body.X),
			Y: float64(body.Y + body.H),
			W: float64(body.W),
			H: 1,
		}
		barH = scroll.HorizontalBar(xs, g.state.OffsetX(xs), hTrack, g.minThumb)
	}
	return xs, ys, body, barV, barH
}

// Draw renders headers, the visible cell block, and the scrollbars.
func (g *GridView) Draw(p *core.Painter) {
	p.Fill(g.Rect, ' ', g.Style)
	if g.Rect.W <= 0 || g.Rect.H <= 0 {
		return
	}

	xs, ys, body, barV, barH := g.geometry()
	vp := g.state.Refresh(xs, ys)
	g.lastVP = vp

	offX := vp.Absolute.X
	offY := vp.Absolute.Y

	g.drawColumnHeaders(p, body, vp, offX)
	g.drawRowHeaders(p, body, vp, offY)
	g.drawCells(p, body, vp, offX, offY)
	if g.showBars {
		g.drawBars(p, barV, barH)
	}
}

func (g *GridView) drawColumnHeaders(p *core.Painter, body core.Rect, vp scroll.Viewport, offX float64) {
	header := core.Rect{X: g.Rect.X, Y: g.Rect.Y, W: g.Rect.W, H: 1}
	p.Fill(header, ' ', g.HeaderStyle)

	clipped := p.WithClip(core.Rect{X: body.X, Y: header.Y, W: body.W, H: 1})
	for c := vp.Cells.Start.Col; c <= vp.Cells.End.Col; c++ {
		start, end := g.cols.Bounds(c)
		x := body.X + int(math.Floor(start-offX))
		w := int(end - start)
		clipped.DrawText(x+1, header.Y, ColumnName(c), w-1, g.HeaderStyle)
	}
}

func (g *GridView) drawRowHeaders(p *core.Painter, body core.Rect, vp scroll.Viewport, offY float64) {
	gutter := core.Rect{X: g.Rect.X, Y: body.Y, W: g.gutterWidth(), H: body.H}
	p.Fill(gutter, ' ', g.HeaderStyle)

	clipped := p.WithClip(gutter)
	for r := vp.Cells.Start.Row; r <= vp.Cells.End.Row; r++ {
		start, _ := g.rows.Bounds(r)
		y := body.Y + int(math.Floor(start-offY))
		clipped.DrawText(g.Rect.X, y, strconv.Itoa(r+1), gutter.W-1, g.HeaderStyle)
	}
}

func (g *GridView) drawCells(p *core.Painter, body core.Rect, vp scroll.Viewport, offX, offY float64) {
	clipped := p.WithClip(body)
	for r := vp.Cells.Start.Row; r <= vp.Cells.End.Row; r++ {
		rowStart, rowEnd := g.rows.Bounds(r)
		y := body.Y + int(math.Floor(rowStart-offY))
		h := int(rowEnd - rowStart)
		for c := vp.Cells.Start.Col; c <= vp.Cells.End.Col; c++ {
			colStart, colEnd := g.cols.Bounds(c)
			x := body.X + int(math.Floor(colStart-offX))
			w := int(colEnd - colStart)

			style := g.Style
			rc := grid.RowCol{Row: r, Col: c}
			if rc == g.cursor {
				style = g.CursorStyle
				clipped.Fill(core.Rect{X: x, Y: y, W: w, H: h}, ' ', style)
			}
			if g.model != nil && w > 1 {
				clipped.DrawText(x, y, g.model.CellText(rc), w-1, style)
			}
		}
	}
}

func (g *GridView) drawBars(p *core.Painter, barV, barH scroll.BarGeometry) {
	// Vertical track and thumb.
	x := int(barV.Track.X)
	for y := 0; y < int(barV.Track.H); y++ {
		p.SetCell(x, int(barV.Track.Y)+y, vTrackGlyph, g.TrackStyle)
	}
	thumbTop := int(math.Round(barV.Thumb.Y))
	for y := 0; y < int(math.Max(1, math.Round(barV.Thumb.H))); y++ {
		p.SetCell(x, thumbTop+y, thumbGlyph, g.ThumbStyle)
	}

	// Horizontal track and thumb.
	y := int(barH.Track.Y)
	for xx := 0; xx < int(barH.Track.W); xx++ {
		p.SetCell(int(barH.Track.X)+xx, y, hTrackGlyph, g.TrackStyle)
	}
	thumbLeft := int(math.Round(barH.Thumb.X))
	for xx := 0; xx < int(math.Max(1, math.Round(barH.Thumb.W))); xx++ {
		p.SetCell(thumbLeft+xx, y, thumbGlyph, g.ThumbStyle)
	}
}

// ColumnName returns the spreadsheet-style name for a zero-based column
// index: A..Z, AA, AB, ...
func ColumnName(col int) string {
	name := make([]byte, 0, 3)
	for col >= 0 {
		name = append([]byte{byte('A' + col%26)}, name...)
		col = col/26 - 1
	}
	return string(name)
}

var (
	_ core.Widget            = (*GridView)(nil)
	_ core.MouseAware        = (*GridView)(nil)
	_ core.InvalidationAware = (*GridView)(nil)
)
