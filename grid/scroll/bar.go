// Copyright © 2026 Flexpad contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: grid/scroll/bar.go
// Summary: Scrollbar track/thumb geometry and the inverse mapping from a
// pointer position back to a scroll percentage. Pure geometry, recomputed
// every frame and owned by nobody.

package scroll

// Rect is an axis-aligned rectangle in unit coordinates.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// BarGeometry holds the pixel bounds of a scrollbar's track and thumb for one
// frame.
type BarGeometry struct {
	Track    Rect
	Thumb    Rect
	vertical bool
}

// VerticalBar derives thumb bounds along a vertical track. The thumb length is
// proportional to the visible fraction of the content, never smaller than
// minThumb, and fills the track when the axis cannot scroll.
func VerticalBar(sc Scale, offset float64, track Rect, minThumb float64) BarGeometry {
	pos, span := thumbSpan(sc, offset, track.Y, track.H, minThumb)
	return BarGeometry{
		Track:    track,
		Thumb:    Rect{X: track.X, Y: pos, W: track.W, H: span},
		vertical: true,
	}
}

// HorizontalBar derives thumb bounds along a horizontal track.
func HorizontalBar(sc Scale, offset float64, track Rect, minThumb float64) BarGeometry {
	pos, span := thumbSpan(sc, offset, track.X, track.W, minThumb)
	return BarGeometry{
		Track: track,
		Thumb: Rect{X: pos, Y: track.Y, W: span, H: track.H},
	}
}

func thumbSpan(sc Scale, offset, trackStart, trackLen, minThumb float64) (pos, span float64) {
	if trackLen <= 0 {
		return trackStart, 0
	}
	if !sc.CanScroll() || sc.Content <= 0 {
		return trackStart, trackLen
	}

	span = trackLen * sc.Viewport / sc.Content
	if span < minThumb {
		span = minThumb
	}
	if span > trackLen {
		span = trackLen
	}

	ratio := offset / sc.MaxOffset()
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	pos = trackStart + (trackLen-span)*ratio
	return pos, span
}

// Percent inverse-maps a pointer coordinate along the track into [0,1]. pos is
// the pointer's coordinate on the bar's axis and grab the offset inside the
// thumb recorded when the drag began, so the thumb does not jump under the
// pointer.
func (g BarGeometry) Percent(pos, grab float64) float64 {
	var trackStart, trackLen, thumbLen float64
	if g.vertical {
		trackStart, trackLen, thumbLen = g.Track.Y, g.Track.H, g.Thumb.H
	} else {
		trackStart, trackLen, thumbLen = g.Track.X, g.Track.W, g.Thumb.W
	}

	travel := trackLen - thumbLen
	if travel <= 0 {
		return 0
	}
	p := (pos - grab - trackStart) / travel
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	return p
}
