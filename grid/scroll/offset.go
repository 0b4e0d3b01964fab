// Copyright © 2026 Flexpad contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: grid/scroll/offset.go
// Summary: Tagged absolute/relative scroll offset, resolved lazily against a
// live Scale so it never goes stale across a resize.

package scroll

type offsetKind int

const (
	offsetAbsolute offsetKind = iota
	offsetRelative
)

// Offset is a scroll position on one axis, either an absolute unit value or a
// fraction of the scrollable range. It is resolved to a concrete value only
// against a live Scale, because content and viewport extents change between
// frames.
type Offset struct {
	kind  offsetKind
	value float64
}

// Absolute returns an absolute offset, clamped to be non-negative.
func Absolute(v float64) Offset {
	if v < 0 {
		v = 0
	}
	return Offset{kind: offsetAbsolute, value: v}
}

// Relative returns a relative offset, clamped to [0,1].
func Relative(p float64) Offset {
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	return Offset{kind: offsetRelative, value: p}
}

// IsRelative reports whether the offset is a fraction rather than a unit value.
func (o Offset) IsRelative() bool {
	return o.kind == offsetRelative
}

// Resolve returns the concrete quantized offset under the given scale.
func (o Offset) Resolve(sc Scale) float64 {
	if o.kind == offsetRelative {
		return sc.Percentage(o.value)
	}
	return sc.Quantize(o.value)
}
