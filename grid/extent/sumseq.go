// Copyright © 2026 Flexpad contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: grid/extent/sumseq.go
// Summary: Run-length encoded sequence of row/column extents with cumulative-sum
// and inverse-sum queries. One Seq per axis, built once per grid configuration.

package extent

import (
	"iter"
	"math"
)

// Run is a group of consecutive elements that share the same extent.
type Run struct {
	Count  int
	Length float64
}

// Rounding selects which element an inverse-sum query resolves to when the
// queried value does not land exactly on an element boundary.
type Rounding int

const (
	// RoundDown resolves to the element whose span contains the value. A value
	// exactly on a boundary belongs to the element that ends there.
	RoundDown Rounding = iota
	// RoundUp resolves to the first element whose start boundary is at or past
	// the value.
	RoundUp
)

// Seq is an ordered sequence of positive extents stored as runs. It is built
// by appending and is not mutated afterwards; the grid container owns it and
// shares it read-only with header renderers.
type Seq struct {
	runs   []Run
	length int
	total  float64
}

// New returns an empty sequence.
func New() *Seq {
	return &Seq{}
}

// FromLengths builds a sequence from individual extents, merging equal
// neighbours into runs.
func FromLengths(lengths ...float64) *Seq {
	s := New()
	for _, l := range lengths {
		s.Push(l)
	}
	return s
}

// Push appends one element of the given extent.
func (s *Seq) Push(length float64) {
	s.PushN(1, length)
}

// PushN appends n elements of the given extent. If the trailing run already
// has this extent its count grows instead of allocating a new run. Non-positive
// counts and extents are ignored.
func (s *Seq) PushN(n int, length float64) {
	if n <= 0 || length <= 0 || math.IsInf(length, 1) || math.IsNaN(length) {
		return
	}
	if last := len(s.runs) - 1; last >= 0 && s.runs[last].Length == length {
		s.runs[last].Count += n
	} else {
		s.runs = append(s.runs, Run{Count: n, Length: length})
	}
	s.length += n
	s.total += float64(n) * length
}

// Len returns the number of elements.
func (s *Seq) Len() int {
	return s.length
}

// Sum returns the total extent of all elements.
func (s *Seq) Sum() float64 {
	return s.total
}

// SumTo returns the cumulative extent of the first end elements. Out-of-range
// arguments clamp: end <= 0 yields 0, end >= Len() yields Sum().
func (s *Seq) SumTo(end int) float64 {
	if end <= 0 {
		return 0
	}
	if end >= s.length {
		return s.total
	}
	var sum float64
	for _, r := range s.runs {
		if end < r.Count {
			return sum + float64(end)*r.Length
		}
		sum += float64(r.Count) * r.Length
		end -= r.Count
		if end == 0 {
			return sum
		}
	}
	return sum
}

// At returns the extent of element i, or 0 if i is out of range.
func (s *Seq) At(i int) float64 {
	if i < 0 || i >= s.length {
		return 0
	}
	for _, r := range s.runs {
		if i < r.Count {
			return r.Length
		}
		i -= r.Count
	}
	return 0
}

// Bounds returns the start and end boundary of element i,
// equivalent to (SumTo(i), SumTo(i+1)) in a single pass.
func (s *Seq) Bounds(i int) (start, end float64) {
	start = s.SumTo(i)
	return start, start + s.At(i)
}

// IndexOfSum locates the element a cumulative extent falls in. Under RoundDown
// the result is the element whose span (SumTo(i), SumTo(i+1)] contains the
// value; under RoundUp it is the smallest i with SumTo(i) >= value. Results
// clamp to [0, Len()-1] for out-of-range values, so transient overshoot during
// a resize never errors.
func (s *Seq) IndexOfSum(value float64, rounding Rounding) int {
	if s.length == 0 || value <= 0 || math.IsNaN(value) {
		return 0
	}
	base := 0
	var sum float64
	for _, r := range s.runs {
		runEnd := sum + float64(r.Count)*r.Length
		if value <= runEnd {
			// Number of whole elements of this run at or below value.
			k := int(math.Ceil((value - sum) / r.Length))
			if k < 1 {
				k = 1
			}
			if k > r.Count {
				k = r.Count
			}
			switch rounding {
			case RoundUp:
				idx := base + k
				if idx > s.length-1 {
					idx = s.length - 1
				}
				return idx
			default:
				return base + k - 1
			}
		}
		sum = runEnd
		base += r.Count
	}
	return s.length - 1
}

// Values returns a restartable iterator over the individual extents in order,
// expanding every run.
func (s *Seq) Values() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for _, r := range s.runs {
			for i := 0; i < r.Count; i++ {
				if !yield(r.Length) {
					return
				}
			}
		}
	}
}
