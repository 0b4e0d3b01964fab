// Copyright © 2026 Flexpad contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: grid/grid.go
// Summary: Cell addressing types shared by the scroll engine and the widget layer.

package grid

import "fmt"

// RowCol is a zero-based cell address.
type RowCol struct {
	Row int
	Col int
}

func (rc RowCol) String() string {
	return fmt.Sprintf("(%d,%d)", rc.Row, rc.Col)
}

// CellRange is an inclusive rectangular block of cell addresses.
// Start is the top-left corner, End the bottom-right.
type CellRange struct {
	Start RowCol
	End   RowCol
}

// Range builds a CellRange, normalising the corners so Start <= End
// component-wise.
func Range(a, b RowCol) CellRange {
	if b.Row < a.Row {
		a.Row, b.Row = b.Row, a.Row
	}
	if b.Col < a.Col {
		a.Col, b.Col = b.Col, a.Col
	}
	return CellRange{Start: a, End: b}
}

// Rows returns the number of rows spanned.
func (r CellRange) Rows() int {
	return r.End.Row - r.Start.Row + 1
}

// Cols returns the number of columns spanned.
func (r CellRange) Cols() int {
	return r.End.Col - r.Start.Col + 1
}

// Count returns the number of cells in the range.
func (r CellRange) Count() int {
	return r.Rows() * r.Cols()
}

// Contains reports whether rc falls inside the range.
func (r CellRange) Contains(rc RowCol) bool {
	return rc.Row >= r.Start.Row && rc.Row <= r.End.Row &&
		rc.Col >= r.Start.Col && rc.Col <= r.End.Col
}

func (r CellRange) String() string {
	return fmt.Sprintf("%v-%v", r.Start, r.End)
}
