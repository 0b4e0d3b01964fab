// Copyright © 2026 Flexpad contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package grid

import "testing"

func TestRangeNormalises(t *testing.T) {
	r := Range(RowCol{Row: 5, Col: 7}, RowCol{Row: 2, Col: 3})
	if r.Start != (RowCol{Row: 2, Col: 3}) {
		t.Errorf("Start = %v, want (2,3)", r.Start)
	}
	if r.End != (RowCol{Row: 5, Col: 7}) {
		t.Errorf("End = %v, want (5,7)", r.End)
	}
}

func TestCellRangeCount(t *testing.T) {
	tests := []struct {
		name  string
		r     CellRange
		rows  int
		cols  int
		count int
	}{
		{"single cell", Range(RowCol{}, RowCol{}), 1, 1, 1},
		{"one row", Range(RowCol{Row: 3, Col: 0}, RowCol{Row: 3, Col: 9}), 1, 10, 10},
		{"block", Range(RowCol{Row: 1, Col: 2}, RowCol{Row: 4, Col: 5}), 4, 4, 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Rows(); got != tt.rows {
				t.Errorf("Rows() = %d, want %d", got, tt.rows)
			}
			if got := tt.r.Cols(); got != tt.cols {
				t.Errorf("Cols() = %d, want %d", got, tt.cols)
			}
			if got := tt.r.Count(); got != tt.count {
				t.Errorf("Count() = %d, want %d", got, tt.count)
			}
		})
	}
}

func TestCellRangeContains(t *testing.T) {
	r := Range(RowCol{Row: 2, Col: 2}, RowCol{Row: 4, Col: 6})

	inside := []RowCol{{2, 2}, {4, 6}, {3, 4}, {2, 6}, {4, 2}}
	for _, rc := range inside {
		if !r.Contains(rc) {
			t.Errorf("Contains(%v) = false, want true", rc)
		}
	}

	outside := []RowCol{{1, 2}, {5, 2}, {3, 1}, {3, 7}, {0, 0}}
	for _, rc := range outside {
		if r.Contains(rc) {
			t.Errorf("Contains(%v) = true, want false", rc)
		}
	}
}
