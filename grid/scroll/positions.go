// Copyright © 2026 Flexpad contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: grid/scroll/positions.go
// Summary: Cross-view scroll-position memory keyed by (document, view)
// identity. Owned by top-level application state and passed into grid widgets;
// never global.

package scroll

import "sync"

// PositionKey identifies one view of one document.
type PositionKey struct {
	Document string
	View     string
}

// Positions remembers the scroll offsets of views that are not currently on
// screen, so switching back to a document restores where the user left it.
// Offsets are stored in tagged form and resolved only against live scales.
type Positions struct {
	mu sync.RWMutex
	m  map[PositionKey][2]Offset
}

// NewPositions returns an empty store.
func NewPositions() *Positions {
	return &Positions{m: make(map[PositionKey][2]Offset)}
}

// Save records the offsets for a key, replacing any previous entry.
func (p *Positions) Save(key PositionKey, x, y Offset) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.m[key] = [2]Offset{x, y}
}

// Load returns the remembered offsets for a key.
func (p *Positions) Load(key PositionKey) (x, y Offset, ok bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	v, ok := p.m[key]
	if !ok {
		return Offset{}, Offset{}, false
	}
	return v[0], v[1], true
}

// Forget drops the entry for a key, e.g. when a document closes.
func (p *Positions) Forget(key PositionKey) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.m, key)
}
