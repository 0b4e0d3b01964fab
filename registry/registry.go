// Copyright © 2026 Flexpad contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: registry/registry.go
// Summary: Registry of live grid widgets addressed by stable ID, so other
// parts of the application can request scroll commands for a grid they do not
// hold a reference to (e.g. when a cell is activated from a search panel).

package registry

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"

	"github.com/dave-wathen/flexpad/grid"
)

// ID is a stable identifier for one scrollable grid.
type ID [16]byte

// NewID returns a fresh random identifier.
func NewID() ID {
	var id ID
	// rand.Read never fails on supported platforms; a zero ID is still usable.
	rand.Read(id[:])
	return id
}

func (id ID) String() string {
	return hex.EncodeToString(id[:])
}

// Scrollable is the command surface a registered grid exposes.
type Scrollable interface {
	ScrollToCell(target grid.RowCol)
	EnsureCellVisible(target grid.RowCol)
}

// Registry maps IDs to live grids. Commands may arrive from outside the event
// loop, so access is mutex-guarded.
type Registry struct {
	mu    sync.RWMutex
	grids map[ID]Scrollable
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{grids: make(map[ID]Scrollable)}
}

// Add registers a grid and returns its new ID.
func (r *Registry) Add(s Scrollable) ID {
	id := NewID()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.grids[id] = s
	return id
}

// Remove forgets a grid, e.g. when its window closes.
func (r *Registry) Remove(id ID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.grids, id)
}

// Lookup returns the grid registered under id.
func (r *Registry) Lookup(id ID) (Scrollable, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.grids[id]
	return s, ok
}

// ScrollToCell routes a scroll-to-cell command to the addressed grid.
func (r *Registry) ScrollToCell(id ID, target grid.RowCol) error {
	s, ok := r.Lookup(id)
	if !ok {
		return fmt.Errorf("registry: no grid %s", id)
	}
	s.ScrollToCell(target)
	return nil
}

// EnsureCellVisible routes an ensure-visible command to the addressed grid.
func (r *Registry) EnsureCellVisible(id ID, target grid.RowCol) error {
	s, ok := r.Lookup(id)
	if !ok {
		return fmt.Errorf("registry: no grid %s", id)
	}
	s.EnsureCellVisible(target)
	return nil
}
