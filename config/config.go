// Copyright © 2026 Flexpad contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/config.go
// Summary: Scroll behaviour configuration store (~/.config/flexpad/flexpad.json).

package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/dave-wathen/flexpad/grid/scroll"
)

const configName = "flexpad.json"

// Scroll configures how grids respond to input.
type Scroll struct {
	// WheelStep is the distance in units one wheel tick scrolls.
	WheelStep float64 `json:"wheel_step"`
	// GranularityX / GranularityY are "discrete" or "continuous".
	GranularityX string `json:"granularity_x"`
	GranularityY string `json:"granularity_y"`
	// ShowScrollbars toggles the scrollbar gutters.
	ShowScrollbars bool `json:"show_scrollbars"`
	// MinThumb is the minimum thumb length in cells.
	MinThumb float64 `json:"min_thumb"`
}

// Config is the root of the configuration file.
type Config struct {
	Scroll Scroll `json:"scroll"`
}

var (
	mu      sync.RWMutex
	once    sync.Once
	loaded  Config
	loadErr error
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Scroll: Scroll{
			WheelStep:      3,
			GranularityX:   "continuous",
			GranularityY:   "discrete",
			ShowScrollbars: true,
			MinThumb:       1,
		},
	}
}

// Path returns the location of the configuration file.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "flexpad", configName), nil
}

// Get returns the loaded configuration, reading the file on first use. A
// missing or unreadable file falls back to defaults.
func Get() Config {
	once.Do(load)
	mu.RLock()
	defer mu.RUnlock()
	return loaded
}

// Err returns the most recent load error, or nil when the file was absent or
// read cleanly.
func Err() error {
	once.Do(load)
	mu.RLock()
	defer mu.RUnlock()
	return loadErr
}

// Reload re-reads the configuration file.
func Reload() {
	mu.Lock()
	defer mu.Unlock()
	loadLocked()
}

func load() {
	mu.Lock()
	defer mu.Unlock()
	loadLocked()
}

func loadLocked() {
	loaded = Default()
	loadErr = nil

	path, err := Path()
	if err != nil {
		log.Printf("Config: Failed to resolve config path: %v", err)
		loadErr = err
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Config: Failed to read %s: %v", path, err)
			loadErr = err
		}
		return
	}

	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		log.Printf("Config: Failed to parse %s: %v", path, err)
		loadErr = fmt.Errorf("parse %s: %w", path, err)
		return
	}
	applyDefaults(&cfg)
	loaded = cfg
	log.Printf("Config: Loaded %s", path)
}

// applyDefaults fills in values a sparse file left zero.
func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.Scroll.WheelStep <= 0 {
		cfg.Scroll.WheelStep = def.Scroll.WheelStep
	}
	if cfg.Scroll.GranularityX == "" {
		cfg.Scroll.GranularityX = def.Scroll.GranularityX
	}
	if cfg.Scroll.GranularityY == "" {
		cfg.Scroll.GranularityY = def.Scroll.GranularityY
	}
	if cfg.Scroll.MinThumb <= 0 {
		cfg.Scroll.MinThumb = def.Scroll.MinThumb
	}
}

// ParseGranularity maps a config string to the scroll policy. Unknown values
// fall back to continuous.
func ParseGranularity(s string) scroll.Granularity {
	if s == "discrete" {
		return scroll.Discrete
	}
	return scroll.Continuous
}
