// Package presentation renders the directory for people and keeps the state
// that only matters on screen: the light/dark display mode and per-card
// interactions. None of it feeds back into the directory.
package presentation

import "sync"

// DisplayMode is the light/dark flag. It is passed explicitly to whoever
// renders; there is no package-level instance.
type DisplayMode struct {
	mu   sync.RWMutex
	dark bool
}

// NewDisplayMode returns a mode starting dark or light.
func NewDisplayMode(dark bool) *DisplayMode {
	return &DisplayMode{dark: dark}
}

// Dark reports whether dark mode is on.
func (m *DisplayMode) Dark() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.dark
}

// Toggle flips the mode and returns the new value of Dark.
func (m *DisplayMode) Toggle() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dark = !m.dark
	return m.dark
}

// Name is "dark" or "light".
func (m *DisplayMode) Name() string {
	if m.Dark() {
		return "dark"
	}
	return "light"
}

// Icon is the toggle's label: a sun offers light mode, a moon offers dark.
func (m *DisplayMode) Icon() string {
	if m.Dark() {
		return "☀️"
	}
	return "🌙"
}
