//go:build !ebiten

package ui

import "colorlife/internal/core"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(core.Sim, int) *HUD { return nil }

// Width is always 0 in the headless build.
func (h *HUD) Width() int { return 0 }

// SetStatus is a no-op in the headless build.
func (h *HUD) SetStatus(...string) {}

// Update is a no-op in the headless build.
func (h *HUD) Update(int) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int) {}
