//go:build headless

// headlesssurface.go - no-window glcore.Surface for headless hosts

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

/*
headlesssurface.go keeps the presentation contract satisfiable on hosts
with no display, behind the same build tag split as the ebiten-backed
Surface, counting frames instead of drawing them.
*/

package surface

import "sync/atomic"

// HeadlessSurface discards presented frames but counts them, so tests and
// CI can drive the full pipeline without a window.
type HeadlessSurface struct {
	frameCount uint64
	lastWidth  int
	lastHeight int
}

// NewHeadlessSurface creates a surface that accepts frames without
// displaying them.
func NewHeadlessSurface() *HeadlessSurface {
	return &HeadlessSurface{}
}

// Present implements glcore.Surface.
func (h *HeadlessSurface) Present(pixels []uint32, width, height int) {
	h.lastWidth, h.lastHeight = width, height
	atomic.AddUint64(&h.frameCount, 1)
}

// FrameCount reports how many frames have been presented.
func (h *HeadlessSurface) FrameCount() uint64 {
	return atomic.LoadUint64(&h.frameCount)
}
