//go:build !headless

// ebitensurface.go - ebiten-backed glcore.Surface

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

/*
ebitensurface.go adapts glcore.Present's ARGB back buffer onto an ebiten
window: a mutex guards a byte frame buffer written by Present and read
back in Draw, and WaitReady blocks until Ebiten has run its first Draw
call.
*/

package surface

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// EbitenSurface presents frames through an ebiten window. It implements
// glcore.Surface structurally: this package does not import glcore, and
// cmd/gldemo imports both.
type EbitenSurface struct {
	mu     sync.Mutex
	pixels []byte
	width  int
	height int
	scale  int

	img      *ebiten.Image
	readyCh  chan struct{}
	readyOne sync.Once
}

// NewEbitenSurface creates a surface and sets its window options. The
// window is opened by Run; Present sizes it to scale times the presented
// width and height (640x480 for glcore, spec.md 2).
func NewEbitenSurface(title string, scale int) *EbitenSurface {
	if scale < 1 {
		scale = 1
	}
	s := &EbitenSurface{scale: scale, readyCh: make(chan struct{}, 1)}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizable(true)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetVsyncEnabled(true)
	return s
}

// Run starts the ebiten game loop. It blocks until the window is closed,
// matching ebiten.RunGame's contract, which owns the calling goroutine;
// callers that keep rendering do so from another goroutine, as
// cmd/gldemo does.
func (s *EbitenSurface) Run() error {
	return ebiten.RunGame(s)
}

// Present implements glcore.Surface: pixels is row-major ARGB, width by
// height. The slice is copied out before returning, since Present's
// contract forbids the surface retaining it (spec.md 4.7).
func (s *EbitenSurface) Present(pixels []uint32, width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.width != width || s.height != height {
		s.width, s.height = width, height
		s.pixels = make([]byte, width*height*4)
		ebiten.SetWindowSize(width*s.scale, height*s.scale)
	}
	for i, p := range pixels {
		o := i * 4
		s.pixels[o+0] = byte(p >> 16) // R
		s.pixels[o+1] = byte(p >> 8)  // G
		s.pixels[o+2] = byte(p)       // B
		s.pixels[o+3] = byte(p >> 24) // A
	}
}

// Update implements ebiten.Game.
func (s *EbitenSurface) Update() error {
	if ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (s *EbitenSurface) Draw(screen *ebiten.Image) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.width == 0 || s.height == 0 {
		return
	}
	if s.img == nil {
		s.img = ebiten.NewImage(s.width, s.height)
	}
	s.img.WritePixels(s.pixels)
	screen.DrawImage(s.img, nil)
	s.readyOne.Do(func() { close(s.readyCh) })
}

// Layout implements ebiten.Game.
func (s *EbitenSurface) Layout(_, _ int) (int, int) {
	if s.width == 0 {
		return 1, 1
	}
	return s.width, s.height
}

// WaitReady blocks until the first Draw call has completed, matching the
// teacher's <-vsyncChan gate in EbitenOutput.Start.
func (s *EbitenSurface) WaitReady() {
	<-s.readyCh
}
