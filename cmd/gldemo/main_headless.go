//go:build headless

// main_headless.go - headless demo entry point, no window required

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package main

import (
	"fmt"

	"github.com/retrogl/glcore"
	"github.com/retrogl/glcore/surface"
)

func main() {
	glcore.Attach()
	defer glcore.Detach()

	surf := surface.NewHeadlessSurface()

	glcore.SetMatrixMode(glcore.Projection)
	glcore.LoadIdentity()
	glcore.Ortho(-2, 2, -1.5, 1.5, -10, 10)
	glcore.SetMatrixMode(glcore.ModelView)
	glcore.LoadIdentity()

	for i := 0; i < 60; i++ {
		glcore.ClearColor(0.05, 0.05, 0.08, 1)
		glcore.Clear(glcore.ClearColorBit | glcore.ClearDepthBit)

		glcore.Begin(glcore.Triangles)
		glcore.Normal3f(0, 0, 1)
		glcore.Vertex3f(-1, -1, 0)
		glcore.Vertex3f(1, -1, 0)
		glcore.Vertex3f(0, 1, 0)
		glcore.End()

		glcore.Present(surf)
	}

	fmt.Printf("presented %d frames\n", surf.FrameCount())
}
