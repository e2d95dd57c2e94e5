//go:build !headless

// main.go - windowed demo driving glcore through a spinning textured quad

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package main

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"os"
	"time"

	"golang.org/x/image/draw"

	"github.com/retrogl/glcore"
	"github.com/retrogl/glcore/surface"
)

func main() {
	glcore.Attach()
	defer glcore.Detach()

	setUpTexture()
	setUpProjection()

	surf := surface.NewEbitenSurface("glcore demo (c) 2024 - 2026 Zayn Otley", 1)

	go renderLoop(surf)

	if err := surf.Run(); err != nil {
		fmt.Printf("surface error: %v\n", err)
		os.Exit(1)
	}
}

// setUpTexture builds a small checkerboard, resizes it with
// golang.org/x/image/draw, then uploads it. Texturing is state-tracking
// only (spec.md 4.9): the rasterizer never samples it, but a complete
// emulation still exercises the same TexImage2D path a ported caller
// would use.
func setUpTexture() {
	src := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			c := color.RGBA{R: 255, G: 255, B: 255, A: 255}
			if (x+y)%2 == 0 {
				c = color.RGBA{R: 40, G: 40, B: 60, A: 255}
			}
			src.Set(x, y, c)
		}
	}
	dst := image.NewRGBA(image.Rect(0, 0, 64, 64))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	names := glcore.GenTextures(1)
	glcore.BindTexture(glcore.Texture2D, names[0])
	glcore.TexParameteri(glcore.Texture2D, 0x2801, int32(glcore.FilterLinear))
	glcore.TexImage2D(glcore.Texture2D, 64, 64, dst.Pix)
}

func setUpProjection() {
	glcore.SetMatrixMode(glcore.Projection)
	glcore.LoadIdentity()
	glcore.Ortho(-2, 2, -1.5, 1.5, -10, 10)
	glcore.SetMatrixMode(glcore.ModelView)
	glcore.LoadIdentity()
}

// renderLoop builds one spinning quad per frame and presents it. It runs
// on its own goroutine since ebiten.RunGame must own the calling
// goroutine (surface.EbitenSurface.Run, called from main).
func renderLoop(surf *surface.EbitenSurface) {
	angle := float32(0)
	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()

	for range ticker.C {
		glcore.SetMatrixMode(glcore.ModelView)
		glcore.LoadIdentity()
		glcore.Translated(0, 0, 0)

		glcore.ClearColor(0.05, 0.05, 0.08, 1)
		glcore.Clear(glcore.ClearColorBit | glcore.ClearDepthBit)

		drawSpinningQuad(angle)
		glcore.Present(surf)

		angle += 0.02
	}
}

func drawSpinningQuad(angle float32) {
	cos := float32(math.Cos(float64(angle)))
	sin := float32(math.Sin(float64(angle)))

	rotate := func(x, y float32) (float32, float32) {
		return x*cos - y*sin, x*sin + y*cos
	}

	corners := [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	texCoords := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	glcore.Begin(glcore.Quads)
	glcore.Normal3f(0, 0, 1)
	for i, corner := range corners {
		x, y := rotate(corner[0], corner[1])
		glcore.TexCoord2f(texCoords[i][0], texCoords[i][1])
		glcore.Vertex3f(x, y, 0)
	}
	glcore.End()
}
