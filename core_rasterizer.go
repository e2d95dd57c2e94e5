// core_rasterizer.go - viewport transform and edge-function rasterizer

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

/*
core_rasterizer.go implements spec.md 4.5 and 4.6: perspective division and
the viewport transform map each clip-space vertex to a screen-space point
carrying an interpolation-ready depth; the rasterizer itself is an
edge-function scan over the triangle's bounding box: orient2d edge values,
barycentric weights, per-pixel depth test before the color write. The three
edge functions are evaluated directly at every pixel sample; they are not
stepped incrementally from one pixel or row to the next.
*/

package glcore

import "math"

// screenVertex is a triangle vertex after perspective division and the
// viewport transform (spec.md 4.5): x/y in pixel space, z in [0,1] for the
// depth test.
type screenVertex struct {
	x, y float32
	z    float32
}

// rasterize runs the full 4.5/4.6 pipeline for one clip-space triangle
// against the current viewport and buffers.
func (c *Context) rasterize(tri *clipTriangle) {
	var sv [3]screenVertex
	for i, v := range tri.clip {
		if v[3] == 0 {
			return // degenerate: w == 0 cannot be divided, drop the triangle
		}
		invW := 1 / v[3]
		ndcX := v[0] * invW
		ndcY := v[1] * invW
		ndcZ := v[2] * invW
		sv[i] = screenVertex{
			x: float32(c.viewport.X) + (ndcX*0.5+0.5)*float32(c.viewport.W),
			y: float32(c.viewport.Y) + (ndcY*0.5+0.5)*float32(c.viewport.H),
			z: ndcZ*0.5 + 0.5,
		}
	}

	color := normalToARGB(tri.flatNormal)
	c.rasterizeTriangle(sv[0], sv[1], sv[2], color)
}

// normalToARGB maps a surface normal's components from [-1,1] to [0,255]
// per channel, a placeholder visualization standing in for lighting
// (spec.md 4.6 item 9).
func normalToARGB(n Vec3) uint32 {
	toByte := func(v float32) uint32 {
		f := v*0.5 + 0.5
		if f < 0 {
			f = 0
		}
		if f > 1 {
			f = 1
		}
		return uint32(f*255 + 0.5)
	}
	r := toByte(n[0])
	g := toByte(n[1])
	b := toByte(n[2])
	return 0xFF000000 | r<<16 | g<<8 | b
}

// orient2d is the standard 2x signed-area edge function (positive when c
// is left of the a->b edge under a counter-clockwise winding).
func orient2d(ax, ay, bx, by, cx, cy float32) float32 {
	return (bx-ax)*(cy-ay) - (by-ay)*(cx-ax)
}

// rasterizeTriangle scans the triangle's bounding box, clamped to the
// viewport and the surface, using edge functions to derive barycentric
// weights, interpolates depth and applies the Z test (spec.md 4.6). Only
// triangles with non-negative signed area under orient2d produce
// fragments: the coverage test requires all three edge values to be
// non-negative, which a negative-area (opposite winding) triangle cannot
// satisfy except at degenerate points.
func (c *Context) rasterizeTriangle(v0, v1, v2 screenVertex, color uint32) {
	area := orient2d(v0.x, v0.y, v1.x, v1.y, v2.x, v2.y)
	if area == 0 {
		return // degenerate triangle, zero signed area
	}

	minX := minOf3(v0.x, v1.x, v2.x)
	maxX := maxOf3(v0.x, v1.x, v2.x)
	minY := minOf3(v0.y, v1.y, v2.y)
	maxY := maxOf3(v0.y, v1.y, v2.y)

	vpMinX, vpMinY := float32(c.viewport.X), float32(c.viewport.Y)
	vpMaxX, vpMaxY := float32(c.viewport.X+c.viewport.W), float32(c.viewport.Y+c.viewport.H)
	minX = clampf(minX, vpMinX, vpMaxX)
	maxX = clampf(maxX, vpMinX, vpMaxX)
	minY = clampf(minY, vpMinY, vpMaxY)
	maxY = clampf(maxY, vpMinY, vpMaxY)

	x0 := int(math.Floor(float64(minX)))
	x1 := int(math.Ceil(float64(maxX)))
	y0 := int(math.Floor(float64(minY)))
	y1 := int(math.Ceil(float64(maxY)))
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > SurfaceWidth {
		x1 = SurfaceWidth
	}
	if y1 > SurfaceHeight {
		y1 = SurfaceHeight
	}

	invArea := 1 / area

	for py := y0; py < y1; py++ {
		sy := float32(py) + 0.5
		for px := x0; px < x1; px++ {
			sx := float32(px) + 0.5

			w0 := orient2d(v1.x, v1.y, v2.x, v2.y, sx, sy)
			w1 := orient2d(v2.x, v2.y, v0.x, v0.y, sx, sy)
			w2 := orient2d(v0.x, v0.y, v1.x, v1.y, sx, sy)

			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			b0 := w0 * invArea
			b1 := w1 * invArea
			b2 := w2 * invArea

			depth := b0*v0.z + b1*v1.z + b2*v2.z

			// Flip Y so screen-space +Y=up presents as the top of the
			// window (spec.md 4.6 item 10).
			idx := (SurfaceHeight-1-py)*SurfaceWidth + px

			if depth >= c.depthBuffer[idx] {
				continue
			}
			c.colorBuffer[idx] = color
			if c.depthMask {
				c.depthBuffer[idx] = depth
			}
		}
	}
}

func minOf3(a, b, c float32) float32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func maxOf3(a, b, c float32) float32 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
