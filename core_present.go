// core_present.go - clear, depth mask and frame presentation

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

/*
core_present.go implements spec.md 4.7: ClearColor latches the color used
by Clear, Clear resets the selected buffers, DepthMask gates whether the
rasterizer's depth writes land, and Present hands the finished ARGB back
buffer to a Surface sink, the same internal-framebuffer-to-windowing-backend
hand-off shape used by the ebiten-backed Surface in surface/.
*/

package glcore

// Surface receives a finished frame's ARGB pixels, row-major, top-left
// origin, spec.md-SurfaceWidth by spec.md-SurfaceHeight (spec.md 4.7).
// Implementations must not retain pixels past the call: the backing
// slice is reused on the next Present.
type Surface interface {
	Present(pixels []uint32, width, height int)
}

// ClearColor latches the color used by subsequent Clear calls (spec.md 4.7).
func ClearColor(r, g, b, a float32) {
	current("ClearColor").issue(command{kind: cmdClearColor, f: [8]float32{r, g, b, a}})
}

func (c *Context) doClearColor(r, g, b, a float32) {
	c.clearColor = [4]float32{r, g, b, a}
}

// Clear resets the buffers named by mask to the latched clear color and/or
// the maximum depth, 1.0 (spec.md 4.7).
func Clear(mask ClearMask) {
	current("Clear").issue(command{kind: cmdClear, i: [6]int32{int32(mask)}})
}

func (c *Context) doClear(mask ClearMask) {
	if mask&ClearColorBit != 0 {
		packed := packARGB(c.clearColor)
		for i := range c.colorBuffer {
			c.colorBuffer[i] = packed
		}
	}
	if mask&ClearDepthBit != 0 {
		for i := range c.depthBuffer {
			c.depthBuffer[i] = 1.0
		}
	}
}

func packARGB(c [4]float32) uint32 {
	toByte := func(v float32) uint32 {
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		return uint32(v*255 + 0.5)
	}
	return toByte(c[3])<<24 | toByte(c[0])<<16 | toByte(c[1])<<8 | toByte(c[2])
}

// DepthMask gates whether the rasterizer's depth comparisons are written
// back to the depth buffer (spec.md 4.7). The comparison itself always
// runs regardless of the mask.
func DepthMask(enabled bool) {
	i := int32(0)
	if enabled {
		i = 1
	}
	current("DepthMask").issue(command{kind: cmdDepthMask, i: [6]int32{i}})
}

func (c *Context) doDepthMask(enabled bool) {
	c.depthMask = enabled
}

// Present hands the current back buffer to surf (spec.md 4.7). The
// caller's Surface is responsible for showing it; this core has no
// notion of vsync or double buffering beyond the one buffer it owns.
func Present(surf Surface) {
	c := current("Present")
	c.mu.Lock()
	defer c.mu.Unlock()
	surf.Present(c.colorBuffer, SurfaceWidth, SurfaceHeight)
}
