// core_query.go - pixel store, viewport, and state queries

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

/*
core_query.go implements spec.md 4.10 (pixel store) and 4.12 (viewport,
GetIntegerv, GetError). GetError always reports "no error": this core's
error-handling philosophy is fail-fast-by-panic (spec.md 5), so the
legacy polling-based error query has nothing left to report and exists
only so a caller ported from the legacy surface keeps compiling and
running: the same shape an always-succeeds status register read has when
there is no error-reporting hardware behind it.
*/

package glcore

// PixelStorei sets one pixel-store parameter (spec.md 4.10). None of the
// parameters affects anything else in this core, since TexImage2D never
// unpacks its payload; all are latched and reported back by GetIntegerv.
func PixelStorei(pname PixelStoreParam, param int32) {
	current("PixelStorei").issue(command{kind: cmdPixelStorei, i: [6]int32{int32(pname), param}})
}

func (c *Context) doPixelStorei(pname PixelStoreParam, param int32) {
	if int(pname) < 0 || int(pname) >= len(c.pixelStore) {
		fatalf("PixelStorei", "unknown pixel store parameter %d", int(pname))
	}
	c.pixelStore[pname] = param
}

// Viewport sets the screen-space rectangle the rasterizer maps NDC
// coordinates into (spec.md 4.5). Negative width or height is a usage
// violation.
func Viewport(x, y, w, h int) {
	current("Viewport").issue(command{kind: cmdViewport, i: [6]int32{int32(x), int32(y), int32(w), int32(h)}})
}

func (c *Context) doViewport(x, y, w, h int) {
	if w < 0 || h < 0 {
		fatalf("Viewport", "negative viewport size %dx%d", w, h)
	}
	c.viewport = viewportRect{x, y, w, h}
}

// GetIntegerv reports a small set of integer state values (spec.md 4.12):
// all twelve pixel-store parameters (unpack and pack), the viewport, the
// current matrix mode, and the max texture size constant.
func GetIntegerv(pname GetIntegervParam) [4]int32 {
	c := current("GetIntegerv")
	c.mu.Lock()
	defer c.mu.Unlock()
	switch pname {
	case QueryViewport:
		return [4]int32{int32(c.viewport.X), int32(c.viewport.Y), int32(c.viewport.W), int32(c.viewport.H)}
	case QueryMatrixMode:
		return [4]int32{int32(c.matrixMode)}
	case MaxTextureSize:
		return [4]int32{maxTextureSizeConst}
	case QueryUnpackSwapBytes, QueryUnpackLSBFirst, QueryUnpackRowLength, QueryUnpackSkipRows, QueryUnpackSkipPixels, QueryUnpackAlignment,
		QueryPackSwapBytes, QueryPackLSBFirst, QueryPackRowLength, QueryPackSkipRows, QueryPackSkipPixels, QueryPackAlignment:
		return [4]int32{c.pixelStore[pname-QueryUnpackSwapBytes]}
	}
	fatalf("GetIntegerv", "unknown parameter %d", int(pname))
	return [4]int32{}
}

// GetError always reports no error (spec.md 5): usage violations fail
// fatally at the call site instead of being queued for later polling.
func GetError() int32 {
	current("GetError")
	return 0
}
