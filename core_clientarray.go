// core_clientarray.go - client-side vertex/normal array pointers

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

/*
core_clientarray.go implements spec.md 4.10: VertexPointer/NormalPointer
register a caller-owned slice directly (no copy — the caller must keep it
alive, spec.md 9), EnableClientState/DisableClientState toggle whether
ArrayElement consults it, and ArrayElement pulls one vertex's worth of
floats out of the registered slice by index and feeds it through the same
Vertex3f/Normal3f path as immediate-mode calls. The registered slice is
addressed by index rather than copied: ownership stays with the caller.
*/

package glcore

// VertexPointer registers ptr as the vertex source for ArrayElement.
// size must be 3 (spec.md 4.10); any other size is a usage violation.
// ptr is read as tightly packed float32 values: the call takes no type or
// stride argument.
func VertexPointer(size int, ptr []float32) {
	c := current("VertexPointer")
	requireClientArrayShape("VertexPointer", size)
	c.mu.Lock()
	c.vertexArray.ptr = ptr
	c.vertexArray.size = size
	c.mu.Unlock()
}

// NormalPointer registers ptr as the normal source for ArrayElement.
func NormalPointer(ptr []float32) {
	c := current("NormalPointer")
	c.mu.Lock()
	c.normalArray.ptr = ptr
	c.normalArray.size = 3
	c.mu.Unlock()
}

func requireClientArrayShape(op string, size int) {
	if size != 3 {
		fatalf(op, "unsupported component size %d, only 3 is supported", size)
	}
}

// EnableClientState enables one of the client arrays (spec.md 4.10).
func EnableClientState(array ClientArray) {
	c := current("EnableClientState")
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clientArrayFor(array).enabled = true
}

// DisableClientState disables one of the client arrays (spec.md 4.10).
func DisableClientState(array ClientArray) {
	c := current("DisableClientState")
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clientArrayFor(array).enabled = false
}

func (c *Context) clientArrayFor(array ClientArray) *clientArrayState {
	switch array {
	case VertexArray:
		return &c.vertexArray
	case NormalArray:
		return &c.normalArray
	}
	fatalf("ClientState", "unknown client array %d", int(array))
	return nil
}

// ArrayElement feeds index's worth of data from the enabled client arrays
// through the same path as Vertex3f/Normal3f (spec.md 4.10). The normal
// array, if enabled, is applied before the vertex array so that the
// resulting vertex carries the matching normal, mirroring the
// Normal-then-Vertex ordering of immediate mode.
func ArrayElement(index int) {
	c := current("ArrayElement")
	c.mu.Lock()
	na := c.normalArray
	va := c.vertexArray
	c.mu.Unlock()

	if na.enabled {
		base := index * na.size
		if base+na.size > len(na.ptr) {
			fatalf("ArrayElement", "normal array index %d out of range", index)
		}
		Normal3f(na.ptr[base], na.ptr[base+1], na.ptr[base+2])
	}
	if va.enabled {
		base := index * va.size
		if base+va.size > len(va.ptr) {
			fatalf("ArrayElement", "vertex array index %d out of range", index)
		}
		Vertex3f(va.ptr[base], va.ptr[base+1], va.ptr[base+2])
	}
}
