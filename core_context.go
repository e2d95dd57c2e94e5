// core_context.go - process-wide rendering context and lifecycle

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

/*
core_context.go holds the single process-wide Context required by spec.md 3
and 5: the legacy API is single-threaded by contract, so the context is
modeled as a package-level pointer guarded by a mutex, with an explicit
"absent" state so that any operation invoked against a detached context
fails the way spec.md 5 requires: one owner threaded through the whole
process, behind a mutex-guarded struct.
*/

package glcore

import "sync"

var (
	ctxMu sync.Mutex
	ctx   *Context
)

// Context holds all pipeline state: buffers, matrices, display lists,
// textures, the primitive-assembly accumulator, client arrays and
// pixel-store parameters (spec.md 3).
type Context struct {
	mu sync.Mutex

	colorBuffer []uint32  // back buffer, row-major ARGB, W*H
	depthBuffer []float32 // W*H, cleared to 1.0

	clearColor [4]float32
	depthMask  bool

	matrixMode MatrixMode
	modelView  Mat4
	projection Mat4
	// Per-mode matrix stacks (spec.md 9 open question: matrix stack
	// scoping). See DESIGN.md for the rationale.
	modelViewStack  []Mat4
	projectionStack []Mat4

	lists       map[int]*displayList
	nextList    int
	activeList  int // displayListNone when not compiling
	activeMode  ListMode
	callDepth   int // CallList re-entrancy depth, guards against cycles

	textures    map[int]*texture
	nextTexture int
	boundTex2D  int

	primitiveActive bool
	primitiveMode   PrimitiveMode
	verts           []vertex

	curNormal   Vec3
	curTexCoord Vec4

	vertexArray clientArrayState
	normalArray clientArrayState

	pixelStore [12]int32 // indexed by PixelStoreParam

	viewport viewportRect

	captured capturedState
}

type viewportRect struct {
	X, Y, W, H int
}

// clientArrayState describes one client-array pointer (spec.md 3, 4.10).
// The pointer is unowned external memory: the caller must keep it alive
// for as long as ArrayElement may dereference it (spec.md 9).
type clientArrayState struct {
	enabled bool
	ptr     []float32 // tightly packed (stride must be zero, spec.md 4.10)
	size    int        // element count per vertex (must be 3, spec.md 4.10)
}

// Attach creates the process-wide context, matching host process-attach
// (spec.md 6). Any previously attached context is discarded.
func Attach() {
	ctxMu.Lock()
	defer ctxMu.Unlock()
	c := &Context{
		lists:      make(map[int]*displayList),
		nextList:   1,
		activeList: displayListNone,
		textures:   make(map[int]*texture),
		depthMask:  true,
	}
	c.colorBuffer = make([]uint32, SurfaceWidth*SurfaceHeight)
	c.depthBuffer = make([]float32, SurfaceWidth*SurfaceHeight)
	for i := range c.depthBuffer {
		c.depthBuffer[i] = 1.0
	}
	c.modelView.Identity()
	c.projection.Identity()
	c.viewport = viewportRect{0, 0, SurfaceWidth, SurfaceHeight}
	c.pixelStore[UnpackAlignment] = 4
	c.pixelStore[PackAlignment] = 4
	ctx = c
}

// Detach destroys the process-wide context, matching host process-detach.
func Detach() {
	ctxMu.Lock()
	defer ctxMu.Unlock()
	ctx = nil
}

// ThreadAttach is the no-op host thread-attach signal (spec.md 6): the
// context is process-wide, not per-thread, so there is nothing to set up.
func ThreadAttach() {}

// ThreadDetach is the no-op host thread-detach signal (spec.md 6).
func ThreadDetach() {}

// current returns the attached context or panics fatally if none is
// attached (spec.md 5: "Any operation invoked against an absent context
// is fatal").
func current(op string) *Context {
	ctxMu.Lock()
	c := ctx
	ctxMu.Unlock()
	if c == nil {
		fatal(op, "no context attached")
	}
	return c
}

// stack returns the matrix stack for the context's current matrix mode.
func (c *Context) stack() *[]Mat4 {
	switch c.matrixMode {
	case ModelView:
		return &c.modelViewStack
	case Projection:
		return &c.projectionStack
	}
	fatalf("MatrixMode", "invalid matrix mode %d", int(c.matrixMode))
	return nil
}

// activeMatrix returns a pointer to the matrix selected by the current
// matrix mode (spec.md 4.2).
func (c *Context) activeMatrix() *Mat4 {
	switch c.matrixMode {
	case ModelView:
		return &c.modelView
	case Projection:
		return &c.projection
	}
	fatalf("MatrixMode", "invalid matrix mode %d", int(c.matrixMode))
	return nil
}
