// core_constants.go - public enums for the legacy immediate-mode API surface

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

/*
core_constants.go mirrors the small slice of the legacy fixed-function API
enum space that this core actually observes (spec.md 6). Names follow the
legacy API's own spelling; the numeric values of the typed enums below are
this package's own, numbered from zero, and do not equal the legacy API's
enum values.
*/

package glcore

// Fixed output surface dimensions (spec.md 2).
const (
	SurfaceWidth  = 640
	SurfaceHeight = 480
)

// MatrixMode selects which of the two named matrices subsequent matrix
// operations apply to (spec.md 4.2).
type MatrixMode int

const (
	ModelView MatrixMode = iota
	Projection
)

// PrimitiveMode selects the primitive being assembled between Begin/End
// (spec.md 4.3).
type PrimitiveMode int

const (
	Triangles PrimitiveMode = iota
	Quads
)

// verticesPerPrimitive returns the vertex count End requires for mode.
func verticesPerPrimitive(mode PrimitiveMode) int {
	switch mode {
	case Triangles:
		return 3
	case Quads:
		return 4
	}
	panic(fatalValue("Begin", "unsupported primitive mode %d", int(mode)))
}

// ListMode selects how NewList compiles a display list (spec.md 4.8).
type ListMode int

const (
	Compile ListMode = iota
	CompileAndExecute
)

// ClearMask is a bitmask passed to Clear (spec.md 4.7).
type ClearMask int

const (
	ClearColorBit ClearMask = 1 << iota
	ClearDepthBit
)

// TextureFilter is the min/mag filter recorded for a texture (spec.md 4.9).
type TextureFilter int

const (
	FilterLinear TextureFilter = iota
	FilterLinearMipmapNearest
)

// TextureTarget identifies the texture binding point. Only the 2D target
// is observed (spec.md 4.9).
type TextureTarget int

const (
	Texture2D TextureTarget = iota
)

// ClientArray identifies which client-array pointer a client-state call
// addresses (spec.md 3, 4.10).
type ClientArray int

const (
	VertexArray ClientArray = iota
	NormalArray
)

// PixelStoreParam names a PixelStorei parameter (spec.md 6).
type PixelStoreParam int

const (
	UnpackSwapBytes PixelStoreParam = iota
	UnpackLSBFirst
	UnpackRowLength
	UnpackSkipRows
	UnpackSkipPixels
	UnpackAlignment
	PackSwapBytes
	PackLSBFirst
	PackRowLength
	PackSkipRows
	PackSkipPixels
	PackAlignment
)

// GetIntegervParam names a query recognized by GetIntegerv (spec.md 6).
type GetIntegervParam int

const (
	MaxTextureSize GetIntegervParam = iota
	QueryUnpackSwapBytes
	QueryUnpackLSBFirst
	QueryUnpackRowLength
	QueryUnpackSkipRows
	QueryUnpackSkipPixels
	QueryUnpackAlignment
	QueryPackSwapBytes
	QueryPackLSBFirst
	QueryPackRowLength
	QueryPackSkipRows
	QueryPackSkipPixels
	QueryPackAlignment
	QueryViewport
	QueryMatrixMode
)

// maxTextureSizeConst is the constant MaxTextureSize reports (spec.md 6).
const maxTextureSizeConst = 4096

// displayListNone is the reserved "no active list" name (spec.md 3).
const displayListNone = 0

// maxCallListDepth bounds CallList recursion. The source does not detect
// cycles (spec.md 9); a depth cap turns an accidental cycle into a fatal
// error instead of a stack overflow.
const maxCallListDepth = 64
