// core_state.go - captured-only state: lighting, blending, culling

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

/*
core_state.go covers the legacy calls spec.md 1 explicitly places out of
scope for rendering effect — lighting, blending, face culling, shading
model and polygon mode — but which a complete emulation of the legacy
surface must still accept without failing (spec.md 4.11, "a caller built
against the legacy surface must not see new failures for calls the
original accepted"). Each is captured into a Context field and otherwise
inert: the same captured-but-unused shape as a fog or chroma-key shadow
register, latched because real software writes to it but never consulted
by the rendering path.
*/

package glcore

// Capability enum values for Enable/Disable (spec.md 4.11). Only a
// handful the legacy surface actually issues are named; anything else is
// still accepted (the argument is an opaque int32) but has no effect.
const (
	CapLighting  int32 = 0x0B50
	CapLight0    int32 = 0x4000
	CapDepthTest int32 = 0x0B71
	CapCullFace  int32 = 0x0B44
	CapBlend     int32 = 0x0BE2
	CapTexture2D int32 = 0x0DE1
)

type capturedState struct {
	caps         map[int32]bool
	blendSrc     int32
	blendDst     int32
	cullFace     int32
	shadeModel   int32
	polygonFace  int32
	polygonMode  int32
	lights       map[[2]int32]float32
	lightVecs    map[[2]int32][4]float32
	materialVecs map[[2]int32][4]float32
	texGen       map[[2]int32]float32
}

// Enable turns on a capability (spec.md 4.11). Captured only: depth
// testing is unconditionally active in this core (spec.md 4.6), so
// CapDepthTest has no further effect either way.
func Enable(cap int32) {
	current("Enable").issue(command{kind: cmdEnable, i: [6]int32{cap}})
}

// Disable turns off a capability (spec.md 4.11).
func Disable(cap int32) {
	current("Disable").issue(command{kind: cmdDisable, i: [6]int32{cap}})
}

func (c *Context) doEnableCap(cap int32, enabled bool) {
	c.ensureCaptured()
	c.captured.caps[cap] = enabled
}

// BlendFunc captures the blend factors (spec.md 4.11); blending is not
// performed by the rasterizer.
func BlendFunc(src, dst int32) {
	current("BlendFunc").issue(command{kind: cmdBlendFunc, i: [6]int32{src, dst}})
}

func (c *Context) doBlendFunc(src, dst int32) {
	c.ensureCaptured()
	c.captured.blendSrc, c.captured.blendDst = src, dst
}

// CullFace captures the culled face (spec.md 4.11); no culling is applied
// from it. The rasterizer fills only triangles with positive signed area
// (counter-clockwise on screen), whatever face is selected here.
func CullFace(mode int32) {
	current("CullFace").issue(command{kind: cmdCullFace, i: [6]int32{mode}})
}

func (c *Context) doCullFace(mode int32) {
	c.ensureCaptured()
	c.captured.cullFace = mode
}

// ShadeModel captures the shading model (spec.md 4.11); fragment color
// always comes from the first vertex's normal (spec.md 4.6 item 9)
// regardless of flat/smooth selection.
func ShadeModel(model int32) {
	current("ShadeModel").issue(command{kind: cmdShadeModel, i: [6]int32{model}})
}

func (c *Context) doShadeModel(model int32) {
	c.ensureCaptured()
	c.captured.shadeModel = model
}

// PolygonMode captures the rasterization mode (spec.md 4.11); this core
// only ever fills triangles.
func PolygonMode(face, mode int32) {
	current("PolygonMode").issue(command{kind: cmdPolygonMode, i: [6]int32{face, mode}})
}

func (c *Context) doPolygonMode(face, mode int32) {
	c.ensureCaptured()
	c.captured.polygonFace, c.captured.polygonMode = face, mode
}

// Lightf captures a scalar light parameter (spec.md 4.11).
func Lightf(light, pname int32, param float32) {
	current("Lightf").issue(command{kind: cmdLightf, i: [6]int32{light, pname}, f: [8]float32{param}})
}

func (c *Context) doLightf(light, pname int32, param float32) {
	c.ensureCaptured()
	c.captured.lights[[2]int32{light, pname}] = param
}

// Lightfv captures a vector light parameter (spec.md 4.11).
func Lightfv(light, pname int32, params [4]float32) {
	current("Lightfv").issue(command{kind: cmdLightfv, i: [6]int32{light, pname}, f: [8]float32{params[0], params[1], params[2], params[3]}})
}

func (c *Context) doLightfv(light, pname int32, params [4]float32) {
	c.ensureCaptured()
	c.captured.lightVecs[[2]int32{light, pname}] = params
}

// Materialfv captures a material parameter (spec.md 4.11).
func Materialfv(face, pname int32, params [4]float32) {
	current("Materialfv").issue(command{kind: cmdMaterialfv, i: [6]int32{face, pname}, f: [8]float32{params[0], params[1], params[2], params[3]}})
}

func (c *Context) doMaterialfv(face, pname int32, params [4]float32) {
	c.ensureCaptured()
	c.captured.materialVecs[[2]int32{face, pname}] = params
}

// TexGenf captures a texture-coordinate-generation parameter (spec.md 4.11).
func TexGenf(coord, pname int32, param float32) {
	current("TexGenf").issue(command{kind: cmdTexGenf, i: [6]int32{coord, pname}, f: [8]float32{param}})
}

func (c *Context) doTexGenf(coord, pname int32, param float32) {
	c.ensureCaptured()
	c.captured.texGen[[2]int32{coord, pname}] = param
}

func (c *Context) ensureCaptured() {
	if c.captured.caps == nil {
		c.captured = capturedState{
			caps:         make(map[int32]bool),
			lights:       make(map[[2]int32]float32),
			lightVecs:    make(map[[2]int32][4]float32),
			materialVecs: make(map[[2]int32][4]float32),
			texGen:       make(map[[2]int32]float32),
		}
	}
}
