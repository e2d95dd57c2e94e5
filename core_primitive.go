// core_primitive.go - Begin/End primitive assembly state machine

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

/*
core_primitive.go implements spec.md 4.3: Begin sets the active primitive
mode and fails fatally if one is already active; each Vertex snapshots the
current normal and tex-coord and appends a vertex record; End transforms
every accumulated vertex by the matrices snapshotted at End time (not at
each Vertex), validates the count against the mode, and emits triangles.
*/

package glcore

// vertex is the assembly record described in spec.md 3: homogeneous
// position, normal and tex-coord, pushed on each Vertex call and cleared
// once consumed at End.
type vertex struct {
	pos      Vec4
	normal   Vec3
	texCoord Vec4
}

// clipTriangle is a triangle in clip space, carrying the flat-shading
// normal taken from its first vertex (spec.md 4.6 item 9: "the first
// vertex's normal is mapped to ARGB... a placeholder surface-normal
// visualization standing in for lighting/shading").
type clipTriangle struct {
	clip       [3]Vec4
	flatNormal Vec3
}

// Begin sets the active primitive mode (spec.md 4.3).
func Begin(mode PrimitiveMode) {
	current("Begin").issue(command{kind: cmdBegin, i: [6]int32{int32(mode)}})
}

func (c *Context) doBegin(mode PrimitiveMode) {
	c.requireNoActivePrimitive("Begin")
	c.primitiveActive = true
	c.primitiveMode = mode
	c.verts = c.verts[:0]
}

// Vertex3f appends a vertex carrying the current normal and tex-coord
// attributes (spec.md 3, 4.3).
func Vertex3f(x, y, z float32) {
	current("Vertex3f").issue(command{kind: cmdVertex3f, f: [8]float32{x, y, z}})
}

func (c *Context) doVertex3f(x, y, z float32) {
	if !c.primitiveActive {
		fatal("Vertex3f", "called outside Begin/End")
	}
	c.verts = append(c.verts, vertex{
		pos:      Vec4{x, y, z, 1},
		normal:   c.curNormal,
		texCoord: c.curTexCoord,
	})
}

// Normal3f sets the current normal attribute, sampled by subsequent
// Vertex calls (spec.md 3).
func Normal3f(x, y, z float32) {
	current("Normal3f").issue(command{kind: cmdNormal3f, f: [8]float32{x, y, z}})
}

func (c *Context) doNormal3f(x, y, z float32) {
	c.curNormal = Vec3{x, y, z}
}

// Normal3fv is the vector-argument form of Normal3f.
func Normal3fv(v [3]float32) {
	Normal3f(v[0], v[1], v[2])
}

// Color4f is captured but has no rendering effect: spec.md 4.6 derives
// fragment color solely from the first vertex's normal (lighting and
// per-vertex color are out of scope, spec.md 1).
func Color4f(r, g, b, a float32) {
	current("Color4f").issue(command{kind: cmdColor4f, f: [8]float32{r, g, b, a}})
}

func (c *Context) doColor4f(r, g, b, a float32) {
	_ = [4]float32{r, g, b, a} // captured, no rendering effect (spec.md 1)
}

// TexCoord2f sets the current tex-coord attribute, sampled by subsequent
// Vertex calls. Texturing is state-tracking only (spec.md 4.9).
func TexCoord2f(s, t float32) {
	current("TexCoord2f").issue(command{kind: cmdTexCoord2f, f: [8]float32{s, t}})
}

func (c *Context) doTexCoord2f(s, t float32) {
	c.curTexCoord = Vec4{s, t, 0, 1}
}

// MultiTexCoord2fARB is the multitexture form of TexCoord2f. Only one
// tex-coord is tracked per vertex (texturing is state-only, spec.md 4.9),
// so the texture-unit argument is captured but does not select a separate
// slot.
func MultiTexCoord2fARB(target int32, s, t float32) {
	current("MultiTexCoord2fARB").issue(command{kind: cmdMultiTexCoord2f, i: [6]int32{target}, f: [8]float32{s, t}})
}

func (c *Context) doMultiTexCoord2f(target int32, s, t float32) {
	c.curTexCoord = Vec4{s, t, 0, 1}
}

// End runs the assembly pipeline (spec.md 4.3): transform every
// accumulated vertex by the matrices snapshotted now, validate the vertex
// count against the active mode, emit triangles, then clear the
// accumulator and the active mode.
func End() {
	current("End").issue(command{kind: cmdEnd})
}

func (c *Context) doEnd() {
	if !c.primitiveActive {
		fatal("End", "called without a matching Begin")
	}

	n := verticesPerPrimitive(c.primitiveMode)
	if len(c.verts)%n != 0 {
		fatalf("End", "vertex count %d is not a multiple of %d for the active primitive", len(c.verts), n)
	}

	mvp := Mat4{}
	mvp.Mul(&c.projection, &c.modelView)

	clipVerts := make([]vertex, len(c.verts))
	for i, v := range c.verts {
		var clip Vec4
		clip.Mul(&mvp, &v.pos)
		clipVerts[i] = vertex{pos: clip, normal: v.normal, texCoord: v.texCoord}
	}

	switch c.primitiveMode {
	case Triangles:
		for i := 0; i+3 <= len(clipVerts); i += 3 {
			c.emitTriangle(clipVerts[i], clipVerts[i+1], clipVerts[i+2])
		}
	case Quads:
		for i := 0; i+4 <= len(clipVerts); i += 4 {
			q := clipVerts[i : i+4]
			c.emitTriangle(q[0], q[1], q[2])
			c.emitTriangle(q[2], q[3], q[0])
		}
	}

	c.verts = c.verts[:0]
	c.primitiveActive = false
}

// emitTriangle applies the clipping policy of spec.md 4.4 and rasterizes
// what survives.
func (c *Context) emitTriangle(v0, v1, v2 vertex) {
	for _, v := range [3]vertex{v0, v1, v2} {
		if v.pos[2] < -v.pos[3] || v.pos[2] > v.pos[3] {
			return
		}
	}
	tri := clipTriangle{
		clip:       [3]Vec4{v0.pos, v1.pos, v2.pos},
		flatNormal: v0.normal,
	}
	c.rasterize(&tri)
}
