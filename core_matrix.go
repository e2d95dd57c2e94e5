// core_matrix.go - matrix mode, stack and transform operations

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package glcore

// SetMatrixMode selects the matrix subsequent operations apply to (spec.md 4.2).
func SetMatrixMode(mode MatrixMode) {
	current("MatrixMode").issue(command{kind: cmdMatrixMode, i: [6]int32{int32(mode)}})
}

func (c *Context) doMatrixMode(mode MatrixMode) {
	c.requireNoActivePrimitive("MatrixMode")
	c.matrixMode = mode
}

// LoadIdentity overwrites the current matrix with the identity (spec.md 4.2).
func LoadIdentity() {
	current("LoadIdentity").issue(command{kind: cmdLoadIdentity})
}

func (c *Context) doLoadIdentity() {
	c.requireNoActivePrimitive("LoadIdentity")
	c.activeMatrix().Identity()
}

// MultMatrixf right-multiplies the current matrix by m, given in
// column-major order matching the legacy API (spec.md 4.2).
func MultMatrixf(m [16]float32) {
	current("MultMatrixf").issue(command{kind: cmdMultMatrix, mat: matFromColumnMajor(m)})
}

// MultMatrixd is the double-precision variant of MultMatrixf.
func MultMatrixd(m [16]float64) {
	var f [16]float32
	for i, v := range m {
		f[i] = float32(v)
	}
	current("MultMatrixd").issue(command{kind: cmdMultMatrix, mat: matFromColumnMajor(f)})
}

func matFromColumnMajor(m [16]float32) Mat4 {
	var out Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			out[col][row] = m[col*4+row]
		}
	}
	return out
}

func (c *Context) doMultMatrix(m *Mat4) {
	c.requireNoActivePrimitive("MultMatrix")
	cur := c.activeMatrix()
	var out Mat4
	out.Mul(cur, m)
	*cur = out
}

// Ortho produces the standard orthographic projection matrix mapping the
// box to the [-1,1]^3 clip cube and pre-multiplies it onto the current
// matrix (spec.md 4.2).
func Ortho(l, r, b, t, n, f float64) {
	current("Ortho").issue(command{kind: cmdOrtho, f: [8]float32{
		float32(l), float32(r), float32(b), float32(t), float32(n), float32(f),
	}})
}

func (c *Context) doOrtho(l, r, b, t, n, f float32) {
	c.requireNoActivePrimitive("Ortho")
	var o Mat4
	o.Ortho(l, r, b, t, n, f)
	cur := c.activeMatrix()
	var out Mat4
	out.Mul(cur, &o)
	*cur = out
}

// Translated pre-multiplies the current matrix by a translation (spec.md 4.2).
func Translated(x, y, z float64) {
	current("Translated").issue(command{kind: cmdTranslate, f: [8]float32{
		float32(x), float32(y), float32(z),
	}})
}

func (c *Context) doTranslate(x, y, z float32) {
	c.requireNoActivePrimitive("Translate")
	var t Mat4
	t.Translation(x, y, z)
	cur := c.activeMatrix()
	var out Mat4
	out.Mul(cur, &t)
	*cur = out
}

// PushMatrix copies the current matrix onto the current mode's stack
// (spec.md 4.2).
func PushMatrix() {
	current("PushMatrix").issue(command{kind: cmdPushMatrix})
}

func (c *Context) doPushMatrix() {
	c.requireNoActivePrimitive("PushMatrix")
	s := c.stack()
	*s = append(*s, *c.activeMatrix())
}

// PopMatrix restores the matrix on top of the current mode's stack
// (spec.md 4.2). Popping below empty is fatal (spec.md 3).
func PopMatrix() {
	current("PopMatrix").issue(command{kind: cmdPopMatrix})
}

func (c *Context) doPopMatrix() {
	c.requireNoActivePrimitive("PopMatrix")
	s := c.stack()
	if len(*s) == 0 {
		fatal("PopMatrix", "matrix stack underflow")
	}
	top := len(*s) - 1
	*c.activeMatrix() = (*s)[top]
	*s = (*s)[:top]
}

// requireNoActivePrimitive enforces the invariant that matrix-mutating,
// display-list-boundary, and Begin calls are invalid between Begin and End
// (spec.md 3).
func (c *Context) requireNoActivePrimitive(op string) {
	if c.primitiveActive {
		fatalf(op, "invalid between Begin and End")
	}
}
