// math_matrix.go - 4x4 matrix primitives for the fixed-function pipeline

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package glcore

// Mat4 is a column-major 4x4 matrix of float32: m[col][row]. This matches
// the legacy API's column-major convention so MultMatrix's right-multiply
// semantics (spec.md 4.2) fall out of plain Mul.
type Mat4 [4]Vec4

// Identity sets m to the identity matrix.
func (m *Mat4) Identity() {
	*m = Mat4{{1}, {0, 1}, {0, 0, 1}, {0, 0, 0, 1}}
}

// Mul sets m to contain l . r.
func (m *Mat4) Mul(l, r *Mat4) {
	var out Mat4
	for i := range out {
		for j := range out {
			var s float32
			for k := range out {
				s += l[k][j] * r[i][k]
			}
			out[i][j] = s
		}
	}
	*m = out
}

// Translation sets m to a translation matrix by (x, y, z).
func (m *Mat4) Translation(x, y, z float32) {
	m.Identity()
	m[3][0] = x
	m[3][1] = y
	m[3][2] = z
}

// Ortho sets m to the standard orthographic projection matrix mapping the
// box [l,r]x[b,t]x[-f,-n] to the [-1,1]^3 clip cube (spec.md 4.2).
func (m *Mat4) Ortho(l, r, b, t, n, f float32) {
	*m = Mat4{}
	m[0][0] = 2 / (r - l)
	m[1][1] = 2 / (t - b)
	m[2][2] = -2 / (f - n)
	m[3][0] = -(r + l) / (r - l)
	m[3][1] = -(t + b) / (t - b)
	m[3][2] = -(f + n) / (f - n)
	m[3][3] = 1
}
