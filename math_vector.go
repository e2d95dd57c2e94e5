// math_vector.go - vector primitives for the fixed-function pipeline

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package glcore

// Vec3 is a 3-component vector of float32, used for normals.
type Vec3 [3]float32

// Add sets v to contain l + r.
func (v *Vec3) Add(l, r *Vec3) {
	for i := range v {
		v[i] = l[i] + r[i]
	}
}

// Dot returns v . w.
func (v *Vec3) Dot(w *Vec3) (d float32) {
	for i := range v {
		d += v[i] * w[i]
	}
	return
}

// Vec4 is a 4-component vector of float32, used for homogeneous positions
// and texture coordinates.
type Vec4 [4]float32

// Mul sets v to contain m . w (matrix-vector product, m applied on the left).
func (v *Vec4) Mul(m *Mat4, w *Vec4) {
	*v = Vec4{}
	for i := range v {
		for j := range v {
			v[i] += m[j][i] * w[j]
		}
	}
}
