package glcore

import "testing"

func TestMat4Identity(t *testing.T) {
	var m Mat4
	m.Identity()
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			want := float32(0)
			if col == row {
				want = 1
			}
			if m[col][row] != want {
				t.Fatalf("identity[%d][%d] = %v, want %v", col, row, m[col][row], want)
			}
		}
	}
}

func TestMat4MulIdentity(t *testing.T) {
	var id, a, out Mat4
	id.Identity()
	a.Translation(1, 2, 3)
	out.Mul(&id, &a)
	if out != a {
		t.Fatalf("identity . a != a: %v vs %v", out, a)
	}
	out.Mul(&a, &id)
	if out != a {
		t.Fatalf("a . identity != a: %v vs %v", out, a)
	}
}

func TestMat4TranslationAppliesToVec4(t *testing.T) {
	var m Mat4
	m.Translation(1, 2, 3)
	var v, out Vec4
	v = Vec4{0, 0, 0, 1}
	out.Mul(&m, &v)
	want := Vec4{1, 2, 3, 1}
	if out != want {
		t.Fatalf("translated origin = %v, want %v", out, want)
	}
}

func TestMat4OrthoMapsBoxToClipCube(t *testing.T) {
	var m Mat4
	m.Ortho(-1, 1, -1, 1, -1, 1)
	var v, out Vec4
	v = Vec4{1, 1, -1, 1}
	out.Mul(&m, &v)
	want := Vec4{1, 1, 1, 1}
	if out != want {
		t.Fatalf("ortho(far corner) = %v, want %v", out, want)
	}

	v = Vec4{-1, -1, 1, 1}
	out.Mul(&m, &v)
	want = Vec4{-1, -1, -1, 1}
	if out != want {
		t.Fatalf("ortho(near corner) = %v, want %v", out, want)
	}
}

func TestVec3DotAndAdd(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}
	if got := a.Dot(&b); got != 32 {
		t.Fatalf("dot = %v, want 32", got)
	}
	var sum Vec3
	sum.Add(&a, &b)
	if sum != (Vec3{5, 7, 9}) {
		t.Fatalf("sum = %v, want {5 7 9}", sum)
	}
}
