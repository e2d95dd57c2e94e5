package glcore

import "testing"

// fakeSurface captures whatever Present hands it for assertions.
type fakeSurface struct {
	pixels []uint32
	width  int
	height int
	calls  int
}

func (f *fakeSurface) Present(pixels []uint32, width, height int) {
	f.pixels = append([]uint32(nil), pixels...)
	f.width, f.height = width, height
	f.calls++
}

func withContext(t *testing.T, fn func()) {
	t.Helper()
	Attach()
	defer Detach()
	fn()
}

func TestThreadAttachDetachAreNoops(t *testing.T) {
	withContext(t, func() {
		ThreadAttach()
		ThreadDetach()
		// Context must still be usable afterwards.
		Clear(ClearColorBit)
	})
}

func TestNoContextIsFatal(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected a panic calling an API with no attached context")
		}
	}()
	Clear(ClearColorBit)
}

func TestClearOnlyFrame(t *testing.T) {
	withContext(t, func() {
		surf := &fakeSurface{}
		ClearColor(1, 0, 0, 1)
		Clear(ClearColorBit | ClearDepthBit)
		Present(surf)

		if surf.calls != 1 {
			t.Fatalf("calls = %d, want 1", surf.calls)
		}
		want := uint32(0xFFFF0000)
		for i, p := range surf.pixels {
			if p != want {
				t.Fatalf("pixel %d = %#x, want %#x", i, p, want)
			}
		}
	})
}

func TestUnitTriangleRasterizes(t *testing.T) {
	withContext(t, func() {
		surf := &fakeSurface{}
		SetMatrixMode(Projection)
		LoadIdentity()
		Ortho(-1, 1, -1, 1, -1, 1)
		SetMatrixMode(ModelView)
		LoadIdentity()

		ClearColor(0, 0, 0, 0)
		Clear(ClearColorBit | ClearDepthBit)

		Begin(Triangles)
		Normal3f(0, 0, 1)
		Vertex3f(-0.5, -0.5, 0)
		Vertex3f(0.5, -0.5, 0)
		Vertex3f(0, 0.5, 0)
		End()
		Present(surf)

		centerIdx := (SurfaceHeight/2)*SurfaceWidth + SurfaceWidth/2
		if surf.pixels[centerIdx] == 0 {
			t.Fatalf("center pixel untouched: %#x", surf.pixels[centerIdx])
		}

		cornerIdx := 0
		if surf.pixels[cornerIdx] != 0 {
			t.Fatalf("corner pixel outside the triangle was touched: %#x", surf.pixels[cornerIdx])
		}
	})
}

func TestDepthOcclusion(t *testing.T) {
	withContext(t, func() {
		surf := &fakeSurface{}
		SetMatrixMode(Projection)
		LoadIdentity()
		Ortho(-1, 1, -1, 1, -1, 1)
		SetMatrixMode(ModelView)
		LoadIdentity()
		Clear(ClearDepthBit)

		// Drawn first, maps to the larger (farther) depth value.
		Begin(Triangles)
		Normal3f(1, 0, 0)
		Vertex3f(-1, -1, -0.5)
		Vertex3f(1, -1, -0.5)
		Vertex3f(0, 1, -0.5)
		End()

		// Drawn second, maps to the smaller (nearer) depth value and
		// should win the depth test.
		Begin(Triangles)
		Normal3f(0, 1, 0)
		Vertex3f(-1, -1, 0.5)
		Vertex3f(1, -1, 0.5)
		Vertex3f(0, 1, 0.5)
		End()

		Present(surf)
		centerIdx := (SurfaceHeight/2)*SurfaceWidth + SurfaceWidth/2
		got := surf.pixels[centerIdx]
		want := normalToARGB(Vec3{0, 1, 0})
		if got != want {
			t.Fatalf("center pixel = %#x, want %#x (near triangle's color)", got, want)
		}
	})
}

func TestQuadEmitsTwoTriangles(t *testing.T) {
	withContext(t, func() {
		surf := &fakeSurface{}
		SetMatrixMode(Projection)
		LoadIdentity()
		Ortho(-1, 1, -1, 1, -1, 1)
		SetMatrixMode(ModelView)
		LoadIdentity()
		Clear(ClearColorBit | ClearDepthBit)

		Begin(Quads)
		Normal3f(0, 0, 1)
		Vertex3f(-0.8, -0.8, 0)
		Vertex3f(0.8, -0.8, 0)
		Vertex3f(0.8, 0.8, 0)
		Vertex3f(-0.8, 0.8, 0)
		End()
		Present(surf)

		centerIdx := (SurfaceHeight/2)*SurfaceWidth + SurfaceWidth/2
		if surf.pixels[centerIdx] == 0 {
			t.Fatal("quad center untouched")
		}
		// Comfortably inside the quad's margin from the screen edge
		// (0.8 NDC leaves roughly a 64px/48px margin on this viewport).
		insideQuad := 100*SurfaceWidth + 100
		if surf.pixels[insideQuad] == 0 {
			t.Fatal("quad corner region untouched, fan triangles may not cover the full quad")
		}
	})
}

func TestEndRejectsMismatchedVertexCount(t *testing.T) {
	withContext(t, func() {
		defer func() {
			if r := recover(); r == nil {
				t.Fatal("expected a panic for a triangle with 2 vertices")
			}
		}()
		Begin(Triangles)
		Vertex3f(0, 0, 0)
		Vertex3f(1, 0, 0)
		End()
	})
}

func TestBeginTwiceIsFatal(t *testing.T) {
	withContext(t, func() {
		defer func() {
			if r := recover(); r == nil {
				t.Fatal("expected a panic calling Begin while a primitive is active")
			}
		}()
		Begin(Triangles)
		Begin(Triangles)
	})
}

func TestPopMatrixUnderflowIsFatal(t *testing.T) {
	withContext(t, func() {
		defer func() {
			if r := recover(); r == nil {
				t.Fatal("expected a panic popping an empty matrix stack")
			}
		}()
		PopMatrix()
	})
}

func TestMatrixMutationDuringPrimitiveIsFatal(t *testing.T) {
	withContext(t, func() {
		defer func() {
			if r := recover(); r == nil {
				t.Fatal("expected a panic mutating a matrix between Begin and End")
			}
		}()
		Begin(Triangles)
		LoadIdentity()
	})
}

func TestTriangleBehindNearPlaneIsClipped(t *testing.T) {
	withContext(t, func() {
		surf := &fakeSurface{}
		SetMatrixMode(Projection)
		LoadIdentity()
		Ortho(-1, 1, -1, 1, -1, 1)
		SetMatrixMode(ModelView)
		LoadIdentity()
		Clear(ClearColorBit | ClearDepthBit)

		Begin(Triangles)
		Normal3f(0, 0, 1)
		Vertex3f(-0.5, -0.5, 5) // ortho negates z: clip z = -5 < -w, outside the near plane
		Vertex3f(0.5, -0.5, 5)
		Vertex3f(0, 0.5, 5)
		End()
		Present(surf)

		for i, p := range surf.pixels {
			if p != 0 {
				t.Fatalf("pixel %d = %#x, expected the triangle to be fully clipped", i, p)
			}
		}
	})
}
