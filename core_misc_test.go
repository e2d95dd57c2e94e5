package glcore

import "testing"

func TestUnitTriangleExactColorAndClearedCorner(t *testing.T) {
	withContext(t, func() {
		surf := &fakeSurface{}
		Viewport(0, 0, SurfaceWidth, SurfaceHeight)
		SetMatrixMode(Projection)
		LoadIdentity()
		Ortho(-1, 1, -1, 1, -1, 1)
		SetMatrixMode(ModelView)
		LoadIdentity()

		ClearColor(0, 0, 0, 0)
		Clear(ClearColorBit | ClearDepthBit)

		Begin(Triangles)
		Normal3f(0, 0, 1)
		Vertex3f(-1, -1, 0)
		Vertex3f(1, -1, 0)
		Vertex3f(0, 1, 0)
		End()
		Present(surf)

		centerIdx := 240*SurfaceWidth + 320
		want := uint32(0xFF8080FF)
		if got := surf.pixels[centerIdx]; got != want {
			t.Fatalf("center pixel = %#x, want %#x", got, want)
		}
		if got := surf.pixels[0]; got != 0 {
			t.Fatalf("corner pixel = %#x, want the clear color 0", got)
		}
	})
}

func TestZeroSizeViewportEmitsNoFragments(t *testing.T) {
	withContext(t, func() {
		surf := &fakeSurface{}
		Viewport(0, 0, 0, 0)
		SetMatrixMode(Projection)
		LoadIdentity()
		Ortho(-1, 1, -1, 1, -1, 1)
		SetMatrixMode(ModelView)
		LoadIdentity()
		Clear(ClearColorBit | ClearDepthBit)

		Begin(Triangles)
		Normal3f(0, 0, 1)
		Vertex3f(-1, -1, 0)
		Vertex3f(1, -1, 0)
		Vertex3f(0, 1, 0)
		End()
		Present(surf)

		for i, p := range surf.pixels {
			if p != 0 {
				t.Fatalf("pixel %d = %#x, expected a zero-size viewport to emit nothing", i, p)
			}
		}
	})
}

func TestDegenerateTriangleEmitsNoFragments(t *testing.T) {
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
		Vertex3f(-1, -1, 0)
		Vertex3f(1, -1, 0)
		Vertex3f(-1, -1, 0) // duplicate of the first vertex: zero area
		End()
		Present(surf)

		for i, p := range surf.pixels {
			if p != 0 {
				t.Fatalf("pixel %d = %#x, expected a degenerate triangle to emit nothing", i, p)
			}
		}
	})
}

func TestClientArrayArrayElement(t *testing.T) {
	withContext(t, func() {
		SetMatrixMode(Projection)
		LoadIdentity()
		Ortho(-1, 1, -1, 1, -1, 1)
		SetMatrixMode(ModelView)
		LoadIdentity()

		verts := []float32{
			-1, -1, 0,
			1, -1, 0,
			0, 1, 0,
		}
		normals := []float32{
			0, 0, 1,
			0, 0, 1,
			0, 0, 1,
		}
		VertexPointer(3, verts)
		NormalPointer(normals)
		EnableClientState(VertexArray)
		EnableClientState(NormalArray)

		surf := &fakeSurface{}
		ClearColor(0, 0, 0, 0)
		Clear(ClearColorBit | ClearDepthBit)

		Begin(Triangles)
		ArrayElement(0)
		ArrayElement(1)
		ArrayElement(2)
		End()
		Present(surf)

		centerIdx := 240*SurfaceWidth + 320
		want := normalToARGB(Vec3{0, 0, 1})
		if got := surf.pixels[centerIdx]; got != want {
			t.Fatalf("center pixel = %#x, want %#x", got, want)
		}
	})
}

func TestVertexPointerRejectsUnsupportedSize(t *testing.T) {
	withContext(t, func() {
		defer func() {
			if r := recover(); r == nil {
				t.Fatal("expected a panic for an unsupported VertexPointer size")
			}
		}()
		VertexPointer(2, []float32{0, 0, 0, 0})
	})
}

func TestTextureLifecycle(t *testing.T) {
	withContext(t, func() {
		names := GenTextures(2)
		if len(names) != 2 || names[0] == names[1] {
			t.Fatalf("GenTextures returned %v, want 2 distinct names", names)
		}
		BindTexture(Texture2D, names[0])
		TexParameteri(Texture2D, texParamMinFilter, int32(FilterLinearMipmapNearest))
		TexImage2D(Texture2D, 4, 4, make([]byte, 4*4*4))

		c := current("test")
		tex := c.textures[names[0]]
		if tex.width != 4 || tex.height != 4 {
			t.Fatalf("texture dims = %dx%d, want 4x4", tex.width, tex.height)
		}
		if tex.minFilter != FilterLinearMipmapNearest {
			t.Fatalf("minFilter = %v, want %v", tex.minFilter, FilterLinearMipmapNearest)
		}
	})
}

func TestBindUnreservedTextureIsFatal(t *testing.T) {
	withContext(t, func() {
		defer func() {
			if r := recover(); r == nil {
				t.Fatal("expected a panic binding an unreserved texture name")
			}
		}()
		BindTexture(Texture2D, 42)
	})
}

func TestGetIntegervViewport(t *testing.T) {
	withContext(t, func() {
		Viewport(1, 2, 3, 4)
		got := GetIntegerv(QueryViewport)
		want := [4]int32{1, 2, 3, 4}
		if got != want {
			t.Fatalf("GetIntegerv(QueryViewport) = %v, want %v", got, want)
		}
	})
}

// TestGetIntegervPixelStoreParams exercises every PixelStorei/GetIntegerv
// pixel-store parameter, unpack and pack alike: PixelStorei latches each
// one into Context.pixelStore and GetIntegerv must read every one of them
// back (spec.md 6: "unpack/pack swap-bytes ... alignment").
func TestGetIntegervPixelStoreParams(t *testing.T) {
	withContext(t, func() {
		params := []struct {
			set   PixelStoreParam
			query GetIntegervParam
		}{
			{UnpackSwapBytes, QueryUnpackSwapBytes},
			{UnpackLSBFirst, QueryUnpackLSBFirst},
			{UnpackRowLength, QueryUnpackRowLength},
			{UnpackSkipRows, QueryUnpackSkipRows},
			{UnpackSkipPixels, QueryUnpackSkipPixels},
			{UnpackAlignment, QueryUnpackAlignment},
			{PackSwapBytes, QueryPackSwapBytes},
			{PackLSBFirst, QueryPackLSBFirst},
			{PackRowLength, QueryPackRowLength},
			{PackSkipRows, QueryPackSkipRows},
			{PackSkipPixels, QueryPackSkipPixels},
			{PackAlignment, QueryPackAlignment},
		}
		for i, p := range params {
			value := int32(i + 1)
			PixelStorei(p.set, value)
			got := GetIntegerv(p.query)
			want := [4]int32{value}
			if got != want {
				t.Fatalf("GetIntegerv(%d) after PixelStorei(%d, %d) = %v, want %v", p.query, p.set, value, got, want)
			}
		}
	})
}

func TestGetErrorAlwaysClean(t *testing.T) {
	withContext(t, func() {
		if e := GetError(); e != 0 {
			t.Fatalf("GetError() = %d, want 0", e)
		}
	})
}
