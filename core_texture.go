// core_texture.go - texture object state tracking

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

/*
core_texture.go implements spec.md 4.9: texture objects are tracked as
state only — GenTextures/BindTexture/TexParameteri/TexImage2D record
names, bound targets, filter parameters and pixel payloads, but nothing
in the rasterizer samples them (texturing is explicitly out of scope,
spec.md 1): a register-shadow pattern for state that is captured but
never feeds the rendering path, the same as a latched but unused
texture-combine register.
*/

package glcore

type texture struct {
	target TextureTarget
	minFilter, magFilter TextureFilter
	width, height int
	pixels []byte
}

// GenTextures reserves n texture names and returns them (spec.md 4.9).
func GenTextures(n int) []int {
	c := current("GenTextures")
	c.mu.Lock()
	defer c.mu.Unlock()
	names := make([]int, n)
	for i := 0; i < n; i++ {
		c.nextTexture++
		c.textures[c.nextTexture] = &texture{}
		names[i] = c.nextTexture
	}
	return names
}

// BindTexture binds name as the current texture for target (spec.md 4.9).
// Binding name 0 unbinds.
func BindTexture(target TextureTarget, name int) {
	current("BindTexture").issue(command{kind: cmdBindTexture, i: [6]int32{int32(target), int32(name)}})
}

func (c *Context) doBindTexture(target TextureTarget, name int) {
	if name != 0 {
		if _, ok := c.textures[name]; !ok {
			fatalf("BindTexture", "texture %d was never reserved with GenTextures", name)
		}
	}
	switch target {
	case Texture2D:
		c.boundTex2D = name
	default:
		unsupported("BindTexture")
	}
}

// TexParameteri sets a filter parameter on the bound texture (spec.md 4.9).
func TexParameteri(target TextureTarget, pname, param int32) {
	current("TexParameteri").issue(command{kind: cmdTexParameteri, i: [6]int32{int32(target), pname, param}})
}

func (c *Context) doTexParameteri(target TextureTarget, pname, param int32) {
	t := c.boundTexture(target, "TexParameteri")
	switch pname {
	case texParamMinFilter:
		t.minFilter = TextureFilter(param)
	case texParamMagFilter:
		t.magFilter = TextureFilter(param)
	default:
		unsupported("TexParameteri")
	}
}

// TexImage2D uploads a pixel payload to the bound texture (spec.md 4.9).
// The payload is accepted and stored but never sampled.
func TexImage2D(target TextureTarget, width, height int, pixels []byte) {
	cp := make([]byte, len(pixels))
	copy(cp, pixels)
	current("TexImage2D").issue(command{
		kind: cmdTexImage2D,
		i:    [6]int32{int32(target), int32(width), int32(height)},
		tex:  cp,
	})
}

func (c *Context) doTexImage2D(target TextureTarget, width, height int, pixels []byte) {
	t := c.boundTexture(target, "TexImage2D")
	t.width, t.height = width, height
	t.pixels = pixels
}

// ActiveTextureARB selects the active texture unit for subsequent
// MultiTexCoord2fARB calls (spec.md 4.9). Captured only: this core tracks
// a single tex-coord slot regardless of unit.
func ActiveTextureARB(unit int32) {
	current("ActiveTextureARB").issue(command{kind: cmdActiveTexture, i: [6]int32{unit}})
}

func (c *Context) doActiveTexture(unit int32) {
	_ = unit // captured, no functional effect (spec.md 4.9)
}

func (c *Context) boundTexture(target TextureTarget, op string) *texture {
	if target != Texture2D {
		unsupported(op)
	}
	if c.boundTex2D == 0 {
		fatal(op, "no texture bound")
	}
	return c.textures[c.boundTex2D]
}

const (
	texParamMinFilter = 0x2801
	texParamMagFilter = 0x2800
)
