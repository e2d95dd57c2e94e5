// core_command.go - tagged command model for the deferrable API surface

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

/*
core_command.go models every legacy API call that can be recorded into a
display list (spec.md 3, 4.1) as one command value carrying a copy of its
arguments — "a command is a value type: all array arguments are copied in
when issued". Rather than a Go sum type over ~35 struct variants, the
command is a single flat value (a kind tag plus fixed-size argument arrays)
and dispatch is one switch in Execute: a shadow-state array plus a single
switch over the command kind, the same shape as a register-write handler.
*/

package glcore

type commandKind int

const (
	cmdClearColor commandKind = iota
	cmdClear
	cmdDepthMask
	cmdEnable
	cmdDisable
	cmdBlendFunc
	cmdCullFace
	cmdShadeModel
	cmdPolygonMode
	cmdLightf
	cmdLightfv
	cmdMaterialfv
	cmdTexGenf
	cmdMatrixMode
	cmdLoadIdentity
	cmdMultMatrix
	cmdOrtho
	cmdTranslate
	cmdPushMatrix
	cmdPopMatrix
	cmdBegin
	cmdEnd
	cmdVertex3f
	cmdNormal3f
	cmdColor4f
	cmdTexCoord2f
	cmdMultiTexCoord2f
	cmdBindTexture
	cmdTexParameteri
	cmdTexImage2D
	cmdActiveTexture
	cmdCallList
	cmdPixelStorei
	cmdViewport
)

// command is a copy of one recordable API call's arguments (spec.md 3, 4.1).
// Only the fields relevant to kind are populated; the rest are zero.
type command struct {
	kind commandKind

	f   [8]float32 // general float arguments
	i   [6]int32   // general int/enum arguments
	mat Mat4       // MultMatrix payload
	tex []byte     // TexImage2D pixel payload (copied on issue)
}

// Execute applies the command to c. This is the single dispatch point
// referenced in spec.md 9 ("dispatch is a single match").
func (cmd *command) Execute(c *Context) {
	switch cmd.kind {
	case cmdClearColor:
		c.doClearColor(cmd.f[0], cmd.f[1], cmd.f[2], cmd.f[3])
	case cmdClear:
		c.doClear(ClearMask(cmd.i[0]))
	case cmdDepthMask:
		c.doDepthMask(cmd.i[0] != 0)
	case cmdEnable:
		c.doEnableCap(cmd.i[0], true)
	case cmdDisable:
		c.doEnableCap(cmd.i[0], false)
	case cmdBlendFunc:
		c.doBlendFunc(cmd.i[0], cmd.i[1])
	case cmdCullFace:
		c.doCullFace(cmd.i[0])
	case cmdShadeModel:
		c.doShadeModel(cmd.i[0])
	case cmdPolygonMode:
		c.doPolygonMode(cmd.i[0], cmd.i[1])
	case cmdLightf:
		c.doLightf(cmd.i[0], cmd.i[1], cmd.f[0])
	case cmdLightfv:
		c.doLightfv(cmd.i[0], cmd.i[1], [4]float32{cmd.f[0], cmd.f[1], cmd.f[2], cmd.f[3]})
	case cmdMaterialfv:
		c.doMaterialfv(cmd.i[0], cmd.i[1], [4]float32{cmd.f[0], cmd.f[1], cmd.f[2], cmd.f[3]})
	case cmdTexGenf:
		c.doTexGenf(cmd.i[0], cmd.i[1], cmd.f[0])
	case cmdMatrixMode:
		c.doMatrixMode(MatrixMode(cmd.i[0]))
	case cmdLoadIdentity:
		c.doLoadIdentity()
	case cmdMultMatrix:
		c.doMultMatrix(&cmd.mat)
	case cmdOrtho:
		c.doOrtho(cmd.f[0], cmd.f[1], cmd.f[2], cmd.f[3], cmd.f[4], cmd.f[5])
	case cmdTranslate:
		c.doTranslate(cmd.f[0], cmd.f[1], cmd.f[2])
	case cmdPushMatrix:
		c.doPushMatrix()
	case cmdPopMatrix:
		c.doPopMatrix()
	case cmdBegin:
		c.doBegin(PrimitiveMode(cmd.i[0]))
	case cmdEnd:
		c.doEnd()
	case cmdVertex3f:
		c.doVertex3f(cmd.f[0], cmd.f[1], cmd.f[2])
	case cmdNormal3f:
		c.doNormal3f(cmd.f[0], cmd.f[1], cmd.f[2])
	case cmdColor4f:
		c.doColor4f(cmd.f[0], cmd.f[1], cmd.f[2], cmd.f[3])
	case cmdTexCoord2f:
		c.doTexCoord2f(cmd.f[0], cmd.f[1])
	case cmdMultiTexCoord2f:
		c.doMultiTexCoord2f(cmd.i[0], cmd.f[0], cmd.f[1])
	case cmdBindTexture:
		c.doBindTexture(TextureTarget(cmd.i[0]), int(cmd.i[1]))
	case cmdTexParameteri:
		c.doTexParameteri(TextureTarget(cmd.i[0]), cmd.i[1], cmd.i[2])
	case cmdTexImage2D:
		c.doTexImage2D(TextureTarget(cmd.i[0]), int(cmd.i[1]), int(cmd.i[2]), cmd.tex)
	case cmdActiveTexture:
		c.doActiveTexture(cmd.i[0])
	case cmdCallList:
		c.doCallList(int(cmd.i[0]))
	case cmdPixelStorei:
		c.doPixelStorei(PixelStoreParam(cmd.i[0]), cmd.i[1])
	case cmdViewport:
		c.doViewport(int(cmd.i[0]), int(cmd.i[1]), int(cmd.i[2]), int(cmd.i[3]))
	default:
		fatalf("Execute", "unknown command kind %d", int(cmd.kind))
	}
}
