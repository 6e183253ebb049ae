package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/spaghettifunk/kiln/engine/assets"
	"github.com/spaghettifunk/kiln/engine/core"
	"github.com/spaghettifunk/kiln/engine/renderer"
)

// OpenGLRenderer draws the scene with OpenGL 4.1 core. The context must be
// current on the calling thread for every method.
type OpenGLRenderer struct {
	program *program
	vao     uint32
	vbo     uint32
	texture uint32
	count   int32

	FrameNumber uint64
}

func New() *OpenGLRenderer {
	return &OpenGLRenderer{}
}

func (r *OpenGLRenderer) Type() renderer.RendererType {
	return renderer.OpenGL
}

func (r *OpenGLRenderer) Initialize(appName string, width, height uint32) error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("%w: %s", core.ErrNoGraphicsContext, err)
	}
	core.LogInfo("%s running on %s", appName, gl.GoStr(gl.GetString(gl.RENDERER)))
	core.LogInfo("OpenGL version %s", gl.GoStr(gl.GetString(gl.VERSION)))
	core.LogInfo("shading language %s", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)))

	p, err := linkProgram(defaultVertexShader, defaultFragmentShader)
	if err != nil {
		return err
	}
	r.program = p

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(triangleVertices)*floatSize, gl.Ptr(triangleVertices), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, positionSize, gl.FLOAT, false, vertexStride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, colorSize, gl.FLOAT, false, vertexStride, positionSize*floatSize)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, uvSize, gl.FLOAT, false, vertexStride, (positionSize+colorSize)*floatSize)
	gl.EnableVertexAttribArray(2)
	gl.BindVertexArray(0)
	r.count = vertexCount(triangleVertices)

	gl.Enable(gl.DEPTH_TEST)
	return r.Resized(width, height)
}

func (r *OpenGLRenderer) Shutdown() error {
	r.program.destroy()
	if r.texture != 0 {
		gl.DeleteTextures(1, &r.texture)
		r.texture = 0
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
		r.vbo = 0
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	core.LogDebug("OpenGL renderer shut down after %d frames", r.FrameNumber)
	return nil
}

func (r *OpenGLRenderer) Resized(width, height uint32) error {
	gl.Viewport(0, 0, int32(width), int32(height))
	return nil
}

func (r *OpenGLRenderer) BeginFrame(packet *renderer.RenderPacket) error {
	c := packet.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	return nil
}

func (r *OpenGLRenderer) DrawScene(packet *renderer.RenderPacket) error {
	gl.UseProgram(r.program.id)
	if r.program.view >= 0 {
		gl.UniformMatrix4fv(r.program.view, 1, false, &packet.View[0])
	}
	if r.program.projection >= 0 {
		gl.UniformMatrix4fv(r.program.projection, 1, false, &packet.Projection[0])
	}
	if r.program.useTexture >= 0 {
		var use int32
		if r.texture != 0 {
			use = 1
		}
		gl.Uniform1i(r.program.useTexture, use)
	}
	if r.texture != 0 {
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, r.texture)
		if r.program.texture >= 0 {
			gl.Uniform1i(r.program.texture, 0)
		}
	}

	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, r.count)
	gl.BindVertexArray(0)
	return nil
}

func (r *OpenGLRenderer) EndFrame(packet *renderer.RenderPacket) error {
	r.FrameNumber++
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("frame %d: gl error 0x%04X", r.FrameNumber, code)
	}
	return nil
}

func (r *OpenGLRenderer) ShaderCreate(src *assets.ShaderSource) error {
	p, err := linkProgram(src.Vertex, src.Fragment)
	if err != nil {
		return err
	}
	r.program.destroy()
	r.program = p
	return nil
}

func (r *OpenGLRenderer) TextureCreate(tex *assets.Texture) error {
	id, err := uploadTexture(tex)
	if err != nil {
		return err
	}
	if r.texture != 0 {
		gl.DeleteTextures(1, &r.texture)
	}
	r.texture = id
	return nil
}
