package renderer

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/spaghettifunk/kiln/engine/assets"
	"github.com/spaghettifunk/kiln/engine/core"
)

// Renderer is the frontend over a backend. It is stored in the World and used
// only by systems of single-threaded schedules.
type Renderer struct {
	backend     RendererBackend
	initialized bool
	suspended   bool
	width       uint32
	height      uint32
	frameNumber uint64
}

func NewRenderer(backend RendererBackend) *Renderer {
	return &Renderer{backend: backend}
}

func (r *Renderer) Initialize(appName string, width, height uint32) error {
	if r.backend == nil {
		return ErrNoBackend
	}
	if err := r.backend.Initialize(appName, width, height); err != nil {
		return fmt.Errorf("%s backend: %w", r.backend.Type(), err)
	}
	r.initialized = true
	r.width, r.height = width, height
	r.suspended = width == 0 || height == 0
	core.LogInfo("%s renderer initialized (%dx%d)", r.backend.Type(), width, height)
	return nil
}

func (r *Renderer) Initialized() bool {
	return r.initialized
}

// Suspended reports whether drawing is paused because the framebuffer has
// no area.
func (r *Renderer) Suspended() bool {
	return r.suspended
}

func (r *Renderer) Size() (uint32, uint32) {
	return r.width, r.height
}

// Aspect returns width/height, or 1 while suspended.
func (r *Renderer) Aspect() float32 {
	if r.width == 0 || r.height == 0 {
		return 1
	}
	return float32(r.width) / float32(r.height)
}

func (r *Renderer) FrameNumber() uint64 {
	return r.frameNumber
}

// OnResize forwards a framebuffer size change. A zero dimension suspends
// drawing until a non-zero size arrives.
func (r *Renderer) OnResize(width, height uint32) error {
	if width == r.width && height == r.height {
		return nil
	}
	r.width, r.height = width, height
	if width == 0 || height == 0 {
		if !r.suspended {
			core.LogDebug("renderer suspended, framebuffer is %dx%d", width, height)
		}
		r.suspended = true
		return nil
	}
	r.suspended = false
	if !r.initialized {
		return nil
	}
	return r.backend.Resized(width, height)
}

// DrawFrame renders one frame. Nothing is drawn while suspended.
func (r *Renderer) DrawFrame(packet *RenderPacket) error {
	if !r.initialized {
		return ErrNotInitialized
	}
	if r.suspended {
		return nil
	}
	if err := r.backend.BeginFrame(packet); err != nil {
		core.LogError("renderer begin frame: %s", err)
		return err
	}
	if err := r.backend.DrawScene(packet); err != nil {
		core.LogError("renderer draw: %s", err)
		return err
	}
	if err := r.backend.EndFrame(packet); err != nil {
		core.LogError("renderer end frame failed: %s", err)
		return err
	}
	r.frameNumber++
	return nil
}

// UseShader compiles src and makes it the active program.
func (r *Renderer) UseShader(src *assets.ShaderSource) error {
	if !r.initialized {
		return ErrNotInitialized
	}
	return r.backend.ShaderCreate(src)
}

func (r *Renderer) UseTexture(tex *assets.Texture) error {
	if !r.initialized {
		return ErrNotInitialized
	}
	return r.backend.TextureCreate(tex)
}

func (r *Renderer) Shutdown() error {
	if !r.initialized {
		return nil
	}
	r.initialized = false
	return r.backend.Shutdown()
}

// DefaultPacket draws with identity matrices.
func DefaultPacket(clear [4]float32) *RenderPacket {
	return &RenderPacket{
		ClearColor: clear,
		View:       mgl32.Ident4(),
		Projection: mgl32.Ident4(),
	}
}
