package renderer

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/spaghettifunk/kiln/engine/assets"
)

type RendererType uint8

const (
	Vulkan RendererType = iota
	DirectX
	Metal
	OpenGL
)

func (t RendererType) String() string {
	switch t {
	case Vulkan:
		return "vulkan"
	case DirectX:
		return "directx"
	case Metal:
		return "metal"
	case OpenGL:
		return "opengl"
	default:
		return "unknown"
	}
}

// RendererBackend is implemented by each graphics API. All calls happen on
// the thread that owns the graphics context.
type RendererBackend interface {
	Type() RendererType
	// Initialize loads the API entry points and creates the default scene.
	// It fails when no graphics context is current.
	Initialize(appName string, width, height uint32) error
	Shutdown() error
	Resized(width, height uint32) error
	BeginFrame(packet *RenderPacket) error
	DrawScene(packet *RenderPacket) error
	EndFrame(packet *RenderPacket) error
	// ShaderCreate compiles and links src and makes it the active program.
	// On failure the previous program stays active.
	ShaderCreate(src *assets.ShaderSource) error
	// TextureCreate uploads tex and binds it to the scene.
	TextureCreate(tex *assets.Texture) error
}

// RenderPacket carries everything a backend needs to draw one frame.
type RenderPacket struct {
	DeltaTime  float64
	ClearColor [4]float32
	View       mgl32.Mat4
	Projection mgl32.Mat4
}
