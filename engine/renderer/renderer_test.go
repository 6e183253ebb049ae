package renderer

import (
	"errors"
	"slices"
	"testing"

	"github.com/spaghettifunk/kiln/engine/assets"
)

// fakeBackend records the calls it receives.
type fakeBackend struct {
	calls      []string
	initErr    error
	shaderErr  error
	shaders    []*assets.ShaderSource
	textures   []*assets.Texture
	packets    []RenderPacket
	lastWidth  uint32
	lastHeight uint32
}

func (f *fakeBackend) Type() RendererType { return OpenGL }

func (f *fakeBackend) Initialize(appName string, width, height uint32) error {
	f.calls = append(f.calls, "initialize")
	f.lastWidth, f.lastHeight = width, height
	return f.initErr
}

func (f *fakeBackend) Shutdown() error {
	f.calls = append(f.calls, "shutdown")
	return nil
}

func (f *fakeBackend) Resized(width, height uint32) error {
	f.calls = append(f.calls, "resized")
	f.lastWidth, f.lastHeight = width, height
	return nil
}

func (f *fakeBackend) BeginFrame(*RenderPacket) error {
	f.calls = append(f.calls, "begin")
	return nil
}

func (f *fakeBackend) DrawScene(p *RenderPacket) error {
	f.calls = append(f.calls, "draw")
	f.packets = append(f.packets, *p)
	return nil
}

func (f *fakeBackend) EndFrame(*RenderPacket) error {
	f.calls = append(f.calls, "end")
	return nil
}

func (f *fakeBackend) ShaderCreate(src *assets.ShaderSource) error {
	f.calls = append(f.calls, "shader")
	if f.shaderErr != nil {
		return f.shaderErr
	}
	f.shaders = append(f.shaders, src)
	return nil
}

func (f *fakeBackend) TextureCreate(tex *assets.Texture) error {
	f.calls = append(f.calls, "texture")
	f.textures = append(f.textures, tex)
	return nil
}

func (f *fakeBackend) count(call string) int {
	n := 0
	for _, c := range f.calls {
		if c == call {
			n++
		}
	}
	return n
}

func TestRendererLifecycle(t *testing.T) {
	backend := &fakeBackend{}
	r := NewRenderer(backend)

	if err := r.DrawFrame(DefaultPacket([4]float32{})); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("draw before init: got %v", err)
	}
	if err := r.Initialize("test", 800, 600); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if err := r.DrawFrame(DefaultPacket([4]float32{})); err != nil {
		t.Fatalf("DrawFrame: %v", err)
	}
	if want := []string{"initialize", "begin", "draw", "end"}; !slices.Equal(backend.calls, want) {
		t.Errorf("calls = %v, want %v", backend.calls, want)
	}
	if r.FrameNumber() != 1 {
		t.Errorf("frame number = %d", r.FrameNumber())
	}
	if r.Aspect() != float32(800)/600 {
		t.Errorf("aspect = %v", r.Aspect())
	}

	if err := r.Shutdown(); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	if err := r.Shutdown(); err != nil {
		t.Fatalf("second Shutdown: %v", err)
	}
	if backend.count("shutdown") != 1 {
		t.Errorf("backend shut down %d times", backend.count("shutdown"))
	}
}

func TestRendererSuspendsOnZeroSize(t *testing.T) {
	backend := &fakeBackend{}
	r := NewRenderer(backend)
	if err := r.Initialize("test", 800, 600); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	if err := r.OnResize(0, 0); err != nil {
		t.Fatalf("OnResize: %v", err)
	}
	if !r.Suspended() || r.Aspect() != 1 {
		t.Fatalf("suspended = %v, aspect = %v", r.Suspended(), r.Aspect())
	}
	if err := r.DrawFrame(DefaultPacket([4]float32{})); err != nil {
		t.Fatalf("DrawFrame while suspended: %v", err)
	}
	if backend.count("draw") != 0 || backend.count("resized") != 0 {
		t.Errorf("backend used while suspended: %v", backend.calls)
	}

	if err := r.OnResize(1024, 768); err != nil {
		t.Fatalf("OnResize: %v", err)
	}
	if r.Suspended() {
		t.Fatal("still suspended after a non-zero resize")
	}
	if backend.lastWidth != 1024 || backend.lastHeight != 768 {
		t.Errorf("backend size = %dx%d", backend.lastWidth, backend.lastHeight)
	}
	if err := r.OnResize(1024, 768); err != nil {
		t.Fatalf("OnResize: %v", err)
	}
	if backend.count("resized") != 1 {
		t.Errorf("unchanged size forwarded: %v", backend.calls)
	}
}

func TestRendererInitializeError(t *testing.T) {
	boom := errors.New("no context")
	r := NewRenderer(&fakeBackend{initErr: boom})
	if err := r.Initialize("test", 1, 1); !errors.Is(err, boom) {
		t.Fatalf("expected backend error, got %v", err)
	}
	if r.Initialized() {
		t.Error("renderer marked initialized after failure")
	}
	if err := NewRenderer(nil).Initialize("test", 1, 1); !errors.Is(err, ErrNoBackend) {
		t.Errorf("nil backend: got %v", err)
	}
}

func TestRendererTypeString(t *testing.T) {
	if OpenGL.String() != "opengl" || RendererType(42).String() != "unknown" {
		t.Error("RendererType.String mismatch")
	}
}
