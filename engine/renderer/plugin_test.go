package renderer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/spaghettifunk/kiln/engine/app"
	"github.com/spaghettifunk/kiln/engine/assets"
	"github.com/spaghettifunk/kiln/engine/camera"
	"github.com/spaghettifunk/kiln/engine/core"
	"github.com/spaghettifunk/kiln/engine/ecs"
	"github.com/spaghettifunk/kiln/engine/input"
)

func runnerless(t *testing.T, b *app.Builder) *app.App {
	t.Helper()
	a, err := b.SetRunner(func(*app.App) error { return nil }).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	t.Cleanup(func() { _ = a.Shutdown() })
	return a
}

func TestRenderPluginDrawsEveryFrame(t *testing.T) {
	backend := &fakeBackend{}
	a := runnerless(t, app.NewBuilder().AddPlugin(RenderPlugin{
		Backend:    backend,
		AppName:    "test",
		Width:      640,
		Height:     480,
		ClearColor: [4]float32{0.1, 0.1, 0.1, 0.9},
	}))

	if err := a.Startup(); err != nil {
		t.Fatalf("Startup: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := a.Frame(); err != nil {
			t.Fatalf("Frame: %v", err)
		}
	}
	if backend.count("initialize") != 1 || backend.count("draw") != 3 {
		t.Errorf("calls = %v", backend.calls)
	}
	p := backend.packets[0]
	if p.ClearColor != [4]float32{0.1, 0.1, 0.1, 0.9} {
		t.Errorf("clear color = %v", p.ClearColor)
	}
	if p.View != mgl32.Ident4() {
		t.Error("view should be identity without a camera")
	}
}

func TestRenderPluginUsesCamera(t *testing.T) {
	backend := &fakeBackend{}
	a := runnerless(t, app.NewBuilder().AddPlugins(
		input.InputPlugin{},
		camera.DefaultCameraPlugin(),
		RenderPlugin{Backend: backend, Width: 800, Height: 400},
	))
	if err := a.Startup(); err != nil {
		t.Fatalf("Startup: %v", err)
	}
	if err := a.Frame(); err != nil {
		t.Fatalf("Frame: %v", err)
	}

	_, cam, err := ecs.Single[*camera.Camera](a.World())
	if err != nil {
		t.Fatal(err)
	}
	p := backend.packets[0]
	if p.View != cam.ViewMatrix() {
		t.Error("packet view does not match the camera")
	}
	if p.Projection != cam.Projection(2) {
		t.Error("packet projection does not use the window aspect")
	}
}

func TestRenderPluginResize(t *testing.T) {
	backend := &fakeBackend{}
	a := runnerless(t, app.NewBuilder().AddPlugin(RenderPlugin{Backend: backend, Width: 640, Height: 480}))
	if err := a.Startup(); err != nil {
		t.Fatalf("Startup: %v", err)
	}

	send := func(ev core.Resized) {
		t.Helper()
		if err := ecs.Send(a.World(), ev); err != nil {
			t.Fatal(err)
		}
		if err := a.Frame(); err != nil {
			t.Fatalf("Frame: %v", err)
		}
	}

	send(core.Resized{Width: 0, Height: 0})
	if backend.count("draw") != 0 {
		t.Errorf("drew while minimised: %v", backend.calls)
	}
	send(core.Resized{Width: 1280, Height: 720})
	if backend.count("draw") != 1 || backend.lastWidth != 1280 {
		t.Errorf("calls = %v, size %dx%d", backend.calls, backend.lastWidth, backend.lastHeight)
	}
}

func TestRenderPluginInitFailure(t *testing.T) {
	boom := errors.New("no gl")
	a := runnerless(t, app.NewBuilder().AddPlugin(RenderPlugin{Backend: &fakeBackend{initErr: boom}}))
	if err := a.Startup(); !errors.Is(err, boom) {
		t.Fatalf("expected init failure from Startup, got %v", err)
	}
}

func TestRenderPluginNilBackend(t *testing.T) {
	_, err := app.NewBuilder().AddPlugin(RenderPlugin{}).SetRunner(func(*app.App) error { return nil }).Build()
	if !errors.Is(err, ErrNoBackend) {
		t.Fatalf("expected ErrNoBackend, got %v", err)
	}
}

func TestRenderPluginShaderReload(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) {
		t.Helper()
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("shaders/scene.vert", "#version 410 core\nvoid main() {}\n")
	write("shaders/scene.frag", "#version 410 core\nvoid main() {}\n")

	backend := &fakeBackend{}
	a := runnerless(t, app.NewBuilder().AddPlugins(
		assets.AssetsPlugin{Dir: dir},
		RenderPlugin{
			Backend:        backend,
			Width:          1,
			Height:         1,
			VertexShader:   "shaders/scene.vert",
			FragmentShader: "shaders/scene.frag",
		},
	))
	if err := a.Startup(); err != nil {
		t.Fatalf("Startup: %v", err)
	}
	if len(backend.shaders) != 1 {
		t.Fatalf("shader loaded %d times at startup", len(backend.shaders))
	}

	// An unrelated change is ignored.
	changes := ecs.MustResource[*ecs.Events[assets.Changed]](a.World())
	changes.Send(assets.Changed{Path: "textures/wall.png", Kind: assets.KindTexture})
	if err := a.Frame(); err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if len(backend.shaders) != 1 {
		t.Fatalf("unrelated change reloaded the shader")
	}

	write("shaders/scene.frag", "#version 410 core\nout vec4 c;\nvoid main() { c = vec4(1); }\n")
	changes.Send(assets.Changed{Path: "shaders/scene.frag", Kind: assets.KindShader})
	if err := a.Frame(); err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if len(backend.shaders) != 2 {
		t.Fatalf("shader reloaded %d times, want 1", len(backend.shaders)-1)
	}
	if got := backend.shaders[1].Fragment; got == backend.shaders[0].Fragment {
		t.Error("reloaded program uses the old fragment source")
	}

	// A failing compile keeps the renderer running.
	backend.shaderErr = errors.New("syntax error")
	changes.Send(assets.Changed{Path: "shaders/scene.vert", Kind: assets.KindShader})
	if err := a.Frame(); err != nil {
		t.Fatalf("Frame after failed reload: %v", err)
	}
}
