/*
This is an example of application that will use the
engine package to test things out
*/
package main

import (
	"flag"
	"fmt"

	"github.com/pkg/profile"

	"github.com/spaghettifunk/kiln/engine/app"
	"github.com/spaghettifunk/kiln/engine/assets"
	"github.com/spaghettifunk/kiln/engine/camera"
	"github.com/spaghettifunk/kiln/engine/core"
	"github.com/spaghettifunk/kiln/engine/input"
	"github.com/spaghettifunk/kiln/engine/platform"
	"github.com/spaghettifunk/kiln/engine/renderer"
	"github.com/spaghettifunk/kiln/engine/renderer/opengl"
	"github.com/spaghettifunk/kiln/testbed"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML configuration file")
	profileMode := flag.String("profile", "", "enable profiling: cpu, mem or trace")
	flag.Parse()

	if err := run(*configPath, *profileMode); err != nil {
		core.LogFatal("%s", err)
	}
}

func run(configPath, profileMode string) error {
	cfg := core.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = core.LoadConfig(configPath); err != nil {
			return err
		}
	}
	if err := cfg.ApplyLogging(); err != nil {
		return err
	}

	if profileMode != "" {
		mode, err := profileOption(profileMode)
		if err != nil {
			return err
		}
		defer profile.Start(mode, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	}

	window := platform.WindowConfig{
		Title:  cfg.Name,
		X:      int(cfg.StartPosX),
		Y:      int(cfg.StartPosY),
		Width:  int(cfg.StartWidth),
		Height: int(cfg.StartHeight),
		VSync:  cfg.VSync,
	}

	return app.NewBuilder().
		Workers(cfg.WorkerCount()).
		AddPlugins(
			input.InputPlugin{ReleaseOnFocusLoss: cfg.Input.ReleaseOnFocusLoss},
			assets.AssetsPlugin{Dir: cfg.Assets.Dir, HotReload: cfg.Assets.HotReload},
			camera.DefaultCameraPlugin(),
			renderer.RenderPlugin{
				Backend:        opengl.New(),
				AppName:        cfg.Name,
				Width:          cfg.StartWidth,
				Height:         cfg.StartHeight,
				ClearColor:     cfg.ClearColor,
				VertexShader:   cfg.Assets.VertexShader,
				FragmentShader: cfg.Assets.FragmentShader,
				Texture:        cfg.Assets.Texture,
				FlipTextures:   cfg.Assets.FlipTextures,
			},
			app.DiagnosticsPlugin{Interval: cfg.DiagnosticsInterval},
			testbed.NewTestbedPlugin(),
		).
		SetRunner(platform.NewRunner(window)).
		Run()
}

func profileOption(mode string) (func(*profile.Profile), error) {
	switch mode {
	case "cpu":
		return profile.CPUProfile, nil
	case "mem":
		return profile.MemProfile, nil
	case "trace":
		return profile.TraceProfile, nil
	default:
		return nil, fmt.Errorf("%w: unknown profile mode %q", core.ErrInvalidConfig, mode)
	}
}
