package core

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/pelletier/go-toml/v2"
)

type ApplicationConfig struct {
	// Window starting position x axis, if applicable.
	StartPosX uint32 `toml:"start_pos_x"`
	// Window starting position y axis, if applicable.
	StartPosY uint32 `toml:"start_pos_y"`
	// Window starting width, if applicable.
	StartWidth uint32 `toml:"start_width"`
	// Window starting height, if applicable.
	StartHeight uint32 `toml:"start_height"`
	// The application name used in windowing, if applicable.
	Name     string `toml:"name"`
	LogLevel string `toml:"log_level"`
	VSync    bool   `toml:"vsync"`
	// Workers bounds the pool used by concurrent schedules. Zero means GOMAXPROCS.
	Workers    int        `toml:"workers"`
	ClearColor [4]float32 `toml:"clear_color"`

	Assets AssetsConfig `toml:"assets"`
	Input  InputConfig  `toml:"input"`
	// DiagnosticsInterval is the number of seconds between diagnostics log lines.
	// Zero disables them.
	DiagnosticsInterval float64 `toml:"diagnostics_interval"`
}

type AssetsConfig struct {
	Dir            string `toml:"dir"`
	HotReload      bool   `toml:"hot_reload"`
	VertexShader   string `toml:"vertex_shader"`
	FragmentShader string `toml:"fragment_shader"`
	Texture        string `toml:"texture"`
	FlipTextures   bool   `toml:"flip_textures"`
}

type InputConfig struct {
	// ReleaseOnFocusLoss treats a focus loss as a release of every held key.
	ReleaseOnFocusLoss bool `toml:"release_on_focus_loss"`
}

func DefaultConfig() *ApplicationConfig {
	return &ApplicationConfig{
		StartPosX:   100,
		StartPosY:   100,
		StartWidth:  1280,
		StartHeight: 720,
		Name:        "Kiln",
		LogLevel:    "info",
		VSync:       true,
		ClearColor:  [4]float32{0.1, 0.1, 0.1, 0.9},
		Assets: AssetsConfig{
			Dir: "assets",
		},
		DiagnosticsInterval: 5,
	}
}

// LoadConfig reads a TOML file on top of DefaultConfig. Unknown keys are rejected.
func LoadConfig(path string) (*ApplicationConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config %s: %w", path, err)
	}
	defer f.Close()

	cfg := DefaultConfig()
	dec := toml.NewDecoder(f).DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, strict.String())
		}
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			return nil, fmt.Errorf("%w: %s:%d:%d: %s", ErrInvalidConfig, path, row, col, decodeErr.Error())
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as TOML.
func (c *ApplicationConfig) Save(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (c *ApplicationConfig) Validate() error {
	if c.StartWidth == 0 || c.StartHeight == 0 {
		return fmt.Errorf("%w: window size must be > 0, got %dx%d", ErrInvalidConfig, c.StartWidth, c.StartHeight)
	}
	if c.Name == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidConfig)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalidConfig, c.Workers)
	}
	if c.DiagnosticsInterval < 0 {
		return fmt.Errorf("%w: diagnostics_interval must be >= 0", ErrInvalidConfig)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// WorkerCount resolves the configured worker count.
func (c *ApplicationConfig) WorkerCount() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return max(runtime.GOMAXPROCS(0), 1)
}

// ApplyLogging configures the shared logger from the config.
func (c *ApplicationConfig) ApplyLogging() error {
	level, err := ParseLogLevel(c.LogLevel)
	if err != nil {
		return err
	}
	SetLogLevel(level)
	SetLogPrefix(c.Name + " 🔥")
	return nil
}
