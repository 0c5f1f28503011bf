package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config holds all configurable paths and preview settings.
type Config struct {
	// Paths
	BaseDir   string `json:"base_dir" toml:"base_dir"`
	ScenePath string `json:"scene" toml:"scene"`
	Backdrop  string `json:"backdrop" toml:"backdrop"`
	OutputDir string `json:"output_dir" toml:"output_dir"`

	// Timing
	Frames    int     `json:"frames" toml:"frames"`
	FPS       float64 `json:"fps" toml:"fps"`
	TimeScale float64 `json:"time_scale" toml:"time_scale"` // timeline units per second

	// Render settings
	RenderSize  int `json:"render_size" toml:"render_size"`
	Supersample int `json:"supersample" toml:"supersample"`
	Workers     int `json:"workers" toml:"workers"`
}

// Load reads a JSON or TOML (by .toml extension) config file.
// Fields not set in the file keep their zero values. Relative paths in the
// file resolve against its directory unless base_dir says otherwise.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, &cfg)
	} else {
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if cfg.BaseDir == "" {
		cfg.BaseDir = filepath.Dir(path)
	} else if !filepath.IsAbs(cfg.BaseDir) {
		cfg.BaseDir = filepath.Join(filepath.Dir(path), cfg.BaseDir)
	}
	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	ScenePath string
	Backdrop  string
	OutputDir string
	Frames    int
	FPS       float64
	TimeScale float64
	Size      int
	Workers   int
}

// Resolve applies CLI overrides and fills in defaults.
// CLI flags take priority when non-zero/non-empty; flag paths are used as
// given, relative to the working directory.
func (c *Config) Resolve(flags Flags) {
	c.ScenePath = c.rel(c.ScenePath)
	c.Backdrop = c.rel(c.Backdrop)
	c.OutputDir = c.rel(c.OutputDir)

	if flags.ScenePath != "" {
		c.ScenePath = flags.ScenePath
	}
	if flags.Backdrop != "" {
		c.Backdrop = flags.Backdrop
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.FPS > 0 {
		c.FPS = flags.FPS
	}
	if flags.TimeScale > 0 {
		c.TimeScale = flags.TimeScale
	}
	if flags.Size > 0 {
		c.RenderSize = flags.Size
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	// Frames land next to the scene by default
	if c.OutputDir == "" && c.ScenePath != "" {
		stem := strings.TrimSuffix(filepath.Base(c.ScenePath), filepath.Ext(c.ScenePath))
		c.OutputDir = filepath.Join(filepath.Dir(c.ScenePath), stem+"-frames")
	}

	if c.Frames <= 0 {
		c.Frames = 30
	}
	if c.FPS <= 0 {
		c.FPS = 30
	}
	if c.TimeScale <= 0 {
		c.TimeScale = 10
	}
	if c.RenderSize <= 0 {
		c.RenderSize = 256
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// FrameTime converts a frame number to timeline units.
func (c Config) FrameTime(frame int) float32 {
	return float32(float64(frame) / c.FPS * c.TimeScale)
}

func (c Config) rel(p string) string {
	if p == "" || c.BaseDir == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.BaseDir, p)
}
