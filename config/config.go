// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Arena     ArenaConfig     `yaml:"arena"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Agent     AgentConfig     `yaml:"agent"`
	Steering  SteeringConfig  `yaml:"steering"`
	Burst     BurstConfig     `yaml:"burst"`
	Idle      IdleConfig      `yaml:"idle"`
	Controls  ControlsConfig  `yaml:"controls"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Audio     AudioConfig     `yaml:"audio"`
	Features  FeaturesConfig  `yaml:"features"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// ArenaConfig holds the simulation arena dimensions.
type ArenaConfig struct {
	Width  int `yaml:"width"`  // Arena width in pixels (0 = use screen width)
	Height int `yaml:"height"` // Arena height in pixels (0 = use screen height)
}

// PhysicsConfig holds tick timing.
type PhysicsConfig struct {
	DT float64 `yaml:"dt"` // Seconds per headless tick; also the reference frame time for speeds
}

// AgentConfig holds agent creation parameters.
type AgentConfig struct {
	Radius           float64 `yaml:"radius"`             // Collision radius on normal screens
	SmallRadius      float64 `yaml:"small_radius"`       // Collision radius on small screens
	SmallScreenWidth int     `yaml:"small_screen_width"` // Arena widths below this use SmallRadius
	SpriteSize       float64 `yaml:"sprite_size"`
	SmallSpriteSize  float64 `yaml:"small_sprite_size"`
	SpeedScaleMin    float64 `yaml:"speed_scale_min"`
	SpeedScaleMax    float64 `yaml:"speed_scale_max"`
}

// SteeringConfig holds the prey/predator/crowd blend parameters.
type SteeringConfig struct {
	Jitter          float64 `yaml:"jitter"`           // Magnitude of symmetric random jitter per axis
	RepulsionRange  float64 `yaml:"repulsion_range"`  // Same-kind repulsion radius as a multiple of the agent radius
	RepulsionWeight float64 `yaml:"repulsion_weight"` // Weight of each same-kind repulsion contribution
	Blend           float64 `yaml:"blend"`            // Fraction of the new heading blended in per tick
}

// BurstConfig holds random impulse parameters.
type BurstConfig struct {
	Chance   float64 `yaml:"chance"`   // Per-agent probability per tick
	Strength float64 `yaml:"strength"` // Impulse magnitude per axis
}

// IdleConfig holds drift parameters for the idle and finished phases.
type IdleConfig struct {
	Drift    float64 `yaml:"drift"`
	MaxSpeed float64 `yaml:"max_speed"`
}

// ControlsConfig holds the control surface ranges and defaults.
type ControlsConfig struct {
	SpeedMin          float64 `yaml:"speed_min"`
	SpeedMax          float64 `yaml:"speed_max"`
	DefaultSpeed      float64 `yaml:"default_speed"`
	DefaultAggression int     `yaml:"default_aggression"` // 0-100
	AggressionMin     float64 `yaml:"aggression_min"`     // Ratio at slider 0
	AggressionMax     float64 `yaml:"aggression_max"`     // Ratio at slider 100
	DefaultDensity    int     `yaml:"default_density"`    // 0-100, percentage of max per kind
	MinPerKind        int     `yaml:"min_per_kind"`
	MaxPerKind        int     `yaml:"max_per_kind"`
}

// TelemetryConfig holds time series and stats parameters.
type TelemetryConfig struct {
	ChartWindow         float64 `yaml:"chart_window"`    // Seconds of history shown in the result chart (0 = unbounded)
	ChartSmoothing      int     `yaml:"chart_smoothing"` // Samples per averaged chart point
	StatsWindow         float64 `yaml:"stats_window"`    // Seconds per stats window
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// AudioConfig holds mixer parameters and asset paths.
type AudioConfig struct {
	FadeInRatio     float64           `yaml:"fade_in_ratio"` // Population share where a kind's loop starts fading in
	MaxVolume       float64           `yaml:"max_volume"`
	Smoothing       float64           `yaml:"smoothing"` // Per-update easing toward target gain and rate
	BackgroundGain  float64           `yaml:"background_gain"`
	VictoryGain     float64           `yaml:"victory_gain"`
	PlaybackBase    float64           `yaml:"playback_base"`
	PlaybackSpan    float64           `yaml:"playback_span"`
	LoopFiles       map[string]string `yaml:"loop_files"` // Kind name -> loop file
	BackgroundFiles []string          `yaml:"background_files"`
	VictoryFile     string            `yaml:"victory_file"`
}

// FeaturesConfig selects optional collaborators and phases.
type FeaturesConfig struct {
	Audio      bool `yaml:"audio"`
	Chart      bool `yaml:"chart"`
	IdlePhase  bool `yaml:"idle_phase"`
	FPSMonitor bool `yaml:"fps_monitor"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ArenaW32   float32 // Effective arena width as float32
	ArenaH32   float32 // Effective arena height as float32
	Radius32   float32 // Radius for the arena's screen-size tier
	SpriteSize float32 // Sprite size for the arena's screen-size tier
	SmallArena bool
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Default returns the embedded defaults. Panics if they fail to parse.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.ComputeDerived()

	return cfg, nil
}

// ComputeDerived calculates values derived from loaded config.
// Call it again after changing arena or agent fields in code.
func (c *Config) ComputeDerived() {
	arenaW := c.Arena.Width
	if arenaW == 0 {
		arenaW = c.Screen.Width
	}
	arenaH := c.Arena.Height
	if arenaH == 0 {
		arenaH = c.Screen.Height
	}
	c.Derived.ArenaW32 = float32(arenaW)
	c.Derived.ArenaH32 = float32(arenaH)

	c.Derived.SmallArena = arenaW < c.Agent.SmallScreenWidth
	if c.Derived.SmallArena {
		c.Derived.Radius32 = float32(c.Agent.SmallRadius)
		c.Derived.SpriteSize = float32(c.Agent.SmallSpriteSize)
	} else {
		c.Derived.Radius32 = float32(c.Agent.Radius)
		c.Derived.SpriteSize = float32(c.Agent.SpriteSize)
	}

	if c.Controls.MinPerKind < 0 {
		c.Controls.MinPerKind = 0
	}
	if c.Controls.MaxPerKind < c.Controls.MinPerKind {
		c.Controls.MaxPerKind = c.Controls.MinPerKind
	}
	if c.Physics.DT <= 0 {
		c.Physics.DT = 1.0 / 60.0
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
