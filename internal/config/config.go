package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	WindowWidth  = 600
	WindowHeight = 440

	CircleRadius   = 30
	ArrowSize      = 20
	AnimationSpeed = 3

	CircleX     = 80
	ArrowStartX = 520

	// Reset button, centered horizontally above the bottom edge
	ButtonWidth   = 120
	ButtonHeight  = 36
	ButtonMarginY = 14

	// Burst parameters
	BurstCount    = 18
	BurstMinSpeed = 1.5
	BurstMaxSpeed = 4.5
	BurstDamping  = 0.94
	BurstMinDecay = 0.018
	BurstMaxDecay = 0.035
	BurstMinSize  = 3
	BurstMaxSize  = 6
	BurstShrink   = 0.97

	RippleSpeed    = 2.5
	RippleMaxRange = 42
	TapRingSize    = 4096

	SampleRate = 44100
)

// Config is the full set of tunables. Zero values never reach the game:
// Default fills everything and Load only overlays what the file names.
type Config struct {
	Window  Window  `yaml:"window"`
	Scene   Scene   `yaml:"scene"`
	Burst   Burst   `yaml:"burst"`
	Sound   Sound   `yaml:"sound"`
	Haptics Haptics `yaml:"haptics"`
	Seed    int64   `yaml:"seed"`
}

type Window struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Scale  float64 `yaml:"scale"`
	Title  string  `yaml:"title"`
}

// Scene describes the circle column and the arrows paired with it.
// Rows, BaseColors and HitColors are index-aligned.
type Scene struct {
	CircleRadius float64   `yaml:"circle_radius"`
	ArrowSize    float64   `yaml:"arrow_size"`
	Speed        float64   `yaml:"speed"`
	CircleX      float64   `yaml:"circle_x"`
	ArrowStartX  float64   `yaml:"arrow_start_x"`
	Rows         []float64 `yaml:"rows"`
	BaseColors   []Color   `yaml:"base_colors"`
	HitColors    []Color   `yaml:"hit_colors"`
}

type Burst struct {
	Count    int     `yaml:"count"`
	MinSpeed float64 `yaml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed"`
	Damping  float64 `yaml:"damping"`
	MinDecay float64 `yaml:"min_decay"`
	MaxDecay float64 `yaml:"max_decay"`
	MinSize  float64 `yaml:"min_size"`
	MaxSize  float64 `yaml:"max_size"`
	Shrink   float64 `yaml:"shrink"`
}

type Sound struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"`
	SampleRate int     `yaml:"sample_rate"`

	// CueFile replaces the synthesized tones when set.
	CueFile string `yaml:"cue_file"`
}

type Haptics struct {
	Enabled    bool    `yaml:"enabled"`
	DurationMS int     `yaml:"duration_ms"`
	Magnitude  float64 `yaml:"magnitude"`
}

func Default() Config {
	return Config{
		Window: Window{
			Width:  WindowWidth,
			Height: WindowHeight,
			Scale:  1,
			Title:  "Arrow Bubbles - click a circle, R: reset, M: mute, O: load sound, Esc/Q: quit",
		},
		Scene: Scene{
			CircleRadius: CircleRadius,
			ArrowSize:    ArrowSize,
			Speed:        AnimationSpeed,
			CircleX:      CircleX,
			ArrowStartX:  ArrowStartX,
			Rows:         []float64{100, 180, 260, 340},
			BaseColors: []Color{
				MustParseColor("#FFD700"), // gold
				MustParseColor("#4169E1"), // blue
				MustParseColor("#DC143C"), // red
				MustParseColor("#32CD32"), // green
			},
			HitColors: []Color{
				MustParseColor("#FFA500"), // orange
				MustParseColor("#808080"), // gray
				MustParseColor("#800080"), // purple
				MustParseColor("#2F4F4F"), // dark slate gray
			},
		},
		Burst: Burst{
			Count:    BurstCount,
			MinSpeed: BurstMinSpeed,
			MaxSpeed: BurstMaxSpeed,
			Damping:  BurstDamping,
			MinDecay: BurstMinDecay,
			MaxDecay: BurstMaxDecay,
			MinSize:  BurstMinSize,
			MaxSize:  BurstMaxSize,
			Shrink:   BurstShrink,
		},
		Sound: Sound{
			Enabled:    true,
			Volume:     0.6,
			SampleRate: SampleRate,
		},
		Haptics: Haptics{
			Enabled:    true,
			DurationMS: 60,
			Magnitude:  0.5,
		},
	}
}

// Load reads a YAML file on top of Default. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Dump renders the config back to YAML.
func (c Config) Dump() ([]byte, error) {
	return yaml.Marshal(c)
}

func (c Config) Validate() error {
	var errs []error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Window.Scale <= 0 {
		errs = append(errs, fmt.Errorf("window scale %v must be positive", c.Window.Scale))
	}

	s := c.Scene
	if len(s.Rows) == 0 {
		errs = append(errs, errors.New("scene needs at least one row"))
	}
	if len(s.BaseColors) != len(s.Rows) || len(s.HitColors) != len(s.Rows) {
		errs = append(errs, fmt.Errorf("scene has %d rows, %d base colors and %d hit colors; counts must match",
			len(s.Rows), len(s.BaseColors), len(s.HitColors)))
	}
	if s.Speed <= 0 {
		errs = append(errs, fmt.Errorf("scene speed %v must be positive", s.Speed))
	}
	if s.CircleRadius <= 0 || s.ArrowSize <= 0 {
		errs = append(errs, errors.New("circle radius and arrow size must be positive"))
	}

	b := c.Burst
	if b.Count < 0 {
		errs = append(errs, fmt.Errorf("burst count %d must not be negative", b.Count))
	}
	if b.Damping <= 0 || b.Damping > 1 {
		errs = append(errs, fmt.Errorf("burst damping %v must be in (0, 1]", b.Damping))
	}
	if b.Shrink <= 0 || b.Shrink > 1 {
		errs = append(errs, fmt.Errorf("burst shrink %v must be in (0, 1]", b.Shrink))
	}
	if b.MinDecay <= 0 || b.MaxDecay < b.MinDecay {
		errs = append(errs, fmt.Errorf("burst decay range [%v, %v] is invalid", b.MinDecay, b.MaxDecay))
	}
	if b.MaxSpeed < b.MinSpeed || b.MaxSize < b.MinSize {
		errs = append(errs, errors.New("burst ranges must have min <= max"))
	}

	if c.Sound.Volume < 0 || c.Sound.Volume > 1 {
		errs = append(errs, fmt.Errorf("sound volume %v must be in [0, 1]", c.Sound.Volume))
	}
	if c.Sound.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("sound sample rate %d must be positive", c.Sound.SampleRate))
	}
	if c.Haptics.Magnitude < 0 || c.Haptics.Magnitude > 1 {
		errs = append(errs, fmt.Errorf("haptics magnitude %v must be in [0, 1]", c.Haptics.Magnitude))
	}

	return errors.Join(errs...)
}
