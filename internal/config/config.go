package config

import (
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all visualizer configuration values
type Config struct {
	Display     DisplayConfig     `yaml:"display"`
	Land        LandConfig        `yaml:"land"`
	Camera      CameraConfig      `yaml:"camera"`
	Growth      GrowthConfig      `yaml:"growth"`
	Environment EnvironmentConfig `yaml:"environment"`
	Render      RenderConfig      `yaml:"render"`
	Build       BuildConfig       `yaml:"build"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	WindowTitle  string `yaml:"window_title"`
	Resizable    bool   `yaml:"resizable"`
}

type LandConfig struct {
	// ScaleConstant converts feet of field edge into world units.
	// Side length in feet is sqrt(acres) * 208.7.
	ScaleConstant    float64 `yaml:"scale_constant"`
	MeshSubdivisions int     `yaml:"mesh_subdivisions"`
	UndulationHeight float64 `yaml:"undulation_height"`
	SoilColor        [3]int  `yaml:"soil_color"`
	ColorVariation   float64 `yaml:"color_variation"`
}

type CameraConfig struct {
	FieldOfViewDeg float64 `yaml:"field_of_view_deg"`

	Top    TopPresetConfig    `yaml:"top"`
	Side   SidePresetConfig   `yaml:"side"`
	Angled AngledPresetConfig `yaml:"angled"`

	OrbitSpeed float64 `yaml:"orbit_speed"`
	PanSpeed   float64 `yaml:"pan_speed"`
	ZoomStep   float64 `yaml:"zoom_step"`

	// Zoom distance clamps, as multiples of land size.
	MinDistanceFactor float64 `yaml:"min_distance_factor"`
	MaxDistanceFactor float64 `yaml:"max_distance_factor"`
}

type TopPresetConfig struct {
	HeightFactor float64 `yaml:"height_factor"`
	// Epsilon nudges the camera off the vertical axis so the view
	// basis stays well-defined when looking straight down.
	Epsilon float64 `yaml:"epsilon"`
}

type SidePresetConfig struct {
	HeightFactor   float64 `yaml:"height_factor"`
	DistanceFactor float64 `yaml:"distance_factor"`
}

type AngledPresetConfig struct {
	OffsetFactor float64 `yaml:"offset_factor"`
	HeightFactor float64 `yaml:"height_factor"`
}

type GrowthConfig struct {
	DurationSeconds float64 `yaml:"duration_seconds"`
	// Overshoot controls how far the ease-out-back curve exceeds full
	// height before settling. 1.70158 is the classic constant.
	Overshoot float64 `yaml:"overshoot"`
}

type EnvironmentConfig struct {
	FieldExtent float64 `yaml:"field_extent"`

	Hills  HillsConfig  `yaml:"hills"`
	Trees  TreesConfig  `yaml:"trees"`
	Rocks  CountRange   `yaml:"rocks"`
	Clouds CloudsConfig `yaml:"clouds"`
	Water  WaterConfig  `yaml:"water"`
}

type CountRange struct {
	CountMin int `yaml:"count_min"`
	CountMax int `yaml:"count_max"`
}

type HillsConfig struct {
	CountMin  int     `yaml:"count_min"`
	CountMax  int     `yaml:"count_max"`
	RadiusMin float64 `yaml:"radius_min"`
	RadiusMax float64 `yaml:"radius_max"`
	Distance  float64 `yaml:"distance"`
}

type TreesConfig struct {
	CountMin int     `yaml:"count_min"`
	CountMax int     `yaml:"count_max"`
	RingMin  float64 `yaml:"ring_min"`
	RingMax  float64 `yaml:"ring_max"`
}

type CloudsConfig struct {
	Count int     `yaml:"count"`
	Speed float64 `yaml:"speed"`
	// WrapExtent is the half-width of the band clouds drift across
	// before wrapping back to the far side.
	WrapExtent float64 `yaml:"wrap_extent"`
	Altitude   float64 `yaml:"altitude"`
}

type WaterConfig struct {
	PondRadius float64 `yaml:"pond_radius"`
	PondX      float64 `yaml:"pond_x"`
	PondZ      float64 `yaml:"pond_z"`
	// RippleIncrement advances the ripple phase by a fixed amount each tick.
	RippleIncrement float64 `yaml:"ripple_increment"`
}

type RenderConfig struct {
	LightDir  [3]float64 `yaml:"light_dir"`
	Ambient   float64    `yaml:"ambient"`
	SkyTop    [3]int     `yaml:"sky_top"`
	SkyBottom [3]int     `yaml:"sky_bottom"`
}

type BuildConfig struct {
	// Workers sizes the plant-generation pool; 0 means NumCPU.
	Workers int `yaml:"workers"`
}

var GlobalConfig *Config

// LoadConfig loads the configuration from a YAML file
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var config Config
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, err
	}

	GlobalConfig = &config

	return &config, nil
}

// MustLoadConfig loads the configuration and panics on error
func MustLoadConfig(filename string) *Config {
	config, err := LoadConfig(filename)
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	return config
}

// Default returns a fully populated configuration, used by tests and as
// documentation of every tunable's baseline value.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			ScreenWidth:  1280,
			ScreenHeight: 800,
			WindowTitle:  "3D Farm Visualizer",
			Resizable:    true,
		},
		Land: LandConfig{
			ScaleConstant:    0.05,
			MeshSubdivisions: 48,
			UndulationHeight: 1.1,
			SoilColor:        [3]int{132, 96, 58},
			ColorVariation:   0.08,
		},
		Camera: CameraConfig{
			FieldOfViewDeg:    50,
			Top:               TopPresetConfig{HeightFactor: 1.7, Epsilon: 0.01},
			Side:              SidePresetConfig{HeightFactor: 0.45, DistanceFactor: 1.25},
			Angled:            AngledPresetConfig{OffsetFactor: 0.85, HeightFactor: 0.8},
			OrbitSpeed:        0.008,
			PanSpeed:          0.0012,
			ZoomStep:          0.1,
			MinDistanceFactor: 0.3,
			MaxDistanceFactor: 4.0,
		},
		Growth: GrowthConfig{
			DurationSeconds: 3.0,
			Overshoot:       1.70158,
		},
		Environment: EnvironmentConfig{
			FieldExtent: 900,
			Hills: HillsConfig{
				CountMin: 5, CountMax: 9,
				RadiusMin: 40, RadiusMax: 110,
				Distance: 420,
			},
			Trees: TreesConfig{
				CountMin: 18, CountMax: 30,
				RingMin: 250, RingMax: 400,
			},
			Rocks: CountRange{CountMin: 10, CountMax: 18},
			Clouds: CloudsConfig{
				Count:      7,
				Speed:      4.0,
				WrapExtent: 600,
				Altitude:   220,
			},
			Water: WaterConfig{
				PondRadius:      55,
				PondX:           -280,
				PondZ:           230,
				RippleIncrement: 0.035,
			},
		},
		Render: RenderConfig{
			LightDir:  [3]float64{-0.4, -1.0, -0.3},
			Ambient:   0.35,
			SkyTop:    [3]int{110, 167, 235},
			SkyBottom: [3]int{196, 224, 247},
		},
		Build: BuildConfig{Workers: 0},
	}
}

// Helper functions for easy access to commonly used values
func (c *Config) GetScreenWidth() int {
	return c.Display.ScreenWidth
}

func (c *Config) GetScreenHeight() int {
	return c.Display.ScreenHeight
}

func (c *Config) GetScaleConstant() float64 {
	return c.Land.ScaleConstant
}

func (c *Config) GetCameraFOV() float64 {
	if c.Camera.FieldOfViewDeg <= 0 {
		return math.Pi / 4
	}
	return c.Camera.FieldOfViewDeg * math.Pi / 180
}

func (c *Config) GetGrowthDuration() float64 {
	if c.Growth.DurationSeconds <= 0 {
		return 3.0
	}
	return c.Growth.DurationSeconds
}

func (c *Config) GetOvershoot() float64 {
	if c.Growth.Overshoot <= 0 {
		return 1.70158
	}
	return c.Growth.Overshoot
}
