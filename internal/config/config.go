// Package config handles application configuration loading and management.
package config

import (
	"time"

	"github.com/Faultbox/blackhole/internal/engine/geometry"
)

// Color is a linear RGB triple in [0, 1].
type Color [3]float32

// Config holds all application settings.
type Config struct {
	Graphics   GraphicsConfig   `yaml:"graphics"`
	View       ViewConfig       `yaml:"view"`
	Scene      SceneConfig      `yaml:"scene"`
	Camera     CameraConfig     `yaml:"camera"`
	Lighting   LightingConfig   `yaml:"lighting"`
	Screenshot ScreenshotConfig `yaml:"screenshot"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// GraphicsConfig holds display and frame pacing settings.
type GraphicsConfig struct {
	Title      string        `yaml:"title"`
	Width      int           `yaml:"width"`
	Height     int           `yaml:"height"`
	Fullscreen bool          `yaml:"fullscreen"`
	VSync      bool          `yaml:"vsync"`
	FrameDelay time.Duration `yaml:"frame_delay"` // Sleep between frames
}

// ViewConfig holds the projection and the camera's pull-back distance.
type ViewConfig struct {
	FOV      float32 `yaml:"fov"` // Vertical field of view, degrees
	Near     float32 `yaml:"near"`
	Far      float32 `yaml:"far"`
	Distance float32 `yaml:"distance"`
}

// SceneConfig holds everything the scene generates at startup.
type SceneConfig struct {
	Sphere SphereConfig `yaml:"sphere"`
	Rings  RingsConfig  `yaml:"rings"`
	Stars  StarsConfig  `yaml:"stars"`
}

// SphereConfig describes the event horizon.
type SphereConfig struct {
	Radius    float32 `yaml:"radius"`
	LatBands  int     `yaml:"lat_bands"`
	LongBands int     `yaml:"long_bands"`
	Color     Color   `yaml:"color,flow"`
}

// RingsConfig describes the accretion rings. All rings share one color.
type RingsConfig struct {
	Color     Color        `yaml:"color,flow"`
	LineWidth float32      `yaml:"line_width"`
	Bands     []RingConfig `yaml:"bands"`
}

// RingConfig describes a single ring.
type RingConfig struct {
	Radius      float32              `yaml:"radius"`
	Thickness   float32              `yaml:"thickness"`
	Segments    int                  `yaml:"segments"`
	Orientation geometry.Orientation `yaml:"orientation"`
}

// StarsConfig describes the background star shell.
type StarsConfig struct {
	Count    int     `yaml:"count"`
	Distance float32 `yaml:"distance"`
	Size     float32 `yaml:"size"`
	Color    Color   `yaml:"color,flow"`
	Seed     uint64  `yaml:"seed"` // 0 picks a new sky every run
}

// CameraConfig holds the inertial rotation tuning.
type CameraConfig struct {
	Deceleration float64 `yaml:"deceleration"`
	AutoRotation float64 `yaml:"auto_rotation"` // Degrees per idle frame
	DragDivisor  float64 `yaml:"drag_divisor"`  // Pixels per degree/frame of velocity
}

// LightingConfig places the single light that shades lit meshes.
// The light is fixed relative to the viewer.
type LightingConfig struct {
	Longitude float64 `yaml:"longitude"` // Degrees around Y from +Z
	Latitude  float64 `yaml:"latitude"`  // Degrees above the horizon
	Ambient   float32 `yaml:"ambient"`   // Unlit fraction in [0, 1]
}

// ScreenshotConfig holds screenshot capture settings.
type ScreenshotConfig struct {
	Dir    string  `yaml:"dir"`
	Prefix string  `yaml:"prefix"`
	Format string  `yaml:"format"` // "webp" or "png"
	Scale  float64 `yaml:"scale"`  // Downscale factor in (0, 1]
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the stock scene.
func Default() *Config {
	orange := Color{1.0, 0.5, 0.0}
	return &Config{
		Graphics: GraphicsConfig{
			Title:      "Black Hole Interactive",
			Width:      1200,
			Height:     675,
			Fullscreen: false,
			VSync:      true,
			FrameDelay: 10 * time.Millisecond,
		},
		View: ViewConfig{
			FOV:      45,
			Near:     0.1,
			Far:      100,
			Distance: 10,
		},
		Scene: SceneConfig{
			Sphere: SphereConfig{
				Radius:    1.5,
				LatBands:  50,
				LongBands: 50,
				Color:     Color{0.06, 0.06, 0.06},
			},
			Rings: RingsConfig{
				Color:     orange,
				LineWidth: 2,
				Bands: []RingConfig{
					{Radius: 1.5, Thickness: 0.5, Segments: 100, Orientation: geometry.Vertical},
					{Radius: 3.0, Thickness: 0.2, Segments: 100, Orientation: geometry.Vertical},
					{Radius: 2.2, Thickness: 0.2, Segments: 100, Orientation: geometry.Horizontal},
				},
			},
			Stars: StarsConfig{
				Count:    150,
				Distance: 100,
				Size:     1,
				Color:    Color{1, 1, 1},
			},
		},
		Camera: CameraConfig{
			Deceleration: 0.95,
			AutoRotation: 0.02,
			DragDivisor:  100,
		},
		Lighting: LightingConfig{
			Longitude: 20,
			Latitude:  30,
			Ambient:   0.35,
		},
		Screenshot: ScreenshotConfig{
			Dir:    "screenshots",
			Prefix: "blackhole",
			Format: "webp",
			Scale:  1,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
