package config

import "flag"

var (
	flagConfig       = flag.String("config", "", "Path to config file")
	flagDebug        = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed     = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen   = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth        = flag.Int("width", 0, "Window width")
	flagHeight       = flag.Int("height", 0, "Window height")
	flagStars        = flag.Int("stars", 0, "Number of background stars")
	flagSeed         = flag.Uint64("seed", 0, "Star field seed (0 = random)")
	flagDeceleration = flag.Float64("deceleration", 0, "Camera momentum decay per frame, in (0, 1)")
	flagWriteConfig  = flag.String("write-config", "", "Write the effective config to this path and exit")
)

// explicitFlags holds the names of flags given on the command line.
// Only those override file values, so an explicit zero still reaches Validate.
var explicitFlags = map[string]bool{}

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
	flag.Visit(func(f *flag.Flag) {
		explicitFlags[f.Name] = true
	})
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// WriteConfigPath returns the --write-config destination, if any.
func WriteConfigPath() string {
	return *flagWriteConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config, set map[string]bool) {
	if set["debug"] && *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if set["windowed"] && *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if set["fullscreen"] && *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if set["width"] {
		cfg.Graphics.Width = *flagWidth
	}
	if set["height"] {
		cfg.Graphics.Height = *flagHeight
	}
	if set["stars"] {
		cfg.Scene.Stars.Count = *flagStars
	}
	if set["seed"] {
		cfg.Scene.Stars.Seed = *flagSeed
	}
	if set["deceleration"] {
		cfg.Camera.Deceleration = *flagDeceleration
	}
}
