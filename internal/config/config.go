// Package config handles demo configuration loading and management.
package config

// Config holds all demo settings.
type Config struct {
	Graphics  GraphicsConfig  `yaml:"graphics"`
	Animation AnimationConfig `yaml:"animation"`
	Logging   LoggingConfig   `yaml:"logging"`
	Debug     DebugConfig     `yaml:"debug"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	FPSLimit   int  `yaml:"fps_limit"`
}

// AnimationConfig holds the choreography timing knobs.
type AnimationConfig struct {
	Speed       float32 `yaml:"speed"`        // travel speed, units/s
	SpinRate    float32 `yaml:"spin_rate"`    // panel spin, rad/s
	HoldSeconds float32 `yaml:"hold_seconds"` // pause before the cycle restarts
	TrailCap    int     `yaml:"trail_cap"`    // maximum trail snapshots
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// DebugConfig holds debug tooling settings.
type DebugConfig struct {
	ScreenshotDir    string `yaml:"screenshot_dir"`
	ScreenshotFormat string `yaml:"screenshot_format"` // png or bmp
}

// Default returns a Config with the stock demo values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     800,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   0,
		},
		Animation: AnimationConfig{
			Speed:       0.5,
			SpinRate:    4.0,
			HoldSeconds: 5.0,
			TrailCap:    1000,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Debug: DebugConfig{
			ScreenshotDir:    "screenshots",
			ScreenshotFormat: "png",
		},
	}
}
