package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration loaded from files and environment
// variables. Everything has a sane default; a missing config file is fine.
type Config struct {
	Env    string `mapstructure:"env"`    // current application environment (local, dev, prod etc)
	Window Window `mapstructure:"window"` // window size section
	Audio  Audio  `mapstructure:"audio"`  // audio playback section
}

// Window contains the display parameters.
type Window struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// Audio contains playback parameters.
type Audio struct {
	Enabled    bool    `mapstructure:"enabled"`
	SampleRate int     `mapstructure:"sample_rate"`
	Volume     float64 `mapstructure:"volume"` // master gain 0..1
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	v.SetDefault("env", "local")
	v.SetDefault("window.width", 800)
	v.SetDefault("window.height", 600)
	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.sample_rate", 44100)
	v.SetDefault("audio.volume", 0.5)

	// map nested keys to ENV style names, e.g. MATHBLASTER_AUDIO_VOLUME
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("MATHBLASTER")
	v.AutomaticEnv()

	_ = v.BindEnv("env", "APP_ENV")
	_ = v.BindEnv("window.width")
	_ = v.BindEnv("window.height")
	_ = v.BindEnv("audio.enabled")
	_ = v.BindEnv("audio.sample_rate")
	_ = v.BindEnv("audio.volume")

	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return nil, fmt.Errorf("invalid window size %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	return &cfg, nil
}
