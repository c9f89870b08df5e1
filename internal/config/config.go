package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	// DefaultColumns is substituted whenever a non-positive column count
	// is supplied, on the command line or in the config file.
	DefaultColumns = 4

	defaultThumbWidth  = 180
	defaultThumbHeight = 120
	defaultFocusWidth  = 800
	defaultFocusHeight = 600
	defaultMagickBin   = "magick"
)

// Config holds every tunable the browser reads. The navigation core only
// consumes Columns; the rest parameterizes the external collaborators.
type Config struct {
	Columns     int    `mapstructure:"columns"`
	ThumbWidth  int    `mapstructure:"thumb_width"`
	ThumbHeight int    `mapstructure:"thumb_height"`
	FocusWidth  int    `mapstructure:"focus_width"`
	FocusHeight int    `mapstructure:"focus_height"`
	CacheDir    string `mapstructure:"cache_dir"`
	MagickBin   string `mapstructure:"magick_bin"`
}

func defaultConfig() *Config {
	return &Config{
		Columns:     DefaultColumns,
		ThumbWidth:  defaultThumbWidth,
		ThumbHeight: defaultThumbHeight,
		FocusWidth:  defaultFocusWidth,
		FocusHeight: defaultFocusHeight,
		CacheDir:    defaultCacheDir(),
		MagickBin:   defaultMagickBin,
	}
}

func defaultCacheDir() string {
	if dir, err := os.UserCacheDir(); err == nil && dir != "" {
		return filepath.Join(dir, "glance")
	}
	return filepath.Join(os.TempDir(), "glance")
}

func Load() (*Config, error) {
	cfg := defaultConfig()

	v := viper.New()
	v.SetConfigName("config")
	v.AddConfigPath(filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "glance"))
	v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "glance"))
	v.SetConfigType("yaml")

	v.SetDefault("columns", DefaultColumns)
	v.SetDefault("thumb_width", defaultThumbWidth)
	v.SetDefault("thumb_height", defaultThumbHeight)
	v.SetDefault("focus_width", defaultFocusWidth)
	v.SetDefault("focus_height", defaultFocusHeight)
	v.SetDefault("cache_dir", cfg.CacheDir)
	v.SetDefault("magick_bin", defaultMagickBin)

	if err := v.ReadInConfig(); err == nil {
		if err := v.Unmarshal(cfg); err != nil {
			return nil, err
		}
	}

	cfg.Normalize()
	return cfg, nil
}

// Normalize repairs invalid values in place instead of rejecting them.
// A bad column count falls back to the default rather than aborting.
func (c *Config) Normalize() {
	if c.Columns < 1 {
		c.Columns = DefaultColumns
	}
	if c.ThumbWidth < 1 {
		c.ThumbWidth = defaultThumbWidth
	}
	if c.ThumbHeight < 1 {
		c.ThumbHeight = defaultThumbHeight
	}
	if c.FocusWidth < 1 {
		c.FocusWidth = defaultFocusWidth
	}
	if c.FocusHeight < 1 {
		c.FocusHeight = defaultFocusHeight
	}
	if c.CacheDir == "" {
		c.CacheDir = defaultCacheDir()
	}
	if c.MagickBin == "" {
		c.MagickBin = defaultMagickBin
	}
}
