package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds dragzone configuration.
type Config struct {
	Drag    DragConfig    `mapstructure:"drag"`
	Target  TargetConfig  `mapstructure:"target"`
	Log     LogConfig     `mapstructure:"log"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Items   []Item        `mapstructure:"items"`
	Bins    []Bin         `mapstructure:"bins"`
}

// DragConfig holds drag source settings shared by every item.
type DragConfig struct {
	Clone      bool    `mapstructure:"clone"`
	Disappear  bool    `mapstructure:"disappear"`
	Opacity    float64 `mapstructure:"opacity"`
	ZIndex     int     `mapstructure:"z_index"`
	XOnly      bool    `mapstructure:"x_only"`
	YOnly      bool    `mapstructure:"y_only"`
	OffsetX    int     `mapstructure:"offset_x"`
	OffsetY    int     `mapstructure:"offset_y"`
	EdgeMargin int     `mapstructure:"edge_margin"`
}

// TargetConfig holds drop target settings shared by every bin.
type TargetConfig struct {
	HighlightClass string `mapstructure:"highlight_class"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// MetricsConfig holds the Prometheus endpoint address. Empty disables it.
type MetricsConfig struct {
	Addr string `mapstructure:"addr"`
}

// Item is a draggable entry in the palette.
type Item struct {
	Label string   `mapstructure:"label"`
	Keys  []string `mapstructure:"keys"`
	Data  string   `mapstructure:"data"`
}

// Bin is a drop target.
type Bin struct {
	Name      string   `mapstructure:"name"`
	Keys      []string `mapstructure:"keys"`
	Clipboard bool     `mapstructure:"clipboard"`
}

// Load reads configuration from path (if non-empty), $DRAGZONE_CONFIG, or
// ~/.config/dragzone/config.toml, then applies DRAGZONE_ env overrides.
// A missing default file is not an error.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("drag.clone", false)
	v.SetDefault("drag.disappear", false)
	v.SetDefault("drag.opacity", 0.6)
	v.SetDefault("drag.z_index", 10)
	v.SetDefault("drag.x_only", false)
	v.SetDefault("drag.y_only", false)
	v.SetDefault("drag.offset_x", 1)
	v.SetDefault("drag.offset_y", 1)
	v.SetDefault("drag.edge_margin", 1)
	v.SetDefault("target.highlight_class", "highlighted")
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("metrics.addr", "")
	v.SetDefault("items", []map[string]any{
		{"label": "Grapefruit", "keys": []string{"fruit"}, "data": "grapefruit"},
		{"label": "Yuzu", "keys": []string{"fruit"}, "data": "yuzu"},
		{"label": "Kumquat", "keys": []string{"fruit"}, "data": "kumquat"},
		{"label": "Glossier", "keys": []string{"vendor"}, "data": "glossier"},
		{"label": "Nyx", "keys": []string{"vendor"}, "data": "nyx"},
		{"label": "Anything", "keys": []string{"fruit", "vendor"}, "data": "anything"},
	})
	v.SetDefault("bins", []map[string]any{
		{"name": "Citrus", "keys": []string{"fruit"}},
		{"name": "Vendors", "keys": []string{"vendor"}},
		{"name": "Clipboard", "keys": []string{"fruit", "vendor"}, "clipboard": true},
	})

	v.SetConfigType("toml")

	explicit := path != ""
	if !explicit {
		path = os.Getenv("DRAGZONE_CONFIG")
		explicit = path != ""
	}
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "dragzone"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("DRAGZONE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects configurations the board cannot render.
func (c Config) Validate() error {
	if c.Drag.XOnly && c.Drag.YOnly {
		return errors.New("drag: x_only and y_only are mutually exclusive")
	}
	if c.Drag.Opacity < 0 || c.Drag.Opacity > 1 {
		return fmt.Errorf("drag: opacity %v out of range [0,1]", c.Drag.Opacity)
	}
	for i, it := range c.Items {
		if strings.TrimSpace(it.Label) == "" {
			return fmt.Errorf("items[%d]: label is required", i)
		}
		if hasEmpty(it.Keys) {
			return fmt.Errorf("items[%d]: keys must be non-empty strings", i)
		}
	}
	for i, b := range c.Bins {
		if strings.TrimSpace(b.Name) == "" {
			return fmt.Errorf("bins[%d]: name is required", i)
		}
		if hasEmpty(b.Keys) {
			return fmt.Errorf("bins[%d]: keys must be non-empty strings", i)
		}
	}
	return nil
}

func hasEmpty(keys []string) bool {
	for _, k := range keys {
		if k == "" {
			return true
		}
	}
	return false
}
