package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/appengine-ltd/harvest-calc/internal/farm"
	"github.com/appengine-ltd/harvest-calc/internal/logging"
)

const DefaultFile = "harvest.toml"

type Config struct {
	Catalog CatalogConfig `toml:"catalog"`
	Log     LogConfig     `toml:"log"`
	Price   PriceConfig   `toml:"price"`
}

// CatalogConfig points at external catalog files. Empty paths use the
// embedded catalog.
type CatalogConfig struct {
	Crops     string `toml:"crops"`
	Mutations string `toml:"mutations"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

type PriceConfig struct {
	// DefaultPercent is the harvest size used when no weight is given.
	DefaultPercent float64 `toml:"default_percent"`
}

func Default() Config {
	return Config{
		Log:   LogConfig{Level: "info"},
		Price: PriceConfig{DefaultPercent: 5},
	}
}

// Load reads path over the defaults. A missing file is not an error when
// optional is set.
func Load(path string, optional bool) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config parse failed (%s): unknown key %q", path, undecoded[0].String())
	}
	cfg.resolvePaths(filepath.Dir(path))
	if err := Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("config invalid (%s): %w", path, err)
	}
	return cfg, nil
}

func (c *Config) resolvePaths(dir string) {
	c.Catalog.Crops = resolvePath(dir, c.Catalog.Crops)
	c.Catalog.Mutations = resolvePath(dir, c.Catalog.Mutations)
}

func resolvePath(dir, p string) string {
	p = strings.TrimSpace(p)
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

func Validate(cfg Config) error {
	if (cfg.Catalog.Crops == "") != (cfg.Catalog.Mutations == "") {
		return fmt.Errorf("catalog crops and mutations must be set together")
	}
	if cfg.Log.Level != "" {
		if _, ok := logging.ParseLevel(cfg.Log.Level); !ok {
			return fmt.Errorf("unknown log level %q", cfg.Log.Level)
		}
	}
	p := cfg.Price.DefaultPercent
	if p < farm.MinWeightRatio*100 || p > 100 {
		return fmt.Errorf("price default_percent must be between %.0f and 100, got %v", farm.MinWeightRatio*100, p)
	}
	return nil
}
