package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Environment variable names recognized by ApplyEnv.
const (
	EnvOpen  = "TAGNAV_OPEN"
	EnvClose = "TAGNAV_CLOSE"
	EnvWrap  = "TAGNAV_WRAP"
)

// Load reads configuration from the given path, applying defaults for
// anything the file does not set. A missing file is not an error; it
// yields the defaults. The format is chosen by file extension: .toml,
// or .yaml/.yml.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return cfg, fmt.Errorf("config file %s: unsupported extension", path)
	}
	if err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overlays TAGNAV_* environment variables onto cfg and
// validates the result.
func ApplyEnv(cfg Config) (Config, error) {
	if v, ok := os.LookupEnv(EnvOpen); ok {
		cfg.Tag.Open = v
	}
	if v, ok := os.LookupEnv(EnvClose); ok {
		cfg.Tag.Close = v
	}
	if v, ok := os.LookupEnv(EnvWrap); ok {
		wrap, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvWrap, err)
		}
		cfg.Tag.Wrap = wrap
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
