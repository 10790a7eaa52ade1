// Package config loads the vtwire tool configuration from a TOML file and
// VTWIRE_* environment variables.
package config

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/anirudhraja/vtwire/internal/logging"
	"github.com/anirudhraja/vtwire/wire"
)

const (
	EnvUnknownFields = "VTWIRE_UNKNOWN_FIELDS"
	EnvValidateUTF8  = "VTWIRE_VALIDATE_UTF8"
	EnvMaxDepth      = "VTWIRE_MAX_DEPTH"
	EnvProtoPath     = "VTWIRE_PROTO_PATH"
)

// Config is the complete tool configuration.
type Config struct {
	Wire  WireConfig     `toml:"wire"`
	Log   logging.Config `toml:"log"`
	Proto ProtoConfig    `toml:"proto"`
}

// WireConfig mirrors wire.Options in file form.
type WireConfig struct {
	UnknownFields string `toml:"unknown_fields"` // preserve, discard or reject
	ValidateUTF8  bool   `toml:"validate_utf8"`
	MaxDepth      int    `toml:"max_depth"`
}

// ProtoConfig lists extra .proto schemas to load next to the built-in types.
type ProtoConfig struct {
	Paths []string `toml:"paths"` // import search directories
	Files []string `toml:"files"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Wire: WireConfig{
			UnknownFields: string(wire.UnknownPreserve),
			ValidateUTF8:  true,
			MaxDepth:      wire.DefaultMaxDepth,
		},
		Log: logging.DefaultConfig(),
	}
}

// Load reads path, when not empty, over the defaults and then applies the
// environment overrides. Keys the file defines but Config does not know are
// an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		meta, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return Config{}, errors.Wrapf(err, "load config %s", path)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			sort.Strings(keys)
			return Config{}, errors.Errorf("load config %s: unknown keys %s", path, strings.Join(keys, ", "))
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := strings.TrimSpace(os.Getenv(EnvUnknownFields)); v != "" {
		cfg.Wire.UnknownFields = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvValidateUTF8)); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrapf(err, "parse %s", EnvValidateUTF8)
		}
		cfg.Wire.ValidateUTF8 = b
	}
	if v := strings.TrimSpace(os.Getenv(EnvMaxDepth)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "parse %s", EnvMaxDepth)
		}
		cfg.Wire.MaxDepth = n
	}
	if v := os.Getenv(EnvProtoPath); v != "" {
		cfg.Proto.Paths = append(cfg.Proto.Paths, filepath.SplitList(v)...)
	}
	logging.ApplyEnv(&cfg.Log)
	return nil
}

// Validate checks values the TOML types cannot.
func (c Config) Validate() error {
	if _, err := wire.ParseUnknownFieldPolicy(c.Wire.UnknownFields); err != nil {
		return errors.Wrap(err, "wire.unknown_fields")
	}
	if c.Wire.MaxDepth < 0 {
		return errors.Errorf("wire.max_depth must not be negative, got %d", c.Wire.MaxDepth)
	}
	return nil
}

// WireOptions converts the wire section into codec options.
func (c Config) WireOptions() wire.Options {
	policy, _ := wire.ParseUnknownFieldPolicy(c.Wire.UnknownFields)
	return wire.Options{
		UnknownFields:      policy,
		SkipUTF8Validation: !c.Wire.ValidateUTF8,
		MaxDepth:           c.Wire.MaxDepth,
	}
}
