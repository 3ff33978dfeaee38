package gesture

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// envPrefix prefixes every environment override, e.g. GESTURE_HANDLER_MAX_SCALE.
const envPrefix = "GESTURE_"

// HandlerConfig configures a Handler.
type HandlerConfig struct {
	// Enabled turns gesture handling on or off without detaching.
	Enabled bool `toml:"enabled" env:"ENABLED"`
	// RotationFactor is reserved for twist gestures and currently unused.
	RotationFactor float64 `toml:"rotation_factor" env:"ROTATION_FACTOR"`
	MinScale       float64 `toml:"min_scale" env:"MIN_SCALE"`
	MaxScale       float64 `toml:"max_scale" env:"MAX_SCALE"`
}

// DefaultHandlerConfig returns the stock handler settings.
func DefaultHandlerConfig() HandlerConfig {
	return HandlerConfig{
		Enabled:        true,
		RotationFactor: 5,
		MinScale:       0.1,
		MaxScale:       8,
	}
}

// Validate reports whether the scale bounds are usable.
func (c HandlerConfig) Validate() error {
	if c.MinScale <= 0 {
		return fmt.Errorf("%w: min scale %v must be positive", ErrInvalidConfig, c.MinScale)
	}
	if c.MaxScale <= c.MinScale {
		return fmt.Errorf("%w: max scale %v must exceed min scale %v", ErrInvalidConfig, c.MaxScale, c.MinScale)
	}
	return nil
}

// DetectorConfig configures a Detector.
type DetectorConfig struct {
	// Target names the node to listen on. Empty or unknown names fall back
	// to the node passed to Attach.
	Target string `toml:"target" env:"TARGET"`
}

// Config is the file-level configuration for a gesture setup.
type Config struct {
	Debug    bool           `toml:"debug"`
	Detector DetectorConfig `toml:"detector"`
	Handler  HandlerConfig  `toml:"handler"`
	// Objects holds per-node overrides keyed by node name.
	Objects map[string]HandlerConfig `toml:"objects"`
}

// DefaultConfig returns a Config with default handler settings and no
// per-object overrides.
func DefaultConfig() Config {
	return Config{Handler: DefaultHandlerConfig()}
}

// LoadConfig decodes TOML data over DefaultConfig, applies GESTURE_*
// environment overrides and validates the result. Keys missing from an
// [objects.<name>] table inherit from [handler] after its overrides.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	// Environment overrides land on the shared section first so objects
	// inherit them along with the file values.
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	// Decode objects a second time, each seeded from the shared handler
	// section, so partial tables inherit instead of zeroing. Keys set in an
	// object table win over both the file and the environment.
	var raw struct {
		Objects map[string]toml.Primitive `toml:"objects"`
	}
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if len(raw.Objects) > 0 {
		cfg.Objects = make(map[string]HandlerConfig, len(raw.Objects))
		for name, prim := range raw.Objects {
			oc := cfg.Handler
			if err := md.PrimitiveDecode(prim, &oc); err != nil {
				return Config{}, fmt.Errorf("parse config: object %q: %w", name, err)
			}
			cfg.Objects[name] = oc
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile reads and parses a TOML config file.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return LoadConfig(data)
}

func (c *Config) applyEnv() error {
	top := struct {
		Debug bool `env:"DEBUG"`
	}{Debug: c.Debug}
	if err := env.ParseWithOptions(&top, env.Options{Prefix: envPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	c.Debug = top.Debug
	if err := env.ParseWithOptions(&c.Detector, env.Options{Prefix: envPrefix + "DETECTOR_"}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if err := env.ParseWithOptions(&c.Handler, env.Options{Prefix: envPrefix + "HANDLER_"}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks the shared handler section and every per-object override.
func (c Config) Validate() error {
	if err := c.Handler.Validate(); err != nil {
		return fmt.Errorf("handler: %w", err)
	}
	for name, oc := range c.Objects {
		if err := oc.Validate(); err != nil {
			return fmt.Errorf("object %q: %w", name, err)
		}
	}
	return nil
}

// HandlerFor returns the override for the named node, or the shared handler
// section when there is none.
func (c Config) HandlerFor(name string) HandlerConfig {
	if oc, ok := c.Objects[name]; ok {
		return oc
	}
	return c.Handler
}
