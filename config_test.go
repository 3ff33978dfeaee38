package gesture

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultHandlerConfig(t *testing.T) {
	c := DefaultHandlerConfig()
	if !c.Enabled || c.RotationFactor != 5 || c.MinScale != 0.1 || c.MaxScale != 8 {
		t.Errorf("defaults = %+v", c)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestHandlerConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     HandlerConfig
		wantErr bool
	}{
		{"ok", HandlerConfig{MinScale: 0.5, MaxScale: 2}, false},
		{"zero min", HandlerConfig{MinScale: 0, MaxScale: 2}, true},
		{"negative min", HandlerConfig{MinScale: -1, MaxScale: 2}, true},
		{"max equals min", HandlerConfig{MinScale: 1, MaxScale: 1}, true},
		{"max below min", HandlerConfig{MinScale: 2, MaxScale: 1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("err = %v, want ErrInvalidConfig", err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	data := []byte(`
debug = true

[detector]
target = "#canvas"

[handler]
min_scale = 0.5
max_scale = 4.0

[objects.cube]
max_scale = 2.0

[objects.plane]
enabled = false
`)
	cfg, err := LoadConfig(data)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if !cfg.Debug {
		t.Error("Debug should be true")
	}
	if cfg.Detector.Target != "#canvas" {
		t.Errorf("Target = %q", cfg.Detector.Target)
	}
	if cfg.Handler.MinScale != 0.5 || cfg.Handler.MaxScale != 4 {
		t.Errorf("Handler = %+v", cfg.Handler)
	}
	if !cfg.Handler.Enabled || cfg.Handler.RotationFactor != 5 {
		t.Errorf("unset handler keys should keep defaults: %+v", cfg.Handler)
	}

	cube := cfg.HandlerFor("cube")
	if cube.MaxScale != 2 || cube.MinScale != 0.5 || !cube.Enabled {
		t.Errorf("cube = %+v, want max 2 inheriting the rest", cube)
	}
	plane := cfg.HandlerFor("plane")
	if plane.Enabled || plane.MaxScale != 4 {
		t.Errorf("plane = %+v", plane)
	}
	if other := cfg.HandlerFor("sphere"); other != cfg.Handler {
		t.Errorf("unknown object should get the shared section, got %+v", other)
	}
}

func TestLoadConfigEmpty(t *testing.T) {
	cfg, err := LoadConfig(nil)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Handler != DefaultHandlerConfig() {
		t.Errorf("Handler = %+v, want defaults", cfg.Handler)
	}
	if cfg.Debug || cfg.Detector.Target != "" || len(cfg.Objects) != 0 {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name      string
		data      string
		isInvalid bool
	}{
		{"malformed toml", "[handler\nmin_scale = 1", false},
		{"wrong type", "[handler]\nmin_scale = \"big\"", false},
		{"bad handler bounds", "[handler]\nmin_scale = 2.0\nmax_scale = 1.0", true},
		{"bad object bounds", "[objects.cube]\nmin_scale = 0.0", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errors.Is(err, ErrInvalidConfig); got != tt.isInvalid {
				t.Errorf("errors.Is(ErrInvalidConfig) = %v, want %v (err: %v)", got, tt.isInvalid, err)
			}
		})
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("GESTURE_DEBUG", "true")
	t.Setenv("GESTURE_DETECTOR_TARGET", "model")
	t.Setenv("GESTURE_HANDLER_MAX_SCALE", "3")

	cfg, err := LoadConfig([]byte(`
[handler]
max_scale = 6.0
min_scale = 0.25

[objects.cube]
min_scale = 0.2

[objects.plane]
max_scale = 5.0
`))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if !cfg.Debug {
		t.Error("GESTURE_DEBUG should enable debug")
	}
	if cfg.Detector.Target != "model" {
		t.Errorf("Target = %q, want model", cfg.Detector.Target)
	}
	if cfg.Handler.MaxScale != 3 {
		t.Errorf("MaxScale = %v, want env value 3", cfg.Handler.MaxScale)
	}
	if cfg.Handler.MinScale != 0.25 {
		t.Errorf("MinScale = %v, want file value 0.25", cfg.Handler.MinScale)
	}

	// Objects inherit the overridden shared section; their own keys win.
	cube := cfg.HandlerFor("cube")
	if cube.MaxScale != 3 || cube.MinScale != 0.2 {
		t.Errorf("cube = %+v, want max 3 from env and min 0.2 from its table", cube)
	}
	if plane := cfg.HandlerFor("plane"); plane.MaxScale != 5 || plane.MinScale != 0.25 {
		t.Errorf("plane = %+v, want max 5 from its table and min 0.25 inherited", plane)
	}
}

func TestLoadConfigEnvInvalid(t *testing.T) {
	t.Setenv("GESTURE_HANDLER_MIN_SCALE", "tiny")
	if _, err := LoadConfig(nil); err == nil {
		t.Error("expected error for unparsable env value")
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gesture.toml")
	if err := os.WriteFile(path, []byte("[handler]\nmax_scale = 5.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile: %v", err)
	}
	if cfg.Handler.MaxScale != 5 {
		t.Errorf("MaxScale = %v, want 5", cfg.Handler.MaxScale)
	}

	if _, err := LoadConfigFile(filepath.Join(dir, "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file err = %v, want os.ErrNotExist", err)
	}
}
