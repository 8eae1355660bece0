package flock

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string // empty means valid
	}{
		{"default is valid", func(c *Config) {}, ""},
		{"zero population", func(c *Config) { c.PopulationSize = 0 }, "populationSize"},
		{"negative width", func(c *Config) { c.WorldWidth = -1 }, "worldWidth"},
		{"zero height", func(c *Config) { c.WorldHeight = 0 }, "worldHeight"},
		{"negative perception", func(c *Config) { c.PerceptionRadius = -5 }, "perceptionRadius"},
		{"zero separation radius", func(c *Config) { c.SeparationRadius = 0 }, "separationRadius"},
		{"separation beyond perception", func(c *Config) { c.SeparationRadius = c.PerceptionRadius + 1 }, "separationRadius"},
		{"zero max speed", func(c *Config) { c.MaxSpeed = 0 }, "maxSpeed"},
		{"negative max force", func(c *Config) { c.MaxForce = -0.1 }, "maxForce"},
		{"zero dt", func(c *Config) { c.Dt = 0 }, "dt"},
		{"unknown boundary", func(c *Config) { c.Boundary = "teleport" }, "boundaryPolicy"},
		{"negative weights are allowed", func(c *Config) { c.CohesionWeight = -2 }, ""},
		{"zero weights are allowed", func(c *Config) {
			c.SeparationWeight, c.AlignmentWeight, c.CohesionWeight = 0, 0, 0
		}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			cfgErr, ok := err.(*ConfigError)
			if !ok {
				t.Fatalf("expected *ConfigError, got %T (%v)", err, err)
			}
			if cfgErr.Field != tt.wantField {
				t.Errorf("error field = %q; want %q", cfgErr.Field, tt.wantField)
			}
		})
	}
}

const testSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "properties": {
    "worldWidth": {"type": "number", "exclusiveMinimum": 0},
    "worldHeight": {"type": "number", "exclusiveMinimum": 0},
    "populationSize": {"type": "integer", "minimum": 1},
    "perceptionRadius": {"type": "number", "exclusiveMinimum": 0}
  },
  "required": ["worldWidth", "worldHeight", "populationSize"]
}`

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	schema := writeTestFile(t, dir, "schema.json", testSchema)

	t.Run("valid config", func(t *testing.T) {
		cfgFile := writeTestFile(t, dir, "good.json", `{
			"worldWidth": 640, "worldHeight": 480, "populationSize": 100,
			"perceptionRadius": 50, "separationRadius": 15,
			"separationWeight": 1.5, "alignmentWeight": 1, "cohesionWeight": 1,
			"maxSpeed": 4, "maxForce": 0.3, "dt": 1,
			"boundaryPolicy": "wrap"
		}`)

		cfg, err := LoadConfig(cfgFile, schema)
		if err != nil {
			t.Fatal(err)
		}
		if cfg.WorldWidth != 640 || cfg.PopulationSize != 100 {
			t.Errorf("unexpected config: %+v", cfg)
		}
		if cfg.Boundary != BoundaryWrap {
			t.Errorf("boundary = %q; want wrap", cfg.Boundary)
		}
	})

	t.Run("default boundary policy", func(t *testing.T) {
		cfgFile := writeTestFile(t, dir, "nopolicy.json", `{
			"worldWidth": 640, "worldHeight": 480, "populationSize": 100,
			"perceptionRadius": 50, "separationRadius": 15,
			"maxSpeed": 4, "maxForce": 0.3, "dt": 1
		}`)

		cfg, err := LoadConfig(cfgFile, schema)
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Boundary != BoundaryBounce {
			t.Errorf("boundary = %q; want bounce default", cfg.Boundary)
		}
	})

	t.Run("schema violation", func(t *testing.T) {
		cfgFile := writeTestFile(t, dir, "bad-schema.json", `{"worldWidth": 640}`)
		if _, err := LoadConfig(cfgFile, schema); err == nil {
			t.Fatal("expected schema validation error")
		}
	})

	t.Run("semantic violation", func(t *testing.T) {
		// Passes the schema but fails Validate (separation > perception).
		cfgFile := writeTestFile(t, dir, "bad-semantic.json", `{
			"worldWidth": 640, "worldHeight": 480, "populationSize": 100,
			"perceptionRadius": 10, "separationRadius": 50,
			"maxSpeed": 4, "maxForce": 0.3, "dt": 1
		}`)
		if _, err := LoadConfig(cfgFile, schema); err == nil {
			t.Fatal("expected semantic validation error")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(dir, "nope.json"), schema); err == nil {
			t.Fatal("expected error for missing config file")
		}
	})
}
