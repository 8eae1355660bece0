package flock

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BoundaryPolicy selects what happens to a boid that crosses the world edge.
type BoundaryPolicy string

const (
	// BoundaryBounce clamps the position to the world bounds and negates the
	// corresponding velocity component. This is the default policy.
	BoundaryBounce BoundaryPolicy = "bounce"
	// BoundaryWrap wraps each coordinate modulo the world range (toroidal).
	BoundaryWrap BoundaryPolicy = "wrap"
)

// Config holds every simulation parameter. Weights may be any real number
// (zero disables a rule); everything else must pass Validate before a Flock
// is built.
type Config struct {
	// World Dimensions
	WorldWidth  float64 `json:"worldWidth"`
	WorldHeight float64 `json:"worldHeight"`

	// Population
	PopulationSize int `json:"populationSize"`

	// Interaction Radii
	PerceptionRadius float64 `json:"perceptionRadius"` // How far can they see?
	SeparationRadius float64 `json:"separationRadius"` // Personal space radius

	// Rule weights
	SeparationWeight float64 `json:"separationWeight"`
	AlignmentWeight  float64 `json:"alignmentWeight"`
	CohesionWeight   float64 `json:"cohesionWeight"`

	// Physics
	MaxSpeed float64 `json:"maxSpeed"`
	MaxForce float64 `json:"maxForce"` // Per-rule steering cap
	Dt       float64 `json:"dt"`       // Time step per tick

	Boundary BoundaryPolicy `json:"boundaryPolicy"`
}

// ConfigError reports an invalid simulation parameter. It is the only error
// the core produces at setup time; once a Flock is built, ticks are total.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config: %s %s", e.Field, e.Reason)
}

// DefaultConfig returns parameters tuned for a 1000x800 world.
func DefaultConfig() *Config {
	return &Config{
		WorldWidth:       1000,
		WorldHeight:      800,
		PopulationSize:   250,
		PerceptionRadius: 70.0,
		SeparationRadius: 20.0,
		SeparationWeight: 1.5,
		AlignmentWeight:  1.0,
		CohesionWeight:   1.0,
		MaxSpeed:         4.0,
		MaxForce:         0.3,
		Dt:               1.0,
		Boundary:         BoundaryBounce,
	}
}

// Validate checks the semantic constraints the schema cannot express.
// It returns a *ConfigError naming the first offending field.
func (c *Config) Validate() error {
	switch {
	case c.PopulationSize <= 0:
		return &ConfigError{"populationSize", "must be positive"}
	case c.WorldWidth <= 0:
		return &ConfigError{"worldWidth", "must be positive"}
	case c.WorldHeight <= 0:
		return &ConfigError{"worldHeight", "must be positive"}
	case c.PerceptionRadius <= 0:
		return &ConfigError{"perceptionRadius", "must be positive"}
	case c.SeparationRadius <= 0:
		return &ConfigError{"separationRadius", "must be positive"}
	case c.SeparationRadius > c.PerceptionRadius:
		return &ConfigError{"separationRadius", "must not exceed perceptionRadius"}
	case c.MaxSpeed <= 0:
		return &ConfigError{"maxSpeed", "must be positive"}
	case c.MaxForce <= 0:
		return &ConfigError{"maxForce", "must be positive"}
	case c.Dt <= 0:
		return &ConfigError{"dt", "must be positive"}
	}
	if c.Boundary != BoundaryBounce && c.Boundary != BoundaryWrap {
		return &ConfigError{"boundaryPolicy", fmt.Sprintf("unknown policy %q", c.Boundary)}
	}
	return nil
}

// LoadConfig loads configuration from a JSON file and validates it against
// the schema, then against Validate.
func LoadConfig(configFile string, schemaFile string) (*Config, error) {
	// 1. Compile Schema
	sch, err := jsonschema.Compile(schemaFile)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	// 2. Read Config File
	b, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// 3. Validate against the schema
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("failed to decode config json: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// 4. Unmarshal into the struct and run the semantic checks
	var cfg Config
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if cfg.Boundary == "" {
		cfg.Boundary = BoundaryBounce
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
