// internal/config/settings.go
package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var schemaJSON string

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

type Config struct {
	Grid       Grid       `yaml:"grid"`
	Colony     Colony     `yaml:"colony"`
	Assignment Assignment `yaml:"assignment"`
	Transit    Transit    `yaml:"transit"`
	Rocks      Rocks      `yaml:"rocks"`
}

type Grid struct {
	HexSize   float64 `yaml:"hex_size"`
	MapRadius int     `yaml:"map_radius"`
}

type Colony struct {
	Workers      int     `yaml:"workers"`
	QueenRadius  float64 `yaml:"queen_radius"`
	WorkerRadius float64 `yaml:"worker_radius"`
	WorkerSpeed  float64 `yaml:"worker_speed"` // world units per second
}

type Assignment struct {
	// MaxSearchRadius is the last ring scanned around the destination before
	// an agent's order is skipped.
	MaxSearchRadius int `yaml:"max_search_radius"`
}

type Transit struct {
	TickRateHz      int     `yaml:"tick_rate_hz"`
	ClearanceMargin float64 `yaml:"clearance_margin"`
	ArrivalEpsilon  float64 `yaml:"arrival_epsilon"`
	// MaxBlockedRetries is how many consecutive blocked ticks an order survives.
	MaxBlockedRetries int  `yaml:"max_blocked_retries"`
	ParallelProbes    bool `yaml:"parallel_probes"`
}

// TickDuration returns the fixed tick length in seconds.
func (t Transit) TickDuration() float64 {
	return 1 / float64(t.TickRateHz)
}

type Rocks struct {
	Enabled      bool    `yaml:"enabled"`
	Seed         int64   `yaml:"seed"`
	Threshold    float64 `yaml:"threshold"`
	Frequency    float64 `yaml:"frequency"`
	Octaves      int     `yaml:"octaves"`
	KeepClear    int     `yaml:"keep_clear"`
	RadiusFactor float64 `yaml:"radius_factor"` // rock body radius as a fraction of HexSize
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Grid: Grid{
			HexSize:   20,
			MapRadius: 10,
		},
		Colony: Colony{
			Workers:      3,
			QueenRadius:  12.5,
			WorkerRadius: 5,
			WorkerSpeed:  100,
		},
		Assignment: Assignment{
			MaxSearchRadius: 9,
		},
		Transit: Transit{
			TickRateHz:        60,
			ClearanceMargin:   0.5,
			ArrivalEpsilon:    2,
			MaxBlockedRetries: 30,
		},
		Rocks: Rocks{
			Enabled:      false,
			Seed:         1,
			Threshold:    0.68,
			Frequency:    0.3,
			Octaves:      3,
			KeepClear:    2,
			RadiusFactor: 0.75,
		},
	}
}

// Load reads a YAML file on top of Default. Unknown keys and out-of-range values are
// rejected by the embedded schema before decoding.
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := Validate(raw); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks a YAML document against the configuration schema.
func Validate(raw []byte) error {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return err
	}
	if doc == nil {
		return nil
	}
	// Round-trip through JSON so the validator sees plain JSON types.
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("config is not a plain mapping: %w", err)
	}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	s, err := compiledSchema()
	if err != nil {
		return err
	}
	return s.Validate(v)
}

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = jsonschema.CompileString("config.schema.json", schemaJSON)
	})
	return schema, schemaErr
}
