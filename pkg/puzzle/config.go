// Package puzzle is the top-level orchestrator: it loads a Config,
// drives the encoder/solver/decoder pipeline, and hands back a decoded
// Result.
package puzzle

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kronologic/kronogen/pkg/encoder"
	"github.com/kronologic/kronogen/pkg/mapparse"
)

// Config specifies everything one generation run needs: the room graph,
// cast, movement rules, scenario selection, and the solver's time
// budget. It supports YAML parsing and includes comprehensive
// validation.
type Config struct {
	// Seed is the master seed for deterministic generation. Use 0 to
	// auto-generate from current time.
	Seed uint64 `yaml:"seed" json:"seed"`

	// Rooms is the ordered, unique set of room names. Populated from Map
	// when Map is non-empty.
	Rooms []string `yaml:"rooms,omitempty" json:"rooms,omitempty"`

	// Edges lists undirected room connections. Populated from Map when
	// Map is non-empty.
	Edges [][2]string `yaml:"edges,omitempty" json:"edges,omitempty"`

	// Map is an optional Mermaid-like plain-text room graph ("A --- B"
	// per line, see pkg/mapparse). When present it takes precedence over
	// Rooms/Edges, letting a config author sketch the graph instead of
	// listing rooms and edges by hand.
	Map string `yaml:"map,omitempty" json:"map,omitempty"`

	// Chars is the ordered, unique cast of characters.
	Chars []string `yaml:"chars" json:"chars"`

	// T is the number of timesteps to schedule.
	T int `yaml:"t" json:"t"`

	// MustMove forbids staying in place absent a scenario override.
	MustMove bool `yaml:"mustMove" json:"mustMove"`

	// AllowStay permits staying in place absent MustMove.
	AllowStay bool `yaml:"allowStay" json:"allowStay"`

	// Scenarios selects which of the 16 puzzle scenarios are active.
	Scenarios encoder.ScenarioFlags `yaml:"scenarios" json:"scenarios"`

	// SolveTimeout bounds the SAT solver's wall-clock budget. Zero means
	// satsolver.DefaultTimeout.
	SolveTimeout time.Duration `yaml:"solveTimeout,omitempty" json:"solveTimeout,omitempty"`
}

// LoadConfig reads and validates a YAML configuration file. Returns a
// validated Config or an error if parsing or validation fails.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return LoadConfigFromBytes(data)
}

// LoadConfigFromBytes parses YAML configuration from a byte slice.
// Useful for testing and programmatic config generation.
func LoadConfigFromBytes(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	if cfg.Map != "" {
		rooms, edges, err := mapparse.Parse(strings.NewReader(cfg.Map))
		if err != nil {
			return nil, fmt.Errorf("parsing map: %w", err)
		}
		cfg.Rooms = rooms
		cfg.Edges = make([][2]string, len(edges))
		for i, e := range edges {
			cfg.Edges[i] = [2]string(e)
		}
	}

	if cfg.Seed == 0 {
		cfg.Seed = generateSeed()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate checks the configuration's structural constraints. Scenario
// preconditions (room/character counts, T bounds) are left to
// encoder.Encode, since they depend on which scenarios are active.
func (c *Config) Validate() error {
	if len(c.Rooms) == 0 {
		return fmt.Errorf("rooms must not be empty")
	}
	if len(c.Chars) == 0 {
		return fmt.Errorf("chars must not be empty")
	}
	if c.T < 1 {
		return fmt.Errorf("t must be at least 1, got %d", c.T)
	}
	return nil
}

// toEncoderConfig projects Config onto the fields encoder.Encode needs.
func (c *Config) toEncoderConfig() encoder.Config {
	seed := c.Seed
	return encoder.Config{
		Rooms:     c.Rooms,
		Edges:     c.Edges,
		Chars:     c.Chars,
		T:         c.T,
		MustMove:  c.MustMove,
		AllowStay: c.AllowStay,
		Scenarios: c.Scenarios,
		Seed:      &seed,
	}
}

// ToYAML serializes the config to YAML bytes.
func (c *Config) ToYAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// Hash computes a deterministic hash of the configuration. Surfaced in
// Stats so two runs can be compared for config equality without a full
// diff.
func (c *Config) Hash() []byte {
	data, err := c.ToYAML()
	if err != nil {
		h := sha256.New()
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], c.Seed)
		h.Write(buf[:])
		return h.Sum(nil)
	}
	h := sha256.New()
	h.Write(data)
	return h.Sum(nil)
}

// generateSeed creates a seed from the current time, with nanosecond
// precision for better uniqueness.
func generateSeed() uint64 {
	now := time.Now().UnixNano()
	if now < 0 {
		now = -now
	}
	seed := uint64(now)
	if seed == 0 {
		seed = 1
	}
	return seed
}
