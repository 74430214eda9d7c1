package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Goodr-Interactive/cachesim/sim/policy"
)

// ScenarioConfig describes one comparison scenario as loaded from a YAML
// file. Either Sequence (explicit keys) or SequenceLength (generated from
// Seed) drives the replay; an explicit sequence wins when both are set.
type ScenarioConfig struct {
	Name           string   `yaml:"name"`           // optional scenario label
	PolicyA        string   `yaml:"policyA"`        // first policy kind
	PolicyB        string   `yaml:"policyB"`        // second policy kind
	Capacity       int      `yaml:"capacity"`       // slots per policy (must be > 0)
	A1Threshold    int      `yaml:"a1Threshold"`    // 2Q only; 0 = capacity/2
	Seed           int64    `yaml:"seed"`           // master seed for generated sequences
	SequenceLength int      `yaml:"sequenceLength"` // generated sequence length
	Alphabet       []string `yaml:"alphabet"`       // optional symbol set override
	Sequence       []string `yaml:"sequence"`       // explicit access sequence
}

// LoadScenario reads and validates a scenario YAML file.
func LoadScenario(path string) (*ScenarioConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	var cfg ScenarioConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks the scenario for configuration errors.
func (c *ScenarioConfig) Validate() error {
	if !policy.Kind(c.PolicyA).Valid() {
		return fmt.Errorf("unknown policyA %q; valid policies: %v", c.PolicyA, policy.Kinds())
	}
	if !policy.Kind(c.PolicyB).Valid() {
		return fmt.Errorf("unknown policyB %q; valid policies: %v", c.PolicyB, policy.Kinds())
	}
	if c.Capacity <= 0 {
		return fmt.Errorf("capacity must be positive, got %d", c.Capacity)
	}
	if c.A1Threshold < 0 {
		return fmt.Errorf("a1Threshold must be non-negative, got %d", c.A1Threshold)
	}
	if len(c.Sequence) == 0 && c.SequenceLength <= 0 {
		return fmt.Errorf("either sequence or a positive sequenceLength is required")
	}
	for i, k := range c.Sequence {
		if k == "" {
			return fmt.Errorf("sequence[%d] is empty", i)
		}
	}
	for i, k := range c.Alphabet {
		if k == "" {
			return fmt.Errorf("alphabet[%d] is empty", i)
		}
	}
	return nil
}

// ControllerConfig converts the scenario into engine configuration.
func (c *ScenarioConfig) ControllerConfig() ControllerConfig {
	return ControllerConfig{
		PolicyA:        policy.Kind(c.PolicyA),
		PolicyB:        policy.Kind(c.PolicyB),
		Capacity:       c.Capacity,
		A1Threshold:    c.A1Threshold,
		Seed:           c.Seed,
		SequenceLength: c.SequenceLength,
		Alphabet:       toKeys(c.Alphabet),
		Sequence:       toKeys(c.Sequence),
	}
}

func toKeys(symbols []string) []policy.Key {
	if len(symbols) == 0 {
		return nil
	}
	keys := make([]policy.Key, len(symbols))
	for i, s := range symbols {
		keys[i] = policy.Key(s)
	}
	return keys
}
