package sim

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Goodr-Interactive/cachesim/sim/policy"
)

func validScenario() ScenarioConfig {
	return ScenarioConfig{
		PolicyA:        "fifo",
		PolicyB:        "lru",
		Capacity:       3,
		SequenceLength: 10,
	}
}

func TestScenarioConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ScenarioConfig)
		wantErr string
	}{
		{"valid generated", func(c *ScenarioConfig) {}, ""},
		{"valid explicit", func(c *ScenarioConfig) {
			c.SequenceLength = 0
			c.Sequence = []string{"A", "B"}
		}, ""},
		{"unknown policyA", func(c *ScenarioConfig) { c.PolicyA = "mru" }, "unknown policyA"},
		{"unknown policyB", func(c *ScenarioConfig) { c.PolicyB = "" }, "unknown policyB"},
		{"zero capacity", func(c *ScenarioConfig) { c.Capacity = 0 }, "capacity"},
		{"negative threshold", func(c *ScenarioConfig) { c.A1Threshold = -1 }, "a1Threshold"},
		{"no sequence source", func(c *ScenarioConfig) { c.SequenceLength = 0 }, "sequence"},
		{"empty sequence key", func(c *ScenarioConfig) { c.Sequence = []string{"A", ""} }, "sequence[1]"},
		{"empty alphabet key", func(c *ScenarioConfig) { c.Alphabet = []string{""} }, "alphabet[0]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validScenario()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadScenario_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("policyA: [unclosed"), 0o644))

	_, err := LoadScenario(path)
	assert.Error(t, err)
}

func TestLoadScenario_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	content := `
name: round-trip
policyA: clock
policyB: 2q
capacity: 4
a1Threshold: 1
seed: 9
sequence: [A, B, A, C]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, "round-trip", cfg.Name)
	assert.Equal(t, "clock", cfg.PolicyA)
	assert.Equal(t, 4, cfg.Capacity)

	ctrlCfg := cfg.ControllerConfig()
	assert.Equal(t, policy.KindClock, ctrlCfg.PolicyA)
	assert.Equal(t, policy.KindTwoQ, ctrlCfg.PolicyB)
	assert.Equal(t, []policy.Key{"A", "B", "A", "C"}, ctrlCfg.Sequence)

	c, err := NewController(ctrlCfg)
	require.NoError(t, err)
	assert.Equal(t, 3, c.MaxStep())
}
