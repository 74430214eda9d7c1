// Package testutil provides shared test infrastructure for the comparison
// engine. It consolidates replay and assertion helpers used across sim/
// and sim/policy/ test packages.
package testutil

import (
	"math"
	"testing"

	"github.com/Goodr-Interactive/cachesim/sim/policy"
)

// Replay runs keys through p in order and returns the per-access results.
func Replay(p policy.Policy, keys []policy.Key) []policy.Result {
	results := make([]policy.Result, len(keys))
	for i, key := range keys {
		results[i] = p.Check(key)
	}
	return results
}

// Keys converts plain strings to policy keys for terse test sequences.
func Keys(symbols ...string) []policy.Key {
	keys := make([]policy.Key, len(symbols))
	for i, s := range symbols {
		keys[i] = policy.Key(s)
	}
	return keys
}

// AssertStatsInvariants checks the counter identities every policy must
// maintain at every step.
func AssertStatsInvariants(t *testing.T, s policy.Stats) {
	t.Helper()
	if s.Hits+s.Misses != s.Accesses {
		t.Errorf("hits(%d) + misses(%d) != accesses(%d)", s.Hits, s.Misses, s.Accesses)
	}
	if s.ColdMisses+s.CapacityMisses != s.Misses {
		t.Errorf("cold(%d) + capacity(%d) != misses(%d)", s.ColdMisses, s.CapacityMisses, s.Misses)
	}
	if s.Occupancy > s.Capacity {
		t.Errorf("occupancy %d exceeds capacity %d", s.Occupancy, s.Capacity)
	}
	if s.Occupancy < 0 {
		t.Errorf("negative occupancy %d", s.Occupancy)
	}
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
