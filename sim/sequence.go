package sim

import (
	"math/rand"

	"github.com/Goodr-Interactive/cachesim/sim/policy"
)

// DefaultAlphabet is the symbol set sequences are drawn from when the
// caller does not supply one. Ten symbols against sequences of tens of
// accesses keeps repetition high enough that every policy shows a mix of
// hits, cold misses and capacity misses.
var DefaultAlphabet = []policy.Key{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"}

// GenerateSequence draws length keys uniformly from alphabet using rng.
// Deterministic given the same alphabet and rng state. An empty alphabet
// falls back to DefaultAlphabet; a non-positive length yields an empty
// sequence.
func GenerateSequence(length int, alphabet []policy.Key, rng *rand.Rand) []policy.Key {
	if len(alphabet) == 0 {
		alphabet = DefaultAlphabet
	}
	if length <= 0 {
		return []policy.Key{}
	}
	sequence := make([]policy.Key, length)
	for i := range sequence {
		sequence[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return sequence
}
