// Package sim provides the cache policy comparison engine.
//
// # Reading Guide
//
// Start with these files to understand the engine:
//   - sequence.go: access sequence generation over a small symbol alphabet
//   - controller.go: the comparison session — eager full-trace replay and
//     bidirectional, random-access navigation over the result
//   - rng.go: seed partitioning for reproducible sessions
//
// # Architecture
//
// The sim package owns session lifecycle and configuration; the
// algorithms live in sub-packages:
//   - sim/policy/: the six eviction policies behind one Policy interface
//   - sim/trace/: flat replay records and summary aggregation (pure data)
//
// A Controller drives two policy instances over one shared access
// sequence and precomputes every step before navigation begins. The whole
// trace is rebuilt from fresh policy instances on any configuration
// change; nothing is mutated incrementally. Optimal's full-sequence
// lookahead and O(1) backward stepping both depend on this.
//
// Everything is single-threaded and synchronous. A Controller is an
// owned, per-session value; hosts that need concurrency should give each
// session its own Controller rather than share one.
package sim
