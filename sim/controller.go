package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Goodr-Interactive/cachesim/sim/policy"
	"github.com/Goodr-Interactive/cachesim/sim/trace"
)

// PolicySnapshot is one policy's full state after (or before) a step:
// the access outcome, the per-slot display projection and the cumulative
// counters at that point.
type PolicySnapshot struct {
	Kind    policy.Kind
	Result  policy.Result
	Display []policy.DisplayItem
	Stats   policy.Stats
}

// ComparisonStep pairs one access index with both policies' snapshots.
// Steps are immutable once built.
type ComparisonStep struct {
	Index  int
	Access policy.Key
	A      PolicySnapshot
	B      PolicySnapshot
}

// Comparison is the view of the session at the current cursor, consumed
// by presentation layers. Result pointers are nil before step 0.
type Comparison struct {
	Step   int
	Access policy.Key // zero Key before step 0
	A      PolicyView
	B      PolicyView
}

// PolicyView is one side of a Comparison.
type PolicyView struct {
	Kind    policy.Kind
	Name    string
	Result  *policy.Result
	Display []policy.DisplayItem
	Stats   policy.Stats
}

// ControllerConfig carries everything needed to build a comparison
// session. Sequence, when non-empty, overrides SequenceLength.
type ControllerConfig struct {
	PolicyA        policy.Kind
	PolicyB        policy.Kind
	Capacity       int
	A1Threshold    int // 2Q policies only; 0 = Capacity/2
	Seed           int64
	SequenceLength int
	Alphabet       []policy.Key // nil = DefaultAlphabet
	Sequence       []policy.Key // explicit sequence (overrides SequenceLength)
}

// Controller owns two policy instances sharing one access sequence and
// the fully precomputed trace of every step.
//
// The trace is rebuilt eagerly and wholesale whenever the sequence,
// capacity or either policy selection changes. That is a requirement,
// not an optimization: Optimal needs the entire sequence before its
// first eviction, and precomputation is what makes backward stepping and
// random jumps O(1) with no re-simulation.
//
// Not safe for concurrent use: a Controller is an owned, per-session value.
type Controller struct {
	policyA     policy.Kind
	policyB     policy.Kind
	capacity    int
	a1Threshold int
	alphabet    []policy.Key

	rng      *PartitionedRNG
	sequence []policy.Key
	steps    []ComparisonStep
	baseline ComparisonStep // synthesized empty state for cursor -1
	cursor   int
	trace    *trace.ComparisonTrace
}

// NewController builds a session and eagerly replays the full sequence.
// Configuration errors (unknown policy, non-positive capacity, no
// sequence source) reject construction immediately.
func NewController(cfg ControllerConfig) (*Controller, error) {
	if !cfg.PolicyA.Valid() {
		return nil, fmt.Errorf("unknown policyA %q; valid policies: %v", cfg.PolicyA, policy.Kinds())
	}
	if !cfg.PolicyB.Valid() {
		return nil, fmt.Errorf("unknown policyB %q; valid policies: %v", cfg.PolicyB, policy.Kinds())
	}
	if cfg.Capacity <= 0 {
		return nil, fmt.Errorf("capacity must be positive, got %d", cfg.Capacity)
	}
	if len(cfg.Sequence) == 0 && cfg.SequenceLength <= 0 {
		return nil, fmt.Errorf("either an explicit sequence or a positive sequence length is required")
	}

	c := &Controller{
		policyA:     cfg.PolicyA,
		policyB:     cfg.PolicyB,
		capacity:    cfg.Capacity,
		a1Threshold: cfg.A1Threshold,
		alphabet:    cfg.Alphabet,
		rng:         NewPartitionedRNG(NewSimulationKey(cfg.Seed)),
		cursor:      -1,
	}
	if len(cfg.Sequence) > 0 {
		c.sequence = copyKeys(cfg.Sequence)
	} else {
		c.sequence = GenerateSequence(cfg.SequenceLength, c.alphabet, c.rng.ForSubsystem(SubsystemSequence))
	}
	if err := c.rebuild(); err != nil {
		return nil, err
	}
	return c, nil
}

// rebuild replays the entire sequence against fresh instances of both
// policies and rebuilds the step list. The previous trace is discarded
// wholesale; nothing is mutated incrementally.
func (c *Controller) rebuild() error {
	a, err := c.newPolicy(c.policyA)
	if err != nil {
		return err
	}
	b, err := c.newPolicy(c.policyB)
	if err != nil {
		return err
	}

	labelA, labelB := a.Kind().Name(), b.Kind().Name()
	if labelA == labelB {
		labelA += " (A)"
		labelB += " (B)"
	}
	c.trace = trace.NewComparisonTrace(labelA, labelB, c.capacity)

	c.baseline = ComparisonStep{
		Index:  -1,
		A:      PolicySnapshot{Kind: a.Kind(), Display: a.DisplayInfo(), Stats: a.Stats()},
		B:      PolicySnapshot{Kind: b.Kind(), Display: b.DisplayInfo(), Stats: b.Stats()},
	}

	c.steps = make([]ComparisonStep, 0, len(c.sequence))
	for i, key := range c.sequence {
		resA := a.Check(key)
		resB := b.Check(key)
		c.steps = append(c.steps, ComparisonStep{
			Index:  i,
			Access: key,
			A:      PolicySnapshot{Kind: a.Kind(), Result: resA, Display: a.DisplayInfo(), Stats: a.Stats()},
			B:      PolicySnapshot{Kind: b.Kind(), Result: resB, Display: b.DisplayInfo(), Stats: b.Stats()},
		})
		c.trace.Record(stepRecord(i, key, labelA, resA))
		c.trace.Record(stepRecord(i, key, labelB, resB))
	}

	logrus.Debugf("rebuilt comparison trace: %s vs %s, capacity=%d, %d steps",
		labelA, labelB, c.capacity, len(c.steps))
	return nil
}

// newPolicy creates a fresh policy instance bound to the controller's
// current sequence (Optimal) and eviction RNG stream (Random).
func (c *Controller) newPolicy(kind policy.Kind) (policy.Policy, error) {
	cfg := policy.Config{
		Capacity:    c.capacity,
		A1Threshold: c.a1Threshold,
	}
	switch kind {
	case policy.KindOptimal:
		cfg.Sequence = c.sequence
	case policy.KindRandom:
		cfg.Seed = c.rng.ForSubsystem(SubsystemEviction).Int63()
	}
	return policy.New(kind, cfg)
}

func stepRecord(index int, key policy.Key, label string, res policy.Result) trace.StepRecord {
	return trace.StepRecord{
		Index:    index,
		Access:   string(key),
		Policy:   label,
		Hit:      res.Hit,
		MissType: string(res.MissType),
		Evicted:  string(res.Evicted),
		Inserted: string(res.Inserted),
	}
}

func copyKeys(keys []policy.Key) []policy.Key {
	cp := make([]policy.Key, len(keys))
	copy(cp, keys)
	return cp
}

// === Navigation ===

// StepForward advances the cursor by one. Returns false at the end.
func (c *Controller) StepForward() bool {
	if c.cursor >= c.MaxStep() {
		return false
	}
	c.cursor++
	return true
}

// StepBackward moves the cursor back by one. Returns false at the start.
func (c *Controller) StepBackward() bool {
	if c.cursor <= -1 {
		return false
	}
	c.cursor--
	return true
}

// JumpToStep sets the cursor directly. Returns false when step is outside
// [-1, MaxStep].
func (c *Controller) JumpToStep(step int) bool {
	if step < -1 || step > c.MaxStep() {
		return false
	}
	c.cursor = step
	return true
}

// Reset rewinds the cursor to before the first access. The precomputed
// trace is kept.
func (c *Controller) Reset() {
	c.cursor = -1
}

// === Reconfiguration ===

// UpdatePolicies swaps both policy selections and rebuilds the full trace
// against the unchanged sequence. The cursor rewinds.
func (c *Controller) UpdatePolicies(policyA, policyB policy.Kind) error {
	if !policyA.Valid() {
		return fmt.Errorf("unknown policyA %q; valid policies: %v", policyA, policy.Kinds())
	}
	if !policyB.Valid() {
		return fmt.Errorf("unknown policyB %q; valid policies: %v", policyB, policy.Kinds())
	}
	c.policyA = policyA
	c.policyB = policyB
	c.cursor = -1
	return c.rebuild()
}

// GenerateNewSequence draws a fresh sequence of the given length and
// rebuilds the trace. The cursor rewinds.
func (c *Controller) GenerateNewSequence(length int) error {
	if length <= 0 {
		return fmt.Errorf("sequence length must be positive, got %d", length)
	}
	c.sequence = GenerateSequence(length, c.alphabet, c.rng.ForSubsystem(SubsystemSequence))
	c.cursor = -1
	return c.rebuild()
}

// SetCustomSequence replaces the sequence with a caller-provided one and
// rebuilds the trace. The cursor rewinds.
func (c *Controller) SetCustomSequence(sequence []policy.Key) error {
	if len(sequence) == 0 {
		return fmt.Errorf("custom sequence must not be empty")
	}
	for i, key := range sequence {
		if key == "" {
			return fmt.Errorf("custom sequence key %d is empty", i)
		}
	}
	c.sequence = copyKeys(sequence)
	c.cursor = -1
	return c.rebuild()
}

// === Queries ===

// AccessSequence returns a copy of the current access sequence.
func (c *Controller) AccessSequence() []policy.Key {
	return copyKeys(c.sequence)
}

// CurrentStep returns the cursor position, -1 before any access.
func (c *Controller) CurrentStep() int { return c.cursor }

// MaxStep returns the index of the last step, -1 for an empty sequence.
func (c *Controller) MaxStep() int { return len(c.sequence) - 1 }

// CurrentAccessValue returns the key accessed at the cursor. The second
// return is false before step 0.
func (c *Controller) CurrentAccessValue() (policy.Key, bool) {
	if c.cursor < 0 {
		return "", false
	}
	return c.sequence[c.cursor], true
}

// Trace returns the flat replay trace for reporting and export.
func (c *Controller) Trace() *trace.ComparisonTrace { return c.trace }

// Step returns the precomputed step at the given index, or the synthesized
// empty step for -1. The second return is false when out of range.
func (c *Controller) Step(index int) (ComparisonStep, bool) {
	if index == -1 {
		return c.baseline, true
	}
	if index < 0 || index > c.MaxStep() {
		return ComparisonStep{}, false
	}
	return c.steps[index], true
}

// CurrentComparison returns both policies' state at the cursor. At cursor
// -1 it returns the synthesized empty comparison: both caches empty, zero
// stats, nil results.
func (c *Controller) CurrentComparison() Comparison {
	step, _ := c.Step(c.cursor)
	cmp := Comparison{
		Step:   c.cursor,
		Access: step.Access,
		A:      policyView(c.policyA, step.A),
		B:      policyView(c.policyB, step.B),
	}
	if c.cursor < 0 {
		cmp.A.Result = nil
		cmp.B.Result = nil
	}
	return cmp
}

func policyView(kind policy.Kind, snap PolicySnapshot) PolicyView {
	result := snap.Result
	return PolicyView{
		Kind:    kind,
		Name:    kind.Name(),
		Result:  &result,
		Display: snap.Display,
		Stats:   snap.Stats,
	}
}
