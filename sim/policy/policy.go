// Package policy implements the cache eviction policies driven by the
// comparison engine: FIFO, LRU, Clock (second chance), Random, Optimal
// (Belady) and Simplified-2Q.
//
// Every policy operates over an owned fixed-capacity slot table and exposes
// the same contract: Check is the sole mutating operation, Stats and
// DisplayInfo are read-only projections, Reset returns the policy to its
// initial state. Policies keep their slot indices stable so that external
// consumers can render per-slot state across steps.
package policy

import "fmt"

// Key is an opaque symbolic memory/page reference. Keys have equality
// semantics only; the zero value ("") is reserved to mean "no key".
type Key string

// Kind identifies an eviction policy.
type Kind string

const (
	KindFIFO    Kind = "fifo"
	KindLRU     Kind = "lru"
	KindClock   Kind = "clock"
	KindRandom  Kind = "random"
	KindOptimal Kind = "optimal"
	KindTwoQ    Kind = "2q"
)

// Kinds returns all recognized policy kinds in presentation order.
func Kinds() []Kind {
	return []Kind{KindFIFO, KindLRU, KindClock, KindRandom, KindOptimal, KindTwoQ}
}

// Valid reports whether k names a known policy.
func (k Kind) Valid() bool {
	switch k {
	case KindFIFO, KindLRU, KindClock, KindRandom, KindOptimal, KindTwoQ:
		return true
	}
	return false
}

// Name returns the human-readable policy name.
func (k Kind) Name() string {
	switch k {
	case KindFIFO:
		return "FIFO"
	case KindLRU:
		return "LRU"
	case KindClock:
		return "Clock"
	case KindRandom:
		return "Random"
	case KindOptimal:
		return "Optimal"
	case KindTwoQ:
		return "2Q"
	}
	return string(k)
}

// MissType classifies a cache miss.
type MissType string

const (
	// MissNone is the zero value, used on hits.
	MissNone MissType = ""
	// MissCold marks a miss on a key the policy has never held.
	MissCold MissType = "cold"
	// MissCapacity marks a miss on a previously-seen key that was evicted.
	MissCapacity MissType = "capacity"
)

// QueueTag names the 2Q queue a slot belongs to.
type QueueTag string

const (
	QueueNone QueueTag = ""
	QueueA1   QueueTag = "a1"
	QueueAm   QueueTag = "am"
)

// ResultDetail carries policy-specific data attached to a Result. Each
// policy that produces extra decision data has its own concrete type;
// callers that do not care can ignore the field entirely.
type ResultDetail interface {
	resultDetail()
}

// RandomDetail records which slot the Random policy chose to evict.
type RandomDetail struct {
	SlotIndex int
}

// ClockDetail records how many slots the hand passed (clearing reference
// bits) before finding a victim.
type ClockDetail struct {
	HandAdvance int
}

// TwoQDetail records 2Q promotion and eviction provenance.
type TwoQDetail struct {
	QueueTransfer bool     // key promoted from A1 to Am on this hit
	EvictedFrom   QueueTag // queue the victim came from (misses with eviction only)
}

func (RandomDetail) resultDetail() {}
func (ClockDetail) resultDetail()  {}
func (TwoQDetail) resultDetail()   {}

// Result is the outcome of one Check call.
// Evicted and Inserted are the zero Key when not applicable.
type Result struct {
	Hit      bool
	MissType MissType
	Evicted  Key
	Inserted Key
	Detail   ResultDetail
}

// Stats are the monotonically accumulated access counters of one policy.
// Rates are derived, never stored.
type Stats struct {
	Accesses       int
	Hits           int
	Misses         int
	ColdMisses     int
	CapacityMisses int
	Occupancy      int
	UniqueKeys     int // distinct keys ever seen
	Capacity       int
}

// HitRate returns Hits/Accesses, or 0 before any access.
func (s Stats) HitRate() float64 {
	if s.Accesses == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Accesses)
}

// MissRate returns Misses/Accesses, or 0 before any access.
func (s Stats) MissRate() float64 {
	if s.Accesses == 0 {
		return 0
	}
	return float64(s.Misses) / float64(s.Accesses)
}

// DisplayItem is a read-only view of one slot for external rendering.
// Role flags are populated only by the policies they belong to.
type DisplayItem struct {
	Key      Key
	Occupied bool

	Oldest bool // FIFO: earliest-inserted occupied slot
	Newest bool // FIFO: latest-inserted occupied slot

	IsLRU bool // LRU: least recently touched occupied slot
	IsMRU bool // LRU: most recently touched occupied slot

	RefBit bool // Clock: reference bit
	Hand   bool // Clock: current hand position

	Queue QueueTag // 2Q: queue membership
}

// Policy is the common contract of all eviction policies.
// Implementations are not safe for concurrent use; a policy instance is
// owned by exactly one comparison session.
type Policy interface {
	// Kind identifies the policy.
	Kind() Kind
	// Check performs one access: hit bookkeeping or miss classification,
	// slot selection, eviction and installation. It is the sole mutator.
	Check(key Key) Result
	// Stats returns the accumulated counters. Legal before any access.
	Stats() Stats
	// DisplayInfo returns one item per slot, in stable slot order.
	DisplayInfo() []DisplayItem
	// Reset clears slots, counters and the seen set. Idempotent.
	Reset()
	// IsFull reports whether every slot is occupied.
	IsFull() bool
}

// Config carries construction parameters. Capacity is required by every
// policy; the remaining fields apply only to the policies named.
type Config struct {
	Capacity    int
	A1Threshold int   // 2Q: A1 length above which A1 is evicted first; 0 = Capacity/2
	Sequence    []Key // Optimal: the full future access sequence
	Seed        int64 // Random: eviction RNG seed
}

// New constructs a policy of the given kind. Unknown kinds and
// non-positive capacities are configuration errors and fail immediately.
func New(kind Kind, cfg Config) (Policy, error) {
	if cfg.Capacity <= 0 {
		return nil, fmt.Errorf("policy %q: capacity must be positive, got %d", kind, cfg.Capacity)
	}
	switch kind {
	case KindFIFO:
		return NewFIFO(cfg.Capacity), nil
	case KindLRU:
		return NewLRU(cfg.Capacity), nil
	case KindClock:
		return NewClock(cfg.Capacity), nil
	case KindRandom:
		return NewRandom(cfg.Capacity, cfg.Seed), nil
	case KindOptimal:
		return NewOptimal(cfg.Capacity, cfg.Sequence), nil
	case KindTwoQ:
		threshold := cfg.A1Threshold
		if threshold < 0 {
			return nil, fmt.Errorf("policy %q: a1Threshold must be non-negative, got %d", kind, threshold)
		}
		if threshold == 0 {
			threshold = cfg.Capacity / 2
		}
		return NewTwoQ(cfg.Capacity, threshold), nil
	default:
		return nil, fmt.Errorf("unknown policy %q; valid policies: %v", kind, Kinds())
	}
}
