package policy

import "math/rand"

// Random evicts a uniformly chosen occupied slot. It keeps no recency
// state and serves as the worst-reasonable baseline against which the
// other policies are compared.
//
// The eviction stream is seeded at construction and re-seeded by Reset,
// so replaying the same sequence after a Reset reproduces the same trace.
type Random struct {
	table
	seed int64
	rng  *rand.Rand
}

// NewRandom creates a Random policy with the given capacity and eviction
// RNG seed.
func NewRandom(capacity int, seed int64) *Random {
	return &Random{
		table: newTable(KindRandom, capacity),
		seed:  seed,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// Check implements Policy.
func (r *Random) Check(key Key) Result {
	if r.lookup(key) >= 0 {
		r.recordHit()
		return Result{Hit: true}
	}

	missType := r.recordMiss(key)
	result := Result{MissType: missType, Inserted: key}

	slot := r.firstEmpty()
	if slot < 0 {
		slot = r.pickOccupied()
		result.Evicted = r.evict(slot)
		result.Detail = RandomDetail{SlotIndex: slot}
	}
	r.install(slot, key)
	return result
}

// pickOccupied chooses uniformly among currently occupied slots.
func (r *Random) pickOccupied() int {
	occupied := make([]int, 0, r.capacity)
	for i, occ := range r.occupied {
		if occ {
			occupied = append(occupied, i)
		}
	}
	return occupied[r.rng.Intn(len(occupied))]
}

// DisplayInfo implements Policy. Random has no role flags to add.
func (r *Random) DisplayInfo() []DisplayItem {
	return r.baseDisplay()
}

// Reset implements Policy, re-seeding the eviction stream.
func (r *Random) Reset() {
	r.resetTable()
	r.rng = rand.New(rand.NewSource(r.seed))
}
