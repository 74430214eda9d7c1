package policy

// table is the fixed slot array and miss-classification bookkeeping shared
// by every policy. Policies embed it and layer their own ordering metadata
// (insertion counters, touch counters, reference bits, queue membership)
// on top of the stable slot indices.
type table struct {
	kind     Kind
	capacity int
	keys     []Key
	occupied []bool
	seen     map[Key]struct{}
	stats    Stats
}

func newTable(kind Kind, capacity int) table {
	return table{
		kind:     kind,
		capacity: capacity,
		keys:     make([]Key, capacity),
		occupied: make([]bool, capacity),
		seen:     make(map[Key]struct{}),
		stats:    Stats{Capacity: capacity},
	}
}

// Kind implements Policy for all embedders.
func (t *table) Kind() Kind { return t.kind }

// Stats implements Policy for all embedders.
func (t *table) Stats() Stats {
	s := t.stats
	s.UniqueKeys = len(t.seen)
	return s
}

// IsFull implements Policy for all embedders.
func (t *table) IsFull() bool { return t.stats.Occupancy == t.capacity }

// lookup returns the slot index holding key, or -1.
func (t *table) lookup(key Key) int {
	for i, k := range t.keys {
		if t.occupied[i] && k == key {
			return i
		}
	}
	return -1
}

// firstEmpty returns the lowest empty slot index, or -1 when full.
func (t *table) firstEmpty() int {
	for i, occ := range t.occupied {
		if !occ {
			return i
		}
	}
	return -1
}

// recordHit bumps the hit counters.
func (t *table) recordHit() {
	t.stats.Accesses++
	t.stats.Hits++
}

// recordMiss classifies the miss (cold iff key was never seen), marks the
// key as seen and bumps the miss counters.
func (t *table) recordMiss(key Key) MissType {
	t.stats.Accesses++
	t.stats.Misses++
	missType := MissCapacity
	if _, ok := t.seen[key]; !ok {
		missType = MissCold
		t.stats.ColdMisses++
	} else {
		t.stats.CapacityMisses++
	}
	t.seen[key] = struct{}{}
	return missType
}

// evict vacates slot i and returns the key it held.
func (t *table) evict(i int) Key {
	key := t.keys[i]
	t.keys[i] = ""
	t.occupied[i] = false
	t.stats.Occupancy--
	return key
}

// install places key into the empty slot i.
func (t *table) install(i int, key Key) {
	t.keys[i] = key
	t.occupied[i] = true
	t.stats.Occupancy++
}

// resetTable restores the table to its initial state.
func (t *table) resetTable() {
	for i := range t.keys {
		t.keys[i] = ""
		t.occupied[i] = false
	}
	t.seen = make(map[Key]struct{})
	t.stats = Stats{Capacity: t.capacity}
}

// baseDisplay builds a DisplayItem per slot with key and occupancy filled
// in; policies decorate the role flags afterwards.
func (t *table) baseDisplay() []DisplayItem {
	items := make([]DisplayItem, t.capacity)
	for i := range items {
		items[i] = DisplayItem{Key: t.keys[i], Occupied: t.occupied[i]}
	}
	return items
}
