package policy

// LRU evicts the slot touched least recently. Every hit and every
// installation stamps the slot with a monotonically increasing counter;
// eviction targets the occupied slot with the smallest stamp.
//
// The counter-scan form is deliberate: capacities here are single digits,
// and keeping slot indices fixed lets DisplayInfo show stable positions.
type LRU struct {
	table
	touchedAt []uint64
	counter   uint64
}

// NewLRU creates an LRU policy with the given capacity.
func NewLRU(capacity int) *LRU {
	return &LRU{
		table:     newTable(KindLRU, capacity),
		touchedAt: make([]uint64, capacity),
	}
}

// Check implements Policy.
func (l *LRU) Check(key Key) Result {
	if slot := l.lookup(key); slot >= 0 {
		l.recordHit()
		l.counter++
		l.touchedAt[slot] = l.counter
		return Result{Hit: true}
	}

	missType := l.recordMiss(key)
	result := Result{MissType: missType, Inserted: key}

	slot := l.firstEmpty()
	if slot < 0 {
		slot = l.leastRecent()
		result.Evicted = l.evict(slot)
	}
	l.install(slot, key)
	l.counter++
	l.touchedAt[slot] = l.counter
	return result
}

// leastRecent returns the occupied slot with the smallest touch stamp.
func (l *LRU) leastRecent() int {
	victim := -1
	for i := range l.keys {
		if !l.occupied[i] {
			continue
		}
		if victim < 0 || l.touchedAt[i] < l.touchedAt[victim] {
			victim = i
		}
	}
	return victim
}

// mostRecent returns the occupied slot with the largest touch stamp.
func (l *LRU) mostRecent() int {
	target := -1
	for i := range l.keys {
		if !l.occupied[i] {
			continue
		}
		if target < 0 || l.touchedAt[i] > l.touchedAt[target] {
			target = i
		}
	}
	return target
}

// DisplayInfo implements Policy, flagging the LRU and MRU slots.
func (l *LRU) DisplayInfo() []DisplayItem {
	items := l.baseDisplay()
	if lru := l.leastRecent(); lru >= 0 {
		items[lru].IsLRU = true
	}
	if mru := l.mostRecent(); mru >= 0 {
		items[mru].IsMRU = true
	}
	return items
}

// Reset implements Policy.
func (l *LRU) Reset() {
	l.resetTable()
	for i := range l.touchedAt {
		l.touchedAt[i] = 0
	}
	l.counter = 0
}
