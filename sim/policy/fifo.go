package policy

// FIFO evicts the slot that was filled earliest, irrespective of hits.
// Each installation stamps the slot with a monotonically increasing
// counter; eviction targets the occupied slot with the smallest stamp.
type FIFO struct {
	table
	insertedAt []uint64
	counter    uint64
}

// NewFIFO creates a FIFO policy with the given capacity.
func NewFIFO(capacity int) *FIFO {
	return &FIFO{
		table:      newTable(KindFIFO, capacity),
		insertedAt: make([]uint64, capacity),
	}
}

// Check implements Policy.
func (f *FIFO) Check(key Key) Result {
	if f.lookup(key) >= 0 {
		// Hits do not touch insertion order.
		f.recordHit()
		return Result{Hit: true}
	}

	missType := f.recordMiss(key)
	result := Result{MissType: missType, Inserted: key}

	slot := f.firstEmpty()
	if slot < 0 {
		slot = f.oldest()
		result.Evicted = f.evict(slot)
	}
	f.install(slot, key)
	f.counter++
	f.insertedAt[slot] = f.counter
	return result
}

// oldest returns the occupied slot with the smallest insertion stamp.
func (f *FIFO) oldest() int {
	victim := -1
	for i := range f.keys {
		if !f.occupied[i] {
			continue
		}
		if victim < 0 || f.insertedAt[i] < f.insertedAt[victim] {
			victim = i
		}
	}
	return victim
}

// newest returns the occupied slot with the largest insertion stamp.
func (f *FIFO) newest() int {
	target := -1
	for i := range f.keys {
		if !f.occupied[i] {
			continue
		}
		if target < 0 || f.insertedAt[i] > f.insertedAt[target] {
			target = i
		}
	}
	return target
}

// DisplayInfo implements Policy, flagging the oldest and newest slots.
func (f *FIFO) DisplayInfo() []DisplayItem {
	items := f.baseDisplay()
	if oldest := f.oldest(); oldest >= 0 {
		items[oldest].Oldest = true
	}
	if newest := f.newest(); newest >= 0 {
		items[newest].Newest = true
	}
	return items
}

// Reset implements Policy.
func (f *FIFO) Reset() {
	f.resetTable()
	for i := range f.insertedAt {
		f.insertedAt[i] = 0
	}
	f.counter = 0
}
