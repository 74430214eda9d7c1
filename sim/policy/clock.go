package policy

// Clock approximates LRU with a second-chance sweep. Each slot carries a
// reference bit, set on hit and on installation. On eviction a rotating
// hand scans from its last position, clearing the reference bit of every
// slot it passes, and evicts the first slot whose bit is already clear;
// the hand then advances one past the victim.
type Clock struct {
	table
	refBit []bool
	hand   int
}

// NewClock creates a Clock policy with the given capacity.
func NewClock(capacity int) *Clock {
	return &Clock{
		table:  newTable(KindClock, capacity),
		refBit: make([]bool, capacity),
	}
}

// Check implements Policy.
func (c *Clock) Check(key Key) Result {
	if slot := c.lookup(key); slot >= 0 {
		c.recordHit()
		c.refBit[slot] = true
		return Result{Hit: true}
	}

	missType := c.recordMiss(key)
	result := Result{MissType: missType, Inserted: key}

	slot := c.firstEmpty()
	if slot < 0 {
		var passed int
		slot, passed = c.sweep()
		result.Evicted = c.evict(slot)
		result.Detail = ClockDetail{HandAdvance: passed}
	}
	c.install(slot, key)
	c.refBit[slot] = true
	return result
}

// sweep runs the second-chance scan: clear set bits until a clear bit is
// found, evict there, leave the hand one past the victim. Eviction only
// happens on a full table, so every slot the hand visits is occupied and
// the scan terminates within 2×capacity steps.
func (c *Clock) sweep() (victim, passed int) {
	for c.refBit[c.hand] {
		c.refBit[c.hand] = false
		c.hand = (c.hand + 1) % c.capacity
		passed++
	}
	victim = c.hand
	c.hand = (c.hand + 1) % c.capacity
	return victim, passed
}

// DisplayInfo implements Policy, exposing reference bits and the hand.
func (c *Clock) DisplayInfo() []DisplayItem {
	items := c.baseDisplay()
	for i := range items {
		items[i].RefBit = c.refBit[i]
	}
	items[c.hand].Hand = true
	return items
}

// Reset implements Policy.
func (c *Clock) Reset() {
	c.resetTable()
	for i := range c.refBit {
		c.refBit[i] = false
	}
	c.hand = 0
}
