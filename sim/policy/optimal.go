package policy

// Optimal implements Belady's offline algorithm: evict the cached key
// whose next use lies furthest in the future. It needs the entire access
// sequence up front and tracks its own cursor within it, so it is only
// meaningful as a theoretical lower bound, never as a realizable policy.
//
// The caller must feed Check the sequence keys in order; the comparison
// controller guarantees this structurally by always rebuilding Optimal
// instances against its own current sequence.
type Optimal struct {
	table
	sequence []Key
	cursor   int
}

// NewOptimal creates an Optimal policy over the given future sequence.
func NewOptimal(capacity int, sequence []Key) *Optimal {
	seq := make([]Key, len(sequence))
	copy(seq, sequence)
	return &Optimal{
		table:    newTable(KindOptimal, capacity),
		sequence: seq,
	}
}

// Check implements Policy.
func (o *Optimal) Check(key Key) Result {
	defer func() { o.cursor++ }()

	if o.lookup(key) >= 0 {
		o.recordHit()
		return Result{Hit: true}
	}

	missType := o.recordMiss(key)
	result := Result{MissType: missType, Inserted: key}

	slot := o.firstEmpty()
	if slot < 0 {
		slot = o.furthestNextUse()
		result.Evicted = o.evict(slot)
	}
	o.install(slot, key)
	return result
}

// furthestNextUse returns the occupied slot whose key's next occurrence
// after the cursor is furthest away (absent counts as infinity), ties
// broken by slot index.
func (o *Optimal) furthestNextUse() int {
	victim := -1
	victimNext := -1
	for i := range o.keys {
		if !o.occupied[i] {
			continue
		}
		next := o.nextUse(o.keys[i])
		if next < 0 {
			// Never used again: no later slot can beat it.
			return i
		}
		if next > victimNext {
			victim = i
			victimNext = next
		}
	}
	return victim
}

// nextUse returns the index of key's next occurrence strictly after the
// current access, or -1 if it never occurs again.
func (o *Optimal) nextUse(key Key) int {
	for i := o.cursor + 1; i < len(o.sequence); i++ {
		if o.sequence[i] == key {
			return i
		}
	}
	return -1
}

// DisplayInfo implements Policy. Optimal has no role flags to add.
func (o *Optimal) DisplayInfo() []DisplayItem {
	return o.baseDisplay()
}

// Reset implements Policy. The sequence is kept; only the cursor rewinds.
func (o *Optimal) Reset() {
	o.resetTable()
	o.cursor = 0
}
