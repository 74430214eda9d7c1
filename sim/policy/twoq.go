package policy

// TwoQ is the simplified 2Q policy: capacity is split into two logical
// queues over the same slot table. A1 holds keys seen once, in FIFO
// order; Am holds keys promoted after a second reference, in LRU order.
// Keeping one-time keys in A1 delays their entry into the protected Am
// queue, which resists pollution from single-pass scans better than LRU.
//
// On a miss the victim comes from A1 when A1 has grown past a1Threshold,
// otherwise from the LRU end of Am; the new key always enters the young
// end of A1.
type TwoQ struct {
	table
	a1Threshold int
	a1          []int // slot indices, front = oldest
	am          []int // slot indices, front = LRU, back = MRU
}

// NewTwoQ creates a TwoQ policy with the given capacity and A1 length
// threshold.
func NewTwoQ(capacity, a1Threshold int) *TwoQ {
	return &TwoQ{
		table:       newTable(KindTwoQ, capacity),
		a1Threshold: a1Threshold,
	}
}

// Check implements Policy.
func (q *TwoQ) Check(key Key) Result {
	if slot := q.lookup(key); slot >= 0 {
		q.recordHit()
		if pos := indexOf(q.am, slot); pos >= 0 {
			// Am hit: move to MRU position.
			q.am = append(remove(q.am, pos), slot)
			return Result{Hit: true}
		}
		// A1 hit: promote to the MRU end of Am.
		q.a1 = remove(q.a1, indexOf(q.a1, slot))
		q.am = append(q.am, slot)
		return Result{Hit: true, Detail: TwoQDetail{QueueTransfer: true}}
	}

	missType := q.recordMiss(key)
	result := Result{MissType: missType, Inserted: key}

	slot := q.firstEmpty()
	if slot < 0 {
		var from QueueTag
		// Fall back to A1 when Am is empty, whatever the threshold says.
		if len(q.a1) > q.a1Threshold || len(q.am) == 0 {
			slot = q.a1[0]
			q.a1 = q.a1[1:]
			from = QueueA1
		} else {
			slot = q.am[0]
			q.am = q.am[1:]
			from = QueueAm
		}
		result.Evicted = q.evict(slot)
		result.Detail = TwoQDetail{EvictedFrom: from}
	}
	q.install(slot, key)
	q.a1 = append(q.a1, slot)
	return result
}

// DisplayInfo implements Policy, tagging each slot with its queue.
func (q *TwoQ) DisplayInfo() []DisplayItem {
	items := q.baseDisplay()
	for _, slot := range q.a1 {
		items[slot].Queue = QueueA1
	}
	for pos, slot := range q.am {
		items[slot].Queue = QueueAm
		items[slot].IsLRU = pos == 0
		items[slot].IsMRU = pos == len(q.am)-1
	}
	return items
}

// Reset implements Policy.
func (q *TwoQ) Reset() {
	q.resetTable()
	q.a1 = nil
	q.am = nil
}

func indexOf(slots []int, slot int) int {
	for i, s := range slots {
		if s == slot {
			return i
		}
	}
	return -1
}

func remove(slots []int, pos int) []int {
	return append(slots[:pos], slots[pos+1:]...)
}
