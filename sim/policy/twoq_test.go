package policy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Goodr-Interactive/cachesim/sim/internal/testutil"
	"github.com/Goodr-Interactive/cachesim/sim/policy"
)

func TestTwoQ_SecondAccessPromotesToAm(t *testing.T) {
	// GIVEN a key accessed twice in a row
	q := policy.NewTwoQ(4, 2)
	first := q.Check("A")
	second := q.Check("A")

	// THEN the first access is a cold miss into A1 and the second is a
	// promoting hit, not re-classified as cold
	require.False(t, first.Hit)
	assert.Equal(t, policy.MissCold, first.MissType)

	require.True(t, second.Hit)
	detail, ok := second.Detail.(policy.TwoQDetail)
	require.True(t, ok)
	assert.True(t, detail.QueueTransfer)

	display := q.DisplayInfo()
	assert.Equal(t, policy.QueueAm, display[0].Queue, "A lives in Am after promotion")
}

func TestTwoQ_EvictsOldestA1AboveThreshold(t *testing.T) {
	// GIVEN capacity 3, threshold 1, and three once-seen keys in A1
	q := policy.NewTwoQ(3, 1)
	testutil.Replay(q, testutil.Keys("A", "B", "C"))

	// WHEN D misses on the full cache
	result := q.Check("D")

	// THEN the oldest A1 entry goes
	require.False(t, result.Hit)
	assert.Equal(t, policy.Key("A"), result.Evicted)
	detail, ok := result.Detail.(policy.TwoQDetail)
	require.True(t, ok)
	assert.Equal(t, policy.QueueA1, detail.EvictedFrom)
}

func TestTwoQ_EvictsAmLRUWhenA1Short(t *testing.T) {
	// GIVEN A and B promoted to Am and C once-seen in A1
	q := policy.NewTwoQ(3, 2)
	testutil.Replay(q, testutil.Keys("A", "B", "A", "C", "B"))

	// WHEN D misses: A1 holds only C (≤ threshold), so the LRU end of
	// Am — A, promoted before B — is evicted
	result := q.Check("D")

	require.False(t, result.Hit)
	assert.Equal(t, policy.Key("A"), result.Evicted)
	detail, ok := result.Detail.(policy.TwoQDetail)
	require.True(t, ok)
	assert.Equal(t, policy.QueueAm, detail.EvictedFrom)
}

func TestTwoQ_AmHitMovesToMRU(t *testing.T) {
	q := policy.NewTwoQ(3, 1)
	// Promote A then B: Am order is [A, B]. Re-hit A to make B the LRU.
	testutil.Replay(q, testutil.Keys("A", "A", "B", "B", "A"))

	result := q.Check("C")
	require.False(t, result.Hit)
	assert.Equal(t, policy.Key(""), result.Evicted, "empty slot remains")

	// Cache is now full; the next miss evicts from Am (A1 holds only C).
	result = q.Check("D")
	require.False(t, result.Hit)
	assert.Equal(t, policy.Key("B"), result.Evicted, "B became the Am LRU after A's re-hit")
}

func TestTwoQ_ScanResistance(t *testing.T) {
	// A one-time scan must not displace the promoted working set.
	hot := testutil.Keys("A", "B", "A", "B")
	scan := testutil.Keys("S1", "S2", "S3", "S4")

	q := policy.NewTwoQ(4, 1)
	testutil.Replay(q, hot)
	testutil.Replay(q, scan)

	// A and B were promoted to Am before the scan; scan keys churn
	// through A1 and never displace them.
	resA := q.Check("A")
	resB := q.Check("B")
	assert.True(t, resA.Hit, "A survived the scan")
	assert.True(t, resB.Hit, "B survived the scan")
}

func TestTwoQ_DisplayTagsQueues(t *testing.T) {
	q := policy.NewTwoQ(3, 1)
	testutil.Replay(q, testutil.Keys("A", "A", "B"))

	display := q.DisplayInfo()
	assert.Equal(t, policy.QueueAm, display[0].Queue)
	assert.Equal(t, policy.QueueA1, display[1].Queue)
	assert.Equal(t, policy.QueueNone, display[2].Queue)
}
