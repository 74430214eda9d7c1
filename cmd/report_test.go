package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Goodr-Interactive/cachesim/sim"
	"github.com/Goodr-Interactive/cachesim/sim/policy"
)

func buildController(t *testing.T) *sim.Controller {
	t.Helper()
	c, err := sim.NewController(sim.ControllerConfig{
		PolicyA:  policy.KindFIFO,
		PolicyB:  policy.KindLRU,
		Capacity: 3,
		Sequence: []policy.Key{"A", "B", "C", "A", "D"},
	})
	require.NoError(t, err)
	return c
}

func TestPrintReport_ContainsSummary(t *testing.T) {
	var buf bytes.Buffer
	PrintReport(&buf, buildController(t), false)
	out := buf.String()

	assert.Contains(t, out, "=== Cache Policy Comparison ===")
	assert.Contains(t, out, "Sequence : A B C A D")
	assert.Contains(t, out, "Capacity : 3 slots")
	assert.Contains(t, out, "FIFO")
	assert.Contains(t, out, "LRU")
	assert.Contains(t, out, "Divergent steps")
	assert.NotContains(t, out, "step  access", "per-step table suppressed")
}

func TestPrintReport_StepTable(t *testing.T) {
	var buf bytes.Buffer
	PrintReport(&buf, buildController(t), true)
	out := buf.String()

	// One row per access plus headers.
	assert.Contains(t, out, "step")
	for _, access := range []string{"A", "B", "C", "D"} {
		assert.Contains(t, out, access)
	}
	assert.Contains(t, out, "COLD")
	assert.Contains(t, out, "HIT")
}

func TestFormatSnapshot_Markers(t *testing.T) {
	c := buildController(t)
	step, ok := c.Step(3) // the A re-hit
	require.True(t, ok)

	fifoSide := formatSnapshot(step.A)
	assert.True(t, strings.HasPrefix(fifoSide, "HIT"), "got %q", fifoSide)
	assert.Contains(t, fifoSide, "[A")

	step, ok = c.Step(0)
	require.True(t, ok)
	coldSide := formatSnapshot(step.A)
	assert.True(t, strings.HasPrefix(coldSide, "COLD"), "got %q", coldSide)
	assert.Contains(t, coldSide, "[- ]", "two slots still empty")
}

func TestFormatSlot_EmptyAndQueueTags(t *testing.T) {
	assert.Equal(t, "[- ]", formatSlot(policy.DisplayItem{}))
	assert.Equal(t, "[K1]", formatSlot(policy.DisplayItem{Key: "K", Occupied: true, Queue: policy.QueueA1}))
	assert.Equal(t, "[Km]", formatSlot(policy.DisplayItem{Key: "K", Occupied: true, Queue: policy.QueueAm}))
	assert.Equal(t, "[K^]", formatSlot(policy.DisplayItem{Key: "K", Occupied: true, Hand: true}))
	assert.Equal(t, "[K*]", formatSlot(policy.DisplayItem{Key: "K", Occupied: true, RefBit: true}))
	assert.Equal(t, "[K.]", formatSlot(policy.DisplayItem{Key: "K", Occupied: true, IsLRU: true}))
}
