package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/Goodr-Interactive/cachesim/sim"
	"github.com/Goodr-Interactive/cachesim/sim/policy"
	"github.com/Goodr-Interactive/cachesim/sim/trace"
)

// PrintReport writes the full comparison report: the access sequence, an
// optional per-step table (cache contents after each access for both
// policies), and the aggregate summary.
func PrintReport(w io.Writer, controller *sim.Controller, withSteps bool) {
	summary := trace.Summarize(controller.Trace())
	ct := controller.Trace()

	fmt.Fprintln(w, "=== Cache Policy Comparison ===")
	fmt.Fprintf(w, "Sequence : %s\n", formatSequence(controller.AccessSequence()))
	fmt.Fprintf(w, "Capacity : %d slots\n", ct.Capacity)

	if withSteps {
		fmt.Fprintf(w, "\n%4s  %-6s  %-24s  %-24s\n", "step", "access", ct.PolicyA, ct.PolicyB)
		for i := 0; i <= controller.MaxStep(); i++ {
			step, _ := controller.Step(i)
			fmt.Fprintf(w, "%4d  %-6s  %-24s  %-24s\n",
				i, string(step.Access),
				formatSnapshot(step.A),
				formatSnapshot(step.B))
		}
	}

	fmt.Fprintln(w, "\n=== Summary ===")
	for _, name := range []string{ct.PolicyA, ct.PolicyB} {
		totals := summary.Totals[name]
		fmt.Fprintf(w, "%-10s hits=%d misses=%d (cold=%d capacity=%d) hitRate=%.2f\n",
			name, totals.Hits, totals.Misses, totals.ColdMisses, totals.CapacityMisses, totals.HitRate())
	}
	fmt.Fprintf(w, "Divergent steps : %d/%d\n", summary.Divergences, summary.Accesses)
	if summary.Winner != "" {
		fmt.Fprintf(w, "Fewer misses    : %s (by %d)\n", summary.Winner, summary.WinnerMargin)
	} else {
		fmt.Fprintln(w, "Fewer misses    : tie")
	}
}

// formatSnapshot renders one policy's post-access cache state, e.g.
// "HIT  [A*][B ][- ]". Role markers: * reference bit or MRU/newest,
// ^ clock hand, . LRU/oldest, queue letter for 2Q.
func formatSnapshot(snap sim.PolicySnapshot) string {
	var b strings.Builder
	if snap.Result.Hit {
		b.WriteString("HIT  ")
	} else {
		b.WriteString(fmt.Sprintf("%-4s ", strings.ToUpper(string(snap.Result.MissType))))
	}
	for _, item := range snap.Display {
		b.WriteString(formatSlot(item))
	}
	return b.String()
}

func formatSlot(item policy.DisplayItem) string {
	if !item.Occupied {
		return "[- ]"
	}
	marker := " "
	switch {
	case item.Queue == policy.QueueA1:
		marker = "1"
	case item.Queue == policy.QueueAm:
		marker = "m"
	case item.Hand:
		marker = "^"
	case item.RefBit, item.IsMRU, item.Newest:
		marker = "*"
	case item.IsLRU, item.Oldest:
		marker = "."
	}
	return fmt.Sprintf("[%s%s]", string(item.Key), marker)
}

func formatSequence(keys []policy.Key) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = string(k)
	}
	return strings.Join(parts, " ")
}
