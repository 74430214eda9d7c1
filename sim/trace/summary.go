package trace

// PolicyTotals aggregates one policy's counters over a full trace.
type PolicyTotals struct {
	Hits           int
	Misses         int
	ColdMisses     int
	CapacityMisses int
	Evictions      int
}

// HitRate returns hits over total accesses, or 0 for an empty trace.
func (pt PolicyTotals) HitRate() float64 {
	total := pt.Hits + pt.Misses
	if total == 0 {
		return 0
	}
	return float64(pt.Hits) / float64(total)
}

// Summary aggregates statistics from a ComparisonTrace.
type Summary struct {
	Accesses     int
	Totals       map[string]PolicyTotals // policy name → totals
	Divergences  int                     // steps where exactly one policy hit
	Winner       string                  // policy with fewer misses; empty on tie
	WinnerMargin int                     // miss-count difference in the winner's favor
}

// Summarize computes aggregate statistics from a ComparisonTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(ct *ComparisonTrace) *Summary {
	summary := &Summary{
		Totals: make(map[string]PolicyTotals),
	}
	if ct == nil {
		return summary
	}

	hitsByStep := make(map[int]map[string]bool)
	for _, r := range ct.Records {
		totals := summary.Totals[r.Policy]
		if r.Hit {
			totals.Hits++
		} else {
			totals.Misses++
			switch r.MissType {
			case "cold":
				totals.ColdMisses++
			case "capacity":
				totals.CapacityMisses++
			}
			if r.Evicted != "" {
				totals.Evictions++
			}
		}
		summary.Totals[r.Policy] = totals

		if hitsByStep[r.Index] == nil {
			hitsByStep[r.Index] = make(map[string]bool)
		}
		hitsByStep[r.Index][r.Policy] = r.Hit
	}

	summary.Accesses = len(hitsByStep)
	for _, byPolicy := range hitsByStep {
		aHit := byPolicy[ct.PolicyA]
		bHit := byPolicy[ct.PolicyB]
		if aHit != bHit {
			summary.Divergences++
		}
	}

	missesA := summary.Totals[ct.PolicyA].Misses
	missesB := summary.Totals[ct.PolicyB].Misses
	switch {
	case missesA < missesB:
		summary.Winner = ct.PolicyA
		summary.WinnerMargin = missesB - missesA
	case missesB < missesA:
		summary.Winner = ct.PolicyB
		summary.WinnerMargin = missesA - missesB
	}

	return summary
}
