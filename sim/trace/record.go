// Package trace provides flat replay records for comparison analysis.
// This package has no dependencies on sim/ or sim/policy/ — it stores pure
// data types, so external tooling can consume traces without pulling in
// the engine.
package trace

// StepRecord captures one policy's outcome for one access. Evicted and
// Inserted are empty strings when not applicable; MissType is "cold",
// "capacity" or empty on a hit.
type StepRecord struct {
	Index    int
	Access   string
	Policy   string
	Hit      bool
	MissType string
	Evicted  string
	Inserted string
}

// ComparisonTrace collects step records while a comparison session
// replays its access sequence against two policies.
type ComparisonTrace struct {
	PolicyA  string
	PolicyB  string
	Capacity int
	Records  []StepRecord
}

// NewComparisonTrace creates a ComparisonTrace ready for recording.
func NewComparisonTrace(policyA, policyB string, capacity int) *ComparisonTrace {
	return &ComparisonTrace{
		PolicyA:  policyA,
		PolicyB:  policyB,
		Capacity: capacity,
		Records:  make([]StepRecord, 0),
	}
}

// Record appends a step record.
func (ct *ComparisonTrace) Record(record StepRecord) {
	ct.Records = append(ct.Records, record)
}
