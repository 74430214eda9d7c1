package trace

import (
	"testing"
)

func TestComparisonTrace_RecordAppends(t *testing.T) {
	// GIVEN a fresh trace
	ct := NewComparisonTrace("FIFO", "LRU", 3)

	// WHEN a step record is recorded
	ct.Record(StepRecord{
		Index:    0,
		Access:   "A",
		Policy:   "FIFO",
		Hit:      false,
		MissType: "cold",
		Inserted: "A",
	})

	// THEN the trace contains one record with correct data
	if len(ct.Records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(ct.Records))
	}
	if ct.Records[0].Access != "A" {
		t.Errorf("expected access A, got %s", ct.Records[0].Access)
	}
	if ct.Records[0].Hit {
		t.Error("expected hit=false")
	}
	if ct.Records[0].MissType != "cold" {
		t.Errorf("expected cold miss, got %q", ct.Records[0].MissType)
	}
}

func TestNewComparisonTrace_CarriesSessionIdentity(t *testing.T) {
	ct := NewComparisonTrace("Optimal", "Random", 4)

	if ct.PolicyA != "Optimal" || ct.PolicyB != "Random" {
		t.Errorf("unexpected policy labels: %s, %s", ct.PolicyA, ct.PolicyB)
	}
	if ct.Capacity != 4 {
		t.Errorf("expected capacity 4, got %d", ct.Capacity)
	}
	if len(ct.Records) != 0 {
		t.Errorf("expected no records, got %d", len(ct.Records))
	}
}
