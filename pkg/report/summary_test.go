package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gnomegl/pwncheck/pkg/batch"
)

func TestSummarize(t *testing.T) {
	records := []batch.ResultRecord{
		{Password: "safe", LineNumber: 1, Count: 0},
		{Password: "breached", LineNumber: 2, Count: 42},
		{Password: "failed", LineNumber: 3, Count: batch.FailedCount},
		{Password: "safe-two", LineNumber: 4, Count: 0},
	}
	stats := batch.RunStats{Total: 4, NewQueries: 3, CacheHits: 1, Breached: 1, Errors: 1}

	summary := Summarize(records, stats)

	if summary.Total != 4 {
		t.Errorf("Total = %d, want 4", summary.Total)
	}
	if summary.Safe != 2 {
		t.Errorf("Safe = %d, want 2", summary.Safe)
	}
	if summary.Breached != 1 {
		t.Errorf("Breached = %d, want 1", summary.Breached)
	}
	if summary.Errors != 1 {
		t.Errorf("Errors = %d, want 1", summary.Errors)
	}
	if summary.CacheEfficiency != 0.25 {
		t.Errorf("CacheEfficiency = %f, want 0.25", summary.CacheEfficiency)
	}
}

func TestSummarizeEmptyRun(t *testing.T) {
	summary := Summarize(nil, batch.RunStats{})

	if summary.Total != 0 || summary.Safe != 0 || summary.Breached != 0 || summary.Errors != 0 {
		t.Errorf("empty run summary = %+v, want all zero", summary)
	}
	if summary.CacheEfficiency != 0 {
		t.Errorf("CacheEfficiency = %f, want 0 for an empty run", summary.CacheEfficiency)
	}
}

func TestTextWriterSummary(t *testing.T) {
	var buf bytes.Buffer

	summary := Summary{Total: 10, Safe: 7, Breached: 2, Errors: 1, NewQueries: 6, CacheHits: 4, CacheEfficiency: 0.4}
	if err := NewTextWriter(&buf).WriteSummary(summary); err != nil {
		t.Fatalf("WriteSummary() error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Passwords checked: 10", "Breached:          2", "40.0%"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary output missing %q:\n%s", want, out)
		}
	}
}
