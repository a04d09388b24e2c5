package batch

import "time"

// FailedCount marks a record whose lookup failed. Distinct from 0, which
// means the password was checked and not found.
const FailedCount = -1

// DefaultDelay spaces out new range queries. Cached answers incur no delay.
const DefaultDelay = 100 * time.Millisecond

// PasswordEntry is one non-blank input line, already trimmed and unquoted
// by the parser. LineNumber is the 1-based position in the original file.
type PasswordEntry struct {
	Password   string
	LineNumber int
}

// ResultRecord is the per-entry outcome, produced in input order.
type ResultRecord struct {
	Password   string
	LineNumber int
	Count      int
	Err        error
}

func (r ResultRecord) Failed() bool {
	return r.Count == FailedCount
}

func (r ResultRecord) Breached() bool {
	return r.Count > 0
}

// RunStats counts outcomes across a whole run.
type RunStats struct {
	Total      int
	NewQueries int
	CacheHits  int
	Breached   int
	Errors     int
}

// ProgressFunc is called after each entry with the 1-based index of the
// entry just finished, the batch size, and the running breach count.
type ProgressFunc func(index, total, breached int)

type Options struct {
	// Delay is the minimum pause after a new remote query before the next
	// entry starts. Zero disables throttling.
	Delay    time.Duration
	Progress ProgressFunc
}
