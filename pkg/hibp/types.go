package hibp

import "context"

// SuffixCount is one entry of a range response: the trailing 35 hex
// characters of a SHA-1 digest and the number of times that digest was seen
// in the breach corpus.
type SuffixCount struct {
	Suffix string
	Count  int
}

// Result is the outcome of a single successful check.
type Result struct {
	Count    int
	CacheHit bool
}

type Checker interface {
	Check(ctx context.Context, password string) (Result, error)
	Cached(password string) bool
}

// Cache maps a 5-character hash prefix to the full set of suffixes the
// remote service returned for it. Implementations are run-scoped: nothing
// is evicted and nothing survives the process.
type Cache interface {
	Lookup(prefix string) ([]SuffixCount, bool)
	Store(prefix string, entries []SuffixCount)
	Len() int
}
