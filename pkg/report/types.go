package report

// Summary is the aggregate view of a finished run.
type Summary struct {
	Total      int
	Safe       int
	Breached   int
	Errors     int
	NewQueries int
	CacheHits  int
	// CacheEfficiency is cache hits / total, 0 for an empty run.
	CacheEfficiency float64
}

type ExportOptions struct {
	// IncludePasswords adds a password column. Even then the value is only
	// populated for confirmed-breached entries; safe and errored entries
	// export an empty field.
	IncludePasswords bool
}
