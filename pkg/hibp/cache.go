package hibp

// PrefixCache is the in-memory range cache for a single run. Checks are
// strictly sequential, so no locking is needed; a prefix is fetched at most
// once and its entry is never evicted or merged.
type PrefixCache struct {
	entries map[string][]SuffixCount
}

func NewPrefixCache() *PrefixCache {
	return &PrefixCache{
		entries: make(map[string][]SuffixCount),
	}
}

func (c *PrefixCache) Lookup(prefix string) ([]SuffixCount, bool) {
	entries, ok := c.entries[prefix]
	return entries, ok
}

func (c *PrefixCache) Store(prefix string, entries []SuffixCount) {
	c.entries[prefix] = entries
}

// Len reports how many distinct prefixes have been fetched so far.
func (c *PrefixCache) Len() int {
	return len(c.entries)
}
