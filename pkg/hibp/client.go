package hibp

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

const (
	DefaultBaseURL   = "https://api.pwnedpasswords.com"
	DefaultUserAgent = "pwncheck/1.0 (+https://github.com/gnomegl/pwncheck)"
	DefaultTimeout   = 10 * time.Second

	defaultRetryMax = 3
)

// RangeError describes a failed range fetch. It carries only the prefix, so
// logging one can never leak more than the query itself did.
type RangeError struct {
	Prefix     string
	StatusCode int
	Err        error
}

func (e *RangeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("range query for prefix %s failed: %v", e.Prefix, e.Err)
	}
	return fmt.Sprintf("range query for prefix %s failed: unexpected status %d", e.Prefix, e.StatusCode)
}

func (e *RangeError) Unwrap() error {
	return e.Err
}

// DefaultChecker resolves breach counts over the k-anonymity range API,
// keeping every fetched range in its prefix cache for the lifetime of the
// run.
type DefaultChecker struct {
	http      *http.Client
	cache     Cache
	baseURL   string
	userAgent string
	timeout   time.Duration
}

type Option func(*DefaultChecker)

// WithHTTPClient replaces the default retrying client, mainly so tests can
// point the checker at a local server without retry backoff.
func WithHTTPClient(client *http.Client) Option {
	return func(c *DefaultChecker) {
		c.http = client
	}
}

func WithBaseURL(baseURL string) Option {
	return func(c *DefaultChecker) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

func WithUserAgent(userAgent string) Option {
	return func(c *DefaultChecker) {
		c.userAgent = userAgent
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *DefaultChecker) {
		c.timeout = timeout
	}
}

// WithCache injects a shared prefix cache instead of the checker's own.
func WithCache(cache Cache) Option {
	return func(c *DefaultChecker) {
		c.cache = cache
	}
}

func NewChecker(opts ...Option) *DefaultChecker {
	c := &DefaultChecker{
		baseURL:   DefaultBaseURL,
		userAgent: DefaultUserAgent,
		timeout:   DefaultTimeout,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.cache == nil {
		c.cache = NewPrefixCache()
	}

	if c.http == nil {
		retryClient := retryablehttp.NewClient()
		retryClient.Logger = nil
		retryClient.RetryMax = defaultRetryMax
		retryClient.HTTPClient.Timeout = c.timeout
		c.http = retryClient.StandardClient()
	}

	return c
}

// Cached reports whether checking password would be answered from the cache.
func (c *DefaultChecker) Cached(password string) bool {
	prefix, _ := SplitDigest(Digest(password))
	_, ok := c.cache.Lookup(prefix)
	return ok
}

// Check resolves the breach count for password. Only the 5-character digest
// prefix is ever transmitted; the exact match is resolved locally against
// the cached range. A failed fetch leaves the cache untouched so a later
// password sharing the prefix gets a fresh attempt.
func (c *DefaultChecker) Check(ctx context.Context, password string) (Result, error) {
	prefix, suffix := SplitDigest(Digest(password))

	if entries, ok := c.cache.Lookup(prefix); ok {
		return Result{Count: countFor(entries, suffix), CacheHit: true}, nil
	}

	entries, err := c.fetchRange(ctx, prefix)
	if err != nil {
		return Result{}, err
	}
	c.cache.Store(prefix, entries)

	return Result{Count: countFor(entries, suffix)}, nil
}

func countFor(entries []SuffixCount, suffix string) int {
	for _, entry := range entries {
		if entry.Suffix == suffix {
			return entry.Count
		}
	}
	return 0
}

func (c *DefaultChecker) fetchRange(ctx context.Context, prefix string) ([]SuffixCount, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/range/"+prefix, nil)
	if err != nil {
		return nil, &RangeError{Prefix: prefix, Err: err}
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Add-Padding", "true")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &RangeError{Prefix: prefix, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &RangeError{Prefix: prefix, StatusCode: resp.StatusCode}
	}

	entries, err := parseRange(resp.Body)
	if err != nil {
		return nil, &RangeError{Prefix: prefix, Err: err}
	}
	return entries, nil
}

// parseRange reads a CRLF-delimited "SUFFIX:COUNT" body. Blank padding
// lines are discarded; suffixes are normalized to uppercase.
func parseRange(r io.Reader) ([]SuffixCount, error) {
	entries := make([]SuffixCount, 0, 800)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		sep := strings.IndexByte(line, ':')
		if sep < 0 {
			return nil, fmt.Errorf("malformed range line %q", line)
		}

		count, err := strconv.Atoi(strings.TrimSpace(line[sep+1:]))
		if err != nil {
			return nil, fmt.Errorf("malformed count in range line %q: %w", line, err)
		}

		entries = append(entries, SuffixCount{
			Suffix: strings.ToUpper(line[:sep]),
			Count:  count,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read range body: %w", err)
	}

	return entries, nil
}
