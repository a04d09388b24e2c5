package batch

import (
	"context"
	"time"

	"github.com/gnomegl/pwncheck/pkg/hibp"
)

// Processor drives a batch of entries through a checker, one at a time.
// Strictly sequential: at most one range query is in flight, so the prefix
// cache never races and output order equals input order.
type Processor struct {
	checker  hibp.Checker
	delay    time.Duration
	progress ProgressFunc
}

func NewProcessor(checker hibp.Checker, opts Options) *Processor {
	return &Processor{
		checker:  checker,
		delay:    opts.Delay,
		progress: opts.Progress,
	}
}

// Run processes entries in order and returns one ResultRecord per entry
// plus the run counters. A failed lookup is recorded and the batch
// continues. Cancelling ctx stops before the next entry; the records and
// stats accumulated so far are still returned.
func (p *Processor) Run(ctx context.Context, entries []PasswordEntry) ([]ResultRecord, RunStats) {
	records := make([]ResultRecord, 0, len(entries))
	stats := RunStats{}
	total := len(entries)

	for i, entry := range entries {
		if ctx.Err() != nil {
			break
		}

		// Decided up front: a cached prefix means no remote query and
		// therefore no throttle delay for this entry.
		cached := p.checker.Cached(entry.Password)

		record := ResultRecord{
			Password:   entry.Password,
			LineNumber: entry.LineNumber,
		}

		result, err := p.checker.Check(ctx, entry.Password)
		if err != nil {
			record.Count = FailedCount
			record.Err = err
			stats.Errors++
		} else {
			record.Count = result.Count
			if result.CacheHit {
				stats.CacheHits++
			} else {
				stats.NewQueries++
			}
			if result.Count > 0 {
				stats.Breached++
			}
		}

		stats.Total++
		records = append(records, record)

		if p.progress != nil {
			p.progress(i+1, total, stats.Breached)
		}

		// Space out remote traffic. A failed attempt still touched the
		// service, so it is throttled like a successful new query.
		if !cached && p.delay > 0 && i < total-1 {
			select {
			case <-time.After(p.delay):
			case <-ctx.Done():
			}
		}
	}

	return records, stats
}
