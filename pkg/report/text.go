package report

import (
	"bufio"
	"fmt"
	"io"
)

// TextWriter renders a Summary as human-readable lines.
type TextWriter struct {
	writer *bufio.Writer
}

func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{
		writer: bufio.NewWriter(w),
	}
}

func (w *TextWriter) WriteSummary(summary Summary) error {
	lines := []string{
		fmt.Sprintf("Passwords checked: %d", summary.Total),
		fmt.Sprintf("Safe:              %d", summary.Safe),
		fmt.Sprintf("Breached:          %d", summary.Breached),
		fmt.Sprintf("Errors:            %d", summary.Errors),
		fmt.Sprintf("Remote queries:    %d", summary.NewQueries),
		fmt.Sprintf("Cache efficiency:  %.1f%% (%d hits)", summary.CacheEfficiency*100, summary.CacheHits),
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w.writer, line); err != nil {
			return fmt.Errorf("failed to write summary line: %w", err)
		}
	}

	return w.writer.Flush()
}
