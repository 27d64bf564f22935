package flexgrid

import (
	"fmt"
	"io"
	"os"
	"time"
)

// passStats holds timing and provider-call metrics for one recomputation
// pass. Always collected; only printed when Config.Debug is true.
type passStats struct {
	duration        time.Duration
	sections        int
	items           int
	headers         int
	footers         int
	heightQueries   int
	columnFallbacks int
	heightFallbacks int
}

// PassStats is a snapshot of the metrics of the most recent pass.
type PassStats struct {
	Duration        time.Duration
	Sections        int
	Items           int
	Headers         int
	Footers         int
	HeightQueries   int
	ColumnFallbacks int
	HeightFallbacks int
}

// LastPassStats returns the metrics of the most recent completed pass.
func (l *Layout) LastPassStats() PassStats {
	s := l.stats
	return PassStats{
		Duration:        s.duration,
		Sections:        s.sections,
		Items:           s.items,
		Headers:         s.headers,
		Footers:         s.footers,
		HeightQueries:   s.heightQueries,
		ColumnFallbacks: s.columnFallbacks,
		HeightFallbacks: s.heightFallbacks,
	}
}

func (l *Layout) debugWriter() io.Writer {
	if l.cfg.DebugOutput != nil {
		return l.cfg.DebugOutput
	}
	return os.Stderr
}

// debugLog prints pass stats.
func (l *Layout) debugLog(stats passStats) {
	if !l.cfg.Debug {
		return
	}
	w := l.debugWriter()
	_, _ = fmt.Fprintf(w,
		"[flexgrid] pass %d: %v | sections: %d | items: %d | headers: %d | footers: %d | height: %v\n",
		l.passes, stats.duration, stats.sections, stats.items, stats.headers, stats.footers, l.contentHeight)
	if stats.columnFallbacks > 0 || stats.heightFallbacks > 0 {
		_, _ = fmt.Fprintf(w, "[flexgrid] fallbacks: columns: %d | heights: %d\n",
			stats.columnFallbacks, stats.heightFallbacks)
	}
}

// debugWarn prints a warning about a substituted provider answer.
func (l *Layout) debugWarn(format string, args ...any) {
	if !l.cfg.Debug {
		return
	}
	_, _ = fmt.Fprintf(l.debugWriter(), "[flexgrid] warning: "+format+"\n", args...)
}
