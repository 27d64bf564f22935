package flexgrid

import (
	"bytes"
	"strings"
	"testing"
)

func TestLayout_DebugOutput(t *testing.T) {
	var buf bytes.Buffer
	src := NewStaticSource(Size{Width: 100, Height: 100}, 0, 10, -1)
	l := NewLayout(src, src, Config{Debug: true, DebugOutput: &buf})
	l.Prepare()

	out := buf.String()
	for _, want := range []string{
		"[flexgrid] pass 1:",
		"items: 2",
		"[flexgrid] warning: provider returned 0 columns",
		"[flexgrid] warning: invalid height for item 1 in section 0",
		"[flexgrid] fallbacks: columns: 1 | heights: 1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("debug output missing %q:\n%s", want, out)
		}
	}
}

func TestLayout_DebugOffIsSilent(t *testing.T) {
	var buf bytes.Buffer
	src := NewStaticSource(Size{Width: 100, Height: 100}, 0, 10)
	l := NewLayout(src, src, Config{DebugOutput: &buf})
	l.Prepare()
	if buf.Len() != 0 {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestLayout_LastPassStats(t *testing.T) {
	src := NewStaticSource(Size{Width: 100, Height: 100}, 2, 1, 2, 3)
	l := NewLayout(src, src, Config{Sections: SectionOverrides{FooterSize: sizeOf(4)}})
	if s := l.LastPassStats(); s != (PassStats{}) {
		t.Errorf("stats before first pass = %+v, want zero", s)
	}
	l.Prepare()
	s := l.LastPassStats()
	if s.Sections != 1 || s.Items != 3 || s.Footers != 1 || s.HeightQueries != 3 {
		t.Errorf("stats = %+v", s)
	}
}

func TestLayout_ColumnQueriesDoNotWarn(t *testing.T) {
	var buf bytes.Buffer
	src := NewStaticSource(Size{Width: 100, Height: 100}, 0, 10, 20)
	l := NewLayout(src, src, Config{Debug: true, DebugOutput: &buf})
	l.Prepare()
	for i := 0; i < 3; i++ {
		l.ColumnCount()
		l.ColumnWidth(0)
	}

	if n := strings.Count(buf.String(), "provider returned 0 columns"); n != 1 {
		t.Errorf("column warning printed %d times, want 1:\n%s", n, buf.String())
	}
	if s := l.LastPassStats(); s.ColumnFallbacks != 1 {
		t.Errorf("ColumnFallbacks = %d, want 1", s.ColumnFallbacks)
	}
}
