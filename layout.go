package flexgrid

import "io"

// Config holds the layout's defaults. The zero value is a usable
// configuration: no spacing, no section insets, no headers or footers.
type Config struct {
	// MinimumLineSpacing is the vertical gap between rows, and between a
	// section's supplementary views and its neighbors.
	MinimumLineSpacing float64
	// MinimumInteritemSpacing is the horizontal gap between columns.
	MinimumInteritemSpacing float64
	// SectionInset is the margin around the items of every section.
	SectionInset Insets

	// Sections overrides the values above per section and declares headers
	// and footers.
	Sections SectionOverrides

	// Debug enables per-pass timing stats and fallback warnings.
	Debug bool
	// DebugOutput receives debug output. Defaults to os.Stderr.
	DebugOutput io.Writer
}

// Layout computes, caches and serves the frames of a sectioned grid whose
// rows are as tall as their tallest item.
//
// The computed state is either empty or complete for the container's current
// bounds and counts. It is rebuilt wholesale on the first query after an
// invalidation and never patched across calls. A Layout must only be used from
// the thread that drives the host's layout passes.
type Layout struct {
	container Container
	provider  Provider
	cfg       Config
	observer  Observer

	sections      []sectionFrames
	contentHeight float64
	computed      bool

	// computing is set for the duration of a pass. Queries made from
	// provider callbacks during a pass see no state, and invalidations made
	// during a pass leave the result stale.
	computing         bool
	invalidatedInPass bool

	passes int
	stats  passStats
}

// sectionFrames is the arena slot for one section. Items are indexed by
// Position.Item.
type sectionFrames struct {
	items     []Rect
	header    Rect
	footer    Rect
	hasHeader bool
	hasFooter bool

	// top and bottom bound everything the section contributed to the
	// running offset.
	top, bottom float64
}

// NewLayout creates a layout for the given container. The provider may be
// nil, in which case every item is 0 tall and the grid has two columns.
func NewLayout(container Container, provider Provider, cfg Config) *Layout {
	return &Layout{
		container: container,
		provider:  provider,
		cfg:       cfg,
	}
}

// Config returns the current configuration.
func (l *Layout) Config() Config {
	return l.cfg
}

// SetConfig replaces the configuration and invalidates the layout.
func (l *Layout) SetConfig(cfg Config) {
	l.cfg = cfg
	l.invalidate(ReasonConfig)
}

// SetProvider replaces the provider and invalidates the layout.
func (l *Layout) SetProvider(p Provider) {
	l.provider = p
	l.invalidate(ReasonConfig)
}

// Passes returns the number of completed recomputation passes.
func (l *Layout) Passes() int {
	return l.passes
}

// Prepare computes the layout if the cached state is empty. Hosts call it at
// the start of their layout pass; every query calls it implicitly. A pass
// invalidated by the provider is thrown away and run once more; if that pass
// is invalidated too, the layout stays empty until the next query.
func (l *Layout) Prepare() {
	if l.computed || l.computing {
		return
	}
	l.compute()
	if !l.computed {
		l.compute()
	}
}

// Invalidate discards the computed state. The next query recomputes it from
// scratch.
func (l *Layout) Invalidate() {
	l.invalidate(ReasonExplicit)
}

func (l *Layout) invalidate(reason InvalidationReason) {
	if l.computing {
		l.invalidatedInPass = true
	}
	l.computed = false
	l.sections = nil
	l.contentHeight = 0
	l.emit(LayoutEvent{Type: EventInvalidated, Reason: reason})
}

// ShouldInvalidateOnBoundsChange reports whether moving from oldBounds to
// newBounds requires recomputation. Only a width change does: column geometry
// is the only width-dependent quantity, so a height-only change (such as an
// on-screen keyboard appearing) leaves every frame valid.
func (l *Layout) ShouldInvalidateOnBoundsChange(oldBounds, newBounds Rect) bool {
	return oldBounds.Width != newBounds.Width
}

// InvalidateForBoundsChange invalidates the layout when the bounds change
// requires it and reports whether it did.
func (l *Layout) InvalidateForBoundsChange(oldBounds, newBounds Rect) bool {
	if !l.ShouldInvalidateOnBoundsChange(oldBounds, newBounds) {
		return false
	}
	l.invalidate(ReasonBoundsChange)
	return true
}

// EnvironmentChanged tells the layout that something outside the data
// snapshot changed every item's height, such as the text scale or the device
// orientation. The layout is invalidated and recomputed immediately.
func (l *Layout) EnvironmentChanged() {
	l.invalidate(ReasonEnvironment)
	l.Prepare()
}

// ContentSize returns the scrollable extent of the grid. The width is the
// container width inside its content inset.
func (l *Layout) ContentSize() Size {
	l.Prepare()
	if l.computing {
		return Size{}
	}
	return Size{Width: l.contentWidth(), Height: l.contentHeight}
}

// AttributesInRect returns every item, header and footer whose frame
// intersects r. The order of the result is unspecified.
func (l *Layout) AttributesInRect(r Rect) []Attributes {
	l.Prepare()
	if l.computing {
		return nil
	}
	var out []Attributes
	for s := range l.sections {
		sec := &l.sections[s]
		if r.Y > sec.bottom || r.Bottom() < sec.top {
			continue
		}
		if sec.hasHeader && sec.header.Intersects(r) {
			out = append(out, Attributes{Kind: KindHeader, Position: Position{Section: s}, Frame: sec.header})
		}
		for i, f := range sec.items {
			if f.Intersects(r) {
				out = append(out, Attributes{Kind: KindItem, Position: Position{Section: s, Item: i}, Frame: f})
			}
		}
		if sec.hasFooter && sec.footer.Intersects(r) {
			out = append(out, Attributes{Kind: KindFooter, Position: Position{Section: s}, Frame: sec.footer})
		}
	}
	return out
}

// AttributesForItem returns the placement of the item at pos. It reports
// false when pos is outside the container's current counts.
func (l *Layout) AttributesForItem(pos Position) (Attributes, bool) {
	l.Prepare()
	if l.computing {
		return Attributes{}, false
	}
	if f, ok := l.itemFrame(pos); ok {
		return Attributes{Kind: KindItem, Position: pos, Frame: f}, true
	}
	if !l.inRange(pos) {
		return Attributes{}, false
	}
	// The counts grew since the last pass.
	l.invalidate(ReasonStale)
	l.Prepare()
	if f, ok := l.itemFrame(pos); ok {
		return Attributes{Kind: KindItem, Position: pos, Frame: f}, true
	}
	return Attributes{}, false
}

// AttributesForSupplementary returns the placement of a section's header or
// footer. It reports false when kind is KindItem, the section is out of range,
// or the section declares no view of that kind.
func (l *Layout) AttributesForSupplementary(kind Kind, section int) (Attributes, bool) {
	if kind != KindHeader && kind != KindFooter {
		return Attributes{}, false
	}
	l.Prepare()
	if l.computing || section < 0 {
		return Attributes{}, false
	}
	if section >= len(l.sections) && l.container != nil && section < l.container.NumberOfSections() {
		l.invalidate(ReasonStale)
		l.Prepare()
	}
	if section >= len(l.sections) {
		return Attributes{}, false
	}
	sec := &l.sections[section]
	pos := Position{Section: section}
	switch {
	case kind == KindHeader && sec.hasHeader:
		return Attributes{Kind: KindHeader, Position: pos, Frame: sec.header}, true
	case kind == KindFooter && sec.hasFooter:
		return Attributes{Kind: KindFooter, Position: pos, Frame: sec.footer}, true
	}
	return Attributes{}, false
}

// ScrollOffsetForItem returns the vertical content offset that aligns the
// item's top edge with the top of a viewport of the given height, clamped so
// the viewport never scrolls past the content.
func (l *Layout) ScrollOffsetForItem(pos Position, viewportHeight float64) (float64, bool) {
	a, ok := l.AttributesForItem(pos)
	if !ok {
		return 0, false
	}
	maxOffset := max(0, l.contentHeight-viewportHeight)
	return min(max(0, a.Frame.Y), maxOffset), true
}

// ColumnCount returns the number of columns for the container's current
// bounds, after the fallback for non-positive answers.
func (l *Layout) ColumnCount() int {
	if l.container == nil {
		return defaultColumnCount
	}
	return l.columnCount(l.container.Bounds().Size(), nil)
}

// ColumnWidth returns the width of one column in the given section. Hosts
// typically call it from HeightForItem to measure content.
func (l *Layout) ColumnWidth(section int) float64 {
	if l.container == nil {
		return 0
	}
	cols := l.ColumnCount()
	return l.columnWidth(cols, l.sectionInset(section), l.interitemSpacing(section))
}

func (l *Layout) itemFrame(pos Position) (Rect, bool) {
	if pos.Section < 0 || pos.Section >= len(l.sections) {
		return Rect{}, false
	}
	items := l.sections[pos.Section].items
	if pos.Item < 0 || pos.Item >= len(items) {
		return Rect{}, false
	}
	return items[pos.Item], true
}

func (l *Layout) inRange(pos Position) bool {
	if l.container == nil || pos.Section < 0 || pos.Item < 0 {
		return false
	}
	if pos.Section >= l.container.NumberOfSections() {
		return false
	}
	return pos.Item < l.container.NumberOfItems(pos.Section)
}

func (l *Layout) contentWidth() float64 {
	if l.container == nil {
		return 0
	}
	return l.container.Bounds().Width - l.container.ContentInset().Horizontal()
}
