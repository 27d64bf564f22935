package flexgrid

import "time"

// compute rebuilds every frame from scratch.
//
// Items are placed row-major. A row's height is only known up to the tallest
// item seen so far, so each newly placed item re-derives the row height from
// its earlier siblings and patches their stored heights in place. The patch
// costs O(columns) per item.
func (l *Layout) compute() {
	start := time.Now()
	l.computing = true
	l.invalidatedInPass = false

	var stats passStats
	var sections []sectionFrames
	y := 0.0

	sectionCount := 0
	if l.container != nil {
		sectionCount = max(0, l.container.NumberOfSections())
	}
	if sectionCount > 0 {
		sections = make([]sectionFrames, 0, sectionCount)
	}

	for s := 0; s < sectionCount; s++ {
		cols := l.columnCount(l.container.Bounds().Size(), &stats)
		inset := l.sectionInset(s)
		lineSpacing := l.lineSpacing(s)
		spacing := l.interitemSpacing(s)
		colWidth := l.columnWidth(cols, inset, spacing)
		width := l.contentWidth()

		sec := sectionFrames{top: y}

		if size, ok := l.headerSize(s); ok {
			sec.header = Rect{X: 0, Y: y, Width: width, Height: size.Height}
			sec.hasHeader = true
			stats.headers++
			y += size.Height
			if s != 0 {
				y += lineSpacing
			}
		}

		y += inset.Top

		n := max(0, l.container.NumberOfItems(s))
		if n > 0 {
			sec.items = make([]Rect, n)
		}
		for i := 0; i < n; i++ {
			col := i % cols
			rowStart := i - col

			rowHeight := l.itemHeight(Position{Section: s, Item: i}, &stats)
			for j := rowStart; j < i; j++ {
				rowHeight = max(rowHeight, sec.items[j].Height)
			}

			sec.items[i] = Rect{X: columnOrigin(col, colWidth, spacing, inset.Left), Y: y, Width: colWidth, Height: rowHeight}
			for j := rowStart; j < i; j++ {
				sec.items[j].Height = rowHeight
			}

			// A trailing partial row advances the offset like a full one.
			// Line spacing only separates rows.
			if col == cols-1 || i == n-1 {
				y += rowHeight
				if i < n-1 {
					y += lineSpacing
				}
			}
		}
		stats.items += n

		y += inset.Bottom

		if size, ok := l.footerSize(s); ok {
			sec.footer = Rect{X: 0, Y: y, Width: width, Height: size.Height}
			sec.hasFooter = true
			stats.footers++
			y += size.Height
			if s != sectionCount-1 {
				y += lineSpacing
			}
		}

		sec.bottom = y
		sections = append(sections, sec)
	}

	l.computing = false
	l.passes++
	if l.invalidatedInPass {
		// The provider's answers changed mid-pass; none of them are kept.
		l.sections = nil
		l.contentHeight = 0
		l.computed = false
		return
	}
	l.sections = sections
	l.contentHeight = y
	l.computed = true

	stats.sections = sectionCount
	stats.duration = time.Since(start)
	l.stats = stats
	l.debugLog(stats)
	l.emit(LayoutEvent{
		Type:        EventComputed,
		ContentSize: Size{Width: l.contentWidth(), Height: y},
		Sections:    sectionCount,
		Items:       stats.items,
		Headers:     stats.headers,
		Footers:     stats.footers,
	})
}

// columnCount asks the provider for the column count, substituting the
// default for non-positive answers. Fallbacks are only counted and reported
// when stats belongs to a pass.
func (l *Layout) columnCount(size Size, stats *passStats) int {
	if l.provider == nil {
		return defaultColumnCount
	}
	n := l.provider.NumberOfColumns(size)
	if n <= 0 {
		if stats == nil {
			return defaultColumnCount
		}
		stats.columnFallbacks++
		l.debugWarn("provider returned %d columns for %vx%v, using %d", n, size.Width, size.Height, defaultColumnCount)
		return defaultColumnCount
	}
	return n
}

// columnWidth splits the section's usable width into equal columns.
func (l *Layout) columnWidth(cols int, inset Insets, spacing float64) float64 {
	n := float64(cols)
	usable := l.contentWidth() - inset.Horizontal() - spacing*(n-1)
	return max(0, usable/n)
}

// columnOrigin returns the x-coordinate of a column's left edge.
func columnOrigin(col int, width, spacing, left float64) float64 {
	fc := float64(col)
	return left + width*fc + spacing*fc
}

func (l *Layout) itemHeight(pos Position, stats *passStats) float64 {
	if l.provider == nil {
		return 0
	}
	stats.heightQueries++
	h, ok := sanitizeHeight(l.provider.HeightForItem(pos))
	if !ok {
		stats.heightFallbacks++
		l.debugWarn("invalid height for item %d in section %d, using 0", pos.Item, pos.Section)
	}
	return h
}

func (l *Layout) sectionInset(section int) Insets {
	return valueOr(l.cfg.Sections.Inset, section, l.cfg.SectionInset)
}

func (l *Layout) lineSpacing(section int) float64 {
	return valueOr(l.cfg.Sections.LineSpacing, section, l.cfg.MinimumLineSpacing)
}

func (l *Layout) interitemSpacing(section int) float64 {
	return valueOr(l.cfg.Sections.InteritemSpacing, section, l.cfg.MinimumInteritemSpacing)
}

func (l *Layout) headerSize(section int) (Size, bool) {
	return supplementarySize(l.cfg.Sections.HeaderSize, section)
}

func (l *Layout) footerSize(section int) (Size, bool) {
	return supplementarySize(l.cfg.Sections.FooterSize, section)
}

// supplementarySize reports a view as declared only when its height is a
// positive finite number.
func supplementarySize(fn func(int) (Size, bool), section int) (Size, bool) {
	size := valueOr(fn, section, Size{})
	if h, ok := sanitizeHeight(size.Height); !ok || h == 0 {
		return Size{}, false
	}
	return size, true
}
