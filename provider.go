package flexgrid

import "math"

// defaultColumnCount is used when the provider is missing or answers with a
// non-positive column count.
const defaultColumnCount = 2

// Container is the hosting view the layout arranges items for. It supplies the
// viewport geometry and the section/item counts of the current data snapshot.
type Container interface {
	// Bounds returns the container's visible rectangle. Only its size is used.
	Bounds() Rect
	// ContentInset returns the padding between the bounds and the content.
	ContentInset() Insets
	NumberOfSections() int
	NumberOfItems(section int) int
}

// Provider answers the two questions every grid needs: how many columns fit
// a viewport of the given size, and how tall an item wants to be.
type Provider interface {
	NumberOfColumns(size Size) int
	// HeightForItem returns the item's required height. Negative or
	// non-finite answers are treated as 0.
	HeightForItem(pos Position) float64
}

// SectionOverrides lets a host override the layout's defaults per section.
// Every field is optional: a nil func, or a func that returns ok == false for
// a section, falls back to the layout's Config value.
type SectionOverrides struct {
	Inset            func(section int) (Insets, bool)
	LineSpacing      func(section int) (float64, bool)
	InteritemSpacing func(section int) (float64, bool)
	// HeaderSize declares a header for the section when it returns a size
	// with positive height.
	HeaderSize func(section int) (Size, bool)
	// FooterSize declares a footer for the section when it returns a size
	// with positive height.
	FooterSize func(section int) (Size, bool)
}

// valueOr resolves an optional per-section answer against a fallback.
func valueOr[T any](fn func(int) (T, bool), section int, fallback T) T {
	if fn == nil {
		return fallback
	}
	if v, ok := fn(section); ok {
		return v
	}
	return fallback
}

// sanitizeHeight maps answers that cannot describe a real extent to 0.
func sanitizeHeight(h float64) (float64, bool) {
	if math.IsNaN(h) || math.IsInf(h, 0) || h < 0 {
		return 0, false
	}
	return h, true
}
