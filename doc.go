// Package flexgrid is a layout engine for sectioned, fixed-column grids whose
// rows grow to fit their tallest item.
//
// A [Layout] arranges the items reported by a [Container] into equal-width
// columns. Each row is as tall as the tallest height the [Provider] requests
// for any item in that row, so short items never clip tall neighbors and tall
// items never stretch the whole grid. Sections may carry a header above and a
// footer below their items, and insets and spacing can be overridden per
// section through [SectionOverrides].
//
// # Quick start
//
//	grid := flexgrid.NewLayout(view, provider, flexgrid.Config{
//		MinimumLineSpacing:      8,
//		MinimumInteritemSpacing: 8,
//		SectionInset:            flexgrid.InsetAll(16),
//	})
//
//	size := grid.ContentSize()
//	for _, a := range grid.AttributesInRect(visible) {
//		draw(a.Kind, a.Position, a.Frame)
//	}
//
// # Caching
//
// The layout computes every frame in one pass on the first query and serves
// later queries from that result. Call [Layout.Invalidate] when the data
// changes, [Layout.InvalidateForBoundsChange] when the container resizes
// (only width changes matter), and [Layout.EnvironmentChanged] when fonts or
// the text scale change.
//
// # Measuring text
//
// [TextHeight] and [LabelHeight] measure text against a [Font] and round up
// to whole units, which keeps rows pixel-aligned. [TTFFont] measures TrueType
// text with [Ebitengine]'s text/v2; [FaceFont] adapts any
// golang.org/x/image font.Face.
//
// [Ebitengine]: https://ebitengine.org
package flexgrid
