package flexgrid

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sort"
)

// sourceSection describes one section of a StaticSource. Nil fields fall
// back to the layout's defaults.
type sourceSection struct {
	Heights          []float64 `json:"heights"`
	Header           *Size     `json:"header,omitempty"`
	Footer           *Size     `json:"footer,omitempty"`
	Inset            *Insets   `json:"inset,omitempty"`
	LineSpacing      *float64  `json:"lineSpacing,omitempty"`
	InteritemSpacing *float64  `json:"interitemSpacing,omitempty"`
}

// columnRule selects Columns for viewports at least MinWidth wide.
type columnRule struct {
	MinWidth float64 `json:"minWidth"`
	Columns  int     `json:"columns"`
}

// sourceScript is the top-level JSON structure of a StaticSource.
type sourceScript struct {
	Bounds         Size            `json:"bounds"`
	ContentInset   Insets          `json:"contentInset"`
	Columns        int             `json:"columns"`
	ColumnsByWidth []columnRule    `json:"columnsByWidth,omitempty"`
	Sections       []sourceSection `json:"sections"`
}

// StaticSource is a fixed data snapshot that acts as both Container and
// Provider. It backs fixtures, demos and tests.
//
//	{
//	  "bounds": {"width": 320, "height": 480},
//	  "columns": 2,
//	  "columnsByWidth": [{"minWidth": 600, "columns": 4}],
//	  "sections": [
//	    {"header": {"height": 40}, "heights": [80, 120, 60], "lineSpacing": 8}
//	  ]
//	}
type StaticSource struct {
	bounds       Rect
	contentInset Insets
	columns      int
	rules        []columnRule
	sections     []sourceSection
}

// LoadSource parses a JSON source description.
func LoadSource(jsonData []byte) (*StaticSource, error) {
	var script sourceScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("flexgrid: parse source: %w", err)
	}
	if err := script.validate(); err != nil {
		return nil, fmt.Errorf("flexgrid: parse source: %w", err)
	}
	rules := append([]columnRule(nil), script.ColumnsByWidth...)
	sort.Slice(rules, func(i, j int) bool { return rules[i].MinWidth < rules[j].MinWidth })
	return &StaticSource{
		bounds:       Rect{Width: script.Bounds.Width, Height: script.Bounds.Height},
		contentInset: script.ContentInset,
		columns:      script.Columns,
		rules:        rules,
		sections:     script.Sections,
	}, nil
}

func (s *sourceScript) validate() error {
	if s.Bounds.Width < 0 || s.Bounds.Height < 0 {
		return errors.New("negative bounds")
	}
	for i, r := range s.ColumnsByWidth {
		if r.MinWidth < 0 {
			return fmt.Errorf("columnsByWidth[%d]: negative minWidth", i)
		}
	}
	return nil
}

// NewStaticSource builds a single-section source from item heights. The
// heights are copied; later mutations never reach the caller's slice.
func NewStaticSource(bounds Size, columns int, heights ...float64) *StaticSource {
	return &StaticSource{
		bounds:   Rect{Width: bounds.Width, Height: bounds.Height},
		columns:  columns,
		sections: []sourceSection{{Heights: slices.Clone(heights)}},
	}
}

// Bounds implements Container.
func (s *StaticSource) Bounds() Rect { return s.bounds }

// ContentInset implements Container.
func (s *StaticSource) ContentInset() Insets { return s.contentInset }

// NumberOfSections implements Container.
func (s *StaticSource) NumberOfSections() int { return len(s.sections) }

// NumberOfItems implements Container.
func (s *StaticSource) NumberOfItems(section int) int {
	if section < 0 || section >= len(s.sections) {
		return 0
	}
	return len(s.sections[section].Heights)
}

// NumberOfColumns implements Provider. The rule with the largest MinWidth not
// exceeding the viewport width wins; without a match the base column count
// applies.
func (s *StaticSource) NumberOfColumns(size Size) int {
	cols := s.columns
	for _, r := range s.rules {
		if size.Width >= r.MinWidth {
			cols = r.Columns
		}
	}
	return cols
}

// HeightForItem implements Provider.
func (s *StaticSource) HeightForItem(pos Position) float64 {
	if pos.Section < 0 || pos.Section >= len(s.sections) {
		return 0
	}
	heights := s.sections[pos.Section].Heights
	if pos.Item < 0 || pos.Item >= len(heights) {
		return 0
	}
	return heights[pos.Item]
}

// SetBounds resizes the source's viewport and returns the previous bounds, so
// hosts can feed both to Layout.InvalidateForBoundsChange.
func (s *StaticSource) SetBounds(size Size) (old Rect) {
	old = s.bounds
	s.bounds.Width, s.bounds.Height = size.Width, size.Height
	return old
}

// SetContentInset replaces the content inset.
func (s *StaticSource) SetContentInset(in Insets) {
	s.contentInset = in
}

// AppendItems adds items to the end of a section, creating empty sections as
// needed. The layout is not told; it notices the new counts on the next item
// lookup or after an invalidation.
func (s *StaticSource) AppendItems(section int, heights ...float64) {
	for len(s.sections) <= section {
		s.sections = append(s.sections, sourceSection{})
	}
	sec := &s.sections[section]
	sec.Heights = append(sec.Heights, heights...)
}

// SetHeight changes the height of an existing item.
func (s *StaticSource) SetHeight(pos Position, h float64) {
	if pos.Section < 0 || pos.Section >= len(s.sections) {
		return
	}
	heights := s.sections[pos.Section].Heights
	if pos.Item >= 0 && pos.Item < len(heights) {
		heights[pos.Item] = h
	}
}

// Overrides returns the per-section overrides described by the source. Each
// func is only installed when at least one section sets the field.
func (s *StaticSource) Overrides() SectionOverrides {
	var o SectionOverrides
	var hasInset, hasLine, hasInter, hasHeader, hasFooter bool
	for _, sec := range s.sections {
		hasInset = hasInset || sec.Inset != nil
		hasLine = hasLine || sec.LineSpacing != nil
		hasInter = hasInter || sec.InteritemSpacing != nil
		hasHeader = hasHeader || sec.Header != nil
		hasFooter = hasFooter || sec.Footer != nil
	}
	if hasInset {
		o.Inset = func(i int) (Insets, bool) { return sectionField(s, i, func(sec *sourceSection) *Insets { return sec.Inset }) }
	}
	if hasLine {
		o.LineSpacing = func(i int) (float64, bool) {
			return sectionField(s, i, func(sec *sourceSection) *float64 { return sec.LineSpacing })
		}
	}
	if hasInter {
		o.InteritemSpacing = func(i int) (float64, bool) {
			return sectionField(s, i, func(sec *sourceSection) *float64 { return sec.InteritemSpacing })
		}
	}
	if hasHeader {
		o.HeaderSize = func(i int) (Size, bool) { return sectionField(s, i, func(sec *sourceSection) *Size { return sec.Header }) }
	}
	if hasFooter {
		o.FooterSize = func(i int) (Size, bool) { return sectionField(s, i, func(sec *sourceSection) *Size { return sec.Footer }) }
	}
	return o
}

func sectionField[T any](s *StaticSource, section int, field func(*sourceSection) *T) (T, bool) {
	var zero T
	if section < 0 || section >= len(s.sections) {
		return zero, false
	}
	v := field(&s.sections[section])
	if v == nil {
		return zero, false
	}
	return *v, true
}
