package flexgrid

// Rect is an axis-aligned rectangle in layout units. The coordinate system has
// its origin at the top-left of the content area, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// IsEmpty reports whether the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Size is a width/height pair.
type Size struct {
	Width, Height float64
}

// Insets are margins on four sides of a box.
type Insets struct {
	Top, Left, Bottom, Right float64
}

// InsetAll returns Insets with the same value on every side.
func InsetAll(v float64) Insets {
	return Insets{Top: v, Left: v, Bottom: v, Right: v}
}

// InsetSymmetric returns Insets with vertical (top/bottom) and horizontal
// (left/right) values.
func InsetSymmetric(v, h float64) Insets {
	return Insets{Top: v, Left: h, Bottom: v, Right: h}
}

// Horizontal returns the sum of Left and Right.
func (in Insets) Horizontal() float64 { return in.Left + in.Right }

// Vertical returns the sum of Top and Bottom.
func (in Insets) Vertical() float64 { return in.Top + in.Bottom }

// Position identifies an item by section and index within the section.
type Position struct {
	Section, Item int
}

// Kind distinguishes cells from the supplementary views of a section.
type Kind uint8

const (
	KindItem   Kind = iota // a cell in the grid
	KindHeader             // the view above a section's items
	KindFooter             // the view below a section's items
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case KindItem:
		return "item"
	case KindHeader:
		return "header"
	case KindFooter:
		return "footer"
	default:
		return "unknown"
	}
}

// Attributes is the computed placement of one item, header or footer.
// For headers and footers Position.Item is always 0.
type Attributes struct {
	Kind     Kind
	Position Position
	Frame    Rect
}
