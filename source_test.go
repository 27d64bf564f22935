package flexgrid

import (
	"strings"
	"testing"
)

const testSourceJSON = `{
	"bounds": {"width": 320, "height": 480},
	"contentInset": {"left": 10, "right": 10},
	"columns": 2,
	"columnsByWidth": [
		{"minWidth": 900, "columns": 6},
		{"minWidth": 600, "columns": 4}
	],
	"sections": [
		{"header": {"height": 40}, "heights": [80, 120, 60], "lineSpacing": 8},
		{"heights": [30], "inset": {"top": 4, "left": 4, "bottom": 4, "right": 4}, "footer": {"height": 20}}
	]
}`

func loadTestSource(t *testing.T) *StaticSource {
	t.Helper()
	src, err := LoadSource([]byte(testSourceJSON))
	if err != nil {
		t.Fatalf("LoadSource: %v", err)
	}
	return src
}

// --- LoadSource ---

func TestLoadSource_Container(t *testing.T) {
	src := loadTestSource(t)
	if b := src.Bounds(); b != (Rect{Width: 320, Height: 480}) {
		t.Errorf("Bounds() = %+v", b)
	}
	if in := src.ContentInset(); in.Left != 10 || in.Right != 10 {
		t.Errorf("ContentInset() = %+v", in)
	}
	if n := src.NumberOfSections(); n != 2 {
		t.Errorf("NumberOfSections() = %d, want 2", n)
	}
	if n := src.NumberOfItems(0); n != 3 {
		t.Errorf("NumberOfItems(0) = %d, want 3", n)
	}
	if n := src.NumberOfItems(5); n != 0 {
		t.Errorf("NumberOfItems(5) = %d, want 0", n)
	}
}

func TestLoadSource_InvalidJSON(t *testing.T) {
	_, err := LoadSource([]byte("not json"))
	if err == nil {
		t.Fatal("expected error for invalid JSON, got nil")
	}
	if !strings.HasPrefix(err.Error(), "flexgrid: parse source:") {
		t.Errorf("error = %q, want flexgrid prefix", err)
	}
}

func TestLoadSource_NegativeBounds(t *testing.T) {
	_, err := LoadSource([]byte(`{"bounds": {"width": -1, "height": 10}}`))
	if err == nil {
		t.Error("expected error for negative bounds, got nil")
	}
}

func TestLoadSource_NegativeMinWidth(t *testing.T) {
	_, err := LoadSource([]byte(`{"columnsByWidth": [{"minWidth": -5, "columns": 3}]}`))
	if err == nil {
		t.Error("expected error for negative minWidth, got nil")
	}
}

// --- Provider ---

func TestStaticSource_NumberOfColumns(t *testing.T) {
	src := loadTestSource(t)
	tests := []struct {
		width float64
		want  int
	}{
		{320, 2},
		{600, 4},
		{899, 4},
		{1200, 6},
	}
	for _, tt := range tests {
		if got := src.NumberOfColumns(Size{Width: tt.width}); got != tt.want {
			t.Errorf("NumberOfColumns(%v) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestStaticSource_HeightForItem(t *testing.T) {
	src := loadTestSource(t)
	if h := src.HeightForItem(Position{Section: 0, Item: 1}); h != 120 {
		t.Errorf("height = %v, want 120", h)
	}
	for _, pos := range []Position{{0, 3}, {2, 0}, {-1, 0}, {0, -1}} {
		if h := src.HeightForItem(pos); h != 0 {
			t.Errorf("HeightForItem(%+v) = %v, want 0", pos, h)
		}
	}
}

func TestStaticSource_Overrides(t *testing.T) {
	src := loadTestSource(t)
	o := src.Overrides()

	if o.InteritemSpacing != nil {
		t.Error("InteritemSpacing installed although no section sets it")
	}
	if v, ok := o.LineSpacing(0); !ok || v != 8 {
		t.Errorf("LineSpacing(0) = %v, %v; want 8, true", v, ok)
	}
	if _, ok := o.LineSpacing(1); ok {
		t.Error("LineSpacing(1) should defer to the default")
	}
	if _, ok := o.HeaderSize(1); ok {
		t.Error("HeaderSize(1) should be absent")
	}
	if s, ok := o.FooterSize(1); !ok || s.Height != 20 {
		t.Errorf("FooterSize(1) = %+v, %v", s, ok)
	}
	if in, ok := o.Inset(1); !ok || in != InsetAll(4) {
		t.Errorf("Inset(1) = %+v, %v", in, ok)
	}
	if _, ok := o.Inset(9); ok {
		t.Error("Inset(9) out of range should be absent")
	}
}

func TestStaticSource_DrivesLayout(t *testing.T) {
	src := loadTestSource(t)
	l := NewLayout(src, src, Config{Sections: src.Overrides()})

	// Section 0: header 40, rows 120 and 60 separated by 8.
	// Section 1: inset 4 around one 30-tall row, then a 20-tall footer.
	if h := l.ContentSize().Height; h != 40+120+8+60+4+30+4+20 {
		t.Errorf("content height = %v, want 286", h)
	}
	if w := l.ContentSize().Width; w != 300 {
		t.Errorf("content width = %v, want 300", w)
	}
	f := itemFrame(t, l, 1, 0)
	if f.X != 4 || f.Width != (300-8)/2 {
		t.Errorf("section 1 item = %+v", f)
	}
}

// --- Mutation ---

func TestStaticSource_Mutation(t *testing.T) {
	src := NewStaticSource(Size{Width: 100, Height: 100}, 2, 1, 2)
	src.AppendItems(2, 5)
	if n := src.NumberOfSections(); n != 3 {
		t.Errorf("NumberOfSections() = %d, want 3", n)
	}
	if n := src.NumberOfItems(1); n != 0 {
		t.Errorf("NumberOfItems(1) = %d, want 0", n)
	}
	src.SetHeight(Position{Section: 0, Item: 1}, 9)
	src.SetHeight(Position{Section: 0, Item: 7}, 9)
	if h := src.HeightForItem(Position{Section: 0, Item: 1}); h != 9 {
		t.Errorf("height = %v, want 9", h)
	}
	old := src.SetBounds(Size{Width: 50, Height: 60})
	if old.Width != 100 || src.Bounds().Width != 50 {
		t.Errorf("SetBounds: old %+v, new %+v", old, src.Bounds())
	}
}

func TestNewStaticSource_CopiesHeights(t *testing.T) {
	heights := []float64{1, 2, 3}
	src := NewStaticSource(Size{Width: 100, Height: 100}, 2, heights...)
	src.SetHeight(Position{Item: 0}, 100)
	src.AppendItems(0, 4)

	if heights[0] != 1 {
		t.Errorf("caller slice changed: heights[0] = %v, want 1", heights[0])
	}
	if h := src.HeightForItem(Position{Item: 0}); h != 100 {
		t.Errorf("source height = %v, want 100", h)
	}
}
