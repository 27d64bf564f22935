package flexgrid

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/rivo/uniseg"
	"golang.org/x/image/font"
)

// Font is the interface for text measurement. Hosts usually measure item
// content from HeightForItem with TextHeight or LabelHeight.
type Font interface {
	MeasureString(text string) (width, height float64)
	LineHeight() float64
}

// --- Height helpers ---

// TextHeight returns the height needed to draw text wrapped to maxWidth,
// rounded up to a whole unit. A maxWidth of 0 or less means unconstrained.
func TextHeight(s string, f Font, maxWidth float64) float64 {
	if f == nil || s == "" {
		return 0
	}
	lines := len(WrapText(s, f, maxWidth))
	return math.Ceil(float64(lines) * f.LineHeight())
}

// LabelHeight measures text the way a label with the given line limit is
// drawn: a limit of exactly 1 measures a single line, anything else wraps
// without a line limit.
func LabelHeight(s string, f Font, maxWidth float64, numberOfLines int) float64 {
	if numberOfLines != 1 {
		return TextHeight(s, f, maxWidth)
	}
	if f == nil || s == "" {
		return 0
	}
	return math.Ceil(f.LineHeight())
}

// TextHeight measures wrapped text at the column width of the section.
func (l *Layout) TextHeight(s string, f Font, section int) float64 {
	return TextHeight(s, f, l.ColumnWidth(section))
}

// LabelHeight measures a label at the column width of the section.
func (l *Layout) LabelHeight(s string, f Font, numberOfLines, section int) float64 {
	return LabelHeight(s, f, l.ColumnWidth(section), numberOfLines)
}

// --- Wrapping ---

// WrapText breaks s into the lines it occupies when drawn with f no wider
// than maxWidth. Breaks follow Unicode line breaking rules; a segment that is
// wider than maxWidth on its own is split between grapheme clusters. Mandatory
// breaks (newlines) always end a line. Trailing whitespace is not counted
// against the width but is kept in the returned lines.
func WrapText(s string, f Font, maxWidth float64) []string {
	if f == nil || s == "" {
		return nil
	}
	fits := func(line string) bool {
		if maxWidth <= 0 {
			return true
		}
		w, _ := f.MeasureString(strings.TrimRightFunc(line, unicode.IsSpace))
		return w <= maxWidth
	}

	var lines []string
	var cur string
	state := -1
	for s != "" {
		var seg string
		var mustBreak bool
		seg, s, mustBreak, state = uniseg.FirstLineSegmentInString(s, state)

		if cur != "" && !fits(cur+seg) {
			lines = append(lines, trimBreak(cur))
			cur = ""
		}
		if cur == "" && !fits(seg) {
			var full []string
			full, seg = splitGraphemes(seg, fits)
			lines = append(lines, full...)
		}
		cur += seg

		if mustBreak {
			lines = append(lines, trimBreak(cur))
			cur = ""
		}
	}
	if cur != "" {
		lines = append(lines, trimBreak(cur))
	}
	return lines
}

// splitGraphemes cuts an overlong segment into lines that fit, returning the
// complete lines and the remainder that starts the next line. Every line holds
// at least one grapheme cluster.
func splitGraphemes(seg string, fits func(string) bool) (full []string, tail string) {
	var cur string
	state := -1
	for seg != "" {
		var cluster string
		cluster, seg, _, state = uniseg.FirstGraphemeClusterInString(seg, state)
		if cur != "" && !fits(cur+cluster) {
			full = append(full, cur)
			cur = ""
		}
		cur += cluster
	}
	return full, cur
}

// trimBreak drops the mandatory break characters that ended a line.
func trimBreak(line string) string {
	return strings.TrimRight(line, "\r\n\v\f\u0085\u2028\u2029")
}

// --- TTFFont ---

// TTFFont wraps Ebitengine's text/v2 for TrueType measurement.
type TTFFont struct {
	face   *text.GoTextFace
	source *text.GoTextFaceSource
	size   float64
	lh     float64
}

// LoadTTFFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadTTFFont(ttfData []byte, size float64) (*TTFFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("flexgrid: failed to parse TTF data: %w", err)
	}
	return newTTFFont(source, size), nil
}

func newTTFFont(source *text.GoTextFaceSource, size float64) *TTFFont {
	face := &text.GoTextFace{Source: source, Size: size}
	m := face.Metrics()
	return &TTFFont{
		face:   face,
		source: source,
		size:   size,
		lh:     m.HAscent + m.HDescent + m.HLineGap,
	}
}

// Scaled returns the same typeface at size*factor, sharing the parsed source.
// Hosts use it when the text scale changes, then call
// Layout.EnvironmentChanged.
func (f *TTFFont) Scaled(factor float64) *TTFFont {
	return newTTFFont(f.source, f.size*factor)
}

// Size returns the font size in pixels.
func (f *TTFFont) Size() float64 {
	return f.size
}

// MeasureString returns the width and height of the rendered text.
func (f *TTFFont) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *TTFFont) LineHeight() float64 {
	return f.lh
}

// Face returns the underlying GoTextFace for direct Ebitengine text/v2 rendering.
func (f *TTFFont) Face() *text.GoTextFace {
	return f.face
}

// --- FaceFont ---

// FaceFont adapts a golang.org/x/image font.Face, such as the fixed-metric
// basicfont.Face7x13.
type FaceFont struct {
	face font.Face
	lh   float64
}

// NewFaceFont wraps face. The line height is taken from the face metrics.
func NewFaceFont(face font.Face) *FaceFont {
	return &FaceFont{
		face: face,
		lh:   fixedToFloat(face.Metrics().Height),
	}
}

// MeasureString returns the width of the widest line and the height of all
// lines.
func (f *FaceFont) MeasureString(s string) (width, height float64) {
	lines := strings.Split(s, "\n")
	for _, line := range lines {
		width = max(width, fixedToFloat(font.MeasureString(f.face, line)))
	}
	return width, float64(len(lines)) * f.lh
}

// LineHeight returns the vertical distance between baselines.
func (f *FaceFont) LineHeight() float64 {
	return f.lh
}

func fixedToFloat[T ~int32](v T) float64 {
	return float64(v) / 64
}
