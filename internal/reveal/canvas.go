package reveal

import (
	"fmt"
	"image"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/spotlight/internal/logging"
	"github.com/f3rmion/spotlight/internal/spotlight"
	"github.com/mattn/go-runewidth"
	"golang.org/x/image/font"
)

// coverageThreshold is the glyph coverage above which a dot counts as ink.
const coverageThreshold = 96

// Canvas draws a renderer into terminal cells.
//
// In ModeBlock every cell holds two square-ish dots using half-block
// characters (▀▄█), and each dot is coloured on its own so the feather band
// is visible inside a glyph. In ModeCell each glyph is one character.
type Canvas struct {
	r       *Renderer
	metrics Metrics
	mode    Mode

	cols int
	rows int

	// owner maps each dot (ModeBlock) or column (ModeCell) to a glyph index, -1 for none.
	owner []int
	// lead marks the first column of each glyph in ModeCell.
	lead []bool
}

// NewBlockCanvas rasterises opts.Text from f. opts.FontSize and opts.Gap are
// pixel-equivalents and are converted to dots with metrics.
func NewBlockCanvas(opts Options, f *Font, metrics Metrics) (*Canvas, error) {
	dotW, dotH := metrics.DotWidth(), metrics.DotHeight()
	if dotW <= 0 || dotH <= 0 {
		return nil, fmt.Errorf("invalid cell metrics %+v", metrics)
	}

	face, err := f.Face(opts.FontSize / dotH)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	layout := FaceLayout{
		Face:  face,
		Scale: spotlight.Point{X: dotW, Y: dotH},
		Gap:   opts.Gap / dotW,
	}
	r, err := New(opts, layout)
	if err != nil {
		return nil, err
	}

	width := int(math.Ceil(r.Size().W / dotW))
	height := int(math.Ceil(r.Size().H / dotH))
	rows := (height + 1) / 2

	c := &Canvas{
		r:       r,
		metrics: metrics,
		mode:    ModeBlock,
		cols:    width,
		rows:    rows,
	}
	c.owner = rasterise(layout, r.Sequence(), width, rows*2)
	return c, nil
}

// rasterise draws each glyph on its own and records which glyph inks every
// dot. Later glyphs win where neighbours overlap.
func rasterise(layout FaceLayout, seq spotlight.GlyphSequence, width, height int) []int {
	owner := make([]int, width*height)
	for i := range owner {
		owner[i] = -1
	}
	if width == 0 || height == 0 {
		return owner
	}

	origins, _, _ := layout.origins(seq)
	bounds := image.Rect(0, 0, width, height)
	for i, g := range seq.Glyphs() {
		dst := image.NewAlpha(bounds)
		d := &font.Drawer{
			Dst:  dst,
			Src:  image.Opaque,
			Face: layout.Face,
			Dot:  origins[i],
		}
		d.DrawString(g.String())

		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				if dst.AlphaAt(x, y).A > coverageThreshold {
					owner[y*width+x] = i
				}
			}
		}
	}
	return owner
}

// NewCellCanvas lays out one character per glyph. opts.Gap is converted to
// whole columns.
func NewCellCanvas(opts Options, metrics Metrics) (*Canvas, error) {
	if metrics.CellWidth <= 0 || metrics.CellHeight <= 0 {
		return nil, fmt.Errorf("invalid cell metrics %+v", metrics)
	}
	gap := int(math.Round(opts.Gap / metrics.CellWidth))
	r, err := New(opts, CellLayout{Metrics: metrics, Gap: gap})
	if err != nil {
		return nil, err
	}

	cols := int(math.Round(r.Size().W / metrics.CellWidth))
	c := &Canvas{
		r:       r,
		metrics: metrics,
		mode:    ModeCell,
		cols:    cols,
		rows:    1,
		owner:   make([]int, cols),
		lead:    make([]bool, cols),
	}
	for i := range c.owner {
		c.owner[i] = -1
	}
	for i := 0; i < r.Sequence().Len(); i++ {
		box := r.Box(i)
		start := int(math.Round(box.X / metrics.CellWidth))
		w := int(math.Round(box.W / metrics.CellWidth))
		for col := start; col < start+w && col < cols; col++ {
			c.owner[col] = i
		}
		if start < cols {
			c.lead[start] = true
		}
	}
	return c, nil
}

// MinFontSize is the smallest font Fit tries in ModeBlock.
const MinFontSize = 16

// Fit builds a canvas that fits in maxCols×maxRows cells. In ModeBlock the
// font shrinks by a fifth per step, and below MinFontSize the title falls
// back to ModeCell. A non-positive limit is unbounded.
func Fit(opts Options, f *Font, metrics Metrics, mode Mode, maxCols, maxRows int) (*Canvas, error) {
	if !(opts.FontSize > 0) {
		return nil, fmt.Errorf("font size %v: %w", opts.FontSize, ErrInvalidFontSize)
	}
	if mode == ModeBlock {
		size := opts.FontSize
		for {
			o := opts
			o.FontSize = size
			c, err := NewBlockCanvas(o, f, metrics)
			if err != nil {
				return nil, err
			}
			if (maxCols <= 0 || c.Cols() <= maxCols) && (maxRows <= 0 || c.Rows() <= maxRows) {
				return c, nil
			}
			size *= 0.8
			if size < MinFontSize {
				break
			}
		}
		logging.Logger().Warn("title too large for block mode, using cell mode",
			"cols", maxCols, "rows", maxRows)
	}
	return NewCellCanvas(opts, metrics)
}

// Renderer returns the renderer behind the canvas.
func (c *Canvas) Renderer() *Renderer { return c.r }

// Mode returns how glyphs are drawn.
func (c *Canvas) Mode() Mode { return c.mode }

// Metrics returns the cell metrics.
func (c *Canvas) Metrics() Metrics { return c.metrics }

// Cols returns the canvas width in cells.
func (c *Canvas) Cols() int { return c.cols }

// Rows returns the canvas height in cells.
func (c *Canvas) Rows() int { return c.rows }

// WithMask returns a copy of the canvas whose renderer uses new mask radii.
func (c *Canvas) WithMask(radius, softEdge float64) *Canvas {
	cp := *c
	cp.r = c.r.WithMask(radius, softEdge)
	return &cp
}

// Bounds returns the viewport box of the canvas drawn at cell (col, row).
func (c *Canvas) Bounds(col, row int) spotlight.Rect {
	return c.metrics.CellRect(col, row, c.cols, c.rows)
}

// dotCenter returns the local position of the centre of dot (x, y).
func (c *Canvas) dotCenter(x, y int) spotlight.Point {
	return spotlight.Point{
		X: (float64(x) + 0.5) * c.metrics.DotWidth(),
		Y: (float64(y) + 0.5) * c.metrics.DotHeight(),
	}
}

// Colors returns the composite colour of every ink dot (ModeBlock) or column
// (ModeCell), row-major, with "" where there is no glyph.
func (c *Canvas) Colors(center spotlight.Point) [][]string {
	if c.mode == ModeCell {
		composite := c.r.Composite(center)
		row := make([]string, c.cols)
		for x, i := range c.owner {
			if i >= 0 {
				row[x] = composite[i]
			}
		}
		return [][]string{row}
	}

	out := make([][]string, c.rows*2)
	for y := range out {
		out[y] = make([]string, c.cols)
		for x := 0; x < c.cols; x++ {
			i := c.owner[y*c.cols+x]
			if i < 0 {
				continue
			}
			out[y][x] = c.r.ColorAt(i, c.dotCenter(x, y), center)
		}
	}
	return out
}

// Render draws the canvas with the mask centred on a local pointer position.
func (c *Canvas) Render(center spotlight.Point) string {
	colors := c.Colors(center)
	lines := make([]string, c.rows)
	for row := range lines {
		var b runBuilder
		for col := 0; col < c.cols; col++ {
			if c.mode == ModeCell {
				c.cellAt(&b, colors[0], col)
				continue
			}
			blockAt(&b, colors[row*2][col], colors[row*2+1][col])
		}
		lines[row] = b.String()
	}
	return strings.Join(lines, "\n")
}

// Plain draws the glyph shapes without colour.
func (c *Canvas) Plain() string {
	lines := make([]string, c.rows)
	for row := range lines {
		var b strings.Builder
		for col := 0; col < c.cols; col++ {
			if c.mode == ModeCell {
				if i := c.owner[col]; i >= 0 {
					if c.lead[col] {
						b.WriteString(cellText(c.r.Sequence().At(i).Rune))
					}
				} else {
					b.WriteRune(' ')
				}
				continue
			}
			top := c.owner[row*2*c.cols+col] >= 0
			bottom := c.owner[(row*2+1)*c.cols+col] >= 0
			b.WriteRune(halfBlock(top, bottom))
		}
		lines[row] = b.String()
	}
	return strings.Join(lines, "\n")
}

func (c *Canvas) cellAt(b *runBuilder, colors []string, col int) {
	i := c.owner[col]
	switch {
	case i < 0:
		b.add(" ", "", "")
	case c.lead[col]:
		b.add(cellText(c.r.Sequence().At(i).Rune), colors[col], "")
	}
}

// cellText is what a glyph prints as in ModeCell. Runes without a display
// width (tabs, newlines, other controls, combining marks) print as one space,
// matching the single column cellWidth gives them.
func cellText(r rune) string {
	if runewidth.RuneWidth(r) == 0 {
		return " "
	}
	return string(r)
}

func blockAt(b *runBuilder, top, bottom string) {
	switch {
	case top == "" && bottom == "":
		b.add(" ", "", "")
	case top != "" && bottom != "" && top == bottom:
		b.add("█", top, "")
	case top != "" && bottom != "":
		b.add("▀", top, bottom)
	case top != "":
		b.add("▀", top, "")
	default:
		b.add("▄", bottom, "")
	}
}

func halfBlock(top, bottom bool) rune {
	switch {
	case top && bottom:
		return '█'
	case top:
		return '▀'
	case bottom:
		return '▄'
	default:
		return ' '
	}
}

// runBuilder groups neighbouring cells with the same colours into one styled run.
type runBuilder struct {
	out    strings.Builder
	run    strings.Builder
	fg, bg string
}

func (b *runBuilder) add(s, fg, bg string) {
	if fg != b.fg || bg != b.bg {
		b.flush()
		b.fg, b.bg = fg, bg
	}
	b.run.WriteString(s)
}

func (b *runBuilder) flush() {
	if b.run.Len() == 0 {
		return
	}
	style := lipgloss.NewStyle().Bold(true)
	if b.fg != "" {
		style = style.Foreground(lipgloss.Color(b.fg))
	}
	if b.bg != "" {
		style = style.Background(lipgloss.Color(b.bg))
	}
	b.out.WriteString(style.Render(b.run.String()))
	b.run.Reset()
}

func (b *runBuilder) String() string {
	b.flush()
	return b.out.String()
}
