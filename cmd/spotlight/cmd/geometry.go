package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/f3rmion/spotlight/internal/reveal"
	"github.com/spf13/cobra"
)

var geometryCmd = &cobra.Command{
	Use:   "geometry",
	Short: "Show the mask radii and per-glyph colours",
	Long: `Print the spotlight's inner and outer radius and a table of every
glyph with its base colour, highlight colour, and box.

With --at the table also shows how much of each glyph's highlight is
visible with the pointer at that point.`,
	RunE: runGeometry,
}

func init() {
	rootCmd.AddCommand(geometryCmd)
	geometryCmd.Flags().String("at", "none", "pointer position X,Y, or none")
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func swatch(hex string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("██") + " " + hex
}

func runGeometry(cmd *cobra.Command, args []string) error {
	atFlag, _ := cmd.Flags().GetString("at")
	at, err := parsePoint(atFlag)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	f, err := loadFont(cfg)
	if err != nil {
		return err
	}
	mode, err := reveal.ParseMode(cfg.Mode)
	if err != nil {
		return err
	}
	c, err := reveal.Fit(cfg.Options(), f, cfg.Metrics(), mode, 0, 0)
	if err != nil {
		return err
	}

	r := c.Renderer()
	g := r.Geometry()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "radius %g  soft edge %g\n", cfg.Radius, cfg.SoftEdge)
	fmt.Fprintf(out, "inner %g  outer %g  band %g  feather %.2f\n", g.Inner, g.Outer, g.Band(), r.Feather())
	fmt.Fprintf(out, "title %gx%g (%s, %dx%d cells)\n", r.Size().W, r.Size().H, c.Mode(), c.Cols(), c.Rows())
	nBase, nHigh := r.Palette().Len()
	fmt.Fprintf(out, "palette %d base / %d highlight colours\n\n", nBase, nHigh)

	headers := []string{"#", "glyph", "base", "highlight", "box"}
	if at.Present() {
		headers = append(headers, "opacity")
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	pal := r.Palette()
	for i, glyph := range r.Sequence().Glyphs() {
		b := r.Box(i)
		row := []string{
			strconv.Itoa(i),
			strconv.Quote(glyph.String()),
			swatch(pal.Base(i)),
			swatch(pal.Highlight(i)),
			fmt.Sprintf("%.0f,%.0f %.0fx%.0f", b.X, b.Y, b.W, b.H),
		}
		if at.Present() {
			row = append(row, fmt.Sprintf("%.2f", r.GlyphOpacity(i, at)))
		}
		t.Row(row...)
	}
	fmt.Fprintln(out, t.Render())

	if at.Present() {
		fmt.Fprintf(out, "\nglyphs in the solid zone at %g,%g: %v\n", at.X, at.Y, r.Revealed(at))
		fmt.Fprintf(out, "glyphs touched by the mask at %g,%g: %v\n", at.X, at.Y, r.Touched(at))
	}
	return nil
}
