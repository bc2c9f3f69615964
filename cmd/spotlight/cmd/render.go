package cmd

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/spotlight/internal/config"
	"github.com/f3rmion/spotlight/internal/logging"
	"github.com/f3rmion/spotlight/internal/palette"
	"github.com/f3rmion/spotlight/internal/reveal"
	"github.com/f3rmion/spotlight/internal/spotlight"
	"github.com/f3rmion/spotlight/internal/tui"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

// ErrInvalidPoint is returned for an --at value that is not X,Y or none.
var ErrInvalidPoint = errors.New("point must be X,Y or none")

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Draw one frame with the pointer at a fixed position",
	Long: `Draw the title once with the spotlight centred on a point given in the
title's own pixel coordinates, where 0,0 is its top-left corner.

Without --png the frame is printed to the terminal. With --png the two
layers are drawn at full font size and composited per pixel.`,
	Example: `  spotlight render --at 40,30
  spotlight render --at none
  spotlight render --at 200,60 --png title.png --background "#111827"`,
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().String("at", "none", "pointer position X,Y, or none for the idle frame")
	renderCmd.Flags().String("png", "", "write a PNG to this path instead of printing")
	renderCmd.Flags().String("background", "", "PNG background colour (default transparent)")
	renderCmd.Flags().Int("padding", 16, "PNG padding in pixels")
	renderCmd.Flags().Int("width", 0, "maximum width in columns (default unlimited)")
	renderCmd.Flags().Bool("force-color", false, "emit true colour even when stdout is not a terminal")
}

func runRender(cmd *cobra.Command, args []string) error {
	atFlag, _ := cmd.Flags().GetString("at")
	pngPath, _ := cmd.Flags().GetString("png")
	background, _ := cmd.Flags().GetString("background")
	padding, _ := cmd.Flags().GetInt("padding")
	width, _ := cmd.Flags().GetInt("width")
	forceColor, _ := cmd.Flags().GetBool("force-color")

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

	if pngPath != "" {
		return writePNG(cfg, f, at, pngPath, background, padding)
	}

	if forceColor {
		lipgloss.SetColorProfile(termenv.TrueColor)
	}

	mode, err := reveal.ParseMode(cfg.Mode)
	if err != nil {
		return err
	}
	c, err := reveal.Fit(cfg.Options(), f, cfg.Metrics(), mode, width, 0)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, c.Render(at))
	if len(cfg.Tagline) > 0 {
		fmt.Fprintln(out)
		for _, line := range cfg.Tagline {
			fmt.Fprintln(out, tui.TaglineStyle.Render(line))
		}
	}
	if cfg.Footer != "" {
		fmt.Fprintln(out)
		fmt.Fprintln(out, tui.FooterStyle.Render(cfg.Footer))
	}
	return nil
}

func writePNG(cfg *config.Config, f *reveal.Font, at spotlight.Point, path, background string, padding int) error {
	iopts := reveal.ImageOptions{Padding: padding}
	if background != "" {
		bg, err := palette.Parse(background)
		if err != nil {
			return err
		}
		iopts.Background = color.Color(bg)
	}

	img, err := reveal.NewImage(cfg.Options(), f, iopts)
	if err != nil {
		return err
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := reveal.WritePNG(out, img.Composite(at)); err != nil {
		out.Close()
		return err
	}
	logging.Logger().Debug("wrote png",
		"path", path, "width", img.Base.Bounds().Dx(), "height", img.Base.Bounds().Dy(),
		"padding", img.Padding())
	return out.Close()
}

// parsePoint reads "X,Y" or "none".
func parsePoint(s string) (spotlight.Point, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "none") {
		return spotlight.Sentinel, nil
	}

	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return spotlight.Point{}, fmt.Errorf("%q: %w", s, ErrInvalidPoint)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return spotlight.Point{}, fmt.Errorf("%q: %w", s, ErrInvalidPoint)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return spotlight.Point{}, fmt.Errorf("%q: %w", s, ErrInvalidPoint)
	}
	return spotlight.Point{X: x, Y: y}, nil
}
