package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/spotlight/internal/clipboard"
	"github.com/f3rmion/spotlight/internal/config"
	"github.com/f3rmion/spotlight/internal/logging"
	"github.com/f3rmion/spotlight/internal/reveal"
	"github.com/f3rmion/spotlight/internal/spotlight"
	"github.com/f3rmion/spotlight/internal/tracker"
)

// Tuning steps for the live mask keys.
const (
	radiusStep   = 10
	softEdgeStep = 5
)

// CopiedMsg is sent when a frame copy finishes.
type CopiedMsg struct {
	Method clipboard.Method
	Err    error
}

// Copier puts text on the clipboard.
type Copier interface {
	Write(text string) (clipboard.Method, error)
}

// frame is the title's placement on screen. The tracker reads it through its
// bounds callback, so it is shared by every copy of the model.
type frame struct {
	col, row int
	bounds   spotlight.Rect
	placed   bool
}

// Model is the title screen.
type Model struct {
	cfg     *config.Config
	font    *reveal.Font
	metrics reveal.Metrics
	mode    reveal.Mode

	radius   float64
	softEdge float64

	canvas  *reveal.Canvas
	tracker *tracker.Tracker
	frame   *frame

	clip Copier
	keys keyMap
	help help.Model

	// Layout state
	width  int
	height int
	ready  bool

	showHelp bool
	status   string
	err      error
}

// New builds the title screen for cfg, rasterising block mode with f.
func New(cfg *config.Config, f *reveal.Font) (Model, error) {
	mode, err := reveal.ParseMode(cfg.Mode)
	if err != nil {
		return Model{}, err
	}
	if f == nil {
		f = reveal.DefaultFont()
	}

	fr := &frame{}
	m := Model{
		cfg:      cfg,
		font:     f,
		metrics:  cfg.Metrics(),
		mode:     mode,
		radius:   cfg.Radius,
		softEdge: cfg.SoftEdge,
		frame:    fr,
		tracker: tracker.New(func() (spotlight.Rect, bool) {
			return fr.bounds, fr.placed
		}),
		clip: clipboard.New(),
		keys: defaultKeyMap(),
		help: help.New(),
	}
	if err := m.fit(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// Init mounts the pointer tracker.
func (m Model) Init() tea.Cmd {
	m.tracker.Mount()
	return nil
}

// Pointer returns the tracked pointer in title coordinates.
func (m Model) Pointer() spotlight.Point {
	return m.tracker.Position()
}

// Canvas returns the canvas currently on screen.
func (m Model) Canvas() *reveal.Canvas {
	return m.canvas
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Help overlay - any key but quit closes it
		if m.showHelp && !key.Matches(msg, m.keys.Quit) {
			m.showHelp = false
			return m, nil
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		if !m.tracker.Mounted() {
			return m, nil
		}
		if ev, ok := m.mouseEvent(msg); ok {
			m.tracker.Handle(ev)
		}
		return m, nil

	case tea.BlurMsg:
		m.tracker.Handle(tracker.Event{Kind: tracker.PointerLeave})
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.help.Width = msg.Width
		if err := m.fit(); err != nil {
			m.err = err
		}
		m.place()
		logging.Logger().Debug("resized",
			"width", m.width, "height", m.height,
			"mode", m.canvas.Mode().String(),
			"cols", m.canvas.Cols(), "rows", m.canvas.Rows())
		return m, nil

	case CopiedMsg:
		if msg.Err != nil {
			m.err = fmt.Errorf("copy failed: %w", msg.Err)
			m.status = ""
		} else {
			m.err = nil
			m.status = fmt.Sprintf("Copied frame (%s)", msg.Method)
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.tracker.Unmount()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.Grow):
		m.tune(m.radius+radiusStep, m.softEdge)
	case key.Matches(msg, m.keys.Shrink):
		m.tune(m.radius-radiusStep, m.softEdge)
	case key.Matches(msg, m.keys.Soften):
		m.tune(m.radius, m.softEdge+softEdgeStep)
	case key.Matches(msg, m.keys.Sharpen):
		m.tune(m.radius, m.softEdge-softEdgeStep)
	case key.Matches(msg, m.keys.Mode):
		if m.canvas.Mode() == reveal.ModeBlock {
			m.mode = reveal.ModeCell
		} else {
			m.mode = reveal.ModeBlock
		}
		if err := m.fit(); err != nil {
			m.err = err
		}
		m.place()
	case key.Matches(msg, m.keys.Copy):
		return m, copyFrame(m.clip, m.canvas.Plain())
	}
	return m, nil
}

// mouseEvent maps a terminal mouse message to a tracker event. The pointer
// sits at the centre of the reported cell. A left-button drag is a single
// touch contact.
func (m Model) mouseEvent(msg tea.MouseMsg) (tracker.Event, bool) {
	pos := m.metrics.CellCenter(msg.X, msg.Y)
	left := msg.Button == tea.MouseButtonLeft

	switch msg.Action {
	case tea.MouseActionRelease:
		if left || msg.Button == tea.MouseButtonNone {
			return tracker.Event{Kind: tracker.TouchEnd}, true
		}
	case tea.MouseActionMotion:
		if left {
			return tracker.Event{Kind: tracker.TouchMove, Touches: []spotlight.Point{pos}}, true
		}
		if m.cfg.Track == config.TrackContainer && !m.frame.bounds.Contains(pos) {
			return tracker.Event{Kind: tracker.PointerLeave}, true
		}
		return tracker.Event{Kind: tracker.PointerMove, Pos: pos}, true
	}
	return tracker.Event{}, false
}

// tune changes the mask radii without rebuilding the layout.
func (m *Model) tune(radius, softEdge float64) {
	m.radius = max(0, radius)
	m.softEdge = max(0, softEdge)
	m.canvas = m.canvas.WithMask(m.radius, m.softEdge)
	m.status = fmt.Sprintf("radius %g, soft edge %g", m.radius, m.softEdge)
}

// fit builds the canvas for the current mode, shrinking block mode to the
// window once its size is known.
func (m *Model) fit() error {
	opts := m.cfg.Options()
	opts.Radius = m.radius
	opts.SoftEdge = m.softEdge

	cols, rows := 0, 0
	if m.ready {
		cols = max(1, m.width)
		rows = max(1, m.height-m.chromeRows()-1)
	}
	c, err := reveal.Fit(opts, m.font, m.metrics, m.mode, cols, rows)
	if err != nil {
		return err
	}
	m.canvas = c
	return nil
}

// chromeRows is the number of lines under the title.
func (m Model) chromeRows() int {
	n := 0
	if len(m.cfg.Tagline) > 0 {
		n += 1 + len(m.cfg.Tagline)
	}
	if m.cfg.Footer != "" {
		n += 2
	}
	return n
}

// place centres the title and its chrome above the help line.
func (m *Model) place() {
	cols, rows := m.canvas.Cols(), m.canvas.Rows()
	m.frame.col = max(0, (m.width-cols)/2)
	m.frame.row = max(0, (m.height-1-rows-m.chromeRows())/2)
	m.frame.bounds = m.canvas.Bounds(m.frame.col, m.frame.row)
	m.frame.placed = true
}

func copyFrame(c Copier, text string) tea.Cmd {
	return func() tea.Msg {
		method, err := c.Write(text)
		return CopiedMsg{Method: method, Err: err}
	}
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	lines := make([]string, 0, m.height)
	for i := 0; i < m.frame.row; i++ {
		lines = append(lines, "")
	}

	pad := strings.Repeat(" ", m.frame.col)
	for _, l := range strings.Split(m.canvas.Render(m.tracker.Position()), "\n") {
		lines = append(lines, pad+l)
	}

	if len(m.cfg.Tagline) > 0 {
		lines = append(lines, "")
		for _, t := range m.cfg.Tagline {
			lines = append(lines, m.center(TaglineStyle.Render(t)))
		}
	}
	if m.cfg.Footer != "" {
		lines = append(lines, "", m.center(FooterStyle.Render(m.cfg.Footer)))
	}

	body := max(0, m.height-1)
	if len(lines) > body {
		lines = lines[:body]
	}
	for len(lines) < body {
		lines = append(lines, "")
	}
	lines = append(lines, m.renderStatus())

	return strings.Join(lines, "\n")
}

func (m Model) center(s string) string {
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, s)
}

// renderStatus renders the bottom line: short help, then the last status.
func (m Model) renderStatus() string {
	parts := []string{m.help.View(m.keys)}
	switch {
	case m.err != nil:
		parts = append(parts, ErrorStyle.Render(m.err.Error()))
	case m.status != "":
		parts = append(parts, StatusStyle.Render(m.status))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// renderHelp renders the help overlay
func (m Model) renderHelp() string {
	full := m.help
	full.ShowAll = true

	g := m.canvas.Renderer().Geometry()
	copyVia := clipboard.OSC52
	if clipboard.Available() {
		copyVia = clipboard.Native
	}
	text := HelpTitleStyle.Render("spotlight") + "\n" +
		full.View(m.keys) + "\n\n" +
		InfoStyle.Render(fmt.Sprintf("mode %s  track %s  inner %g  outer %g  copy %s",
			m.canvas.Mode(), m.cfg.Track, g.Inner, g.Outer, copyVia)) + "\n\n" +
		lipgloss.NewStyle().Foreground(ColorMuted).Italic(true).Render("Press any key to close")

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, HelpBoxStyle.Render(text))
}
