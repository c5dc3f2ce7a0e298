package cli

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/sketchpad/pkg/canvas"
	"github.com/matzehuels/sketchpad/pkg/config"
	"github.com/matzehuels/sketchpad/pkg/palette"
	"github.com/matzehuels/sketchpad/pkg/slider"
)

// =============================================================================
// Layout
// =============================================================================

// The composed window size is given in points. A terminal cell is roughly
// twice as tall as it is wide, hence the different scales.
const (
	pointsPerColumn = 10.0
	pointsPerRow    = 20.0
)

// Fixed rows of the playground, top to bottom.
const (
	swatchTop    = 2
	swatchHeight = 3
	labelRow     = swatchTop + swatchHeight
	sliderRow    = labelRow + 2
	captionRow   = sliderRow + 1
	surfaceTop   = captionRow + 2

	swatchGap     = 1
	minSwatchSize = 3
	minEditorRows = 3
)

const printButtonLabel = "Print Color Name"

// focusArea is the control that receives navigation keys.
type focusArea int

const (
	focusPalette focusArea = iota
	focusSlider
	focusSurface

	numFocusAreas
)

// Playground styles
var (
	trackStyle       = lipgloss.NewStyle().Foreground(colorDim)
	thumbStyle       = lipgloss.NewStyle().Foreground(colorWhite).Bold(true)
	captionStyle     = lipgloss.NewStyle().Foreground(colorGray)
	focusMarkerStyle = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
	buttonStyle      = lipgloss.NewStyle().
				Foreground(colorWhite).
				Border(lipgloss.RoundedBorder(), false, true).
				BorderForeground(colorDim).
				Padding(0, 1)
	buttonFocusedStyle = buttonStyle.
				BorderForeground(colorCyan).
				Foreground(colorCyan).
				Bold(true)
)

// =============================================================================
// playgroundModel - the interactive palette / slider / surface view
// =============================================================================

// playgroundModel is the bubbletea model for the playground. It owns one
// controller and one surface and translates terminal input into palette taps
// and slider drags.
type playgroundModel struct {
	variant string
	ctrl    *canvas.Controller
	surface *canvas.Surface
	track   slider.Track
	step    float64
	logger  *log.Logger
	session string

	keys   playgroundKeyMap
	help   help.Model
	editor textarea.Model

	focus    focusArea
	cursor   int
	columns  int
	rows     int
	width    int
	height   int
	appeared bool
	dragging bool
	printed  string
}

// newPlaygroundModel composes the controller, the surface and the view from
// cfg. Diagnostics go to the logger carried by ctx.
func newPlaygroundModel(ctx context.Context, cfg config.Config, session string) playgroundModel {
	logger := loggerFromContext(ctx).With("session", session)

	initial := cfg.Color()
	ctrl := canvas.NewController(
		canvas.WithLogger(logger),
		canvas.WithInitialColor(initial),
	)
	surface := canvas.NewSurface(ctrl, canvas.WithSurfaceLogger(logger))

	editor := textarea.New()
	editor.Placeholder = "Type something..."
	editor.ShowLineNumbers = false

	m := playgroundModel{
		variant: cfg.Variant,
		ctrl:    ctrl,
		surface: surface,
		track:   cfg.Track(),
		step:    cfg.Slider.Step,
		logger:  logger,
		session: session,
		keys:    defaultPlaygroundKeyMap(),
		help:    help.New(),
		editor:  editor,
		cursor:  int(initial),
		columns: max(1, int(cfg.Window.Width/pointsPerColumn)),
		rows:    max(1, int(cfg.Window.Height/pointsPerRow)),
	}
	m.editor.SetWidth(m.canvasColumns())
	m.editor.SetHeight(m.editorRows())
	return m
}

func (m playgroundModel) Init() tea.Cmd {
	if m.variant == config.VariantEditor {
		return textarea.Blink
	}
	return nil
}

func (m playgroundModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if !m.appeared {
			m.track.Appear(m.ctrl.Slider())
			m.appeared = true
		}
		m.editor.SetWidth(m.canvasColumns())
		m.editor.SetHeight(m.editorRows())
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	if m.editing() {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}
	return m, nil
}

// =============================================================================
// Input
// =============================================================================

// handleKey handles keyboard input.
func (m playgroundModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	// The editor swallows everything except focus changes.
	if m.editing() {
		switch {
		case key.Matches(msg, m.keys.Leave):
			cmd := m.setFocus(focusPalette)
			return m, cmd
		case key.Matches(msg, m.keys.NextFocus):
			cmd := m.setFocus(m.focus.next())
			return m, cmd
		case key.Matches(msg, m.keys.PrevFocus):
			cmd := m.setFocus(m.focus.prev())
			return m, cmd
		}
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.NextFocus):
		cmd := m.setFocus(m.focus.next())
		return m, cmd
	case key.Matches(msg, m.keys.PrevFocus):
		cmd := m.setFocus(m.focus.prev())
		return m, cmd
	case key.Matches(msg, m.keys.Swatch):
		m.selectSwatch(int(msg.String()[0] - '1'))
		return m, nil
	case key.Matches(msg, m.keys.Increase):
		m.track.Step(m.ctrl.Slider(), m.step)
		return m, nil
	case key.Matches(msg, m.keys.Decrease):
		m.track.Step(m.ctrl.Slider(), -m.step)
		return m, nil
	case key.Matches(msg, m.keys.Print) && m.variant == config.VariantButton:
		m.printColorName()
		return m, nil
	}

	switch m.focus {
	case focusPalette:
		m.handlePaletteKey(msg)
	case focusSlider:
		m.handleSliderKey(msg)
	case focusSurface:
		if key.Matches(msg, m.keys.Select) {
			m.printColorName()
		}
	}
	return m, nil
}

// handlePaletteKey moves the swatch cursor and selects swatches.
func (m *playgroundModel) handlePaletteKey(msg tea.KeyMsg) {
	n := palette.Len()
	switch {
	case key.Matches(msg, m.keys.Left):
		m.cursor = (m.cursor - 1 + n) % n
	case key.Matches(msg, m.keys.Right):
		m.cursor = (m.cursor + 1) % n
	case key.Matches(msg, m.keys.Select):
		m.selectSwatch(m.cursor)
	}
}

// handleSliderKey nudges or jumps the slider thumb.
func (m *playgroundModel) handleSliderKey(msg tea.KeyMsg) {
	s := m.ctrl.Slider()
	switch {
	case key.Matches(msg, m.keys.Left):
		m.track.Step(s, -m.step)
	case key.Matches(msg, m.keys.Right):
		m.track.Step(s, m.step)
	case key.Matches(msg, m.keys.Min):
		m.track.Drag(s, 0)
	case key.Matches(msg, m.keys.Max):
		m.track.Drag(s, m.track.Width)
	}
}

// handleMouse handles taps on swatches, drags on the slider and clicks on
// the surface.
func (m playgroundModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionRelease:
		m.dragging = false
		return m, nil

	case tea.MouseActionMotion:
		if m.dragging {
			m.dragSlider(msg.X)
		}
		return m, nil

	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
	}

	switch {
	case msg.Y >= swatchTop && msg.Y < swatchTop+swatchHeight:
		if i := m.swatchAt(msg.X); i >= 0 {
			m.selectSwatch(i)
		}
		cmd := m.setFocus(focusPalette)
		return m, cmd

	case msg.Y == sliderRow:
		m.dragging = true
		m.dragSlider(msg.X)
		cmd := m.setFocus(focusSlider)
		return m, cmd

	case msg.Y >= surfaceTop:
		if m.variant == config.VariantButton && msg.Y == surfaceTop && msg.X < lipgloss.Width(m.renderButton()) {
			m.printColorName()
		}
		cmd := m.setFocus(focusSurface)
		return m, cmd
	}
	return m, nil
}

// =============================================================================
// Actions
// =============================================================================

// selectSwatch taps swatch i.
func (m *playgroundModel) selectSwatch(i int) {
	colors := palette.All()
	if i < 0 || i >= len(colors) {
		return
	}
	m.cursor = i
	m.ctrl.ChangeColor(colors[i])
}

// dragSlider converts a terminal column into a pointer offset in points and
// forwards it to the track, which clamps it.
func (m *playgroundModel) dragSlider(x int) {
	m.track.Drag(m.ctrl.Slider(), m.pointerOffset(x))
}

// printColorName logs and shows the surface's current color name.
func (m *playgroundModel) printColorName() {
	name := m.surface.Color().Name()
	m.logger.Info(name)
	m.printed = name
}

// setFocus moves focus and focuses or blurs the editor accordingly.
func (m *playgroundModel) setFocus(f focusArea) tea.Cmd {
	m.focus = f
	if m.variant != config.VariantEditor {
		return nil
	}
	if f == focusSurface {
		return m.editor.Focus()
	}
	m.editor.Blur()
	return nil
}

// editing reports whether keystrokes belong to the text editor.
func (m playgroundModel) editing() bool {
	return m.variant == config.VariantEditor && m.focus == focusSurface
}

func (f focusArea) next() focusArea { return (f + 1) % numFocusAreas }
func (f focusArea) prev() focusArea { return (f + numFocusAreas - 1) % numFocusAreas }

// =============================================================================
// Geometry
// =============================================================================

// canvasColumns is the composed width, limited by the terminal once known.
func (m playgroundModel) canvasColumns() int {
	if m.width > 0 {
		return max(1, min(m.columns, m.width))
	}
	return m.columns
}

// canvasRows is the composed height, limited by the terminal once known.
func (m playgroundModel) canvasRows() int {
	if m.height > 0 {
		return max(1, min(m.rows, m.height))
	}
	return m.rows
}

// editorRows is the textarea height left below the fixed rows.
func (m playgroundModel) editorRows() int {
	// Caption above the editor plus one help line below.
	return max(minEditorRows, m.canvasRows()-surfaceTop-2)
}

// swatchWidth is the width of one swatch in cells.
func (m playgroundModel) swatchWidth() int {
	n := palette.Len()
	return max(minSwatchSize, (m.canvasColumns()-(n-1)*swatchGap)/n)
}

// swatchAt returns the swatch under column x, or -1 for a gap or miss.
func (m playgroundModel) swatchAt(x int) int {
	if x < 0 {
		return -1
	}
	w := m.swatchWidth()
	stride := w + swatchGap
	i := x / stride
	if i >= palette.Len() || x%stride >= w {
		return -1
	}
	return i
}

// pointerOffset maps a terminal column on the slider row to points along
// the track. Columns past the right edge map past the track width.
func (m playgroundModel) pointerOffset(x int) float64 {
	cols := m.canvasColumns()
	if cols <= 1 {
		return 0
	}
	return float64(x) / float64(cols-1) * m.track.Width
}

// thumbColumn is the column the thumb is drawn in for percentage p. It is
// the inverse of pointerOffset, so a click lands the thumb under the pointer.
func (m playgroundModel) thumbColumn(p float64) int {
	cols := m.canvasColumns()
	if cols <= 1 || m.track.Width <= 0 {
		return 0
	}
	center := m.track.ThumbOffset(p) + m.track.Height
	col := int(math.Round(center / m.track.Width * float64(cols-1)))
	return max(0, min(col, cols-1))
}

// =============================================================================
// View
// =============================================================================

func (m playgroundModel) View() string {
	lines := []string{
		m.renderTitle(),
		"",
		m.renderSwatches(),
		m.renderSwatchLabels(),
		"",
		m.renderSlider(),
		m.renderCaption(),
		"",
		m.renderSurface(),
		m.help.View(m.keys),
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m playgroundModel) renderTitle() string {
	title := StyleTitle.Render("Sketchpad")
	meta := StyleDim.Render(fmt.Sprintf("%s · session %s", m.variant, m.session))
	return title + " " + meta
}

func (m playgroundModel) renderSwatches() string {
	w := m.swatchWidth()
	gap := strings.Repeat(" ", swatchGap)
	blocks := make([]string, 0, palette.Len()*2)
	for i, c := range palette.All() {
		dot := "●"
		if c == m.ctrl.Color() {
			dot = "◉"
		}
		block := lipgloss.NewStyle().
			Background(c.Lipgloss()).
			Foreground(lipgloss.Color("#FFFFFF")).
			Width(w).
			Height(swatchHeight).
			Align(lipgloss.Center, lipgloss.Center).
			Render(dot)
		if i > 0 {
			blocks = append(blocks, gap)
		}
		blocks = append(blocks, block)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

func (m playgroundModel) renderSwatchLabels() string {
	w := m.swatchWidth()
	var b strings.Builder
	for i, c := range palette.All() {
		if i > 0 {
			b.WriteString(strings.Repeat(" ", swatchGap))
		}
		label := c.Name()
		if len(label) > w {
			label = label[:w]
		}
		style := StyleDim
		if i == m.cursor && m.focus == focusPalette {
			style = focusMarkerStyle
		} else if c == m.ctrl.Color() {
			style = StyleValue
		}
		b.WriteString(style.Width(w).Align(lipgloss.Center).Render(label))
	}
	return b.String()
}

// renderSlider draws the track: a tinted accent fill up to the thumb, the
// thumb, then the remaining gray track.
func (m playgroundModel) renderSlider() string {
	cols := m.canvasColumns()
	s := m.ctrl.Slider()
	p := s.Percentage()

	fill := m.thumbColumn(p)

	var b strings.Builder
	accent := s.AccentColor()
	for i := 0; i < fill; i++ {
		t := 0.4 * (1 - float64(i)/float64(fill))
		b.WriteString(lipgloss.NewStyle().Foreground(accent.Tint(t)).Render("█"))
	}
	thumb := thumbStyle
	if m.focus == focusSlider {
		thumb = thumb.Foreground(colorCyan)
	}
	b.WriteString(thumb.Render("◉"))
	if rest := cols - fill - 1; rest > 0 {
		b.WriteString(trackStyle.Render(strings.Repeat("─", rest)))
	}
	return b.String()
}

func (m playgroundModel) renderCaption() string {
	return captionStyle.Render(fmt.Sprintf("Percentage %.1f · Line width %.1f",
		m.ctrl.Slider().Percentage(), m.ctrl.LineWidth()))
}

func (m playgroundModel) renderSurface() string {
	if m.variant == config.VariantEditor {
		return m.renderEditor()
	}
	return m.renderCanvas()
}

func (m playgroundModel) renderButton() string {
	if m.focus == focusSurface {
		return buttonFocusedStyle.Render(printButtonLabel)
	}
	return buttonStyle.Render(printButtonLabel)
}

// renderCanvas is the button variant: the print button, a stroke preview in
// the surface's color and width, and the last printed name.
func (m playgroundModel) renderCanvas() string {
	cols := m.canvasColumns()
	c := m.surface.Color()

	length := int(math.Round(m.surface.LineWidth() / slider.MaxPercentage * float64(cols)))
	length = max(1, min(length, cols))
	stroke := lipgloss.NewStyle().Foreground(c.Lipgloss()).Render(strings.Repeat("━", length))

	printed := StyleDim.Render("press p to print the color name")
	if m.printed != "" {
		printed = StyleHighlight.Render("Printed: ") + StyleValue.Render(m.printed)
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.renderButton(), stroke, printed)
}

// renderEditor is the editor variant: text in the surface's color with the
// line width shown as the font size.
func (m playgroundModel) renderEditor() string {
	c := m.surface.Color()
	caption := captionStyle.Render(fmt.Sprintf("%s · %.0fpt", c.Name(), m.surface.FontSize()))

	editor := m.editor
	text := lipgloss.NewStyle().Foreground(c.Lipgloss())
	editor.FocusedStyle.Text = text
	editor.BlurredStyle.Text = text
	return lipgloss.JoinVertical(lipgloss.Left, caption, editor.View())
}
