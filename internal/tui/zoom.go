// Package tui runs the interactive zoom session in the terminal. The
// session shows a half-block preview of the current viewport, pans and
// zooms with the keyboard, and records a full-resolution keyframe into the
// session store on every committed zoom.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/mandelzoom/internal/fractal"
	"github.com/san-kum/mandelzoom/internal/keyframe"
	"github.com/san-kum/mandelzoom/internal/palette"
	"github.com/san-kum/mandelzoom/internal/storage"
	"github.com/san-kum/mandelzoom/internal/viz"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	red    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// boostStep is one notch of the temporary iteration increase; the full
// range tops out at +25% of the committed bound, matching the zoom
// navigation's own growth per step.
const (
	boostStep = 0.05
	boostMax  = 0.25
)

type frameSavedMsg struct {
	path string
	err  error
}

type model struct {
	view    fractal.Viewport // committed full-resolution viewport
	boost   float64          // temporary iteration increase, 0..boostMax
	session *storage.Session

	// terminal-resolution preview state; cache survives while only the
	// iteration bound moves
	preview      fractal.Viewport
	previewCache *fractal.Cache
	previewDiv   fractal.IterationGrid

	width, height int
	frames        int
	status        string
	err           error
}

// NewZoom builds the session model. The viewport is the full-resolution
// view committed frames are rendered at; the preview follows it at
// terminal resolution.
func NewZoom(view fractal.Viewport, session *storage.Session) tea.Model {
	return model{
		view:    view,
		session: session,
		width:   80,
		height:  24,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m.rebuildPreview(), nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case frameSavedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.status = red.Render("frame save failed")
		} else {
			m.frames++
			m.status = fmt.Sprintf("saved %s", msg.path)
		}
		return m, nil
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		return m.pan(0, -1), nil
	case "down", "j":
		return m.pan(0, 1), nil
	case "left", "h":
		return m.pan(-1, 0), nil
	case "right", "l":
		return m.pan(1, 0), nil

	case "enter", "z":
		return m.zoomIn()
	case "x":
		return m.zoomOut(), nil

	case "+", "=":
		if m.boost < boostMax {
			m.boost += boostStep
			if m.boost > boostMax {
				m.boost = boostMax
			}
			return m.extendPreview(), nil
		}
	case "-", "_":
		if m.boost > 0 {
			m.boost -= boostStep
			if m.boost < 0 {
				m.boost = 0
			}
			// lowering the boost never discards cached work
			return m, nil
		}
	case "c":
		if m.boost > 0 {
			m.view.MaxIter = m.boostedIter()
			m.boost = 0
			m.status = fmt.Sprintf("committed %d iterations", m.view.MaxIter)
		}
	}
	return m, nil
}

// pan shifts the center by an eighth of the viewport extent per keypress.
func (m model) pan(dx, dy int) model {
	m.view.XCenter += float64(dx) * m.view.Scale / 4
	m.view.YCenter += float64(dy) * m.view.YScale() / 4
	return m.rebuildPreview()
}

// zoomIn commits a zoom step at the current center: the preview geometry
// changes (cache discarded) and the full-resolution frame is rendered and
// recorded off the update loop.
func (m model) zoomIn() (tea.Model, tea.Cmd) {
	prev := m.view
	clickPX, clickPY := prev.Width/2, prev.Height/2
	m.view = prev.ZoomAt(clickPX, clickPY)
	m.status = "rendering keyframe..."

	next := m.view
	sess := m.session
	save := func() tea.Msg {
		div, err := fractal.EscapeTime(next)
		if err != nil {
			return frameSavedMsg{err: err}
		}
		img, err := palette.Map(div, next.MaxIter)
		if err != nil {
			return frameSavedMsg{err: err}
		}
		path, err := sess.SaveFrame(img, storage.FrameMeta{
			XCenter: next.XCenter,
			YCenter: next.YCenter,
			Scale:   next.Scale,
			MaxIter: next.MaxIter,
			PX:      clickPX,
			PY:      clickPY,
		})
		return frameSavedMsg{path: path, err: err}
	}

	return m.rebuildPreview(), save
}

func (m model) zoomOut() model {
	m.view.Scale /= fractal.ZoomFactor
	m.view.MaxIter = int(float64(m.view.MaxIter) / fractal.IterGrowth)
	if m.view.MaxIter < 1 {
		m.view.MaxIter = 1
	}
	return m.rebuildPreview()
}

func (m model) boostedIter() int {
	return int(float64(m.view.MaxIter) * (1 + m.boost))
}

// rebuildPreview recomputes the terminal-resolution cache after a
// geometry change.
func (m model) rebuildPreview() model {
	cols := m.width - 2
	rows := (m.height - 4) * 2 // two grid rows per terminal row
	if cols < 16 {
		cols = 16
	}
	if rows < 8 {
		rows = 8
	}

	m.preview = fractal.Viewport{
		Width:   cols,
		Height:  rows,
		MaxIter: m.view.MaxIter,
		XCenter: m.view.XCenter,
		YCenter: m.view.YCenter,
		Scale:   m.view.Scale,
	}

	cache, err := fractal.NewCache(m.preview)
	if err != nil {
		m.err = err
		return m
	}
	m.previewCache = cache
	m.previewDiv = cache.Extend(m.boostedIter())
	return m
}

// extendPreview raises the preview iteration bound in place; geometry is
// unchanged, so only unresolved pixels pay for the increase.
func (m model) extendPreview() model {
	if m.previewCache == nil {
		return m.rebuildPreview()
	}
	div, err := m.previewCache.ExtendFor(m.preview, m.boostedIter())
	if err != nil {
		m.err = err
		return m
	}
	m.previewDiv = div
	return m
}

func (m model) View() string {
	var b strings.Builder

	if m.previewDiv == nil {
		b.WriteString(dim.Render("  rendering..."))
		b.WriteString("\n")
		return b.String()
	}

	// pair the grid with the bound it was actually computed against; a
	// lowered boost only takes effect at the next recompute
	shown := m.boostedIter()
	if m.previewCache != nil && m.previewCache.CurrentIter() > shown {
		shown = m.previewCache.CurrentIter()
	}
	b.WriteString(viz.Blocks(m.previewDiv, shown))

	iters := fmt.Sprintf("iters %d", m.view.MaxIter)
	if m.boost > 0 {
		iters = fmt.Sprintf("iters %d (+%d%%)", m.boostedIter(), int(m.boost*100+0.5))
	}

	b.WriteString("\n ")
	b.WriteString(cyan.Render(fmt.Sprintf("(%.6g, %.6g)", m.view.XCenter, m.view.YCenter)))
	b.WriteString(dim.Render("  scale "))
	b.WriteString(white.Render(fmt.Sprintf("%.2e", m.view.Scale)))
	b.WriteString(dim.Render("  "))
	b.WriteString(yellow.Render(iters))
	b.WriteString(dim.Render(fmt.Sprintf("  keyframes %d", m.frames)))
	b.WriteString("\n ")
	b.WriteString(dim.Render("←↓↑→ pan   z zoom in   x out   +/- iters   c commit   q quit"))
	if m.status != "" {
		b.WriteString("\n ")
		b.WriteString(dim.Render(m.status))
	}
	if m.err != nil {
		b.WriteString("\n ")
		b.WriteString(red.Render(m.err.Error()))
	}
	b.WriteString("\n")
	return b.String()
}

// Run starts the interactive session and returns the keyframe path it
// recorded.
func Run(view fractal.Viewport, store *storage.Store, prefix string) (keyframe.Path, error) {
	sess, err := store.OpenSession(prefix)
	if err != nil {
		return nil, err
	}

	p := tea.NewProgram(NewZoom(view, sess), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return nil, err
	}

	return store.LoadPath(prefix, view.Width, view.Height)
}
