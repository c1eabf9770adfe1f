package cli

import (
	"fmt"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/masonry/pkg/core/masonry"
	"github.com/matzehuels/masonry/pkg/pipeline"
	"github.com/matzehuels/masonry/pkg/viewport"
)

// chromeLines is the number of lines used by the header and footer.
const chromeLines = 3

// layoutMsg carries a freshly computed layout into the update loop.
type layoutMsg masonry.Layout

// =============================================================================
// WatchModel - Live masonry view
// =============================================================================

// WatchModel is the bubbletea model for the live layout view. Terminal
// resizes are published to a viewport signal that the orchestrator is
// attached to; new layouts arrive back through a listener channel.
type WatchModel struct {
	orch      *pipeline.Orchestrator
	signal    *viewport.Signal
	updates   chan masonry.Layout
	done      chan struct{}
	cellWidth float64

	layout masonry.Layout
	width  int // terminal columns
	height int // terminal lines
	offset int
	err    error
}

// NewWatchModel wires a model to o. The returned stop function detaches
// the orchestrator from the model's signal, removes its listener and
// releases any pending waitForLayout.
func NewWatchModel(o *pipeline.Orchestrator, cellWidth float64) (WatchModel, func()) {
	m := WatchModel{
		orch:      o,
		signal:    viewport.New(o.Width()),
		updates:   make(chan masonry.Layout, 1),
		done:      make(chan struct{}),
		cellWidth: cellWidth,
		layout:    o.Layout(),
	}

	unlisten := o.OnLayout(func(l masonry.Layout) {
		select {
		case <-m.done:
			return
		default:
		}
		// Keep only the newest layout; a stale pending one is dropped.
		select {
		case m.updates <- l:
		default:
			select {
			case <-m.updates:
			default:
			}
			select {
			case m.updates <- l:
			default:
			}
		}
	})
	detach := o.Attach(m.signal)

	var once sync.Once
	return m, func() {
		detach()
		unlisten()
		once.Do(func() { close(m.done) })
	}
}

// waitForLayout blocks until the orchestrator publishes a layout or done
// is closed.
func waitForLayout(ch <-chan masonry.Layout, done <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		select {
		case l := <-ch:
			return layoutMsg(l)
		case <-done:
			return nil
		}
	}
}

func (m WatchModel) Init() tea.Cmd {
	return waitForLayout(m.updates, m.done)
}

func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			if err := m.orch.Reshuffle(); err != nil {
				m.err = err
			}
		case "up", "k":
			if m.offset > 0 {
				m.offset--
			}
		case "down", "j":
			m.offset++
		case "pgup":
			m.offset = max(0, m.offset-m.pageLines())
		case "pgdown", " ":
			m.offset += m.pageLines()
		case "home", "g":
			m.offset = 0
		}
		m.offset = min(m.offset, m.maxOffset())
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.signal.Set(float64(msg.Width) * m.cellWidth)
		m.offset = min(m.offset, m.maxOffset())
	case layoutMsg:
		m.layout = masonry.Layout(msg)
		m.err = nil
		m.offset = min(m.offset, m.maxOffset())
		return m, waitForLayout(m.updates, m.done)
	}
	return m, nil
}

func (m WatchModel) View() string {
	if m.width == 0 {
		return ""
	}
	var b strings.Builder

	stats := m.orch.Stats()
	b.WriteString(StyleTitle.Render(appName))
	b.WriteString("  ")
	b.WriteString(statsLine(stats))
	b.WriteString("\n")

	b.WriteString(cropLines(m.grid(), m.offset, m.pageLines()))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(StyleWarning.Render(m.err.Error()))
	} else {
		b.WriteString(StyleDim.Render(fmt.Sprintf("r reshuffle  ↑/↓ scroll  q quit  [%d recomputes]", stats.Recomputes)))
	}
	return b.String()
}

func (m WatchModel) grid() string {
	return renderGrid(m.layout, gridOptions{
		ColumnWidth:  columnWidth(m.width, m.layout.Len()),
		ViewportRows: m.height,
	})
}

func (m WatchModel) pageLines() int {
	return max(1, m.height-chromeLines)
}

func (m WatchModel) maxOffset() int {
	if m.width == 0 {
		return 0
	}
	total := strings.Count(m.grid(), "\n") + 1
	return max(0, total-m.pageLines())
}

// Layout returns the layout currently displayed.
func (m WatchModel) Layout() masonry.Layout { return m.layout }
