package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/oxtail/internal/openobserve"
	"github.com/five82/oxtail/internal/prefs"
	"github.com/five82/oxtail/internal/tail"
)

// scrollbackLimit caps the in-memory line buffer so an unbounded tail
// cannot grow without limit; the oldest lines fall off the front.
const scrollbackLimit = 2000

type entryMsg openobserve.Entry

type streamClosedMsg struct{ err error }

// Model is the root Bubble Tea state for the tail view.
type Model struct {
	stream     *tail.Stream
	streamName string
	follow     bool
	prefsPath  string

	theme  Theme
	styles Styles
	keys   keyMap

	viewport viewport.Model
	lines    []string
	rendered uint64
	painted  uint64

	width  int
	height int
	ready  bool

	entryCount int
	closed     bool
	streamErr  error
	showHelp   bool
}

// New creates the tail view model.
func New(opts Options) Model {
	theme := GetTheme(opts.ThemeName)
	return Model{
		stream:     opts.Stream,
		streamName: opts.StreamName,
		follow:     opts.Follow,
		prefsPath:  opts.PrefsPath,
		theme:      theme,
		styles:     theme.Styles(),
		keys:       defaultKeyMap(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.EnterAltScreen, waitForEntry(m.stream))
}

// waitForEntry blocks on the stream and converts its next event to a
// message. Re-issued after every entry; never after the stream closes.
func waitForEntry(s *tail.Stream) tea.Cmd {
	return func() tea.Msg {
		entry, ok := <-s.Entries()
		if !ok {
			return streamClosedMsg{err: s.Err()}
		}
		return entryMsg(entry)
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeViewport()
		return m, nil

	case entryMsg:
		m.entryCount++
		m.lines = append(m.lines, formatEntry(openobserve.Entry(msg), m.styles))
		if len(m.lines) > scrollbackLimit {
			m.lines = m.lines[len(m.lines)-scrollbackLimit:]
		}
		m.rendered++
		m.syncViewport()
		return m, waitForEntry(m.stream)

	case streamClosedMsg:
		m.closed = true
		m.streamErr = msg.err
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.ToggleFollow):
		m.follow = !m.follow
		if m.follow {
			m.viewport.GotoBottom()
		}
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = NextTheme(m.theme.Name)
		m.styles = m.theme.Styles()
		_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, LastStream: m.streamName})
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.follow = false
		m.viewport.GotoTop()
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()
		return m, nil
	}

	// Manual scrolling suspends follow so the view stays put.
	before := m.viewport.YOffset
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	if m.viewport.YOffset != before {
		m.follow = m.viewport.AtBottom()
	}
	return m, cmd
}

func (m *Model) resizeViewport() {
	// One line each for the header and the status bar.
	w, h := m.width, m.height-2
	if h < 1 {
		h = 1
	}
	if !m.ready {
		m.viewport = viewport.New(w, h)
		m.ready = true
	} else {
		m.viewport.Width = w
		m.viewport.Height = h
	}
	m.painted = 0
	m.syncViewport()
}

func (m *Model) syncViewport() {
	if !m.ready {
		return
	}
	if m.painted != m.rendered || m.painted == 0 {
		m.viewport.SetContent(strings.Join(m.lines, "\n"))
		m.painted = m.rendered
	}
	if m.follow {
		m.viewport.GotoBottom()
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Connecting..."
	}
	if m.showHelp {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.helpView())
	}
	return m.headerView() + "\n" + m.viewport.View() + "\n" + m.statusView()
}

func (m Model) headerView() string {
	title := m.styles.Header.Render("oxtail")
	stream := m.styles.Muted.Render(" — " + m.streamName)
	return title + stream
}

func (m Model) statusView() string {
	follow := "follow off"
	if m.follow {
		follow = "following"
	}
	state := follow
	switch {
	case m.streamErr != nil:
		state = m.styles.Error.Render("stream failed: " + m.streamErr.Error())
	case m.closed:
		state = "stream ended"
	}
	left := fmt.Sprintf("%d entries · %s", m.entryCount, state)
	right := "? help · q quit"
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return m.styles.Status.Render(left + strings.Repeat(" ", gap) + right)
}

func (m Model) helpView() string {
	rows := []string{
		"f    toggle follow",
		"g/G  scroll to top / bottom",
		"t    cycle theme",
		"?    close help",
		"q    quit",
	}
	return m.styles.Help.Render(strings.Join(rows, "\n"))
}
