package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/glabrego/gameshelf/internal/browse"
	"github.com/glabrego/gameshelf/internal/card"
	"github.com/glabrego/gameshelf/internal/catalog"
	"github.com/glabrego/gameshelf/internal/filter"
	tuiactions "github.com/glabrego/gameshelf/internal/tui/actions"
	tuiplatform "github.com/glabrego/gameshelf/internal/tui/platform"
	tuistate "github.com/glabrego/gameshelf/internal/tui/state"
	tuitheme "github.com/glabrego/gameshelf/internal/tui/theme"
	tuiview "github.com/glabrego/gameshelf/internal/tui/view"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	statusTTL     = 4 * time.Second
)

type clearStatusMsg struct {
	id int
}

type Options struct {
	Title       string
	LoadTimeout time.Duration
	Logger      *slog.Logger
}

type Model struct {
	loader     tuiactions.Loader
	controller *browse.Controller
	screen     *screen
	theme      tuitheme.Theme
	keys       keyMap
	logger     *slog.Logger

	search  textinput.Model
	spinner spinner.Model

	title       string
	loadTimeout time.Duration

	searching  bool
	cardCursor int
	tagCursor  int
	showHelp   bool
	width      int
	height     int
	loading    bool
	status     string
	statusID   int
	err        error

	openURLFn func(string) error
	copyURLFn func(string) error
}

func NewModel(loader tuiactions.Loader, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	title := strings.TrimSpace(opts.Title)
	if title == "" {
		title = "Games"
	}

	ti := textinput.New()
	ti.Placeholder = "Search games"
	ti.Prompt = "/ "
	ti.CharLimit = 120
	ti.Width = defaultWidth - 12

	th := tuitheme.Default()
	sp := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(th.StateLoad))

	scr := newScreen()
	return Model{
		loader:      loader,
		controller:  browse.New(scr, logger),
		screen:      scr,
		theme:       th,
		keys:        defaultKeyMap(),
		logger:      logger,
		search:      ti,
		spinner:     sp,
		title:       title,
		loadTimeout: opts.LoadTimeout,
		loading:     loader != nil,
		openURLFn:   tuiplatform.OpenURLInBrowser,
		copyURLFn:   tuiplatform.CopyURLToClipboard,
	}
}

func (m Model) Init() tea.Cmd {
	if m.loader == nil {
		return nil
	}
	return tea.Batch(m.spinner.Tick, tuiactions.LoadCatalogCmd(m.loader, m.loadTimeout))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.search.Width = max(10, msg.Width-12)
		return m, nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tuiactions.LoadSuccessMsg:
		m.loading = false
		m.controller.Loaded(msg.Catalog)
		m.clampCursors()
		m.status = fmt.Sprintf("Loaded %d games in %s", len(msg.Catalog.Games), msg.Duration.Round(time.Millisecond))
		m.statusID++
		return m, clearStatusCmd(m.statusID, statusTTL)
	case tuiactions.LoadErrorMsg:
		m.loading = false
		m.err = msg.Err
		m.controller.Failed(msg.Err)
		m.status = browse.FailureText
		return m, nil
	case tuiactions.OpenURLSuccessMsg:
		m.err = nil
		m.status = msg.Status
		m.statusID++
		return m, clearStatusCmd(m.statusID, statusTTL)
	case tuiactions.OpenURLErrorMsg:
		m.err = msg.Err
		m.status = msg.Err.Error()
		m.logger.Warn("open url failed", "err", msg.Err)
		return m, nil
	case clearStatusMsg:
		if msg.id == m.statusID {
			m.status = ""
		}
		return m, nil
	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		if m.showHelp {
			switch {
			case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Escape):
				m.showHelp = false
			case key.Matches(msg, m.keys.Quit):
				return m, tea.Quit
			}
			return m, nil
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case key.Matches(msg, m.keys.Done):
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if after := m.search.Value(); after != before {
		m.controller.SetQuery(after)
		m.cardCursor = 0
		m.syncSearchField()
	}
	return m, cmd
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.Clear):
		m.controller.ClearSearch()
		m.syncSearchField()
		m.clampCursors()
		m.searching = true
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.Reset):
		m.controller.Reset()
		m.syncSearchField()
		m.cardCursor = 0
		m.tagCursor = 0
		m.setStatus("Filters reset")
		return m, clearStatusCmd(m.statusID, statusTTL)
	case key.Matches(msg, m.keys.NextCategory):
		m.cycleCategory(1)
		return m, nil
	case key.Matches(msg, m.keys.PrevCategory):
		m.cycleCategory(-1)
		return m, nil
	case key.Matches(msg, m.keys.Category):
		idx := int(msg.String()[0] - '1')
		if idx >= 0 && idx < len(filter.Categories) {
			m.controller.SelectCategory(filter.Categories[idx])
			m.cardCursor = 0
		}
		return m, nil
	case key.Matches(msg, m.keys.TagLeft):
		m.tagCursor = tuistate.ClampCursor(m.tagCursor-1, len(m.screen.tags))
		return m, nil
	case key.Matches(msg, m.keys.TagRight):
		m.tagCursor = tuistate.ClampCursor(m.tagCursor+1, len(m.screen.tags))
		return m, nil
	case key.Matches(msg, m.keys.ToggleTag):
		if len(m.screen.tags) == 0 {
			return m, nil
		}
		m.controller.ToggleTag(m.screen.tags[tuistate.ClampCursor(m.tagCursor, len(m.screen.tags))])
		m.cardCursor = 0
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.cardCursor = tuistate.ClampCursor(m.cardCursor+1, len(m.screen.cards))
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.cardCursor = tuistate.ClampCursor(m.cardCursor-1, len(m.screen.cards))
		return m, nil
	case key.Matches(msg, m.keys.Play):
		return m.playCurrent()
	case key.Matches(msg, m.keys.Guide):
		return m.openGuide()
	case key.Matches(msg, m.keys.Copy):
		return m.copyCurrent()
	}
	return m, nil
}

func (m *Model) cycleCategory(delta int) {
	current := tuistate.IndexOf(filter.Categories, m.controller.State().Category)
	if current < 0 {
		current = 0
	}
	next := tuistate.CycleIndex(current, delta, len(filter.Categories))
	m.controller.SelectCategory(filter.Categories[next])
	m.cardCursor = 0
}

func (m *Model) syncSearchField() {
	if !m.screen.queryReset {
		return
	}
	m.screen.queryReset = false
	m.search.SetValue(m.screen.texts[browse.SlotQuery])
}

func (m *Model) clampCursors() {
	m.cardCursor = tuistate.ClampCursor(m.cardCursor, len(m.screen.cards))
	m.tagCursor = tuistate.ClampCursor(m.tagCursor, len(m.screen.tags))
}

func (m *Model) setStatus(status string) {
	m.status = status
	m.statusID++
}

func (m Model) currentCard() (card.View, bool) {
	if len(m.screen.cards) == 0 {
		return card.View{}, false
	}
	return m.screen.cards[tuistate.ClampCursor(m.cardCursor, len(m.screen.cards))], true
}

func (m Model) playCurrent() (tea.Model, tea.Cmd) {
	v, ok := m.currentCard()
	if !ok {
		m.setStatus("No game selected")
		return m, nil
	}
	if v.ComingSoon {
		m.setStatus(v.Name + " is coming soon")
		return m, nil
	}
	url, err := tuiplatform.ValidateURL(v.PlayURL)
	if err != nil {
		m.err = err
		m.setStatus(err.Error())
		return m, nil
	}
	return m, tuiactions.OpenURLCmd(url, m.openURLFn, m.copyURLFn)
}

func (m Model) openGuide() (tea.Model, tea.Cmd) {
	v, ok := m.currentCard()
	if !ok {
		m.setStatus("No game selected")
		return m, nil
	}
	if v.GuideURL == "" {
		m.setStatus("No guide for " + v.Name)
		return m, nil
	}
	url, err := tuiplatform.ValidateURL(v.GuideURL)
	if err != nil {
		m.err = err
		m.setStatus(err.Error())
		return m, nil
	}
	return m, tuiactions.OpenURLCmd(url, m.openURLFn, m.copyURLFn)
}

func (m Model) copyCurrent() (tea.Model, tea.Cmd) {
	v, ok := m.currentCard()
	if !ok || v.ComingSoon {
		m.setStatus("Nothing to copy")
		return m, nil
	}
	url, err := tuiplatform.ValidateURL(v.PlayURL)
	if err != nil {
		m.err = err
		m.setStatus(err.Error())
		return m, nil
	}
	return m, tuiactions.CopyURLCmd(url, m.copyURLFn)
}

func clearStatusCmd(id int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	})
}

func (m Model) View() string {
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}
	height := m.height
	if height <= 0 {
		height = defaultHeight
	}

	if m.showHelp {
		return strings.Join(tuiview.HelpLines(), "\n")
	}

	top := []string{
		tuiview.Header(m.title, m.screen.texts[browse.SlotCount], m.screen.texts[browse.SlotUpdated], width, m.theme),
		m.search.View(),
		tuiview.Segments(filter.Categories, m.screen.category, m.theme),
		tuiview.TagRow(m.screen.tags, m.screen.tag, m.tagCursor, width, m.theme),
		"",
	}
	header := strings.Join(top, "\n")
	footer := tuiview.StatusLine(m.loading, m.err != nil, m.status, m.theme) + "\n" + m.theme.MetaLabel.Render(tuiview.Toolbar(m.searching))

	bodyHeight := height - lipgloss.Height(header) - lipgloss.Height(footer) - 1
	return header + "\n" + m.body(width, bodyHeight) + "\n\n" + footer
}

func (m Model) body(width, height int) string {
	switch {
	case m.screen.visible[browse.SlotLoading]:
		text := m.screen.texts[browse.SlotLoading]
		if m.loading {
			return m.spinner.View() + " " + text
		}
		return m.theme.StateWarn.Render(text)
	case m.screen.visible[browse.SlotEmpty]:
		return m.theme.MetaLabel.Render(tuiview.EmptyText)
	case m.screen.visible[browse.SlotGrid]:
		cards := make([]string, 0, len(m.screen.cards))
		for i, v := range m.screen.cards {
			cards = append(cards, tuiview.RenderCard(tuiview.CardParams{View: v, Width: width, Active: i == m.cardCursor}, m.theme))
		}
		return tuiview.RenderGrid(cards, m.cardCursor, height)
	}
	return ""
}

// Visible returns the games currently shown, in display order.
func (m Model) Visible() []catalog.Game {
	return m.controller.Visible()
}

func (m Model) Phase() browse.Phase {
	return m.controller.Phase()
}
