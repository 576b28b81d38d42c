package tui

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/wingen/internal/domain"
)

type screen int

const (
	screenBatches screen = iota
	screenDesigns
)

type batchItem struct {
	ref domain.BatchRef
}

func (b batchItem) Title() string {
	return b.ref.StartedAt.UTC().Format("2006-01-02 15:04:05Z") + "  " + clampString(b.ref.ID, 8)
}

func (b batchItem) Description() string {
	return fmt.Sprintf("%d designs, %d failed", b.ref.Count, b.ref.Failures)
}

func (b batchItem) FilterValue() string { return b.ref.ID }

type designItem struct {
	d domain.DesignResult
}

func (d designItem) Title() string { return designTitle(d.d) }

func (d designItem) Description() string { return designSummary(d.d) }

func (d designItem) FilterValue() string { return fmt.Sprint(d.d.Index) }

type model struct {
	theme Theme
	deps  Deps

	scr     screen
	batches list.Model
	designs list.Model
	batch   domain.BatchResult

	loading bool
	toast   string
	width   int
	height  int
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	bl := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	bl.Title = "Batches"
	bl.SetShowStatusBar(false)
	bl.SetShowHelp(false)

	dl := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	dl.Title = "Designs"
	dl.SetShowStatusBar(false)
	dl.SetShowHelp(false)

	return model{
		theme:   DefaultTheme(),
		deps:    deps,
		scr:     screenBatches,
		batches: bl,
		designs: dl,
		loading: true,
	}
}

func (m model) Init() tea.Cmd {
	if m.deps.Manifest != "" {
		return cmdLoadManifest(m.deps, m.deps.Manifest)
	}
	return cmdLoadBatches(m.deps)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.batches.SetSize(msg.Width-8, msg.Height-10)
		m.designs.SetSize(max(msg.Width/2-8, 20), msg.Height-10)
		return m, nil

	case batchesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		refs := slices.Clone(msg.refs)
		slices.Reverse(refs)
		items := make([]list.Item, 0, len(refs))
		for _, r := range refs {
			items = append(items, batchItem{ref: r})
		}
		m.toast = ""
		if len(items) == 0 {
			m.toast = "No batches yet. Run `wingen generate` first."
		}
		return m, m.batches.SetItems(items)

	case manifestLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.batch = msg.batch
		items := make([]list.Item, 0, len(msg.batch.Designs))
		for _, d := range msg.batch.Designs {
			items = append(items, designItem{d: d})
		}
		m.scr = screenDesigns
		m.toast = ""
		m.designs.Title = "Designs · seed " + fmt.Sprint(msg.batch.Seed)
		m.designs.ResetSelected()
		return m, m.designs.SetItems(items)

	case tea.KeyMsg:
		if m.filtering() {
			break
		}
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.scr == screenBatches || m.deps.Manifest != "" {
				return m, tea.Quit
			}
			m.scr = screenBatches
			return m, nil

		case "esc", "b":
			if m.scr == screenDesigns && m.deps.Manifest == "" {
				m.scr = screenBatches
				return m, nil
			}

		case "enter":
			if m.scr == screenBatches {
				it, ok := m.batches.SelectedItem().(batchItem)
				if !ok {
					return m, nil
				}
				m.loading = true
				return m, cmdLoadManifest(m.deps, it.ref.Manifest)
			}
		}
	}

	var cmd tea.Cmd
	if m.scr == screenBatches {
		m.batches, cmd = m.batches.Update(msg)
	} else {
		m.designs, cmd = m.designs.Update(msg)
	}
	return m, cmd
}

func (m model) filtering() bool {
	if m.scr == screenBatches {
		return m.batches.FilterState() == list.Filtering
	}
	return m.designs.FilterState() == list.Filtering
}

func (m model) selectedDesign() (domain.DesignResult, bool) {
	it, ok := m.designs.SelectedItem().(designItem)
	return it.d, ok
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("wingen") + "\n" +
		m.theme.Subtitle.Render("flying-wing planform designs") + "\n"

	status := ""
	switch {
	case m.loading:
		status = m.theme.Help.Render("Loading…")
	case m.toast != "":
		status = m.theme.Warn.Render(m.toast)
	}

	switch m.scr {
	case screenBatches:
		help := m.theme.Help.Render("↑/↓ navigate • enter open • / search • q quit")
		return wrap.Render(header + "\n" + status + "\n\n" + m.theme.Card.Render(m.batches.View()) + "\n" + help)

	case screenDesigns:
		detail := "No design selected."
		if d, ok := m.selectedDesign(); ok {
			detail = renderDesignDetails(m.theme, d)
		}
		body := lipgloss.JoinHorizontal(lipgloss.Top,
			m.theme.Card.Render(m.designs.View()),
			m.theme.Card.Render(detail),
		)
		help := "↑/↓ navigate • / search • q quit"
		if m.deps.Manifest == "" {
			help = "↑/↓ navigate • / search • esc/b back • q batches"
		}
		return wrap.Render(header + "\n" + status + "\n\n" + body + "\n" + m.theme.Help.Render(help))

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}
