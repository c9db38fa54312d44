package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/clauseguard/clausectl/pkg/domain/clause"
	"github.com/clauseguard/clausectl/pkg/domain/search"
	"github.com/clauseguard/clausectl/pkg/sdk"
)

// The search page is a single-threaded event loop: key events mutate the
// session, the network call runs as a command, and its message is applied
// in Update. The session's sequence guard drops responses that were
// superseded by a newer submission before they arrived.

type searchDoneMsg struct {
	seq  uint64
	resp search.Response
}

type searchFailMsg struct {
	seq uint64
}

type searchModel struct {
	client      *sdk.Client
	session     *search.Session
	input       textinput.Model
	spin        spinner.Model
	filterFocus bool
	filterIdx   int
}

func newSearchModel(client *sdk.Client, session *search.Session) searchModel {
	input := textinput.New()
	input.Placeholder = "Search for clauses (e.g. indemnity, liability)..."
	input.Focus()
	input.CharLimit = 200
	input.Width = 60

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return searchModel{
		client:  client,
		session: session,
		input:   input,
		spin:    spin,
	}
}

func (m searchModel) Init() tea.Cmd { return textinput.Blink }

func (m searchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.filterFocus = !m.filterFocus
			if m.filterFocus {
				m.input.Blur()
			} else {
				m.input.Focus()
			}
			return m, nil
		case "enter":
			return m.submit()
		}
		if m.filterFocus {
			return m.updateFilter(msg), nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case searchDoneMsg:
		m.session.Resolve(msg.seq, msg.resp)
		return m, nil

	case searchFailMsg:
		m.session.Fail(msg.seq)
		return m, nil

	case spinner.TickMsg:
		if m.session.Phase() != search.PhaseLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m searchModel) submit() (tea.Model, tea.Cmd) {
	m.session.SetQuery(m.input.Value())
	req, seq, ok := m.session.Begin()
	if !ok {
		return m, nil
	}
	return m, tea.Batch(m.spin.Tick, m.doSearch(req, seq))
}

func (m searchModel) doSearch(req search.Request, seq uint64) tea.Cmd {
	return func() tea.Msg {
		resp, err := m.client.Search(context.Background(), req)
		if err != nil {
			return searchFailMsg{seq: seq}
		}
		return searchDoneMsg{seq: seq, resp: *resp}
	}
}

func (m searchModel) updateFilter(msg tea.KeyMsg) searchModel {
	types := clause.All()
	switch msg.String() {
	case "left", "h":
		if m.filterIdx > 0 {
			m.filterIdx--
		}
	case "right", "l":
		if m.filterIdx < len(types)-1 {
			m.filterIdx++
		}
	case " ", "space":
		m.session.ToggleType(types[m.filterIdx])
	case "k":
		m.session.CycleTopK()
	}
	return m
}

func (m searchModel) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Search Clauses"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.viewFilter())
	b.WriteString("\n\n")
	b.WriteString(m.viewResults())
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render("[enter] Search  [tab] Filter  [space] Toggle type  [k] Top-K  [esc] Quit"))
	b.WriteString("\n")
	return b.String()
}

func (m searchModel) viewFilter() string {
	anySelected := len(m.session.SelectedTypes()) > 0

	badges := make([]string, 0, len(clause.All())+2)
	badges = append(badges, subtleStyle.Render("Filter:"))
	for i, t := range clause.All() {
		label := t.Label()
		style := lipgloss.NewStyle().Foreground(clauseTypeColors[t])
		if anySelected && !m.session.TypeSelected(t) {
			style = subtleStyle
		}
		if m.session.TypeSelected(t) {
			label = "[" + label + "]"
		}
		if m.filterFocus && i == m.filterIdx {
			style = style.Underline(true)
		}
		badges = append(badges, style.Render(label))
	}
	badges = append(badges, subtleStyle.Render(fmt.Sprintf("Top %d", m.session.TopK())))
	return strings.Join(badges, "  ")
}

func (m searchModel) viewResults() string {
	if m.session.Phase() == search.PhaseLoading {
		return m.spin.View() + " Searching..."
	}

	var b strings.Builder
	if m.session.Searched() {
		plural := "s"
		if m.session.TotalHits() == 1 {
			plural = ""
		}
		b.WriteString(subtleStyle.Render(fmt.Sprintf("%d result%s found", m.session.TotalHits(), plural)))
		b.WriteString("\n\n")
	}

	for _, hit := range m.session.Hits() {
		b.WriteString(fmt.Sprintf("%s  score %.3f  %s\n", typeBadge(hit.ClauseType), hit.Score, subtleStyle.Render(hit.ContractID)))
		if hit.SectionNumber != "" || hit.PageNumber > 0 {
			loc := fmt.Sprintf("page %d", hit.PageNumber)
			if hit.SectionNumber != "" {
				loc = fmt.Sprintf("section %s, %s", hit.SectionNumber, loc)
			}
			b.WriteString("  " + subtleStyle.Render(loc) + "\n")
		}
		for _, frag := range search.Snippet(hit) {
			b.WriteString("  " + renderEmphasis(frag) + "\n")
		}
		b.WriteString("\n")
	}

	if m.session.Searched() && len(m.session.Hits()) == 0 {
		b.WriteString(fmt.Sprintf("No results found for %q.\n", strings.TrimSpace(m.session.Query())))
	}
	return b.String()
}
