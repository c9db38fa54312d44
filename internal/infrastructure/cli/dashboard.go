package cli

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/clauseguard/clausectl/pkg/domain/contract"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Interactive portfolio dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cfg, err := newClient()
		if err != nil {
			return err
		}

		contracts, err := client.ListContracts(cmd.Context())
		if err != nil {
			return MapError(err)
		}

		p := tea.NewProgram(newDashboardModel(cfg.ServerURL, contracts))
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("dashboard run failed: %w", err)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(dashboardCmd)
}

type dashboardModel struct {
	table  table.Model
	server string
	stats  contract.PortfolioStats
}

func newDashboardModel(server string, contracts []contract.Metadata) dashboardModel {
	columns := []table.Column{
		{Title: "Filename", Width: 32},
		{Title: "Uploaded", Width: 18},
		{Title: "Pages", Width: 6},
		{Title: "Clauses", Width: 8},
		{Title: "Types", Width: 24},
		{Title: "ID", Width: 20},
	}

	rows := []table.Row{}
	for _, c := range contracts {
		uploaded := c.UploadTimestamp
		if ts, ok := c.Uploaded(); ok {
			uploaded = ts.Format("Jan 2 2006 15:04")
		}
		types := ""
		for i, t := range c.ClauseTypesFound {
			if i == 4 {
				types += fmt.Sprintf(" +%d", len(c.ClauseTypesFound)-4)
				break
			}
			if i > 0 {
				types += " "
			}
			types += string(t)
		}
		rows = append(rows, table.Row{
			c.Filename, uploaded,
			fmt.Sprint(c.NumPages), fmt.Sprint(c.NumClauses),
			types, c.ContractID,
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240"))
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229"))
	t.SetStyles(s)

	return dashboardModel{
		table:  t,
		server: server,
		stats:  contract.Portfolio(contracts),
	}
}

func (m dashboardModel) Init() tea.Cmd { return nil }

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	}
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m dashboardModel) View() string {
	header := headerStyle.Render("ClauseGuard " + m.server)
	statsLine := fmt.Sprintf("Contracts: %d   Clauses: %d   Types: %d   Pages: %d",
		m.stats.Contracts, m.stats.Clauses, m.stats.ClauseTypes, m.stats.Pages)

	body := m.table.View()
	if m.stats.Contracts == 0 {
		body = "No contracts yet. Upload one with 'clausectl upload <file>'."
	}

	return baseStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header,
			statsLine,
			"",
			body,
			"",
			subtleStyle.Render("[q] Quit  [Up/Down] Navigate"),
		),
	) + "\n"
}
