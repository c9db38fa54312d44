package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/clauseguard/clausectl/pkg/domain/clause"
	"github.com/clauseguard/clausectl/pkg/domain/search"
)

var (
	searchTypes []string
	searchTopK  int
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search clauses semantically across the portfolio",
	Long: `Search clauses semantically across the portfolio.

With a query argument the search runs once and prints the results. Without
arguments an interactive search page opens.

Examples:
  clausectl search "limitation of liability"
  clausectl search indemnification --type indemnity --type liability_cap --top 20
  clausectl search`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cfg, err := newClient()
		if err != nil {
			return err
		}

		session := search.NewSession()
		session.SetTopK(cfg.DefaultTopK)
		if searchTopK != 0 {
			session.SetTopK(searchTopK)
		}
		for _, raw := range searchTypes {
			var t clause.Type
			if err := t.UnmarshalText([]byte(raw)); err != nil {
				return &CLIError{
					Message: err.Error(),
					Hint:    "Known types: " + joinTypes(clause.All()),
				}
			}
			session.ToggleType(t)
		}

		if len(args) == 0 {
			p := tea.NewProgram(newSearchModel(client, session))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("search page failed: %w", err)
			}
			return nil
		}

		session.SetQuery(strings.Join(args, " "))
		req, seq, ok := session.Begin()
		if !ok {
			return &CLIError{Message: "empty query", Hint: "Give at least one search term"}
		}

		resp, err := client.Search(cmd.Context(), req)
		if err != nil {
			session.Fail(seq)
			fmt.Println("0 results found")
			return MapError(err)
		}
		session.Resolve(seq, *resp)

		fmt.Printf("%d results found\n\n", session.TotalHits())
		for _, hit := range session.Hits() {
			printHit(hit)
		}
		if len(session.Hits()) == 0 {
			fmt.Printf("No results found for %q.\n", req.Query)
		}
		return nil
	},
}

func printHit(hit search.Hit) {
	fmt.Printf("%s  score %.3f  %s\n", typeBadge(hit.ClauseType), hit.Score, subtleStyle.Render(hit.ContractID))
	if hit.SectionNumber != "" || hit.PageNumber > 0 {
		loc := fmt.Sprintf("page %d", hit.PageNumber)
		if hit.SectionNumber != "" {
			loc = fmt.Sprintf("section %s, %s", hit.SectionNumber, loc)
		}
		fmt.Println("  " + subtleStyle.Render(loc))
	}
	for _, frag := range search.Snippet(hit) {
		fmt.Println("  " + renderEmphasis(frag))
	}
	fmt.Println()
}

// renderEmphasis converts sanitized highlight markup to terminal styling.
func renderEmphasis(fragment string) string {
	var b strings.Builder
	for _, seg := range search.SplitEmphasis(fragment) {
		if seg.Emphasized {
			b.WriteString(emphasisStyle.Render(seg.Text))
		} else {
			b.WriteString(seg.Text)
		}
	}
	return b.String()
}

func joinTypes(types []clause.Type) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

func init() {
	searchCmd.Flags().StringArrayVar(&searchTypes, "type", nil, "restrict to a clause type (repeatable)")
	searchCmd.Flags().IntVar(&searchTopK, "top", 0, "number of results (5, 10, 20 or 50)")
	RootCmd.AddCommand(searchCmd)
}
