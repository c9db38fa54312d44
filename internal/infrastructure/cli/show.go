package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clauseguard/clausectl/pkg/domain/clause"
	"github.com/clauseguard/clausectl/pkg/domain/search"
)

var showCmd = &cobra.Command{
	Use:   "show <contract-id>",
	Short: "Show a contract's metadata and its clauses grouped by type",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}

		meta, err := client.GetContract(cmd.Context(), args[0])
		if err != nil {
			return MapError(err)
		}
		clauses, err := client.GetContractClauses(cmd.Context(), args[0])
		if err != nil {
			return MapError(err)
		}

		fmt.Println(headerStyle.Render(meta.Filename))
		uploaded := meta.UploadTimestamp
		if ts, ok := meta.Uploaded(); ok {
			uploaded = ts.Format("Jan 2 2006 15:04")
		}
		fmt.Printf("Uploaded %s   Pages: %d   Clauses: %d   Text: %d chars\n\n",
			uploaded, meta.NumPages, meta.NumClauses, meta.TextLength)

		grouped := clause.GroupByType(clauses)
		if grouped.Len() == 0 {
			fmt.Println("No clauses extracted for this contract.")
			return nil
		}

		for _, t := range grouped.Types() {
			group := grouped.Group(t)
			fmt.Printf("%s (%d)\n", typeBadge(t), len(group))
			for _, c := range group {
				loc := fmt.Sprintf("p.%d", c.PageNumber)
				if c.SectionNumber != "" {
					loc = fmt.Sprintf("§%s %s", c.SectionNumber, loc)
				}
				fmt.Printf("  %s %s (confidence %.2f)\n", subtleStyle.Render(loc), c.ClauseID, c.Confidence)
				fmt.Printf("    %s\n", search.Truncate(c.Text, 160))
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)
}
