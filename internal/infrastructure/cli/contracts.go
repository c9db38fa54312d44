package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clauseguard/clausectl/pkg/domain/contract"
)

var contractsCmd = &cobra.Command{
	Use:   "contracts",
	Short: "List uploaded contracts with portfolio totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}

		contracts, err := client.ListContracts(cmd.Context())
		if err != nil {
			return MapError(err)
		}

		stats := contract.Portfolio(contracts)
		fmt.Printf("Contracts: %d   Clauses: %d   Types: %d   Pages: %d\n\n",
			stats.Contracts, stats.Clauses, stats.ClauseTypes, stats.Pages)

		if len(contracts) == 0 {
			fmt.Println("No contracts yet. Upload one with 'clausectl upload <file>'.")
			return nil
		}

		for _, c := range contracts {
			uploaded := c.UploadTimestamp
			if ts, ok := c.Uploaded(); ok {
				uploaded = ts.Format("Jan 2 2006 15:04")
			}
			fmt.Printf("%s  %s\n", emphasisStyle.Render(c.Filename), subtleStyle.Render(c.ContractID))
			fmt.Printf("  uploaded %s, %d pages, %d clauses\n", uploaded, c.NumPages, c.NumClauses)
			if len(c.ClauseTypesFound) > 0 {
				fmt.Print("  types: ")
				for i, t := range c.ClauseTypesFound {
					if i > 0 {
						fmt.Print(", ")
					}
					fmt.Print(typeBadge(t))
				}
				fmt.Println()
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(contractsCmd)
}
