package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check connectivity to the ClauseGuard service",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cfg, err := newClient()
		if err != nil {
			return err
		}

		fmt.Printf("Server: %s\n", cfg.ServerURL)
		status, err := client.Health(cmd.Context())
		if err != nil {
			fmt.Println(errStyle.Render("Unreachable"))
			return err
		}
		fmt.Println(okStyle.Render("Status: " + status.Status))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(doctorCmd)
}
