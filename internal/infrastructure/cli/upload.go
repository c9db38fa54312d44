package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/clauseguard/clausectl/pkg/domain/upload"
	"github.com/clauseguard/clausectl/pkg/sdk"
)

var uploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload a contract for clause extraction",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}
		return runUpload(cmd.Context(), client, args[0])
	},
}

// runUpload drives one file through the upload flow and prints the
// outcome. The flow's filename guard runs before any network call.
func runUpload(ctx context.Context, client *sdk.Client, path string) error {
	flow, err := upload.NewFlow()
	if err != nil {
		return err
	}

	seq, err := flow.Submit(path)
	if err != nil {
		return &CLIError{
			Message: fmt.Sprintf("%s rejected", path),
			Hint:    err.Error(),
		}
	}

	f, err := os.Open(path)
	if err != nil {
		flow.Fail(seq, err.Error())
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	fmt.Printf("Uploading %s...\n", path)
	result, err := client.UploadContract(ctx, path, f)
	if err != nil {
		flow.Fail(seq, err.Error())
		fmt.Println(errStyle.Render("Upload failed"))
		fmt.Println(flow.ErrorMessage())
		return MapError(err)
	}
	flow.Succeed(seq, *result)

	res := flow.Result()
	fmt.Println(okStyle.Render(res.Message))
	fmt.Printf("Contract ID: %s\n", res.ContractID)
	fmt.Printf("Clauses found: %d\n", res.NumClauses)
	if len(res.ClauseTypesFound) > 0 {
		fmt.Print("Clause types: ")
		for i, t := range res.ClauseTypesFound {
			if i > 0 {
				fmt.Print(", ")
			}
			fmt.Print(typeBadge(t))
		}
		fmt.Println()
	}
	fmt.Printf("\nNext: 'clausectl show %s' or 'clausectl review %s'\n", res.ContractID, res.ContractID)
	return nil
}

func init() {
	RootCmd.AddCommand(uploadCmd)
}
