package cli

import (
	"github.com/spf13/cobra"

	"github.com/clauseguard/clausectl/internal/infrastructure/config"
	"github.com/clauseguard/clausectl/pkg/sdk"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "clausectl",
	Version: Version,
	Short:   "Contract compliance analysis from the terminal",
	Long: `Clausectl is a terminal client for the ClauseGuard contract analysis
service. It uploads contracts, browses extracted clauses, runs compliance
reviews and searches clauses semantically across the portfolio.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() error {
	return RootCmd.Execute()
}

var serverFlag string

func init() {
	RootCmd.PersistentFlags().StringVar(&serverFlag, "server", "", "ClauseGuard server URL (overrides config)")
}

// newClient loads the client configuration and builds an SDK client. The
// --server flag wins over the environment override and the config file.
func newClient() (*sdk.Client, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if serverFlag != "" {
		cfg.ServerURL = serverFlag
	}
	return sdk.NewClient(cfg.ServerURL), cfg, nil
}
