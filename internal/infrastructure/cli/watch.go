package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/clauseguard/clausectl/internal/infrastructure/watch"
	"github.com/clauseguard/clausectl/pkg/domain/upload"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Watch a drop folder and upload new contract files automatically",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cfg, err := newClient()
		if err != nil {
			return err
		}

		dir := cfg.WatchDir
		if len(args) > 0 {
			dir = args[0]
		}
		if dir == "" {
			return &CLIError{
				Message: "no drop folder given",
				Hint:    "Pass a directory or set watch_dir in the config file",
			}
		}

		watcher, err := watch.NewFolderWatcher(0, upload.AcceptsFilename, func(path string) {
			if err := runUpload(cmd.Context(), client, path); err != nil {
				fmt.Printf("%s: %v\n", path, err)
			}
		})
		if err != nil {
			return err
		}
		if err := watcher.Watch(dir); err != nil {
			return err
		}

		fmt.Printf("Watching %s for new %s files... (ctrl+c to stop)\n",
			dir, strings.Join(upload.AcceptedExtensions(), "/"))
		return watcher.Run(cmd.Context())
	},
}

func init() {
	RootCmd.AddCommand(watchCmd)
}
