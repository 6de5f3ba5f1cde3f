package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carmelly/peeps-scheduler/pkg/core/services"
)

// BackupCmd creates the backup command: snapshot the data folder (§4.18).
func BackupCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "backup",
		Short: "Snapshot the data folder into a timestamped archive",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			manifest, err := services.Backup(app.Ctx, app.Cfg, app.Logger)
			if err != nil {
				return err
			}
			fmt.Printf("Backup created: %s\n", manifest.Path)
			return nil
		},
	}
}

// RestoreCmd creates the restore command: extract a previously created
// archive back into the data folder.
func RestoreCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "restore <archive_path>",
		Short: "Restore a backup archive into the data folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := services.Restore(app.Ctx, app.Cfg, app.Logger, args[0]); err != nil {
				return err
			}
			fmt.Printf("Restored %s into %s\n", args[0], app.Cfg.DataFolder)
			return nil
		},
	}
}
