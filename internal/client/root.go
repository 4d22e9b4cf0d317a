package client

import (
	"strings"

	"github.com/spf13/cobra"
)

func newRootCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "flashcards",
		Short:        "Offline-first flashcards with background sync",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Work locally
  flashcards folder add Languages
  flashcards set add Spanish --folder <folder-id>
  flashcards card add <set-id> hola hello
  flashcards ls

  # Replicate to the backend
  flashcards login --login alice
  flashcards upload
  flashcards status
`),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := app.open(cmd.Context())
			if err != nil {
				return err
			}
			cmd.SetContext(ctx)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return app.close(cmd.Context())
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&app.overrides.Adapter.HTTPAddress, "server", "", "Backend address (env ADAPTER_ADDRESS)")
	flags.StringVar(&app.overrides.Storage.DB.DSN, "db", "", "Local database file (env STORAGE_DB_DATABASE_URI)")
	flags.StringVar(&app.overrides.JSONFilePath, "config", "", "JSON configuration file (env CONFIG)")
	flags.StringVar(&app.overrides.Log.File, "log-file", "", "Log file (env LOG_FILE)")
	flags.BoolVar(&app.offline, "offline", false, "Do not pull or push in this run; changes stay queued")

	cmd.AddCommand(newRegisterCmd(app))
	cmd.AddCommand(newLoginCmd(app))
	cmd.AddCommand(newLogoutCmd(app))
	cmd.AddCommand(newSetCmd(app))
	cmd.AddCommand(newCardCmd(app))
	cmd.AddCommand(newFolderCmd(app))
	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newMoveCmd(app))
	cmd.AddCommand(newSyncCmd(app))
	cmd.AddCommand(newPullCmd(app))
	cmd.AddCommand(newStatusCmd(app))
	cmd.AddCommand(newUploadCmd(app))
	cmd.AddCommand(newVersionCmd(app))

	return cmd
}
