package client

import (
	"strconv"
	"time"

	"github.com/ErikSvanes/flashcards/internal/service"
	"github.com/spf13/cobra"
)

func newSyncCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Push queued changes now",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if !app.services.AuthService.IsAuthenticated(ctx) {
				return service.ErrNotAuthenticated
			}

			ok := app.services.SyncEngine.ManualSync(ctx)
			printf(cmd, "%d changes pending\n", app.services.SyncEngine.PendingCount(ctx))
			if !ok {
				return errSyncIncomplete
			}
			return nil
		},
	}
}

func newPullCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "pull",
		Short: "Replace the local collection with the remote one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.services.AuthService.IsAuthenticated(cmd.Context()) {
				return service.ErrNotAuthenticated
			}
			if !app.services.SyncEngine.Pull(cmd.Context()) {
				return errSyncIncomplete
			}
			printf(cmd, "pulled\n")
			return nil
		},
	}
}

func newUploadCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "upload",
		Short: "Queue the whole local collection for the backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := app.services.CollectionService.UploadLocalData(cmd.Context())
			if err != nil {
				return err
			}
			printf(cmd, "%d changes queued\n", n)
			return nil
		},
	}
}

func newStatusCmd(app *App) *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show login, sync state and queued changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			engine := app.services.SyncEngine

			user := app.services.AuthService.CurrentUserID(ctx)
			if user == "" {
				user = "not logged in"
			}
			status, _ := engine.Status()

			lastSynced := "never"
			at, err := engine.LastSyncedAt(ctx)
			if err != nil {
				return err
			}
			if at != nil {
				lastSynced = at.Local().Format(time.DateTime)
			}

			pending, err := engine.PendingChanges(ctx)
			if err != nil {
				return err
			}

			rows := [][]string{
				{"user", user},
				{"status", string(status)},
				{"pending", strconv.Itoa(len(pending))},
				{"last synced", lastSynced},
			}
			if verbose {
				for _, p := range pending {
					rows = append(rows, []string{"#" + strconv.FormatUint(p.ID, 10), string(p.Change.Kind()), p.Change.TargetID()})
				}
			}
			return table(cmd.OutOrStdout(), rows)
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "List queued changes")
	return cmd
}

func newVersionCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print client and backend versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printf(cmd, "client %s (%s, %s)\n", app.build.Version, app.build.Date, app.build.Commit)

			serverVersion, err := app.serverAdapter.Version(cmd.Context())
			if err != nil {
				printf(cmd, "backend unavailable: %v\n", err)
				return nil
			}
			printf(cmd, "backend %s\n", serverVersion)
			return nil
		},
	}
}
