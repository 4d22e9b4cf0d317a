package client

import (
	"fmt"
	"strings"

	"github.com/ErikSvanes/flashcards/models"
	"github.com/spf13/cobra"
)

func newFolderCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "folder",
		Short: "Manage folders",
	}

	cmd.AddCommand(newFolderAddCmd(app))
	cmd.AddCommand(newFolderUpdateCmd(app))
	cmd.AddCommand(newFolderRemoveCmd(app))
	cmd.AddCommand(newFolderPathCmd(app))

	return cmd
}

func newFolderAddCmd(app *App) *cobra.Command {
	var parentID, description string
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			folder, err := app.services.CollectionService.AddFolder(cmd.Context(), models.Folder{
				Name:        args[0],
				Description: description,
				ParentID:    parentID,
			})
			if err != nil {
				return err
			}
			printf(cmd, "%s\n", folder.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&parentID, "parent", "", "Parent folder id (default: root)")
	cmd.Flags().StringVar(&description, "description", "", "Folder description")
	return cmd
}

func newFolderUpdateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <folder-id>",
		Short: "Change the name or description of a folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			updates := models.FolderUpdate{
				Name:        optional(cmd, "name"),
				Description: optional(cmd, "description"),
			}
			if updates.IsEmpty() {
				return fmt.Errorf("nothing to update: pass --name or --description")
			}

			folder, err := app.services.CollectionService.UpdateFolder(cmd.Context(), args[0], updates)
			if err != nil {
				return err
			}
			printf(cmd, "%s\t%s\n", folder.ID, folder.Name)
			return nil
		},
	}
	cmd.Flags().String("name", "", "New name")
	cmd.Flags().String("description", "", "New description")
	return cmd
}

func newFolderRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <folder-id>",
		Aliases: []string{"delete"},
		Short:   "Delete a folder with every folder and set below it",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.services.CollectionService.DeleteFolder(cmd.Context(), args[0])
		},
	}
}

func newFolderPathCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "path <folder-id>",
		Short: "Print the folders from the root down to a folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := app.services.CollectionService.GetFolderPath(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printf(cmd, "/%s\n", joinNames(path))
			return nil
		},
	}
}

func joinNames(folders []models.Folder) string {
	names := make([]string, 0, len(folders))
	for _, f := range folders {
		names = append(names, f.Name)
	}
	return strings.Join(names, "/")
}
