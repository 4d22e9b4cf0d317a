package client

import (
	"fmt"

	"github.com/ErikSvanes/flashcards/models"
	"github.com/spf13/cobra"
)

func newListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "ls [folder-id]",
		Short: "List the folders and sets directly inside a folder",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			folderID := ""
			if len(args) == 1 {
				folderID = args[0]
			}

			items, err := app.services.CollectionService.GetItemsInFolder(cmd.Context(), folderID)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(items))
			for _, item := range items {
				switch item.Kind {
				case models.ItemFolder:
					rows = append(rows, []string{string(item.Kind), item.Folder.ID, item.Folder.Name + "/"})
				case models.ItemSet:
					rows = append(rows, []string{string(item.Kind), item.Set.ID, item.Set.Name, fmt.Sprintf("%d cards", len(item.Set.Cards))})
				}
			}
			return table(cmd.OutOrStdout(), rows)
		},
	}
}

func newMoveCmd(app *App) *cobra.Command {
	var target string
	cmd := &cobra.Command{
		Use:   "mv <folder|set> <id>",
		Short: "Move a folder or a set into another folder",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.services.CollectionService.MoveItem(cmd.Context(), models.ItemKind(args[0]), args[1], target)
		},
	}
	cmd.Flags().StringVar(&target, "to", "", "Target folder id (default: root)")
	return cmd
}
