package client

import (
	"fmt"
	"strings"

	"github.com/ErikSvanes/flashcards/models"
	"github.com/spf13/cobra"
)

func newSetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Manage sets",
	}

	cmd.AddCommand(newSetAddCmd(app))
	cmd.AddCommand(newSetUpdateCmd(app))
	cmd.AddCommand(newSetRemoveCmd(app))
	cmd.AddCommand(newSetShowCmd(app))
	cmd.AddCommand(newSetListCmd(app))

	return cmd
}

func newSetAddCmd(app *App) *cobra.Command {
	var folderID, description string
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create an empty set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := app.services.CollectionService.AddSet(cmd.Context(), models.Set{
				Name:        args[0],
				Description: description,
				ParentID:    folderID,
			})
			if err != nil {
				return err
			}
			printf(cmd, "%s\n", set.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&folderID, "folder", "", "Containing folder id (default: root)")
	cmd.Flags().StringVar(&description, "description", "", "Set description")
	return cmd
}

func newSetUpdateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <set-id>",
		Short: "Change the name or description of a set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			updates := models.SetUpdate{
				Name:        optional(cmd, "name"),
				Description: optional(cmd, "description"),
			}
			if updates.IsEmpty() {
				return fmt.Errorf("nothing to update: pass --name or --description")
			}

			set, err := app.services.CollectionService.UpdateSet(cmd.Context(), args[0], updates)
			if err != nil {
				return err
			}
			printf(cmd, "%s\t%s\n", set.ID, set.Name)
			return nil
		},
	}
	cmd.Flags().String("name", "", "New name")
	cmd.Flags().String("description", "", "New description")
	return cmd
}

func newSetRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <set-id>",
		Aliases: []string{"delete"},
		Short:   "Delete a set with its cards",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.services.CollectionService.DeleteSet(cmd.Context(), args[0])
		},
	}
}

func newSetShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <set-id>",
		Short: "Print a set with its cards",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := app.services.CollectionService.GetSet(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			printf(cmd, "%s (%s)\n", set.Name, set.ID)
			if set.Description != "" {
				printf(cmd, "%s\n", set.Description)
			}

			rows := make([][]string, 0, len(set.Cards))
			for _, card := range set.Cards {
				rows = append(rows, []string{card.ID, oneLine(card.Term), oneLine(card.Definition)})
			}
			return table(cmd.OutOrStdout(), rows)
		},
	}
}

func newSetListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "List every set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sets, err := app.services.CollectionService.GetSets(cmd.Context())
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(sets))
			for _, set := range sets {
				rows = append(rows, []string{set.ID, set.Name, fmt.Sprintf("%d cards", len(set.Cards))})
			}
			return table(cmd.OutOrStdout(), rows)
		},
	}
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
