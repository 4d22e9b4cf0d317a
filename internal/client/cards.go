package client

import (
	"fmt"

	"github.com/ErikSvanes/flashcards/internal/service"
	"github.com/ErikSvanes/flashcards/models"
	"github.com/spf13/cobra"
)

func newCardCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "card",
		Short: "Manage the cards of a set",
	}

	cmd.AddCommand(newCardAddCmd(app))
	cmd.AddCommand(newCardEditCmd(app))
	cmd.AddCommand(newCardRemoveCmd(app))

	return cmd
}

func newCardAddCmd(app *App) *cobra.Command {
	var card models.Card
	cmd := &cobra.Command{
		Use:   "add <set-id> <term> <definition>",
		Short: "Append a card to a set",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			card.Term, card.Definition = args[1], args[2]

			created, err := app.services.CollectionService.AddCard(cmd.Context(), args[0], card)
			if err != nil {
				return err
			}
			printf(cmd, "%s\n", created.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&card.TermImage, "term-image", "", "Image URL shown with the term")
	cmd.Flags().StringVar(&card.DefinitionImage, "definition-image", "", "Image URL shown with the definition")
	cmd.Flags().BoolVar(&card.IsMarkdown, "markdown", false, "Render both sides as markdown")
	return cmd
}

// newCardEditCmd replaces only the sides given as flags; the rest of the
// card is taken from the local copy.
func newCardEditCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <set-id> <card-id>",
		Short: "Change a card",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := app.services.CollectionService.GetSet(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			card, found := findCard(set, args[1])
			if !found {
				return fmt.Errorf("%w: %s", service.ErrCardNotFound, args[1])
			}

			changed := false
			for name, field := range map[string]*string{
				"term":             &card.Term,
				"definition":       &card.Definition,
				"term-image":       &card.TermImage,
				"definition-image": &card.DefinitionImage,
			} {
				if v := optional(cmd, name); v != nil {
					*field = *v
					changed = true
				}
			}
			if cmd.Flags().Changed("markdown") {
				card.IsMarkdown, _ = cmd.Flags().GetBool("markdown")
				changed = true
			}
			if !changed {
				return fmt.Errorf("nothing to change")
			}

			_, err = app.services.CollectionService.EditCard(cmd.Context(), set.ID, card)
			return err
		},
	}
	cmd.Flags().String("term", "", "New term")
	cmd.Flags().String("definition", "", "New definition")
	cmd.Flags().String("term-image", "", "New term image URL")
	cmd.Flags().String("definition-image", "", "New definition image URL")
	cmd.Flags().Bool("markdown", false, "Render both sides as markdown")
	return cmd
}

func newCardRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <set-id> <card-id>",
		Aliases: []string{"delete"},
		Short:   "Delete a card",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.services.CollectionService.DeleteCard(cmd.Context(), args[0], args[1])
		},
	}
}

func findCard(set models.Set, cardID string) (models.Card, bool) {
	for _, card := range set.Cards {
		if card.ID == cardID {
			return card, true
		}
	}
	return models.Card{}, false
}
