package client

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/ErikSvanes/flashcards/models"
	"github.com/spf13/cobra"
)

type credentials struct {
	login    string
	password string
}

func (c *credentials) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&c.login, "login", "", "Account login")
	cmd.Flags().StringVar(&c.password, "password", "", "Account password; read from stdin when omitted")
	_ = cmd.MarkFlagRequired("login")
}

// user returns the credentials, reading the password from stdin when the
// flag was not given.
func (c *credentials) user(cmd *cobra.Command) (models.User, error) {
	password := c.password
	if password == "" {
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && line == "" {
			return models.User{}, fmt.Errorf("read password: %w", err)
		}
		password = strings.TrimRight(line, "\r\n")
	}
	return models.User{Login: c.login, Password: password}, nil
}

func newRegisterCmd(app *App) *cobra.Command {
	var creds credentials
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a backend account and log in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.authenticate(cmd, &creds, app.services.AuthService.Register)
		},
	}
	creds.bind(cmd)
	return cmd
}

func newLoginCmd(app *App) *cobra.Command {
	var creds credentials
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.authenticate(cmd, &creds, app.services.AuthService.Login)
		},
	}
	creds.bind(cmd)
	return cmd
}

func (a *App) authenticate(cmd *cobra.Command, creds *credentials, do func(context.Context, models.User) error) error {
	user, err := creds.user(cmd)
	if err != nil {
		return err
	}
	if err := do(cmd.Context(), user); err != nil {
		return err
	}

	printf(cmd, "logged in as %s\n", user.Login)
	if sets, err := a.services.CollectionService.GetSets(cmd.Context()); err == nil && len(sets) > 0 {
		printf(cmd, "run 'flashcards upload' to send the local collection, or 'flashcards pull' to replace it with the remote one\n")
	}
	return nil
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the saved login; queued changes are kept",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.services.AuthService.Logout(cmd.Context()); err != nil {
				return err
			}
			printf(cmd, "logged out\n")
			return nil
		},
	}
}
