package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-BarberService/internal/views"
)

func newLoginCmd() *cobra.Command {
	var (
		username string
		password string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Prihlásenie administrátora",
		Example: `  barberctl login --username admin
  barberctl login --username admin --password secret1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(cmd.OutOrStdout(), username, password)
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Admin username (required)")
	cmd.Flags().StringVar(&password, "password", "", "Admin password (prompted if omitted)")
	cmd.MarkFlagRequired("username")

	return cmd
}

func runLogin(out io.Writer, username, password string) error {
	if password == "" {
		var err error
		password, err = readPassword("Heslo: ")
		if err != nil {
			return err
		}
	}

	api, err := newAPIClient()
	if err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	screen := views.NewLoginScreen(api, recaptchaVerifier(), views.NavigatorFunc(func(string) {}))
	defer screen.Close()

	if err := screen.Submit(ctx, username, password); err != nil {
		return viewError(screen.State().Error, err)
	}

	fmt.Fprintf(out, "Prihlásený ako %s\n", api.Session().Username())
	return nil
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Odhlásenie a zmazanie uloženej relácie",
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := newAPIClient()
			if err != nil {
				return err
			}
			screen := views.NewLoginScreen(api, nil, views.NavigatorFunc(func(string) {}))
			defer screen.Close()
			if err := screen.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Odhlásený.")
			return nil
		},
	}
}
