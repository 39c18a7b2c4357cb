package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-BarberService/internal/client"
	"github.com/m04kA/SMC-BarberService/internal/views"
)

func newAdminsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admins",
		Short: "Správa administrátorov (vyžaduje prihlásenie)",
	}

	cmd.AddCommand(newAdminsListCmd())
	cmd.AddCommand(newAdminsCreateCmd())
	cmd.AddCommand(newAdminsUpdateCmd())
	cmd.AddCommand(newAdminsDeleteCmd())
	cmd.AddCommand(newAdminsResetPasswordCmd())

	return cmd
}

func newAdminsView() (*views.AdminsView, error) {
	api, err := newAPIClient()
	if err != nil {
		return nil, err
	}
	return views.NewAdminsView(api, terminalNavigator()), nil
}

// ---------- admins list ----------

func newAdminsListCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Zoznam administrátorov",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdminsList(cmd.OutOrStdout(), jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func runAdminsList(out io.Writer, jsonOutput bool) error {
	v, err := newAdminsView()
	if err != nil {
		return err
	}
	defer v.Close()

	ctx, cancel := commandContext()
	defer cancel()

	if err := v.Load(ctx); err != nil {
		return viewError(v.State().Error, err)
	}

	admins := v.State().Items
	if jsonOutput {
		return printJSON(out, admins)
	}

	fmt.Fprintf(out, "%-6s %-24s %-20s\n", "ID", "USERNAME", "CREATED")
	fmt.Fprintf(out, "%-6s %-24s %-20s\n", "--", "--------", "-------")
	for _, a := range admins {
		fmt.Fprintf(out, "%-6d %-24s %-20s\n", a.ID, a.Username, a.CreatedAt)
	}
	return nil
}

// ---------- admins create ----------

func newAdminsCreateCmd() *cobra.Command {
	var in client.AdminInput

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Pridanie administrátora",
		Example: `  barberctl admins create --username barber
  barberctl admins create --username barber --password secret1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdminsCreate(cmd.OutOrStdout(), in)
		},
	}

	cmd.Flags().StringVarP(&in.Username, "username", "u", "", "Username (required)")
	cmd.Flags().StringVar(&in.Password, "password", "", "Password (prompted if omitted)")
	cmd.MarkFlagRequired("username")

	return cmd
}

func runAdminsCreate(out io.Writer, in client.AdminInput) error {
	if in.Password == "" {
		password, err := promptNewPassword()
		if err != nil {
			return err
		}
		in.Password = password
	}

	v, err := newAdminsView()
	if err != nil {
		return err
	}
	defer v.Close()

	ctx, cancel := commandContext()
	defer cancel()

	if err := v.Create(ctx, in); err != nil {
		return viewError(v.State().Error, err)
	}

	items := v.State().Items
	created := items[len(items)-1]
	fmt.Fprintf(out, "Administrátor %q pridaný (id %d).\n", created.Username, created.ID)
	return nil
}

// ---------- admins update ----------

func newAdminsUpdateCmd() *cobra.Command {
	var in client.AdminInput

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Zmena mena (a voliteľne hesla) administrátora",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			v, err := newAdminsView()
			if err != nil {
				return err
			}
			defer v.Close()

			ctx, cancel := commandContext()
			defer cancel()

			if err := v.Update(ctx, id, in); err != nil {
				return viewError(v.State().Error, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Administrátor %d aktualizovaný.\n", id)
			return nil
		},
	}

	cmd.Flags().StringVarP(&in.Username, "username", "u", "", "New username (required)")
	cmd.Flags().StringVar(&in.Password, "password", "", "New password (unchanged if omitted)")
	cmd.MarkFlagRequired("username")

	return cmd
}

// ---------- admins delete ----------

func newAdminsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Zmazanie administrátora",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			v, err := newAdminsView()
			if err != nil {
				return err
			}
			defer v.Close()

			ctx, cancel := commandContext()
			defer cancel()

			if err := v.Delete(ctx, id); err != nil {
				return viewError(v.State().Error, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Administrátor %d zmazaný.\n", id)
			return nil
		},
	}
}

// ---------- admins reset-password ----------

func newAdminsResetPasswordCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "reset-password <id>",
		Short: "Nastavenie nového hesla administrátora",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if password == "" {
				password, err = promptNewPassword()
				if err != nil {
					return err
				}
			}

			v, err := newAdminsView()
			if err != nil {
				return err
			}
			defer v.Close()

			ctx, cancel := commandContext()
			defer cancel()

			if err := v.ResetPassword(ctx, id, password); err != nil {
				return viewError(v.State().Error, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), v.State().Success)
			return nil
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "New password (prompted if omitted)")

	return cmd
}

func promptNewPassword() (string, error) {
	password, err := readPassword("Heslo: ")
	if err != nil {
		return "", err
	}
	confirm, err := readPassword("Potvrďte heslo: ")
	if err != nil {
		return "", err
	}
	if password != confirm {
		return "", fmt.Errorf("passwords do not match")
	}
	return password, nil
}
