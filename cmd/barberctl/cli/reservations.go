package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-BarberService/internal/client"
	"github.com/m04kA/SMC-BarberService/internal/views"
)

func newReservationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "reservations",
		Aliases: []string{"res"},
		Short:   "Správa rezervácií (vyžaduje prihlásenie)",
	}

	cmd.AddCommand(newReservationsListCmd())
	cmd.AddCommand(newReservationsGetCmd())
	cmd.AddCommand(newReservationsUpdateCmd())
	cmd.AddCommand(newReservationsDeleteCmd())

	return cmd
}

// ---------- reservations list ----------

func newReservationsListCmd() *cobra.Command {
	var (
		filter     client.ReservationsFilter
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Zoznam rezervácií",
		Example: `  barberctl reservations list --from 2025-07-01 --to 2025-07-31`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReservationsList(cmd.OutOrStdout(), filter, jsonOutput)
		},
	}

	cmd.Flags().StringVar(&filter.From, "from", "", "First date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&filter.To, "to", "", "Last date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func runReservationsList(out io.Writer, filter client.ReservationsFilter, jsonOutput bool) error {
	api, err := newAPIClient()
	if err != nil {
		return err
	}
	list := views.NewReservationList(api, terminalNavigator())
	defer list.Close()

	ctx, cancel := commandContext()
	defer cancel()

	if err := list.Load(ctx, filter); err != nil {
		return viewError(list.State().Error, err)
	}

	items := list.State().Items
	if jsonOutput {
		return printJSON(out, items)
	}
	printReservations(out, items)
	return nil
}

// ---------- reservations get ----------

func newReservationsGetCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Detail rezervácie",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return runReservationsGet(cmd.OutOrStdout(), id, jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func runReservationsGet(out io.Writer, id int64, jsonOutput bool) error {
	api, err := newAPIClient()
	if err != nil {
		return err
	}
	detail := views.NewReservationDetail(api, terminalNavigator())
	defer detail.Close()

	ctx, cancel := commandContext()
	defer cancel()

	if err := detail.Load(ctx, id); err != nil {
		return viewError(detail.State().Error, err)
	}

	r := detail.State().Reservation
	if jsonOutput {
		return printJSON(out, r)
	}
	printReservation(out, r)
	return nil
}

// ---------- reservations update ----------

func newReservationsUpdateCmd() *cobra.Command {
	var (
		name, email, date, clock string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Úprava rezervácie (nezadané polia ostávajú)",
		Example: `  barberctl reservations update 12 --time 09:40
  barberctl reservations update 12 --name "Ján Novák" --email jan@example.sk`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return runReservationsUpdate(cmd, id, name, email, date, clock)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Full name")
	cmd.Flags().StringVar(&email, "email", "", "E-mail")
	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&clock, "time", "", "Time slot (HH:MM)")

	return cmd
}

func runReservationsUpdate(cmd *cobra.Command, id int64, name, email, date, clock string) error {
	api, err := newAPIClient()
	if err != nil {
		return err
	}
	detail := views.NewReservationDetail(api, terminalNavigator())
	defer detail.Close()

	ctx, cancel := commandContext()
	defer cancel()

	if err := detail.Load(ctx, id); err != nil {
		return viewError(detail.State().Error, err)
	}

	// Флаги накладываются на загруженные значения
	form := detail.State().Form
	if cmd.Flags().Changed("name") {
		form.Name = name
	}
	if cmd.Flags().Changed("email") {
		form.Email = email
	}
	if cmd.Flags().Changed("date") {
		form.Date = date
	}
	if cmd.Flags().Changed("time") {
		form.Time = clock
	}

	detail.ToggleEdit()
	detail.SetForm(form)
	if err := detail.Save(ctx); err != nil {
		return viewError(detail.State().Error, err)
	}

	state := detail.State()
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, state.Success)
	printReservation(out, state.Reservation)
	return nil
}

// ---------- reservations delete ----------

func newReservationsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Zmazanie rezervácie",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			api, err := newAPIClient()
			if err != nil {
				return err
			}
			list := views.NewReservationList(api, terminalNavigator())
			defer list.Close()

			ctx, cancel := commandContext()
			defer cancel()

			if err := list.Delete(ctx, id); err != nil {
				return viewError(list.State().Error, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Rezervácia %d bola zmazaná.\n", id)
			return nil
		},
	}
}
