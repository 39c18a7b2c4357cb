package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-BarberService/internal/client"
	"github.com/m04kA/SMC-BarberService/internal/views"
)

// ---------- slots ----------

func newSlotsCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "slots <date>",
		Short:   "Voľné termíny na deň (YYYY-MM-DD)",
		Example: `  barberctl slots 2025-07-22`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSlots(cmd.OutOrStdout(), args[0], jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func newBookingForm() (*views.ReservationForm, error) {
	api, err := newAPIClient()
	if err != nil {
		return nil, err
	}
	schedule, location, err := loadSchedule()
	if err != nil {
		return nil, err
	}
	return views.NewReservationForm(api, recaptchaVerifier(), schedule, location), nil
}

func runSlots(out io.Writer, date string, jsonOutput bool) error {
	form, err := newBookingForm()
	if err != nil {
		return err
	}
	defer form.Close()

	ctx, cancel := commandContext()
	defer cancel()

	form.SetFields(client.ReservationInput{Date: date})
	times, err := form.AvailableTimes(ctx)
	if err != nil {
		return viewError(form.State().Error, err)
	}

	if jsonOutput {
		return printJSON(out, times)
	}
	printSlots(out, times)
	return nil
}

// ---------- reserve ----------

func newReserveCmd() *cobra.Command {
	var (
		in         client.ReservationInput
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:     "reserve",
		Short:   "Vytvorenie rezervácie",
		Example: `  barberctl reserve --name "Ján Novák" --email jan@example.sk --date 2025-07-22 --time 08:20`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReserve(cmd.OutOrStdout(), in, jsonOutput)
		},
	}

	cmd.Flags().StringVar(&in.Name, "name", "", "Full name")
	cmd.Flags().StringVar(&in.Email, "email", "", "E-mail for the confirmation")
	cmd.Flags().StringVar(&in.Date, "date", "", "Date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&in.Time, "time", "", "Time slot (HH:MM)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func runReserve(out io.Writer, in client.ReservationInput, jsonOutput bool) error {
	form, err := newBookingForm()
	if err != nil {
		return err
	}
	defer form.Close()

	ctx, cancel := commandContext()
	defer cancel()

	form.SetFields(in)
	if err := form.Submit(ctx); err != nil {
		return viewError(form.State().Error, err)
	}

	created := form.State().Created
	if jsonOutput {
		return printJSON(out, created)
	}
	fmt.Fprintln(out, "Rezervácia bola úspešne vytvorená.")
	if created != nil {
		printReservation(out, created)
	}
	return nil
}
