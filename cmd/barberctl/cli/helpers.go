package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/m04kA/SMC-BarberService/internal/client"
	"github.com/m04kA/SMC-BarberService/internal/config"
	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/internal/views"
	"github.com/m04kA/SMC-BarberService/pkg/logger"
)

// newAPIClient создает клиента с сессией из файла
func newAPIClient() (*client.Client, error) {
	path := viper.GetString("session")
	if path == "" {
		var err error
		path, err = client.DefaultSessionPath()
		if err != nil {
			return nil, fmt.Errorf("resolve session path: %w", err)
		}
	}

	session, err := client.NewSession(client.NewFileStore(path))
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	level := logger.LevelWarn
	if viper.GetBool("verbose") {
		level = logger.LevelDebug
	}
	log := logger.NewWriter(os.Stderr, level).With("client")

	return client.NewClient(viper.GetString("server"), viper.GetDuration("timeout"), session, log), nil
}

// loadSchedule рабочий день барбершопа из конфигурации клиента
func loadSchedule() (domain.Schedule, *time.Location, error) {
	cfg := config.ScheduleConfig{
		StartHour:       viper.GetInt("schedule.start_hour"),
		EndHour:         viper.GetInt("schedule.end_hour"),
		IntervalMinutes: viper.GetInt("schedule.interval_minutes"),
		BreakStart:      viper.GetString("schedule.break_start"),
		BreakEnd:        viper.GetString("schedule.break_end"),
		Timezone:        viper.GetString("schedule.timezone"),
	}

	schedule, err := cfg.ToDomain()
	if err != nil {
		return domain.Schedule{}, nil, fmt.Errorf("schedule: %w", err)
	}
	location, err := cfg.Location()
	if err != nil {
		return domain.Schedule{}, nil, fmt.Errorf("schedule timezone: %w", err)
	}
	return schedule, location, nil
}

// commandContext отменяется по Ctrl+C
func commandContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// terminalNavigator подсказывает пользователю, куда перейти
func terminalNavigator() views.Navigator {
	return views.NavigatorFunc(func(route string) {
		if route == views.RouteLogin {
			fmt.Fprintln(os.Stderr, "Relácia vypršala alebo chýba. Prihláste sa: barberctl login")
		}
	})
}

func recaptchaVerifier() views.Verifier {
	return views.StaticVerifier(viper.GetString("recaptcha_token"))
}

// readPassword запрашивает пароль без эха
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	pw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(pw), nil
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id: %q", arg)
	}
	return id, nil
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// viewError текст ошибки экрана вместо внутренней цепочки
func viewError(text string, err error) error {
	if text != "" {
		return fmt.Errorf("%s", text)
	}
	return err
}

func printReservations(w io.Writer, items []client.Reservation) {
	if len(items) == 0 {
		fmt.Fprintln(w, "Žiadne rezervácie.")
		return
	}
	fmt.Fprintf(w, "%-6s %-24s %-30s %-10s %-5s\n", "ID", "NAME", "EMAIL", "DATE", "TIME")
	fmt.Fprintf(w, "%-6s %-24s %-30s %-10s %-5s\n", "--", "----", "-----", "----", "----")
	for _, r := range items {
		fmt.Fprintf(w, "%-6d %-24s %-30s %-10s %-5s\n", r.ID, r.Name, r.Email, r.Date, r.Time)
	}
}

func printReservation(w io.Writer, r *client.Reservation) {
	fmt.Fprintf(w, "ID:      %d\n", r.ID)
	fmt.Fprintf(w, "Meno:    %s\n", r.Name)
	fmt.Fprintf(w, "Email:   %s\n", r.Email)
	fmt.Fprintf(w, "Dátum:   %s\n", r.Date)
	fmt.Fprintf(w, "Čas:     %s\n", r.Time)
	if r.CreatedAt != "" {
		fmt.Fprintf(w, "Vytvorené: %s\n", r.CreatedAt)
	}
}

func printSlots(w io.Writer, times []string) {
	if len(times) == 0 {
		fmt.Fprintln(w, "Na tento deň nie sú voľné termíny.")
		return
	}
	const perRow = 6
	for i := 0; i < len(times); i += perRow {
		end := i + perRow
		if end > len(times) {
			end = len(times)
		}
		fmt.Fprintln(w, strings.Join(times[i:end], "  "))
	}
}
