package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

var cfgFile string

// Execute собирает дерево команд и запускает его
func Execute(version string) error {
	return newRootCmd(version).Execute()
}

func newRootCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "barberctl",
		Short:   "Klient rezervačného systému barbershopu",
		Long:    "barberctl rezervuje termíny a spravuje rezervácie a administrátorov cez barber-api.",
		Version: version,

		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./barberctl.yaml)")
	cmd.PersistentFlags().String("server", "", "barber-api base URL")
	cmd.PersistentFlags().String("session", "", "session file (default is <user config dir>/barberctl/session.yaml)")
	cmd.PersistentFlags().Bool("verbose", false, "log HTTP calls to stderr")
	_ = viper.BindPFlag("server", cmd.PersistentFlags().Lookup("server"))
	_ = viper.BindPFlag("session", cmd.PersistentFlags().Lookup("session"))
	_ = viper.BindPFlag("verbose", cmd.PersistentFlags().Lookup("verbose"))

	cobra.OnInitialize(initConfig)

	cmd.AddCommand(newLoginCmd())
	cmd.AddCommand(newLogoutCmd())
	cmd.AddCommand(newSlotsCmd())
	cmd.AddCommand(newReserveCmd())
	cmd.AddCommand(newReservationsCmd())
	cmd.AddCommand(newAdminsCmd())

	return cmd
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("barberctl")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.config/barberctl")
	}

	viper.SetDefault("server", "http://localhost:5000")
	viper.SetDefault("timeout", "10s")
	viper.SetDefault("recaptcha_token", "")
	viper.SetDefault("schedule.start_hour", domain.DefaultStartHour)
	viper.SetDefault("schedule.end_hour", domain.DefaultEndHour)
	viper.SetDefault("schedule.interval_minutes", domain.DefaultIntervalMinutes)
	viper.SetDefault("schedule.break_start", domain.DefaultBreakStart)
	viper.SetDefault("schedule.break_end", domain.DefaultBreakEnd)
	viper.SetDefault("schedule.timezone", "Europe/Bratislava")

	viper.SetEnvPrefix("BARBERCTL")
	viper.AutomaticEnv()
	viper.ReadInConfig() // Ignore error - config file is optional
}
