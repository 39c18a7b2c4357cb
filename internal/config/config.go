package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// Переменные окружения для секретов, перекрывающие значения из файла
const (
	EnvJWTSecret       = "BARBER_JWT_SECRET"
	EnvDBPassword      = "BARBER_DB_PASSWORD"
	EnvSMTPPassword    = "BARBER_SMTP_PASSWORD"
	EnvRecaptchaSecret = "BARBER_RECAPTCHA_SECRET"
)

// ErrInvalidConfig возвращается, когда конфигурация не прошла валидацию
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация barber-api
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Auth      AuthConfig      `toml:"auth"`
	Recaptcha RecaptchaConfig `toml:"recaptcha"`
	Schedule  ScheduleConfig  `toml:"schedule"`
	Email     EmailConfig     `toml:"email"`
	CORS      CORSConfig      `toml:"cors"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
	Bootstrap BootstrapConfig `toml:"bootstrap"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	// Driver "postgres" или "sqlite"
	Driver          string `toml:"driver"`
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	Path            string `toml:"path"` // файл БД для sqlite
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type AuthConfig struct {
	JWTSecret     string `toml:"jwt_secret"`
	TokenTTLHours int    `toml:"token_ttl_hours"`
	Issuer        string `toml:"issuer"`
}

type RecaptchaConfig struct {
	Enabled   bool    `toml:"enabled"`
	Secret    string  `toml:"secret"`
	VerifyURL string  `toml:"verify_url"`
	Timeout   int     `toml:"timeout"`
	MinScore  float64 `toml:"min_score"`
}

type ScheduleConfig struct {
	StartHour       int    `toml:"start_hour"`
	EndHour         int    `toml:"end_hour"`
	IntervalMinutes int    `toml:"interval_minutes"`
	BreakStart      string `toml:"break_start"`
	BreakEnd        string `toml:"break_end"`
	// Timezone IANA-зона барбершопа, в ней считается "сегодня"
	Timezone string `toml:"timezone"`
}

type EmailConfig struct {
	Enabled  bool   `toml:"enabled"`
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Username string `toml:"username"`
	Password string `toml:"password"`
	From     string `toml:"from"`
	Timeout  int    `toml:"timeout"`
}

type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

type RateLimitConfig struct {
	Enabled           bool `toml:"enabled"`
	RequestsPerMinute int  `toml:"requests_per_minute"`
}

type BootstrapConfig struct {
	Username string `toml:"username"`
	Password string `toml:"password"`
}

// Load читает конфигурацию из TOML файла, подставляет значения по умолчанию,
// секреты из окружения и валидирует результат
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	cfg.applyEnv(os.Getenv)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        5000,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Driver:          string(psqlbuilder.DialectPostgres),
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			Path:            "db.sqlite3",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "barber-api",
		},
		Auth: AuthConfig{
			TokenTTLHours: 24,
			Issuer:        "barber-api",
		},
		Recaptcha: RecaptchaConfig{
			VerifyURL: "https://www.google.com/recaptcha/api/siteverify",
			Timeout:   5,
		},
		Schedule: ScheduleConfig{
			StartHour:       domain.DefaultStartHour,
			EndHour:         domain.DefaultEndHour,
			IntervalMinutes: domain.DefaultIntervalMinutes,
			BreakStart:      domain.DefaultBreakStart,
			BreakEnd:        domain.DefaultBreakEnd,
			Timezone:        "Europe/Bratislava",
		},
		Email: EmailConfig{
			Port:    587,
			Timeout: 10,
		},
		RateLimit: RateLimitConfig{
			Enabled:           true,
			RequestsPerMinute: 30,
		},
	}
}

func (c *Config) applyEnv(getenv func(string) string) {
	if v := getenv(EnvJWTSecret); v != "" {
		c.Auth.JWTSecret = v
	}
	if v := getenv(EnvDBPassword); v != "" {
		c.Database.Password = v
	}
	if v := getenv(EnvSMTPPassword); v != "" {
		c.Email.Password = v
	}
	if v := getenv(EnvRecaptchaSecret); v != "" {
		c.Recaptcha.Secret = v
	}
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port out of range: %d", ErrInvalidConfig, c.Server.HTTPPort)
	}

	if _, err := psqlbuilder.New(c.Dialect()); err != nil {
		return fmt.Errorf("%w: database.driver: %v", ErrInvalidConfig, err)
	}

	if strings.TrimSpace(c.Auth.JWTSecret) == "" {
		return fmt.Errorf("%w: auth.jwt_secret is required (or %s)", ErrInvalidConfig, EnvJWTSecret)
	}

	if c.Auth.TokenTTLHours <= 0 {
		return fmt.Errorf("%w: auth.token_ttl_hours must be positive", ErrInvalidConfig)
	}

	if c.Recaptcha.Enabled && c.Recaptcha.Secret == "" {
		return fmt.Errorf("%w: recaptcha.secret is required when recaptcha is enabled", ErrInvalidConfig)
	}

	if _, err := c.Schedule.ToDomain(); err != nil {
		return fmt.Errorf("%w: schedule: %v", ErrInvalidConfig, err)
	}

	if c.Email.Enabled && (c.Email.Host == "" || c.Email.From == "") {
		return fmt.Errorf("%w: email.host and email.from are required when email is enabled", ErrInvalidConfig)
	}

	if c.RateLimit.Enabled && c.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("%w: rate_limit.requests_per_minute must be positive", ErrInvalidConfig)
	}

	if c.Bootstrap.Username != "" && len(c.Bootstrap.Password) < domain.MinPasswordLength {
		return fmt.Errorf("%w: bootstrap.password must be at least %d characters", ErrInvalidConfig, domain.MinPasswordLength)
	}

	return nil
}

// Dialect возвращает SQL-диалект по имени драйвера
func (c *Config) Dialect() psqlbuilder.Dialect {
	return psqlbuilder.Dialect(strings.ToLower(c.Database.Driver))
}

// DriverName имя драйвера database/sql для выбранного диалекта
func (d DatabaseConfig) DriverName() string {
	if psqlbuilder.Dialect(strings.ToLower(d.Driver)) == psqlbuilder.DialectSQLite {
		return "sqlite"
	}
	return "postgres"
}

// DSN строка подключения к БД
func (d DatabaseConfig) DSN() string {
	if psqlbuilder.Dialect(strings.ToLower(d.Driver)) == psqlbuilder.DialectSQLite {
		return d.Path
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     d.DBName,
		RawQuery: url.Values{"sslmode": []string{d.SSLMode}}.Encode(),
	}
	return u.String()
}

// ToDomain конвертирует секцию расписания в domain.Schedule
func (s ScheduleConfig) ToDomain() (domain.Schedule, error) {
	schedule := domain.Schedule{
		StartHour:       s.StartHour,
		EndHour:         s.EndHour,
		IntervalMinutes: s.IntervalMinutes,
	}

	if s.BreakStart != "" || s.BreakEnd != "" {
		start, err := types.NewTimeStringFromString(s.BreakStart)
		if err != nil {
			return domain.Schedule{}, fmt.Errorf("break_start: %w", err)
		}
		end, err := types.NewTimeStringFromString(s.BreakEnd)
		if err != nil {
			return domain.Schedule{}, fmt.Errorf("break_end: %w", err)
		}
		schedule.BreakStart = &start
		schedule.BreakEnd = &end
	}

	if err := schedule.Validate(); err != nil {
		return domain.Schedule{}, err
	}

	return schedule, nil
}

// Location возвращает часовой пояс барбершопа
func (s ScheduleConfig) Location() (*time.Location, error) {
	if s.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(s.Timezone)
}
