package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Branchboard specifics
	Storage        StorageConfig
	Scheduler      SchedulerConfig
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type StorageConfig struct {
	Driver      string
	Path        string
	BusyTimeout time.Duration
}

// SchedulerConfig holds the default work calendar and the knobs of the planner.
// Calendar values stored through the settings API take precedence at run time.
type SchedulerConfig struct {
	WorkHoursPerDay float64
	WorkDaysPerWeek int
	StartOfDay      string
	EndOfDay        string
	ExcludeWeekends bool
	BreakDuration   float64
	Timezone        string

	CacheSize          int
	OptimizeRatePerMin int
	AutoRescheduleCron string // empty disables the job
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, . and /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Storage
	cfg.Storage.Driver = viper.GetString("storage.driver")
	cfg.Storage.Path = viper.GetString("storage.path")
	cfg.Storage.BusyTimeout = viper.GetDuration("storage.busy_timeout")

	// Scheduler
	cfg.Scheduler.WorkHoursPerDay = viper.GetFloat64("scheduler.work_hours_per_day")
	cfg.Scheduler.WorkDaysPerWeek = viper.GetInt("scheduler.work_days_per_week")
	cfg.Scheduler.StartOfDay = viper.GetString("scheduler.start_of_day")
	cfg.Scheduler.EndOfDay = viper.GetString("scheduler.end_of_day")
	cfg.Scheduler.ExcludeWeekends = viper.GetBool("scheduler.exclude_weekends")
	cfg.Scheduler.BreakDuration = viper.GetFloat64("scheduler.break_duration")
	cfg.Scheduler.Timezone = viper.GetString("scheduler.timezone")
	cfg.Scheduler.CacheSize = viper.GetInt("scheduler.cache_size")
	cfg.Scheduler.OptimizeRatePerMin = viper.GetInt("scheduler.optimize_rate_per_min")
	cfg.Scheduler.AutoRescheduleCron = viper.GetString("scheduler.auto_reschedule_cron")

	// Google Calendar (optional)
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.Storage.Driver != "sqlite" {
		return fmt.Errorf("unsupported storage driver %q", cfg.Storage.Driver)
	}
	if cfg.Storage.Path == "" {
		return fmt.Errorf("storage.path is required")
	}
	if cfg.Scheduler.WorkHoursPerDay <= 0 || cfg.Scheduler.WorkHoursPerDay > 24 {
		return fmt.Errorf("scheduler.work_hours_per_day must be within (0, 24], got %v", cfg.Scheduler.WorkHoursPerDay)
	}
	if _, err := time.LoadLocation(cfg.Scheduler.Timezone); err != nil {
		return fmt.Errorf("scheduler.timezone: %w", err)
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("storage.driver", "sqlite")
	viper.SetDefault("storage.path", "data/branchboard.db")
	viper.SetDefault("storage.busy_timeout", "5s")

	viper.SetDefault("scheduler.work_hours_per_day", 8)
	viper.SetDefault("scheduler.work_days_per_week", 5)
	viper.SetDefault("scheduler.start_of_day", "09:00")
	viper.SetDefault("scheduler.end_of_day", "18:00")
	viper.SetDefault("scheduler.exclude_weekends", true)
	viper.SetDefault("scheduler.break_duration", 1)
	viper.SetDefault("scheduler.timezone", "UTC")
	viper.SetDefault("scheduler.cache_size", 16)
	viper.SetDefault("scheduler.optimize_rate_per_min", 30)
	viper.SetDefault("scheduler.auto_reschedule_cron", "@hourly")

	viper.SetDefault("google_calendar.calendar_id", "primary")
}
